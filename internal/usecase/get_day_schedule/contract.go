package get_day_schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
)

// BookingRepository is the bookings read surface for occupancy
type BookingRepository interface {
	// GetWithFilter fetches the tenant's bookings for a single date
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository is the weekly rule read surface
type AvailabilityRepository interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.AvailabilityRule, error)
}

// SettingsRepository is the scheduling settings read surface
type SettingsRepository interface {
	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.SchedulingSettings, error)
}

// TimeProvider abstracts the current time for testing
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface consumed by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
