package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
)

// BookingRepository is the bookings write and occupancy-read surface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
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

// TransactionManager runs the occupancy check and the insert atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
