package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
)

// BookingRepository is the bookings repository surface used by the service
type BookingRepository interface {
	GetByID(ctx context.Context, tenantID uuid.UUID, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, tenantID uuid.UUID, id int64, reason string) error
	UpdateStatus(ctx context.Context, tenantID uuid.UUID, id int64, status domain.BookingStatus) error
}

// Logger is the logging interface consumed by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
