package cancel_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, tenantID uuid.UUID, id int64, req *models.CancelBookingRequest) error
}

type Metrics interface {
	IncBookingCancelled()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
