package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/pkg/types"
)

// Request carries the data needed to book one slot
type Request struct {
	TenantID   uuid.UUID
	CustomerID *uuid.UUID // optional link to a registered customer

	Date      time.Time        // booking date (time component ignored)
	StartTime types.TimeString // slot start, e.g. "10:00"

	ContactName  string
	ContactPhone string
	ContactEmail string
	Description  *string
	Location     *string
}

// Response is the created booking
type Response struct {
	ID         int64
	TenantID   uuid.UUID
	CustomerID *uuid.UUID

	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string

	ContactName  string
	ContactPhone string
	ContactEmail string
	Description  *string
	Location     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
