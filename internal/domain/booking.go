package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a persisted reservation of a time slot.
// StartAt/EndAt are absolute timestamps; BookingDate is the calendar date
// they fall on, kept separate so day queries stay index-friendly.
type Booking struct {
	ID         int64
	TenantID   uuid.UUID
	CustomerID *uuid.UUID // optional link to a registered customer

	BookingDate time.Time
	StartAt     time.Time
	EndAt       time.Time
	Status      BookingStatus

	ContactName  string
	ContactPhone string
	ContactEmail string
	Description  *string
	Location     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Occupies returns true if the booking blocks slots from being offered.
// Only confirmed bookings occupy; pending and cancelled ones never do.
func (b *Booking) Occupies() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// StartTimeOfDay returns the wall-clock start time on the booking's date
func (b *Booking) StartTimeOfDay() types.TimeString {
	return types.NewTimeString(b.StartAt)
}

// EndTimeOfDay returns the wall-clock end time on the booking's date.
// A booking ending exactly at midnight reads as "24:00" rather than "00:00"
// so interval comparisons within its own date stay meaningful.
func (b *Booking) EndTimeOfDay() types.TimeString {
	ts := types.NewTimeString(b.EndAt)
	if ts == "00:00" && !b.EndAt.Equal(b.StartAt) {
		return "24:00"
	}
	return ts
}

// BookingsFilter describes the filtering options for listing tenant bookings
type BookingsFilter struct {
	TenantID        uuid.UUID      // required
	Date            *time.Time     // single calendar date (optional)
	CustomerID      *uuid.UUID     // filter by customer (optional)
	Status          *BookingStatus // filter by status (optional)
	IncludeInactive bool           // include cancelled bookings
}
