package domain

import (
	"time"

	"github.com/google/uuid"
)

// SchedulingSettings is the tenant-wide scheduling configuration.
// SlotDurationMinutes is the fixed granularity of every generated slot.
type SchedulingSettings struct {
	ID                     int64
	TenantID               uuid.UUID
	SlotDurationMinutes    int
	MinAdvanceBookingHours int // 0 = bookings may start any moment after now
	MaxAdvanceBookingDays  int // 0 = unlimited

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in
// advance bookings can be made
func (s *SchedulingSettings) HasAdvanceBookingLimit() bool {
	return s.MaxAdvanceBookingDays > 0
}

// MinNoticeMinutes returns the minimum booking notice in minutes
func (s *SchedulingSettings) MinNoticeMinutes() int {
	return s.MinAdvanceBookingHours * 60
}

// DefaultSettings returns the settings applied to tenants that have not
// configured scheduling yet
func DefaultSettings(tenantID uuid.UUID) *SchedulingSettings {
	return &SchedulingSettings{
		TenantID:               tenantID,
		SlotDurationMinutes:    DefaultSlotDurationMinutes,
		MinAdvanceBookingHours: DefaultMinAdvanceBookingHours,
		MaxAdvanceBookingDays:  DefaultMaxAdvanceBookingDays,
	}
}
