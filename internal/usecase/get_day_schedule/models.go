package get_day_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
)

// Request asks for the bookable schedule of one calendar date
type Request struct {
	TenantID uuid.UUID
	Date     time.Time // date-only relevant
}

// Response carries the generated slots for the date.
// Open distinguishes "no availability windows defined for this day"
// (Open=false, empty Slots) from "every slot is taken" (Open=true,
// all slots unavailable).
type Response struct {
	TenantID uuid.UUID
	Date     time.Time
	Open     bool
	Slots    []Slot
}

// Slot is one bookable window with its occupancy state
type Slot struct {
	Start           string
	End             string
	DurationMinutes int
	Available       bool
}

func fromSlotAvailability(sa domain.SlotAvailability, duration int) Slot {
	return Slot{
		Start:           sa.Slot.Start.String(),
		End:             sa.Slot.End.String(),
		DurationMinutes: duration,
		Available:       sa.Available,
	}
}
