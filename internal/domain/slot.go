package domain

import "github.com/facilityops/scheduling-service/pkg/types"

// Slot is a candidate booking window derived from availability rules.
// It is never persisted; its identity is its value.
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps returns true if the slot's interval genuinely intersects
// [start, end). Touching boundaries do not overlap: a booking ending at
// 10:00 does not block the slot starting at 10:00.
func (s Slot) Overlaps(start, end types.TimeString) bool {
	return start.IsBefore(s.End) && end.IsAfter(s.Start)
}

// SlotAvailability pairs a generated slot with its occupancy state.
// Occupied slots are still listed so callers can render them as taken
// rather than silently dropping them.
type SlotAvailability struct {
	Slot      Slot
	Available bool
}
