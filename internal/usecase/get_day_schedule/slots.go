package get_day_schedule

import (
	"sort"
	"time"

	"github.com/facilityops/scheduling-service/internal/domain"
	"github.com/facilityops/scheduling-service/pkg/types"
)

// window is a contiguous availability interval after merging rules
type window struct {
	start types.TimeString
	end   types.TimeString
}

// generateDaySlots produces the ordered slot sequence for one date from the
// full weekly rule set. Pure function: same inputs, same output.
//
// Rules matching the date's weekday with is_available=true are sorted by
// start time and overlapping or touching windows are merged, so the output
// is chronological and duplicate-free even when the admin-entered grid is
// unordered or sloppy. Within each window the cursor advances in fixed
// slotDuration steps; a trailing partial that would overrun the window's
// end is discarded, never truncated.
//
// slotDuration must be positive; that is enforced where settings are
// loaded and stored, not here.
func generateDaySlots(
	rules []*domain.AvailabilityRule,
	date time.Time,
	slotDuration int,
) ([]domain.Slot, error) {
	windows := dayWindows(rules, date)

	slots := make([]domain.Slot, 0)
	for _, w := range windows {
		cursor := w.start

		for cursor.IsBefore(w.end) {
			slotEnd, err := cursor.AddMinutes(slotDuration)
			if err != nil {
				// cursor + duration crossed midnight: nothing more fits
				break
			}
			if slotEnd.IsAfter(w.end) {
				break
			}

			slots = append(slots, domain.Slot{Start: cursor, End: slotEnd})
			cursor = slotEnd
		}
	}

	return slots, nil
}

// dayWindows selects the rules producing slots on the given date, sorted by
// start time with overlapping or adjacent windows merged
func dayWindows(rules []*domain.AvailabilityRule, date time.Time) []window {
	windows := make([]window, 0)
	for _, rule := range rules {
		if !rule.AppliesTo(date) {
			continue
		}
		// malformed rules never reach storage; skip defensively anyway
		if !rule.StartTime.IsBefore(rule.EndTime) {
			continue
		}
		windows = append(windows, window{start: rule.StartTime, end: rule.EndTime})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].start.IsBefore(windows[j].start)
	})

	merged := make([]window, 0, len(windows))
	for _, w := range windows {
		if len(merged) == 0 {
			merged = append(merged, w)
			continue
		}

		last := &merged[len(merged)-1]
		if w.start.IsAfter(last.end) {
			merged = append(merged, w)
			continue
		}
		if w.end.IsAfter(last.end) {
			last.end = w.end
		}
	}

	return merged
}

// hasAvailability reports whether any available rule exists for the date's
// weekday, regardless of whether its slots survive later filtering
func hasAvailability(rules []*domain.AvailabilityRule, date time.Time) bool {
	for _, rule := range rules {
		if rule.AppliesTo(date) {
			return true
		}
	}
	return false
}

// filterPastSlots drops slots that can no longer be booked when the
// requested date is today: a slot survives only if its start is strictly
// after now plus the minimum booking notice. Future dates pass through
// untouched; past dates are handled by the caller.
func filterPastSlots(
	slots []domain.Slot,
	date time.Time,
	now time.Time,
	minNoticeMinutes int,
) []domain.Slot {
	if !isSameDay(date, now) {
		return slots
	}

	minAllowed, err := types.NewTimeString(now).AddMinutes(minNoticeMinutes)
	if err != nil {
		// the notice window extends past midnight: nothing today qualifies
		return []domain.Slot{}
	}

	remaining := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Start.IsAfter(minAllowed) {
			remaining = append(remaining, slot)
		}
	}

	return remaining
}

// markOccupancy pairs every slot with its occupancy state. A slot is
// occupied iff a booking that occupies (status confirmed) genuinely
// overlaps its interval; touching boundaries do not conflict. Occupied
// slots stay in the sequence.
func markOccupancy(slots []domain.Slot, bookings []*domain.Booking) []domain.SlotAvailability {
	result := make([]domain.SlotAvailability, len(slots))

	for i, slot := range slots {
		occupied := false
		for _, booking := range bookings {
			if !booking.Occupies() {
				continue
			}
			if slot.Overlaps(booking.StartTimeOfDay(), booking.EndTimeOfDay()) {
				occupied = true
				break
			}
		}

		result[i] = domain.SlotAvailability{Slot: slot, Available: !occupied}
	}

	return result
}

// isSameDay checks that two instants fall on the same calendar date
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast checks that the date is before today's date
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
