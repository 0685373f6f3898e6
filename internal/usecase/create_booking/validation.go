package create_booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
	"github.com/facilityops/scheduling-service/pkg/types"
)

// validateRequest validates the request payload
func validateRequest(req *Request) error {
	if req.TenantID == uuid.Nil {
		return fmt.Errorf("%w: tenant id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.ContactName) == "" {
		return fmt.Errorf("%w: contactName is required", ErrInvalidInput)
	}
	if len(req.ContactName) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contactName exceeds %d characters", ErrInvalidInput, domain.MaxContactNameLength)
	}

	if strings.TrimSpace(req.ContactPhone) == "" {
		return fmt.Errorf("%w: contactPhone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ContactEmail) == "" {
		return fmt.Errorf("%w: contactEmail is required", ErrInvalidInput)
	}
	if !strings.Contains(req.ContactEmail, "@") {
		return fmt.Errorf("%w: contactEmail is not a valid email address", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if req.Location != nil && len(*req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	return nil
}

// validateDate checks that the date is bookable under the tenant's settings
func validateDate(bookingDate time.Time, now time.Time, maxAdvanceDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// maxAdvanceDays = 0 means no limit
	if maxAdvanceDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, maxAdvanceDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// validateBookingTime checks that a same-day booking respects the minimum
// advance notice
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minNoticeMinutes int,
) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	if !startTime.IsAfter(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minNoticeMinutes)
	}

	return nil
}

// validateSlotOffered checks that the requested start matches a slot the
// schedule actually generates for the date: walking each merged window with
// the same fixed step the generator uses must land exactly on it, with the
// full slot fitting inside the window.
func validateSlotOffered(
	rules []*domain.AvailabilityRule,
	date time.Time,
	start types.TimeString,
	slotDuration int,
) error {
	for _, w := range mergedWindows(rules, date) {
		cursor := w.start

		for cursor.IsBefore(w.end) {
			slotEnd, err := cursor.AddMinutes(slotDuration)
			if err != nil || slotEnd.IsAfter(w.end) {
				break
			}
			if cursor == start {
				return nil
			}
			cursor = slotEnd
		}
	}

	return ErrInvalidTimeSlot
}

// hasOverlappingBooking reports whether any confirmed booking genuinely
// overlaps the [start, end) interval. Touching boundaries do not conflict.
func hasOverlappingBooking(start, end types.TimeString, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.Occupies() {
			continue
		}
		if booking.StartTimeOfDay().IsBefore(end) && booking.EndTimeOfDay().IsAfter(start) {
			return true
		}
	}
	return false
}

// window is a contiguous availability interval after merging rules
type window struct {
	start types.TimeString
	end   types.TimeString
}

// mergedWindows selects the rules applying to the date, sorted by start time
// with overlapping or adjacent windows merged
func mergedWindows(rules []*domain.AvailabilityRule, date time.Time) []window {
	windows := make([]window, 0)
	for _, rule := range rules {
		if !rule.AppliesTo(date) {
			continue
		}
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

// hasAvailability reports whether any available rule covers the date's weekday
func hasAvailability(rules []*domain.AvailabilityRule, date time.Time) bool {
	for _, rule := range rules {
		if rule.AppliesTo(date) {
			return true
		}
	}
	return false
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
