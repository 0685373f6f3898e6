package get_day_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilityops/scheduling-service/internal/domain"
	"github.com/facilityops/scheduling-service/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func rule(t *testing.T, day int, start, end string) *domain.AvailabilityRule {
	t.Helper()
	return &domain.AvailabilityRule{
		DayOfWeek:   day,
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
		IsAvailable: true,
	}
}

// 2026-09-07 is a Monday
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestGenerateDaySlots(t *testing.T) {
	t.Run("two slots fit a two hour window with 60 minute duration", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{rule(t, 1, "09:00", "11:00")}

		slots, err := generateDaySlots(rules, monday, 60)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Start.String())
		assert.Equal(t, "10:00", slots[0].End.String())
		assert.Equal(t, "10:00", slots[1].Start.String())
		assert.Equal(t, "11:00", slots[1].End.String())
	})

	t.Run("trailing partial slot is discarded not truncated", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{rule(t, 1, "09:00", "11:00")}

		slots, err := generateDaySlots(rules, monday, 90)

		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:00", slots[0].Start.String())
		assert.Equal(t, "10:30", slots[0].End.String())
	})

	t.Run("no rules for the weekday yields no slots", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{rule(t, 2, "09:00", "11:00")}

		slots, err := generateDaySlots(rules, monday, 30)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("unavailable rules produce no slots", func(t *testing.T) {
		r := rule(t, 1, "09:00", "11:00")
		r.IsAvailable = false

		slots, err := generateDaySlots([]*domain.AvailabilityRule{r}, monday, 30)

		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("unsorted rules come out chronological", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{
			rule(t, 1, "14:00", "15:00"),
			rule(t, 1, "09:00", "10:00"),
		}

		slots, err := generateDaySlots(rules, monday, 60)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Start.String())
		assert.Equal(t, "14:00", slots[1].Start.String())
	})

	t.Run("overlapping rules merge without duplicate slots", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{
			rule(t, 1, "09:00", "11:00"),
			rule(t, 1, "10:00", "12:00"),
		}

		slots, err := generateDaySlots(rules, monday, 60)

		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, "09:00", slots[0].Start.String())
		assert.Equal(t, "10:00", slots[1].Start.String())
		assert.Equal(t, "11:00", slots[2].Start.String())
	})

	t.Run("adjacent rules merge into one continuous window", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{
			rule(t, 1, "09:00", "10:00"),
			rule(t, 1, "10:00", "11:00"),
		}

		slots, err := generateDaySlots(rules, monday, 40)

		require.NoError(t, err)
		// a single 09:00-11:00 window fits three 40 minute slots;
		// two separate one hour windows would fit only two
		require.Len(t, slots, 3)
		assert.Equal(t, "10:20", slots[2].Start.String())
	})

	t.Run("disjoint windows keep their gap", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{
			rule(t, 1, "09:00", "10:00"),
			rule(t, 1, "14:00", "15:00"),
		}

		slots, err := generateDaySlots(rules, monday, 30)

		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, "09:30", slots[1].Start.String())
		assert.Equal(t, "14:00", slots[2].Start.String())
	})

	t.Run("window ending at midnight is walkable", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{rule(t, 1, "23:00", "24:00")}

		slots, err := generateDaySlots(rules, monday, 30)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, "24:00", slots[1].End.String())
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		rules := []*domain.AvailabilityRule{
			rule(t, 1, "10:00", "12:00"),
			rule(t, 1, "08:00", "10:30"),
		}

		first, err := generateDaySlots(rules, monday, 30)
		require.NoError(t, err)
		second, err := generateDaySlots(rules, monday, 30)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestFilterPastSlots(t *testing.T) {
	slots := []domain.Slot{
		{Start: mustTime(t, "09:00"), End: mustTime(t, "10:00")},
		{Start: mustTime(t, "10:00"), End: mustTime(t, "11:00")},
		{Start: mustTime(t, "11:00"), End: mustTime(t, "12:00")},
	}

	t.Run("future date keeps every slot", func(t *testing.T) {
		now := monday.Add(-24 * time.Hour).Add(15 * time.Hour)

		remaining := filterPastSlots(slots, monday, now, 0)

		assert.Len(t, remaining, 3)
	})

	t.Run("today keeps only slots strictly after now", func(t *testing.T) {
		now := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

		remaining := filterPastSlots(slots, monday, now, 0)

		require.Len(t, remaining, 1)
		assert.Equal(t, "11:00", remaining[0].Start.String())
	})

	t.Run("minimum notice pushes the cutoff forward", func(t *testing.T) {
		now := time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC)

		remaining := filterPastSlots(slots, monday, now, 120)

		require.Len(t, remaining, 1)
		assert.Equal(t, "11:00", remaining[0].Start.String())
	})

	t.Run("notice past midnight leaves nothing today", func(t *testing.T) {
		now := time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC)

		remaining := filterPastSlots(slots, monday, now, 180)

		assert.Empty(t, remaining)
	})
}

func TestMarkOccupancy(t *testing.T) {
	slots := []domain.Slot{
		{Start: mustTime(t, "09:00"), End: mustTime(t, "10:00")},
		{Start: mustTime(t, "10:00"), End: mustTime(t, "11:00")},
	}

	booking := func(status domain.BookingStatus, start, end string) *domain.Booking {
		st, err := time.Parse("15:04", start)
		require.NoError(t, err)
		et, err := time.Parse("15:04", end)
		require.NoError(t, err)
		return &domain.Booking{
			Status:  status,
			StartAt: time.Date(2026, 9, 7, st.Hour(), st.Minute(), 0, 0, time.UTC),
			EndAt:   time.Date(2026, 9, 7, et.Hour(), et.Minute(), 0, 0, time.UTC),
		}
	}

	t.Run("confirmed booking occupies overlapping slot only", func(t *testing.T) {
		bookings := []*domain.Booking{booking(domain.StatusConfirmed, "10:00", "11:00")}

		marked := markOccupancy(slots, bookings)

		require.Len(t, marked, 2)
		assert.True(t, marked[0].Available)
		assert.False(t, marked[1].Available)
	})

	t.Run("touching boundaries do not conflict", func(t *testing.T) {
		bookings := []*domain.Booking{booking(domain.StatusConfirmed, "08:00", "09:00")}

		marked := markOccupancy(slots, bookings)

		assert.True(t, marked[0].Available)
		assert.True(t, marked[1].Available)
	})

	t.Run("partial overlap occupies both slots it touches", func(t *testing.T) {
		bookings := []*domain.Booking{booking(domain.StatusConfirmed, "09:30", "10:30")}

		marked := markOccupancy(slots, bookings)

		assert.False(t, marked[0].Available)
		assert.False(t, marked[1].Available)
	})

	t.Run("cancelled and pending bookings never occupy", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking(domain.StatusCancelled, "09:00", "10:00"),
			booking(domain.StatusPending, "10:00", "11:00"),
		}

		marked := markOccupancy(slots, bookings)

		assert.True(t, marked[0].Available)
		assert.True(t, marked[1].Available)
	})

	t.Run("no bookings leaves everything available", func(t *testing.T) {
		marked := markOccupancy(slots, nil)

		for _, sa := range marked {
			assert.True(t, sa.Available)
		}
	})
}
