package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilityops/scheduling-service/internal/domain"
	bookingRepo "github.com/facilityops/scheduling-service/internal/infra/storage/booking"
	settingsRepo "github.com/facilityops/scheduling-service/internal/infra/storage/settings"
	"github.com/facilityops/scheduling-service/pkg/ptr"
	"github.com/facilityops/scheduling-service/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeAvailabilityRepo struct {
	rules []*domain.AvailabilityRule
}

func (f *fakeAvailabilityRepo) ListByTenant(_ context.Context, _ uuid.UUID) ([]*domain.AvailabilityRule, error) {
	return f.rules, nil
}

type fakeSettingsRepo struct {
	settings *domain.SchedulingSettings
	err      error
}

func (f *fakeSettingsRepo) GetByTenant(_ context.Context, _ uuid.UUID) (*domain.SchedulingSettings, error) {
	return f.settings, f.err
}

// fakeTxManager runs the function directly, no transaction semantics
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

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

func newTestUseCase(
	bookings *fakeBookingRepo,
	availability *fakeAvailabilityRepo,
	settings *fakeSettingsRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookings, availability, settings, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest(t *testing.T, tenantID uuid.UUID, start string) *Request {
	t.Helper()
	return &Request{
		TenantID:     tenantID,
		Date:         monday,
		StartTime:    mustTime(t, start),
		ContactName:  "Maria Souza",
		ContactPhone: "+55 11 91234-5678",
		ContactEmail: "maria@example.com",
	}
}

func TestUseCase_Execute(t *testing.T) {
	tenantID := uuid.New()
	testNow := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)

	settings := &domain.SchedulingSettings{
		TenantID:            tenantID,
		SlotDurationMinutes: 60,
	}
	mondayRules := []*domain.AvailabilityRule{rule(t, 1, "09:00", "11:00")}

	t.Run("books a free offered slot", func(t *testing.T) {
		bookings := &fakeBookingRepo{}
		uc := newTestUseCase(bookings,
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		req := validRequest(t, tenantID, "10:00")
		req.Description = ptr.Ptr("limpeza completa da sala 12")
		req.Location = ptr.Ptr("bloco B")

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime.String())
		assert.Equal(t, "11:00", resp.EndTime.String())
		assert.Equal(t, 60, resp.DurationMinutes)
		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

		require.NotNil(t, bookings.created)
		assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), bookings.created.StartAt)
		assert.Equal(t, time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC), bookings.created.EndAt)
		require.NotNil(t, bookings.created.Description)
		assert.Equal(t, "limpeza completa da sala 12", *bookings.created.Description)
	})

	t.Run("occupied slot is rejected with conflict", func(t *testing.T) {
		existing := []*domain.Booking{{
			Status:  domain.StatusConfirmed,
			StartAt: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
		}}
		uc := newTestUseCase(&fakeBookingRepo{existing: existing},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("cancelled booking does not block the slot", func(t *testing.T) {
		existing := []*domain.Booking{{
			Status:  domain.StatusCancelled,
			StartAt: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
		}}
		uc := newTestUseCase(&fakeBookingRepo{existing: existing},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.NoError(t, err)
	})

	t.Run("adjacent booking does not block the slot", func(t *testing.T) {
		existing := []*domain.Booking{{
			Status:  domain.StatusConfirmed,
			StartAt: time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		}}
		uc := newTestUseCase(&fakeBookingRepo{existing: existing},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.NoError(t, err)
	})

	t.Run("start off the slot grid is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:30"))

		require.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("slot overrunning the window is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		// 10:30-11:30 would cross the 11:00 close even though 10:30
		// sits inside the window
		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:30"))

		require.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("day without availability is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{rule(t, 2, "09:00", "11:00")}},
			&fakeSettingsRepo{settings: settings},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.ErrorIs(t, err, ErrDayClosed)
	})

	t.Run("past date is rejected", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			monday.AddDate(0, 0, 7))

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date beyond the advance window is rejected", func(t *testing.T) {
		limited := &domain.SchedulingSettings{
			TenantID:              tenantID,
			SlotDurationMinutes:   60,
			MaxAdvanceBookingDays: 1,
		}
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: limited},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("same-day booking inside the notice window is rejected", func(t *testing.T) {
		withNotice := &domain.SchedulingSettings{
			TenantID:               tenantID,
			SlotDurationMinutes:    60,
			MinAdvanceBookingHours: 2,
		}
		nowMonday := time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: withNotice},
			nowMonday)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("database conflict maps to slot conflict", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{createErr: bookingRepo.ErrBookingConflict},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		_, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("missing settings fall back to defaults", func(t *testing.T) {
		bookings := &fakeBookingRepo{}
		uc := newTestUseCase(bookings,
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
			testNow)

		resp, err := uc.Execute(context.Background(), validRequest(t, tenantID, "10:00"))

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
	})

	t.Run("missing contact data fails validation", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{},
			&fakeAvailabilityRepo{rules: mondayRules},
			&fakeSettingsRepo{settings: settings},
			testNow)

		req := validRequest(t, tenantID, "10:00")
		req.ContactEmail = ""

		_, err := uc.Execute(context.Background(), req)

		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestValidateSlotOffered(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		rule(t, 1, "09:00", "10:00"),
		rule(t, 1, "10:00", "11:00"),
	}

	t.Run("grid position in a merged window is offered", func(t *testing.T) {
		// 09:40 only exists when the two adjacent windows merge into one
		err := validateSlotOffered(rules, monday, mustTime(t, "09:40"), 40)
		assert.NoError(t, err)
	})

	t.Run("off-grid start is rejected", func(t *testing.T) {
		err := validateSlotOffered(rules, monday, mustTime(t, "09:10"), 40)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("slot crossing the window end is rejected", func(t *testing.T) {
		err := validateSlotOffered(rules, monday, mustTime(t, "10:40"), 40)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})
}
