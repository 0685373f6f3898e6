package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilityops/scheduling-service/internal/domain"
	settingsRepo "github.com/facilityops/scheduling-service/internal/infra/storage/settings"
	"github.com/facilityops/scheduling-service/internal/service/schedule/models"
)

type fakeAvailabilityRepo struct {
	rules    []*domain.AvailabilityRule
	replaced []*domain.AvailabilityRule
}

func (f *fakeAvailabilityRepo) ListByTenant(_ context.Context, _ uuid.UUID) ([]*domain.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeAvailabilityRepo) ReplaceForTenant(_ context.Context, tenantID uuid.UUID, rules []*domain.AvailabilityRule) ([]*domain.AvailabilityRule, error) {
	f.replaced = rules
	for i, rule := range rules {
		rule.ID = int64(i + 1)
		rule.TenantID = tenantID
	}
	return rules, nil
}

type fakeSettingsRepo struct {
	settings *domain.SchedulingSettings
	err      error
	upserted *domain.SchedulingSettings
}

func (f *fakeSettingsRepo) GetByTenant(_ context.Context, _ uuid.UUID) (*domain.SchedulingSettings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.SchedulingSettings) (*domain.SchedulingSettings, error) {
	settings.ID = 1
	f.upserted = settings
	return settings, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_ReplaceRules(t *testing.T) {
	tenantID := uuid.New()

	t.Run("stores a valid weekly grid", func(t *testing.T) {
		repo := &fakeAvailabilityRepo{}
		svc := NewService(repo, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		resp, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
			TenantID: tenantID,
			Rules: []models.RuleInput{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
				{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00", IsAvailable: true},
			},
		})

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "09:00", resp[0].StartTime)
		require.Len(t, repo.replaced, 2)
		assert.Equal(t, tenantID, repo.replaced[0].TenantID)
	})

	t.Run("rejects an inverted time window", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
			TenantID: tenantID,
			Rules: []models.RuleInput{
				{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00", IsAvailable: true},
			},
		})

		require.ErrorIs(t, err, ErrInvalidRule)
	})

	t.Run("rejects an out of range day", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
			TenantID: tenantID,
			Rules: []models.RuleInput{
				{DayOfWeek: 7, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
			},
		})

		require.ErrorIs(t, err, ErrInvalidRule)
	})

	t.Run("rejects a malformed time string", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
			TenantID: tenantID,
			Rules: []models.RuleInput{
				{DayOfWeek: 1, StartTime: "9am", EndTime: "12:00", IsAvailable: true},
			},
		})

		require.ErrorIs(t, err, ErrInvalidRule)
	})

	t.Run("empty grid clears the schedule", func(t *testing.T) {
		repo := &fakeAvailabilityRepo{}
		svc := NewService(repo, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		resp, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
			TenantID: tenantID,
			Rules:    []models.RuleInput{},
		})

		require.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestService_UpdateSettings(t *testing.T) {
	tenantID := uuid.New()

	t.Run("stores valid settings", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		svc := NewService(&fakeAvailabilityRepo{}, repo, fakeTxManager{}, noopLogger{})

		resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
			TenantID:               tenantID,
			SlotDurationMinutes:    45,
			MinAdvanceBookingHours: 2,
			MaxAdvanceBookingDays:  30,
		})

		require.NoError(t, err)
		assert.Equal(t, 45, resp.SlotDurationMinutes)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, tenantID, repo.upserted.TenantID)
	})

	t.Run("rejects a slot duration out of range", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
			TenantID:            tenantID,
			SlotDurationMinutes: 3,
		})

		require.ErrorIs(t, err, ErrInvalidSettings)
	})

	t.Run("rejects a negative advance window", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{}, &fakeSettingsRepo{}, fakeTxManager{}, noopLogger{})

		_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
			TenantID:              tenantID,
			SlotDurationMinutes:   30,
			MaxAdvanceBookingDays: -1,
		})

		require.ErrorIs(t, err, ErrInvalidSettings)
	})
}

func TestService_GetConfig(t *testing.T) {
	tenantID := uuid.New()

	t.Run("missing settings fall back to defaults", func(t *testing.T) {
		svc := NewService(&fakeAvailabilityRepo{},
			&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
			fakeTxManager{}, noopLogger{})

		resp, err := svc.GetConfig(context.Background(), tenantID)

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.Settings.SlotDurationMinutes)
		assert.Empty(t, resp.Rules)
	})
}
