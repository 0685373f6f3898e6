package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
	settingsRepo "github.com/facilityops/scheduling-service/internal/infra/storage/settings"
	"github.com/facilityops/scheduling-service/internal/service/schedule/models"
)

// Service manages the tenant's availability rules and scheduling settings
type Service struct {
	availabilityRepo AvailabilityRepository
	settingsRepo     SettingsRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService creates a new schedule configuration service
func NewService(
	availabilityRepo AvailabilityRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		settingsRepo:     settingsRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetConfig fetches the tenant's rules and settings together. Tenants that
// never configured settings get the defaults.
func (s *Service) GetConfig(ctx context.Context, tenantID uuid.UUID) (*models.ScheduleConfigResponse, error) {
	s.logger.Info("GetConfig: fetching schedule config for tenant=%s", tenantID)

	settings, err := s.settingsRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetConfig: failed to get settings for tenant=%s: %v", tenantID, err)
			return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
		}
		settings = domain.DefaultSettings(tenantID)
	}

	rules, err := s.availabilityRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetConfig: failed to get rules for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	return &models.ScheduleConfigResponse{
		TenantID: tenantID,
		Settings: models.FromDomainSettings(settings),
		Rules:    models.FromDomainRules(rules),
	}, nil
}

// ReplaceRules atomically replaces the tenant's weekly availability grid
func (s *Service) ReplaceRules(ctx context.Context, req *models.ReplaceRulesRequest) ([]models.RuleResponse, error) {
	s.logger.Info("ReplaceRules: replacing %d rules for tenant=%s", len(req.Rules), req.TenantID)

	rules := make([]*domain.AvailabilityRule, len(req.Rules))
	for i, input := range req.Rules {
		rule, err := input.ToDomainRule(req.TenantID)
		if err != nil {
			s.logger.Warn("ReplaceRules: invalid rule %d for tenant=%s: %v", i, req.TenantID, err)
			return nil, fmt.Errorf("%w: rule %d: %v", ErrInvalidRule, i, err)
		}
		if err := validateRule(rule); err != nil {
			s.logger.Warn("ReplaceRules: invalid rule %d for tenant=%s: %v", i, req.TenantID, err)
			return nil, err
		}
		rules[i] = rule
	}

	var stored []*domain.AvailabilityRule
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		stored, err = s.availabilityRepo.ReplaceForTenant(txCtx, req.TenantID, rules)
		return err
	})
	if err != nil {
		s.logger.Error("ReplaceRules: failed to replace rules for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: ReplaceRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceRules: stored %d rules for tenant=%s", len(stored), req.TenantID)
	return models.FromDomainRules(stored), nil
}

// UpdateSettings creates or updates the tenant's scheduling settings
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating settings for tenant=%s", req.TenantID)

	settings := req.ToDomainSettings()
	if err := validateSettings(settings); err != nil {
		s.logger.Warn("UpdateSettings: invalid settings for tenant=%s: %v", req.TenantID, err)
		return nil, err
	}

	stored, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("UpdateSettings: failed to upsert settings for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSettings(stored)
	return &resp, nil
}

// validateRule checks the rule's day and time window
func validateRule(rule *domain.AvailabilityRule) error {
	if rule.DayOfWeek < 0 || rule.DayOfWeek >= domain.DaysPerWeek {
		return fmt.Errorf("%w: dayOfWeek must be 0..6, got %d", ErrInvalidRule, rule.DayOfWeek)
	}
	if !rule.StartTime.IsBefore(rule.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidRule, rule.StartTime, rule.EndTime)
	}
	return nil
}

// validateSettings checks the settings ranges
func validateSettings(settings *domain.SchedulingSettings) error {
	if settings.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		settings.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be %d..%d",
			ErrInvalidSettings, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if settings.MinAdvanceBookingHours < domain.MinAdvanceBookingHours ||
		settings.MinAdvanceBookingHours > domain.MaxAdvanceBookingHours {
		return fmt.Errorf("%w: minAdvanceBookingHours must be %d..%d",
			ErrInvalidSettings, domain.MinAdvanceBookingHours, domain.MaxAdvanceBookingHours)
	}
	if settings.MaxAdvanceBookingDays < domain.MinAdvanceBookingDaysMin ||
		settings.MaxAdvanceBookingDays > domain.MaxAdvanceBookingDaysMax {
		return fmt.Errorf("%w: maxAdvanceBookingDays must be %d..%d",
			ErrInvalidSettings, domain.MinAdvanceBookingDaysMin, domain.MaxAdvanceBookingDaysMax)
	}
	return nil
}
