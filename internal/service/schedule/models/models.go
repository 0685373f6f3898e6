package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
	"github.com/facilityops/scheduling-service/pkg/types"
)

// Request models

// RuleInput is one weekly availability window as submitted by the admin
type RuleInput struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "18:00"
	IsAvailable bool   `json:"isAvailable"`
}

// ReplaceRulesRequest replaces the tenant's whole weekly grid
type ReplaceRulesRequest struct {
	TenantID uuid.UUID   `json:"-"`
	Rules    []RuleInput `json:"rules"`
}

// UpdateSettingsRequest updates the tenant's scheduling settings
type UpdateSettingsRequest struct {
	TenantID               uuid.UUID `json:"-"`
	SlotDurationMinutes    int       `json:"slotDurationMinutes"`
	MinAdvanceBookingHours int       `json:"minAdvanceBookingHours"`
	MaxAdvanceBookingDays  int       `json:"maxAdvanceBookingDays"`
}

// ToDomainRule converts one rule input, validating times
func (r *RuleInput) ToDomainRule(tenantID uuid.UUID) (*domain.AvailabilityRule, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityRule{
		TenantID:    tenantID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: r.IsAvailable,
	}, nil
}

// ToDomainSettings converts the request into the domain model
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.SchedulingSettings {
	return &domain.SchedulingSettings{
		TenantID:               r.TenantID,
		SlotDurationMinutes:    r.SlotDurationMinutes,
		MinAdvanceBookingHours: r.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:  r.MaxAdvanceBookingDays,
	}
}

// Response models

// RuleResponse is one stored availability rule
type RuleResponse struct {
	ID          int64  `json:"id"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// SettingsResponse is the tenant's scheduling settings
type SettingsResponse struct {
	SlotDurationMinutes    int       `json:"slotDurationMinutes"`
	MinAdvanceBookingHours int       `json:"minAdvanceBookingHours"`
	MaxAdvanceBookingDays  int       `json:"maxAdvanceBookingDays"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// ScheduleConfigResponse bundles the rules and settings of one tenant
type ScheduleConfigResponse struct {
	TenantID uuid.UUID        `json:"tenantId"`
	Settings SettingsResponse `json:"settings"`
	Rules    []RuleResponse   `json:"rules"`
}

// FromDomainRule converts the domain model into a DTO
func FromDomainRule(r *domain.AvailabilityRule) RuleResponse {
	return RuleResponse{
		ID:          r.ID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		IsAvailable: r.IsAvailable,
	}
}

// FromDomainRules converts a list of domain rules into DTOs
func FromDomainRules(rules []*domain.AvailabilityRule) []RuleResponse {
	result := make([]RuleResponse, len(rules))
	for i, rule := range rules {
		result[i] = FromDomainRule(rule)
	}
	return result
}

// FromDomainSettings converts the domain model into a DTO
func FromDomainSettings(s *domain.SchedulingSettings) SettingsResponse {
	return SettingsResponse{
		SlotDurationMinutes:    s.SlotDurationMinutes,
		MinAdvanceBookingHours: s.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:  s.MaxAdvanceBookingDays,
		UpdatedAt:              s.UpdatedAt,
	}
}
