package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
)

// AvailabilityRepository is the weekly rule storage surface
type AvailabilityRepository interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.AvailabilityRule, error)
	ReplaceForTenant(ctx context.Context, tenantID uuid.UUID, rules []*domain.AvailabilityRule) ([]*domain.AvailabilityRule, error)
}

// SettingsRepository is the scheduling settings storage surface
type SettingsRepository interface {
	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.SchedulingSettings, error)
	Upsert(ctx context.Context, settings *domain.SchedulingSettings) (*domain.SchedulingSettings, error)
}

// TransactionManager runs the rule replacement atomically
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface consumed by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
