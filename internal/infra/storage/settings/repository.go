package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
	"github.com/facilityops/scheduling-service/pkg/psqlbuilder"
	"github.com/facilityops/scheduling-service/pkg/txmanager"
)

// Reuse the txmanager executor interfaces so the repository transparently
// joins a transaction carried in the context.
type DBExecutor = txmanager.DBExecutor

// Repository persists tenant scheduling settings in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new scheduling settings repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant fetches the tenant's scheduling settings
func (r *Repository) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.SchedulingSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"slot_duration_minutes",
		"min_advance_booking_hours",
		"max_advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("scheduling_settings").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.SchedulingSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.TenantID,
		&settings.SlotDurationMinutes,
		&settings.MinAdvanceBookingHours,
		&settings.MaxAdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert creates or updates the tenant's single settings row
func (r *Repository) Upsert(ctx context.Context, settings *domain.SchedulingSettings) (*domain.SchedulingSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("scheduling_settings").
		Columns(
			"tenant_id",
			"slot_duration_minutes",
			"min_advance_booking_hours",
			"max_advance_booking_days",
		).
		Values(
			settings.TenantID,
			settings.SlotDurationMinutes,
			settings.MinAdvanceBookingHours,
			settings.MaxAdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			min_advance_booking_hours = EXCLUDED.min_advance_booking_hours,
			max_advance_booking_days = EXCLUDED.max_advance_booking_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
