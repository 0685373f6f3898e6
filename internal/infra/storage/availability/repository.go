package availability

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
	"github.com/facilityops/scheduling-service/pkg/psqlbuilder"
	"github.com/facilityops/scheduling-service/pkg/txmanager"
)

var ruleColumns = []string{
	"id",
	"tenant_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository persists weekly availability rules in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new availability rules repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByTenant fetches the tenant's full weekly rule set, unfiltered by day.
// Callers select the day locally; the set is small by construction.
func (r *Repository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.AvailabilityRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// ReplaceForTenant atomically replaces the tenant's weekly grid with the
// given rule set. Meant to run inside a transaction; the admin screen always
// saves the whole grid at once.
func (r *Repository) ReplaceForTenant(ctx context.Context, tenantID uuid.UUID, rules []*domain.AvailabilityRule) ([]*domain.AvailabilityRule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForTenant - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForTenant - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return []*domain.AvailabilityRule{}, nil
	}

	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns("tenant_id", "day_of_week", "start_time", "end_time", "is_available")

	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(
			tenantID,
			rule.DayOfWeek,
			rule.StartTime,
			rule.EndTime,
			rule.IsAvailable,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.
		Suffix("RETURNING " + strings.Join(ruleColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForTenant - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForTenant - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

func scanRules(rows *sql.Rows) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0)

	for rows.Next() {
		var rule domain.AvailabilityRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.TenantID,
			&rule.DayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsAvailable,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}
