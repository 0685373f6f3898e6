package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/pkg/types"
)

// AvailabilityRule is a recurring weekly window during which slots may be
// offered. Several rules may exist for the same day (morning and afternoon
// windows); their slots are unioned.
type AvailabilityRule struct {
	ID          int64
	TenantID    uuid.UUID
	DayOfWeek   int // 0 = Sunday .. 6 = Saturday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo returns true if the rule produces slots on the given date
func (r *AvailabilityRule) AppliesTo(date time.Time) bool {
	return r.IsAvailable && r.DayOfWeek == int(date.Weekday())
}
