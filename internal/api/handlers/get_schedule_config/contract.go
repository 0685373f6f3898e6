package get_schedule_config

import (
	"context"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetConfig(ctx context.Context, tenantID uuid.UUID) (*models.ScheduleConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
