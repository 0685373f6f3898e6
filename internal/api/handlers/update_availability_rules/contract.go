package update_availability_rules

import (
	"context"

	"github.com/facilityops/scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceRules(ctx context.Context, req *models.ReplaceRulesRequest) ([]models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
