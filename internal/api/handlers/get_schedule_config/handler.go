package get_schedule_config

import (
	"net/http"

	"github.com/facilityops/scheduling-service/internal/api/handlers"
	"github.com/facilityops/scheduling-service/internal/api/middleware"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	config, err := h.service.GetConfig(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /schedule/config - Failed to get config: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/config - Config retrieved: tenant=%s, rules=%d", tenantID, len(config.Rules))
	handlers.RespondJSON(w, http.StatusOK, config)
}
