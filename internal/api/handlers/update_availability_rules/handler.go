package update_availability_rules

import (
	"errors"
	"net/http"

	"github.com/facilityops/scheduling-service/internal/api/handlers"
	"github.com/facilityops/scheduling-service/internal/api/middleware"
	"github.com/facilityops/scheduling-service/internal/service/schedule"
	"github.com/facilityops/scheduling-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidRule        = "regra de disponibilidade inválida"
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

// RulesResponse wraps the stored weekly grid
type RulesResponse struct {
	Rules []models.RuleResponse `json:"rules"`
}

// Handle PUT /api/v1/schedule/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req models.ReplaceRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/rules - Invalid request body: tenant=%s, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.TenantID = tenantID

	rules, err := h.service.ReplaceRules(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRule):
			h.logger.Warn("PUT /schedule/rules - Invalid rule: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /schedule/rules - Failed to replace rules: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/rules - Stored %d rules: tenant=%s", len(rules), tenantID)
	handlers.RespondJSON(w, http.StatusOK, RulesResponse{Rules: rules})
}
