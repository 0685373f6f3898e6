package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/facilityops/scheduling-service/internal/api/handlers"
	"github.com/facilityops/scheduling-service/internal/api/middleware"
	"github.com/facilityops/scheduling-service/internal/domain"
	getDaySchedule "github.com/facilityops/scheduling-service/internal/usecase/get_day_schedule"
)

const (
	msgMissingDate = "parâmetro date é obrigatório"
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidData = "dados da requisição inválidos"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /schedule/slots - Missing date parameter: tenant=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date %q: tenant=%s", rawDate, tenantID)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		TenantID: tenantID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/slots - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /schedule/slots - Failed to build schedule: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.ObserveSlotsGenerated(len(result.Slots))
	h.logger.Info("GET /schedule/slots - Returned %d slots: tenant=%s, date=%s",
		len(result.Slots), tenantID, rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
