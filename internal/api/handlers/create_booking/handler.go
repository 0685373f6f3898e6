package create_booking

import (
	"errors"
	"net/http"

	"github.com/facilityops/scheduling-service/internal/api/handlers"
	"github.com/facilityops/scheduling-service/internal/api/middleware"
	createBooking "github.com/facilityops/scheduling-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateFormat  = "formato de data inválido, esperado YYYY-MM-DD"
	msgSlotConflict       = "este horário já está reservado, escolha outro horário"
	msgDayClosed          = "não há atendimento na data selecionada"
	msgInvalidDate        = "data de agendamento inválida"
	msgDateTooFar         = "data de agendamento muito distante no futuro"
	msgInvalidTimeSlot    = "horário inválido para esta agenda"
	msgTooLateToBook      = "prazo mínimo de antecedência não respeitado"
	msgInvalidData        = "dados do agendamento inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: tenant=%s, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: tenant=%s, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: tenant=%s, date=%s, time=%s",
				tenantID, req.BookingDate, req.StartTime)
			h.metrics.IncBookingConflict()
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrDayClosed):
			h.logger.Warn("POST /bookings - Day closed: tenant=%s, date=%s", tenantID, req.BookingDate)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDayClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: tenant=%s, date=%s", tenantID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far: tenant=%s, date=%s", tenantID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: tenant=%s, time=%s", tenantID, req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: tenant=%s, time=%s", tenantID, req.StartTime)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncBookingCreated()
	h.logger.Info("POST /bookings - Booking created: booking_id=%d, tenant=%s, date=%s, time=%s",
		result.ID, tenantID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
