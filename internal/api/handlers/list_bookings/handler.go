package list_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/api/handlers"
	"github.com/facilityops/scheduling-service/internal/api/middleware"
	"github.com/facilityops/scheduling-service/internal/service/bookings"
	"github.com/facilityops/scheduling-service/internal/service/bookings/models"
)

const (
	msgInvalidFilter     = "parâmetros de filtro inválidos"
	msgInvalidCustomerID = "customerId inválido, esperado um UUID"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=&status=&customerId=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		TenantID:        tenantID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if rawCustomer := query.Get("customerId"); rawCustomer != "" {
		customerID, err := uuid.Parse(rawCustomer)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid customer ID %q: tenant=%s", rawCustomer, tenantID)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		req.CustomerID = &customerID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: tenant=%s, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings: tenant=%s", len(result.Bookings), tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
