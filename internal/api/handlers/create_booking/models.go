package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/facilityops/scheduling-service/internal/domain"
	createBooking "github.com/facilityops/scheduling-service/internal/usecase/create_booking"
	"github.com/facilityops/scheduling-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID  *uuid.UUID `json:"customerId,omitempty"`
	BookingDate string     `json:"bookingDate"` // "2026-09-07"
	StartTime   string     `json:"startTime"`   // "10:00"

	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	ContactEmail string  `json:"contactEmail"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64      `json:"id"`
	CustomerID      *uuid.UUID `json:"customerId,omitempty"`
	BookingDate     string     `json:"bookingDate"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Status          string     `json:"status"`

	ContactName  string  `json:"contactName"`
	ContactPhone string  `json:"contactPhone"`
	ContactEmail string  `json:"contactEmail"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID uuid.UUID) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantID:     tenantID,
		CustomerID:   r.CustomerID,
		Date:         bookingDate,
		StartTime:    startTime,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		Description:  r.Description,
		Location:     r.Location,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ContactName:     resp.ContactName,
		ContactPhone:    resp.ContactPhone,
		ContactEmail:    resp.ContactEmail,
		Description:     resp.Description,
		Location:        resp.Location,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
