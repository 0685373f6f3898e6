package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilityops/scheduling-service/internal/api/middleware"
	createBooking "github.com/facilityops/scheduling-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	req  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

type fakeMetrics struct {
	created   int
	conflicts int
}

func (f *fakeMetrics) IncBookingCreated()  { f.created++ }
func (f *fakeMetrics) IncBookingConflict() { f.conflicts++ }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"bookingDate": "2026-09-07",
	"startTime": "10:00",
	"contactName": "Maria Souza",
	"contactPhone": "+55 11 91234-5678",
	"contactEmail": "maria@example.com"
}`

func doRequest(t *testing.T, uc *fakeUseCase, m *fakeMetrics, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, m, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req = req.WithContext(middleware.WithTenant(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("created booking returns 201", func(t *testing.T) {
		uc := &fakeUseCase{resp: &createBooking.Response{
			ID:          42,
			BookingDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			StartTime:   "10:00",
			EndTime:     "11:00",
			Status:      "confirmed",
		}}
		m := &fakeMetrics{}

		rec := doRequest(t, uc, m, validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":42`)
		assert.Equal(t, 1, m.created)
		require.NotNil(t, uc.req)
		assert.Equal(t, "10:00", uc.req.StartTime.String())
	})

	t.Run("slot conflict returns 409 with the reserved-slot message", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrSlotConflict}
		m := &fakeMetrics{}

		rec := doRequest(t, uc, m, validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "já está reservado")
		assert.Equal(t, 1, m.conflicts)
		assert.Equal(t, 0, m.created)
	})

	t.Run("closed day returns 422", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrDayClosed}

		rec := doRequest(t, uc, &fakeMetrics{}, validBody)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, &fakeMetrics{}, `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date format returns 400", func(t *testing.T) {
		body := strings.Replace(validBody, "2026-09-07", "07/09/2026", 1)

		rec := doRequest(t, &fakeUseCase{}, &fakeMetrics{}, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error returns 400", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrInvalidInput}

		rec := doRequest(t, uc, &fakeMetrics{}, validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error returns 500", func(t *testing.T) {
		uc := &fakeUseCase{err: createBooking.ErrInternal}

		rec := doRequest(t, uc, &fakeMetrics{}, validBody)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
