package get_day_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facilityops/scheduling-service/internal/api/middleware"
	getDaySchedule "github.com/facilityops/scheduling-service/internal/usecase/get_day_schedule"
)

type fakeUseCase struct {
	resp *getDaySchedule.Response
	err  error
	req  *getDaySchedule.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDaySchedule.Request) (*getDaySchedule.Response, error) {
	f.req = req
	return f.resp, f.err
}

type fakeMetrics struct {
	observed int
}

func (f *fakeMetrics) ObserveSlotsGenerated(count int) { f.observed = count }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, &fakeMetrics{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, url, nil)
	req = req.WithContext(middleware.WithTenant(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	t.Run("returns the day schedule", func(t *testing.T) {
		uc := &fakeUseCase{resp: &getDaySchedule.Response{
			Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			Open: true,
			Slots: []getDaySchedule.Slot{
				{Start: "09:00", End: "10:00", DurationMinutes: 60, Available: true},
				{Start: "10:00", End: "11:00", DurationMinutes: 60, Available: false},
			},
		}}

		rec := doRequest(t, uc, "/api/v1/schedule/slots?date=2026-09-07")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"open":true`)
		assert.Contains(t, rec.Body.String(), `"startTime":"09:00"`)
		require.NotNil(t, uc.req)
		assert.Equal(t, "2026-09-07", uc.req.Date.Format("2006-01-02"))
	})

	t.Run("missing date returns 400", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "/api/v1/schedule/slots")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "date")
	})

	t.Run("malformed date returns 400", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "/api/v1/schedule/slots?date=next-monday")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal error returns 500", func(t *testing.T) {
		uc := &fakeUseCase{err: getDaySchedule.ErrInternal}

		rec := doRequest(t, uc, "/api/v1/schedule/slots?date=2026-09-07")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
