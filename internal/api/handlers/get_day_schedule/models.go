package get_day_schedule

import (
	"github.com/facilityops/scheduling-service/internal/domain"
	getDaySchedule "github.com/facilityops/scheduling-service/internal/usecase/get_day_schedule"
)

// SlotResponse HTTP model of one slot
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:00"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date  string         `json:"date"` // "2026-09-07"
	Open  bool           `json:"open"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.Start,
			EndTime:         slot.End,
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &DayScheduleResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Open:  resp.Open,
		Slots: slots,
	}
}
