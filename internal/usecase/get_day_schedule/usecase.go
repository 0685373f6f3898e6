package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/facilityops/scheduling-service/internal/domain"
	settingsRepo "github.com/facilityops/scheduling-service/internal/infra/storage/settings"
)

// UseCase builds the bookable day schedule for a tenant
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	settingsRepo     SettingsRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		settingsRepo:     settingsRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute generates the slot sequence for one date and marks each slot's
// occupancy from the tenant's confirmed bookings
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: tenant=%s, date=%s",
		req.TenantID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Scheduling settings, falling back to defaults when none stored
	settings, err := uc.settingsRepo.GetByTenant(ctx, req.TenantID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetDaySchedule: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSettings(req.TenantID)
		uc.logger.Info("GetDaySchedule: using default settings for tenant=%s", req.TenantID)
	}

	// 4. Weekly availability rules
	rules, err := uc.availabilityRepo.ListByTenant(ctx, req.TenantID)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 5. Closed day: no available rules for this weekday
	if !hasAvailability(rules, req.Date) {
		uc.logger.Info("GetDaySchedule: tenant=%s has no availability on %s",
			req.TenantID, req.Date.Format(domain.DateFormat))
		return &Response{
			TenantID: req.TenantID,
			Date:     req.Date,
			Open:     false,
			Slots:    []Slot{},
		}, nil
	}

	// 6. Past dates expose no bookable slots
	if isDateInPast(req.Date, now) {
		return &Response{
			TenantID: req.TenantID,
			Date:     req.Date,
			Open:     true,
			Slots:    []Slot{},
		}, nil
	}

	// 7. Generate the raw slot sequence
	slots, err := generateDaySlots(rules, req.Date, settings.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 8. Drop slots already past the booking notice when the date is today
	slots = filterPastSlots(slots, req.Date, now, settings.MinNoticeMinutes())

	// 9. Bookings of this tenant on this date
	filter := domain.BookingsFilter{
		TenantID: req.TenantID,
		Date:     &req.Date,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 10. Mark occupancy for each slot
	marked := markOccupancy(slots, bookings)

	responseSlots := make([]Slot, len(marked))
	for i, sa := range marked {
		responseSlots[i] = fromSlotAvailability(sa, settings.SlotDurationMinutes)
	}

	uc.logger.Info("GetDaySchedule: generated %d slots for tenant=%s, date=%s",
		len(responseSlots), req.TenantID, req.Date.Format(domain.DateFormat))

	return &Response{
		TenantID: req.TenantID,
		Date:     req.Date,
		Open:     true,
		Slots:    responseSlots,
	}, nil
}
