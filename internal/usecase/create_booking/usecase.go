package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facilityops/scheduling-service/internal/domain"
	bookingRepo "github.com/facilityops/scheduling-service/internal/infra/storage/booking"
	settingsRepo "github.com/facilityops/scheduling-service/internal/infra/storage/settings"
	"github.com/facilityops/scheduling-service/pkg/types"
)

// UseCase books one slot for a tenant
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	settingsRepo     SettingsRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		settingsRepo:     settingsRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute creates a booking for the requested slot.
//
// The occupancy check and the insert run inside a serializable transaction
// with the date's bookings locked, so two concurrent requests for the same
// slot cannot both pass the check. The database exclusion constraint is the
// final line of defense; its violation surfaces as ErrSlotConflict too.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, date=%s, time=%s",
		req.TenantID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	var result *domain.Booking
	var slotDuration int

	// 3. Run the check-and-insert atomically
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Scheduling settings, falling back to defaults when none stored
		settings, err := uc.settingsRepo.GetByTenant(txCtx, req.TenantID)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("CreateBooking: failed to get settings: %v", err)
				return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
			}
			settings = domain.DefaultSettings(req.TenantID)
			uc.logger.Info("CreateBooking: using default settings for tenant=%s", req.TenantID)
		}
		slotDuration = settings.SlotDurationMinutes

		// 3.2. Date must be bookable under the tenant's advance window
		if err := validateDate(req.Date, now, settings.MaxAdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 3.3. Weekly availability rules
		rules, err := uc.availabilityRepo.ListByTenant(txCtx, req.TenantID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability rules: %v", err)
			return fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
		}

		if !hasAvailability(rules, req.Date) {
			uc.logger.Warn("CreateBooking: tenant=%s has no availability on %s",
				req.TenantID, req.Date.Format(domain.DateFormat))
			return ErrDayClosed
		}

		// 3.4. The requested start must match a slot the schedule offers
		if err := validateSlotOffered(rules, req.Date, req.StartTime, slotDuration); err != nil {
			uc.logger.Warn("CreateBooking: slot %s not offered on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return err
		}

		// 3.5. Minimum advance notice for same-day bookings
		if err := validateBookingTime(req.Date, req.StartTime, now, settings.MinNoticeMinutes()); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 3.6. Fetch the date's bookings with FOR UPDATE
		filter := domain.BookingsFilter{
			TenantID: req.TenantID,
			Date:     &req.Date,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.7. Occupancy check
		slotEnd, err := req.StartTime.AddMinutes(slotDuration)
		if err != nil {
			return fmt.Errorf("%w: failed to calculate slot end: %v", ErrInternal, err)
		}

		if hasOverlappingBooking(req.StartTime, slotEnd, bookings) {
			uc.logger.Warn("CreateBooking: slot %s-%s already booked", req.StartTime, slotEnd)
			return ErrSlotConflict
		}

		// 3.8. Build and insert the booking
		startAt, err := atTime(req.Date, req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: failed to calculate start timestamp: %v", ErrInternal, err)
		}
		endAt, err := atTime(req.Date, slotEnd)
		if err != nil {
			return fmt.Errorf("%w: failed to calculate end timestamp: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			TenantID:    req.TenantID,
			CustomerID:  req.CustomerID,
			BookingDate: dateOnly(req.Date),
			StartAt:     startAt,
			EndAt:       endAt,
			Status:      domain.StatusConfirmed,

			ContactName:  req.ContactName,
			ContactPhone: req.ContactPhone,
			ContactEmail: req.ContactEmail,
			Description:  req.Description,
			Location:     req.Location,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingConflict) {
				uc.logger.Warn("CreateBooking: overlap constraint rejected slot %s-%s", req.StartTime, slotEnd)
				return ErrSlotConflict
			}
			if errors.Is(err, bookingRepo.ErrEndBeforeStart) {
				return ErrInvalidTimeSlot
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		TenantID:   result.TenantID,
		CustomerID: result.CustomerID,

		BookingDate:     result.BookingDate,
		StartTime:       result.StartTimeOfDay(),
		EndTime:         result.EndTimeOfDay(),
		DurationMinutes: slotDuration,
		Status:          string(result.Status),

		ContactName:  result.ContactName,
		ContactPhone: result.ContactPhone,
		ContactEmail: result.ContactEmail,
		Description:  result.Description,
		Location:     result.Location,

		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// dateOnly truncates an instant to its calendar date
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// atTime anchors a wall-clock time on the given date. The "24:00" end marker
// lands on midnight of the next day.
func atTime(date time.Time, ts types.TimeString) (time.Time, error) {
	minutes, err := ts.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return dateOnly(date).Add(time.Duration(minutes) * time.Minute), nil
}
