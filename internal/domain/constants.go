package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes    = 30
	DefaultMinAdvanceBookingHours = 0
	DefaultMaxAdvanceBookingDays  = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotDurationMinutes    = 5
	MaxSlotDurationMinutes    = 480 // 8 hours
	MinAdvanceBookingHours    = 0
	MaxAdvanceBookingHours    = 168 // 1 week
	MinAdvanceBookingDaysMin  = 0
	MaxAdvanceBookingDaysMax  = 365 // 1 year
	MaxDescriptionLength      = 500
	MaxLocationLength         = 255
	MaxContactNameLength      = 120
	MaxCancellationReasonLen  = 500
	DaysPerWeek               = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses excluded from listings by default
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ValidStatuses lists every status a booking may carry
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
