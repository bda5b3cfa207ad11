package services

import (
	"time"

	"krishimitra-backend/models"
)

// DateLayout is the calendar-date wire format for booking ranges.
const DateLayout = "2006-01-02"

// ParseDate parses a yyyy-mm-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDateRange reports whether both strings parse as calendar dates and
// end is not before start. Bad input yields false, never an error; callers
// reject the request before doing anything else.
func ValidDateRange(start, end string) bool {
	s, err := ParseDate(start)
	if err != nil {
		return false
	}
	e, err := ParseDate(end)
	if err != nil {
		return false
	}
	return !e.Before(s)
}

// RentalDays returns the inclusive number of days spanned by [start, end],
// with a floor of one day: a same-day rental still costs a full day.
// Unparseable input yields 0 as a defensive fallback; ValidDateRange is the
// real gate.
func RentalDays(start, end string) int {
	s, err := ParseDate(start)
	if err != nil {
		return 0
	}
	e, err := ParseDate(end)
	if err != nil {
		return 0
	}
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice computes dailyRate * inclusive days, clamped at zero. Full
// precision is kept here; rounding to the minor unit happens at display
// time only.
func TotalPrice(dailyRate float64, start, end string) float64 {
	days := RentalDays(start, end)
	if days == 0 {
		return 0
	}
	total := dailyRate * float64(days)
	if total < 0 {
		return 0
	}
	return total
}

// RangesOverlap tests two closed date intervals: [s1,e1] and [s2,e2]
// overlap iff s1 <= e2 && e1 >= s2.
func RangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

// blocksRange reports whether an existing booking makes [start, end]
// unavailable. Only pending and confirmed bookings hold their dates;
// cancelling a booking frees its range immediately and completed rentals
// never block new ones.
func blocksRange(b models.Booking, start, end time.Time) bool {
	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return false
	}
	return RangesOverlap(b.StartDate, b.EndDate, start, end)
}

// HasConflict reports whether any booking in the list blocks [start, end].
func HasConflict(bookings []models.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if blocksRange(b, start, end) {
			return true
		}
	}
	return false
}

// IsBookingStatus reports whether s is one of the four known statuses.
func IsBookingStatus(s string) bool {
	switch s {
	case models.BookingPending, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
		return true
	}
	return false
}

// CanTransition enforces the forward-only booking lifecycle:
// pending -> confirmed -> completed, with cancellation allowed from
// pending or confirmed. Terminal states never change.
func CanTransition(from, to string) bool {
	switch from {
	case models.BookingPending:
		return to == models.BookingConfirmed || to == models.BookingCancelled
	case models.BookingConfirmed:
		return to == models.BookingCompleted || to == models.BookingCancelled
	}
	return false
}

// CanActOnBooking reports whether actorID may change the booking: only the
// renter or the tool's owner, nobody else.
func CanActOnBooking(b models.Booking, toolOwnerID, actorID uint) bool {
	return actorID != 0 && (actorID == b.RenterID || actorID == toolOwnerID)
}

// PlanBooking runs the creation checks against a tool and its active
// bookings and returns the pending booking to insert. It is the single
// place the creation rules live; the service calls it inside the locked
// transaction with the rows it loaded there.
func PlanBooking(tool models.Tool, active []models.Booking, renterID uint, start, end string) (models.Booking, error) {
	if !ValidDateRange(start, end) {
		return models.Booking{}, ErrInvalidDateRange
	}
	if !tool.Available {
		return models.Booking{}, ErrToolUnavailable
	}

	s, _ := ParseDate(start)
	e, _ := ParseDate(end)
	if HasConflict(active, s, e) {
		return models.Booking{}, ErrDateConflict
	}

	return models.Booking{
		ToolID:     tool.ID,
		RenterID:   renterID,
		StartDate:  s,
		EndDate:    e,
		TotalPrice: TotalPrice(tool.DailyRate, start, end),
		Status:     models.BookingPending,
	}, nil
}

// CheckStatusChange validates a status update end to end: known status,
// permitted actor, legal transition.
func CheckStatusChange(b models.Booking, toolOwnerID, actorID uint, newStatus string) error {
	if !IsBookingStatus(newStatus) {
		return ErrInvalidStatus
	}
	if !CanActOnBooking(b, toolOwnerID, actorID) {
		return ErrForbidden
	}
	if !CanTransition(b.Status, newStatus) {
		return ErrInvalidTransition
	}
	return nil
}
