package services

import (
	"testing"
	"time"

	"krishimitra-backend/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestValidDateRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"normal range", "2025-06-01", "2025-06-03", true},
		{"same day", "2025-06-01", "2025-06-01", true},
		{"reversed", "2025-06-03", "2025-06-01", false},
		{"bad start", "june first", "2025-06-03", false},
		{"bad end", "2025-06-01", "03/06/2025", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		if got := ValidDateRange(tc.start, tc.end); got != tc.want {
			t.Errorf("%s: ValidDateRange(%q, %q) = %v, want %v", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestRentalDaysInclusive(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-06-01", "2025-06-01", 1},
		{"2025-06-01", "2025-06-03", 3},
		{"2025-06-01", "2025-06-30", 30},
		{"not a date", "2025-06-03", 0},
	}
	for _, tc := range cases {
		if got := RentalDays(tc.start, tc.end); got != tc.want {
			t.Errorf("RentalDays(%q, %q) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestTotalPrice(t *testing.T) {
	if got := TotalPrice(100, "2025-06-01", "2025-06-01"); got != 100 {
		t.Errorf("same-day rental = %v, want 100", got)
	}
	if got := TotalPrice(100, "2025-06-01", "2025-06-03"); got != 300 {
		t.Errorf("three-day rental = %v, want 300", got)
	}
	if got := TotalPrice(150.5, "2025-06-01", "2025-06-02"); got != 301 {
		t.Errorf("fractional rate = %v, want 301", got)
	}
	if got := TotalPrice(100, "garbage", "2025-06-03"); got != 0 {
		t.Errorf("unparseable start = %v, want 0", got)
	}
	if got := TotalPrice(-50, "2025-06-01", "2025-06-03"); got != 0 {
		t.Errorf("negative rate = %v, want clamp to 0", got)
	}
}

func TestRangesOverlap(t *testing.T) {
	d := func(s string) time.Time { return mustDate(t, s) }

	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"disjoint before", "2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", false},
		{"shared boundary day", "2025-06-01", "2025-06-03", "2025-06-03", "2025-06-05", true},
		{"contained", "2025-06-01", "2025-06-10", "2025-06-04", "2025-06-05", true},
		{"identical", "2025-06-01", "2025-06-03", "2025-06-01", "2025-06-03", true},
		{"disjoint after", "2025-06-05", "2025-06-06", "2025-06-01", "2025-06-04", false},
	}
	for _, tc := range cases {
		got := RangesOverlap(d(tc.s1), d(tc.e1), d(tc.s2), d(tc.e2))
		if got != tc.want {
			t.Errorf("%s: RangesOverlap = %v, want %v", tc.name, got, tc.want)
		}
		// Overlap is symmetric.
		if rev := RangesOverlap(d(tc.s2), d(tc.e2), d(tc.s1), d(tc.e1)); rev != got {
			t.Errorf("%s: overlap not symmetric", tc.name)
		}
	}
}

func TestHasConflictIgnoresReleasedBookings(t *testing.T) {
	booking := func(status, start, end string) models.Booking {
		return models.Booking{
			Status:    status,
			StartDate: mustDate(t, start),
			EndDate:   mustDate(t, end),
		}
	}

	start := mustDate(t, "2025-06-02")
	end := mustDate(t, "2025-06-04")

	released := []models.Booking{
		booking(models.BookingCancelled, "2025-06-01", "2025-06-10"),
		booking(models.BookingCompleted, "2025-06-01", "2025-06-10"),
	}
	if HasConflict(released, start, end) {
		t.Error("cancelled and completed bookings must not block new dates")
	}

	blocking := append(released, booking(models.BookingPending, "2025-06-04", "2025-06-06"))
	if !HasConflict(blocking, start, end) {
		t.Error("pending booking sharing a day must conflict")
	}

	confirmed := []models.Booking{booking(models.BookingConfirmed, "2025-05-30", "2025-06-02")}
	if !HasConflict(confirmed, start, end) {
		t.Error("confirmed booking sharing a day must conflict")
	}

	clear := []models.Booking{booking(models.BookingConfirmed, "2025-06-05", "2025-06-08")}
	if HasConflict(clear, start, end) {
		t.Error("non-overlapping booking must not conflict")
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{models.BookingPending, models.BookingConfirmed}:   true,
		{models.BookingPending, models.BookingCancelled}:   true,
		{models.BookingConfirmed, models.BookingCompleted}: true,
		{models.BookingConfirmed, models.BookingCancelled}: true,
	}

	statuses := []string{
		models.BookingPending, models.BookingConfirmed,
		models.BookingCompleted, models.BookingCancelled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestIsBookingStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if !IsBookingStatus(s) {
			t.Errorf("IsBookingStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "Pending", "approved", "done"} {
		if IsBookingStatus(s) {
			t.Errorf("IsBookingStatus(%q) = true", s)
		}
	}
}

func TestPlanBookingLifecycle(t *testing.T) {
	tool := models.Tool{OwnerID: 3, DailyRate: 500, Available: true}
	tool.ID = 1

	// Empty calendar: four inclusive days at 500.
	first, err := PlanBooking(tool, nil, 7, "2024-03-01", "2024-03-04")
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.TotalPrice != 2000 {
		t.Errorf("total price = %v, want 2000", first.TotalPrice)
	}
	if first.Status != models.BookingPending {
		t.Errorf("status = %q, want pending", first.Status)
	}
	if first.ToolID != 1 || first.RenterID != 7 {
		t.Errorf("ids = tool %d renter %d", first.ToolID, first.RenterID)
	}

	// Overlapping request while the first is pending.
	if _, err := PlanBooking(tool, []models.Booking{first}, 8, "2024-03-03", "2024-03-05"); err != ErrDateConflict {
		t.Errorf("overlapping request: err = %v, want ErrDateConflict", err)
	}

	// Cancelling the first frees its range immediately.
	first.Status = models.BookingCancelled
	if _, err := PlanBooking(tool, []models.Booking{first}, 8, "2024-03-03", "2024-03-05"); err != nil {
		t.Errorf("after cancellation: %v", err)
	}
}

func TestPlanBookingRejections(t *testing.T) {
	tool := models.Tool{DailyRate: 500, Available: true}
	tool.ID = 1

	if _, err := PlanBooking(tool, nil, 7, "2024-03-04", "2024-03-01"); err != ErrInvalidDateRange {
		t.Errorf("reversed range: err = %v, want ErrInvalidDateRange", err)
	}

	tool.Available = false
	if _, err := PlanBooking(tool, nil, 7, "2024-03-01", "2024-03-04"); err != ErrToolUnavailable {
		t.Errorf("unavailable tool: err = %v, want ErrToolUnavailable", err)
	}
}

func TestCheckStatusChange(t *testing.T) {
	b := models.Booking{RenterID: 7, Status: models.BookingPending}
	const ownerID = 3

	if err := CheckStatusChange(b, ownerID, 7, models.BookingCancelled); err != nil {
		t.Errorf("renter cancelling pending: %v", err)
	}
	if err := CheckStatusChange(b, ownerID, 3, models.BookingConfirmed); err != nil {
		t.Errorf("owner confirming pending: %v", err)
	}
	if err := CheckStatusChange(b, ownerID, 7, "approved"); err != ErrInvalidStatus {
		t.Errorf("unknown status: err = %v, want ErrInvalidStatus", err)
	}
	if err := CheckStatusChange(b, ownerID, 99, models.BookingConfirmed); err != ErrForbidden {
		t.Errorf("stranger: err = %v, want ErrForbidden", err)
	}

	b.Status = models.BookingCompleted
	if err := CheckStatusChange(b, ownerID, 7, models.BookingPending); err != ErrInvalidTransition {
		t.Errorf("terminal state: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCanActOnBooking(t *testing.T) {
	b := models.Booking{RenterID: 7}
	const ownerID = 3

	if !CanActOnBooking(b, ownerID, 7) {
		t.Error("renter must be allowed to act")
	}
	if !CanActOnBooking(b, ownerID, 3) {
		t.Error("tool owner must be allowed to act")
	}
	if CanActOnBooking(b, ownerID, 99) {
		t.Error("unrelated farmer must be rejected")
	}
	if CanActOnBooking(b, ownerID, 0) {
		t.Error("zero actor id must be rejected")
	}
}
