package services

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes with errors.Is.
var (
	ErrInvalidDateRange  = errors.New("invalid_date_range")
	ErrToolNotFound      = errors.New("tool_not_found")
	ErrToolUnavailable   = errors.New("tool_not_available")
	ErrDateConflict      = errors.New("dates_conflict")
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidTransition = errors.New("invalid_status_transition")
	ErrNotFound          = errors.New("not_found")
	ErrValidation        = errors.New("validation")
)

// isDuplicateKey reports whether err is a MySQL duplicate-entry violation
// (error 1062), raised by the schema's unique indexes. Writes racing past
// an application-level existence check land here.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
