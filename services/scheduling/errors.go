package scheduling

import "fmt"

// Booking error codes. These are expected, recoverable outcomes; the
// HTTP layer maps them onto status codes.
const (
	CodeInvalidDate     = "invalidDate"
	CodeSlotUnavailable = "slotUnavailable"
	CodeMissingReason   = "missingReason"
	CodeNotFound        = "notFound"
	CodeAlreadyFinal    = "alreadyFinal"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{Code: code, Message: msg}
}

// ErrorCode returns the booking error code, or "" for other errors.
func ErrorCode(err error) string {
	if be, ok := err.(*BookingError); ok {
		return be.Code
	}
	return ""
}
