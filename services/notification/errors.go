package notification

import "fmt"

// Waitlist/notification error codes.
const (
	CodeAlreadyOnWaitlist = "alreadyOnWaitlist"
	CodeNotFound          = "notFound"
)

type WaitlistError struct {
	Code    string
	Message string
}

func (e *WaitlistError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewWaitlistError(code, msg string) error {
	return &WaitlistError{Code: code, Message: msg}
}

// ErrorCode returns the waitlist error code, or "" for other errors.
func ErrorCode(err error) string {
	if we, ok := err.(*WaitlistError); ok {
		return we.Code
	}
	return ""
}
