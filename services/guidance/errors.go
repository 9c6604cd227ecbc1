package guidance

import "fmt"

// Guidance error codes.
const (
	CodeInvalidInput = "invalidInput"
	CodeUnavailable  = "guidanceUnavailable"
)

type GuidanceError struct {
	Code    string
	Message string
}

func (e *GuidanceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewGuidanceError(code, msg string) error {
	return &GuidanceError{Code: code, Message: msg}
}

// ErrorCode returns the guidance error code, or "" for other errors.
func ErrorCode(err error) string {
	if ge, ok := err.(*GuidanceError); ok {
		return ge.Code
	}
	return ""
}
