package telemedicine

import (
	"errors"
	"fmt"

	"healthhub/database"
	"healthhub/models"
)

// Session error codes.
const (
	CodeNotFound          = "notFound"
	CodeInvalidTransition = "invalidTransition"
)

type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode returns the session error code, or "" for other errors.
func ErrorCode(err error) string {
	if se, ok := err.(*SessionError); ok {
		return se.Code
	}
	return ""
}

// TelemedicineService manages remote-consultation sessions.
type TelemedicineService interface {
	ListForPatient(patientID string) []models.TelemedicineSession
	UpdateStatus(sessionID, next string) (*models.TelemedicineSession, error)
}

// DefaultTelemedicineService is the concrete implementation.
type DefaultTelemedicineService struct {
	Store *database.MemoryStore
}

// transitions is the allowed status lifecycle: scheduled sessions can
// start or cancel, in-progress sessions can finish or cancel, finished
// and canceled are terminal.
var transitions = map[string][]string{
	models.SessionScheduled:  {models.SessionInProgress, models.SessionCanceled},
	models.SessionInProgress: {models.SessionFinished, models.SessionCanceled},
}

func (s *DefaultTelemedicineService) ListForPatient(patientID string) []models.TelemedicineSession {
	return s.Store.SessionsByPatient(patientID)
}

// UpdateStatus moves a session along the lifecycle; anything else is
// rejected without mutation.
func (s *DefaultTelemedicineService) UpdateStatus(sessionID, next string) (*models.TelemedicineSession, error) {
	updated, err := s.Store.UpdateSession(sessionID, func(sess *models.TelemedicineSession) error {
		for _, allowed := range transitions[sess.Status] {
			if next == allowed {
				sess.Status = next
				return nil
			}
		}
		return &SessionError{
			Code:    CodeInvalidTransition,
			Message: fmt.Sprintf("cannot move session from %s to %s", sess.Status, next),
		}
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, &SessionError{Code: CodeNotFound, Message: "session not found"}
		}
		return nil, err
	}
	return &updated, nil
}
