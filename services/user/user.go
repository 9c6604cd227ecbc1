package user

import (
	"errors"
	"fmt"

	"healthhub/database"
	"healthhub/models"
)

// UserService exposes profile and medical-history reads plus the
// profile edit the portal allows.
type UserService interface {
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, changes models.ProfileUpdate) (*models.User, error)
	MedicalHistory(patientID string) []models.MedicalRecord
	ActiveTreatments(patientID string) []models.ActiveTreatment
}

// DefaultUserService is the concrete implementation.
type DefaultUserService struct {
	Store *database.MemoryStore
}

func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	u, err := s.Store.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}
	return &u, nil
}

// UpdateProfile applies the provided fields; nil pointers leave the
// stored value alone. Role and email are not user-editable.
func (s *DefaultUserService) UpdateProfile(userID string, changes models.ProfileUpdate) (*models.User, error) {
	updated, err := s.Store.UpdateUser(userID, func(u *models.User) {
		if changes.Name != nil {
			u.Name = *changes.Name
		}
		if changes.Phone != nil {
			u.Phone = *changes.Phone
		}
		if changes.Location != nil {
			u.Location = *changes.Location
		}
		if changes.AvatarURL != nil {
			u.AvatarURL = *changes.AvatarURL
		}
	})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, err)
		}
		return nil, err
	}
	return &updated, nil
}

func (s *DefaultUserService) MedicalHistory(patientID string) []models.MedicalRecord {
	return s.Store.RecordsByPatient(patientID)
}

func (s *DefaultUserService) ActiveTreatments(patientID string) []models.ActiveTreatment {
	return s.Store.TreatmentsByPatient(patientID)
}
