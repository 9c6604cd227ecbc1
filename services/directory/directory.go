package directory

import (
	"fmt"
	"strings"

	"healthhub/database"
	"healthhub/models"
)

// DirectoryService exposes read-only provider and facility lookups for
// the portal's directory pages.
type DirectoryService interface {
	ListSpecialists(specialty string) []models.Specialist
	GetSpecialist(id string) (*models.Specialist, error)
	ListHospitals() []models.Hospital
	GetHospital(id string) (*models.Hospital, error)
}

// DefaultDirectoryService is the concrete implementation.
type DefaultDirectoryService struct {
	Store *database.MemoryStore
}

// ListSpecialists returns all specialists, optionally filtered by a
// case-insensitive specialty match.
func (s *DefaultDirectoryService) ListSpecialists(specialty string) []models.Specialist {
	all := s.Store.ListSpecialists()
	if specialty == "" {
		return all
	}
	filtered := []models.Specialist{}
	for _, sp := range all {
		if strings.EqualFold(sp.Specialty, specialty) {
			filtered = append(filtered, sp)
		}
	}
	return filtered
}

func (s *DefaultDirectoryService) GetSpecialist(id string) (*models.Specialist, error) {
	sp, err := s.Store.GetSpecialist(id)
	if err != nil {
		return nil, fmt.Errorf("specialist %s: %w", id, err)
	}
	return &sp, nil
}

func (s *DefaultDirectoryService) ListHospitals() []models.Hospital {
	return s.Store.ListHospitals()
}

func (s *DefaultDirectoryService) GetHospital(id string) (*models.Hospital, error) {
	h, err := s.Store.GetHospital(id)
	if err != nil {
		return nil, fmt.Errorf("hospital %s: %w", id, err)
	}
	return &h, nil
}
