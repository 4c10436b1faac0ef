package service

import (
	"github.com/haagahelia/hidb-back/internal/repository"
)

// Service provides the read-side business logic for the catalog API.
// It is a stateless value object: repositories are injected at
// construction and nothing else is held.
type Service struct {
	aircraftRepo     repository.AircraftRepository
	organizationRepo repository.OrganizationRepository
	mediaRepo        repository.MediaRepository
}

// NewService creates a new service instance
func NewService(
	aircraftRepo repository.AircraftRepository,
	organizationRepo repository.OrganizationRepository,
	mediaRepo repository.MediaRepository,
) *Service {
	return &Service{
		aircraftRepo:     aircraftRepo,
		organizationRepo: organizationRepo,
		mediaRepo:        mediaRepo,
	}
}
