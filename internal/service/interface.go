package service

import (
	"context"

	"github.com/haagahelia/hidb-back/internal/model"
)

// CatalogService defines the service surface consumed by the HTTP handlers.
// Kept as an interface so handler tests can substitute a mock.
type CatalogService interface {
	GetAllAircraft(ctx context.Context) ([]model.Aircraft, error)
	GetAircraftByID(ctx context.Context, id int) (*model.Aircraft, error)
	GetAllOrganizations(ctx context.Context) ([]model.Organization, error)
	GetOrganizationByID(ctx context.Context, id int) (*model.Organization, error)
	GetAllMedia(ctx context.Context) ([]model.Media, error)
	GetMediaByID(ctx context.Context, id int) (*model.Media, error)
}
