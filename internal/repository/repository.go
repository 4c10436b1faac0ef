package repository

import (
	"context"

	"github.com/haagahelia/hidb-back/internal/config"
	"github.com/haagahelia/hidb-back/internal/model"
	"github.com/jmoiron/sqlx"
)

// AircraftRepository defines read operations for aircraft. List and get
// results carry the thumbnail columns resolved by the media left join.
// Get-by-id returns (nil, nil) when no row matches.
type AircraftRepository interface {
	GetAllAircraft(ctx context.Context) ([]model.Aircraft, error)
	GetAircraftByID(ctx context.Context, id int) (*model.Aircraft, error)
	BulkInsertAircraft(ctx context.Context, aircraft []model.Aircraft) error
}

// OrganizationRepository defines read operations for organizations
type OrganizationRepository interface {
	GetAllOrganizations(ctx context.Context) ([]model.Organization, error)
	GetOrganizationByID(ctx context.Context, id int) (*model.Organization, error)
	BulkInsertOrganizations(ctx context.Context, organizations []model.Organization) error
}

// MediaRepository defines read operations for media assets
type MediaRepository interface {
	GetAllMedia(ctx context.Context) ([]model.Media, error)
	GetMediaByID(ctx context.Context, id int) (*model.Media, error)
	BulkInsertMedia(ctx context.Context, media []model.Media) error
}

// Container holds all repositories
type Container struct {
	Aircraft     AircraftRepository
	Organization OrganizationRepository
	Media        MediaRepository
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			Aircraft:     &pgAircraftRepository{db: db},
			Organization: &pgOrganizationRepository{db: db},
			Media:        &pgMediaRepository{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		Aircraft:     &sqliteAircraftRepository{db: db},
		Organization: &sqliteOrganizationRepository{db: db},
		Media:        &sqliteMediaRepository{db: db},
	}
}

// IsCatalogEmpty reports whether the catalog has no aircraft rows yet.
// Used by main to decide whether to auto-seed on boot.
func IsCatalogEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM aircraft")
	if err != nil {
		// Table may not exist yet on a fresh store
		return true, nil
	}
	return count == 0, nil
}
