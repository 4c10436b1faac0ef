package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/haagahelia/hidb-back/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

// aircraftSelectPg projects all aircraft columns plus the thumbnail media
// row. The join predicate assumes at most one is_thumbnail row per
// aircraft; the migrations enforce that with a partial unique index.
const aircraftSelectPg = `
	SELECT
		a.*,
		m.url AS thumbnail_url,
		m.caption AS thumbnail_caption
	FROM aircraft a
	LEFT JOIN media m ON m.aircraft_id = a.id AND m.is_thumbnail = TRUE
`

type pgAircraftRepository struct {
	db *sqlx.DB
}

func (r *pgAircraftRepository) GetAllAircraft(ctx context.Context) ([]model.Aircraft, error) {
	q := aircraftSelectPg + ` ORDER BY a.id ASC`
	var aircraft []model.Aircraft
	if err := r.db.SelectContext(ctx, &aircraft, q); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (r *pgAircraftRepository) GetAircraftByID(ctx context.Context, id int) (*model.Aircraft, error) {
	q := aircraftSelectPg + ` WHERE a.id = $1`
	var aircraft model.Aircraft
	if err := r.db.GetContext(ctx, &aircraft, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &aircraft, nil
}

func (r *pgAircraftRepository) BulkInsertAircraft(ctx context.Context, aircraft []model.Aircraft) error {
	if len(aircraft) == 0 {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO aircraft (id, name, manufacturer, model, year_built, weight,
			organization_id, crew_capacity, passenger_capacity, type, status,
			museum_location_number, display_section, qr_code_url, description)
		VALUES (:id, :name, :manufacturer, :model, :year_built, :weight,
			:organization_id, :crew_capacity, :passenger_capacity, :type, :status,
			:museum_location_number, :display_section, :qr_code_url, :description)`,
		aircraft)
	return err
}

type pgOrganizationRepository struct {
	db *sqlx.DB
}

func (r *pgOrganizationRepository) GetAllOrganizations(ctx context.Context) ([]model.Organization, error) {
	var organizations []model.Organization
	if err := r.db.SelectContext(ctx, &organizations, "SELECT * FROM organizations ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return organizations, nil
}

func (r *pgOrganizationRepository) GetOrganizationByID(ctx context.Context, id int) (*model.Organization, error) {
	var organization model.Organization
	if err := r.db.GetContext(ctx, &organization, "SELECT * FROM organizations WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &organization, nil
}

func (r *pgOrganizationRepository) BulkInsertOrganizations(ctx context.Context, organizations []model.Organization) error {
	if len(organizations) == 0 {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO organizations (id, name, type, country, founding_year, logo_url)
		VALUES (:id, :name, :type, :country, :founding_year, :logo_url)`,
		organizations)
	return err
}

type pgMediaRepository struct {
	db *sqlx.DB
}

func (r *pgMediaRepository) GetAllMedia(ctx context.Context) ([]model.Media, error) {
	var media []model.Media
	if err := r.db.SelectContext(ctx, &media, "SELECT * FROM media ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return media, nil
}

func (r *pgMediaRepository) GetMediaByID(ctx context.Context, id int) (*model.Media, error) {
	var media model.Media
	if err := r.db.GetContext(ctx, &media, "SELECT * FROM media WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (r *pgMediaRepository) BulkInsertMedia(ctx context.Context, media []model.Media) error {
	if len(media) == 0 {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO media (id, aircraft_id, media_type, is_thumbnail, url,
			caption, date_taken, creator, is_historical)
		VALUES (:id, :aircraft_id, :media_type, :is_thumbnail, :url,
			:caption, :date_taken, :creator, :is_historical)`,
		media)
	return err
}
