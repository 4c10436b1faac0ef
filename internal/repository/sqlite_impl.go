package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/haagahelia/hidb-back/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- SQLite Implementation (dev/test backend) ---

const aircraftSelectSqlite = `
	SELECT
		a.*,
		m.url AS thumbnail_url,
		m.caption AS thumbnail_caption
	FROM aircraft a
	LEFT JOIN media m ON m.aircraft_id = a.id AND m.is_thumbnail = 1
`

type sqliteAircraftRepository struct {
	db *sqlx.DB
}

func (r *sqliteAircraftRepository) GetAllAircraft(ctx context.Context) ([]model.Aircraft, error) {
	q := aircraftSelectSqlite + ` ORDER BY a.id ASC`
	var aircraft []model.Aircraft
	if err := r.db.SelectContext(ctx, &aircraft, q); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (r *sqliteAircraftRepository) GetAircraftByID(ctx context.Context, id int) (*model.Aircraft, error) {
	q := aircraftSelectSqlite + ` WHERE a.id = ?`
	var aircraft model.Aircraft
	if err := r.db.GetContext(ctx, &aircraft, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &aircraft, nil
}

func (r *sqliteAircraftRepository) BulkInsertAircraft(ctx context.Context, aircraft []model.Aircraft) error {
	// SQLite variable limit workaround: 15 params per row, chunk well below
	// the default 999-variable cap
	chunkSize := 60
	for i := 0; i < len(aircraft); i += chunkSize {
		end := i + chunkSize
		if end > len(aircraft) {
			end = len(aircraft)
		}
		batch := aircraft[i:end]

		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO aircraft (id, name, manufacturer, model, year_built, weight,
			organization_id, crew_capacity, passenger_capacity, type, status,
			museum_location_number, display_section, qr_code_url, description)
		VALUES (:id, :name, :manufacturer, :model, :year_built, :weight,
			:organization_id, :crew_capacity, :passenger_capacity, :type, :status,
			:museum_location_number, :display_section, :qr_code_url, :description)`,
			batch)
		if err != nil {
			return err
		}
	}
	return nil
}

type sqliteOrganizationRepository struct {
	db *sqlx.DB
}

func (r *sqliteOrganizationRepository) GetAllOrganizations(ctx context.Context) ([]model.Organization, error) {
	var organizations []model.Organization
	if err := r.db.SelectContext(ctx, &organizations, "SELECT * FROM organizations ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return organizations, nil
}

func (r *sqliteOrganizationRepository) GetOrganizationByID(ctx context.Context, id int) (*model.Organization, error) {
	var organization model.Organization
	if err := r.db.GetContext(ctx, &organization, "SELECT * FROM organizations WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &organization, nil
}

func (r *sqliteOrganizationRepository) BulkInsertOrganizations(ctx context.Context, organizations []model.Organization) error {
	chunkSize := 150
	for i := 0; i < len(organizations); i += chunkSize {
		end := i + chunkSize
		if end > len(organizations) {
			end = len(organizations)
		}
		batch := organizations[i:end]

		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO organizations (id, name, type, country, founding_year, logo_url)
		VALUES (:id, :name, :type, :country, :founding_year, :logo_url)`,
			batch)
		if err != nil {
			return err
		}
	}
	return nil
}

type sqliteMediaRepository struct {
	db *sqlx.DB
}

func (r *sqliteMediaRepository) GetAllMedia(ctx context.Context) ([]model.Media, error) {
	var media []model.Media
	if err := r.db.SelectContext(ctx, &media, "SELECT * FROM media ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return media, nil
}

func (r *sqliteMediaRepository) GetMediaByID(ctx context.Context, id int) (*model.Media, error) {
	var media model.Media
	if err := r.db.GetContext(ctx, &media, "SELECT * FROM media WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func (r *sqliteMediaRepository) BulkInsertMedia(ctx context.Context, media []model.Media) error {
	chunkSize := 100
	for i := 0; i < len(media); i += chunkSize {
		end := i + chunkSize
		if end > len(media) {
			end = len(media)
		}
		batch := media[i:end]

		_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO media (id, aircraft_id, media_type, is_thumbnail, url,
			caption, date_taken, creator, is_historical)
		VALUES (:id, :aircraft_id, :media_type, :is_thumbnail, :url,
			:caption, :date_taken, :creator, :is_historical)`,
			batch)
		if err != nil {
			return err
		}
	}
	return nil
}
