package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/haagahelia/hidb-back/internal/config"
	"github.com/haagahelia/hidb-back/internal/database"
	"github.com/haagahelia/hidb-back/internal/metrics"
	"github.com/haagahelia/hidb-back/internal/model"
	"github.com/haagahelia/hidb-back/internal/repository"
	"github.com/haagahelia/hidb-back/internal/service"
	"github.com/haagahelia/hidb-back/internal/stats"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupIntegrationStack(t *testing.T, seed bool) http.Handler {
	t.Helper()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	dbName := fmt.Sprintf("testdb_%d", rng.Int())

	cfg := config.DBConfig{
		Type: config.DBTypeMemory,
		Name: dbName,
	}

	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations/sqlite",
		"sqlite3",
		driver,
	)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	if seed {
		seedCatalog(t, db)
	}

	repos := repository.NewRepositories(db, config.DBTypeMemory)
	svc := service.NewService(repos.Aircraft, repos.Organization, repos.Media)
	statsCollector := stats.NewCollector(db, cfg)

	return NewRouter(svc, statsCollector, metrics.NewRegistry(), zap.NewNop(), false)
}

func seedCatalog(t *testing.T, db *sqlx.DB) {
	t.Helper()
	ctx := context.Background()

	stmts := []string{
		`INSERT INTO organizations (id, name, type, country, founding_year)
		 VALUES (1, 'Airbus Heritage', 'commercial', 'France', 1970)`,
		`INSERT INTO organizations (id, name, type, country, founding_year)
		 VALUES (2, 'Boeing', 'commercial', 'USA', 1916)`,
		`INSERT INTO aircraft (id, name, manufacturer, model, year_built, weight,
			organization_id, crew_capacity, passenger_capacity, type, status)
		 VALUES (1, 'A320', 'Airbus', 'A320-200', 1988, 73500.0, 1, 2, 150, 'commercial', 'on display')`,
		`INSERT INTO aircraft (id, name, manufacturer, model, year_built, weight, type, status)
		 VALUES (2, 'B737 Cutaway', 'Boeing', '737-200', 1971, 27700.0, 'commercial', 'in storage')`,
		`INSERT INTO media (id, aircraft_id, media_type, is_thumbnail, url, caption, is_historical)
		 VALUES (1, 1, 'photo', 1, 'https://cdn.hidb.example/media/a320-front.jpg', 'A320 nose view', 0)`,
		`INSERT INTO media (id, aircraft_id, media_type, is_thumbnail, url, is_historical)
		 VALUES (2, 2, 'photo', 0, 'https://cdn.hidb.example/media/b737-wing.jpg', 1)`,
	}
	for _, stmt := range stmts {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
}

func doGet(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestAPI_Integration_AircraftList(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	rr := doGet(t, handler, "/api/aircraft")
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	var aircraft []model.Aircraft
	require.NoError(t, json.Unmarshal(env.Data, &aircraft))
	require.Len(t, aircraft, 2)

	// Ascending by id, thumbnail resolved via the media join
	assert.Equal(t, 1, aircraft[0].ID)
	require.NotNil(t, aircraft[0].ThumbnailURL)
	assert.Equal(t, "https://cdn.hidb.example/media/a320-front.jpg", *aircraft[0].ThumbnailURL)
	require.NotNil(t, aircraft[0].ThumbnailCaption)
	assert.Equal(t, "A320 nose view", *aircraft[0].ThumbnailCaption)

	// No is_thumbnail row for aircraft 2
	assert.Equal(t, 2, aircraft[1].ID)
	assert.Nil(t, aircraft[1].ThumbnailURL)
	assert.Nil(t, aircraft[1].ThumbnailCaption)
}

func TestAPI_Integration_AircraftByID(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	rr := doGet(t, handler, "/api/aircraft/1")
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	var aircraft model.Aircraft
	require.NoError(t, json.Unmarshal(env.Data, &aircraft))
	assert.Equal(t, "A320", aircraft.Name)
	assert.Equal(t, 73500.0, aircraft.Weight)
	require.NotNil(t, aircraft.OrganizationID)
	assert.Equal(t, 1, *aircraft.OrganizationID)
	require.NotNil(t, aircraft.ThumbnailURL)
	assert.Equal(t, "https://cdn.hidb.example/media/a320-front.jpg", *aircraft.ThumbnailURL)
}

func TestAPI_Integration_AircraftNotFound(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	rr := doGet(t, handler, "/api/aircraft/999")
	require.Equal(t, http.StatusNotFound, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, "Aircraft not found", env.Message)
}

func TestAPI_Integration_AircraftInvalidID(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		rr := doGet(t, handler, "/api/aircraft/"+id)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "id=%q", id)

		var body struct {
			Errors []model.ValidationError `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "id=%q", id)
		require.NotEmpty(t, body.Errors, "id=%q", id)
	}
}

func TestAPI_Integration_EmptyCatalog(t *testing.T) {
	handler := setupIntegrationStack(t, false)

	for _, path := range []string{"/api/aircraft", "/api/organizations", "/api/media"} {
		rr := doGet(t, handler, path)
		require.Equal(t, http.StatusOK, rr.Code, path)

		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success, path)
		assert.Equal(t, "[]", string(env.Data), path)
		require.NotNil(t, env.Count, path)
		assert.Equal(t, 0, *env.Count, path)
	}
}

func TestAPI_Integration_OrganizationByID(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	rr := doGet(t, handler, "/api/organizations/2")
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	var organization model.Organization
	require.NoError(t, json.Unmarshal(env.Data, &organization))
	assert.Equal(t, "Boeing", organization.Name)
	assert.Equal(t, "USA", organization.Country)
	require.NotNil(t, organization.FoundingYear)
	assert.Equal(t, 1916, *organization.FoundingYear)
}

func TestAPI_Integration_OrganizationsIdempotent(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	first := doGet(t, handler, "/api/organizations")
	second := doGet(t, handler, "/api/organizations")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	// Repeated reads against an unchanged store are byte-identical
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestAPI_Integration_MediaRoutes(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	rr := doGet(t, handler, "/api/media")
	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	rr = doGet(t, handler, "/api/media/1")
	require.Equal(t, http.StatusOK, rr.Code)
	env = decodeEnvelope(t, rr)
	var media model.Media
	require.NoError(t, json.Unmarshal(env.Data, &media))
	assert.True(t, media.IsThumbnail)
	require.NotNil(t, media.AircraftID)
	assert.Equal(t, 1, *media.AircraftID)
}

func TestAPI_Integration_OperationalRoutes(t *testing.T) {
	handler := setupIntegrationStack(t, true)

	rr := doGet(t, handler, "/hello")
	require.Equal(t, http.StatusOK, rr.Code)
	var hello map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hello))
	assert.NotEmpty(t, hello["message"])

	rr = doGet(t, handler, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Welcome to HIDB Back")

	rr = doGet(t, handler, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doGet(t, handler, "/stats")
	require.Equal(t, http.StatusOK, rr.Code)
	var s stats.Stats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	assert.Equal(t, int64(6), s.Database.TotalRecords)

	rr = doGet(t, handler, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "hidb_http_requests_total")
}
