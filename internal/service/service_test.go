package service

import (
	"context"
	"errors"
	"testing"

	"github.com/haagahelia/hidb-back/internal/apperror"
	"github.com/haagahelia/hidb-back/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAircraftRepository implements repository.AircraftRepository
type MockAircraftRepository struct {
	mock.Mock
}

func (m *MockAircraftRepository) GetAllAircraft(ctx context.Context) ([]model.Aircraft, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) GetAircraftByID(ctx context.Context, id int) (*model.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) BulkInsertAircraft(ctx context.Context, aircraft []model.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

// MockOrganizationRepository implements repository.OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) GetAllOrganizations(ctx context.Context) ([]model.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizationByID(ctx context.Context, id int) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) BulkInsertOrganizations(ctx context.Context, organizations []model.Organization) error {
	args := m.Called(ctx, organizations)
	return args.Error(0)
}

// MockMediaRepository implements repository.MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) GetAllMedia(ctx context.Context) ([]model.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Media), args.Error(1)
}

func (m *MockMediaRepository) GetMediaByID(ctx context.Context, id int) (*model.Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Media), args.Error(1)
}

func (m *MockMediaRepository) BulkInsertMedia(ctx context.Context, media []model.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func newTestService() (*Service, *MockAircraftRepository, *MockOrganizationRepository, *MockMediaRepository) {
	aircraftRepo := new(MockAircraftRepository)
	organizationRepo := new(MockOrganizationRepository)
	mediaRepo := new(MockMediaRepository)
	return NewService(aircraftRepo, organizationRepo, mediaRepo), aircraftRepo, organizationRepo, mediaRepo
}

func TestService_GetAllAircraft(t *testing.T) {
	t.Run("returns rows", func(t *testing.T) {
		svc, aircraftRepo, _, _ := newTestService()
		aircraftRepo.On("GetAllAircraft", mock.Anything).Return([]model.Aircraft{
			{ID: 1, Name: "Caravelle OH-LEA"},
		}, nil)

		aircraft, err := svc.GetAllAircraft(context.Background())
		require.NoError(t, err)
		require.Len(t, aircraft, 1)
		assert.Equal(t, "Caravelle OH-LEA", aircraft[0].Name)
	})

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		svc, aircraftRepo, _, _ := newTestService()
		aircraftRepo.On("GetAllAircraft", mock.Anything).Return(nil, nil)

		aircraft, err := svc.GetAllAircraft(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, aircraft)
		assert.Empty(t, aircraft)
	})

	t.Run("store error wrapped as DataAccessError", func(t *testing.T) {
		svc, aircraftRepo, _, _ := newTestService()
		cause := errors.New("connection refused")
		aircraftRepo.On("GetAllAircraft", mock.Anything).Return(nil, cause)

		_, err := svc.GetAllAircraft(context.Background())
		require.Error(t, err)

		var dataErr *apperror.DataAccessError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, "aircraft", dataErr.Entity)
		assert.Equal(t, "list", dataErr.Op)
		assert.ErrorIs(t, err, cause)
	})
}

func TestService_GetAircraftByID(t *testing.T) {
	t.Run("not found passes the sentinel through", func(t *testing.T) {
		svc, aircraftRepo, _, _ := newTestService()
		aircraftRepo.On("GetAircraftByID", mock.Anything, 42).Return(nil, nil)

		aircraft, err := svc.GetAircraftByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, aircraft)
	})

	t.Run("store error carries the id", func(t *testing.T) {
		svc, aircraftRepo, _, _ := newTestService()
		aircraftRepo.On("GetAircraftByID", mock.Anything, 7).Return(nil, errors.New("boom"))

		_, err := svc.GetAircraftByID(context.Background(), 7)
		require.Error(t, err)

		var dataErr *apperror.DataAccessError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, 7, dataErr.ID)
		assert.Contains(t, err.Error(), "7")
	})
}

func TestService_GetAllOrganizations(t *testing.T) {
	svc, _, organizationRepo, _ := newTestService()
	organizationRepo.On("GetAllOrganizations", mock.Anything).Return([]model.Organization{
		{ID: 1, Name: "Finnair", Type: model.OrganizationTypeAirline, Country: "Finland"},
		{ID: 2, Name: "Boeing", Type: model.OrganizationTypeCommercial, Country: "USA"},
	}, nil)

	organizations, err := svc.GetAllOrganizations(context.Background())
	require.NoError(t, err)
	require.Len(t, organizations, 2)
	assert.Equal(t, "Finnair", organizations[0].Name)
}

func TestService_GetMediaByID(t *testing.T) {
	svc, _, _, mediaRepo := newTestService()
	aircraftID := 1
	mediaRepo.On("GetMediaByID", mock.Anything, 3).Return(&model.Media{
		ID: 3, AircraftID: &aircraftID, MediaType: model.MediaTypePhoto, URL: "https://example.com/x.jpg",
	}, nil)

	media, err := svc.GetMediaByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, media)
	assert.Equal(t, model.MediaTypePhoto, media.MediaType)
}
