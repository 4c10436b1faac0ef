package service

import (
	"context"

	"github.com/haagahelia/hidb-back/internal/apperror"
	"github.com/haagahelia/hidb-back/internal/model"
)

// GetAllAircraft returns every aircraft ordered ascending by id, each
// enriched with its thumbnail media columns. The result is an empty slice,
// never nil, when the table has no rows.
func (s *Service) GetAllAircraft(ctx context.Context) ([]model.Aircraft, error) {
	aircraft, err := s.aircraftRepo.GetAllAircraft(ctx)
	if err != nil {
		return nil, apperror.List("aircraft", err)
	}
	if aircraft == nil {
		aircraft = []model.Aircraft{}
	}
	return aircraft, nil
}

// GetAircraftByID returns the matching aircraft or nil when no row exists.
// The id has already passed the route validator; no bounds checking here.
func (s *Service) GetAircraftByID(ctx context.Context, id int) (*model.Aircraft, error) {
	aircraft, err := s.aircraftRepo.GetAircraftByID(ctx, id)
	if err != nil {
		return nil, apperror.Get("aircraft", id, err)
	}
	return aircraft, nil
}
