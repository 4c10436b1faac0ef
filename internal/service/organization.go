package service

import (
	"context"

	"github.com/haagahelia/hidb-back/internal/apperror"
	"github.com/haagahelia/hidb-back/internal/model"
)

// GetAllOrganizations returns every organization ordered ascending by id
func (s *Service) GetAllOrganizations(ctx context.Context) ([]model.Organization, error) {
	organizations, err := s.organizationRepo.GetAllOrganizations(ctx)
	if err != nil {
		return nil, apperror.List("organizations", err)
	}
	if organizations == nil {
		organizations = []model.Organization{}
	}
	return organizations, nil
}

// GetOrganizationByID returns the matching organization or nil when no row exists
func (s *Service) GetOrganizationByID(ctx context.Context, id int) (*model.Organization, error) {
	organization, err := s.organizationRepo.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, apperror.Get("organization", id, err)
	}
	return organization, nil
}
