package service

import (
	"context"

	"github.com/haagahelia/hidb-back/internal/apperror"
	"github.com/haagahelia/hidb-back/internal/model"
)

// GetAllMedia returns every media asset ordered ascending by id
func (s *Service) GetAllMedia(ctx context.Context) ([]model.Media, error) {
	media, err := s.mediaRepo.GetAllMedia(ctx)
	if err != nil {
		return nil, apperror.List("media", err)
	}
	if media == nil {
		media = []model.Media{}
	}
	return media, nil
}

// GetMediaByID returns the matching media asset or nil when no row exists
func (s *Service) GetMediaByID(ctx context.Context, id int) (*model.Media, error) {
	media, err := s.mediaRepo.GetMediaByID(ctx, id)
	if err != nil {
		return nil, apperror.Get("media", id, err)
	}
	return media, nil
}
