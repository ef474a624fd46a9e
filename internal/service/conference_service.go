package service

import (
	"context"
	"strings"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/repository"
	apperrors "conference-ticketing/pkg/app_errors"
)

type ConferenceService interface {
	List(ctx context.Context) ([]*model.Conference, error)
	Get(ctx context.Context, id int) (*model.Conference, error)
	Create(ctx context.Context, conference *model.Conference) (*model.Conference, error)
}

type ConferenceServiceImpl struct {
	repo repository.ConferenceRepository
}

func NewConferenceService(repo repository.ConferenceRepository) ConferenceService {
	return &ConferenceServiceImpl{repo: repo}
}

func (s *ConferenceServiceImpl) List(ctx context.Context) ([]*model.Conference, error) {
	return s.repo.List(ctx)
}

func (s *ConferenceServiceImpl) Get(ctx context.Context, id int) (*model.Conference, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ConferenceServiceImpl) Create(ctx context.Context, conference *model.Conference) (*model.Conference, error) {
	conference.Name = strings.TrimSpace(conference.Name)
	if conference.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, conference)
}
