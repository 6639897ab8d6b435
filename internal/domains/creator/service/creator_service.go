package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"creatorhub-backend/internal/domains/creator"
	"creatorhub-backend/internal/domains/creator/model"
	"creatorhub-backend/internal/domains/creator/repository"
)

type creatorService struct {
	repo repository.RepositoryInterface
}

func NewCreatorService(repo repository.RepositoryInterface) ServiceInterface {
	return &creatorService{repo: repo}
}

// Create validates the raw form and persists the creator. Validation
// completes fully before any write is attempted.
func (s *creatorService) Create(ctx context.Context, form model.CreatorForm) (*model.Creator, error) {
	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create youtuber")
		return nil, creator.ErrDatabaseQuery
	}

	log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("YouTuber added")
	return created, nil
}

func (s *creatorService) Get(ctx context.Context, id int64) (*model.Creator, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to fetch youtuber")
		return nil, creator.ErrDatabaseQuery
	}
	if found == nil {
		return nil, creator.ErrCreatorNotFound
	}
	return found, nil
}

func (s *creatorService) List(ctx context.Context, filter model.CreatorFilter) (*model.CreatorListResponse, error) {
	creators, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list youtubers")
		return nil, creator.ErrDatabaseQuery
	}

	niches, err := s.repo.Niches(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list niches")
		return nil, creator.ErrDatabaseQuery
	}

	return &model.CreatorListResponse{Creators: creators, Niches: niches}, nil
}

func (s *creatorService) Niches(ctx context.Context) ([]string, error) {
	niches, err := s.repo.Niches(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list niches")
		return nil, creator.ErrDatabaseQuery
	}
	return niches, nil
}

func (s *creatorService) Update(ctx context.Context, id int64, form model.CreatorForm) (*model.Creator, error) {
	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to update youtuber")
		return nil, creator.ErrDatabaseQuery
	}
	if updated == nil {
		return nil, creator.ErrCreatorNotFound
	}

	log.Info().Int64("id", id).Str("name", updated.Name).Msg("YouTuber updated")
	return updated, nil
}

// Delete refuses to remove a creator that still has videos. The store-level
// cascade only covers data paths that bypass this guard.
func (s *creatorService) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.VideoCount(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to count videos")
		return creator.ErrDatabaseQuery
	}
	if count > 0 {
		return creator.ErrCreatorHasVideos
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return creator.ErrCreatorNotFound
		}
		log.Error().Err(err).Int64("id", id).Msg("Failed to delete youtuber")
		return creator.ErrDatabaseQuery
	}

	log.Info().Int64("id", id).Msg("YouTuber deleted")
	return nil
}
