package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"creatorhub-backend/internal/domains/video"
	"creatorhub-backend/internal/domains/video/model"
	"creatorhub-backend/internal/domains/video/repository"
)

type videoService struct {
	repo repository.RepositoryInterface
}

func NewVideoService(repo repository.RepositoryInterface) ServiceInterface {
	return &videoService{repo: repo}
}

// Create validates the raw form and persists the video. The store's foreign
// key rejects a youtuber_id that references no creator.
func (s *videoService) Create(ctx context.Context, form model.VideoForm) (*model.Video, error) {
	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		if errors.Is(err, video.ErrUnknownYoutuber) {
			return nil, err
		}
		log.Error().Err(err).Msg("Failed to create video")
		return nil, video.ErrDatabaseQuery
	}

	log.Info().
		Int64("id", created.ID).
		Str("title", created.Title).
		Int64("youtuber_id", created.YoutuberID).
		Msg("Video added")
	return created, nil
}

func (s *videoService) Get(ctx context.Context, id int64) (*model.Video, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to fetch video")
		return nil, video.ErrDatabaseQuery
	}
	if found == nil {
		return nil, video.ErrVideoNotFound
	}
	return found, nil
}

func (s *videoService) List(ctx context.Context, filter model.VideoFilter) ([]model.Video, error) {
	videos, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list videos")
		return nil, video.ErrDatabaseQuery
	}
	return videos, nil
}

func (s *videoService) Update(ctx context.Context, id int64, form model.VideoForm) (*model.Video, error) {
	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, video.ErrUnknownYoutuber) {
			return nil, err
		}
		log.Error().Err(err).Int64("id", id).Msg("Failed to update video")
		return nil, video.ErrDatabaseQuery
	}
	if updated == nil {
		return nil, video.ErrVideoNotFound
	}

	log.Info().Int64("id", id).Str("title", updated.Title).Msg("Video updated")
	return updated, nil
}

func (s *videoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return video.ErrVideoNotFound
		}
		log.Error().Err(err).Int64("id", id).Msg("Failed to delete video")
		return video.ErrDatabaseQuery
	}

	log.Info().Int64("id", id).Msg("Video deleted")
	return nil
}

func (s *videoService) MarkPaid(ctx context.Context, id int64) (*model.MarkPaidResponse, error) {
	updated, err := s.repo.MarkPaid(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to mark video paid")
		return nil, video.ErrDatabaseQuery
	}
	if updated == nil {
		return nil, video.ErrVideoNotFound
	}

	log.Info().
		Int64("id", id).
		Str("title", updated.Title).
		Str("amount", updated.Amount.StringFixed(2)).
		Msg("Video marked as paid")

	return &model.MarkPaidResponse{
		ID:     updated.ID,
		Title:  updated.Title,
		Amount: updated.Amount,
	}, nil
}
