package repository

import (
	"context"

	"creatorhub-backend/internal/domains/video/model"
)

// RepositoryInterface is the video data-access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, input *model.VideoInput) (*model.Video, error)
	GetByID(ctx context.Context, id int64) (*model.Video, error)
	List(ctx context.Context, filter model.VideoFilter) ([]model.Video, error)
	Update(ctx context.Context, id int64, input *model.VideoInput) (*model.Video, error)
	Delete(ctx context.Context, id int64) error
	MarkPaid(ctx context.Context, id int64) (*model.Video, error)
}
