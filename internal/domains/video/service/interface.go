package service

import (
	"context"

	"creatorhub-backend/internal/domains/video/model"
)

// ServiceInterface is the video business-logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, form model.VideoForm) (*model.Video, error)
	Get(ctx context.Context, id int64) (*model.Video, error)
	List(ctx context.Context, filter model.VideoFilter) ([]model.Video, error)
	Update(ctx context.Context, id int64, form model.VideoForm) (*model.Video, error)
	Delete(ctx context.Context, id int64) error
	MarkPaid(ctx context.Context, id int64) (*model.MarkPaidResponse, error)
}
