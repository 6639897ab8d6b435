package repository

import (
	"context"

	"creatorhub-backend/internal/domains/creator/model"
)

// RepositoryInterface is the creator data-access contract.
type RepositoryInterface interface {
	Create(ctx context.Context, input *model.CreatorInput) (*model.Creator, error)
	GetByID(ctx context.Context, id int64) (*model.Creator, error)
	List(ctx context.Context, filter model.CreatorFilter) ([]model.CreatorWithStats, error)
	Niches(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, input *model.CreatorInput) (*model.Creator, error)
	Delete(ctx context.Context, id int64) error
	VideoCount(ctx context.Context, id int64) (int, error)
}
