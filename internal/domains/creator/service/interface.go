package service

import (
	"context"

	"creatorhub-backend/internal/domains/creator/model"
)

// ServiceInterface is the creator business-logic contract.
type ServiceInterface interface {
	Create(ctx context.Context, form model.CreatorForm) (*model.Creator, error)
	Get(ctx context.Context, id int64) (*model.Creator, error)
	List(ctx context.Context, filter model.CreatorFilter) (*model.CreatorListResponse, error)
	Niches(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, form model.CreatorForm) (*model.Creator, error)
	Delete(ctx context.Context, id int64) error
}
