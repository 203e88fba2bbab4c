package spaceRepo

import (
	"context"

	"reservas/models"
)

// SpaceRepository exposes read/write access to the spaces collection.
type SpaceRepository interface {
	GetAll(ctx context.Context) ([]models.Space, error)
	GetByID(ctx context.Context, spaceID string) (*models.Space, error)
	GetByType(ctx context.Context, spaceType models.SpaceType) ([]models.Space, error)
	Create(ctx context.Context, space *models.Space) error
}
