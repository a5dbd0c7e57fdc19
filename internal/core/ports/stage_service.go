package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ApplyInput carries the optional fields of a stage application.
type ApplyInput struct {
	Message string
	CVURL   string
}

type StageService interface {
	List(ctx context.Context, filter domain.StageFilter) ([]*domain.StageOffer, error)
	Get(ctx context.Context, id string) (*domain.StageOffer, error)
	Apply(ctx context.Context, actor domain.Actor, stageID string, input ApplyInput) (*domain.StageApplication, error)
	// Applications returns the actor's applications, or all of them for an admin.
	Applications(ctx context.Context, actor domain.Actor) ([]*domain.StageApplication, error)
}
