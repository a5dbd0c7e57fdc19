package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// StageRepository defines persistence operations for stage offers.
type StageRepository interface {
	Create(ctx context.Context, o *domain.StageOffer) error
	FindByID(ctx context.Context, id string) (*domain.StageOffer, error)
	List(ctx context.Context) ([]*domain.StageOffer, error)
	IncrementApplicants(ctx context.Context, id string) error
}

// ApplicationRepository stores stage applications.
type ApplicationRepository interface {
	// Create returns ErrAlreadyApplied when the user already applied to the offer.
	Create(ctx context.Context, a *domain.StageApplication) error
	ListByUser(ctx context.Context, userID string) ([]*domain.StageApplication, error)
	List(ctx context.Context) ([]*domain.StageApplication, error)
}
