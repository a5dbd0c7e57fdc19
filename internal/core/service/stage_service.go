package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// StageService serves stage offers and records applications to them.
type StageService struct {
	stages       ports.StageRepository
	applications ports.ApplicationRepository
	activity     ports.ActivityRecorder
	log          zerolog.Logger
}

func NewStageService(stages ports.StageRepository, applications ports.ApplicationRepository, activity ports.ActivityRecorder, log zerolog.Logger) *StageService {
	return &StageService{stages: stages, applications: applications, activity: activity, log: log}
}

func (s *StageService) List(ctx context.Context, filter domain.StageFilter) ([]*domain.StageOffer, error) {
	all, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return filter.Apply(all), nil
}

func (s *StageService) Get(ctx context.Context, id string) (*domain.StageOffer, error) {
	return s.stages.FindByID(ctx, id)
}

// Apply stores an application and bumps the offer's applicant count.
// A second application by the same user is rejected with ErrAlreadyApplied.
func (s *StageService) Apply(ctx context.Context, actor domain.Actor, stageID string, in ports.ApplyInput) (*domain.StageApplication, error) {
	if _, err := s.stages.FindByID(ctx, stageID); err != nil {
		return nil, err
	}

	app := &domain.StageApplication{
		ID:        uuid.NewString(),
		StageID:   stageID,
		UserID:    actor.UserID,
		Message:   in.Message,
		CVURL:     in.CVURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	if err := s.stages.IncrementApplicants(ctx, stageID); err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}

	recordActivity(s.activity, actor.UserID, domain.ActivityStageApply, stageID, "")
	return app, nil
}

func (s *StageService) Applications(ctx context.Context, actor domain.Actor) ([]*domain.StageApplication, error) {
	if actor.IsAdmin() {
		return s.applications.List(ctx)
	}
	return s.applications.ListByUser(ctx, actor.UserID)
}
