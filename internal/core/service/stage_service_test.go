package service

import (
	"context"
	"errors"
	"testing"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

func TestStageService_Apply(t *testing.T) {
	f := newFixture(t)
	svc := NewStageService(f.stages, f.applications, f.recorder, f.log)
	ctx := context.Background()

	app, err := svc.Apply(ctx, clientActor, "1", ports.ApplyInput{Message: "Motivé"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.StageID != "1" || app.UserID != "client1" {
		t.Fatalf("unexpected application: %+v", app)
	}
	offer, _ := svc.Get(ctx, "1")
	if offer.Applicants != 24 {
		t.Fatalf("expected 24 applicants, got %d", offer.Applicants)
	}

	if _, err := svc.Apply(ctx, clientActor, "1", ports.ApplyInput{}); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	offer, _ = svc.Get(ctx, "1")
	if offer.Applicants != 24 {
		t.Fatalf("duplicate apply changed count to %d", offer.Applicants)
	}
	if _, err := svc.Apply(ctx, clientActor, "404", ports.ApplyInput{}); !errors.Is(err, domain.ErrStageNotFound) {
		t.Fatalf("expected ErrStageNotFound, got %v", err)
	}

	mine, _ := svc.Applications(ctx, clientActor)
	all, _ := svc.Applications(ctx, adminActor)
	if len(mine) != 1 || len(all) != 1 {
		t.Fatalf("unexpected application listings: %d %d", len(mine), len(all))
	}
	none, _ := svc.Applications(ctx, providerActor)
	if len(none) != 0 {
		t.Fatalf("provider has no applications, got %d", len(none))
	}
}

func TestStageService_List(t *testing.T) {
	f := newFixture(t)
	svc := NewStageService(f.stages, f.applications, f.recorder, f.log)

	got, err := svc.List(context.Background(), domain.StageFilter{Location: "bobo"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected offer 3, got %+v", got)
	}
}
