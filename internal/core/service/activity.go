package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// recordActivity hands an audit entry to r. A nil recorder drops it.
func recordActivity(r ports.ActivityRecorder, actorID, action, target, details string) {
	if r == nil {
		return
	}
	r.Record(domain.ActivityLog{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		Action:    action,
		Target:    target,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})
}
