package ports

import (
	"context"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// ActivityRepository persists audit entries.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityLog) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
}

// ActivityRecorder accepts audit entries without blocking the caller.
type ActivityRecorder interface {
	Record(entry domain.ActivityLog)
}

// AdminStats is the dashboard overview.
type AdminStats struct {
	Users          map[domain.Role]int          `json:"users"`
	TotalUsers     int                          `json:"total_users"`
	Services       int                          `json:"services"`
	ActiveServices int                          `json:"active_services"`
	StageOffers    int                          `json:"stage_offers"`
	Bookings       map[domain.BookingStatus]int `json:"bookings"`
	TotalBookings  int                          `json:"total_bookings"`
	Revenue        float64                      `json:"revenue"`
}

// CategoryReport aggregates bookings per service category.
type CategoryReport struct {
	Category  string  `json:"category"`
	Services  int     `json:"services"`
	Bookings  int     `json:"bookings"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

// Moderation actions.
const (
	ModerateActivate   = "activate"
	ModerateDeactivate = "deactivate"
)

type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	Reports(ctx context.Context) ([]CategoryReport, error)
	Moderate(ctx context.Context, actor domain.Actor, serviceID, action string) (*domain.Service, error)
	Logs(ctx context.Context, limit int) ([]*domain.ActivityLog, error)
}
