package domain

import "time"

// ActivityLog is an audit entry shown in the admin logs view.
type ActivityLog struct {
	ID        string    `json:"id"                bson:"_id"`
	ActorID   string    `json:"actor_id"          bson:"actor_id"`
	Action    string    `json:"action"            bson:"action"`
	Target    string    `json:"target"            bson:"target"`
	Details   string    `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"        bson:"created_at"`
}

// Activity action names.
const (
	ActivityLogin         = "auth.login"
	ActivityRegister      = "auth.register"
	ActivityLogout        = "auth.logout"
	ActivityServiceCreate = "service.create"
	ActivityServiceUpdate = "service.update"
	ActivityServiceDelete = "service.delete"
	ActivityBookingCreate = "booking.create"
	ActivityBookingStatus = "booking.status"
	ActivityStageApply    = "stage.apply"
	ActivityProfileUpdate = "profile.update"
	ActivityUserDelete    = "user.delete"
	ActivityModerate      = "admin.moderate"
)
