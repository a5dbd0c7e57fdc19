package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrForbidden          = errors.New("access forbidden")

	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceInactive  = errors.New("service is not active")
	ErrStageNotFound    = errors.New("stage offer not found")
	ErrAlreadyApplied   = errors.New("already applied to this stage offer")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrFileNotFound     = errors.New("file not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnknownAction    = errors.New("unknown action")

	ErrInvalidTransition = errors.New("invalid status transition")
)
