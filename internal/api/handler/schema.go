package handler

import (
	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// errorResponse documents the error envelope in the generated API docs.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// updateProfileRequest is shared by PUT /auth/profile and PUT /users/:id.
type updateProfileRequest struct {
	Name         *string                `json:"name,omitempty"`
	Phone        *string                `json:"phone,omitempty"`
	Avatar       *string                `json:"avatar,omitempty"`
	Location     *string                `json:"location,omitempty"`
	Bio          *string                `json:"bio,omitempty"`
	Specialties  []string               `json:"specialties,omitempty"`
	Availability *domain.Availability   `json:"availability,omitempty"`
	Portfolio    []domain.PortfolioItem `json:"portfolio,omitempty"`
}

func (r updateProfileRequest) patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		Name:         r.Name,
		Phone:        r.Phone,
		Avatar:       r.Avatar,
		Location:     r.Location,
		Bio:          r.Bio,
		Specialties:  r.Specialties,
		Availability: r.Availability,
		Portfolio:    r.Portfolio,
	}
}

// --- Services ---

type createServiceRequest struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Category     string   `json:"category"     validate:"required"`
	Price        float64  `json:"price"        validate:"gte=0"`
	Location     string   `json:"location"     validate:"required"`
	Availability string   `json:"availability"`
	Tags         []string `json:"tags"`
	Images       []string `json:"images"`
}

type updateServiceRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Location     *string  `json:"location,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Images       []string `json:"images,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (r updateServiceRequest) patch() domain.ServicePatch {
	return domain.ServicePatch{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Price:        r.Price,
		Location:     r.Location,
		Availability: r.Availability,
		Tags:         r.Tags,
		Images:       r.Images,
		IsActive:     r.IsActive,
	}
}

// --- Bookings ---

type createBookingRequest struct {
	ServiceID     string `json:"service_id"     validate:"required"`
	Date          string `json:"date"           validate:"required"`
	Time          string `json:"time"           validate:"required"`
	Duration      int    `json:"duration"       validate:"required,gt=0"`
	Location      string `json:"location"       validate:"required"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

// updateBookingRequest carries either a target status or a named action.
type updateBookingRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,booking_status"`
	Action string `json:"action,omitempty"`
}

// --- Stages ---

type applyRequest struct {
	Message string `json:"message"`
	CVURL   string `json:"cv_url,omitempty" validate:"omitempty,url"`
}

// --- Favorites ---

type favoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// --- Admin ---

type moderateRequest struct {
	Action string `json:"action" validate:"required"`
}

// --- Upload ---

type uploadResponse struct {
	URL string `json:"url"`
}
