package client

import (
	"time"

	"github.com/skattajobs/marketplace-api/pkg/session"
)

// User is the public account record.
type User = session.User

const (
	RoleClient   = "client"
	RoleProvider = "prestataire"
	RoleAdmin    = "admin"
)

type Service struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	Tags         []string  `json:"tags"`
	Images       []string  `json:"images"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type StageOffer struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location"`
	Duration     string    `json:"duration"`
	StartDate    string    `json:"start_date"`
	Type         string    `json:"type"`
	Salary       *float64  `json:"salary,omitempty"`
	CompanyLogo  string    `json:"company_logo,omitempty"`
	IsUrgent     bool      `json:"is_urgent"`
	Applicants   int       `json:"applicants"`
	Deadline     string    `json:"deadline"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

type StageApplication struct {
	ID        string    `json:"id"`
	StageID   string    `json:"stage_id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CVURL     string    `json:"cv_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Booking struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"service_id"`
	ClientID      string    `json:"client_id"`
	ProviderID    string    `json:"provider_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Duration      int       `json:"duration"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	TotalPrice    float64   `json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
}

type Availability struct {
	Days      []string `json:"days"`
	TimeSlots []string `json:"time_slots"`
}

type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	CompletedAt string   `json:"completed_at"`
}

type UserProfile struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone,omitempty"`
	Avatar        string          `json:"avatar,omitempty"`
	Location      string          `json:"location,omitempty"`
	Bio           string          `json:"bio,omitempty"`
	Rating        float64         `json:"rating,omitempty"`
	ReviewCount   int             `json:"review_count,omitempty"`
	CompletedJobs int             `json:"completed_jobs,omitempty"`
	Specialties   []string        `json:"specialties,omitempty"`
	Availability  *Availability   `json:"availability,omitempty"`
	Portfolio     []PortfolioItem `json:"portfolio,omitempty"`
	IsOnline      bool            `json:"is_online"`
	LastSeen      *time.Time      `json:"last_seen,omitempty"`
}

type UserStats struct {
	UserID            string  `json:"user_id"`
	Role              string  `json:"role"`
	TotalBookings     int     `json:"total_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	TotalSpent        float64 `json:"total_spent,omitempty"`
	Services          int     `json:"services,omitempty"`
	Revenue           float64 `json:"revenue,omitempty"`
	AverageRating     float64 `json:"average_rating,omitempty"`
}

type AdminStats struct {
	Users          map[string]int `json:"users"`
	TotalUsers     int            `json:"total_users"`
	Services       int            `json:"services"`
	ActiveServices int            `json:"active_services"`
	StageOffers    int            `json:"stage_offers"`
	Bookings       map[string]int `json:"bookings"`
	TotalBookings  int            `json:"total_bookings"`
	Revenue        float64        `json:"revenue"`
}

type CategoryReport struct {
	Category  string  `json:"category"`
	Services  int     `json:"services"`
	Bookings  int     `json:"bookings"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
}

type ActivityLog struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Decision is the navigation outcome for a client path.
type Decision struct {
	Outcome string `json:"outcome"`
	Route   string `json:"route,omitempty"`
	Target  string `json:"target,omitempty"`
	Replace bool   `json:"replace,omitempty"`
}

// --- requests ---

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// ProfileUpdate is a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	Name         *string         `json:"name,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Avatar       *string         `json:"avatar,omitempty"`
	Location     *string         `json:"location,omitempty"`
	Bio          *string         `json:"bio,omitempty"`
	Specialties  []string        `json:"specialties,omitempty"`
	Availability *Availability   `json:"availability,omitempty"`
	Portfolio    []PortfolioItem `json:"portfolio,omitempty"`
}

type CreateServiceRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	Location     string   `json:"location"`
	Availability string   `json:"availability,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Images       []string `json:"images,omitempty"`
}

type UpdateServiceRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Images       []string `json:"images,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type CreateBookingRequest struct {
	ServiceID     string `json:"service_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Duration      int    `json:"duration"`
	Location      string `json:"location"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"payment_method"`
}

// UpdateBookingRequest sets either Status or Action.
type UpdateBookingRequest struct {
	Status string `json:"status,omitempty"`
	Action string `json:"action,omitempty"`
}

type ApplyRequest struct {
	Message string `json:"message"`
	CVURL   string `json:"cv_url,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
