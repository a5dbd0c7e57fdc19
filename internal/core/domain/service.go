package domain

import (
	"sort"
	"strings"
	"time"
)

// CategoryAll is the UI placeholder meaning "no category filter".
const CategoryAll = "Tous"

// DefaultPriceRange is applied by the search endpoint when no bounds are given.
var DefaultPriceRange = Range{Min: 0, Max: 10000}

// Service is an offering published by a provider.
type Service struct {
	ID           string    `json:"id"            bson:"_id"`
	Title        string    `json:"title"         bson:"title"`
	Description  string    `json:"description"   bson:"description"`
	ProviderID   string    `json:"provider_id"   bson:"provider_id"`
	ProviderName string    `json:"provider_name" bson:"provider_name"`
	Category     string    `json:"category"      bson:"category"`
	Price        float64   `json:"price"         bson:"price"`
	Location     string    `json:"location"      bson:"location"`
	Availability string    `json:"availability"  bson:"availability"`
	Rating       float64   `json:"rating"        bson:"rating"`
	ReviewCount  int       `json:"review_count"  bson:"review_count"`
	Tags         []string  `json:"tags"          bson:"tags"`
	Images       []string  `json:"images"        bson:"images"`
	IsActive     bool      `json:"is_active"     bson:"is_active"`
	CreatedAt    time.Time `json:"created_at"    bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    bson:"updated_at"`
}

// ServicePatch is a partial update of a service. Nil fields are untouched.
type ServicePatch struct {
	Title        *string
	Description  *string
	Category     *string
	Price        *float64
	Location     *string
	Availability *string
	Tags         []string
	Images       []string
	IsActive     *bool
}

// Apply merges p into s.
func (s *Service) Apply(p ServicePatch, at time.Time) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Availability != nil {
		s.Availability = *p.Availability
	}
	if p.Tags != nil {
		s.Tags = append([]string(nil), p.Tags...)
	}
	if p.Images != nil {
		s.Images = append([]string(nil), p.Images...)
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	s.UpdatedAt = at
}

// Clone returns a deep copy of s.
func (s *Service) Clone() *Service {
	c := *s
	c.Tags = append([]string(nil), s.Tags...)
	c.Images = append([]string(nil), s.Images...)
	return &c
}

// ServiceFilter holds the independent predicates of a service search.
// Zero values mean the predicate is inactive.
type ServiceFilter struct {
	Search     string
	Category   string
	Location   string
	Price      *Range
	MinRating  float64
	ProviderID string
	ActiveOnly bool
	// MatchProvider extends Search to the provider name (favorites view).
	MatchProvider bool
}

// Predicates returns the active predicates of f.
func (f ServiceFilter) Predicates() []Predicate[*Service] {
	var ps []Predicate[*Service]
	if q := strings.TrimSpace(f.Search); q != "" {
		ps = append(ps, func(s *Service) bool {
			return containsFold(s.Title, q) ||
				containsFold(s.Description, q) ||
				anyContainsFold(s.Tags, q) ||
				(f.MatchProvider && containsFold(s.ProviderName, q))
		})
	}
	if f.Category != "" && f.Category != CategoryAll {
		ps = append(ps, func(s *Service) bool { return s.Category == f.Category })
	}
	if f.Location != "" {
		ps = append(ps, func(s *Service) bool { return containsFold(s.Location, f.Location) })
	}
	if f.Price != nil {
		r := *f.Price
		ps = append(ps, func(s *Service) bool { return r.Contains(s.Price) })
	}
	if f.MinRating > 0 {
		ps = append(ps, func(s *Service) bool { return s.Rating >= f.MinRating })
	}
	if f.ProviderID != "" {
		ps = append(ps, func(s *Service) bool { return s.ProviderID == f.ProviderID })
	}
	if f.ActiveOnly {
		ps = append(ps, func(s *Service) bool { return s.IsActive })
	}
	return ps
}

// Apply filters services with f.
func (f ServiceFilter) Apply(services []*Service) []*Service {
	return Filter(services, f.Predicates()...)
}

// Service sort keys.
const (
	SortRecent    = "recent"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
)

// SortServices orders services in place by key. Unknown keys fall back to
// SortRecent. The sort is stable so equal keys keep their listing order.
func SortServices(services []*Service, key string) {
	var less func(a, b *Service) bool
	switch key {
	case SortPriceLow:
		less = func(a, b *Service) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b *Service) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b *Service) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b *Service) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(services, func(i, j int) bool { return less(services[i], services[j]) })
}
