package domain

import (
	"fmt"
	"strings"
	"time"
)

// StageType distinguishes internship, job and vacation-job listings.
type StageType string

const (
	StageInternship  StageType = "stage"
	StageJob         StageType = "job"
	StageVacationJob StageType = "vacation_job"
)

// ParseStageType validates s against the declared listing types.
func ParseStageType(s string) (StageType, error) {
	t := StageType(s)
	switch t {
	case StageInternship, StageJob, StageVacationJob:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown stage type %q", ErrValidation, s)
}

// StageOffer is an internship, job or vacation-job listing.
type StageOffer struct {
	ID           string    `json:"id"            bson:"_id"`
	Title        string    `json:"title"         bson:"title"`
	Company      string    `json:"company"       bson:"company"`
	Description  string    `json:"description"   bson:"description"`
	Requirements []string  `json:"requirements"  bson:"requirements"`
	Location     string    `json:"location"      bson:"location"`
	Duration     string    `json:"duration"      bson:"duration"`
	StartDate    string    `json:"start_date"    bson:"start_date"`
	Type         StageType `json:"type"          bson:"type"`
	Salary       *float64  `json:"salary,omitempty"       bson:"salary,omitempty"`
	CompanyLogo  string    `json:"company_logo,omitempty" bson:"company_logo,omitempty"`
	IsUrgent     bool      `json:"is_urgent"     bson:"is_urgent"`
	Applicants   int       `json:"applicants"    bson:"applicants"`
	Deadline     string    `json:"deadline"      bson:"deadline"`
	ContactEmail string    `json:"contact_email" bson:"contact_email"`
	CreatedAt    time.Time `json:"created_at"    bson:"created_at"`
}

// Clone returns a deep copy of o.
func (o *StageOffer) Clone() *StageOffer {
	c := *o
	c.Requirements = append([]string(nil), o.Requirements...)
	if o.Salary != nil {
		v := *o.Salary
		c.Salary = &v
	}
	return &c
}

// StageApplication records a user applying to a stage offer.
type StageApplication struct {
	ID        string    `json:"id"         bson:"_id"`
	StageID   string    `json:"stage_id"   bson:"stage_id"`
	UserID    string    `json:"user_id"    bson:"user_id"`
	Message   string    `json:"message"    bson:"message"`
	CVURL     string    `json:"cv_url,omitempty" bson:"cv_url,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// DeclaresSalary reports whether o carries a salary. Zero counts as undeclared.
func (o *StageOffer) DeclaresSalary() bool { return o.Salary != nil && *o.Salary != 0 }

// StageFilter holds the independent predicates of a stage-offer search.
type StageFilter struct {
	Search   string
	Type     StageType
	Location string
	Company  string
	// Salary only constrains offers that declare a non-zero salary.
	Salary     *Range
	UrgentOnly bool
}

// Predicates returns the active predicates of f.
func (f StageFilter) Predicates() []Predicate[*StageOffer] {
	var ps []Predicate[*StageOffer]
	if q := strings.TrimSpace(f.Search); q != "" {
		ps = append(ps, func(o *StageOffer) bool {
			return containsFold(o.Title, q) || containsFold(o.Company, q) || containsFold(o.Description, q)
		})
	}
	if f.Type != "" {
		ps = append(ps, func(o *StageOffer) bool { return o.Type == f.Type })
	}
	if f.Location != "" {
		ps = append(ps, func(o *StageOffer) bool { return containsFold(o.Location, f.Location) })
	}
	if f.Company != "" {
		ps = append(ps, func(o *StageOffer) bool { return containsFold(o.Company, f.Company) })
	}
	if f.Salary != nil {
		r := *f.Salary
		ps = append(ps, func(o *StageOffer) bool { return !o.DeclaresSalary() || r.Contains(*o.Salary) })
	}
	if f.UrgentOnly {
		ps = append(ps, func(o *StageOffer) bool { return o.IsUrgent })
	}
	return ps
}

// Apply filters offers with f.
func (f StageFilter) Apply(offers []*StageOffer) []*StageOffer {
	return Filter(offers, f.Predicates()...)
}
