package client

import (
	"net/url"
	"strconv"
)

// ServiceFilter maps to the catalogue query parameters. Zero values are omitted.
type ServiceFilter struct {
	Search     string
	Category   string
	Location   string
	ProviderID string
	PriceMin   *float64
	PriceMax   *float64
	MinRating  float64
	// Sort is one of recent, price_low, price_high, rating.
	Sort string
}

func (f ServiceFilter) values() url.Values {
	v := url.Values{}
	set(v, "search", f.Search)
	set(v, "category", f.Category)
	set(v, "location", f.Location)
	set(v, "provider_id", f.ProviderID)
	setFloat(v, "price_min", f.PriceMin)
	setFloat(v, "price_max", f.PriceMax)
	if f.MinRating > 0 {
		v.Set("min_rating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	set(v, "sort", f.Sort)
	return v
}

type StageFilter struct {
	Search     string
	Type       string
	Location   string
	Company    string
	SalaryMin  *float64
	SalaryMax  *float64
	UrgentOnly bool
}

func (f StageFilter) values() url.Values {
	v := url.Values{}
	set(v, "search", f.Search)
	set(v, "type", f.Type)
	set(v, "location", f.Location)
	set(v, "company", f.Company)
	setFloat(v, "salary_min", f.SalaryMin)
	setFloat(v, "salary_max", f.SalaryMax)
	if f.UrgentOnly {
		v.Set("urgent", "true")
	}
	return v
}

// Price is a helper for the optional range bounds.
func Price(v float64) *float64 { return &v }

func set(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setFloat(v url.Values, key string, f *float64) {
	if f != nil {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}
