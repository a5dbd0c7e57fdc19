package handler

import (
	"fmt"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// rangeQuery reads an inclusive [minKey, maxKey] numeric range. It returns
// nil when neither bound is present.
func rangeQuery(c echo.Context, minKey, maxKey string) (*domain.Range, error) {
	if c.QueryParam(minKey) == "" && c.QueryParam(maxKey) == "" {
		return nil, nil
	}
	r := domain.Range{Min: 0, Max: math.Inf(1)}
	err := echo.QueryParamsBinder(c).
		Float64(minKey, &r.Min).
		Float64(maxKey, &r.Max).
		BindError()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s/%s", minKey, maxKey))
	}
	return &r, nil
}

// serviceListQuery decodes the catalogue filter and sort parameters.
// "q" is accepted as an alias of "search".
func serviceListQuery(c echo.Context) (ports.ListServicesInput, error) {
	var in ports.ListServicesInput
	f := &in.Filter

	f.Search = c.QueryParam("search")
	if q := c.QueryParam("q"); q != "" {
		f.Search = q
	}
	err := echo.QueryParamsBinder(c).
		String("category", &f.Category).
		String("location", &f.Location).
		String("provider_id", &f.ProviderID).
		Float64("min_rating", &f.MinRating).
		String("sort", &in.Sort).
		BindError()
	if err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	price, err := rangeQuery(c, "price_min", "price_max")
	if err != nil {
		return in, err
	}
	f.Price = price
	return in, nil
}

// stageListQuery decodes the stage-offer filter parameters.
func stageListQuery(c echo.Context) (domain.StageFilter, error) {
	var f domain.StageFilter
	var kind string
	err := echo.QueryParamsBinder(c).
		String("search", &f.Search).
		String("type", &kind).
		String("location", &f.Location).
		String("company", &f.Company).
		Bool("urgent", &f.UrgentOnly).
		BindError()
	if err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if kind != "" && kind != "all" {
		t, err := domain.ParseStageType(kind)
		if err != nil {
			return f, err
		}
		f.Type = t
	}

	salary, err := rangeQuery(c, "salary_min", "salary_max")
	if err != nil {
		return f, err
	}
	f.Salary = salary
	return f, nil
}
