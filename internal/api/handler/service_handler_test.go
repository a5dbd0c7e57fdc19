package handler

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

func TestServiceHandler_List_ParsesFilters(t *testing.T) {
	e := echo.New()
	var got ports.ListServicesInput
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
			got = in
			return []*domain.Service{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/services?search=plomb&category=Plomberie&price_min=1000&min_rating=4.5&sort=price_low", nil)
	rec := httptest.NewRecorder()
	if err := NewServiceHandler(stub).List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	f := got.Filter
	if f.Search != "plomb" || f.Category != "Plomberie" || f.MinRating != 4.5 || got.Sort != domain.SortPriceLow {
		t.Fatalf("unexpected filter: %+v sort=%s", f, got.Sort)
	}
	if f.Price == nil || f.Price.Min != 1000 || !math.IsInf(f.Price.Max, 1) {
		t.Fatalf("expected open-ended price range, got %+v", f.Price)
	}
}

func TestServiceHandler_List_NoPriceByDefault(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
			if in.Filter.Price != nil {
				t.Fatalf("expected no price predicate, got %+v", in.Filter.Price)
			}
			return nil, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	if err := NewServiceHandler(stub).List(e.NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestServiceHandler_Search_QAlias(t *testing.T) {
	e := echo.New()
	stub := &stubCatalogService{
		searchFn: func(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
			if in.Filter.Search != "jardin" {
				t.Fatalf("expected q to populate search, got %q", in.Filter.Search)
			}
			return nil, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/services/search?q=jardin", nil)
	if err := NewServiceHandler(stub).Search(e.NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestServiceHandler_List_BadNumber(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/services?price_max=cheap", nil)
	err := NewServiceHandler(&stubCatalogService{}).List(e.NewContext(req, httptest.NewRecorder()))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
