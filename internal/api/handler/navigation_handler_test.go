package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skattajobs/marketplace-api/internal/core/access"
	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

func resolve(t *testing.T, path string, role domain.Role) access.Decision {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/navigation/resolve?path="+path, nil), rec)
	if role != "" {
		signIn(c, "u1", role)
	}
	if err := NewNavigationHandler().Resolve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var d access.Decision
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return d
}

func TestNavigationHandler_Resolve(t *testing.T) {
	if d := resolve(t, "/admin/dashboard", domain.RoleAdmin); d.Outcome != access.Render {
		t.Fatalf("expected render, got %+v", d)
	}
	if d := resolve(t, "/client-dashboard", domain.RoleAdmin); d.Outcome != access.Redirect || d.Target != access.HomePath {
		t.Fatalf("expected redirect home, got %+v", d)
	}
	if d := resolve(t, "/favorites", ""); d.Outcome != access.Redirect || d.Target != access.LoginPath || !d.Replace {
		t.Fatalf("expected redirect to login, got %+v", d)
	}
}
