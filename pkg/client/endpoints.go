package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/skattajobs/marketplace-api/pkg/session"
)

// --- Auth ---

// Login signs in and stores the session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.User, c.storeSession(ctx, resp)
}

// Register creates an account and signs in with it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, c.storeSession(ctx, resp)
}

// Logout revokes the token server-side and clears the session. The session
// is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := c.session.Clear(ctx); clearErr != nil {
		return clearErr
	}
	if IsUnauthorized(err) {
		return nil
	}
	return err
}

// Refresh exchanges the current token for a new one.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, &resp); err != nil {
		return "", err
	}
	if resp.User == nil {
		state, err := c.session.Load(ctx)
		if err != nil {
			return "", err
		}
		resp.User = state.User
	}
	return resp.Token, c.storeSession(ctx, resp)
}

func (c *Client) storeSession(ctx context.Context, resp authResponse) error {
	return c.session.Save(ctx, session.State{
		Token:           resp.Token,
		User:            resp.User,
		IsAuthenticated: resp.Token != "",
	})
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, patch ProfileUpdate) (*UserProfile, error) {
	var p UserProfile
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// --- Services ---

func (c *Client) Services(ctx context.Context, f ServiceFilter) ([]Service, error) {
	var out []Service
	if err := c.do(ctx, http.MethodGet, "/services", f.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchServices queries the search endpoint, which defaults the price range
// to 0..10000 when neither bound is set.
func (c *Client) SearchServices(ctx context.Context, query string, f ServiceFilter) ([]Service, error) {
	v := f.values()
	v.Del("search")
	set(v, "q", query)
	var out []Service
	if err := c.do(ctx, http.MethodGet, "/services/search", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Service(ctx context.Context, id string) (*Service, error) {
	var s Service
	if err := c.do(ctx, http.MethodGet, "/services/"+url.PathEscape(id), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	var s Service
	if err := c.do(ctx, http.MethodPost, "/services", nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, req UpdateServiceRequest) (*Service, error) {
	var s Service
	if err := c.do(ctx, http.MethodPut, "/services/"+url.PathEscape(id), nil, req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil, nil)
}

// --- Bookings ---

// Bookings lists the caller's bookings. An empty status or "all" lists every status.
func (c *Client) Bookings(ctx context.Context, status string) ([]Booking, error) {
	v := url.Values{}
	if status != "all" {
		set(v, "status", status)
	}
	var out []Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Booking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var b Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*Booking, error) {
	var b Booking
	if err := c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id), nil, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CancelBooking moves the booking to cancelled; bookings are never deleted.
func (c *Client) CancelBooking(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// --- Stages ---

func (c *Client) StageOffers(ctx context.Context, f StageFilter) ([]StageOffer, error) {
	var out []StageOffer
	if err := c.do(ctx, http.MethodGet, "/stages", f.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) StageOffer(ctx context.Context, id string) (*StageOffer, error) {
	var o StageOffer
	if err := c.do(ctx, http.MethodGet, "/stages/"+url.PathEscape(id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) ApplyToStage(ctx context.Context, stageID string, req ApplyRequest) (*StageApplication, error) {
	var a StageApplication
	if err := c.do(ctx, http.MethodPost, "/stages/"+url.PathEscape(stageID)+"/apply", nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) Applications(ctx context.Context) ([]StageApplication, error) {
	var out []StageApplication
	if err := c.do(ctx, http.MethodGet, "/stages/applications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Users ---

// Users lists accounts, optionally filtered by role and search text. Admin only.
func (c *Client) Users(ctx context.Context, role, search string) ([]User, error) {
	v := url.Values{}
	set(v, "role", role)
	set(v, "search", search)
	var out []User
	if err := c.do(ctx, http.MethodGet, "/users", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UserProfile(ctx context.Context, id string) (*UserProfile, error) {
	var p UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id)+"/profile", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, patch ProfileUpdate) (*UserProfile, error) {
	var p UserProfile
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), nil, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) UserStats(ctx context.Context, id string) (*UserStats, error) {
	var s UserStats
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id)+"/stats", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// --- Favorites ---

type favoritesResponse struct {
	Favorites []string `json:"favorites"`
}

func (c *Client) Favorites(ctx context.Context) ([]string, error) {
	var resp favoritesResponse
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Favorites, nil
}

func (c *Client) FavoriteServices(ctx context.Context, f ServiceFilter) ([]Service, error) {
	var out []Service
	if err := c.do(ctx, http.MethodGet, "/favorites/services", f.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFavorite returns the updated favorite set.
func (c *Client) AddFavorite(ctx context.Context, serviceID string) ([]string, error) {
	var resp favoritesResponse
	err := c.do(ctx, http.MethodPut, "/favorites/"+url.PathEscape(serviceID), nil, nil, &resp)
	return resp.Favorites, err
}

// RemoveFavorite returns the updated favorite set.
func (c *Client) RemoveFavorite(ctx context.Context, serviceID string) ([]string, error) {
	var resp favoritesResponse
	err := c.do(ctx, http.MethodDelete, "/favorites/"+url.PathEscape(serviceID), nil, nil, &resp)
	return resp.Favorites, err
}

// --- Admin ---

func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	var s AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Reports(ctx context.Context) ([]CategoryReport, error) {
	var out []CategoryReport
	if err := c.do(ctx, http.MethodGet, "/admin/reports", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Moderate applies "activate" or "deactivate" to a service.
func (c *Client) Moderate(ctx context.Context, serviceID, action string) (*Service, error) {
	var s Service
	body := map[string]string{"action": action}
	if err := c.do(ctx, http.MethodPost, "/admin/moderate/"+url.PathEscape(serviceID), nil, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Logs returns the most recent activity entries. limit <= 0 uses the server default.
func (c *Client) Logs(ctx context.Context, limit int) ([]ActivityLog, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out []ActivityLog
	if err := c.do(ctx, http.MethodGet, "/admin/logs", v, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Navigation ---

// Resolve asks the server which view to show for a client path.
func (c *Client) Resolve(ctx context.Context, path string) (*Decision, error) {
	var d Decision
	if err := c.do(ctx, http.MethodGet, "/navigation/resolve", url.Values{"path": {path}}, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// --- Upload ---

// UploadType is the purpose of an uploaded file.
type UploadType string

const (
	UploadAvatar    UploadType = "avatar"
	UploadService   UploadType = "service"
	UploadPortfolio UploadType = "portfolio"
)

// Upload sends r as a multipart file and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader, kind UploadType) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy upload: %w", err)
	}
	if err := w.WriteField("type", string(kind)); err != nil {
		return "", fmt.Errorf("write type field: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.send(ctx, http.MethodPost, "/upload", nil, &buf, w.FormDataContentType(), &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
