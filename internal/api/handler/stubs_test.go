package handler

import (
	"context"
	"io"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	logoutFn   func(ctx context.Context, claims *token.Claims) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, claims *token.Claims) error {
	return s.logoutFn(ctx, claims)
}

func (s *stubAuthService) Refresh(context.Context, *token.Claims) (*ports.AuthResult, error) {
	return nil, nil
}

func (s *stubAuthService) Profile(context.Context, string) (*domain.User, error) {
	return nil, nil
}

type stubUserService struct {
	ports.UserService
	updateFn func(ctx context.Context, actor domain.Actor, id string, patch domain.ProfilePatch) (*domain.UserProfile, error)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, actor domain.Actor, id string, patch domain.ProfilePatch) (*domain.UserProfile, error) {
	return s.updateFn(ctx, actor, id, patch)
}

type stubBookingService struct {
	ports.BookingService
	updateStatusFn func(ctx context.Context, actor domain.Actor, id string, status domain.BookingStatus) (*domain.Booking, error)
	applyActionFn  func(ctx context.Context, actor domain.Actor, id string, action domain.BookingAction) (*domain.Booking, error)
	createFn       func(ctx context.Context, actor domain.Actor, in ports.CreateBookingInput) (*domain.Booking, error)
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, actor domain.Actor, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return s.updateStatusFn(ctx, actor, id, status)
}

func (s *stubBookingService) ApplyAction(ctx context.Context, actor domain.Actor, id string, action domain.BookingAction) (*domain.Booking, error) {
	return s.applyActionFn(ctx, actor, id, action)
}

func (s *stubBookingService) Create(ctx context.Context, actor domain.Actor, in ports.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, actor, in)
}

type stubCatalogService struct {
	ports.CatalogService
	listFn   func(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error)
	searchFn func(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error)
}

func (s *stubCatalogService) List(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
	return s.listFn(ctx, actor, in)
}

func (s *stubCatalogService) Search(ctx context.Context, actor domain.Actor, in ports.ListServicesInput) ([]*domain.Service, error) {
	return s.searchFn(ctx, actor, in)
}

type stubUploadService struct {
	uploadFn func(ctx context.Context, userID string, in ports.UploadInput) (string, error)
	openFn   func(ctx context.Context, name string) (io.ReadCloser, string, error)
}

func (s *stubUploadService) Upload(ctx context.Context, userID string, in ports.UploadInput) (string, error) {
	return s.uploadFn(ctx, userID, in)
}

func (s *stubUploadService) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	return s.openFn(ctx, name)
}
