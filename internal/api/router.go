package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/skattajobs/marketplace-api/internal/api/handler"
	"github.com/skattajobs/marketplace-api/internal/api/middleware"
	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/http/handlers"

	_ "github.com/skattajobs/marketplace-api/docs"
)

const uploadBodyLimit = "10M"

// Dependencies are the services and adapters the router exposes.
type Dependencies struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Catalog   ports.CatalogService
	Stages    ports.StageService
	Bookings  ports.BookingService
	Favorites ports.FavoriteService
	Admin     ports.AdminService
	Uploads   ports.UploadService

	Tokens   middleware.TokenParser
	Denylist ports.TokenDenylist
	Pingers  map[string]handlers.Pinger

	// Registry receives the request metrics; nil means the default registry.
	Registry *prometheus.Registry

	// CORSOrigins defaults to any origin when empty.
	CORSOrigins []string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: d.CORSOrigins}))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "skattajobs",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health" || c.Path() == "/health/ready"
		},
	}))

	// --- Ops routes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Pingers)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := middleware.Auth(d.Tokens, d.Denylist, d.Log)
	optionalAuth := middleware.OptionalAuth(d.Tokens, d.Denylist, d.Log)
	only := middleware.RBAC

	authHandler := handler.NewAuthHandler(d.Auth, d.Users)
	serviceHandler := handler.NewServiceHandler(d.Catalog)
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	stageHandler := handler.NewStageHandler(d.Stages)
	userHandler := handler.NewUserHandler(d.Users)
	favoriteHandler := handler.NewFavoriteHandler(d.Favorites)
	adminHandler := handler.NewAdminHandler(d.Admin)
	uploadHandler := handler.NewUploadHandler(d.Uploads)
	navigationHandler := handler.NewNavigationHandler()

	g := e.Group("/api")

	// --- Auth routes ---
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)
	g.POST("/auth/logout", authHandler.Logout, auth)
	g.POST("/auth/refresh", authHandler.Refresh, auth)
	g.GET("/auth/profile", authHandler.Profile, auth)
	g.PUT("/auth/profile", authHandler.UpdateProfile, auth)

	// --- Catalogue ---
	g.GET("/services", serviceHandler.List, optionalAuth)
	g.GET("/services/search", serviceHandler.Search, optionalAuth)
	g.GET("/services/:id", serviceHandler.Get, optionalAuth)
	g.POST("/services", serviceHandler.Create, auth, only(domain.RoleProvider))
	g.PUT("/services/:id", serviceHandler.Update, auth)
	g.DELETE("/services/:id", serviceHandler.Delete, auth)

	// --- Bookings ---
	bookings := g.Group("/bookings", auth)
	bookings.GET("", bookingHandler.List)
	bookings.POST("", bookingHandler.Create, only(domain.RoleClient))
	bookings.GET("/:id", bookingHandler.Get)
	bookings.PUT("/:id", bookingHandler.Update)
	bookings.DELETE("/:id", bookingHandler.Cancel)

	// --- Stage offers ---
	stages := g.Group("/stages", auth)
	stages.GET("", stageHandler.List)
	stages.GET("/applications", stageHandler.Applications)
	stages.GET("/:id", stageHandler.Get)
	stages.POST("/:id/apply", stageHandler.Apply)

	// --- Users ---
	users := g.Group("/users", auth)
	users.GET("", userHandler.List, only(domain.RoleAdmin))
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/profile", userHandler.Profile)
	users.GET("/:id/stats", userHandler.Stats)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, only(domain.RoleAdmin))

	// --- Favorites ---
	favorites := g.Group("/favorites", auth, only(domain.RoleClient))
	favorites.GET("", favoriteHandler.List)
	favorites.GET("/services", favoriteHandler.Services)
	favorites.PUT("/:service_id", favoriteHandler.Add)
	favorites.DELETE("/:service_id", favoriteHandler.Remove)

	// --- Admin ---
	admin := g.Group("/admin", auth, only(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/reports", adminHandler.Reports)
	admin.POST("/moderate/:id", adminHandler.Moderate)
	admin.GET("/logs", adminHandler.Logs)

	// --- Uploads ---
	g.POST("/upload", uploadHandler.Upload, echomiddleware.BodyLimit(uploadBodyLimit), auth)
	g.GET("/uploads/:name", uploadHandler.File)

	// --- Navigation ---
	g.GET("/navigation/resolve", navigationHandler.Resolve, optionalAuth)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
