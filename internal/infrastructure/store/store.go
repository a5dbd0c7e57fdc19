// Package store assembles the repositories for the configured driver.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/ports"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/db/memory"
	mongostore "github.com/skattajobs/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/skattajobs/marketplace-api/internal/infrastructure/db/redis"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/http/handlers"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/storage"
	"github.com/skattajobs/marketplace-api/internal/pkg/config"
)

// Store is the set of persistence adapters the services run on.
type Store struct {
	Users        ports.UserRepository
	Services     ports.ServiceRepository
	Stages       ports.StageRepository
	Applications ports.ApplicationRepository
	Bookings     ports.BookingRepository
	Profiles     ports.ProfileRepository
	Favorites    ports.FavoriteRepository
	Activity     ports.ActivityRepository
	Files        ports.FileStore

	ProfileCache ports.ProfileCache
	Denylist     ports.TokenDenylist

	// Pingers lists the external dependencies checked by readiness.
	Pingers map[string]handlers.Pinger

	closers []func(context.Context) error
}

// Memory returns a Store held entirely in process memory, with uploads
// written under uploadDir.
func Memory(uploadDir string) (*Store, error) {
	files, err := storage.NewDiskStore(uploadDir)
	if err != nil {
		return nil, err
	}
	return &Store{
		Users:        memory.NewUserRepository(),
		Services:     memory.NewServiceRepository(),
		Stages:       memory.NewStageRepository(),
		Applications: memory.NewApplicationRepository(),
		Bookings:     memory.NewBookingRepository(),
		Profiles:     memory.NewProfileRepository(),
		Favorites:    memory.NewFavoriteRepository(),
		Activity:     memory.NewActivityRepository(0),
		Files:        files,
		ProfileCache: memory.NewProfileCache(),
		Denylist:     memory.NewTokenDenylist(),
		Pingers:      map[string]handlers.Pinger{},
	}, nil
}

// Open builds the Store selected by cfg.StoreDriver. Redis replaces the
// in-memory profile cache and token denylist when enabled.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	var (
		s   *Store
		err error
	)
	switch cfg.StoreDriver {
	case config.DriverMongo:
		s, err = openMongo(ctx, cfg.Mongo)
	default:
		s, err = Memory(cfg.UploadDir)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.ProfileCache = redisstore.NewProfileCache(rdb)
		s.Denylist = redisstore.NewTokenDenylist(rdb)
		s.Pingers["redis"] = handlers.RedisPinger(rdb)
		s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })
	}

	log.Info().
		Str("driver", cfg.StoreDriver).
		Bool("redis", cfg.Redis.Enabled).
		Msg("store ready")
	return s, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.URI, Database: cfg.Database})
	if err != nil {
		return nil, err
	}
	disconnect := func(ctx context.Context) error { return client.Disconnect(ctx) }

	files, err := mongostore.NewFileStore(db)
	if err != nil {
		_ = disconnect(ctx)
		return nil, err
	}

	users := mongostore.NewUserRepository(db)
	services := mongostore.NewServiceRepository(db)
	applications := mongostore.NewApplicationRepository(db)
	bookings := mongostore.NewBookingRepository(db)
	favorites := mongostore.NewFavoriteRepository(db)
	activity := mongostore.NewActivityRepository(db)
	if err := mongostore.EnsureIndexes(ctx, users, services, applications, bookings, favorites, activity); err != nil {
		_ = disconnect(ctx)
		return nil, err
	}

	return &Store{
		Users:        users,
		Services:     services,
		Stages:       mongostore.NewStageRepository(db),
		Applications: applications,
		Bookings:     bookings,
		Profiles:     mongostore.NewProfileRepository(db),
		Favorites:    favorites,
		Activity:     activity,
		Files:        files,
		ProfileCache: memory.NewProfileCache(),
		Denylist:     memory.NewTokenDenylist(),
		Pingers:      map[string]handlers.Pinger{"mongodb": handlers.MongoPinger(db)},
		closers:      []func(context.Context) error{disconnect},
	}, nil
}

// Close releases every connection opened by Open, newest first.
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("close store: %w", errors.Join(errs...))
	}
	return nil
}
