package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/skattajobs/marketplace-api/internal/api"
	"github.com/skattajobs/marketplace-api/internal/core/service"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/queue"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/store"
	"github.com/skattajobs/marketplace-api/internal/pkg/token"
	"github.com/skattajobs/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	st, err := store.Open(ctx, cfg, logger.Component("store"))
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close store")
		}
	}()

	if cfg.Seed.Demo {
		if err := runSeed(ctx, st); err != nil {
			return err
		}
	}

	// The dispatcher outlives the request context so queued entries are
	// drained after the server stops.
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.LogWorkers, st.Activity, logger.Component("activity"))
	dispatcher.Start(workersCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	svcLog := logger.Component("service")
	e := api.NewRouter(api.Dependencies{
		Auth:      service.NewAuthService(st.Users, issuer, st.Denylist, dispatcher, svcLog),
		Users:     service.NewUserService(st.Users, st.Profiles, st.ProfileCache, st.Services, st.Bookings, st.Denylist, cfg.TokenTTL, dispatcher, svcLog),
		Catalog:   service.NewCatalogService(st.Services, st.Users, dispatcher, svcLog),
		Stages:    service.NewStageService(st.Stages, st.Applications, dispatcher, svcLog),
		Bookings:  service.NewBookingService(st.Bookings, st.Services, dispatcher, svcLog),
		Favorites: service.NewFavoriteService(st.Favorites, st.Services, svcLog),
		Admin:     service.NewAdminService(st.Users, st.Services, st.Stages, st.Bookings, st.Activity, dispatcher, svcLog),
		Uploads:   service.NewUploadService(st.Files, cfg.PublicURL, svcLog),
		Tokens:    issuer,
		Denylist:  st.Denylist,
		Pingers:   st.Pingers,
		Log:       logger.Component("http"),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("server stopped gracefully")
	return nil
}
