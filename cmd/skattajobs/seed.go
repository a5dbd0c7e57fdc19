package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/skattajobs/marketplace-api/internal/infrastructure/store"
	"github.com/skattajobs/marketplace-api/internal/seed"
	"github.com/skattajobs/marketplace-api/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo accounts and listings, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Seed.Password == "" {
			return errors.New("DEMO_PASSWORD is required to seed outside development")
		}
		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg, logger.Component("store"))
		if err != nil {
			return err
		}
		defer st.Close(context.Background())
		return runSeed(ctx, st)
	},
}

func runSeed(ctx context.Context, st *store.Store) error {
	res, err := seed.Run(ctx, seed.Repositories{
		Users:    st.Users,
		Services: st.Services,
		Stages:   st.Stages,
		Bookings: st.Bookings,
		Profiles: st.Profiles,
	}, cfg.Seed.Password, logger.Component("seed"))
	if err != nil {
		return err
	}
	log.Info().Interface("inserted", res).Msg("demo data seeded")
	return nil
}
