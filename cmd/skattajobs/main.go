// @title           SkattaJobs API
// @version         1.0
// @description     Services and job marketplace: providers, clients, bookings, stage offers.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skattajobs/marketplace-api/internal/pkg/config"
	"github.com/skattajobs/marketplace-api/pkg/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "skattajobs",
	Short:         "SkattaJobs marketplace API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		log = logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.Development(),
			Service: "skattajobs",
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
