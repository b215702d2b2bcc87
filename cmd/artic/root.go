package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/kerbaras/artic/pkg/app"
	"github.com/kerbaras/artic/pkg/config"
	"github.com/kerbaras/artic/pkg/services"
	"github.com/kerbaras/artic/pkg/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	controller *services.GalleryController
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "artic",
	Short: "Browse the Art Institute of Chicago collection",
	Long:  "Browse, search and collect artworks from the Art Institute of Chicago with a TUI and CLI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)

		logCloser, err = utils.SetupLogging(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		controller, err = services.NewGalleryController(cfg)
		if err != nil {
			return err
		}
		log.WithField("persistent", controller.Persistent()).Debug("controller ready")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if controller != nil {
			if err := controller.Close(); err != nil {
				log.WithError(err).Warn("failed to close favorites store")
			}
		}
		if logCloser != nil {
			logCloser.Close()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(controller)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("favorites-db", "", "DuckDB file that keeps favorites between sessions")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(favoritesCmd)
}

// applyFlags lets command line flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("favorites-db") {
		cfg.FavoritesDB, _ = flags.GetString("favorites-db")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if f := flags.Lookup("limit"); f != nil && flags.Changed("limit") {
		if limit, _ := flags.GetInt("limit"); limit > 0 {
			cfg.PageSize = limit
		}
	}
	if f := flags.Lookup("output"); f != nil && flags.Changed("output") {
		cfg.ExportDir, _ = flags.GetString("output")
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
