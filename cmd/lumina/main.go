package main

import (
	"fmt"
	"os"

	"lumina/internal/auth"
	"lumina/internal/config"
	"lumina/internal/content"
	"lumina/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Lumina personal site content service",
	Long: `Lumina serves a personal site's articles, moments, curated links,
projects, gallery and life-log over a JSON API, and can browse the mixed
feed in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		if logger, err = logging.New(level); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, browseCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSeed returns the embedded fixtures unless SEED_FILE points elsewhere.
func loadSeed() (content.Seed, error) {
	if cfg.SeedFile == "" {
		return content.DefaultSeed()
	}
	f, err := os.Open(cfg.SeedFile)
	if err != nil {
		return content.Seed{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return content.LoadSeed(f)
}

func newStore() (*content.Store, error) {
	seed, err := loadSeed()
	if err != nil {
		return nil, err
	}
	return content.NewStore(seed, content.WithLogger(logger.Named("content"))), nil
}

// newRegistry installs the configured admin and visitor accounts.
func newRegistry() (*auth.Registry, error) {
	reg := auth.NewRegistry(cfg.AdminUsername, logger.Named("auth"))
	if err := reg.Seed(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if cfg.VisitorUsername != "" {
		if err := reg.Seed(cfg.VisitorUsername, cfg.VisitorPassword); err != nil {
			return nil, fmt.Errorf("seed visitor: %w", err)
		}
	}
	return reg, nil
}
