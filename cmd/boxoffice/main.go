package main

import (
	"fmt"
	"os"

	"github.com/newthinker/boxoffice/internal/config"
	"github.com/newthinker/boxoffice/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "boxoffice",
	Short: "Movie box office revenue dashboard",
	Long: `boxoffice serves an interactive dashboard of domestic box office revenue
by genre and release year, computed from a cleaned movies CSV.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

// loadConfig reads --config (optional) plus environment overrides and validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. level overrides the configured level
// unless --debug is set.
func newLogger(cfg *config.Config, level string) (*zap.Logger, error) {
	if debug {
		return logger.New(true, "debug")
	}
	if level == "" {
		level = cfg.Log.Level
	}
	return logger.New(false, level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
