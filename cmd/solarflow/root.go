package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/caue-mor/saas-solar/internal/config"
	"github.com/caue-mor/saas-solar/internal/logging"
	"github.com/caue-mor/saas-solar/pkg/adapters/file"
	"github.com/caue-mor/saas-solar/pkg/adapters/memory"
	"github.com/caue-mor/saas-solar/pkg/adapters/redis"
	"github.com/caue-mor/saas-solar/pkg/persistence/middleware"
	"github.com/caue-mor/saas-solar/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "solarflow",
	Short: "SolarFlow is a flow definition engine for solar sales CRMs",
	Long:  `SolarFlow manages per-company conversation flows: a node catalog, a visual graph editor backend, structural validation, templates and versioned persistence.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file")
}

// loadConfig reads the --config file, falling back to built-in defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.FromFile(path)
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// newStore builds the configured backend, wrapped with store logging.
func newStore(cfg config.Config, logger *slog.Logger) (ports.FlowStore, error) {
	var store ports.FlowStore
	switch cfg.Store.Backend {
	case config.StoreMemory:
		store = memory.NewStore()
	case config.StoreRedis:
		var opts []redis.Option
		if cfg.Store.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Store.Redis.Prefix))
		}
		store = redis.New(cfg.Store.Redis.Address, cfg.Store.Redis.Password, cfg.Store.Redis.DB, opts...)
	case config.StoreFile:
		store = file.New(cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}

	return middleware.Chain(store, middleware.NewLoggingMiddleware(logger)), nil
}
