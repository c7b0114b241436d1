package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dfbb/lpqr/internal/catalog"
	"github.com/dfbb/lpqr/internal/config"
)

var rootCmd = &cobra.Command{
	Use:               "lpqr",
	Short:             "Print QR codes and pixel grids as terminal text",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	flagConfig string
	cfg        *config.Config
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.lpqr/config.yaml)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(literalCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lpqr", "config.yaml")
}

// setup loads the config file and installs the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("loading config: %w", err)
		}
		c = config.Defaults()
	}
	cfg = c
	if err := setupLogging(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}
	slog.Debug("config loaded", "path", configPath(), "formatter", cfg.Formatter)
	return nil
}

func setupLogging(level, file string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("loglevel %q: %w", level, err)
	}
	w := os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// loadCatalog returns the built-in formatters overlaid with the configured
// catalog directory, if any.
func loadCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogDir == "" {
		return c, nil
	}
	if err := c.LoadFS(os.DirFS(cfg.CatalogDir)); err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.CatalogDir, err)
	}
	slog.Info("catalog directory loaded", "dir", cfg.CatalogDir)
	return c, nil
}
