package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Formatter  string   `yaml:"formatter"`   // catalog path, e.g. halfblock.utf8
	CatalogDir string   `yaml:"catalog_dir"` // extra formatter files, overriding the built-ins
	LogLevel   string   `yaml:"loglevel"`
	LogFile    string   `yaml:"logfile"`    // empty logs to stderr
	HistoryDB  string   `yaml:"history_db"` // empty disables render history
	QR         QRConfig `yaml:"qr"`
}

type QRConfig struct {
	Level      string `yaml:"level"`       // L, M, Q or H
	ModuleSize int    `yaml:"module_size"` // pixels per module side
	Border     int    `yaml:"border"`      // quiet zone in modules
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Formatter: "halfblock.utf8",
		LogLevel:  "warn",
		QR: QRConfig{
			Level:      "M",
			ModuleSize: 1,
			Border:     4,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
