package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level budgetd.yaml configuration.
type Config struct {
	Server       ServerConfig   `yaml:"server"`
	Database     DatabaseConfig `yaml:"database"`
	Ingest       IngestConfig   `yaml:"ingest"`
	Institutions []Institution  `yaml:"institutions,omitempty"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
	Mode    string `yaml:"mode,omitempty"` // gin mode: debug, release, test
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path    string `yaml:"path"`
	LogMode bool   `yaml:"log_mode,omitempty"`
}

// RowErrorPolicy selects what an ingestion run does with rows that fail
// to normalize (bad amount or date). Provisioning and storage errors
// always abort the batch regardless of policy.
type RowErrorPolicy string

const (
	RowErrorSkip  RowErrorPolicy = "skip"
	RowErrorAbort RowErrorPolicy = "abort"
)

// IngestConfig controls ingestion behavior.
type IngestConfig struct {
	OnRowError     RowErrorPolicy `yaml:"on_row_error"`
	TimeoutSeconds int            `yaml:"timeout_seconds"`
}

// Institution maps a bank export format to the user's own account at
// that bank. Every ledger entry written from that bank's export has one
// leg on this account.
type Institution struct {
	Name      string `yaml:"name"`
	Format    string `yaml:"format"`
	AccountID int    `yaml:"account_id"`
}

// Load reads a budgetd.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new install.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "",
			Port:    5174,
			Mode:    "release",
		},
		Database: DatabaseConfig{
			Path: "data/budgetd.sqlite3",
		},
		Ingest: IngestConfig{
			OnRowError:     RowErrorSkip,
			TimeoutSeconds: 60,
		},
		Institutions: []Institution{
			{Name: "Umpqua", Format: "umpqua", AccountID: 1},
			{Name: "FNBO", Format: "fnbo", AccountID: 2},
		},
	}
}

// InstitutionForFormat returns the institution configured for a bank
// export format.
func (c *Config) InstitutionForFormat(format string) (Institution, bool) {
	for _, inst := range c.Institutions {
		if inst.Format == format {
			return inst, true
		}
	}
	return Institution{}, false
}
