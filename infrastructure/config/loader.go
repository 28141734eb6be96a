package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	domainconfig "mhtrends-backend/domain/config"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

// EnvDir is where per-environment .env files live
const EnvDir = "config/envs"

// LoadEnvFile reads config/envs/.env.<env> into the process environment.
// A missing file is not an error; variables already set win.
func LoadEnvFile(env string) error {
	envFile := filepath.Join(EnvDir, ".env."+env)
	if err := gotenv.Load(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

// settingsFile is the YAML layout of the dashboard rules file
type settingsFile struct {
	Dashboard *domainconfig.DomainConfig `yaml:"dashboard"`
}

// LoadDashboardSettings builds the dashboard rules. The loading order, from
// lowest to highest priority, is defaults, the YAML file at path (if any),
// then DASHBOARD_* environment variables.
func LoadDashboardSettings(path string) (*domainconfig.DomainConfig, error) {
	cfg := domainconfig.DefaultDomainConfig()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer file.Close()

		if err := decodeSettings(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	applyDashboardEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dashboard settings: %w", err)
	}
	return cfg, nil
}

// decodeSettings overlays the YAML document on cfg. Keys absent from the
// document keep their current values.
func decodeSettings(r io.Reader, cfg *domainconfig.DomainConfig) error {
	doc := settingsFile{Dashboard: cfg}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
