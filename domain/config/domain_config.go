package config

import (
	"fmt"
	"unicode/utf8"
)

// MaxPlatformLength bounds the platform label accepted by the API, in runes
const MaxPlatformLength = 64

// DomainConfig holds the configurable business rules of the dashboard
type DomainConfig struct {
	// Request defaults
	DefaultPlatform   string `yaml:"default_platform"`
	DefaultWindowDays int    `yaml:"default_window_days"`

	// Request limits; caps the series allocated per request
	MaxRangeDays int `yaml:"max_range_days"`

	// Social graph shape
	GraphNodeCount int `yaml:"graph_node_count"`
	GraphLinkCount int `yaml:"graph_link_count"`
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		DefaultPlatform:   "twitter",
		DefaultWindowDays: 30,

		MaxRangeDays: 3660,

		GraphNodeCount: 40,
		GraphLinkCount: 80,
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.DefaultPlatform == "" {
		return fmt.Errorf("default platform cannot be empty")
	}
	if utf8.RuneCountInString(c.DefaultPlatform) > MaxPlatformLength {
		return fmt.Errorf("default platform exceeds maximum length of %d", MaxPlatformLength)
	}
	if c.DefaultWindowDays < 0 {
		return fmt.Errorf("default window cannot be negative, got %d", c.DefaultWindowDays)
	}
	if c.MaxRangeDays < 1 {
		return fmt.Errorf("max range must be at least 1 day, got %d", c.MaxRangeDays)
	}
	if c.DefaultWindowDays+1 > c.MaxRangeDays {
		return fmt.Errorf("default window of %d days exceeds max range of %d days", c.DefaultWindowDays, c.MaxRangeDays)
	}
	if c.GraphNodeCount < 0 || c.GraphLinkCount < 0 {
		return fmt.Errorf("graph sizes cannot be negative")
	}
	// every link joins two distinct nodes
	if c.GraphLinkCount > 0 && c.GraphNodeCount < 2 {
		return fmt.Errorf("graph needs at least 2 nodes to draw %d links", c.GraphLinkCount)
	}
	return nil
}
