// Package config loads and validates the sitegen site configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

// Config represents the application configuration
type Config struct {
	Site        SiteConfig                  `yaml:"site"`
	Source      string                      `yaml:"source"`
	Output      OutputConfig                `yaml:"output"`
	Collections map[string]CollectionConfig `yaml:"collections"`
	Defaults    []DefaultsRule              `yaml:"defaults"`
	Build       BuildConfig                 `yaml:"build"`
	Locales     LocaleConfig                `yaml:"locales"`
	Preview     PreviewConfig               `yaml:"preview"`
	Hooks       HooksConfig                 `yaml:"hooks"`
}

// SiteConfig carries site-wide metadata.
type SiteConfig struct {
	Title    string `yaml:"title"`
	URL      string `yaml:"url,omitempty"`
	Timezone string `yaml:"timezone,omitempty"`

	// Time is the site time: the fallback timestamp assigned to documents
	// that carry no date of their own. Set once at load, never mutated
	// during a build (concurrent readers rely on that).
	Time time.Time `yaml:"-"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// CollectionConfig configures one named document collection.
type CollectionConfig struct {
	Output    bool   `yaml:"output"`
	Permalink string `yaml:"permalink,omitempty"` // template or built-in style name
	SortBy    string `yaml:"sort_by,omitempty"`   // "date" (default) or "path"
}

// DefaultsRule supplies default front matter values for documents whose
// relative path and collection type match the scope.
type DefaultsRule struct {
	Scope  DefaultsScope  `yaml:"scope"`
	Values map[string]any `yaml:"values"`
}

// DefaultsScope narrows a defaults rule. An empty Path matches every
// document; Path may contain glob characters. An empty Type matches
// every collection.
type DefaultsScope struct {
	Path string `yaml:"path,omitempty"`
	Type string `yaml:"type,omitempty"`
}

// BuildConfig controls the build phase.
type BuildConfig struct {
	StrictFrontMatter bool   `yaml:"strict_front_matter"`
	ExcerptSeparator  string `yaml:"excerpt_separator,omitempty"`
	Drafts            bool   `yaml:"drafts"`
	Future            bool   `yaml:"future"`
	Workers           int    `yaml:"workers,omitempty"`
	StateFile         string `yaml:"state_file,omitempty"` // sqlite build state, default <output>/.sitegen-state.db
	GitMetadata       bool   `yaml:"git_metadata"`         // populate lastmod from git history when available
}

// LocaleConfig lists the locales a document may declare.
type LocaleConfig struct {
	Available []string `yaml:"available,omitempty"`
	Default   string   `yaml:"default,omitempty"`
}

// PreviewConfig configures the serve command.
type PreviewConfig struct {
	Port            int    `yaml:"port,omitempty"`
	RebuildInterval string `yaml:"rebuild_interval,omitempty"` // Go duration; empty disables periodic rebuild
}

// HooksConfig configures external hook delivery.
type HooksConfig struct {
	NATS NATSConfig `yaml:"nats"`
}

// NATSConfig configures the optional NATS JetStream event mirror.
type NATSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url,omitempty"`
	Subject string `yaml:"subject,omitempty"`
	Stream  string `yaml:"stream,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; absence is fine.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, sgerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Normalize(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// RebuildIntervalDuration parses Preview.RebuildInterval; zero when unset.
func (c *Config) RebuildIntervalDuration() (time.Duration, error) {
	if c.Preview.RebuildInterval == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Preview.RebuildInterval)
}
