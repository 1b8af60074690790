package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Market      MarketConfig   `toml:"market"`
	Analysis    AnalysisConfig `toml:"analysis"`
	Session     SessionConfig  `toml:"session"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// MarketConfig contains the market-data provider settings.
type MarketConfig struct {
	BaseURL string `toml:"base_url"`
	Chain   string `toml:"chain"`
	Timeout string `toml:"timeout"` // empty = no timeout beyond the transport default
}

// GetTimeout returns the market request timeout, or zero when none is
// configured or the value does not parse.
func (c *MarketConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// AnalysisConfig contains the generative-analysis provider settings.
type AnalysisConfig struct {
	APIKey          string `toml:"api_key"`
	Model           string `toml:"model"`
	BaseURL         string `toml:"base_url"`
	ThinkingBudget  int    `toml:"thinking_budget"`
	SearchGrounding bool   `toml:"search_grounding"`
	Timeout         string `toml:"timeout"` // empty = no timeout beyond the transport default
}

// GetTimeout returns the analysis timeout, or zero when none is configured.
func (c *AnalysisConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// SessionConfig contains dashboard session settings.
type SessionConfig struct {
	TTL        string `toml:"ttl"`
	MaxEntries int    `toml:"max_entries"`
}

// GetTTL parses the idle session TTL, defaulting to 1h.
func (c *SessionConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// IsDevMode returns true when running in the dev environment.
func (c *Config) IsDevMode() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "dev"
}

// HasAnalysisKey reports whether an analysis-provider credential is configured.
func (c *Config) HasAnalysisKey() bool {
	return strings.TrimSpace(c.Analysis.APIKey) != ""
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// analysisKeyEnv lists the credential variables in priority order.
var analysisKeyEnv = []string{"SCANNER_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"}

// applyEnvOverrides applies SCANNER_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SCANNER_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("SCANNER_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("SCANNER_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if u := os.Getenv("SCANNER_MARKET_URL"); u != "" {
		config.Market.BaseURL = u
	}
	if chain := os.Getenv("SCANNER_CHAIN"); chain != "" {
		config.Market.Chain = chain
	}
	if model := os.Getenv("SCANNER_ANALYSIS_MODEL"); model != "" {
		config.Analysis.Model = model
	}
	for _, name := range analysisKeyEnv {
		if key := os.Getenv(name); key != "" {
			config.Analysis.APIKey = key
			break
		}
	}
	if level := os.Getenv("SCANNER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("SCANNER_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate returns a list of human-readable configuration issues.
// An empty list means the configuration is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port must be between 1 and 65535 (got %d)", c.Server.Port))
	}

	if c.Market.BaseURL == "" {
		issues = append(issues, "market.base_url is required")
	} else if u, err := url.Parse(c.Market.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, fmt.Sprintf("market.base_url is not an absolute URL: %q", c.Market.BaseURL))
	}
	if strings.TrimSpace(c.Market.Chain) == "" {
		issues = append(issues, "market.chain is required")
	}
	if c.Market.Timeout != "" {
		if _, err := time.ParseDuration(c.Market.Timeout); err != nil {
			issues = append(issues, fmt.Sprintf("market.timeout is not a duration: %q", c.Market.Timeout))
		}
	}

	if strings.TrimSpace(c.Analysis.Model) == "" {
		issues = append(issues, "analysis.model is required")
	}
	if c.Analysis.Timeout != "" {
		if _, err := time.ParseDuration(c.Analysis.Timeout); err != nil {
			issues = append(issues, fmt.Sprintf("analysis.timeout is not a duration: %q", c.Analysis.Timeout))
		}
	}
	if c.Analysis.ThinkingBudget < 0 {
		issues = append(issues, "analysis.thinking_budget must not be negative")
	}

	if c.Session.TTL != "" {
		if _, err := time.ParseDuration(c.Session.TTL); err != nil {
			issues = append(issues, fmt.Sprintf("session.ttl is not a duration: %q", c.Session.TTL))
		}
	}

	return issues
}
