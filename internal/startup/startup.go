package startup

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"verbose-log/internal/logging"
	"verbose-log/internal/verboselog"

	"gopkg.in/yaml.v3"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all logger configuration
type Config struct {
	Enabled        bool
	StagingDomains []string
	PageURL        string
	Policy         string
	Color          bool

	// ConfigFile is the YAML file that was read, if any.
	ConfigFile string
}

// fileConfig mirrors the YAML file. Pointers distinguish "absent" from the
// zero value so a file can turn a default off.
type fileConfig struct {
	Enabled        *bool    `yaml:"enabled"`
	StagingDomains []string `yaml:"staging_domains"`
	PageURL        string   `yaml:"page_url"`
	Policy         string   `yaml:"policy"`
	Color          *bool    `yaml:"color"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Enabled: true,
		Policy:  "visibility",
	}
}

// LoadConfig builds the configuration from defaults, the YAML file at path
// (or VERBOSELOG_CONFIG when path is empty), and environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("VERBOSELOG_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logging.Debug("------------------------------------------------------------")
	logging.Debug("CONFIGURATION")
	logging.Debug("------------------------------------------------------------")
	logging.Debug("  VERBOSELOG_CONFIG:          %s", valueOrDash(cfg.ConfigFile))
	logging.Debug("  VERBOSELOG_ENABLED:         %v", cfg.Enabled)
	logging.Debug("  VERBOSELOG_STAGING_DOMAINS: %s", valueOrDash(strings.Join(cfg.StagingDomains, ",")))
	logging.Debug("  VERBOSELOG_PAGE_URL:        %s", valueOrDash(cfg.PageURL))
	logging.Debug("  VERBOSELOG_POLICY:          %s", cfg.Policy)
	logging.Debug("  VERBOSELOG_COLOR:           %v", cfg.Color)
	logging.Debug("  VERBOSELOG_LOG_LEVEL:       %s", logging.GetLevel())

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Enabled != nil {
		c.Enabled = *fc.Enabled
	}
	if fc.StagingDomains != nil {
		c.StagingDomains = cleanDomains(fc.StagingDomains)
	}
	if fc.PageURL != "" {
		c.PageURL = fc.PageURL
	}
	if fc.Policy != "" {
		c.Policy = fc.Policy
	}
	if fc.Color != nil {
		c.Color = *fc.Color
	}
	c.ConfigFile = path
	return nil
}

func (c *Config) applyEnv() {
	c.Enabled = getEnvBool("VERBOSELOG_ENABLED", c.Enabled)
	if domains := getEnvList("VERBOSELOG_STAGING_DOMAINS"); domains != nil {
		c.StagingDomains = domains
	}
	c.PageURL = getEnv("VERBOSELOG_PAGE_URL", c.PageURL)
	c.Policy = getEnv("VERBOSELOG_POLICY", c.Policy)
	c.Color = getEnvBool("VERBOSELOG_COLOR", c.Color)
}

func (c *Config) validate() error {
	if _, err := verboselog.PolicyByName(c.Policy); err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}
	return nil
}

// ErrNoConfig is returned by NewLogger on a nil configuration.
var ErrNoConfig = errors.New("no configuration")

// NewLogger constructs a logger from the configuration. Extra options are
// applied after the configured ones.
func (c *Config) NewLogger(extra ...verboselog.Option) (*verboselog.Logger, error) {
	if c == nil {
		return nil, ErrNoConfig
	}
	policy, err := verboselog.PolicyByName(c.Policy)
	if err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	opts := []verboselog.Option{
		verboselog.WithEnabled(c.Enabled),
		verboselog.WithStagingDomains(c.StagingDomains...),
		verboselog.WithLocation(verboselog.StaticLocation(c.PageURL)),
		verboselog.WithPolicy(policy),
		verboselog.WithColor(c.Color),
	}
	return verboselog.New(append(opts, extra...)...), nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func cleanDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// getEnvList splits a comma-separated variable. It returns nil when the
// variable is unset or empty.
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return cleanDomains(strings.Split(value, ","))
}
