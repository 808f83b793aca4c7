// Package startup handles configuration loading and build information for
// verbose-log.
//
// # Configuration
//
// Configuration is assembled by [LoadConfig] in three layers, later layers
// overriding earlier ones:
//
//  1. Defaults: logging enabled, no extra staging domains, visibility policy
//  2. YAML file named by the path argument or VERBOSELOG_CONFIG
//  3. Environment variables
//
// The following environment variables are supported:
//
//   - VERBOSELOG_CONFIG: Path to a YAML configuration file
//   - VERBOSELOG_ENABLED: Master switch for gated output (default: true)
//   - VERBOSELOG_STAGING_DOMAINS: Comma-separated staging domain substrings
//   - VERBOSELOG_PAGE_URL: Page location used when none is given explicitly
//   - VERBOSELOG_POLICY: Gating policy - visibility or threshold (default: visibility)
//   - VERBOSELOG_COLOR: Colour the level tag (default: false)
//   - VERBOSELOG_LOG_LEVEL: Diagnostic log level, read by package logging
//
// The YAML file uses the same settings:
//
//	enabled: true
//	staging_domains:
//	  - preview.example.com
//	  - localhost
//	page_url: https://preview.example.com/
//	policy: visibility
//	color: false
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// # Example Usage
//
//	cfg, err := startup.LoadConfig("")
//	if err != nil {
//	    logging.Fatal("Configuration error: %v", err)
//	}
//	logger, err := cfg.NewLogger(verboselog.WithObserver(metrics.NewLogObserver()))
package startup
