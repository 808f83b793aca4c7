package verboselog

import "strings"

// Environment is the classification of a page location.
type Environment string

const (
	EnvironmentStaging    Environment = "staging"
	EnvironmentProduction Environment = "production"
	// EnvironmentUnknown is reported for calls that stopped before the
	// location was classified.
	EnvironmentUnknown Environment = "unknown"
)

const defaultStagingDomain = "webflow.io"

// DefaultStagingDomains returns the domains that are always treated as
// staging, in addition to any configured ones.
func DefaultStagingDomains() []string {
	return []string{defaultStagingDomain}
}

// Classify returns EnvironmentStaging if href contains any default or given
// staging domain, and EnvironmentProduction otherwise. Empty domains never
// match.
func Classify(href string, stagingDomains []string) Environment {
	if strings.Contains(href, defaultStagingDomain) {
		return EnvironmentStaging
	}
	for _, domain := range stagingDomains {
		if domain != "" && strings.Contains(href, domain) {
			return EnvironmentStaging
		}
	}
	return EnvironmentProduction
}
