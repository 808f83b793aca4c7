package verboselog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by PolicyByName for unrecognised names.
var ErrUnknownPolicy = errors.New("unknown gating policy")

// Policy decides whether a message at a known level may be printed in env.
type Policy interface {
	Allow(env Environment, level Level, cfg LevelConfig) bool
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(env Environment, level Level, cfg LevelConfig) bool

// Allow calls f.
func (f PolicyFunc) Allow(env Environment, level Level, cfg LevelConfig) bool {
	return f(env, level, cfg)
}

// VisibilityPolicy prints everything in staging and, in production, only
// levels whose ShowInProd flag is set.
type VisibilityPolicy struct{}

// Allow implements Policy.
func (VisibilityPolicy) Allow(env Environment, _ Level, cfg LevelConfig) bool {
	return env == EnvironmentStaging || cfg.ShowInProd
}

// ThresholdPolicy prints a level when its rank is at or below the active
// threshold: debug in staging, critical in production. Info ranks below
// debug and is therefore never printed.
type ThresholdPolicy struct{}

// Allow implements Policy.
func (ThresholdPolicy) Allow(env Environment, _ Level, cfg LevelConfig) bool {
	threshold := levelTable[LevelCritical].Rank
	if env == EnvironmentStaging {
		threshold = levelTable[LevelDebug].Rank
	}
	return cfg.Rank <= threshold
}

// PolicyByName returns the policy registered under name. The empty name
// selects VisibilityPolicy.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "visibility":
		return VisibilityPolicy{}, nil
	case "threshold":
		return ThresholdPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
