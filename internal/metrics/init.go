package metrics

import "verbose-log/internal/verboselog"

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first gather.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	envs := []verboselog.Environment{verboselog.EnvironmentStaging, verboselog.EnvironmentProduction}
	kinds := []verboselog.CallKind{verboselog.KindLine, verboselog.KindTable}

	for _, env := range envs {
		ClassificationsTotal.WithLabelValues(string(env))
	}

	for _, kind := range kinds {
		for _, level := range verboselog.Levels() {
			MessagesTotal.WithLabelValues(string(kind), string(level), string(verboselog.EnvironmentUnknown), string(verboselog.OutcomeSuppressedDisable))
			for _, env := range envs {
				MessagesTotal.WithLabelValues(string(kind), string(level), string(env), string(verboselog.OutcomeEmitted))
				MessagesTotal.WithLabelValues(string(kind), string(level), string(env), string(verboselog.OutcomeSuppressedPolicy))
			}
		}
		for _, env := range envs {
			MessagesTotal.WithLabelValues(string(kind), "unknown", string(env), string(verboselog.OutcomeUnknownLevel))
		}
	}
}
