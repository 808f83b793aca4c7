package metrics

import "verbose-log/internal/verboselog"

// logObserver implements verboselog.Observer using the Prometheus counters
// declared in metrics.go.
type logObserver struct{}

// NewLogObserver creates an observer that records logger calls into the
// Prometheus counters declared in metrics.go.
func NewLogObserver() verboselog.Observer {
	return &logObserver{}
}

func (o *logObserver) ObserveClassification(env verboselog.Environment) {
	ClassificationsTotal.WithLabelValues(string(env)).Inc()
}

func (o *logObserver) ObserveCall(kind verboselog.CallKind, level verboselog.Level, env verboselog.Environment, outcome verboselog.Outcome) {
	// Unknown levels are caller input; collapse them so label cardinality
	// stays bounded.
	if !level.Valid() {
		level = "unknown"
	}
	MessagesTotal.WithLabelValues(string(kind), string(level), string(env), string(outcome)).Inc()
}
