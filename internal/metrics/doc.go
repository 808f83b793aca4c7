// Package metrics provides Prometheus instrumentation for verbose-log.
//
// All metrics are prefixed with "verbose_log_" and registered with the
// default registry through promauto.
//
// # Metrics
//
//   - MessagesTotal: Counter of logger calls by kind (line/table), level,
//     environment and outcome (emitted, suppressed_disabled,
//     suppressed_policy, unknown_level)
//   - ClassificationsTotal: Counter of location classifications by environment
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Recording Metrics
//
// The logger does not import this package. Connect the two with the
// observer:
//
//	logger := verboselog.New(verboselog.WithObserver(metrics.NewLogObserver()))
//
// # Exporting
//
// There is no HTTP endpoint. [WriteText] encodes the gathered families in
// the Prometheus text format, which the CLI prints on exit when --metrics
// is set:
//
//	metrics.WriteText(os.Stderr, prometheus.DefaultGatherer)
//
// # Prometheus Queries
//
// Share of production calls that were suppressed:
//
//	sum(verbose_log_messages_total{environment="production",outcome="suppressed_policy"}) /
//	sum(verbose_log_messages_total{environment="production"})
package metrics
