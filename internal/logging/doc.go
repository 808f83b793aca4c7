// Package logging provides the leveled diagnostic logger used by verbose-log
// itself (configuration loading, CLI lifecycle, suppressed calls).
//
// It is deliberately separate from the environment-gated output produced by
// package verboselog: nothing written here is subject to staging/production
// gating.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the process
//
// The level is read once from the VERBOSELOG_LOG_LEVEL environment variable
// (DEBUG=1 forces debug) and can be changed at runtime with [SetLevel].
package logging
