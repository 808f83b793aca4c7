// Package verboselog implements an environment-gated console logger.
//
// Every call decides on its own whether a message reaches the console. The
// decision depends on three inputs:
//   - whether the logger is enabled
//   - whether the current page location is a staging or a production location
//   - the severity level of the message
//
// # Environments
//
// A location is classified as staging when its URL contains, as a substring,
// any entry of [DefaultStagingDomains] or of the logger's configured staging
// domains. Everything else is production. Classification is recomputed on
// every call, so a [NavigableLocation] that moves between hosts is reflected
// immediately.
//
// # Levels
//
// Five levels are known, from most to least severe:
//
//	critical  🔴  shown in production
//	error     🟠  shown in production
//	warn      🟡
//	debug     🟢
//	info      🔵
//
// An empty level means info. A level outside this set is never printed.
//
// # Policies
//
// [VisibilityPolicy] is the default: staging prints every level, production
// prints only levels marked as shown in production. [ThresholdPolicy] is the
// older rank comparison (threshold debug in staging, critical in production);
// it drops info even in staging and is kept only for callers that depend on
// that behaviour.
//
// # Output
//
// An emitted message is one line:
//
//	{emoji} [{LEVEL}]: {message}
//
// where emoji is the caller's custom emoji or the level's default glyph.
// [Logger.Table] writes the same line with a fixed placeholder in place of the
// message, followed by a table rendering of the data.
//
// # Usage
//
//	logger := verboselog.New(
//	    verboselog.WithLocation(verboselog.StaticLocation("https://shop.webflow.io/cart")),
//	    verboselog.WithStagingDomains("preview.example.com"),
//	)
//	logger.Log("cart loaded", verboselog.LevelDebug, "")
//	logger.Table(items, verboselog.LevelInfo, "🛒")
//
// Code that wants one process-wide logger can use [Install] and [Default];
// installation happens once and later calls return the existing logger
// without touching its configuration.
package verboselog
