// Package main provides the entry point for the verboselog command.
//
// verboselog writes log lines through an environment-gated logger: on a
// staging page location every level is shown, on a production location only
// critical and error messages are shown.
//
// # Usage
//
//	verboselog --url https://shop.webflow.io/ log --level debug "cart loaded"
//	🟢 [DEBUG]: cart loaded
//
//	echo '[{"sku":"A1","qty":2}]' | verboselog --url https://shop.example.com/ table -l error -
//	🟠 [ERROR]: Table data logged below:
//	(index) | qty | sku
//	--------+-----+----
//	0       | 2   | A1
//
//	verboselog --staging-domain preview.example.com --url https://preview.example.com/ classify
//	staging
//
// # Configuration
//
// Settings come from a YAML file (--config or VERBOSELOG_CONFIG), then
// VERBOSELOG_* environment variables, then flags. See package startup for
// the full list.
//
// # Build Information
//
// Version details are injected at build time:
//
//	go build -ldflags "-X verbose-log/internal/startup.Version=1.0.0 -X verbose-log/internal/startup.Commit=$(git rev-parse --short HEAD)" ./cmd/verboselog
package main
