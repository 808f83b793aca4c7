// Package cli implements the verboselog command line.
//
// The command builds a single gated logger from configuration (see package
// startup), applies flag overrides, and runs one subcommand:
//
//	verboselog log [message...]   write a message through the gate
//	verboselog table [json|-]     write JSON data as a table through the gate
//	verboselog classify           print staging or production for --url
//	verboselog version            print build information
//
// Global flags:
//
//	--config path          YAML configuration file
//	--url url              page location to classify
//	--staging-domain d     extra staging domain (repeatable)
//	--disabled             turn gated output off
//	--color                colour the level tag
//	--metrics              print Prometheus metrics to stderr on exit
package cli
