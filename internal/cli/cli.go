package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"verbose-log/internal/console"
	"verbose-log/internal/logging"
	"verbose-log/internal/metrics"
	"verbose-log/internal/startup"
	"verbose-log/internal/verboselog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath     string
	url            string
	stagingDomains []string
	disabled       bool
	color          bool
	metrics        bool
}

type callOptions struct {
	level string
	emoji string
}

// NewRootCommand builds the command tree writing gated output to stdout and
// diagnostics and metrics to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "verboselog",
		Short:         "Environment-gated console logging",
		Long:          "Write log lines that are shown on staging locations and filtered by severity on production locations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if !opts.metrics {
				return nil
			}
			return metrics.WriteText(stderr, prometheus.DefaultGatherer)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file (default: $VERBOSELOG_CONFIG)")
	flags.StringVar(&opts.url, "url", "", "Page location to classify (default: $VERBOSELOG_PAGE_URL)")
	flags.StringSliceVar(&opts.stagingDomains, "staging-domain", nil, "Additional staging domain substring (repeatable)")
	flags.BoolVar(&opts.disabled, "disabled", false, "Turn all gated output off")
	flags.BoolVar(&opts.color, "color", false, "Colour the level tag, even when output is not a terminal")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print Prometheus metrics to stderr on exit")

	root.AddCommand(
		newLogCommand(opts),
		newTableCommand(opts),
		newClassifyCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
	metrics.InitializeMetrics()

	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		logging.Error("%v", err)
		return 1
	}
	return 0
}

func newLogCommand(root *rootOptions) *cobra.Command {
	call := &callOptions{}
	cmd := &cobra.Command{
		Use:   "log [message...]",
		Short: "Write a message through the gate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := verboselog.ParseLevel(call.level)
			if err != nil {
				return err
			}
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			logger.Log(strings.Join(args, " "), level, call.emoji)
			return nil
		},
	}
	call.register(cmd)
	return cmd
}

func newTableCommand(root *rootOptions) *cobra.Command {
	call := &callOptions{}
	cmd := &cobra.Command{
		Use:   "table [json|-]",
		Short: "Write JSON data as a table through the gate",
		Long:  "Write JSON data as a table through the gate. The data is read from the argument, or from stdin when the argument is '-' or missing.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := verboselog.ParseLevel(call.level)
			if err != nil {
				return err
			}

			var src io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				src = strings.NewReader(args[0])
			}
			data, err := decodeJSON(src)
			if err != nil {
				return err
			}

			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			logger.Table(data, level, call.emoji)
			return nil
		},
	}
	call.register(cmd)
	return cmd
}

func newClassifyCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Print whether the page location is staging or production",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), logger.Environment())
			return err
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := startup.GetBuildInfo()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "verbose-log %s (commit %s, built %s, %s %s/%s)\n",
				info.Version, info.Commit, info.BuildTime, info.GoVersion, info.OS, info.Arch)
			return err
		},
	}
}

func (c *callOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.level, "level", "l", string(verboselog.LevelInfo), "Severity: critical, error, warn, debug or info")
	cmd.Flags().StringVarP(&c.emoji, "emoji", "e", "", "Custom emoji replacing the level glyph")
}

// logger loads configuration and applies flag overrides.
func (o *rootOptions) logger(cmd *cobra.Command) (*verboselog.Logger, error) {
	cfg, err := startup.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.PageURL = o.url
	}
	if flags.Changed("staging-domain") {
		cfg.StagingDomains = append(cfg.StagingDomains, o.stagingDomains...)
	}
	if o.disabled {
		cfg.Enabled = false
	}
	out := cmd.OutOrStdout()
	switch {
	case flags.Changed("color"):
		cfg.Color = o.color
	case cfg.Color && !console.IsTerminal(out):
		logging.Debug("Output is not a terminal, colour disabled")
		cfg.Color = false
	}

	return cfg.NewLogger(
		verboselog.WithConsole(console.NewWriterConsole(out)),
		verboselog.WithObserver(metrics.NewLogObserver()),
	)
}

func decodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode table data: %w", err)
	}
	return data, nil
}
