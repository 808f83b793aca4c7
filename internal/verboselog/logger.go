package verboselog

import (
	"slices"
	"sync"

	"verbose-log/internal/console"
	"verbose-log/internal/logging"
)

// Logger is an environment-gated console logger. The zero value is not
// usable; create one with New.
//
// Enabled state and staging domains may be changed at any time from any
// goroutine; each call works on a consistent snapshot of both.
type Logger struct {
	mu             sync.RWMutex
	enabled        bool
	stagingDomains []string

	location Location
	console  console.Console
	policy   Policy
	observer Observer
	color    bool
}

// Option configures a Logger
type Option func(*Logger)

// WithLocation sets the source of the page URL.
func WithLocation(loc Location) Option {
	return func(l *Logger) {
		if loc != nil {
			l.location = loc
		}
	}
}

// WithConsole sets the output sink.
func WithConsole(c console.Console) Option {
	return func(l *Logger) {
		if c != nil {
			l.console = c
		}
	}
}

// WithPolicy sets the gating policy.
func WithPolicy(p Policy) Option {
	return func(l *Logger) {
		if p != nil {
			l.policy = p
		}
	}
}

// WithObserver sets the observer notified of every call.
func WithObserver(o Observer) Option {
	return func(l *Logger) {
		if o != nil {
			l.observer = o
		}
	}
}

// WithStagingDomains sets the initial staging domains.
func WithStagingDomains(domains ...string) Option {
	return func(l *Logger) {
		l.stagingDomains = slices.Clone(domains)
	}
}

// WithEnabled sets the initial enabled state.
func WithEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.enabled = enabled
	}
}

// WithColor colours the level tag with ANSI escapes.
func WithColor(enabled bool) Option {
	return func(l *Logger) {
		l.color = enabled
	}
}

// New creates an enabled logger with no extra staging domains, writing to
// standard output and reading an empty (production) location unless options
// say otherwise.
func New(opts ...Option) *Logger {
	l := &Logger{
		enabled:  true,
		location: StaticLocation(""),
		policy:   VisibilityPolicy{},
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.console == nil {
		l.console = console.Stdout()
	}
	return l
}

// Configure replaces the staging domains and the enabled state.
func (l *Logger) Configure(stagingDomains []string, enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stagingDomains = slices.Clone(stagingDomains)
	l.enabled = enabled
}

// SetEnabled turns all output on or off.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

// Enabled reports whether output is turned on.
func (l *Logger) Enabled() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enabled
}

// SetStagingDomains replaces the configured staging domains.
func (l *Logger) SetStagingDomains(domains []string) {
	l.mu.Lock()
	l.stagingDomains = slices.Clone(domains)
	l.mu.Unlock()
}

// AddStagingDomains appends to the configured staging domains.
func (l *Logger) AddStagingDomains(domains ...string) {
	l.mu.Lock()
	l.stagingDomains = append(l.stagingDomains, domains...)
	l.mu.Unlock()
}

// StagingDomains returns a copy of the configured staging domains, without
// the defaults.
func (l *Logger) StagingDomains() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.stagingDomains)
}

// Environment classifies the current location.
func (l *Logger) Environment() Environment {
	return l.classify(l.StagingDomains())
}

// IsStaging reports whether the current location is a staging location.
func (l *Logger) IsStaging() bool {
	return l.Environment() == EnvironmentStaging
}

// Log writes message as one line when gating allows. An empty level means
// info; an empty customEmoji selects the level's glyph.
func (l *Logger) Log(message any, level Level, customEmoji string) {
	l.output(KindLine, message, level, customEmoji)
}

// Table writes a placeholder line followed by a table rendering of data,
// under the same gating as Log.
func (l *Logger) Table(data any, level Level, customEmoji string) {
	l.output(KindTable, data, level, customEmoji)
}

func (l *Logger) classify(domains []string) Environment {
	env := Classify(l.location.Href(), domains)
	l.observer.ObserveClassification(env)
	return env
}

func (l *Logger) output(kind CallKind, data any, level Level, customEmoji string) {
	if level == "" {
		level = LevelInfo
	}

	l.mu.RLock()
	enabled := l.enabled
	domains := slices.Clone(l.stagingDomains)
	l.mu.RUnlock()

	if !enabled {
		l.observer.ObserveCall(kind, level, EnvironmentUnknown, OutcomeSuppressedDisable)
		return
	}

	env := l.classify(domains)

	cfg, ok := level.Config()
	if !ok {
		logging.Debug("verboselog: dropping %s call with unknown level %q", kind, level)
		l.observer.ObserveCall(kind, level, env, OutcomeUnknownLevel)
		return
	}

	if !l.policy.Allow(env, level, cfg) {
		l.observer.ObserveCall(kind, level, env, OutcomeSuppressedPolicy)
		return
	}

	emoji := customEmoji
	if emoji == "" {
		emoji = cfg.Emoji
	}

	if kind == KindTable {
		l.console.Log(formatLine(emoji, level, TablePlaceholder, l.color))
		l.console.Table(data)
	} else {
		l.console.Log(formatLine(emoji, level, data, l.color))
	}
	l.observer.ObserveCall(kind, level, env, OutcomeEmitted)
}
