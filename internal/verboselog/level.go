package verboselog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the known set.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is a message severity.
type Level string

const (
	LevelCritical Level = "critical"
	LevelError    Level = "error"
	LevelWarn     Level = "warn"
	LevelDebug    Level = "debug"
	LevelInfo     Level = "info"
)

// LevelConfig holds the presentation and gating attributes of a level.
type LevelConfig struct {
	// Emoji is the default glyph printed before the level tag.
	Emoji string
	// ShowInProd marks levels that VisibilityPolicy prints in production.
	ShowInProd bool
	// Rank orders levels for ThresholdPolicy; lower is more severe.
	Rank int
}

var levelTable = map[Level]LevelConfig{
	LevelCritical: {Emoji: "🔴", ShowInProd: true, Rank: 1},
	LevelError:    {Emoji: "🟠", ShowInProd: true, Rank: 2},
	LevelWarn:     {Emoji: "🟡", ShowInProd: false, Rank: 3},
	LevelDebug:    {Emoji: "🟢", ShowInProd: false, Rank: 4},
	LevelInfo:     {Emoji: "🔵", ShowInProd: false, Rank: 5},
}

// Levels returns the known levels from most to least severe.
func Levels() []Level {
	return []Level{LevelCritical, LevelError, LevelWarn, LevelDebug, LevelInfo}
}

// Config returns the attributes of l. The boolean is false for unknown levels.
func (l Level) Config() (LevelConfig, bool) {
	cfg, ok := levelTable[l]
	return cfg, ok
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	_, ok := levelTable[l]
	return ok
}

// Tag returns the upper-cased level name used in output lines.
func (l Level) Tag() string {
	return strings.ToUpper(string(l))
}

func (l Level) String() string {
	return string(l)
}

// ParseLevel converts user input to a Level. Matching ignores case and
// surrounding space; the empty string yields LevelInfo.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LevelInfo, nil
	}
	level := Level(name)
	if !level.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return level, nil
}
