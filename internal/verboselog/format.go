package verboselog

import (
	"fmt"

	"github.com/fatih/color"
)

// TablePlaceholder replaces the message in the line preceding a table.
const TablePlaceholder = "Table data logged below:"

var levelColors = map[Level][]color.Attribute{
	LevelCritical: {color.FgHiRed, color.Bold},
	LevelError:    {color.FgRed},
	LevelWarn:     {color.FgYellow},
	LevelDebug:    {color.FgGreen},
	LevelInfo:     {color.FgBlue},
}

// FormatLine builds "{emoji} [{LEVEL}]: {message}".
func FormatLine(emoji string, level Level, message any) string {
	return formatLine(emoji, level, message, false)
}

func formatLine(emoji string, level Level, message any, colored bool) string {
	tag := "[" + level.Tag() + "]"
	if colored {
		c := color.New(levelColors[level]...)
		c.EnableColor()
		tag = c.Sprint(tag)
	}
	return fmt.Sprintf("%s %s: %v", emoji, tag, message)
}
