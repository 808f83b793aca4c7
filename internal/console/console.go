package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Console is the sink the gated logger writes to.
type Console interface {
	// Log writes its operands as one line.
	Log(args ...any)
	// Table writes data in tabular form.
	Table(data any)
}

// WriterConsole writes console output to an io.Writer.
// Safe for concurrent use by multiple goroutines.
type WriterConsole struct {
	mu    sync.Mutex
	out   io.Writer
	width int
}

// Option configures a WriterConsole
type Option func(*WriterConsole)

// WithWidth caps rendered tables at n columns. Zero disables the cap.
func WithWidth(n int) Option {
	return func(c *WriterConsole) {
		if n > 0 {
			c.width = n
		}
	}
}

// NewWriterConsole creates a console writing to w. If w is a terminal the
// table width defaults to the terminal width.
func NewWriterConsole(w io.Writer, opts ...Option) *WriterConsole {
	if w == nil {
		w = os.Stdout
	}
	c := &WriterConsole{
		out:   w,
		width: TerminalWidth(w),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stdout returns a console writing to standard output.
func Stdout() *WriterConsole {
	return NewWriterConsole(os.Stdout)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of the terminal behind w, or 0 if w is not
// a terminal or the size cannot be determined.
func TerminalWidth(w io.Writer) int {
	if !IsTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil {
		return 0
	}
	return width
}

// Log writes args separated by spaces and terminated by a newline.
func (c *WriterConsole) Log(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.out, args...)
}

// Table renders data as a grid. Data without a tabular form is written as a
// plain line.
func (c *WriterConsole) Table(data any) {
	t, ok := buildTable(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !ok {
		_, _ = fmt.Fprintln(c.out, data)
		return
	}
	var b strings.Builder
	t.render(&b, c.width)
	_, _ = io.WriteString(c.out, b.String())
}
