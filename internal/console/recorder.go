package console

import (
	"fmt"
	"strings"
	"sync"
)

// CallKind distinguishes line and table calls.
type CallKind int

const (
	// CallLog is a Log call
	CallLog CallKind = iota
	// CallTable is a Table call
	CallTable
)

// Call is one recorded console call.
type Call struct {
	Kind CallKind
	Args []any
	Data any
}

// Text returns the line a WriterConsole would print for a Log call.
func (c Call) Text() string {
	return strings.TrimSuffix(fmt.Sprintln(c.Args...), "\n")
}

// Recorder is a Console that keeps every call in memory.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Log records a line call.
func (r *Recorder) Log(args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Kind: CallLog, Args: args})
}

// Table records a table call.
func (r *Recorder) Table(data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Kind: CallTable, Data: data})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Lines returns the text of every Log call.
func (r *Recorder) Lines() []string {
	var lines []string
	for _, c := range r.Calls() {
		if c.Kind == CallLog {
			lines = append(lines, c.Text())
		}
	}
	return lines
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
