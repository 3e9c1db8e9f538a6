// Package diag holds the diagnostics list threaded through the type
// finder and every checker rule. Diagnostics are single-line,
// test-assertable strings with no severity field and no source position
// (spec.md §6.1, §6.2) — the core never sees source coordinates, so it
// cannot report them.
package diag

import "fmt"

// List is an ordered, append-only collection of diagnostic messages. The
// zero value is ready to use.
type List struct {
	messages []string
}

// New returns an empty diagnostics list.
func New() *List {
	return &List{}
}

// Add appends a literal message.
func (l *List) Add(message string) {
	l.messages = append(l.messages, message)
}

// Addf appends a formatted message.
func (l *List) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Strings returns the accumulated messages in emission order. The
// returned slice is owned by the caller.
func (l *List) Strings() []string {
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len reports the number of accumulated messages.
func (l *List) Len() int {
	return len(l.messages)
}
