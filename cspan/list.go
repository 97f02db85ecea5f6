package cspan

import (
	"fmt"
	"io"
)

// List is a discovery-ordered collection of text snippets. Its natural
// traversal order is most-recently-added first; [List.Dump] and
// [List.Newest] both honor that order. Callers that depend on it include
// the @retval and @todo emitters, so the reversal is observable behavior,
// not an implementation accident.
type List struct {
	items []string
}

// Add records a snippet. The string is retained as-is; callers copy out of
// shared buffers before adding.
func (l *List) Add(s string) {
	l.items = append(l.items, s)
}

// AddRange copies data[start:end] and records it.
func (l *List) AddRange(data []byte, start, end int) {
	if start > end {
		start = end
	}

	l.Add(string(data[start:end]))
}

// Len returns the number of recorded snippets.
func (l *List) Len() int {
	return len(l.items)
}

// Reset discards all snippets, retaining backing storage.
func (l *List) Reset() {
	l.items = l.items[:0]
}

// Newest returns the snippets in most-recently-added-first order.
func (l *List) Newest() []string {
	out := make([]string, 0, len(l.items))
	for i := len(l.items) - 1; i >= 0; i-- {
		out = append(out, l.items[i])
	}

	return out
}

// Dump writes each snippet on its own line, newest first, each preceded by
// a newline and the given prefix.
func (l *List) Dump(w io.Writer, prefix string) {
	for i := len(l.items) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "\n%s%s", prefix, l.items[i])
	}
}
