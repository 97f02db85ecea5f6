package annotate

import "github.com/paul-chambers/insertdox/cspan"

// span is a half-open offset range [start, end) into the current window's
// accumulated run, plus an occurrence counter. A count of 0 means the span
// was never delimited; 1 means delimited exactly once. Counts above 1 are
// not produced by well-formed input and signal a detection anomaly.
type span struct {
	start int
	end   int
	count int
}

// window owns the raw byte run accumulated since the last flush, the four
// syntactic spans delimited inside it, the transient markers used while
// scanning a function body, and the snippet collections mined from that
// body. Exactly one window is live per processing pass; it is reset in
// full after every flush, retaining its backing storage.
type window struct {
	data  []byte
	limit int

	description span
	function    span
	arglist     span
	body        span

	// Single-position markers, valid only while inside a body.
	// -1 means unset.
	commentStart   int
	statementStart int

	fileComment bool

	todos   cspan.List
	notes   cspan.List
	retvals cspan.List
}

func newWindow(limit int) *window {
	return &window{
		limit:          limit,
		commentStart:   -1,
		statementStart: -1,
	}
}

// append adds one byte to the run. It reports false once the run has
// reached the window limit, which forces a flush upstream; the byte itself
// is never dropped.
func (w *window) append(c byte) bool {
	w.data = append(w.data, c)

	return len(w.data) < w.limit
}

// reset clears the run, all spans, the body markers, the fileComment flag
// and the three snippet collections. Backing storage is retained.
func (w *window) reset() {
	w.data = w.data[:0]
	w.description = span{}
	w.function = span{}
	w.arglist = span{}
	w.body = span{}
	w.commentStart = -1
	w.statementStart = -1
	w.fileComment = false
	w.todos.Reset()
	w.notes.Reset()
	w.retvals.Reset()
}
