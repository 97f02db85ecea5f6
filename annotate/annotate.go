package annotate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sentinel errors returned by the annotator.
var (
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
	ErrBoilerplate   = errors.New("read boilerplate")
	ErrInvalidOption = errors.New("invalid option")
)

// defaultWindowLimit bounds how much unflushed source one window may hold
// before a flush is forced.
const defaultWindowLimit = 1 << 20

// Annotator rewrites C source text, inserting documentation-comment blocks
// ahead of function definitions and normalizing the file header. One
// Annotator may process any number of files sequentially; all per-file
// state lives in the processing call.
type Annotator struct {
	onlyPrototypes bool
	boilerplate    []byte
	windowLimit    int
	logger         *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator) error

// New creates an Annotator with the given options.
func New(opts ...Option) (*Annotator, error) {
	a := &Annotator{
		windowLimit: defaultWindowLimit,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		err := opt(a)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

// WithPrototypesOnly suppresses function bodies and non-function
// passthrough text, emitting only headers, doc comments and prototypes.
func WithPrototypesOnly(v bool) Option {
	return func(a *Annotator) error {
		a.onlyPrototypes = v

		return nil
	}
}

// WithBoilerplateFile reads a text file to be injected verbatim into every
// synthesized or rewritten file-header comment. An unreadable file aborts
// construction; nothing else about the run is allowed to proceed without
// it.
func WithBoilerplateFile(path string) Option {
	return func(a *Annotator) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBoilerplate, err)
		}

		a.boilerplate = data

		return nil
	}
}

// WithBoilerplate injects the given text directly, bypassing the file
// read.
func WithBoilerplate(text []byte) Option {
	return func(a *Annotator) error {
		a.boilerplate = text

		return nil
	}
}

// WithLogger sets the logger used for flush diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}

		a.logger = logger

		return nil
	}
}

// WithWindowLimit overrides the forced-flush threshold. Mainly useful in
// tests exercising the early-flush path.
func WithWindowLimit(n int) Option {
	return func(a *Annotator) error {
		if n < 1 {
			return fmt.Errorf("%w: window limit must be positive", ErrInvalidOption)
		}

		a.windowLimit = n

		return nil
	}
}

// Annotate processes one file: r is consumed to the end and the annotated
// text is written to w. filename appears verbatim in a synthesized @file
// tag; pass an empty string when there is no meaningful name.
//
// The pass is strictly single threaded and runs to completion; output for
// each flush is fully written before the next window accumulates.
func (a *Annotator) Annotate(w io.Writer, r io.Reader, filename string) error {
	out := bufio.NewWriter(w)
	in := bufio.NewReader(r)
	p := newParser(a, out, filename)

	c, err := in.ReadByte()

	var prev byte

	for err == nil {
		next := -1

		nb, nerr := in.ReadByte()

		switch {
		case nerr == nil:
			next = int(nb)
		case !errors.Is(nerr, io.EOF):
			return fmt.Errorf("%w: %w", ErrReadInput, nerr)
		}

		p.step(prev, c, next)

		prev = c
		c = nb
		err = nerr
	}

	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	// End of stream: flush whatever remains, complete or not.
	p.flush()

	flushErr := out.Flush()
	if flushErr != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, flushErr)
	}

	return nil
}
