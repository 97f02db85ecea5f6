package annotate

import (
	"bufio"
	"log/slog"

	"github.com/paul-chambers/insertdox/cspan"
)

// parser holds the per-file state of the streaming pass: the lexical mode,
// the two nesting depth counters, the line-position flags and the live
// window. It is created by [Annotator.Annotate] and discarded at end of
// file; nothing survives between files.
type parser struct {
	a        *Annotator
	out      *bufio.Writer
	win      *window
	filename string

	depthCurly int
	depthRound int

	// Lexical modes. At most one of inComment, inPreprocessor,
	// inSingleQuote and inDoubleQuote drives a given step; inCppComment
	// qualifies inComment, and the literal-escape flag wins over all of
	// them.
	inComment      bool
	inCppComment   bool
	inPreprocessor bool
	inSingleQuote  bool
	inDoubleQuote  bool
	isLiteral      bool

	// inBetween is set after a statement boundary; the next
	// non-whitespace character opens a function or statement span.
	inBetween bool
	// isChar1 marks the first non-whitespace position on a line.
	isChar1 bool
	// atStart is true until the first non-whitespace byte of the file.
	atStart bool

	doFlush bool
}

func newParser(a *Annotator, out *bufio.Writer, filename string) *parser {
	return &parser{
		a:         a,
		out:       out,
		win:       newWindow(a.windowLimit),
		filename:  filename,
		inBetween: true,
		isChar1:   true,
		atStart:   true,
	}
}

// step consumes one character with one character of lookahead. next is -1
// at end of stream. The modes form a strict priority chain; a character is
// classified by exactly one branch, then appended to the window.
func (p *parser) step(prev, c byte, next int) {
	win := p.win
	pos := len(win.data)

	switch {
	case p.isLiteral:
		// The escaped character is consumed here, except that a CRLF or
		// LFCR pair counts as one logical escaped character, modeling
		// line continuation across DOS line endings.
		if (c != '\r' || next != '\n') && (c != '\n' || next != '\r') {
			p.isLiteral = false
		}

	case p.inComment:
		if p.inCppComment {
			if c == '\n' || c == '\r' {
				p.inCppComment = false
				p.inComment = false
				p.inPreprocessor = false
				p.isChar1 = true

				if p.depthCurly == 0 {
					win.description.end = pos
					win.description.count++

					if win.fileComment {
						// Line-comment headers flush before the
						// terminator is appended; the newline starts
						// the next window.
						p.flush()
					}
				} else {
					win.mineComment()
				}
			}
		} else if prev == '*' && c == '/' {
			p.inComment = false

			if p.depthCurly == 0 {
				win.description.end = pos + 1
				win.description.count++

				if win.fileComment {
					// Block-comment headers flush with the closing
					// '/' included.
					p.doFlush = true
				}
			} else {
				win.mineComment()
			}
		}

	case p.inPreprocessor:
		switch c {
		case '\n', '\r':
			if p.depthCurly == 0 {
				p.doFlush = true
			}

			p.inPreprocessor = false
			p.isChar1 = true

		case '/':
			switch next {
			case '/':
				p.inCppComment = true
				p.inComment = true
			case '*':
				p.inComment = true
			}

			if p.inComment {
				if p.depthCurly == 0 {
					p.flush()
					win.description.start = len(win.data)
				} else {
					win.commentStart = pos
				}
			}
		}

	case p.inSingleQuote:
		switch c {
		case '\'':
			p.inSingleQuote = false
		case '\\':
			p.isLiteral = true
		}

	case p.inDoubleQuote:
		switch c {
		case '"':
			p.inDoubleQuote = false
		case '\\':
			p.isLiteral = true
		}

	default:
		switch c {
		case '\\':
			p.isLiteral = true

		case '/':
			switch next {
			case '*':
				p.inComment = true
			case '/':
				p.inCppComment = true
				p.inComment = true
			}

			if p.inComment {
				if p.depthCurly == 0 {
					p.flush()
					win.description.start = len(win.data)
				} else {
					win.commentStart = pos
				}
			}

		case '#':
			if p.isChar1 {
				if p.depthCurly == 0 {
					// A directive right after a comment means the
					// comment was not a description.
					win.description = span{}
				}

				p.inPreprocessor = true
			}

		case '\'':
			p.inSingleQuote = true

		case '"':
			p.inDoubleQuote = true

		case '(':
			if p.depthCurly == 0 && p.depthRound == 0 {
				win.function.end = pos
				win.function.count++
				win.arglist.start = pos
			}

			p.depthRound++

		case ')':
			p.depthRound--

			if p.depthCurly == 0 && p.depthRound == 0 {
				win.arglist.end = pos + 1
				win.arglist.count++
			}

		case '{':
			if p.depthCurly == 0 {
				win.body.start = pos
			} else {
				win.mineStatement()
			}

			p.depthCurly++
			p.inBetween = true

		case '}':
			p.depthCurly--

			if p.depthCurly == 0 {
				win.body.end = pos + 1
				win.body.count++
				p.doFlush = true
			} else {
				win.mineStatement()
			}

			p.inBetween = true

		case ';':
			if p.depthCurly == 0 {
				// A statement ending at depth 0 is a prototype or
				// global declaration, not a function.
				p.doFlush = true
			} else {
				win.mineStatement()
			}

			p.inBetween = true

		case '\n', '\r':
			p.isChar1 = true

		default:
			if p.inBetween && !cspan.IsSpace(c) {
				if p.depthCurly == 0 {
					win.function.start = pos
				} else {
					win.statementStart = pos
				}

				p.inBetween = false
			}
		}
	}

	// The first non-whitespace byte of the file decides whether the file
	// opens with its own header comment or needs a synthesized one.
	if p.atStart && !cspan.IsSpace(c) {
		p.atStart = false

		if p.inComment {
			win.fileComment = true
		} else {
			p.renderNewFileComment()
		}
	}

	if !win.append(c) {
		// Window can no longer grow; flush early rather than lose data.
		p.doFlush = true
	}

	if p.doFlush {
		p.doFlush = false
		p.flush()
	}

	if p.isChar1 && !cspan.IsSpace(c) {
		p.isChar1 = false
	}
}

// flush classifies the current window and renders it: a file header, a
// complete function, or raw passthrough, in that priority. The window is
// reset afterwards whatever happened.
func (p *parser) flush() {
	win := p.win

	if len(win.data) > 0 {
		if win.description.count > 1 || win.function.count > 1 ||
			win.arglist.count > 1 || win.body.count > 1 {
			p.a.logger.Warn("span delimited more than once",
				slog.Int("description", win.description.count),
				slog.Int("function", win.function.count),
				slog.Int("arglist", win.arglist.count),
				slog.Int("body", win.body.count),
			)
		}

		switch {
		case win.fileComment:
			p.renderFileComment()
		case win.description.count == 1 && win.function.count == 1 &&
			win.arglist.count == 1 && win.body.count == 1:
			p.renderFunction()
		default:
			if !p.a.onlyPrototypes {
				p.out.Write(win.data)
			}
		}

		p.a.logger.Debug("flush",
			slog.Int("bytes", len(win.data)),
			slog.Bool("file_comment", win.fileComment),
		)
	}

	win.reset()
}
