package annotate

import "github.com/paul-chambers/insertdox/cspan"

// mineComment inspects a comment that closed inside a function body (brace
// depth > 0). Comments starting with todo, fixme or fix-me feed the todos
// collection; note or nb feed the notes collection. Anything else is
// ignored. The window's commentStart marker is consumed either way.
func (w *window) mineComment() {
	if w.commentStart < 0 {
		return
	}

	end := len(w.data)
	p := cspan.SkipPunct(w.data, w.commentStart, end)

	var list *cspan.List

	switch {
	case matchFold(w.data, p, "todo"):
		p += 4
		list = &w.todos
	case matchFold(w.data, p, "fixme"):
		p += 5
		list = &w.todos
	case matchFold(w.data, p, "fix-me"):
		p += 6
		list = &w.todos
	case matchFold(w.data, p, "note"):
		p += 4
		list = &w.notes
	case matchFold(w.data, p, "nb"):
		p += 2
		list = &w.notes
	}

	if list != nil {
		list.AddRange(w.data,
			cspan.SkipPunct(w.data, p, end),
			cspan.TrimComment(w.data, end, p))
	}

	w.commentStart = -1
}

// mineStatement inspects a statement that ended inside a function body.
// Return statements have their expression extracted into the retvals
// collection. An expression wrapped in a single outer parenthesis pair is
// unwrapped, but only when it contains exactly one '(' in total: (a)+(b)
// stays intact, and so does (a(b)) even though its outer pair matches.
// The conservative count is deliberate behavior.
func (w *window) mineStatement() {
	s := w.statementStart
	if s < 0 {
		return
	}

	end := len(w.data)

	if s+6 <= end && string(w.data[s:s+6]) == "return" {
		s = cspan.SkipSpace(w.data, s+6, end)
		e := cspan.TrimSpace(w.data, end, s)

		if s < e && w.data[s] == '(' {
			count := 0

			for i := s; i < e; i++ {
				if w.data[i] == '(' {
					count++
				}
			}

			if count == 1 && w.data[e-1] == ')' {
				s = cspan.SkipSpace(w.data, s+1, e)
				e = cspan.TrimSpace(w.data, e-1, s)
			}
		}

		w.retvals.AddRange(w.data, s, e)
	}

	w.statementStart = -1
}

// matchFold reports whether kw appears at data[i:], compared
// case-insensitively over ASCII.
func matchFold(data []byte, i int, kw string) bool {
	if i+len(kw) > len(data) {
		return false
	}

	for j := range len(kw) {
		c := data[i+j]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}

		if c != kw[j] {
			return false
		}
	}

	return true
}
