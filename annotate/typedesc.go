package annotate

import "github.com/paul-chambers/insertdox/cspan"

// typePhraseMax caps the length of a generated type phrase. Longer phrases
// are truncated silently.
const typePhraseMax = 200

// decl is the result of analyzing one raw declaration: the bare identifier
// range, an English phrase describing the type, whether it is declared
// static, and a guess at whether the declared thing is input-only to the
// function (const-qualified, or passed by value).
type decl struct {
	name     cspan.Range
	phrase   string
	isStatic bool
	inOnly   bool
}

// analyzeDecl inspects the declaration covered by r: either one parameter
// or the function's own name-bearing signature fragment. The identifier is
// always isolated; the phrase, static flag and direction guess are only
// computed when wantPhrase is set.
//
// The heuristic has no bracket-nesting awareness and is fooled by pointers
// or qualifiers hidden behind macros and typedefs. That is a documented
// limitation, not a defect.
func analyzeDecl(data []byte, r cspan.Range, wantPhrase bool, maxPhrase int) decl {
	var d decl

	s := cspan.SkipSpace(data, r.Start, r.End)
	e := cspan.TrimSpace(data, r.End, r.Start)

	// An [...] suffix marks an array; exclude it, first '[' found wins.
	isArray := false

	e--
	if e >= 0 && data[e] == ']' {
		isArray = true

		for {
			e--
			if e < s || data[e] == '[' {
				break
			}
		}

		if e > s {
			e--
		}
	}

	// Scan backward over identifier characters to isolate the bare name.
	p := e
	e++

	for p >= s && p >= 0 && cspan.IsIdent(data[p]) {
		p--
	}

	p++

	d.name = cspan.Range{Start: p, End: e}

	if !wantPhrase || maxPhrase <= 0 {
		return d
	}

	// Strip leading storage/qualifier keywords off the type prefix.
	isConst := false

strip:
	for {
		switch {
		case keywordAt(data, s, e, "static"):
			d.isStatic = true
			s = cspan.SkipSpace(data, s+6, e)
		case keywordAt(data, s, e, "const"):
			isConst = true
			s = cspan.SkipSpace(data, s+5, e)
		default:
			break strip
		}
	}

	// Count trailing '*' on the type prefix, skipping interleaved space.
	ptrCount := 0

	e = cspan.TrimSpace(data, p, s)
	e--

	for e > s && data[e] == '*' {
		ptrCount++
		e--

		for e > s && cspan.IsSpace(data[e]) {
			e--
		}
	}

	e++

	// Input-only when const, or pass-by-value (no pointer, no array).
	// Easily fooled by typedefs and #defines.
	d.inOnly = isConst || (ptrCount == 0 && !isArray)

	pb := phraseBuf{max: maxPhrase}

	for range ptrCount {
		pb.add("a pointer to ")
	}

	if isArray {
		pb.add("an array of ")
	}

	if isConst {
		pb.add("const ")
	}

	pb.add(string(data[s:e]))

	d.phrase = pb.String()

	return d
}

// keywordAt reports whether kw occupies data[s:] within [s, e) and is
// followed by whitespace or the end of the range.
func keywordAt(data []byte, s, e int, kw string) bool {
	n := len(kw)
	if s+n > e || string(data[s:s+n]) != kw {
		return false
	}

	return s+n == e || cspan.IsSpace(data[s+n])
}

// phraseBuf builds a type phrase with a hard length cap. Writes past the
// cap truncate silently; there is no error to surface.
type phraseBuf struct {
	b   []byte
	max int
}

func (p *phraseBuf) add(s string) {
	room := p.max - len(p.b)
	if room <= 0 {
		return
	}

	if len(s) > room {
		s = s[:room]
	}

	p.b = append(p.b, s...)
}

func (p *phraseBuf) String() string {
	return string(p.b)
}
