package annotate

import (
	"fmt"

	"github.com/paul-chambers/insertdox/cspan"
)

// renderNewFileComment synthesizes a header block for a file that does not
// open with a comment of its own. It is written directly to the output,
// ahead of whatever the window has accumulated.
func (p *parser) renderNewFileComment() {
	name := p.filename
	if name == "" {
		name = "<unknown>"
	}

	fmt.Fprintf(p.out, "/**\n\t@file %s", name)
	p.out.WriteString("\n\n\tPut a description of the file here.\n")
	p.writeBoilerplate()
	p.out.WriteString("\n\t@todo Edit file comment (automatically generated by insertdox)")
	p.out.WriteString("\n*/\n/* $Header$ */\n\n")
}

// renderFileComment rewrites the file's existing leading comment: comment
// framing is stripped from both ends and the remainder is wrapped in a
// fresh doc-comment block with the boilerplate injected.
func (p *parser) renderFileComment() {
	data := p.win.data

	s := cspan.SkipComment(data, 0, len(data))
	e := cspan.TrimComment(data, len(data), s)

	p.out.WriteString("/**\n\t")
	p.out.Write(data[s:e])
	p.out.WriteString("\n")
	p.writeBoilerplate()
	p.out.WriteString("\n*/\n")
}

func (p *parser) writeBoilerplate() {
	if len(p.a.boilerplate) > 0 {
		p.out.Write(p.a.boilerplate)
	}
}

// renderFunction emits a window classified as a complete function: any
// bytes preceding the description, then the synthesized doc block built
// from the analyzed signature, the argument list and the mined body
// snippets, then the function text itself with its original comment
// replaced.
func (p *parser) renderFunction() {
	win := p.win
	data := win.data

	sig := analyzeDecl(data,
		cspan.Range{Start: win.function.start, End: win.function.end},
		true, typePhraseMax)

	p.out.Write(data[:win.description.start])

	internal := ""
	if sig.isStatic {
		internal = "\t@internal\n\n"
	}

	fmt.Fprintf(p.out, "\n/**\n%s\t", internal)

	p.renderDescription()
	p.renderArgList()

	if sig.phrase != "void" {
		fmt.Fprintf(p.out, "\n\t@return %s", sig.phrase)
		win.retvals.Dump(p.out, "\t@retval ")
		p.out.WriteString("\n")
	}

	win.todos.Dump(p.out, "\t@todo ")
	p.out.WriteString("\n\t@todo edit me (automatically generated by insertdox)\n*/")

	if p.a.onlyPrototypes {
		p.out.Write(data[win.description.end:win.arglist.end])
		p.out.WriteString(";\n\n")
	} else {
		p.out.Write(data[win.description.end:])
	}
}

// renderDescription emits the function's leading comment with its framing
// stripped, or a placeholder when the comment trims away to nothing.
func (p *parser) renderDescription() {
	win := p.win
	data := win.data
	count := win.description.count

	if count > 0 {
		s := cspan.SkipComment(data, win.description.start, win.description.end)
		e := cspan.TrimComment(data, win.description.end, s)

		if s == e {
			// Empty comment; change our mind and use the placeholder.
			count = 0
		} else {
			p.out.Write(data[s:e])
		}
	}

	if count == 0 {
		p.out.WriteString("Brief description needed.")
		p.out.WriteString("\n\n\tFollowed by a more complete description.")
	}

	p.out.WriteString("\n")
}

// renderArgList emits one @param tag per argument. A bare void parameter
// produces no tag at all.
func (p *parser) renderArgList() {
	win := p.win
	data := win.data

	s := win.arglist.start
	e := win.arglist.end

	for s < e && (cspan.IsSpace(data[s]) || data[s] == '(') {
		s++
	}

	said := false

	for i := s; i < e; i++ {
		switch data[i] {
		case ',', ')':
			arg := analyzeDecl(data, cspan.Range{Start: s, End: i},
				true, typePhraseMax)

			if string(data[arg.name.Start:arg.name.End]) != "void" {
				dir := "in"
				if !arg.inOnly {
					dir = "in,out"
				}

				fmt.Fprintf(p.out, "\n\t@param[%s] \t", dir)
				p.out.Write(data[arg.name.Start:arg.name.End])
				fmt.Fprintf(p.out, " \t%s", arg.phrase)

				said = true
			}

			s = i + 1
		}
	}

	if said {
		p.out.WriteString("\n")
	}
}
