// Package annotate rewrites C source text, inserting synthesized
// documentation-comment blocks ahead of function definitions and
// normalizing the file-header comment, without parsing a full C grammar.
//
// The core is a single-pass, character-level state machine with one
// character of lookahead. It classifies every input byte into a lexical
// region (code, block comment, line comment, preprocessor line, quoted
// literal), tracks brace and parenthesis nesting, and accumulates bytes
// into a window while delimiting four spans per function candidate: the
// leading description comment, the bare signature, the parenthesized
// argument list and the braced body. When a boundary closes the window,
// the spans are classified and rendered: a recognized function gains a doc
// block with @param, @return, @retval and @todo tags derived from the
// signature, the argument types and snippets mined from the body; a
// leading file comment is stripped of framing and rewrapped; everything
// else passes through byte for byte.
//
// The type descriptions and direction guesses are heuristics. Pointers or
// qualifiers hidden behind typedefs and macros fool them, nested brackets
// in parameter types are not understood, and no macro expansion or
// semantic checking happens. The annotator is a best-effort editing aid,
// not a compiler front end.
//
// # Usage
//
//	a, err := annotate.New(
//		annotate.WithBoilerplateFile("copyright.txt"),
//	)
//	if err != nil {
//		return err
//	}
//	err = a.Annotate(dst, src, "example.c")
//
// Mined @retval and @todo lines are emitted most-recently-discovered
// first. That ordering is observable output behavior and is kept stable
// deliberately.
package annotate
