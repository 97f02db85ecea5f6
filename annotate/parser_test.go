package annotate_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paul-chambers/insertdox/annotate"
)

// synthHeader is the header block synthesized for input that does not open
// with a comment, when no filename is known and no boilerplate is set.
const synthHeader = "/**\n" +
	"\t@file <unknown>\n" +
	"\n" +
	"\tPut a description of the file here.\n" +
	"\n" +
	"\t@todo Edit file comment (automatically generated by insertdox)\n" +
	"*/\n" +
	"/* $Header$ */\n" +
	"\n"

// editMe is the reminder appended to every synthesized function comment.
const editMe = "\t@todo edit me (automatically generated by insertdox)\n*/"

func annotateString(t *testing.T, input string, opts ...annotate.Option) string {
	t.Helper()

	base := []annotate.Option{
		annotate.WithLogger(slog.New(slog.DiscardHandler)),
	}

	a, err := annotate.New(append(base, opts...)...)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, a.Annotate(&buf, strings.NewReader(input), ""))

	return buf.String()
}

func TestAnnotateVoidFunction(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** frees x */\n" +
		"void release(void)\n" +
		"{\n" +
		"\tx = 0;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"\n/**\n\tfrees x\n\n" +
		editMe +
		"\nvoid release(void)\n{\n\tx = 0;\n}\n"

	got := annotateString(t, input)

	assert.Equal(t, want, got)
	assert.NotContains(t, got, "@param")
	assert.NotContains(t, got, "@return")
}

func TestAnnotateConstCharPointer(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** prints s */\n" +
		"int show(const char *s)\n" +
		"{\n" +
		"\treturn 0;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"\n/**\n\tprints s\n" +
		"\n\t@param[in] \ts \ta pointer to const char\n" +
		"\n\t@return int\n\t@retval 0\n\n" +
		editMe +
		"\nint show(const char *s)\n{\n\treturn 0;\n}\n"

	assert.Equal(t, want, annotateString(t, input))
}

func TestAnnotateArrayParam(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** runs */\n" +
		"int run(int argc, int argv[])\n" +
		"{\n" +
		"\treturn argc;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"\n/**\n\truns\n" +
		"\n\t@param[in] \targc \tint" +
		"\n\t@param[in,out] \targv \tan array of int\n" +
		"\n\t@return int\n\t@retval argc\n\n" +
		editMe +
		"\nint run(int argc, int argv[])\n{\n\treturn argc;\n}\n"

	assert.Equal(t, want, annotateString(t, input))
}

func TestAnnotateSynthesizedHeader(t *testing.T) {
	t.Parallel()

	input := "int x;\n"

	got := annotateString(t, input)
	assert.Equal(t, synthHeader+input, got)

	// Running the tool over its own output must not duplicate the
	// header: the synthesized comment is recognized as the file header
	// and rewritten, not doubled.
	again := annotateString(t, got)
	assert.Equal(t, 1, strings.Count(again, "@file"))
	assert.Equal(t, 1, strings.Count(again, "Put a description of the file here."))
}

func TestAnnotateFilenameInHeader(t *testing.T) {
	t.Parallel()

	a, err := annotate.New(annotate.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, a.Annotate(&buf, strings.NewReader("int x;\n"), "widget.c"))
	assert.Contains(t, buf.String(), "@file widget.c\n")
}

func TestAnnotateRetvalOrder(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** picks */\n" +
		"int pick(int a, int b, int c)\n" +
		"{\n" +
		"\tif (a) {\n" +
		"\t\treturn (a);\n" +
		"\t}\n" +
		"\treturn b+c;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"\n/**\n\tpicks\n" +
		"\n\t@param[in] \ta \tint" +
		"\n\t@param[in] \tb \tint" +
		"\n\t@param[in] \tc \tint\n" +
		"\n\t@return int" +
		"\n\t@retval b+c" +
		"\n\t@retval a\n\n" +
		editMe +
		"\nint pick(int a, int b, int c)\n" +
		"{\n\tif (a) {\n\t\treturn (a);\n\t}\n\treturn b+c;\n}\n"

	got := annotateString(t, input)

	assert.Equal(t, want, got)

	// Most recently discovered first, and (a) unwraps to a.
	assert.Less(t,
		strings.Index(got, "@retval b+c"),
		strings.Index(got, "@retval a"))
}

func TestAnnotateBodyTodoComment(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** does */\n" +
		"void work(int n)\n" +
		"{\n" +
		"\t/* TODO: fix this */\n" +
		"\tn = n;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"\n/**\n\tdoes\n" +
		"\n\t@param[in] \tn \tint\n" +
		"\n\t@todo fix this\n" +
		editMe +
		"\nvoid work(int n)\n{\n\t/* TODO: fix this */\n\tn = n;\n}\n"

	assert.Equal(t, want, annotateString(t, input))
}

func TestAnnotatePassthrough(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
	}{
		"prototype and struct": {
			input: "int f(void);\n\nstruct s { int a; };\n",
		},
		"braces inside literals": {
			input: "char *s = \"};{\";\nint c = '}';\n",
		},
		"escaped quote": {
			input: "int q = '\\'';\nint r = 0;\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Nothing here classifies as a function, so everything
			// outside the synthesized header passes through
			// byte for byte.
			assert.Equal(t, synthHeader+tc.input, annotateString(t, tc.input))
		})
	}
}

func TestAnnotateLineCommentHeader(t *testing.T) {
	t.Parallel()

	input := "// hello\n// more\nint x;\n"

	// Only the first line-comment line becomes the header; the second
	// is ordinary passthrough.
	want := "/**\n\thello\n\n*/\n" +
		"\n" +
		"// more\nint x;" +
		"\n"

	assert.Equal(t, want, annotateString(t, input))
}

func TestAnnotatePreprocessorInvalidatesDescription(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** nope */\n" +
		"#define X 1\n" +
		"int f(int x)\n" +
		"{\n" +
		"\treturn x;\n" +
		"}\n"

	// The directive right after the comment means the comment was not a
	// description, so the function lacks one and passes through.
	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"/** nope */\n#define X 1\n" +
		"int f(int x)\n{\n\treturn x;\n}" +
		"\n"

	got := annotateString(t, input)

	assert.Equal(t, want, got)
	assert.NotContains(t, got, "@param")
}

func TestAnnotateEmptyCommentPlaceholder(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/**/\n" +
		"int f(int x)\n" +
		"{\n" +
		"\treturn x;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n" +
		"\n/**\n\tBrief description needed.\n" +
		"\n\tFollowed by a more complete description.\n" +
		"\n\t@param[in] \tx \tint\n" +
		"\n\t@return int\n\t@retval x\n\n" +
		editMe +
		"\nint f(int x)\n{\n\treturn x;\n}\n"

	assert.Equal(t, want, annotateString(t, input))
}

func TestAnnotatePrototypesOnly(t *testing.T) {
	t.Parallel()

	input := "/* hdr */\n" +
		"/** prints s */\n" +
		"int show(const char *s)\n" +
		"{\n" +
		"\treturn 0;\n" +
		"}\n"

	want := "/**\n\thdr\n\n*/\n" +
		"\n/**\n\tprints s\n" +
		"\n\t@param[in] \ts \ta pointer to const char\n" +
		"\n\t@return int\n\t@retval 0\n\n" +
		editMe +
		"\nint show(const char *s)" +
		";\n\n"

	got := annotateString(t, input, annotate.WithPrototypesOnly(true))

	assert.Equal(t, want, got)
	assert.NotContains(t, got, "return 0")
}

func TestAnnotateWindowLimitForcedFlush(t *testing.T) {
	t.Parallel()

	input := "abcdefgh\n"

	// Forced flushes split the windows but never reorder or drop bytes.
	got := annotateString(t, input, annotate.WithWindowLimit(4))
	assert.Equal(t, synthHeader+input, got)
}

func TestAnnotateBoilerplate(t *testing.T) {
	t.Parallel()

	bp := []byte("\tCopyright 2026.\n")

	t.Run("synthesized header", func(t *testing.T) {
		t.Parallel()

		want := "/**\n\t@file <unknown>\n\n\tPut a description of the file here.\n" +
			"\tCopyright 2026.\n" +
			"\n\t@todo Edit file comment (automatically generated by insertdox)\n" +
			"*/\n/* $Header$ */\n\n" +
			"int x;\n"

		assert.Equal(t, want,
			annotateString(t, "int x;\n", annotate.WithBoilerplate(bp)))
	})

	t.Run("rewritten header", func(t *testing.T) {
		t.Parallel()

		want := "/**\n\thdr\n\tCopyright 2026.\n\n*/\n" +
			"\nint x;" +
			"\n"

		assert.Equal(t, want,
			annotateString(t, "/* hdr */\nint x;\n", annotate.WithBoilerplate(bp)))
	})
}

func TestAnnotateBoilerplateFileMissing(t *testing.T) {
	t.Parallel()

	_, err := annotate.New(
		annotate.WithBoilerplateFile("testdata/no-such-boilerplate.txt"))
	require.ErrorIs(t, err, annotate.ErrBoilerplate)
}

func TestAnnotateDegenerateInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty": {
			input: "",
			want:  "",
		},
		// No non-whitespace byte ever arrives, so no header is
		// synthesized.
		"whitespace only": {
			input: "  \n\t\n",
			want:  "  \n\t\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, annotateString(t, tc.input))
		})
	}
}
