package frontmatter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontMatter_ReturnsWholeInputAsBody(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, style := Split(input)
	require.False(t, had)
	require.Nil(t, fm)
	require.Equal(t, input, body)
	require.Equal(t, "\n", style.Newline)
}

func TestSplit_ValidBlock_ReturnsFrontMatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---\nBody text\n")

	fm, body, had, _ := Split(input)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Equal(t, []byte("Body text\n"), body)
}

func TestSplit_DotDotDotCloser_EndsBlock(t *testing.T) {
	input := []byte("---\ntitle: Hello\n...\nBody text\n")

	fm, body, had, _ := Split(input)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Equal(t, []byte("Body text\n"), body)
}

func TestSplit_EmptyBlock_HadTrueWithEmptyFrontMatter(t *testing.T) {
	input := []byte("---\n---\nBody\n")

	fm, body, had, _ := Split(input)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("Body\n"), body)
}

func TestSplit_CloserOnLastLineWithoutNewline_EndsBlock(t *testing.T) {
	fm, body, had, _ := Split([]byte("---\ntitle: x\n---"))
	require.True(t, had)
	require.Equal(t, []byte("title: x\n"), fm)
	require.Empty(t, body)

	fm, body, had, _ = Split([]byte("---\ntitle: x\n..."))
	require.True(t, had)
	require.Equal(t, []byte("title: x\n"), fm)
	require.Empty(t, body)
}

func TestSplit_EmptyBlockCloserAtEOF_HadTrue(t *testing.T) {
	fm, body, had, _ := Split([]byte("---\n---"))
	require.True(t, had)
	require.Empty(t, fm)
	require.Empty(t, body)
}

func TestSplit_UnterminatedBlock_WholeFileIsBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\nBody without closer\n")

	fm, body, had, _ := Split(input)
	require.False(t, had)
	require.Nil(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_DelimiterNotAtStart_NoFrontMatter(t *testing.T) {
	input := []byte("intro\n---\ntitle: Hello\n---\n")

	_, body, had, _ := Split(input)
	require.False(t, had)
	require.Equal(t, input, body)
}

func TestSplit_CRLFInput_DetectsStyleAndSplits(t *testing.T) {
	input := []byte("---\r\ntitle: Hello\r\n---\r\nBody\r\n")

	fm, body, had, style := Split(input)
	require.True(t, had)
	require.Equal(t, "\r\n", style.Newline)
	require.Equal(t, []byte("title: Hello\r\n"), fm)
	require.Equal(t, []byte("Body\r\n"), body)
}

func TestParse_ValidYAML_ReturnsMap(t *testing.T) {
	fields, err := Parse([]byte("title: Hello\ntags:\n  - a\n  - b\n"))
	require.NoError(t, err)
	require.Equal(t, "Hello", fields["title"])
	require.Equal(t, []any{"a", "b"}, fields["tags"])
}

func TestParse_Empty_ReturnsEmptyMap(t *testing.T) {
	fields, err := Parse(nil)
	require.NoError(t, err)
	require.NotNil(t, fields)
	require.Empty(t, fields)
}

func TestParse_InvalidYAML_ReturnsError(t *testing.T) {
	_, err := Parse([]byte(": not yaml"))
	require.Error(t, err)
}

func TestParseFile_WholeFileIsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Navigation\nweight: 3\n"), 0o644))

	fields, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "Navigation", fields["title"])
	require.Equal(t, 3, fields["weight"])
}

func TestSerialize_SortsKeysAndUsesStyleNewline(t *testing.T) {
	out, err := Serialize(map[string]any{"b": "two", "a": "one"}, Style{Newline: "\r\n"})
	require.NoError(t, err)
	require.Equal(t, []byte("a: one\r\nb: two\r\n"), out)
}

func TestSerialize_NestedMaps_KeysSortedRecursively(t *testing.T) {
	out, err := Serialize(map[string]any{
		"outer": map[string]any{"b": 2, "a": 1},
	}, Style{})
	require.NoError(t, err)
	require.Equal(t, []byte("outer:\n  a: 1\n  b: 2\n"), out)
}

func TestSerialize_EmptyFields_ReturnsEmpty(t *testing.T) {
	out, err := Serialize(map[string]any{}, Style{Newline: "\n"})
	require.NoError(t, err)
	require.Empty(t, out)
}
