package frontmatterops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTitleize_DashedSlug_CapitalizesWords(t *testing.T) {
	require.Equal(t, "Hello World", Titleize("hello-world"))
}

func TestTitleize_UnderscoresTreatedAsDashes(t *testing.T) {
	require.Equal(t, "Getting Started Guide", Titleize("getting_started-guide"))
}

func TestTitleize_CollapsesEmptySegments(t *testing.T) {
	require.Equal(t, "A B", Titleize("a--b"))
}

func TestEnsureTitle_MissingTitle_SetsFallback(t *testing.T) {
	fields := map[string]any{}

	require.True(t, EnsureTitle(fields, "Fallback"))
	require.Equal(t, "Fallback", fields["title"])
}

func TestEnsureTitle_BlankTitle_SetsFallback(t *testing.T) {
	fields := map[string]any{"title": "   "}

	require.True(t, EnsureTitle(fields, "Fallback"))
	require.Equal(t, "Fallback", fields["title"])
}

func TestEnsureTitle_ExistingTitle_Preserved(t *testing.T) {
	fields := map[string]any{"title": "Keep Me"}

	require.False(t, EnsureTitle(fields, "Fallback"))
	require.Equal(t, "Keep Me", fields["title"])
}

func TestEnsureTitle_NonStringTitle_LeftAlone(t *testing.T) {
	fields := map[string]any{"title": 42}

	require.False(t, EnsureTitle(fields, "Fallback"))
	require.Equal(t, 42, fields["title"])
}
