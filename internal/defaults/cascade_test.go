package defaults

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
)

func rules() []config.DefaultsRule {
	return []config.DefaultsRule{
		{Scope: config.DefaultsScope{}, Values: map[string]any{"layout": "page", "author": "site"}},
		{Scope: config.DefaultsScope{Type: "posts"}, Values: map[string]any{"layout": "post"}},
		{Scope: config.DefaultsScope{Path: "posts/tech"}, Values: map[string]any{"layout": "tech", "category": "tech"}},
	}
}

func TestFind_EmptyScope_MatchesEverything(t *testing.T) {
	c := NewCascade(rules())

	v, ok := c.Find("pages/about.md", "pages", "author")
	require.True(t, ok)
	require.Equal(t, "site", v)
}

func TestFind_TypeScope_OnlyMatchesCollection(t *testing.T) {
	c := NewCascade(rules())

	v, ok := c.Find("posts/a.md", "posts", "layout")
	require.True(t, ok)
	require.Equal(t, "post", v)

	v, ok = c.Find("pages/a.md", "pages", "layout")
	require.True(t, ok)
	require.Equal(t, "page", v)
}

func TestFind_LongerPathScope_WinsOverShorter(t *testing.T) {
	c := NewCascade(rules())

	v, ok := c.Find("posts/tech/a.md", "posts", "layout")
	require.True(t, ok)
	require.Equal(t, "tech", v)
}

func TestFind_EqualSpecificity_LaterRuleWins(t *testing.T) {
	c := NewCascade([]config.DefaultsRule{
		{Scope: config.DefaultsScope{}, Values: map[string]any{"layout": "first"}},
		{Scope: config.DefaultsScope{}, Values: map[string]any{"layout": "second"}},
	})

	v, ok := c.Find("posts/a.md", "posts", "layout")
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestFind_NoMatch_ReportsAbsent(t *testing.T) {
	c := NewCascade(rules())

	_, ok := c.Find("pages/about.md", "pages", "missing")
	require.False(t, ok)
}

func TestAll_StacksLeastSpecificFirst(t *testing.T) {
	c := NewCascade(rules())

	out := c.All("posts/tech/a.md", "posts")
	require.Equal(t, "tech", out["layout"])
	require.Equal(t, "site", out["author"])
	require.Equal(t, "tech", out["category"])
}

func TestAll_NoMatches_EmptyMap(t *testing.T) {
	c := NewCascade([]config.DefaultsRule{
		{Scope: config.DefaultsScope{Type: "posts"}, Values: map[string]any{"layout": "post"}},
	})

	out := c.All("pages/about.md", "pages")
	require.Empty(t, out)
}

func TestScopeMatches_GlobPath(t *testing.T) {
	c := NewCascade([]config.DefaultsRule{
		{Scope: config.DefaultsScope{Path: "posts/*/drafts"}, Values: map[string]any{"draft": true}},
	})

	v, ok := c.Find("posts/tech/drafts/a.md", "posts", "draft")
	require.True(t, ok)
	require.Equal(t, true, v)

	_, ok = c.Find("posts/tech/a.md", "posts", "draft")
	require.False(t, ok)
}
