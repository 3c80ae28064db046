package collection

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/document"
)

func testRecord(t *testing.T, root, rel string, date time.Time) *document.Record {
	t.Helper()
	ctx := &document.Context{
		SourceDir:  root,
		Collection: document.CollectionInfo{Name: "posts", Output: true, Permalink: "pretty"},
		SiteTime:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Resolver:   document.NewFilenameResolver(time.UTC),
	}
	r := document.New(ctx, filepath.Join(root, filepath.FromSlash(rel)))
	if !date.IsZero() {
		r.Data.Set("date", date)
	}
	return r
}

func TestSort_ByDate_OldestFirst(t *testing.T) {
	root := t.TempDir()
	newer := testRecord(t, root, "posts/a-newer.md", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	older := testRecord(t, root, "posts/z-older.md", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	c := &Collection{Name: "posts", Config: config.CollectionConfig{SortBy: "date"}, Docs: []*document.Record{newer, older}}
	c.Sort()

	require.Equal(t, older, c.Docs[0])
	require.Equal(t, newer, c.Docs[1])
}

func TestSort_ByPath_LexicalOrder(t *testing.T) {
	root := t.TempDir()
	b := testRecord(t, root, "posts/b.md", time.Time{})
	a := testRecord(t, root, "posts/a.md", time.Time{})

	c := &Collection{Name: "posts", Config: config.CollectionConfig{SortBy: "path"}, Docs: []*document.Record{b, a}}
	c.Sort()

	require.Equal(t, a, c.Docs[0])
	require.Equal(t, b, c.Docs[1])
}

func TestNextPrevious_WalkSortedSequence(t *testing.T) {
	root := t.TempDir()
	first := testRecord(t, root, "posts/a.md", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	second := testRecord(t, root, "posts/b.md", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC))
	third := testRecord(t, root, "posts/c.md", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC))

	c := &Collection{Name: "posts", Config: config.CollectionConfig{SortBy: "date"}, Docs: []*document.Record{second, third, first}}
	c.Sort()

	require.Equal(t, second, c.Next(first))
	require.Equal(t, third, c.Next(second))
	require.Nil(t, c.Next(third))

	require.Nil(t, c.Previous(first))
	require.Equal(t, first, c.Previous(second))
	require.Equal(t, second, c.Previous(third))
}

func TestNextPrevious_UnknownRecord_Nil(t *testing.T) {
	root := t.TempDir()
	known := testRecord(t, root, "posts/a.md", time.Time{})
	stranger := testRecord(t, root, "posts/x.md", time.Time{})

	c := &Collection{Name: "posts", Docs: []*document.Record{known}}
	require.Nil(t, c.Next(stranger))
	require.Nil(t, c.Previous(stranger))
}

func discoverConfig(root string) *config.Config {
	return &config.Config{
		Source: root,
		Collections: map[string]config.CollectionConfig{
			"posts": {Output: true, Permalink: "pretty", SortBy: "date"},
			"pages": {Output: true, Permalink: "pretty", SortBy: "date"},
		},
	}
}

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte("content\n"), 0o644))
}

func namedFactory(records *map[string][]string) RecordFactory {
	return func(name, absPath string) *document.Record {
		(*records)[name] = append((*records)[name], filepath.Base(absPath))
		ctx := &document.Context{
			Collection: document.CollectionInfo{Name: name},
			Resolver:   document.NewFilenameResolver(time.UTC),
		}
		return document.New(ctx, absPath)
	}
}

func TestDiscover_ConfiguredDirectory_OwnCollection(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "posts/2023-05-01-hello.md")
	writeFile(t, root, "about.md")

	seen := map[string][]string{}
	cols, err := Discover(discoverConfig(root), namedFactory(&seen))
	require.NoError(t, err)

	require.Len(t, cols, 2)
	require.Equal(t, "pages", cols[0].Name)
	require.Equal(t, "posts", cols[1].Name)
	require.Equal(t, []string{"about.md"}, seen["pages"])
	require.Equal(t, []string{"2023-05-01-hello.md"}, seen["posts"])
}

func TestDiscover_UnconfiguredDirectory_FallsToPages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "misc/notes.md")

	seen := map[string][]string{}
	cols, err := Discover(discoverConfig(root), namedFactory(&seen))
	require.NoError(t, err)

	require.Len(t, cols, 1)
	require.Equal(t, "pages", cols[0].Name)
	require.Equal(t, []string{"notes.md"}, seen["pages"])
}

func TestDiscover_UnderscoreAndDotEntries_Skipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "_drafts/wip.md")
	writeFile(t, root, ".hidden/secret.md")
	writeFile(t, root, "posts/.draft.md")
	writeFile(t, root, "posts/2023-05-01-ok.md")

	seen := map[string][]string{}
	_, err := Discover(discoverConfig(root), namedFactory(&seen))
	require.NoError(t, err)

	require.Empty(t, seen["pages"])
	require.Equal(t, []string{"2023-05-01-ok.md"}, seen["posts"])
}

func TestDiscover_EmptyTree_NoCollections(t *testing.T) {
	root := t.TempDir()

	cols, err := Discover(discoverConfig(root), namedFactory(&map[string][]string{}))
	require.NoError(t, err)
	require.Empty(t, cols)
}
