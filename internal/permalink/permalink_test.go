package permalink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func postPlaceholders() Placeholders {
	return Placeholders{
		"year":       "2023",
		"month":      "05",
		"day":        "01",
		"title":      "hello-world",
		"output_ext": ".html",
	}
}

func TestExpand_BuiltinStyles_ResolveToTemplates(t *testing.T) {
	require.Equal(t, "/:categories/:year/:month/:day/:title/", Expand("pretty"))
	require.Equal(t, "/:categories/:year/:month/:day/:title:output_ext", Expand("date"))
	require.Equal(t, "/:categories/:year/:y_day/:title:output_ext", Expand("ordinal"))
	require.Equal(t, "/:categories/:title:output_ext", Expand("none"))
}

func TestExpand_UnknownName_TreatedAsLiteralTemplate(t *testing.T) {
	require.Equal(t, "/docs/:title/", Expand("/docs/:title/"))
}

func TestCompose_PrettyStyle_TrailingSlashPreserved(t *testing.T) {
	got := Compose(Expand("pretty"), postPlaceholders())
	require.Equal(t, "/2023/05/01/hello-world/", got)
}

func TestCompose_DateStyle_AppendsOutputExt(t *testing.T) {
	got := Compose(Expand("date"), postPlaceholders())
	require.Equal(t, "/2023/05/01/hello-world.html", got)
}

func TestCompose_MissingTokens_CollapseWithoutDoubleSlashes(t *testing.T) {
	got := Compose("/:categories/:year/:title/", Placeholders{"year": "2023", "title": "x"})
	require.Equal(t, "/2023/x/", got)
	require.NotContains(t, got, "//")
}

func TestCompose_WithCategories_SegmentsIncluded(t *testing.T) {
	p := postPlaceholders()
	p["categories"] = "tech/go"

	got := Compose(Expand("pretty"), p)
	require.Equal(t, "/tech/go/2023/05/01/hello-world/", got)
}

func TestCompose_ResultAlwaysRooted(t *testing.T) {
	got := Compose(":year/:title", Placeholders{"year": "2023", "title": "x"})
	require.Equal(t, "/2023/x", got)
}

func TestDestination_DirectoryURL_MapsToIndexHTML(t *testing.T) {
	dest, err := Destination("/out", "/2023/05/01/hello/", ".html")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/out", "2023", "05", "01", "hello", "index.html"), dest)
}

func TestDestination_FileURLWithoutExt_AppendsOutputExt(t *testing.T) {
	dest, err := Destination("/out", "/about", ".html")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/out", "about.html"), dest)
}

func TestDestination_FileURLWithExt_NotDoubled(t *testing.T) {
	dest, err := Destination("/out", "/feed.xml", ".xml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/out", "feed.xml"), dest)
}

func TestDestination_EscapedSegments_DecodedForFilesystem(t *testing.T) {
	dest, err := Destination("/out", "/go%20lang/hello/", ".html")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/out", "go lang", "hello", "index.html"), dest)
}

func TestDestination_InvalidEscape_Errors(t *testing.T) {
	_, err := Destination("/out", "/bad%zz/", ".html")
	require.Error(t, err)
}
