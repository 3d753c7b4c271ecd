package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EmptyText(t *testing.T) {
	got := Extract("", DefaultCatalog())
	assert.True(t, got.IsEmpty())
	assert.Empty(t, got.Names())

	got = Extract("   \n\t ", DefaultCatalog())
	assert.True(t, got.IsEmpty())
}

func TestExtract_EveryCatalogEntryAlone(t *testing.T) {
	c := DefaultCatalog()
	for _, name := range c.Names() {
		got := Extract(name, c)
		assert.Truef(t, got.Has(name), "expected %q to be extracted from itself", name)
	}
}

func TestExtract_BoundariesKeepJavaOutOfJavaScript(t *testing.T) {
	c := DefaultCatalog()

	got := Extract("Built dashboards in JavaScript and TypeScript.", c)
	assert.True(t, got.Has("JavaScript"))
	assert.False(t, got.Has("Java"))

	got = Extract("Java, JavaScript", c)
	assert.True(t, got.Has("Java"))
	assert.True(t, got.Has("JavaScript"))
}

func TestExtract_GitDoesNotMatchInsideGitHub(t *testing.T) {
	got := Extract("Portfolio hosted on GitHub", DefaultCatalog())
	assert.True(t, got.Has("GitHub"))
	assert.False(t, got.Has("Git"))
}

func TestExtract_SymbolSkills(t *testing.T) {
	got := Extract("Languages: C++, C# and node.js (backend).", DefaultCatalog())
	assert.True(t, got.Has("C++"))
	assert.True(t, got.Has("C#"))
	assert.True(t, got.Has("Node.js"))
}

func TestExtract_MultiWordPhrase(t *testing.T) {
	c := DefaultCatalog()

	got := Extract("Focused on machine   learning research", c)
	assert.True(t, got.Has("Machine Learning"))

	got = Extract("machine-learning and learning machines", c)
	assert.False(t, got.Has("Machine Learning"))

	got = Extract("Machine Learningx", c)
	assert.False(t, got.Has("Machine Learning"))
}

func TestExtract_CaseInsensitiveAndDeduplicated(t *testing.T) {
	got := Extract("python PYTHON Python pYtHoN", DefaultCatalog())
	assert.Equal(t, []string{"Python"}, got.Names())
}

func TestExtract_CatalogOrderAndIdempotent(t *testing.T) {
	c := DefaultCatalog()
	text := "Docker and Python with SQL, deployed on AWS"

	first := Extract(text, c)
	second := Extract(text, c)

	assert.Equal(t, []string{"Python", "SQL", "Docker", "AWS"}, first.Names())
	assert.Equal(t, first.Names(), second.Names())
}

func TestNewCatalog_FiltersBlankAndDuplicateEntries(t *testing.T) {
	c := NewCatalog("", "  ", "Go", "go", " Machine   Learning ", "machine learning")

	require.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Go", "Machine Learning"}, c.Names())

	got := Extract("anything at all", c)
	assert.True(t, got.IsEmpty(), "blank entries must not match every document")
}

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	name, ok := c.Lookup("  power   bi ")
	require.True(t, ok)
	assert.Equal(t, "Power BI", name)

	_, ok = c.Lookup("Cobol")
	assert.False(t, ok)
}

type fixedGenerator []string

func (g fixedGenerator) Candidates(string) []string { return g }

func TestExtractor_OptionalGeneratorsStayCatalogDriven(t *testing.T) {
	x := NewExtractor(DefaultCatalog(), fixedGenerator{"kubernetes", "Cobol"}, nil)

	got := x.Extract("Some text mentioning Python")
	assert.Equal(t, []string{"Python", "Kubernetes"}, got.Names())
	assert.False(t, got.Has("Cobol"))
}

func TestSet_HasNormalizesInput(t *testing.T) {
	s := NewSet("Machine Learning", "", "machine learning", "SQL")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("MACHINE  learning"))
	assert.False(t, s.Has("learning"))
}
