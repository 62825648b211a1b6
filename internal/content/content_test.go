package content

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify_Table(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Deep Learning", "deep-learning"},
		{"surrounding whitespace", "  Hello World \n", "hello-world"},
		{"double space keeps both dashes", "a  b", "a--b"},
		{"punctuation kept", "C++ Primer, 5th Ed.", "c++-primer,-5th-ed."},
		{"tab kept", "a\tb", "a\tb"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"already slug", "go-notes", "go-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_MatchesDefinition(t *testing.T) {
	for _, title := range []string{"Mixed CASE Title", " x y z ", "Ünïcode Título", "1984"} {
		want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
		assert.Equal(t, want, Slugify(title), "title %q", title)
	}
}

func TestParseType(t *testing.T) {
	for _, in := range []string{"book", " BOOK ", "Lecture", "blog\n"} {
		_, err := ParseType(in)
		assert.NoError(t, err, "input %q", in)
	}

	got, err := ParseType("  Lecture ")
	require.NoError(t, err)
	assert.Equal(t, TypeLecture, got)

	_, err = ParseType("widget")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidType))
	assert.Contains(t, err.Error(), `"widget"`)

	_, err = ParseType("")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, []string{"book", "lecture", "blog"}, TypeNames())
}

func TestBookHeader(t *testing.T) {
	got := BookHeader("Deep Learning", []string{"Ian Goodfellow", "Yoshua Bengio"}, "2016")
	want := "---\n" +
		"title: Deep Learning\n" +
		"authors:\n" +
		"  - Ian Goodfellow\n" +
		"  - Yoshua Bengio\n" +
		"year: 2016\n" +
		"---"
	assert.Equal(t, want, got)
}

func TestBookHeader_NoAuthors(t *testing.T) {
	got := BookHeader("Anon", nil, "")
	assert.Equal(t, "---\ntitle: Anon\nauthors:\nyear: \n---", got)
}

func TestTitleHeader(t *testing.T) {
	assert.Equal(t, "---\ntitle: Hello World\n---", TitleHeader("Hello World"))
}

func TestItem_PathsAndLinks(t *testing.T) {
	date := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	post := NewItem(TypeBlog, " Hello World ")
	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, "2024-03-01-hello-world.md", post.FileName(date))
	assert.Equal(t, filepath.Join("_posts", "2024-03-01-hello-world.md"), post.Path("_posts", date))
	assert.Equal(t, "---\ntitle: Hello World\n---", post.Header())

	book := NewItem(TypeBook, "Deep Learning")
	book.Authors = []string{"Ian Goodfellow"}
	book.Year = "2016"
	assert.Equal(t, "deep-learning.md", book.FileName(date))
	assert.Equal(t, "/books/deep-learning", book.Link("/books"))
	assert.Contains(t, book.Header(), "  - Ian Goodfellow\n")

	lecture := NewItem(TypeLecture, "Linear Algebra")
	assert.Equal(t, "/lecture-notes/linear-algebra", lecture.Link("/lecture-notes"))
	assert.Equal(t, "---\ntitle: Linear Algebra\n---", lecture.Header())
}

func TestInvalidTypeError(t *testing.T) {
	_, err := ParseType(" Widget ")

	var invalid *InvalidTypeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Widget", invalid.Input)
	assert.Equal(t, `invalid content type: "Widget"`, err.Error())
}
