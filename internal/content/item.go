package content

import (
	"path/filepath"
	"strings"
	"time"
)

// Item describes a single piece of content for one scaffolding run. Only its
// rendered header is persisted.
type Item struct {
	Type    Type
	Title   string
	Authors []string // book only
	Year    string   // book only
}

// NewItem returns an Item with a trimmed title.
func NewItem(t Type, title string) Item {
	return Item{Type: t, Title: strings.TrimSpace(title)}
}

// Slug returns the slug derived from the item title.
func (i Item) Slug() string {
	return Slugify(i.Title)
}

// FileName returns the markdown file name for the item. Blog posts are
// prefixed with the post date (YYYY-MM-DD).
func (i Item) FileName(date time.Time) string {
	if i.Type == TypeBlog {
		return date.Format(DateLayout) + "-" + i.Slug() + ".md"
	}
	return i.Slug() + ".md"
}

// Path joins dir with the item's file name.
func (i Item) Path(dir string, date time.Time) string {
	return filepath.Join(dir, i.FileName(date))
}

// Link returns the site URL of the item under prefix, e.g. "/books/deep-learning".
func (i Item) Link(prefix string) string {
	return prefix + "/" + i.Slug()
}

// Header renders the metadata header for the item's type.
func (i Item) Header() string {
	if i.Type == TypeBook {
		return BookHeader(i.Title, i.Authors, i.Year)
	}
	return TitleHeader(i.Title)
}

// DateLayout is the date prefix format of blog post file names.
const DateLayout = "2006-01-02"
