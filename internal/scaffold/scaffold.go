package scaffold

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/folio-labs/newitem/internal/config"
	"github.com/folio-labs/newitem/internal/content"
	"github.com/folio-labs/newitem/internal/index"
	"github.com/folio-labs/newitem/internal/prompt"
)

// Scaffolder creates one content item per run.
type Scaffolder struct {
	Layout config.Layout
	Index  *index.Store
	Out    io.Writer
	Now    func() time.Time
	Logger *slog.Logger
}

// Result holds the outcome of a scaffolding run.
type Result struct {
	Item content.Item
	Path string

	// Invalid is set when the content type was rejected; nothing was written.
	Invalid bool

	FileCreated bool
	FileExisted bool

	// IndexPath is empty for items that are not indexed (blog posts).
	IndexPath    string
	IndexOutcome index.Outcome
}

// Problem reports whether the run hit a user-level error: an invalid type, an
// existing file or a duplicate index entry.
func (r *Result) Problem() bool {
	if r == nil {
		return false
	}
	return r.Invalid || r.FileExisted || (r.IndexPath != "" && r.IndexOutcome == index.Duplicate)
}

// New returns a Scaffolder for layout writing messages to out.
func New(layout config.Layout, out io.Writer, logger *slog.Logger) *Scaffolder {
	return &Scaffolder{
		Layout: layout,
		Index:  index.NewStore(logger),
		Out:    out,
		Now:    time.Now,
		Logger: logger,
	}
}

func (s *Scaffolder) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Scaffolder) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Run asks for the content type and metadata and creates exactly one item.
// An invalid type is reported on Out and returns a Result with Invalid set.
func (s *Scaffolder) Run(p *prompt.Prompter) (*Result, error) {
	typ, err := p.Type()
	var invalid *content.InvalidTypeError
	if errors.As(err, &invalid) {
		fmt.Fprintf(s.Out, "Invalid type %q: expected %s\n", invalid.Input, typeList())
		s.logger().Debug("rejected content type", "error", err)
		return &Result{Invalid: true}, nil
	}
	if err != nil {
		return nil, err
	}

	title, err := p.Title()
	if err != nil {
		return nil, err
	}
	item := content.NewItem(typ, title)

	switch typ {
	case content.TypeBook:
		if item.Authors, err = p.Authors(); err != nil {
			return nil, err
		}
		if item.Year, err = p.Year(); err != nil {
			return nil, err
		}
		return s.CreateBook(item)
	case content.TypeLecture:
		return s.CreateLecture(item)
	default:
		return s.CreatePost(item)
	}
}

// CreateBook writes <books>/<slug>.md and registers the book in the books index.
func (s *Scaffolder) CreateBook(item content.Item) (*Result, error) {
	item.Type = content.TypeBook
	return s.create(item, s.Layout.BooksDir, s.Layout.BooksIndex, s.Layout.BooksURL)
}

// CreateLecture writes <lectures>/<slug>.md and registers it in the lecture-notes index.
func (s *Scaffolder) CreateLecture(item content.Item) (*Result, error) {
	item.Type = content.TypeLecture
	return s.create(item, s.Layout.LecturesDir, s.Layout.LecturesIndex, s.Layout.LecturesURL)
}

// CreatePost writes <posts>/<YYYY-MM-DD>-<slug>.md. Posts are not indexed.
func (s *Scaffolder) CreatePost(item content.Item) (*Result, error) {
	item.Type = content.TypeBlog
	return s.create(item, s.Layout.PostsDir, "", "")
}

// create writes the item file and, when indexPath is set, registers the item.
// The two steps are independent: an existing file does not stop registration.
func (s *Scaffolder) create(item content.Item, dir, indexPath, urlPrefix string) (*Result, error) {
	res := &Result{
		Item: item,
		Path: item.Path(dir, s.now()),
	}

	created, err := CreateFile(res.Path, item.Header())
	if err != nil {
		return nil, err
	}
	res.FileCreated = created
	res.FileExisted = !created
	if created {
		fmt.Fprintf(s.Out, "Created %s\n", res.Path)
	} else {
		fmt.Fprintf(s.Out, "File %s already exists!\n", res.Path)
	}
	s.logger().Debug("content file", "type", item.Type, "path", res.Path, "created", created)

	if indexPath == "" {
		return res, nil
	}

	res.IndexPath = indexPath
	res.IndexOutcome, err = s.Index.AddEntry(indexPath, item.Title, item.Link(urlPrefix))
	if err != nil {
		return nil, err
	}
	switch res.IndexOutcome {
	case index.Duplicate:
		fmt.Fprintf(s.Out, "Entry %q already exists in %s\n", item.Title, indexPath)
	case index.Added:
		fmt.Fprintf(s.Out, "Added %q to %s\n", item.Title, indexPath)
	}
	return res, nil
}

func typeList() string {
	names := content.TypeNames()
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
