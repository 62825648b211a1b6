// Package doctor checks that a site's content directories and index files are
// in the shape the scaffolder expects.
package doctor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/folio-labs/newitem/internal/config"
	"github.com/folio-labs/newitem/internal/content"
	"github.com/folio-labs/newitem/internal/index"
)

// Report counts the problems found by Check.
type Report struct {
	Failures int
	Warnings int
}

// OK reports whether no check failed. Warnings do not count.
func (r *Report) OK() bool { return r.Failures == 0 }

type checker struct {
	w      io.Writer
	fix    bool
	report *Report
}

func (c *checker) ok(format string, args ...any) {
	fmt.Fprintf(c.w, "  [ OK ] "+format+"\n", args...)
}

func (c *checker) miss(format string, args ...any) {
	fmt.Fprintf(c.w, "  [MISS] "+format+"\n", args...)
}

func (c *checker) warn(format string, args ...any) {
	c.report.Warnings++
	fmt.Fprintf(c.w, "  [WARN] "+format+"\n", args...)
}

func (c *checker) fail(format string, args ...any) {
	c.report.Failures++
	fmt.Fprintf(c.w, "  [FAIL] "+format+"\n", args...)
}

// Check runs every site check and writes a line per finding to w. With fix
// set, missing content directories are created.
func Check(w io.Writer, layout config.Layout, fix bool) *Report {
	c := &checker{w: w, fix: fix, report: &Report{}}

	fmt.Fprintln(w, "Layout check:")
	c.checkDir(layout.PostsDir)
	c.checkDir(layout.BooksDir)
	c.checkDir(layout.LecturesDir)

	c.checkIndex(layout.BooksIndex, layout.BooksDir, layout.BooksURL)
	c.checkIndex(layout.LecturesIndex, layout.LecturesDir, layout.LecturesURL)
	c.checkPosts(layout.PostsDir)

	return c.report
}

func (c *checker) checkDir(dir string) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		c.miss("%s does not exist", dir)
		if c.fix {
			if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
				c.fail("could not create %s: %v", dir, mkErr)
				return
			}
			fmt.Fprintf(c.w, "  [FIX ] Created %s\n", dir)
		}
		return
	}
	if err != nil {
		c.fail("%s: %v", dir, err)
		return
	}
	if !info.IsDir() {
		c.fail("%s is not a directory", dir)
		return
	}
	c.ok("%s exists", dir)
}

func (c *checker) checkIndex(indexPath, dir, urlPrefix string) {
	fmt.Fprintf(c.w, "Index check: %s\n", indexPath)

	if _, err := os.Stat(indexPath); errors.Is(err, fs.ErrNotExist) {
		c.miss("%s does not exist yet (created on first entry)", indexPath)
		return
	}

	result, err := index.ValidateFile(indexPath)
	if err != nil {
		c.fail("%v", err)
		return
	}
	if !result.Valid {
		c.fail("%d validation issue(s):", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(c.w, "    - %s\n", issue)
		}
		return
	}

	records, err := index.NewStore(nil).Load(indexPath)
	if err != nil {
		c.fail("%v", err)
		return
	}
	c.ok("%d record(s)", len(records))

	seen := make(map[string]bool)
	linked := make(map[string]bool)
	for _, r := range records {
		if seen[r.Name] {
			c.warn("%q is listed more than once", r.Name)
		}
		seen[r.Name] = true

		slug, ok := strings.CutPrefix(r.Link, urlPrefix+"/")
		if !ok {
			c.warn("%q links to %s, outside %s/", r.Name, r.Link, urlPrefix)
			continue
		}
		linked[slug] = true
		file := filepath.Join(dir, filepath.FromSlash(slug)+".md")
		if _, err := os.Stat(file); err != nil {
			c.warn("%q has no content file %s", r.Name, file)
		}
	}

	files, err := markdownFiles(dir, "**/*.md")
	if err != nil {
		c.fail("listing %s: %v", dir, err)
		return
	}
	for _, f := range files {
		if !linked[strings.TrimSuffix(f, ".md")] {
			c.warn("%s is not listed in %s", filepath.Join(dir, filepath.FromSlash(f)), indexPath)
		}
	}
}

func (c *checker) checkPosts(dir string) {
	fmt.Fprintf(c.w, "Posts check: %s\n", dir)

	files, err := markdownFiles(dir, "*.md")
	if err != nil {
		c.fail("listing %s: %v", dir, err)
		return
	}
	dated := 0
	for _, f := range files {
		if hasDatePrefix(path.Base(f)) {
			dated++
			continue
		}
		c.warn("%s has no YYYY-MM-DD- date prefix", filepath.Join(dir, f))
	}
	c.ok("%d dated post(s)", dated)
}

// markdownFiles globs dir with a doublestar pattern and returns slash-separated
// paths relative to dir. A missing dir has no files.
func markdownFiles(dir, pattern string) ([]string, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, nil
	}
	return doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
}

func hasDatePrefix(name string) bool {
	n := len(content.DateLayout)
	if len(name) <= n || name[n] != '-' {
		return false
	}
	_, err := time.Parse(content.DateLayout, name[:n])
	return err == nil
}
