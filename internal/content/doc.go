// Package content defines the kinds of items the scaffolder creates (book,
// lecture, blog post), the slug derived from a title, and the metadata header
// written at the top of each new file.
package content
