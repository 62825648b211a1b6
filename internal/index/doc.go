// Package index maintains the YAML index files (e.g. _data/books.yml) that list
// site content as {name, link} records.
//
// AddEntry reads the whole file, appends a record unless one with the same
// name exists, and rewrites the file. Existing records keep their order,
// extra keys and comments; a file holding only comments keeps them above the
// first record. A file with more than one YAML document is refused with
// ErrMultipleDocuments and left untouched. There is no locking: two processes adding to the
// same index concurrently race and the last writer wins. The tool is meant to
// be run by one person at a time.
package index
