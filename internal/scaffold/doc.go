// Package scaffold creates new content files for a static site. It powers the
// interactive root command: the Scaffolder asks for a content type and
// metadata, writes the markdown file with its metadata header and registers
// books and lecture notes in their index files.
package scaffold
