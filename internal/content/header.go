package content

import "strings"

// HeaderDelimiter opens and closes the metadata header.
const HeaderDelimiter = "---"

// TitleHeader renders a header holding only the title. The result has no
// trailing newline.
func TitleHeader(title string) string {
	var b strings.Builder
	b.WriteString(HeaderDelimiter + "\n")
	writeField(&b, "title", title)
	b.WriteString(HeaderDelimiter)
	return b.String()
}

// BookHeader renders the book header: title, an authors list with one
// indented entry per author in input order, and year. Values are written
// verbatim.
func BookHeader(title string, authors []string, year string) string {
	var b strings.Builder
	b.WriteString(HeaderDelimiter + "\n")
	writeField(&b, "title", title)
	b.WriteString("authors:\n")
	for _, a := range authors {
		b.WriteString("  - " + a + "\n")
	}
	writeField(&b, "year", year)
	b.WriteString(HeaderDelimiter)
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key + ": " + value + "\n")
}
