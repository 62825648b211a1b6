package content

import "strings"

// Slugify trims title, lowercases it and replaces each space with a dash.
// No other characters are touched, so distinct titles may share a slug.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}
