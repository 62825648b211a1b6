// Package prompt reads item metadata from a person at a terminal, one line at
// a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/folio-labs/newitem/internal/content"
)

// Prompter asks sequential questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Prompter reading from r and printing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Type asks for the content type. The returned error wraps
// content.ErrInvalidType when the answer is not a known type.
func (p *Prompter) Type() (content.Type, error) {
	line, err := p.ask(fmt.Sprintf("Type (%s): ", strings.Join(content.TypeNames(), ", ")))
	if err != nil {
		return "", fmt.Errorf("reading type: %w", err)
	}
	return content.ParseType(line)
}

// Title asks for the item title. An empty title is accepted.
func (p *Prompter) Title() (string, error) {
	line, err := p.ask("Title: ")
	if err != nil {
		return "", fmt.Errorf("reading title: %w", err)
	}
	return line, nil
}

// Authors collects author names until a blank line or the end of input.
func (p *Prompter) Authors() ([]string, error) {
	fmt.Fprintln(p.w, "Enter authors (blank line to finish):")

	var authors []string
	for {
		author, err := p.ask("Author: ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading author: %w", err)
		}
		if author == "" {
			break
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// Year asks for the publication year. Any text is accepted.
func (p *Prompter) Year() (string, error) {
	line, err := p.ask("Year: ")
	if err != nil {
		return "", fmt.Errorf("reading year: %w", err)
	}
	return line, nil
}

// ask prints label and returns the next trimmed line. A last line without a
// newline still counts; io.EOF is only returned when nothing was read.
func (p *Prompter) ask(label string) (string, error) {
	fmt.Fprint(p.w, label)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
