package content

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the kind of content item being created.
type Type string

const (
	TypeBook    Type = "book"
	TypeLecture Type = "lecture"
	TypeBlog    Type = "blog"
)

// Types lists the accepted content types in prompt order.
var Types = []Type{TypeBook, TypeLecture, TypeBlog}

// ErrInvalidType is returned when input does not name a known content type.
var ErrInvalidType = errors.New("invalid content type")

// InvalidTypeError carries the rejected input. It matches ErrInvalidType.
type InvalidTypeError struct {
	Input string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidType, e.Input)
}

func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// ParseType normalizes s (trimmed, lowercased) and returns the matching Type.
func ParseType(s string) (Type, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types {
		if string(t) == norm {
			return t, nil
		}
	}
	return "", &InvalidTypeError{Input: strings.TrimSpace(s)}
}

// TypeNames returns the accepted type names, e.g. for prompts.
func TypeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return names
}
