// ABOUTME: Structured errors for alias file lookups
// ABOUTME: Carries the failure kind, category, path and underlying cause
package alias

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAlias    = errors.New("alias must be a plain file name")
	ErrInvalidEncoding = errors.New("content is not valid UTF-8")
)

type Kind int

const (
	KindOpen Kind = iota
	KindRead
	KindInvalidAlias
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindRead:
		return "read"
	case KindInvalidAlias:
		return "invalid alias"
	default:
		return "unknown"
	}
}

// LookupError reports a failed alias lookup. Error() gives the short
// description; the cause is available through Unwrap.
type LookupError struct {
	Kind     Kind
	Category Category
	Path     string
	Alias    string
	Err      error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindOpen:
		return fmt.Sprintf("failed to open %s", e.Path)
	case KindRead:
		return fmt.Sprintf("failed to read %s", e.Path)
	default:
		return fmt.Sprintf("invalid alias %q", e.Alias)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
