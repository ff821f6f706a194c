package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a parse failure.
type Kind int

const (
	// MalformedInput means the element tree could not be produced at all.
	MalformedInput Kind = iota + 1
	// SchemaViolation means an element, character data or attribute value
	// appears where no schema rule permits it.
	SchemaViolation
	// StructuralViolation means legal children break a multiplicity or
	// mutual-exclusion rule, or a required attribute is missing.
	StructuralViolation
	// UnsupportedContent means a schema-legal element that this parser does
	// not model.
	UnsupportedContent
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrMalformedInput      = errors.New("malformed input")
	ErrSchemaViolation     = errors.New("schema violation")
	ErrStructuralViolation = errors.New("structural violation")
	ErrUnsupportedContent  = errors.New("unsupported content")
)

func (k Kind) sentinel() error {
	switch k {
	case MalformedInput:
		return ErrMalformedInput
	case SchemaViolation:
		return ErrSchemaViolation
	case StructuralViolation:
		return ErrStructuralViolation
	case UnsupportedContent:
		return ErrUnsupportedContent
	}
	return nil
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown"
}

// Error is the single failure a parse returns. Path locates the offending
// element from the document root.
type Error struct {
	Kind Kind
	Path Path
	// Element is the offending element or attribute name, when there is one.
	Element  string
	Message  string
	Expected string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return "parse error <nil>"
	}

	var b strings.Builder
	b.WriteString(e.Kind.String())
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Expected != "" {
		fmt.Fprintf(&b, " (expected %s)", e.Expected)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind Kind, path Path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}
