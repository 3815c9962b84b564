package life

import "fmt"

// ErrorKind classifies a grid decode failure.
type ErrorKind int

const (
	// TooManyRows means a live cell appeared on row Rows or later.
	TooManyRows ErrorKind = iota
	// TooManyCols means a live cell appeared on column Cols or later.
	TooManyCols
	// UnexpectedChar means the input held a character that is not a cell marker.
	UnexpectedChar
)

func (k ErrorKind) String() string {
	switch k {
	case TooManyRows:
		return "too many rows"
	case TooManyCols:
		return "too many cols"
	case UnexpectedChar:
		return "unexpected character"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports where and why decoding stopped. Row and Col are
// 0-indexed; Char is only meaningful for UnexpectedChar.
type ParseError struct {
	Kind ErrorKind
	Row  int
	Col  int
	Char rune
}

// Reason returns the human-readable cause without the position.
func (e *ParseError) Reason() string {
	if e.Kind == UnexpectedChar {
		return fmt.Sprintf("%s: %q", e.Kind, e.Char)
	}
	return e.Kind.String()
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid parse error: %s at %d,%d", e.Reason(), e.Row, e.Col)
}

// IOError wraps a failure to read the grid source.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read grid %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
