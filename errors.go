package rj

import "fmt"

// ErrorKind classifies the reason a parse failed.
type ErrorKind int

const (
	// UnexpectedToken: the lead character matches no grammar production.
	UnexpectedToken ErrorKind = iota
	// MissingDelimiter: an expected ':', ',', '}', or ']' was not found.
	MissingDelimiter
	// UnterminatedString: end of input before a closing quote.
	UnterminatedString
	// InvalidEscape: backslash followed by a character outside the
	// recognized escape set.
	InvalidEscape
	// InvalidUnicodeEscape: \u not followed by four hex digits, or a
	// surrogate escape without its partner.
	InvalidUnicodeEscape
	// UnescapedControlChar: a literal tab, newline, or carriage return
	// inside a string.
	UnescapedControlChar
	// TrailingContent: non-whitespace input remains after the top-level
	// value.
	TrailingContent
	// MalformedNumber: the numeral grammar was violated.
	MalformedNumber
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case MissingDelimiter:
		return "missing delimiter"
	case UnterminatedString:
		return "unterminated string"
	case InvalidEscape:
		return "invalid escape"
	case InvalidUnicodeEscape:
		return "invalid unicode escape"
	case UnescapedControlChar:
		return "unescaped control character"
	case TrailingContent:
		return "trailing content"
	case MalformedNumber:
		return "malformed number"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError describes the first point at which an input stops being a
// valid JSON document. Parsing is fail-fast: the parser reports one error
// and does not attempt recovery or multi-error collection.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Offset   int    // byte offset of the failure in the input
	Line     int    // 1-based line of the failure
	Column   int    // 1-based column of the failure, in runes
	Fragment string // the offending remainder of the input, truncated
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at %d:%d: %q", e.Message, e.Line, e.Column, e.Fragment)
}
