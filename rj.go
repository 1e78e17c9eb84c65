// Package rj implements parsing and generation of JSON documents as
// defined in RFC 8259, also known as STD 90.
//
// A document is parsed into a tree of Value nodes, one per JSON datum.
// The tree can be inspected through the Value accessors, built
// programmatically through the Value constructors, and rendered back to
// text in compact (Stringify) or indented (Format) form.
//
// # Parsing
//
// The parser is a classic recursive descent over the six grammar
// productions: value, object, array, string, number, and literal. It is
// strict: no comments, no trailing commas, and nothing but whitespace
// after the top-level value. Malformed input produces a *ParseError
// carrying the failure kind, position, and offending fragment; no input
// can make the parser panic.
//
// Both operations are pure synchronous functions with no shared state,
// so they are safe for concurrent use. Recursion depth follows the
// nesting depth of the document: pathologically deep input can exhaust
// the stack, a known limitation rather than a guarded condition.
package rj

import (
	"errors"
	"strconv"
	"strings"
)

// ============================================================================
// Public API
// ============================================================================

// Parse parses a JSON document and returns its Value tree. The input must
// contain exactly one top-level value, optionally surrounded by
// whitespace. On malformed input the error is a *ParseError.
func Parse(input string) (*Value, error) {
	p := &parser{input: input}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.input) {
		return nil, p.errorAt(p.pos, TrailingContent, "Unexpected characters after JSON value")
	}
	return v, nil
}

// ParseBytes parses a JSON document held in a byte slice.
func ParseBytes(data []byte) (*Value, error) {
	return Parse(string(data))
}

// ============================================================================
// Parser
// ============================================================================

// parser is a cursor over the input. Each production consumes its token
// from pos and leaves pos at the first unconsumed byte, the remaining
// suffix of the input.
type parser struct {
	input string
	pos   int
}

// skipWhitespace advances past the four RFC 8259 whitespace characters:
// space, tab, newline, and carriage return. No other characters count.
func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// peek returns the byte at the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// literal consumes the fixed keyword if it is next and reports whether
// it did.
func (p *parser) literal(kw string) bool {
	if strings.HasPrefix(p.input[p.pos:], kw) {
		p.pos += len(kw)
		return true
	}
	return false
}

// parseValue dispatches on the character after leading whitespace:
// '{' begins an object, '[' an array, '"' a string, '-' or a digit a
// number, and the keywords true, false, and null are matched as fixed
// prefixes. Anything else fails the parse.
func (p *parser) parseValue() (*Value, error) {
	p.skipWhitespace()

	switch {
	case p.literal("true"):
		return NewBool(true), nil
	case p.literal("false"):
		return NewBool(false), nil
	case p.literal("null"):
		return Null(), nil
	}

	if p.pos >= len(p.input) {
		return nil, p.errorAt(p.pos, UnexpectedToken, "Unexpected end of input, expected a JSON value")
	}

	switch c := p.input[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case c == '-' || ('0' <= c && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorAt(p.pos, UnexpectedToken, "Unexpected token")
	}
}

// parseObject parses '{' members '}'. Duplicate keys are legal and the
// last write wins; member order is not retained beyond the map itself.
func (p *parser) parseObject() (*Value, error) {
	p.pos++ // consume '{'
	p.skipWhitespace()

	obj := make(map[string]*Value)
	if p.peek() == '}' {
		p.pos++
		return &Value{kind: KindObject, obj: obj}, nil
	}

	for {
		p.skipWhitespace()
		if p.peek() != '"' {
			return nil, p.errorAt(p.pos, UnexpectedToken, "Expected string key in object")
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if p.peek() != ':' {
			return nil, p.errorAt(p.pos, MissingDelimiter, "Expected ':' after object key")
		}
		p.pos++

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[key] = val

		p.skipWhitespace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return &Value{kind: KindObject, obj: obj}, nil
		default:
			return nil, p.errorAt(p.pos, MissingDelimiter, "Expected ',' or '}' after object value")
		}
	}
}

// parseArray parses '[' elements ']'. Element order is preserved exactly
// as encountered.
func (p *parser) parseArray() (*Value, error) {
	p.pos++ // consume '['
	p.skipWhitespace()

	var arr []*Value
	if p.peek() == ']' {
		p.pos++
		return &Value{kind: KindArray, arr: []*Value{}}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.skipWhitespace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return &Value{kind: KindArray, arr: arr}, nil
		default:
			return nil, p.errorAt(p.pos, MissingDelimiter, "Expected ',' or ']' after array element")
		}
	}
}

// parseString parses a quoted string, resolving escapes so the result
// holds only Unicode scalar values. The cursor must be on the opening
// quote. Non-ASCII source bytes pass through untouched; the input is
// assumed to be well-formed UTF-8.
func (p *parser) parseString() (string, error) {
	p.pos++ // consume opening '"'
	var sb strings.Builder

	for p.pos < len(p.input) {
		switch c := p.input[p.pos]; c {
		case '"':
			p.pos++
			return sb.String(), nil
		case '\\':
			p.pos++
			if p.pos >= len(p.input) {
				return "", p.errorAt(p.pos-1, InvalidEscape, "Invalid escape sequence, '\\' at end of input")
			}
			switch esc := p.input[p.pos]; esc {
			case '"', '\\', '/':
				sb.WriteByte(esc)
				p.pos++
			case 'b':
				sb.WriteByte('\b')
				p.pos++
			case 'f':
				sb.WriteByte('\f')
				p.pos++
			case 'n':
				sb.WriteByte('\n')
				p.pos++
			case 'r':
				sb.WriteByte('\r')
				p.pos++
			case 't':
				sb.WriteByte('\t')
				p.pos++
			case 'u':
				p.pos++
				r, err := p.parseUnicodeEscape()
				if err != nil {
					return "", err
				}
				sb.WriteRune(r)
			default:
				return "", p.errorAt(p.pos-1, InvalidEscape, "Invalid escape sequence '\\"+string(esc)+"'")
			}
		case '\t', '\n', '\r':
			return "", p.errorAt(p.pos, UnescapedControlChar, "Unescaped control character in string")
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}

	return "", p.errorAt(p.pos, UnterminatedString, "Unterminated string, missing closing '\"'")
}

// parseUnicodeEscape parses the four hex digits after a \u introducer.
// A high surrogate must be immediately followed by an escaped low
// surrogate; the pair combines into one scalar value. Lone surrogates
// are rejected, since they are not Unicode scalar values.
func (p *parser) parseUnicodeEscape() (rune, error) {
	hi, err := p.hexQuad()
	if err != nil {
		return 0, err
	}
	if hi >= 0xD800 && hi <= 0xDBFF {
		if !strings.HasPrefix(p.input[p.pos:], `\u`) {
			return 0, p.errorAt(p.pos, InvalidUnicodeEscape, "Missing low surrogate after high surrogate")
		}
		p.pos += 2
		lo, err := p.hexQuad()
		if err != nil {
			return 0, err
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return 0, p.errorAt(p.pos-4, InvalidUnicodeEscape, "Invalid low surrogate after high surrogate")
		}
		return ((hi-0xD800)<<10 | (lo - 0xDC00)) + 0x10000, nil
	}
	if hi >= 0xDC00 && hi <= 0xDFFF {
		return 0, p.errorAt(p.pos-4, InvalidUnicodeEscape, "Unexpected low surrogate without high surrogate")
	}
	return hi, nil
}

// hexQuad reads exactly four hex digits at the cursor.
func (p *parser) hexQuad() (rune, error) {
	if p.pos+4 > len(p.input) {
		return 0, p.errorAt(p.pos, InvalidUnicodeEscape, "Expected 4 hex digits after '\\u'")
	}
	var v rune
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(p.input[p.pos+i])
		if !ok {
			return 0, p.errorAt(p.pos+i, InvalidUnicodeEscape, "Invalid hex digit in unicode escape")
		}
		v = v<<4 | d
	}
	p.pos += 4
	return v, nil
}

func hexDigit(c byte) (rune, bool) {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0'), true
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return rune(c-'A') + 10, true
	default:
		return 0, false
	}
}

// parseNumber consumes an optional leading minus, then a run of digits
// with at most one decimal point and one exponent marker. An exponent
// sign is accepted only immediately after the marker. The run is handed
// to strconv.ParseFloat; a range overflow saturates to ±Inf rather than
// failing, so only grammar violations are errors.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}

	seenDot := false
	seenExp := false
scan:
	for p.pos < len(p.input) {
		switch c := p.input[p.pos]; {
		case '0' <= c && c <= '9':
			p.pos++
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
			p.pos++
		case (c == 'e' || c == 'E') && !seenExp:
			seenExp = true
			p.pos++
			if p.pos < len(p.input) && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
				p.pos++
			}
		default:
			break scan
		}
	}

	lit := p.input[start:p.pos]
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			// Magnitude beyond double range; ParseFloat already
			// returned the saturated ±Inf.
			return NewNumber(f), nil
		}
		return nil, p.errorAt(start, MalformedNumber, "Malformed number")
	}
	return NewNumber(f), nil
}

// ============================================================================
// Error Reporting
// ============================================================================

// fragmentLimit caps the offending-remainder excerpt carried by a
// ParseError.
const fragmentLimit = 24

// errorAt builds a ParseError for the failure kind at the given byte
// offset, locating it as a 1-based line and rune column.
func (p *parser) errorAt(offset int, kind ErrorKind, msg string) *ParseError {
	if offset > len(p.input) {
		offset = len(p.input)
	}
	line, col := 1, 1
	for _, r := range p.input[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	frag := p.input[offset:]
	if len(frag) > fragmentLimit {
		cut := fragmentLimit
		for cut > 0 && frag[cut]&0xC0 == 0x80 { // do not split a rune
			cut--
		}
		frag = frag[:cut]
	}

	return &ParseError{
		Kind:     kind,
		Message:  msg,
		Offset:   offset,
		Line:     line,
		Column:   col,
		Fragment: frag,
	}
}
