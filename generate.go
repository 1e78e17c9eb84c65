package rj

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ============================================================================
// Serializer
// ============================================================================
//
// Both renderings share one recursive walk over the Value tree. The tree
// is read-only during serialization and neither operation can fail: every
// reachable Value is renderable.

// Stringify renders v in compact form, with no inserted whitespace.
// Object member order follows map iteration order and is therefore not a
// deterministic byte sequence for multi-member objects; only the parsed
// meaning of the output is stable.
func Stringify(v *Value) string {
	var sb strings.Builder
	writeCompact(&sb, v)
	return sb.String()
}

// Format renders v in pretty form, one member or element per line with
// two-space indentation increments per nesting level. indent is the
// column width of the first nesting level, conventionally 2. Object
// members are sorted by key so the output is byte-identical across
// calls.
func Format(v *Value, indent int) string {
	var sb strings.Builder
	writePretty(&sb, v, indent)
	return sb.String()
}

func writeCompact(sb *strings.Builder, v *Value) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.boo))
	case KindNumber:
		writeNumber(sb, v.num)
	case KindString:
		writeQuoted(sb, v.str)
	case KindObject:
		sb.WriteByte('{')
		first := true
		for k, m := range v.obj {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			writeQuoted(sb, k)
			sb.WriteByte(':')
			writeCompact(sb, m)
		}
		sb.WriteByte('}')
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCompact(sb, e)
		}
		sb.WriteByte(']')
	}
}

func writePretty(sb *strings.Builder, v *Value, indent int) {
	switch v.kind {
	case KindObject:
		if len(v.obj) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{\n")
		for i, k := range sortedKeys(v.obj) {
			if i > 0 {
				sb.WriteString(",\n")
			}
			pad(sb, indent)
			writeQuoted(sb, k)
			sb.WriteString(": ")
			writePretty(sb, v.obj[k], indent+2)
		}
		sb.WriteByte('\n')
		pad(sb, indent-2)
		sb.WriteByte('}')
	case KindArray:
		if len(v.arr) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(",\n")
			}
			pad(sb, indent)
			writePretty(sb, e, indent+2)
		}
		sb.WriteByte('\n')
		pad(sb, indent-2)
		sb.WriteByte(']')
	default:
		writeCompact(sb, v)
	}
}

func sortedKeys(obj map[string]*Value) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pad(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}

// writeNumber renders a float in its default decimal form: shortest
// digits, plain notation inside [1e-6, 1e21) and exponent notation
// outside, so values like 10e3 round-trip as 10000. Non-finite numbers
// cannot come from the parser and have no JSON numeral; they render as
// null so serialization stays total.
func writeNumber(sb *strings.Builder, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		sb.WriteString("null")
		return
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	sb.Write(strconv.AppendFloat(nil, f, format, -1, 64))
}

// writeQuoted renders a string payload with its escaping reproduced, so
// any in-memory string survives a serialize/parse round trip: quote,
// backslash, and the named control characters use their short escapes,
// any other control character becomes \u00XX.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}

// ============================================================================
// Debug Dump
// ============================================================================

// Dump renders v as an indented tree annotated with variant names, for
// the command-line and embedding front-ends. Object members are sorted
// by key.
func Dump(v *Value) string {
	var sb strings.Builder
	writeDump(&sb, v, 2)
	return sb.String()
}

func writeDump(sb *strings.Builder, v *Value, indent int) {
	switch v.kind {
	case KindNull:
		sb.WriteString("Null")
	case KindBool:
		fmt.Fprintf(sb, "Boolean(%t)", v.boo)
	case KindNumber:
		sb.WriteString("Number(")
		writeNumber(sb, v.num)
		sb.WriteByte(')')
	case KindString:
		sb.WriteString("String(")
		writeQuoted(sb, v.str)
		sb.WriteByte(')')
	case KindObject:
		if len(v.obj) == 0 {
			sb.WriteString("Object{}")
			return
		}
		sb.WriteString("Object{\n")
		for i, k := range sortedKeys(v.obj) {
			if i > 0 {
				sb.WriteString(",\n")
			}
			pad(sb, indent)
			writeQuoted(sb, k)
			sb.WriteString(": ")
			writeDump(sb, v.obj[k], indent+2)
		}
		sb.WriteByte('\n')
		pad(sb, indent-2)
		sb.WriteByte('}')
	case KindArray:
		if len(v.arr) == 0 {
			sb.WriteString("Array[]")
			return
		}
		sb.WriteString("Array[\n")
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(",\n")
			}
			pad(sb, indent)
			writeDump(sb, e, indent+2)
		}
		sb.WriteByte('\n')
		pad(sb, indent-2)
		sb.WriteByte(']')
	}
}
