package rj

import (
	"errors"
	"fmt"
)

// ============================================================================
// Value Model
// ============================================================================

// Kind identifies which of the six JSON variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the in-memory representation of a single JSON datum: a string,
// number, boolean, null, object, or array. A Value tree is a strict
// hierarchy; every object and array exclusively owns its children.
//
// Values are immutable once constructed. The parser builds them from text;
// callers build them with the New* constructors.
type Value struct {
	kind Kind
	str  string
	num  float64
	boo  bool
	obj  map[string]*Value
	arr  []*Value
}

var nullValue = &Value{kind: KindNull}

// Null returns the null value. All nulls share one instance.
func Null() *Value { return nullValue }

// NewString returns a string Value. The payload is a sequence of Unicode
// scalar values; escape resolution is the parser's job, not the model's.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewNumber returns a number Value holding a 64-bit IEEE-754 float.
func NewNumber(f float64) *Value { return &Value{kind: KindNumber, num: f} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, boo: b} }

// NewObject returns an object Value with the given members. The map is
// copied so the Value owns its children. Member iteration order is
// unspecified, per RFC 8259.
func NewObject(members map[string]*Value) *Value {
	obj := make(map[string]*Value, len(members))
	for k, m := range members {
		obj[k] = m
	}
	return &Value{kind: KindObject, obj: obj}
}

// NewArray returns an array Value. Element order is preserved.
func NewArray(elements ...*Value) *Value {
	arr := make([]*Value, len(elements))
	copy(arr, elements)
	return &Value{kind: KindArray, arr: arr}
}

// Kind reports which variant v holds.
func (v *Value) Kind() Kind { return v.kind }

// StringValue returns the string payload, or "" for other kinds.
func (v *Value) StringValue() string { return v.str }

// NumberValue returns the number payload, or 0 for other kinds.
func (v *Value) NumberValue() float64 { return v.num }

// BoolValue returns the boolean payload, or false for other kinds.
func (v *Value) BoolValue() bool { return v.boo }

// ObjectValue returns a copy of the member map, or nil for other kinds.
// The copy can be iterated and modified without affecting v.
func (v *Value) ObjectValue() map[string]*Value {
	if v.kind != KindObject {
		return nil
	}
	obj := make(map[string]*Value, len(v.obj))
	for k, m := range v.obj {
		obj[k] = m
	}
	return obj
}

// ArrayValue returns a copy of the element slice, or nil for other
// kinds. The copy can be walked and modified without affecting v.
func (v *Value) ArrayValue() []*Value {
	if v.kind != KindArray {
		return nil
	}
	arr := make([]*Value, len(v.arr))
	copy(arr, v.arr)
	return arr
}

// Len returns the number of members of an object or elements of an array,
// and 0 for every other kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// String renders the compact form of v, so a Value prints as JSON.
func (v *Value) String() string { return Stringify(v) }

// ============================================================================
// Indexing
// ============================================================================

// ErrNotFound reports a member lookup for a key the object does not have,
// or an array index outside the element range.
var ErrNotFound = errors.New("not found")

// KindError reports an operation applied to a Value of the wrong kind,
// such as a string-keyed lookup on an array. It is distinct from
// ErrNotFound: the operation was never applicable, regardless of content.
type KindError struct {
	Op   string // the operation attempted, e.g. "member lookup"
	Kind Kind   // the kind it was attempted on
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s on %s value", e.Op, e.Kind)
}

// Member returns the value of the named object member. It fails with a
// *KindError when v is not an object, and with ErrNotFound when v is an
// object without that key.
func (v *Value) Member(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, &KindError{Op: "member lookup", Kind: v.kind}
	}
	m, ok := v.obj[key]
	if !ok {
		return nil, fmt.Errorf("member %q: %w", key, ErrNotFound)
	}
	return m, nil
}

// At returns the array element at position i. It fails with a *KindError
// when v is not an array, and with ErrNotFound when i is out of range.
func (v *Value) At(i int) (*Value, error) {
	if v.kind != KindArray {
		return nil, &KindError{Op: "element index", Kind: v.kind}
	}
	if i < 0 || i >= len(v.arr) {
		return nil, fmt.Errorf("element %d of %d: %w", i, len(v.arr), ErrNotFound)
	}
	return v.arr[i], nil
}

// ============================================================================
// Equality
// ============================================================================

// Equal reports whether v and o are structurally equal: same kind and same
// payload. Objects compare as unordered sets of members, arrays as ordered
// sequences, numbers by IEEE float equality (NaN is unequal to itself).
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boo == o.boo
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, m := range v.obj {
			om, ok := o.obj[k]
			if !ok || !m.Equal(om) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}
