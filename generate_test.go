package rj

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringifyScalars(t *testing.T) {
	for want, v := range map[string]*Value{
		"null":    Null(),
		"true":    NewBool(true),
		"false":   NewBool(false),
		"10":      NewNumber(10),
		"-10":     NewNumber(-10),
		"10.1234": NewNumber(10.1234),
		"10000":   NewNumber(10e3),
		"0.01":    NewNumber(10e-3),
		"1e+21":   NewNumber(1e21),
		`"text"`:  NewString("text"),
		`""`:      NewString(""),
	} {
		t.Run(want, func(t *testing.T) {
			require.Equal(t, want, Stringify(v))
		})
	}
}

func TestStringifyEscapesStrings(t *testing.T) {
	v := NewString("he said \"hi\", path \\tmp,\nnext\tline")
	require.Equal(t, `"he said \"hi\", path \\tmp,\nnext\tline"`, Stringify(v))

	// Other control characters fall back to \u00XX.
	require.Equal(t, `"\u0001"`, Stringify(NewString("\x01")))

	// Any in-memory string must survive a generate/parse round trip.
	back, err := Parse(Stringify(v))
	require.NoError(t, err)
	require.True(t, v.Equal(back))
}

func TestStringifyCompact(t *testing.T) {
	for _, input := range []string{
		`{"key":"value"}`,
		`["string","string2"]`,
		`[1,true,null,{"a":[]}]`,
		`{}`,
		`[]`,
	} {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			require.NoError(t, err)
			// Single-member objects and arrays render deterministically.
			require.Equal(t, input, Stringify(v))
		})
	}
}

func TestStringifyMultiMemberObject(t *testing.T) {
	// Member order is unspecified, so only the parsed meaning is stable.
	v, err := Parse(`{"key":"value","key2":"value2"}`)
	require.NoError(t, err)
	back, err := Parse(Stringify(v))
	require.NoError(t, err)
	requireSameValue(t, v, back)
}

func TestStringifyNonFinite(t *testing.T) {
	require.Equal(t, "null", Stringify(NewNumber(math.NaN())))
	require.Equal(t, "null", Stringify(NewNumber(math.Inf(1))))
	require.Equal(t, "null", Stringify(NewNumber(math.Inf(-1))))
}

func TestFormat(t *testing.T) {
	v, err := Parse(`{"b":[1,2],"a":"x","empty":{},"none":[]}`)
	require.NoError(t, err)

	want := strings.Join([]string{
		`{`,
		`  "a": "x",`,
		`  "b": [`,
		`    1,`,
		`    2`,
		`  ],`,
		`  "empty": {},`,
		`  "none": []`,
		`}`,
	}, "\n")
	require.Equal(t, want, Format(v, 2))
}

func TestFormatScalars(t *testing.T) {
	require.Equal(t, "10", Format(NewNumber(10), 2))
	require.Equal(t, "null", Format(Null(), 2))
	require.Equal(t, `"a"`, Format(NewString("a"), 2))
	require.Equal(t, "{}", Format(NewObject(nil), 2))
	require.Equal(t, "[]", Format(NewArray(), 2))
}

func TestFormatDeterministic(t *testing.T) {
	v, err := Parse(`{"c":3,"a":1,"b":{"y":true,"x":false},"d":[null]}`)
	require.NoError(t, err)

	first := Format(v, 2)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Format(v, 2))
	}
}

func TestFormatReparses(t *testing.T) {
	v, err := Parse(`{"a":[1,{"b":"two"},[true]],"c":null}`)
	require.NoError(t, err)
	back, err := Parse(Format(v, 2))
	require.NoError(t, err)
	requireSameValue(t, v, back)
}

func TestDump(t *testing.T) {
	v, err := Parse(`{"a":[true,null],"b":"x","n":12.5}`)
	require.NoError(t, err)

	want := strings.Join([]string{
		`Object{`,
		`  "a": Array[`,
		`    Boolean(true),`,
		`    Null`,
		`  ],`,
		`  "b": String("x"),`,
		`  "n": Number(12.5)`,
		`}`,
	}, "\n")
	require.Equal(t, want, Dump(v))

	require.Equal(t, "Object{}", Dump(NewObject(nil)))
	require.Equal(t, "Array[]", Dump(NewArray()))
}

func TestValueStringIsCompactForm(t *testing.T) {
	v, err := Parse(`["a",1]`)
	require.NoError(t, err)
	require.Equal(t, `["a",1]`, v.String())
}
