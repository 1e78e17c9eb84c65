package rj

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// requireSameValue fails the test with a structural diff when two Value
// trees differ.
func requireSameValue(t *testing.T, want, got *Value) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Value{})); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

// member fails the test unless v has the named object member.
func member(t *testing.T, v *Value, key string) *Value {
	t.Helper()
	m, err := v.Member(key)
	require.NoError(t, err)
	return m
}

func TestRFC8259Example1(t *testing.T) {
	doc := `
{
    "Image": {
        "Width":  800,
        "Height": 600,
        "Title":  "View from 15th Floor",
        "Thumbnail": {
            "Url":    "http://www.example.com/image/481989943",
            "Height": 125,
            "Width":  100
        },
        "Animated" : false,
        "IDs": [116, 943, 234, 38793]
    }
}
`
	v, err := Parse(doc)
	require.NoError(t, err)

	image := member(t, v, "Image")
	require.Equal(t, 800.0, member(t, image, "Width").NumberValue())
	require.Equal(t, 600.0, member(t, image, "Height").NumberValue())
	require.Equal(t, "View from 15th Floor", member(t, image, "Title").StringValue())
	require.False(t, member(t, image, "Animated").BoolValue())

	thumb := member(t, image, "Thumbnail")
	require.Equal(t, "http://www.example.com/image/481989943", member(t, thumb, "Url").StringValue())
	require.Equal(t, 125.0, member(t, thumb, "Height").NumberValue())
	require.Equal(t, 100.0, member(t, thumb, "Width").NumberValue())

	ids := member(t, image, "IDs")
	require.Equal(t, 4, ids.Len())
	for i, want := range []float64{116, 943, 234, 38793} {
		e, err := ids.At(i)
		require.NoError(t, err)
		require.Equal(t, want, e.NumberValue())
	}
}

func TestRFC8259Example2(t *testing.T) {
	doc := `
[
    {
        "precision": "zip",
        "Latitude":  37.7668,
        "Longitude": -122.3959,
        "Address":   "",
        "City":      "SAN FRANCISCO",
        "State":     "CA",
        "Zip":       "94107",
        "Country":   "US"
    },
    {
        "precision": "zip",
        "Latitude":  37.371991,
        "Longitude": -122.026020,
        "Address":   "",
        "City":      "SUNNYVALE",
        "State":     "CA",
        "Zip":       "94085",
        "Country":   "US"
    }
]
`
	v, err := Parse(doc)
	require.NoError(t, err)
	require.Equal(t, 2, v.Len())

	first, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, "zip", member(t, first, "precision").StringValue())
	require.Equal(t, 37.7668, member(t, first, "Latitude").NumberValue())
	require.Equal(t, -122.3959, member(t, first, "Longitude").NumberValue())
	require.Equal(t, "", member(t, first, "Address").StringValue())
	require.Equal(t, "SAN FRANCISCO", member(t, first, "City").StringValue())

	second, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, "SUNNYVALE", member(t, second, "City").StringValue())
	require.Equal(t, 37.371991, member(t, second, "Latitude").NumberValue())
	require.Equal(t, -122.026020, member(t, second, "Longitude").NumberValue())
	require.Equal(t, "94085", member(t, second, "Zip").StringValue())
	require.Equal(t, "US", member(t, second, "Country").StringValue())
}

func TestRoundTripCompact(t *testing.T) {
	for _, input := range []string{
		`{"key":"value"}`,
		`["string","string2"]`,
		`"plain"`,
		`true`,
		`false`,
		`null`,
		`10.1234`,
		`-0.5`,
		`{"nested":{"list":[1,2,3],"ok":true}}`,
	} {
		t.Run(input, func(t *testing.T) {
			once, err := Parse(input)
			require.NoError(t, err)
			twice, err := Parse(Stringify(once))
			require.NoError(t, err)
			requireSameValue(t, once, twice)
		})
	}
}

func TestReparseIdempotence(t *testing.T) {
	v := NewObject(map[string]*Value{
		"title":  NewString("quote \" and backslash \\"),
		"count":  NewNumber(42),
		"ratio":  NewNumber(0.125),
		"flags":  NewArray(NewBool(true), NewBool(false), Null()),
		"nested": NewObject(map[string]*Value{"inner": NewArray()}),
	})

	back, err := Parse(Stringify(v))
	require.NoError(t, err)
	require.True(t, v.Equal(back))

	back, err = Parse(Format(v, 2))
	require.NoError(t, err)
	require.True(t, v.Equal(back))
}
