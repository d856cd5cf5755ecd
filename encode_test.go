package cjson

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeScalars(t *testing.T) {
	for _, test := range []struct {
		input    any
		expected string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"hi", `"hi"`},
		{42, "42"},
		{int64(-7), "-7"},
		{uint(9), "9"},
		{big.NewInt(123456789012345), "123456789012345"},
	} {
		t.Run(test.expected, func(t *testing.T) {
			out, err := Encode(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(out))
		})
	}
}

func TestEncodeFloatAlwaysHasMarker(t *testing.T) {
	for _, test := range []struct {
		input    float64
		expected string
	}{
		{2.0, "2.0"},
		{2.5, "2.5"},
		{1e30, "1e+30"},
		{1e-30, "1e-30"},
	} {
		t.Run(test.expected, func(t *testing.T) {
			out, err := Encode(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, string(out))
		})
	}
}

func TestEncodeNonFiniteFloats(t *testing.T) {
	nan, err := Encode(math.NaN())
	require.NoError(t, err)
	assert.Equal(t, "NaN", string(nan))
}

func TestEncodeArraysAndMaps(t *testing.T) {
	out, err := Encode([]any{1, "a", true, nil})
	require.NoError(t, err)
	assert.Equal(t, `[1, "a", true, null]`, string(out))

	out, err = Encode(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1, "b": 2}`, string(out))

	out, err = Encode([]any{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))

	out, err = Encode(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestEncodeRejectsNonStringKeyMap(t *testing.T) {
	_, err := Encode(map[int]any{0: "x"})
	require.Error(t, err)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Contains(t, encErr.Error(), "string/unicode keys")
}

func TestEncodeRejectsSelfReferencingSlice(t *testing.T) {
	v := make([]any, 1)
	v[0] = v
	_, err := Encode(v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestEncodeRejectsSelfReferencingMap(t *testing.T) {
	m := make(map[string]any, 1)
	m["self"] = m
	_, err := Encode(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncode)
}

func TestEncodeUnsupportedValueUsesDefault(t *testing.T) {
	type opaque struct{ X int }
	out, err := Encode(opaque{X: 5}, WithDefault(func(v any) (any, error) {
		o := v.(opaque)
		return map[string]any{"x": o.X}, nil
	}))
	require.NoError(t, err)
	assert.Equal(t, `{"x": 5}`, string(out))
}

func TestEncodeUnsupportedValueWithoutDefaultErrors(t *testing.T) {
	type opaque struct{ X int }
	_, err := Encode(opaque{X: 5})
	require.Error(t, err)
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
}

func TestEncodeTemporal(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 13, 30, 0, 0, time.UTC)

	out, err := Encode(DateTime{T: ts})
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05 13:30:00"`, string(out))

	out, err = Encode(Date{T: ts})
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(out))

	out, err = Encode(Clock{T: ts})
	require.NoError(t, err)
	assert.Equal(t, `"13:30:00"`, string(out))

	out, err = Encode(DateTime{T: ts}, WithDateTimeFormat("%Y/%m/%d"))
	require.NoError(t, err)
	assert.Equal(t, `"2024/03/05"`, string(out))
}

func TestEncodeGenericNumeric(t *testing.T) {
	out, err := Encode(genericNumber{f: 4})
	require.NoError(t, err)
	assert.Equal(t, "4", string(out))

	out, err = Encode(genericNumber{f: 4.5})
	require.NoError(t, err)
	assert.Equal(t, "4.5", string(out))
}

type genericNumber struct{ f float64 }

func (g genericNumber) Float64() (float64, bool) { return g.f, true }

func TestEncodeCjsonValueRoundTrip(t *testing.T) {
	obj := NewObject().Put("a", IntegerFromInt64(1)).Put("b", ArrayValue([]Value{BoolValue(true), NullValue()}))
	out, err := Encode(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1, "b": [true, null]}`, string(out))
}
