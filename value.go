package cjson

import (
	"fmt"
	"math/big"
)

// Type is the tag of a decoded or host-constructed JSON value.
type Type int

// Possible value kinds (§3 DATA MODEL).
const (
	Null Type = iota
	Bool
	Integer
	Float
	String
	Array
	Object
	numTypes
	typeUnknown Type = -1
)

var typeStrings = [numTypes]string{
	"<null>",
	"<bool>",
	"<integer>",
	"<float>",
	"<string>",
	"<array>",
	"<object>",
}

// String returns a human-readable name for the type.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// member is one key/value pair of an Object, kept in insertion order.
type member struct {
	key string
	val Value
}

// Value is the tagged variant produced by Decode and accepted by Encode.
// The zero Value is Null.
type Value struct {
	kind Type

	boolValue   bool
	intValue    *big.Int
	floatValue  float64
	stringValue string

	// asciiOnly and hadEscape record which decode path a String took
	// (§4.2): asciiOnly is set when the token had no non-ASCII byte and no
	// \u escape and all_unicode was off; hadEscape is set when the interior
	// went through an escape-decoding path. Host-constructed Values leave
	// both false, and nothing in the package reads them.
	asciiOnly bool
	hadEscape bool

	arrayValue  []Value
	objectValue []member
}

// Type reports the kind of the value.
func (v Value) Type() Type {
	if v.kind >= 0 && v.kind < numTypes {
		return v.kind
	}
	return typeUnknown
}

// NullValue returns a Null Value.
func NullValue() Value { return Value{kind: Null} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: Bool, boolValue: b} }

// IntegerValue wraps an arbitrary-precision integer.
func IntegerValue(i *big.Int) Value { return Value{kind: Integer, intValue: i} }

// IntegerFromInt64 is a convenience wrapper for host code constructing
// small integers.
func IntegerFromInt64(i int64) Value {
	return Value{kind: Integer, intValue: big.NewInt(i)}
}

// FloatValue wraps a float64, including the three non-finite extension
// values (§3).
func FloatValue(f float64) Value { return Value{kind: Float, floatValue: f} }

// StringValue wraps a Go string.
func StringValue(s string) Value { return Value{kind: String, stringValue: s} }

// ArrayValue wraps a slice of Values.
func ArrayValue(vs []Value) Value { return Value{kind: Array, arrayValue: vs} }

// NewObject returns an empty Object value ready to accept members via Put.
func NewObject() Value { return Value{kind: Object} }

// Put assigns a key in an Object value, last-wins on duplicates (§3). It
// returns the updated value; callers should reassign:
//
//	obj = obj.Put("k", v)
func (v Value) Put(key string, val Value) Value {
	for i := range v.objectValue {
		if v.objectValue[i].key == key {
			v.objectValue[i].val = val
			return v
		}
	}
	v.objectValue = append(v.objectValue, member{key: key, val: val})
	v.kind = Object
	return v
}

// AsNull extracts a null value. Returns an error wrapping ErrValue if the
// value is not null.
func (v Value) AsNull() error {
	if v.kind == Null {
		return nil
	}
	return &ValueError{Message: fmt.Sprintf("value not null: %v", v)}
}

// AsBool extracts a bool value.
func (v Value) AsBool() (bool, error) {
	if v.kind == Bool {
		return v.boolValue, nil
	}
	return false, &ValueError{Message: fmt.Sprintf("value not a bool: %v", v)}
}

// AsInteger extracts the arbitrary-precision integer. It does not convert
// from Float (use AsFloat for that).
func (v Value) AsInteger() (*big.Int, error) {
	if v.kind == Integer {
		return v.intValue, nil
	}
	return nil, &ValueError{Message: fmt.Sprintf("value not an integer: %v", v)}
}

// AsFloat extracts a float64. Integer values are widened.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case Float:
		return v.floatValue, nil
	case Integer:
		f := new(big.Float).SetInt(v.intValue)
		out, _ := f.Float64()
		return out, nil
	}
	return 0, &ValueError{Message: fmt.Sprintf("value not a number: %v", v)}
}

// AsString extracts the string value.
func (v Value) AsString() (string, error) {
	if v.kind == String {
		return v.stringValue, nil
	}
	return "", &ValueError{Message: fmt.Sprintf("value not a string: %v", v)}
}

// AsArray extracts the array value.
func (v Value) AsArray() ([]Value, error) {
	if v.kind == Array {
		return v.arrayValue, nil
	}
	return nil, &ValueError{Message: fmt.Sprintf("value not an array: %v", v)}
}

// AsObject extracts the object value as a map. Order is not preserved by
// the returned map (§9 "mapping order" note); use Keys/Key for order-
// sensitive access.
func (v Value) AsObject() (map[string]Value, error) {
	if v.kind != Object {
		return nil, &ValueError{Message: fmt.Sprintf("value not an object: %v", v)}
	}
	m := make(map[string]Value, len(v.objectValue))
	for _, p := range v.objectValue {
		m[p.key] = p.val
	}
	return m, nil
}

// Keys returns the object's keys in the order they were inserted.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	keys := make([]string, len(v.objectValue))
	for i, p := range v.objectValue {
		keys[i] = p.key
	}
	return keys
}

// Index is a fluent accessor for array members. Out-of-range or
// non-array receivers return a Null value instead of an error, mirroring
// the teacher's drill-down ergonomics.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.arrayValue) {
		return Value{}
	}
	return v.arrayValue[i]
}

// Key is a fluent accessor for object members. A missing key or
// non-object receiver returns a Null value instead of an error.
func (v Value) Key(k string) Value {
	if v.kind != Object {
		return Value{}
	}
	for _, p := range v.objectValue {
		if p.key == k {
			return p.val
		}
	}
	return Value{}
}

// String renders a debug representation. It is NOT valid JSON output; use
// Encode for that.
func (v Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.boolValue {
			return "true"
		}
		return "false"
	case Integer:
		return v.intValue.String()
	case Float:
		return fmt.Sprintf("%v", v.floatValue)
	case String:
		return fmt.Sprintf("%q", v.stringValue)
	case Array:
		s := "["
		for i, e := range v.arrayValue {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	case Object:
		s := "{"
		for i, p := range v.objectValue {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%q: %s", p.key, p.val.String())
		}
		return s + "}"
	}
	return "<unknown>"
}
