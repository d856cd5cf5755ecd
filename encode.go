package cjson

import (
	"math"
	"math/big"
	"reflect"
)

// EncodeNumeric is the capability interface for host numeric types that are
// neither a named Go integer kind nor a float (§4.7 step 9's "generic
// numeric" fallback, a stand-in for Python's numeric-tower coercion, which
// Go has no runtime equivalent of).
type EncodeNumeric interface {
	Float64() (float64, bool)
}

// Encode serializes a value into JSON text (§2, §4.5-§4.7, §6).
func Encode(v any, opts ...EncodeOption) ([]byte, error) {
	cfg := newEncodeConfig(opts)
	seen := inProgress{}
	return encodeValue(v, &cfg, seen, 0)
}

func encodeValue(v any, cfg *encodeConfig, seen inProgress, depth int) ([]byte, error) {
	return encodeDispatch(v, cfg, seen, depth, true)
}

// encodeDispatch implements the dispatch order of §4.7. allowFallback is
// false when re-entering dispatch on the result of a fallback callable, so
// the fallback is invoked at most once per opaque value.
func encodeDispatch(v any, cfg *encodeConfig, seen inProgress, depth int, allowFallback bool) ([]byte, error) {
	if v == nil {
		return encodeNullLit(), nil
	}

	if val, ok := v.(Value); ok {
		return encodeCjsonValue(val, cfg, seen, depth)
	}

	switch x := v.(type) {
	case bool:
		return encodeBoolLit(x), nil
	case string:
		return encodeStringLit(x)
	case float32:
		return encodeFloatLit(float64(x)), nil
	case float64:
		return encodeFloatLit(x), nil
	case int:
		return encodeIntegerLit(big.NewInt(int64(x))), nil
	case int8:
		return encodeIntegerLit(big.NewInt(int64(x))), nil
	case int16:
		return encodeIntegerLit(big.NewInt(int64(x))), nil
	case int32:
		return encodeIntegerLit(big.NewInt(int64(x))), nil
	case int64:
		return encodeIntegerLit(big.NewInt(x)), nil
	case uint:
		return encodeIntegerLit(new(big.Int).SetUint64(uint64(x))), nil
	case uint8:
		return encodeIntegerLit(new(big.Int).SetUint64(uint64(x))), nil
	case uint16:
		return encodeIntegerLit(new(big.Int).SetUint64(uint64(x))), nil
	case uint32:
		return encodeIntegerLit(new(big.Int).SetUint64(uint64(x))), nil
	case uint64:
		return encodeIntegerLit(new(big.Int).SetUint64(x)), nil
	case *big.Int:
		if x == nil {
			return nil, newEncodeErr("object <nil *big.Int> is not JSON encodable")
		}
		return encodeIntegerLit(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		id, hasID := identityOf(v)
		return encodeArray(items, cfg, seen, depth, id, hasID)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, newEncodeErr("JSON encodable dictionaries must have string/unicode keys")
		}
		entries := reflectMapEntries(rv)
		id, hasID := identityOf(v)
		return encodeObject(entries, cfg, seen, depth, id, hasID)
	}

	if n, ok := v.(EncodeNumeric); ok {
		return encodeGenericNumeric(n)
	}

	if t, ok := v.(Temporal); ok {
		s, err := formatTemporal(t, cfg)
		if err != nil {
			return nil, err
		}
		return encodeStringLit(s)
	}

	if allowFallback && cfg.fallback != nil {
		if depth+1 >= maxDepth {
			return nil, newEncodeErr("max recursion depth exceeded while encoding a non-primitive value")
		}
		resolved, err := cfg.fallback(v)
		if err != nil {
			return nil, newEncodeErr("object %v is not JSON encodable: %v", v, err)
		}
		return encodeDispatch(resolved, cfg, seen, depth+1, false)
	}

	return nil, newEncodeErr("object %v is not JSON encodable", v)
}

// encodeCjsonValue dispatches a codec-native Value by its internal kind.
// Array/Object members of a Value are not identity-tracked; only
// host-supplied slices/maps go through the cycle check (§4.6). A Value
// made to contain itself is stopped by the depth bound instead.
func encodeCjsonValue(val Value, cfg *encodeConfig, seen inProgress, depth int) ([]byte, error) {
	switch val.kind {
	case Null:
		return encodeNullLit(), nil
	case Bool:
		return encodeBoolLit(val.boolValue), nil
	case Integer:
		return encodeIntegerLit(val.intValue), nil
	case Float:
		return encodeFloatLit(val.floatValue), nil
	case String:
		return encodeStringLit(val.stringValue)
	case Array:
		items := make([]any, len(val.arrayValue))
		for i, e := range val.arrayValue {
			items[i] = e
		}
		return encodeArray(items, cfg, seen, depth, 0, false)
	case Object:
		entries := make([]keyedEntry, len(val.objectValue))
		for i, m := range val.objectValue {
			entries[i] = keyedEntry{key: m.key, val: m.val}
		}
		return encodeObject(entries, cfg, seen, depth, 0, false)
	}
	return nil, newEncodeErr("object %v is not JSON encodable", val)
}

// encodeGenericNumeric implements §4.7 step 9: coerce to float, then try to
// recover an exact integer; emit whichever representation round-trips.
func encodeGenericNumeric(n EncodeNumeric) ([]byte, error) {
	f, ok := n.Float64()
	if !ok {
		return nil, newEncodeErr("object %v is not JSON encodable", n)
	}
	if !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f) {
		bi, _ := big.NewFloat(f).Int(nil)
		return encodeIntegerLit(bi), nil
	}
	return encodeFloatLit(f), nil
}
