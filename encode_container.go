package cjson

import (
	"reflect"
	"sort"
)

// inProgress is the per-call cycle-detection set of §4.6: container
// identities currently on the encode stack. Registration is removed on
// every exit path via defer, so the same container is encodable again in a
// later call.
type inProgress map[uintptr]struct{}

// identityOf returns the container's identity (its backing pointer) for
// cycle detection, and whether the value is a kind that can participate in
// a cycle at all. Value structs and scalars can't self-reference in Go
// without indirection, so only slices and maps need tracking; both of
// identityOf's callers only reach it after encodeDispatch's own
// switch rv.Kind() has already matched Slice/Array or Map on the same v.
func identityOf(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

func encodeArray(items []any, cfg *encodeConfig, seen inProgress, depth int, id uintptr, hasID bool) ([]byte, error) {
	if hasID {
		if _, dup := seen[id]; dup {
			return nil, newEncodeErr("a list with references to itself is not JSON encodable")
		}
		seen[id] = struct{}{}
		defer delete(seen, id)
	}
	if depth >= maxDepth {
		return nil, newEncodeErr("max recursion depth exceeded while encoding a JSON array")
	}
	if len(items) == 0 {
		return []byte("[]"), nil
	}

	out := []byte{'['}
	for i, item := range items {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		enc, err := encodeValue(item, cfg, seen, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	out = append(out, ']')
	return out, nil
}

type keyedEntry struct {
	key string
	val any
}

func encodeObject(entries []keyedEntry, cfg *encodeConfig, seen inProgress, depth int, id uintptr, hasID bool) ([]byte, error) {
	if hasID {
		if _, dup := seen[id]; dup {
			return nil, newEncodeErr("a dict with references to itself is not JSON encodable")
		}
		seen[id] = struct{}{}
		defer delete(seen, id)
	}
	if depth >= maxDepth {
		return nil, newEncodeErr("max recursion depth exceeded while encoding a JSON object")
	}
	if len(entries) == 0 {
		return []byte("{}"), nil
	}

	out := []byte{'{'}
	for i, e := range entries {
		if i > 0 {
			out = append(out, ',', ' ')
		}
		keyLit, err := encodeStringLit(e.key)
		if err != nil {
			return nil, err
		}
		out = append(out, keyLit...)
		out = append(out, ':', ' ')

		valLit, err := encodeValue(e.val, cfg, seen, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, valLit...)
	}
	out = append(out, '}')
	return out, nil
}

// reflectMapEntries extracts ordered (key, value) pairs from a map with
// string-kind keys, sorted for deterministic output (§9 "mapping order" —
// the spec does not require a particular order, but a stable one makes
// tests and diffs sane).
func reflectMapEntries(rv reflect.Value) []keyedEntry {
	keys := rv.MapKeys()
	entries := make([]keyedEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, keyedEntry{key: k.String(), val: rv.MapIndex(k).Interface()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}
