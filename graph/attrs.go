// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Typed attribute records shared by nodes and edges.
// Policy:
//   - Value is a small comparable tagged union; records stay == comparable
//     entry-by-entry and need no reflection to inspect.
//   - The container always stores its own copy of caller-supplied records
//     (Clone on ingest); records handed back by Node/Edge are the live
//     owned ones, documented for in-place editing.

package graph

import "strconv"

// ValueKind discriminates the permitted attribute value types.
type ValueKind uint8

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid ValueKind = iota
	// KindBool tags a boolean value.
	KindBool
	// KindInt tags an int64 value.
	KindInt
	// KindFloat tags a float64 value.
	KindFloat
	// KindString tags a string value.
	KindString
)

// Value is a tagged union over the permitted attribute value types:
// bool, int64, float64 and string. The zero Value has KindInvalid.
//
// Value is a comparable value type: records compare with == per entry and
// work directly as map values without boxing.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool wraps a boolean attribute value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an integral attribute value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float wraps a floating-point attribute value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a textual attribute value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the tag of the stored value.
func (v Value) Kind() ValueKind { return v.kind }

// AsBool returns the boolean payload and true when v holds a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integral payload and true when v holds an int64.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the floating payload and true when v holds a float64.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the textual payload and true when v holds a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// String renders the payload for diagnostics and examples.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	}

	return "<invalid>"
}

// Attrs is an open attribute record: string keys to typed values.
// Nodes and edges each own one record; an absent key has no value.
type Attrs map[string]Value

// Clone returns an independent copy of the record.
// A nil receiver yields an empty, non-nil record, so the container can
// always hand back a mutable record even when the caller supplied none.
// Complexity: O(len(a)).
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// merge copies src into a key-by-key, last write wins.
// Used by AddEdge when an edge is re-declared: the stored record is
// updated in place rather than replaced.
func (a Attrs) merge(src Attrs) {
	for k, v := range src {
		a[k] = v
	}
}
