// SPDX-License-Identifier: MIT
//
// File: id.go
// Role: Kind-tagged node identifier union and the canonical edge pair key.
// Policy:
//   - NodeID is a comparable value type: usable directly as a map key.
//   - The total ordering (kind first, then native value) is what makes the
//     pair key deterministic without any string formatting on the hot path.

package graph

import (
	"strconv"
	"strings"
)

// idKind discriminates the two accepted identifier kinds.
// The zero value is reserved for the invalid (uninitialized) NodeID.
type idKind uint8

const (
	kindInvalid idKind = iota
	kindInt
	kindString
)

// NodeID is a kind-tagged node identifier: either integral or textual.
//
// The kind participates in equality and ordering, so IntID(1) and
// StringID("1") are two distinct identifiers that never collide.
// The zero NodeID is invalid and rejected by every mutating operation.
type NodeID struct {
	kind idKind
	i    int64
	s    string
}

// IntID returns the integral identifier for v.
func IntID(v int64) NodeID {
	return NodeID{kind: kindInt, i: v}
}

// StringID returns the textual identifier for s.
// The empty string is a valid textual identifier.
func StringID(s string) NodeID {
	return NodeID{kind: kindString, s: s}
}

// Valid reports whether id carries one of the accepted kinds.
// The zero NodeID reports false.
func (id NodeID) Valid() bool {
	return id.kind == kindInt || id.kind == kindString
}

// Int returns the integral value and true when id is an integral identifier.
func (id NodeID) Int() (int64, bool) {
	return id.i, id.kind == kindInt
}

// Text returns the textual value and true when id is a textual identifier.
func (id NodeID) Text() (string, bool) {
	return id.s, id.kind == kindString
}

// Compare imposes a total, deterministic ordering over identifiers:
// kind first (integral before textual), then the native value.
// Returns a negative value when id < other, zero on equality, positive otherwise.
// Complexity: O(1) for integral, O(len) for textual.
func (id NodeID) Compare(other NodeID) int {
	// Different kinds never tie: the tag alone decides.
	if id.kind != other.kind {
		return int(id.kind) - int(other.kind)
	}
	switch id.kind {
	case kindInt:
		switch {
		case id.i < other.i:
			return -1
		case id.i > other.i:
			return 1
		}

		return 0
	case kindString:
		return strings.Compare(id.s, other.s)
	}

	// Two invalid identifiers compare equal.
	return 0
}

// Less reports whether id orders strictly before other under Compare.
func (id NodeID) Less(other NodeID) bool {
	return id.Compare(other) < 0
}

// String renders the identifier for diagnostics and examples:
// integral IDs as decimal, textual IDs quoted. The two renderings can
// never coincide, mirroring the kind-tagged equality rule.
func (id NodeID) String() string {
	switch id.kind {
	case kindInt:
		return strconv.FormatInt(id.i, 10)
	case kindString:
		return strconv.Quote(id.s)
	}

	return "<invalid>"
}

// edgeKey is the canonical unordered pair {u,v}: endpoints are stored in
// Compare order, so pairKey(u,v) == pairKey(v,u) and the key is a plain
// comparable struct — edge storage and lookup stay O(1) with no
// intermediate string formatting or allocation.
type edgeKey struct {
	u, v NodeID
}

// pairKey builds the canonical key for the unordered pair {u,v}.
// Self-loops keep both slots equal. Complexity: O(1).
func pairKey(u, v NodeID) edgeKey {
	if v.Less(u) {
		u, v = v, u
	}

	return edgeKey{u: u, v: v}
}
