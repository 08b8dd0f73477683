// SPDX-License-Identifier: MIT
// Package graph_test verifies the NodeID and Value tagged unions and the
// Attrs record primitives.

package graph_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/strictgraph/graph"
	"github.com/stretchr/testify/require"
)

// TestNodeID_KindDistinction pins the core identity rule: an integral
// identifier and a textual identifier with the same surface form are
// distinct values that never compare equal.
func TestNodeID_KindDistinction(t *testing.T) {
	require.NotEqual(t, node1, textual1, "IntID(1) and StringID(\"1\") must be distinct")
	require.NotEqual(t, 0, node1.Compare(textual1), "Compare must separate kinds")

	// Both are valid identifiers despite the collision-looking surface.
	require.True(t, node1.Valid())
	require.True(t, textual1.Valid())

	// Kind accessors expose exactly one payload each.
	i, ok := node1.Int()
	require.True(t, ok)
	require.Equal(t, int64(1), i)
	_, ok = node1.Text()
	require.False(t, ok, "integral ID must not expose a textual payload")

	s, ok := textual1.Text()
	require.True(t, ok)
	require.Equal(t, "1", s)
}

// TestNodeID_ZeroInvalid anchors the zero-value contract.
func TestNodeID_ZeroInvalid(t *testing.T) {
	require.False(t, nodeInvalid.Valid(), "zero NodeID must be invalid")
	require.Equal(t, "<invalid>", nodeInvalid.String())
}

// TestNodeID_Ordering verifies the total ordering: kind first (integral
// before textual), then native value; and that sorting under Less is
// deterministic.
func TestNodeID_Ordering(t *testing.T) {
	ids := []graph.NodeID{nodeB, node2, textual1, node1, nodeA}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	want := []graph.NodeID{node1, node2, textual1, nodeA, nodeB}
	require.Equal(t, want, ids, "sorted order must be ints ascending, then strings ascending")

	// Compare must be antisymmetric and reflexive.
	require.Negative(t, node1.Compare(nodeA))
	require.Positive(t, nodeA.Compare(node1))
	require.Zero(t, nodeA.Compare(nodeA))
}

// TestNodeID_String verifies the diagnostic rendering never lets the two
// kinds coincide: integral decimals versus quoted text.
func TestNodeID_String(t *testing.T) {
	require.Equal(t, "1", node1.String())
	require.Equal(t, `"1"`, textual1.String())
	require.NotEqual(t, node1.String(), textual1.String())
}

// TestValue_Union verifies constructor/accessor pairing for every kind and
// that mismatched accessors report !ok.
func TestValue_Union(t *testing.T) {
	b := graph.Bool(true)
	require.Equal(t, graph.KindBool, b.Kind())
	bv, ok := b.AsBool()
	require.True(t, ok)
	require.True(t, bv)

	i := graph.Int(42)
	require.Equal(t, graph.KindInt, i.Kind())
	iv, ok := i.AsInt()
	require.True(t, ok)
	require.Equal(t, int64(42), iv)

	f := graph.Float(2.5)
	require.Equal(t, graph.KindFloat, f.Kind())
	fv, ok := f.AsFloat()
	require.True(t, ok)
	require.Equal(t, 2.5, fv)

	s := graph.String("x")
	require.Equal(t, graph.KindString, s.Kind())
	sv, ok := s.AsString()
	require.True(t, ok)
	require.Equal(t, "x", sv)

	// Cross-kind accessors must report !ok.
	_, ok = i.AsString()
	require.False(t, ok)
	_, ok = s.AsInt()
	require.False(t, ok)

	// Zero Value carries no kind.
	var zero graph.Value
	require.Equal(t, graph.KindInvalid, zero.Kind())
	require.Equal(t, "<invalid>", zero.String())
}

// TestValue_Comparable pins that Value stays == comparable, so Attrs
// records compare entry-by-entry.
func TestValue_Comparable(t *testing.T) {
	require.Equal(t, graph.Int(7), graph.Int(7))
	require.NotEqual(t, graph.Int(7), graph.Float(7), "kind participates in equality")
	require.Equal(t,
		graph.Attrs{"w": graph.Int(7)},
		graph.Attrs{"w": graph.Int(7)},
	)
}

// TestAttrs_Clone verifies independence of the copy and the nil-safety
// used by the container on ingest.
func TestAttrs_Clone(t *testing.T) {
	src := graph.Attrs{"w": graph.Int(1)}
	cp := src.Clone()
	require.Equal(t, src, cp)

	// Mutating the copy must not leak into the source.
	cp["w"] = graph.Int(2)
	require.Equal(t, graph.Int(1), src["w"])

	// Nil receiver yields an empty, non-nil, writable record.
	var none graph.Attrs
	empty := none.Clone()
	require.NotNil(t, empty)
	require.Empty(t, empty)
	empty["k"] = graph.Bool(true)
	require.Len(t, empty, 1)
}
