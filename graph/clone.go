// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: Whole-container maintenance — deep copy and reset.

package graph

import mapset "github.com/deckarep/golang-set/v2"

// Clone returns a deep copy of the Graph: node records, edge records and
// adjacency sets are all duplicated, so mutating the clone (including
// in-place edits of records returned by Node/Edge) never affects the
// source, and vice versa.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := New()
	for id, attrs := range g.nodes {
		clone.nodes[id] = attrs.Clone()
		clone.adjacency[id] = g.adjacency[id].Clone()
	}
	for key, attrs := range g.edges {
		clone.edges[key] = attrs.Clone()
	}

	return clone
}

// Clear resets the Graph to the empty state, dropping every node, edge and
// attribute record. Records previously handed out by Node/Edge are no
// longer tracked by the container.
// Complexity: O(1) — the old stores are released wholesale.
func (g *Graph) Clear() {
	g.nodes = make(map[NodeID]Attrs)
	g.edges = make(map[edgeKey]Attrs)
	g.adjacency = make(map[NodeID]mapset.Set[NodeID])
}
