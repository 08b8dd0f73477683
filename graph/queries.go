// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Read-only surface — neighbor, inventory and size queries.
// Policy:
//   - Inventory methods return freshly allocated slices sorted by the total
//     NodeID ordering. Determinism is a convenience for callers and tests,
//     not a guaranteed contract.
//   - EdgeRecord slices carry the live attribute records, mirroring
//     Node/Edge record ownership semantics.

package graph

import "sort"

// Neighbors returns the identifiers adjacent to id, sorted by the NodeID
// ordering. A node with a self-loop lists itself once. The returned slice
// is a snapshot; later mutations do not affect it.
//
// Returns ErrNodeNotFound when the node does not exist.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	neighbors, exists := g.adjacency[id]
	if !exists {
		return nil, ErrNodeNotFound
	}

	out := neighbors.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out, nil
}

// Degree returns the number of distinct neighbors of id. A self-loop
// contributes one.
//
// Returns ErrNodeNotFound when the node does not exist.
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	neighbors, exists := g.adjacency[id]
	if !exists {
		return 0, ErrNodeNotFound
	}

	return neighbors.Cardinality(), nil
}

// Nodes returns all node identifiers sorted by the NodeID ordering
// (integral identifiers order before textual ones).
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Edges returns one EdgeRecord per stored edge, endpoints reconstructed
// from the canonical pair key (U orders before or equals V), sorted by key.
// Each record's Attrs is the live shared record of that edge.
// Complexity: O(E log E).
func (g *Graph) Edges() []EdgeRecord {
	out := make([]EdgeRecord, 0, len(g.edges))
	for key, attrs := range g.edges {
		out = append(out, EdgeRecord{U: key.u, V: key.v, Attrs: attrs})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].U.Compare(out[j].U); c != 0 {
			return c < 0
		}

		return out[i].V.Less(out[j].V)
	})

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of stored edges (each unordered pair counts
// once). Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
