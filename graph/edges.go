// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: Edge lifecycle — insertion with merge-on-redeclare, lookup, removal.
// Policy:
//   - Edges never create nodes: both endpoints must already exist, and the
//     first endpoint is validated before the second.
//   - Edge identity is the canonical unordered pair: every method here is
//     symmetric in its two identifier arguments.

package graph

import "fmt"

// AddEdge inserts (or re-declares) the undirected edge {u,v}. Self-loops
// (u == v) are permitted. Both endpoints must already exist: AddEdge never
// creates nodes.
//
// On first declaration the container stores its own copy of attrs as the
// shared record for the pair. On re-declaration the supplied attrs are
// merged into the existing record key-by-key (last write wins); the record
// is never replaced wholesale. The adjacency insertion is idempotent.
//
// Returns ErrInvalidID when either identifier is invalid, and
// ErrNodeNotFound (wrapped with the offending endpoint, u checked first)
// when an endpoint is absent. A rejected call mutates nothing.
// Complexity: O(1) amortized plus O(len(attrs)).
func (g *Graph) AddEdge(u, v NodeID, attrs Attrs) error {
	// Validate identifier kinds before any store lookup.
	if !u.Valid() || !v.Valid() {
		return ErrInvalidID
	}
	// Endpoints must pre-exist; u is reported before v.
	if _, exists := g.nodes[u]; !exists {
		return fmt.Errorf("graph: endpoint %s: %w", u, ErrNodeNotFound)
	}
	if _, exists := g.nodes[v]; !exists {
		return fmt.Errorf("graph: endpoint %s: %w", v, ErrNodeNotFound)
	}

	// Symmetric adjacency insert; Add is a no-op when already present.
	// A self-loop inserts the node into its own set once.
	g.adjacency[u].Add(v)
	g.adjacency[v].Add(u)

	// One shared record per canonical pair: create on first declaration,
	// merge on re-declaration.
	key := pairKey(u, v)
	if record, exists := g.edges[key]; exists {
		record.merge(attrs)
	} else {
		g.edges[key] = attrs.Clone()
	}

	return nil
}

// HasEdge reports whether the edge {u,v} exists. Symmetric: HasEdge(u,v)
// and HasEdge(v,u) always agree. Never fails — unknown or invalid
// identifiers simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	neighbors, exists := g.adjacency[u]

	return exists && neighbors.Contains(v)
}

// Edge returns the live shared attribute record of the edge {u,v};
// Edge(u,v) and Edge(v,u) return the same record. Callers may edit it in
// place, but must not hold it across removal of the edge.
//
// Returns ErrEdgeNotFound when no such edge exists.
// Complexity: O(1).
func (g *Graph) Edge(u, v NodeID) (Attrs, error) {
	if !g.HasEdge(u, v) {
		return nil, ErrEdgeNotFound
	}

	return g.edges[pairKey(u, v)], nil
}

// RemoveEdge deletes the edge {u,v}: both adjacency entries and the shared
// attribute record. The endpoints themselves stay in the graph.
//
// Returns ErrEdgeNotFound when no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v NodeID) error {
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}

	// Symmetric adjacency removal; for a self-loop both calls hit the
	// same set and the second is a no-op.
	g.adjacency[u].Remove(v)
	g.adjacency[v].Remove(u)
	delete(g.edges, pairKey(u, v))

	return nil
}
