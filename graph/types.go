// SPDX-License-Identifier: MIT
//
// Package graph declares the central Graph container, its sentinel errors,
// and the New constructor.
//
// The container holds three coupled stores — node records, edge records,
// and the adjacency relation — and every mutating method keeps them
// consistent: an edge can only reference nodes present in the node store,
// and for every stored edge {u,v} each endpoint appears in the other's
// neighbor set.
//
// Errors:
//
//	ErrInvalidID     - identifier is neither integral nor textual.
//	ErrDuplicateNode - AddNode with an identifier that already exists.
//	ErrNodeNotFound  - referenced node does not exist.
//	ErrEdgeNotFound  - referenced edge does not exist.

package graph

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidID indicates a NodeID that is neither integral nor textual
	// (typically the zero NodeID).
	ErrInvalidID = errors.New("graph: invalid node identifier")

	// ErrDuplicateNode indicates AddNode was called for an existing identifier.
	ErrDuplicateNode = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	// AddEdge wraps it with the offending endpoint; match with errors.Is.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// NodeItem pairs an identifier with its initial attribute record for bulk
// insertion via AddNodesFrom. A nil Attrs means an empty record.
type NodeItem struct {
	ID    NodeID
	Attrs Attrs
}

// EdgeRecord is one stored edge as reported by Edges: the canonical
// endpoints (U ordered before V) and the live shared attribute record.
type EdgeRecord struct {
	U, V  NodeID
	Attrs Attrs
}

// Graph is a strict, in-memory, undirected simple graph with self-loops.
//
// State is three coupled maps: nodes (identifier → owned attribute record,
// doubling as the node set), edges (canonical pair key → owned shared
// attribute record), and adjacency (identifier → neighbor set). Nodes exist
// only through AddNode — no operation creates one implicitly.
//
// The zero value is not ready for use; call New. Graph performs no internal
// locking: concurrent mutation must be serialized by the caller.
type Graph struct {
	// nodes is both the node set and the node attribute store.
	// Every record is non-nil, owned by the container.
	nodes map[NodeID]Attrs

	// edges maps the canonical unordered pair to its shared record, so
	// (u,v) and (v,u) observe the same attributes.
	edges map[edgeKey]Attrs

	// adjacency holds each node's neighbor set; kept symmetric with edges
	// on every mutation. A self-loop puts the node in its own set once.
	adjacency map[NodeID]mapset.Set[NodeID]
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]Attrs),
		edges:     make(map[edgeKey]Attrs),
		adjacency: make(map[NodeID]mapset.Set[NodeID]),
	}
}
