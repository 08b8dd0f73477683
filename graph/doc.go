// Package graph provides a strict, in-memory undirected Graph container
// with explicit node lifecycle and typed attribute records.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, simple edges with self-loops:
//     one attribute record per unordered pair {u,v}
//   - Kind-tagged node identifiers (NodeID):
//     IntID(1) and StringID("1") are distinct and never collide
//   - Typed attribute records (Attrs):
//     map[string]Value, where Value is a tagged union over
//     bool / int64 / float64 / string
//   - No auto-vivification:
//     AddEdge demands both endpoints already exist — it never creates nodes
//   - Constant-time edge operations via a canonical pair key:
//     edges[pairKey(u,v)] = record, with pairKey(u,v) == pairKey(v,u)
//
// Why use graph.Graph?
//
//   - Strictness as a feature — duplicate AddNode, a missing endpoint, or a
//     lookup of an absent edge each return a distinct sentinel error instead
//     of silently mutating or inventing state.
//   - Deterministic iteration — Nodes(), Edges(), Neighbors() return results
//     sorted by the total NodeID ordering. Order is a convenience for tests
//     and diffing, not part of the contract.
//   - Symmetric edge identity — AddEdge(u,v), Edge(v,u) and RemoveEdge(v,u)
//     all address the same stored record.
//   - Merge-on-redeclare — re-adding an existing edge merges the supplied
//     attributes key-by-key (last write wins) into the stored record.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(id NodeID, attrs Attrs) error      // O(1)
//	AddNodesFrom(items []NodeItem) error       // O(len(items)); partial on failure
//	HasNode(id NodeID) bool                    // O(1)
//	Node(id NodeID) (Attrs, error)             // O(1), live record
//	RemoveNode(id NodeID) error                // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID, attrs Attrs) error    // O(1) + O(len(attrs)) merge
//	HasEdge(u, v NodeID) bool                  // O(1)
//	Edge(u, v NodeID) (Attrs, error)           // O(1), live shared record
//	RemoveEdge(u, v NodeID) error              // O(1)
//
//	// Query
//	Neighbors(id NodeID) ([]NodeID, error)     // O(d log d), sorted
//	Degree(id NodeID) (int, error)             // O(1)
//	Nodes() []NodeID                           // O(V log V), sorted
//	Edges() []EdgeRecord                       // O(E log E), sorted by pair key
//	NodeCount() int                            // O(1)
//	EdgeCount() int                            // O(1)
//
//	// Maintenance
//	Clear()                                    // O(1): drop all state
//	Clone() *Graph                             // O(V+E): deep copy
//
// Error contract (sentinels, matched with errors.Is):
//
//	ErrInvalidID      - identifier is neither integral nor textual (zero NodeID)
//	ErrDuplicateNode  - AddNode for an identifier that already exists
//	ErrNodeNotFound   - operation references an absent node; AddEdge wraps it
//	                    with the offending endpoint (u is checked before v)
//	ErrEdgeNotFound   - Edge/RemoveEdge for a pair with no stored edge
//
// Every rejected operation leaves the Graph unchanged. The one documented
// exception is AddNodesFrom: items preceding the failing item remain added.
//
// Concurrency: none. The container holds no locks; all operations are
// synchronous and run to completion. Concurrent mutation is undefined
// behavior — confine the Graph to one goroutine or serialize access with a
// caller-held mutex.
package graph
