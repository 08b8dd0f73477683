// Package strictgraph is a small, strict, in-memory undirected graph
// container: explicit node lifecycle, typed attributes, symmetric edges.
//
// 🚀 What is strictgraph?
//
//	A single-purpose library that does one thing carefully:
//		• Explicit lifecycle: nodes are created only by AddNode — edges never
//		  auto-create their endpoints
//		• Kind-tagged identifiers: integral and textual IDs coexist without
//		  collision (IntID(1) and StringID("1") are distinct nodes)
//		• Typed attributes: per-node and per-edge records mapping string keys
//		  to a small tagged value union (bool / int64 / float64 / string)
//		• Symmetric edges: (u,v) and (v,u) resolve to one shared attribute
//		  record through a canonical, allocation-free pair key
//		• Self-loops permitted; duplicates, direction and parallel edges not
//
// ✨ Why choose strictgraph?
//
//   - Predictable – every mutation either fully applies or leaves the graph
//     untouched (sentinel errors, no partial writes per operation)
//   - Deterministic – Nodes(), Edges() and Neighbors() return sorted results
//   - Pure Go – no cgo, no reflection, no hidden I/O
//
// Everything lives in one subpackage:
//
//	graph/ — the Graph container, NodeID union, Value union, Attrs records
//
// Quick ASCII example:
//
//	    1───"hub"
//	    │     │
//	    2─────┘
//
//	three nodes (two integral, one textual) and three undirected edges.
//
// The container performs no internal locking: confine an instance to one
// goroutine, or guard every call with a caller-held mutex.
//
//	go get github.com/katalvlaran/strictgraph/graph
package strictgraph
