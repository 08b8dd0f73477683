// SPDX-License-Identifier: MIT
// Package graph_test holds shared fixtures for the graph contract tests.
//
// Purpose:
//   - Centralize the identifiers and attribute records used across tests.
//   - Keep test bodies free of repeated constructor noise.

package graph_test

import (
	"testing"

	"github.com/katalvlaran/strictgraph/graph"
	"github.com/stretchr/testify/require"
)

// Common identifiers used across tests. node1 and textual1 deliberately
// share the surface form "1" to exercise kind-tagged distinction.
var (
	node1 = graph.IntID(1)
	node2 = graph.IntID(2)
	node3 = graph.IntID(3)

	nodeA = graph.StringID("A")
	nodeB = graph.StringID("B")
	nodeC = graph.StringID("C")

	textual1 = graph.StringID("1")

	nodeMissing = graph.StringID("missing")
	nodeInvalid graph.NodeID // zero value, invalid by contract
)

// Common attribute records. Tests must treat these as templates: the
// container copies on ingest, so sharing them across tests is safe.
var (
	attrsWeight5 = graph.Attrs{"weight": graph.Int(5)}
	attrsA1      = graph.Attrs{"a": graph.Int(1)}
	attrsB2      = graph.Attrs{"b": graph.Int(2)}
)

// seed adds the given nodes with empty records, failing the test on any error.
func seed(t *testing.T, g *graph.Graph, ids ...graph.NodeID) {
	t.Helper()

	for _, id := range ids {
		require.NoError(t, g.AddNode(id, nil), "seed AddNode(%s)", id)
	}
}

// newTriangle returns a graph with nodes A, B, C and edges A-B, B-C, C-A.
func newTriangle(t *testing.T) *graph.Graph {
	t.Helper()

	g := graph.New()
	seed(t, g, nodeA, nodeB, nodeC)
	require.NoError(t, g.AddEdge(nodeA, nodeB, nil))
	require.NoError(t, g.AddEdge(nodeB, nodeC, nil))
	require.NoError(t, g.AddEdge(nodeC, nodeA, nil))

	return g
}
