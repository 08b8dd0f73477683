// SPDX-License-Identifier: MIT
//
// File: nodes.go
// Role: Node lifecycle — insertion, lookup, removal.
// Policy:
//   - Validation precedes every mutation, so a rejected call leaves the
//     Graph untouched.
//   - AddNodesFrom is sequential and non-transactional on purpose; the
//     partial-application contract is documented and pinned by tests.

package graph

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// AddNode inserts a new node with the given identifier and initial
// attribute record. A nil attrs means an empty record; the container
// stores its own copy either way.
//
// Returns ErrInvalidID when id is not a kind-tagged identifier, and
// ErrDuplicateNode when a node with this identifier already exists
// (IntID(1) and StringID("1") are distinct and may coexist).
// Complexity: O(1) amortized plus O(len(attrs)) for the copy.
func (g *Graph) AddNode(id NodeID, attrs Attrs) error {
	// Validate the identifier kind before touching any state.
	if !id.Valid() {
		return ErrInvalidID
	}
	// Duplicate insertion is rejected, never merged.
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}

	// Store an owned copy of the record and a fresh neighbor set.
	g.nodes[id] = attrs.Clone()
	g.adjacency[id] = mapset.NewThreadUnsafeSet[NodeID]()

	return nil
}

// AddNodesFrom applies AddNode to each item in sequence and stops at the
// first failure, returning that item's error.
//
// Caveat: the call is NOT transactional. Items preceding the failing item
// remain added; there is no rollback. Callers relying on bulk insertion
// being all-or-nothing must validate the items themselves first.
// Complexity: O(len(items)) amortized.
func (g *Graph) AddNodesFrom(items []NodeItem) error {
	for _, it := range items {
		if err := g.AddNode(it.ID, it.Attrs); err != nil {
			return fmt.Errorf("graph: add node %s: %w", it.ID, err)
		}
	}

	return nil
}

// HasNode reports whether a node with the given identifier exists.
// Never fails; an invalid identifier simply reports false.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, exists := g.nodes[id]

	return exists
}

// Node returns the live attribute record of the given node. The record is
// owned by the container; callers may edit it in place, but must not hold
// it across a RemoveNode of the same identifier.
//
// Returns ErrNodeNotFound when the node does not exist.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Attrs, error) {
	attrs, exists := g.nodes[id]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return attrs, nil
}

// RemoveNode deletes the node, every edge incident to it, and the attribute
// records of all of them. For each current neighbor the reciprocal
// adjacency entry is removed, so the symmetry invariant holds afterwards.
//
// Returns ErrNodeNotFound when the node does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id NodeID) error {
	neighbors, exists := g.adjacency[id]
	if !exists {
		return ErrNodeNotFound
	}

	// Snapshot the neighbor set before tearing it down; removal below
	// mutates adjacency entries.
	for _, nb := range neighbors.ToSlice() {
		// Drop the shared edge record for {id, nb}.
		delete(g.edges, pairKey(id, nb))
		// Drop the reciprocal adjacency entry. A self-loop has no
		// reciprocal set beyond the one being deleted wholesale.
		if nb != id {
			g.adjacency[nb].Remove(id)
		}
	}

	// Drop the node's own adjacency entry and attribute record.
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}
