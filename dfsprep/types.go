// Package dfsprep computes the depth-first-search tree, DFI numbering,
// lowpoints, and least-ancestor values that spec.md §1 names as an external
// collaborator — "DFS tree construction and lowpoint computation (assumed
// available as a primitive)".
//
// It plays that primitive role for the planarity engine, adapted from the
// teacher library's dfs package: same traversal shape (pre-order discovery,
// post-order finish, context cancellation, full-forest coverage for
// disconnected graphs), extended to also produce the two numeric
// annotations the embedding arena's preprocessor needs per spec.md §3 and
// §4.3 (Lowpoint, leastAncestor) and the DFI renumbering the rest of the
// engine assumes ("vertices are stored sorted by DFI").
package dfsprep

import (
	"context"
	"errors"
)

// Sentinel errors for dfsprep operations.
var (
	// ErrGraphNil is returned when a nil *extgraph.Graph is passed to Run.
	ErrGraphNil = errors.New("dfsprep: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices; spec.md §6
	// requires N >= 1.
	ErrEmptyGraph = errors.New("dfsprep: graph has no vertices")
)

// NoParent is the DFSParent value for a DFS-tree root.
const NoParent = -1

// Options configures Run. The zero value is ready to use.
type Options struct {
	// Ctx allows cancellation of a long traversal; defaults to
	// context.Background() when nil.
	Ctx context.Context
}

// Option configures Options.
type Option func(*Options)

// WithContext returns an Option installing ctx for cancellation. A nil ctx
// is a no-op.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result captures a DFS forest over a graph's vertices, renumbered by
// discovery order (DFI).
//
// All slices are indexed by DFI (0..N-1), matching spec.md §3's convention
// that "vertices are stored sorted by DFI."
type Result struct {
	// N is the vertex count.
	N int

	// VertexID maps a DFI back to the caller's original vertex ID.
	VertexID []string

	// IndexOf maps a caller vertex ID to its DFI.
	IndexOf map[string]int

	// DFSParent[i] is the DFI of i's DFS-tree parent, or NoParent if i
	// roots a DFS tree (spec.md §3 Vertex attributes: DFSParent).
	DFSParent []int

	// Lowpoint[i] is the lowest DFI reachable from the subtree rooted at
	// i via at most one back edge (spec.md §3 Vertex attributes: Lowpoint).
	Lowpoint []int

	// LeastAncestor[i] is the lowest DFI of any proper ancestor of i
	// joined to i by a back edge, or i itself if there is no such edge
	// (spec.md §3 Vertex attributes: leastAncestor).
	LeastAncestor []int

	// Children[i] lists the DFIs of i's DFS-tree children, in discovery
	// order (not sorted by lowpoint; preprocess.Build sorts them into each
	// parent's separated-child list).
	Children [][]int

	// BackEdges lists, for each DFI, the DFIs of descendants reached by a
	// back edge rooted at that ancestor — i.e. BackEdges[i] holds every j
	// such that (i, j) is a back edge with i a proper ancestor of j. This
	// is the raw material preprocess.Build turns into forward-arc
	// lists once the arena exists.
	BackEdges [][]int
}
