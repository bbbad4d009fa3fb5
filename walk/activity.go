// Package walk implements Walkup and Walkdown (spec.md §4.4–4.5): ancestor
// marking and pertinent-bicomp registration, and the back-edge embedding
// pass with its bicomp-merge and external-face short-circuit steps.
//
// Grounded in the original implementation's _WalkUp, _WalkDown,
// _HandleInactiveVertex, and _EmbedBackEdgeToDescendant
// (original_source/trunk/c/graphEmbed.c).
package walk

import (
	"github.com/katalvlaran/planarity/list"
	"github.com/katalvlaran/planarity/pgraph"
)

// ActivityStatus classifies a vertex relative to the current iteration
// index I (spec.md §4.4).
type ActivityStatus int

const (
	// Inactive: the vertex is neither pertinent nor externally active.
	Inactive ActivityStatus = iota

	// Internal: the vertex is pertinent but not externally active.
	Internal

	// External: the vertex has an unembedded edge reaching an ancestor
	// with DFI < I, either directly (LeastAncestor) or through its
	// first separated child's subtree (Lowpoint).
	External
)

// Pertinent reports whether w has a pending back edge to the current
// iteration vertex (AdjacentTo) or an unprocessed pertinent child bicomp.
func Pertinent(a *pgraph.Arena, w int) bool {
	return a.VAttr[w].AdjacentTo != pgraph.None || a.VAttr[w].PertinentBicompList != list.None
}

// ExternallyActive reports whether w still has a path to a proper ancestor
// with DFI strictly less than i, via its own least ancestor or via the
// lowpoint of its first (lowest-lowpoint) separated DFS child.
func ExternallyActive(a *pgraph.Arena, w, i int) bool {
	if a.VAttr[w].LeastAncestor < i {
		return true
	}

	head := a.VAttr[w].SeparatedDFSChildList
	if head == list.None {
		return false
	}

	return a.VAttr[head].Lowpoint < i
}

// Status classifies w at iteration i.
func Status(a *pgraph.Arena, w, i int) ActivityStatus {
	if ExternallyActive(a, w, i) {
		return External
	}
	if Pertinent(a, w) {
		return Internal
	}
	return Inactive
}
