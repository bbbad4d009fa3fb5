package walk

import (
	"github.com/katalvlaran/planarity/pgraph"
)

// Walkup marks every ancestor bicomp root on the tree-path between the
// target of forward arc j and the current iteration vertex i as pertinent,
// classifying each newly-registered child bicomp as externally or
// internally active in its parent's PertinentBicompList (spec.md §4.4).
//
// Two cursors (Zig, Zag) race up the external faces of intervening bicomps
// from both sides at once; whichever reaches a root copy first hops to that
// bicomp's DFS parent and both cursors reset there, so the pair converges
// on i in work proportional to the path length, not the whole arena.
//
// Complexity: amortized O(1) per call across a full Embed run (spec.md §4.4).
func Walkup(a *pgraph.Arena, i, j int) {
	w := a.Nodes[j].V
	a.VAttr[w].AdjacentTo = j

	zig, zag := w, w
	zigPrevLink, zagPrevLink := 1, 0

	for zig != i {
		if a.Nodes[zig].Visited == i || a.Nodes[zag].Visited == i {
			break
		}
		a.Nodes[zig].Visited = i
		a.Nodes[zag].Visited = i

		root := pgraph.None
		switch {
		case a.IsRootCopy(zig):
			root = zig
		case a.IsRootCopy(zag):
			root = zag
		}

		if root != pgraph.None {
			childDFI := root - a.N
			parentCopy := a.VAttr[childDFI].DFSParent

			if parentCopy != i {
				list := a.VAttr[parentCopy].PertinentBicompList
				if a.VAttr[childDFI].Lowpoint < i {
					list = a.Pertinent.Append(list, childDFI)
				} else {
					list = a.Pertinent.Prepend(list, childDFI)
				}
				a.VAttr[parentCopy].PertinentBicompList = list
			}

			zig, zag = parentCopy, parentCopy
			zigPrevLink, zagPrevLink = 1, 0
			continue
		}

		zig, zigPrevLink = advanceExternalFace(a, zig, zigPrevLink)
		zag, zagPrevLink = advanceExternalFace(a, zag, zagPrevLink)
	}
}

// advanceExternalFace steps one vertex along the external face away from
// prevLink and returns the new vertex and the link direction by which it
// was entered.
func advanceExternalFace(a *pgraph.Arena, v, prevLink int) (int, int) {
	next := a.ExtFace[v].Link[1^prevLink]
	newPrevLink := 1
	if a.ExtFace[next].Link[0] == v {
		newPrevLink = 0
	}
	return next, newPrevLink
}
