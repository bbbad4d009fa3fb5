// Package merge implements the bicomp-merge engine of spec.md §4.6: vertex
// merging and the on-demand flip (inversion) that keeps a merged bicomp's
// external face consistently oriented.
//
// Grounded in the original implementation's _MergeBicomps, _MergeVertex, and
// _InvertVertex (original_source/trunk/c/graphEmbed.c).
package merge

import (
	"github.com/katalvlaran/planarity/pgraph"
)

// MergeBicomps drains the arena's shared stack, splicing each popped
// (root-copy, vertex) pair together until empty. It is installed as the
// arena's MergeBicomps hook.
func MergeBicomps(a *pgraph.Arena, i, rootVertex, w, wPrevLink int) (pgraph.Outcome, error) {
	for len(a.Stack) > 0 {
		r := a.Stack[len(a.Stack)-1].Vertex
		rout := a.Stack[len(a.Stack)-1].LinkDir
		a.Stack = a.Stack[:len(a.Stack)-1]

		z := a.Stack[len(a.Stack)-1].Vertex
		zPrevLink := a.Stack[len(a.Stack)-1].LinkDir
		a.Stack = a.Stack[:len(a.Stack)-1]

		extFaceVertex := a.ExtFace[r].Link[1^rout]
		a.ExtFace[z].Link[zPrevLink] = extFaceVertex

		if a.ExtFace[extFaceVertex].Link[0] == a.ExtFace[extFaceVertex].Link[1] {
			dir := rout
			if a.ExtFace[extFaceVertex].InversionFlag {
				dir = 1 ^ dir
			}
			a.ExtFace[extFaceVertex].Link[dir] = z
		} else if a.ExtFace[extFaceVertex].Link[0] == r {
			a.ExtFace[extFaceVertex].Link[0] = z
		} else {
			a.ExtFace[extFaceVertex].Link[1] = z
		}

		if zPrevLink == rout {
			rout = 1 ^ zPrevLink
			if a.Nodes[r].Link[0] != a.Nodes[r].Link[1] {
				InvertVertex(a, r)
			}
			markDFSChildArcInverted(a, r)
		}

		childDFI := r - a.N
		a.VAttr[z].PertinentBicompList = a.Pertinent.Delete(a.VAttr[z].PertinentBicompList, childDFI)
		a.VAttr[z].SeparatedDFSChildList = a.Separated.Delete(a.VAttr[z].SeparatedDFSChildList, childDFI)

		MergeVertex(a, z, zPrevLink, r)
	}

	return pgraph.OK, nil
}

// markDFSChildArcInverted sets the EdgeFlagInverted bit on the single
// ArcDFSChild arc in root copy r's ring, recording that everything beneath
// r in the DFS tree must later be reported with reversed orientation
// (spec.md §4.7, consumed by postprocess.Orient).
func markDFSChildArcInverted(a *pgraph.Arena, r int) {
	start := a.Nodes[r].Link[0]
	for cur := start; ; cur = a.Nodes[cur].Link[0] {
		if a.Nodes[cur].Type == pgraph.ArcDFSChild {
			a.Nodes[cur].EdgeFlagInverted = true
			return
		}
		if !a.IsArc(cur) {
			return
		}
	}
}

// InvertVertex swaps v's own two ring links and the links of every arc in
// v's ring, plus v's external-face links, reversing v's local orientation
// in place.
//
// Grounded in _InvertVertex.
func InvertVertex(a *pgraph.Arena, v int) {
	j := v
	for {
		a.Nodes[j].Link[0], a.Nodes[j].Link[1] = a.Nodes[j].Link[1], a.Nodes[j].Link[0]
		j = a.Nodes[j].Link[0]
		if !a.IsArc(j) {
			break
		}
	}

	a.ExtFace[v].Link[0], a.ExtFace[v].Link[1] = a.ExtFace[v].Link[1], a.ExtFace[v].Link[0]
}

// MergeVertex folds root copy r's ring and every arc pointing at r into w:
// every arc in r's ring has its twin retargeted from r to w, then the
// whole ring is spliced into w's at wPrevLink in one boundary reconnect,
// preserving r's internal ring order. r is left defunct.
//
// Grounded in _MergeVertex.
func MergeVertex(a *pgraph.Arena, w, wPrevLink, r int) {
	for j := a.Nodes[r].Link[0]; j != r; j = a.Nodes[j].Link[0] {
		a.Nodes[a.Twin(j)].V = w
	}

	a.RingSpliceBefore(w, r, wPrevLink)

	a.Nodes[r].Link = [2]int{pgraph.None, pgraph.None}
}
