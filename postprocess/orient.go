// Package postprocess implements the two final passes of a successful
// embedding (spec.md §4.7): propagating each bicomp's accumulated
// orientation-inversion bits down its DFS-child tree, then joining every
// remaining separated bicomp back onto its parent.
//
// Grounded in the original implementation's _OrientVerticesInEmbedding,
// _OrientVerticesInBicomp, and _JoinBicomps
// (original_source/trunk/c/graphEmbed.c).
package postprocess

import (
	"github.com/katalvlaran/planarity/merge"
	"github.com/katalvlaran/planarity/pgraph"
)

// orientFrame is the (vertex, accumulated-inversion) pair driven through
// OrientVerticesInBicomp's explicit stack.
type orientFrame struct {
	vertex   int
	inverted bool
}

// Orient walks every live root copy's bicomp, flipping each vertex whose
// accumulated inversion bit is set and propagating that bit to its DFS
// children (XORed with each child arc's own EdgeFlagInverted).
//
// When preserveSigns is false (the normal mode, used once per Embed call),
// every consumed EdgeFlagInverted bit is cleared as it is read — the
// signs existed only to be consumed exactly once. Passing true leaves them
// intact, which a caller needing to re-run orientation over the same arena
// (SPEC_FULL.md supplemented feature 2) can use to get a repeatable result.
func Orient(a *pgraph.Arena, preserveSigns bool) {
	for r := a.N; r < a.EdgeOffset; r++ {
		if a.Nodes[r].Link[0] == pgraph.None {
			continue // defunct: already merged away
		}
		orientBicomp(a, r, preserveSigns)
	}
}

func orientBicomp(a *pgraph.Arena, bicompRoot int, preserveSigns bool) {
	stack := []orientFrame{{vertex: bicompRoot, inverted: false}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.inverted {
			merge.InvertVertex(a, frame.vertex)
		}

		for j := a.Nodes[frame.vertex].Link[0]; a.IsArc(j); j = a.Nodes[j].Link[0] {
			if a.Nodes[j].Type != pgraph.ArcDFSChild {
				continue
			}
			childInverted := frame.inverted != a.Nodes[j].EdgeFlagInverted
			stack = append(stack, orientFrame{vertex: a.Nodes[j].V, inverted: childInverted})
			if !preserveSigns {
				a.Nodes[j].EdgeFlagInverted = false
			}
		}
	}
}
