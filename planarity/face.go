package planarity

import (
	"github.com/katalvlaran/planarity/pgraph"
)

// FaceTraversal is a read-only view over one face of a successfully
// embedded arena, walked by repeatedly taking the "next edge in rotation"
// step the embedding's rings encode (SPEC_FULL.md supplemented feature 3,
// grounded in gp_Embed's documented postcondition that the arena describes
// a combinatorial embedding with a well-defined face structure).
type FaceTraversal struct {
	a *pgraph.Arena
}

// NewFaceTraversal wraps a successfully embedded arena for face walking.
// Calling it on an arena from a non-embeddable Result produces undefined
// traversal results, since no consistent face structure exists.
func NewFaceTraversal(r *Result) *FaceTraversal {
	return &FaceTraversal{a: r.Arena}
}

// Walk returns the vertex DFIs encountered by walking the face incident to
// startArc, stepping to the next arc in the destination vertex's rotation
// after crossing each edge, until returning to startArc.
//
// Complexity: O(length of the face).
func (f *FaceTraversal) Walk(startArc int) []int {
	var face []int

	arc := startArc
	for {
		dest := f.a.Nodes[arc].V
		face = append(face, dest)

		twin := f.a.Twin(arc)
		arc = f.a.Nodes[twin].Link[1]
		if !f.a.IsArc(arc) {
			// The vertex slot closes its own ring; step past it.
			arc = f.a.Nodes[arc].Link[1]
		}

		if arc == startArc {
			break
		}
	}

	return face
}
