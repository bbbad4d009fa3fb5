package walk

import (
	"github.com/katalvlaran/planarity/pgraph"
)

// EmbedBackEdgeToDescendant splices the back edge recorded at w (via
// AdjacentTo) into the embedding, installing it as the new external-face
// boundary on rootVertex's rootSide.
//
// Grounded in _EmbedBackEdgeToDescendant.
func EmbedBackEdgeToDescendant(a *pgraph.Arena, rootSide, rootVertex, w, wPrevLink int) {
	fwdArc := a.VAttr[w].AdjacentTo
	backArc := a.Twin(fwdArc)
	parentCopy := a.VAttr[rootVertex-a.N].DFSParent

	a.VAttr[parentCopy].FwdArcList = a.Forward.Delete(a.VAttr[parentCopy].FwdArcList, fwdArc)

	// fwdArc and backArc have never occupied a ring position before now
	// (preprocess.Build leaves both out of every vertex ring); RingInsertBefore
	// gives each its first and only ring placement.
	a.RingInsertBefore(rootVertex, fwdArc, rootSide)

	a.RingInsertBefore(w, backArc, wPrevLink)
	a.Nodes[backArc].V = rootVertex

	a.ExtFace[rootVertex].Link[rootSide] = w
	a.ExtFace[w].Link[wPrevLink] = rootVertex
}

// HandleInactiveVertex advances past an inactive vertex during Walkdown's
// short-circuit step, replacing it with its own external-face neighbor.
//
// bicompRoot is accepted only to match the extension-hook signature; the
// default body never consults it (spec.md §9 Open Questions) — it exists
// so an override (e.g. an outerplanarity variant) can make the decision
// root-relative without changing Walkdown's call site.
//
// Grounded in _HandleInactiveVertex.
func HandleInactiveVertex(a *pgraph.Arena, bicompRoot int, w, wPrevLink *int) error {
	next, nextPrevLink := NextOnExternalFace(a, *w, *wPrevLink)
	*w = next
	*wPrevLink = nextPrevLink
	return nil
}
