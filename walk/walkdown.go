package walk

import (
	"github.com/katalvlaran/planarity/list"
	"github.com/katalvlaran/planarity/pgraph"
)

// Walkdown embeds every already-registered back edge reachable from
// rootVertex's bicomp, merging pertinent child bicomps onto the external
// face as it descends and short-circuiting past inactive vertices (spec.md
// §4.5).
//
// It dispatches three steps to the arena's installed hooks — MergeBicomps,
// EmbedBackEdgeToDescendant, HandleInactiveVertex — so an extension (an
// outerplanarity variant, a Kuratowski-aware variant) can override their
// bodies without touching this traversal.
//
// Grounded in the original implementation's _WalkDown
// (original_source/trunk/c/graphEmbed.c).
func Walkdown(a *pgraph.Arena, i, rootVertex int) (pgraph.Outcome, error) {
	for rootSide := 0; rootSide < 2; rootSide++ {
		w := a.ExtFace[rootVertex].Link[rootSide]
		wPrevLink := 1 ^ rootSide

		a.Stack = a.Stack[:0]

		for w != rootVertex {
			switch {
			case a.VAttr[w].AdjacentTo != pgraph.None:
				if len(a.Stack) > 0 {
					outcome, err := a.Hooks.MergeBicomps(a, i, rootVertex, w, wPrevLink)
					if outcome != pgraph.OK || err != nil {
						return outcome, err
					}
				}
				a.Hooks.EmbedBackEdgeToDescendant(a, rootSide, rootVertex, w, wPrevLink)
				a.VAttr[w].AdjacentTo = pgraph.None

			case a.VAttr[w].PertinentBicompList != list.None:
				a.Stack = append(a.Stack, pgraph.StackEntry{Vertex: w, LinkDir: wPrevLink})

				r := a.VAttr[w].PertinentBicompList + a.N
				x := a.ExtFace[r].Link[0]
				xPrevLink := 0
				if a.ExtFace[x].Link[1] == r {
					xPrevLink = 1
				}
				y := a.ExtFace[r].Link[1]
				yPrevLink := 1
				if a.ExtFace[y].Link[0] == r {
					yPrevLink = 0
				}

				if x == y && a.ExtFace[x].InversionFlag {
					xPrevLink, yPrevLink = 0, 1
				}

				var next int
				var nextPrevLink, rout int
				switch {
				case Status(a, x, i) == Internal:
					next, nextPrevLink, rout = x, xPrevLink, 0
				case Status(a, y, i) == Internal:
					next, nextPrevLink, rout = y, yPrevLink, 1
				case Pertinent(a, x):
					next, nextPrevLink, rout = x, xPrevLink, 0
				default:
					next, nextPrevLink, rout = y, yPrevLink, 1
				}

				a.Stack = append(a.Stack, pgraph.StackEntry{Vertex: r, LinkDir: rout})
				w, wPrevLink = next, nextPrevLink

			case Status(a, w, i) == Inactive:
				if err := a.Hooks.HandleInactiveVertex(a, rootVertex, &w, &wPrevLink); err != nil {
					return pgraph.Failure, err
				}

			default:
				// w is externally active: stop descending on this side.
				goto stopped
			}
		}
	stopped:

		if len(a.Stack) > 0 {
			return pgraph.NonEmbeddable, nil
		}

		a.ExtFace[rootVertex].Link[rootSide] = w
		a.ExtFace[w].Link[wPrevLink] = rootVertex

		if a.ExtFace[w].Link[0] == a.ExtFace[w].Link[1] && wPrevLink == rootSide {
			a.ExtFace[w].InversionFlag = true
		} else {
			a.ExtFace[w].InversionFlag = false
		}

		if w == rootVertex {
			break
		}
	}

	return pgraph.OK, nil
}

// NextOnExternalFace returns the external-face neighbor reached by leaving
// cur via the link opposite prevLink, along with the link direction by
// which that neighbor was entered.
//
// Grounded in _GetNextVertexOnExternalFace.
func NextOnExternalFace(a *pgraph.Arena, cur, prevLink int) (int, int) {
	return advanceExternalFaceOnExtFace(a, cur, prevLink)
}

func advanceExternalFaceOnExtFace(a *pgraph.Arena, cur, prevLink int) (int, int) {
	next := a.ExtFace[cur].Link[1^prevLink]
	newPrevLink := 1
	if a.ExtFace[next].Link[0] == cur {
		newPrevLink = 0
	}
	// A singleton bicomp (both external-face links equal) behaves like a
	// 2-cycle: keep the caller's previous link direction instead of the
	// freshly computed one.
	if a.ExtFace[next].Link[0] == a.ExtFace[next].Link[1] {
		return next, prevLink
	}
	return next, newPrevLink
}
