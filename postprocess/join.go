package postprocess

import (
	"github.com/katalvlaran/planarity/merge"
	"github.com/katalvlaran/planarity/pgraph"
)

// Join merges every still-live root copy into its DFS parent, collapsing
// the last separated bicomps back into the single embedding that covers
// the whole DFS tree. No flip decision is needed here — by the time Join
// runs, Orient has already resolved every bicomp's final orientation.
//
// Grounded in _JoinBicomps.
func Join(a *pgraph.Arena) {
	for r := a.N; r < a.EdgeOffset; r++ {
		if a.Nodes[r].Link[0] == pgraph.None {
			continue
		}
		parent := a.VAttr[r-a.N].DFSParent
		merge.MergeVertex(a, parent, 0, r)
	}
}
