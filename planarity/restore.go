package planarity

// RestoreOriginalVertexOrder maps a slice of arena vertex DFIs back to the
// caller's original vertex IDs, undoing the DFI renumbering dfsprep.Run
// performs (spec.md §6 footnote; SPEC_FULL.md supplemented feature 4).
//
// dfis values outside [0, r.DFS.N) are skipped rather than causing a panic,
// since FaceTraversal.Walk may legitimately pass through a root-copy index
// (>= N) that has no original-graph identity.
func RestoreOriginalVertexOrder(r *Result, dfis []int) []string {
	out := make([]string, 0, len(dfis))
	for _, dfi := range dfis {
		if dfi < 0 || dfi >= r.DFS.N {
			continue
		}
		out = append(out, r.DFS.VertexID[dfi])
	}
	return out
}
