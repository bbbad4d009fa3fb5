package pgraph

// ArcType classifies an arc (half-edge) within its owning vertex's ring.
// Only arc slots carry a meaningful Type; vertex and root-copy slots leave
// it at its zero value.
type ArcType uint8

const (
	// ArcDFSParent marks the arc from a non-root vertex to its DFS-tree
	// parent.
	ArcDFSParent ArcType = iota

	// ArcDFSChild marks the twin of an ArcDFSParent arc: the arc from a
	// parent (or its root copy) to a DFS-tree child.
	ArcDFSChild

	// ArcBack marks the arc from a descendant up to a proper ancestor,
	// corresponding to an as-yet-unembedded cycle edge.
	ArcBack

	// ArcForward marks the twin of an ArcBack arc: the arc from an
	// ancestor down to the descendant, held in that ancestor's
	// fwdArcList until Walkdown embeds it.
	ArcForward
)

// String renders the arc type for diagnostics.
func (t ArcType) String() string {
	switch t {
	case ArcDFSParent:
		return "DFSParent"
	case ArcDFSChild:
		return "DFSChild"
	case ArcBack:
		return "Back"
	case ArcForward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// Node is the arena's uniform record: the same layout backs vertex slots,
// root-copy slots, and arc slots (spec.md §3 Node record). Fields are
// semantic, not positional — V, Type, and EdgeFlagInverted are meaningful
// only on arc slots.
type Node struct {
	// Link holds the node's two ring neighbors: for a vertex/root-copy
	// slot, the incident-edge ring; for an arc slot, its position in one
	// vertex's ring.
	Link [2]int

	// V is the destination vertex index of an arc, in the current graph
	// state. Rewritten during merges (merge.MergeVertex retargets every arc
	// that pointed at the merged root copy).
	V int

	// Type classifies an arc; meaningless on vertex/root-copy slots.
	Type ArcType

	// Visited is the ephemeral "processed in iteration I" stamp
	// (spec.md §3 invariant 5). A vertex/root-copy slot's Visited equals
	// the current iteration index I iff some Walkup in iteration I
	// traversed it.
	Visited int

	// EdgeFlagInverted is a pending-flip sign, meaningful only on
	// ArcDFSChild arcs, consumed by postprocess.Orient.
	EdgeFlagInverted bool
}

// VertexAttr holds the per-vertex side-table fields of spec.md §3 that do
// not fit the uniform Node layout (they apply only to vertex/root-copy
// slots, never to arcs).
type VertexAttr struct {
	// DFSParent is the DFI of this vertex's DFS-tree parent, or None for
	// a DFS root. For a root copy at N+c, this mirrors DFSParent[c].
	DFSParent int

	// Lowpoint is the lowest DFI reachable from this vertex's subtree via
	// at most one back edge.
	Lowpoint int

	// LeastAncestor is the lowest DFI of a proper ancestor joined to this
	// vertex by a back edge, or the vertex's own DFI if none.
	LeastAncestor int

	// FwdArcList heads a circular list (in the Forward list collection)
	// of forward arcs from this vertex to descendants not yet embedded.
	FwdArcList int

	// PertinentBicompList heads a list (in the Pertinent list collection)
	// of DFS-child IDs naming pertinent child bicomps rooted at N+child.
	PertinentBicompList int

	// SeparatedDFSChildList heads a list (in the Separated list
	// collection) of DFS-child IDs, sorted non-decreasing by Lowpoint.
	SeparatedDFSChildList int

	// AdjacentTo is, during iteration I, the forward-arc index from I to
	// this vertex if it is the target of an unembedded back edge from I;
	// otherwise None.
	AdjacentTo int
}

// ExtFaceEntry is the external-face side-table entry of spec.md §3: the two
// neighbors of a vertex on the current external face of its bicomp, plus
// the inversion flag used by two-vertex bicomps.
type ExtFaceEntry struct {
	// Link gives the two external-face neighbors, regardless of the
	// vertex's internal ring orientation (spec.md §3 invariant 6).
	Link [2]int

	// InversionFlag records, for a two-vertex bicomp (Link[0] == Link[1]),
	// whether a later descent must interpret this vertex's orientation as
	// flipped relative to its bicomp root (spec.md §4.5 step 4, §9 Open
	// Questions).
	InversionFlag bool
}

// StackEntry is one slot of the shared LIFO used by Walkdown and the merge
// engine: a (vertex, link-direction) pair, pushed two at a time.
type StackEntry struct {
	Vertex  int
	LinkDir int
}
