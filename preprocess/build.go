// Package preprocess turns a dfsprep.Result into a freshly populated
// pgraph.Arena: it allocates every tree and back/forward arc, builds the
// sorted separated-DFS-child lists, and constructs the initial one-tree-edge
// embedding with root copies (spec.md §4.3).
//
// Grounded in the original implementation's _CreateSortedSeparatedDFSChildLists,
// _CreateFwdArcLists, and _CreateDFSTreeEmbedding
// (original_source/trunk/c/graphEmbed.c). The ring-splice bookkeeping those
// three C routines perform by scanning for arcs of a given type is replaced
// here with direct arc-index tracking recorded during allocation — the
// arena owns no pointers to search, so Build never needs to scan a ring to
// find "the" DFSParent arc of a vertex; it already knows the index.
package preprocess

import (
	"errors"

	"github.com/katalvlaran/planarity/dfsprep"
	"github.com/katalvlaran/planarity/list"
	"github.com/katalvlaran/planarity/pgraph"
)

// ErrDFSResultNil is returned when Build is called with a nil dfsprep.Result.
var ErrDFSResultNil = errors.New("preprocess: dfs result is nil")

// Build allocates and populates an Arena for the given DFS forest.
//
// Complexity: O(N + E).
func Build(dfs *dfsprep.Result) (*pgraph.Arena, error) {
	if dfs == nil {
		return nil, ErrDFSResultNil
	}

	edgeCount := countEdges(dfs)
	a := pgraph.NewArena(dfs.N, edgeCount)

	for i := 0; i < dfs.N; i++ {
		a.VAttr[i].DFSParent = dfs.DFSParent[i]
		a.VAttr[i].Lowpoint = dfs.Lowpoint[i]
		a.VAttr[i].LeastAncestor = dfs.LeastAncestor[i]
		a.VAttr[a.RootCopyOf(i)].DFSParent = dfs.DFSParent[i]
	}

	childParentArc := make([]int, dfs.N)
	for i := range childParentArc {
		childParentArc[i] = pgraph.None
	}

	buildTreeArcs(a, dfs, childParentArc)
	buildBackForwardArcs(a, dfs)
	buildSortedSeparatedChildLists(a, dfs)
	createDFSTreeEmbedding(a, dfs, childParentArc)

	return a, nil
}

func countEdges(dfs *dfsprep.Result) int {
	n := 0
	for i := 0; i < dfs.N; i++ {
		if dfs.DFSParent[i] != dfsprep.NoParent {
			n++
		}
		n += len(dfs.BackEdges[i])
	}
	return n
}

// buildTreeArcs allocates one twin arc pair per DFS-tree edge and appends
// both halves into their endpoints' general rings (spec.md §3: every
// non-root vertex carries exactly one ArcDFSParent arc; every vertex
// carries one ArcDFSChild arc per tree child).
func buildTreeArcs(a *pgraph.Arena, dfs *dfsprep.Result, childParentArc []int) {
	for c := 0; c < dfs.N; c++ {
		p := dfs.DFSParent[c]
		if p == dfsprep.NoParent {
			continue
		}

		arcC, arcP := a.AllocEdge(c, p)
		a.Nodes[arcC].Type = pgraph.ArcDFSParent
		a.Nodes[arcP].Type = pgraph.ArcDFSChild
		a.RingAppend(c, arcC)
		a.RingAppend(p, arcP)

		childParentArc[c] = arcC
	}
}

// buildBackForwardArcs allocates one twin arc pair per back edge. The back
// arc (at the descendant) and the forward arc (at the ancestor) are never
// appended to a vertex ring: a back arc is inserted into its destination's
// ring only when walk.EmbedBackEdgeToDescendant embeds it, and a forward
// arc lives exclusively in its ancestor's FwdArcList until then (spec.md
// §4.3, §4.5).
func buildBackForwardArcs(a *pgraph.Arena, dfs *dfsprep.Result) {
	for ancestor := 0; ancestor < dfs.N; ancestor++ {
		for _, descendant := range dfs.BackEdges[ancestor] {
			arcAtDescendant, arcAtAncestor := a.AllocEdge(descendant, ancestor)
			a.Nodes[arcAtDescendant].Type = pgraph.ArcBack
			a.Nodes[arcAtAncestor].Type = pgraph.ArcForward

			a.VAttr[ancestor].FwdArcList = a.Forward.Append(a.VAttr[ancestor].FwdArcList, arcAtAncestor)
		}
	}
}

// buildSortedSeparatedChildLists bucket-sorts every vertex by Lowpoint and
// appends each into its parent's SeparatedDFSChildList in ascending-lowpoint
// order, in O(N) total (spec.md §4.3; grounded in
// _CreateSortedSeparatedDFSChildLists).
func buildSortedSeparatedChildLists(a *pgraph.Arena, dfs *dfsprep.Result) {
	buckets := list.NewCollection(dfs.N)
	bucketHead := make([]int, dfs.N)
	for i := range bucketHead {
		bucketHead[i] = list.None
	}

	for i := 0; i < dfs.N; i++ {
		lp := dfs.Lowpoint[i]
		bucketHead[lp] = buckets.Append(bucketHead[lp], i)
	}

	for lp := 0; lp < dfs.N; lp++ {
		head := bucketHead[lp]
		for cur := head; cur != list.None; cur = buckets.Next(head, cur) {
			p := dfs.DFSParent[cur]
			if p == dfsprep.NoParent {
				continue
			}
			a.VAttr[p].SeparatedDFSChildList = a.Separated.Append(a.VAttr[p].SeparatedDFSChildList, cur)
		}
	}
}

// createDFSTreeEmbedding materializes the initial embedding: every tree
// edge (p, c) becomes its own trivial bicomp, represented by c's ring
// holding a single arc to c's root copy R = N+c, and R's ring holding the
// twin arc back to c (spec.md §4.3).
//
// Processing proceeds from the highest DFI down to the lowest so that, by
// the time a vertex's own parent-arc is relocated, every arc pointing to
// one of its children has already been spliced out of its ring by that
// child's own turn — leaving exactly one arc (or none, for a DFS root) in
// its general ring when this function reaches it.
func createDFSTreeEmbedding(a *pgraph.Arena, dfs *dfsprep.Result, childParentArc []int) {
	for c := dfs.N - 1; c >= 0; c-- {
		if dfs.DFSParent[c] == dfsprep.NoParent {
			continue
		}

		arcC := childParentArc[c]
		arcP := a.Twin(arcC)
		root := a.RootCopyOf(c)

		a.RingUnlink(arcP)
		a.Nodes[arcC].V = root
		a.RingAppend(root, arcP)

		a.ExtFace[root].Link = [2]int{c, c}
		a.ExtFace[c].Link = [2]int{root, root}
	}
}
