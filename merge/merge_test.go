package merge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/merge"
	"github.com/katalvlaran/planarity/pgraph"
)

func TestInvertVertexSwapsLinks(t *testing.T) {
	a := pgraph.NewArena(2, 2)
	arc1, _ := a.AllocEdge(0, 1)
	arc2, _ := a.AllocEdge(0, 1)

	a.RingAppend(0, arc1)
	a.RingAppend(0, arc2)
	a.ExtFace[0].Link = [2]int{1, 2}

	before0, before1 := a.Nodes[0].Link[0], a.Nodes[0].Link[1]

	merge.InvertVertex(a, 0)

	require.Equal(t, before1, a.Nodes[0].Link[0])
	require.Equal(t, before0, a.Nodes[0].Link[1])
	require.Equal(t, 2, a.ExtFace[0].Link[0])
	require.Equal(t, 1, a.ExtFace[0].Link[1])
}

func TestMergeVertexRetargetsTwinsAndDefunctsRoot(t *testing.T) {
	a := pgraph.NewArena(3, 3)
	root := a.RootCopyOf(1)

	arcAtRoot, arcAtOther := a.AllocEdge(root, 2)
	a.RingAppend(root, arcAtRoot)
	a.RingAppend(2, arcAtOther)

	merge.MergeVertex(a, 0, 0, root)

	require.Equal(t, 0, a.Nodes[arcAtOther].V)
	require.Equal(t, pgraph.None, a.Nodes[root].Link[0])
	require.Equal(t, pgraph.None, a.Nodes[root].Link[1])
}

// TestMergeVertexPreservesRingOrder covers a root copy with three incident
// arcs, the case a single-element splice never exercises: root's ring
// order must reappear intact on w's wPrevLink side, threaded in with a
// single boundary reconnect rather than reversed by a naive per-arc
// reinsertion loop.
func TestMergeVertexPreservesRingOrder(t *testing.T) {
	a := pgraph.NewArena(5, 5)
	root := a.RootCopyOf(1)

	arcAtRoot1, _ := a.AllocEdge(root, 2)
	arcAtRoot2, _ := a.AllocEdge(root, 3)
	arcAtRoot3, _ := a.AllocEdge(root, 4)
	a.RingAppend(root, arcAtRoot1)
	a.RingAppend(root, arcAtRoot2)
	a.RingAppend(root, arcAtRoot3)

	w := 0
	existingArc, _ := a.AllocEdge(w, 2)
	a.RingAppend(w, existingArc)

	merge.MergeVertex(a, w, 1, root)

	var order []int
	start := a.Nodes[w].Link[1]
	for cur := start; ; cur = a.Nodes[cur].Link[1] {
		order = append(order, cur)
		if cur == a.Nodes[w].Link[0] {
			break
		}
	}

	require.Equal(t, []int{arcAtRoot1, arcAtRoot2, arcAtRoot3, existingArc}, order)
	require.Equal(t, pgraph.None, a.Nodes[root].Link[0])
	require.Equal(t, pgraph.None, a.Nodes[root].Link[1])
}
