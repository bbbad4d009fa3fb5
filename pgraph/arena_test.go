package pgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/pgraph"
)

func TestNewArenaLayout(t *testing.T) {
	a := pgraph.NewArena(4, 6)

	require.Equal(t, 4, a.N)
	require.Equal(t, 8, a.EdgeOffset)
	require.True(t, a.IsVertex(0))
	require.True(t, a.IsVertex(7))
	require.False(t, a.IsVertex(8))
	require.True(t, a.IsArc(8))
	require.True(t, a.IsRootCopy(5))
	require.False(t, a.IsRootCopy(1))
}

func TestTwinIsInvolution(t *testing.T) {
	a := pgraph.NewArena(3, 3)
	arcU, arcV := a.AllocEdge(0, 1)

	require.Equal(t, arcV, a.Twin(arcU))
	require.Equal(t, arcU, a.Twin(arcV))
}

func TestRingAppendAndUnlink(t *testing.T) {
	a := pgraph.NewArena(2, 2)
	arcU, _ := a.AllocEdge(0, 1)

	a.RingAppend(0, arcU)
	require.Equal(t, arcU, a.Nodes[0].Link[0])
	require.Equal(t, arcU, a.Nodes[0].Link[1])

	a.RingUnlink(arcU)
	require.Equal(t, 0, a.Nodes[0].Link[0])
	require.Equal(t, 0, a.Nodes[0].Link[1])
	require.Equal(t, arcU, a.Nodes[arcU].Link[0])
}

func TestRingInsertBefore(t *testing.T) {
	a := pgraph.NewArena(2, 2)
	arc1, _ := a.AllocEdge(0, 1)
	arc2, _ := a.AllocEdge(0, 1)

	a.RingAppend(0, arc1)
	a.RingInsertBefore(0, arc2, 0)

	require.Equal(t, arc2, a.Nodes[0].Link[0])
	require.Equal(t, arc1, a.Nodes[arc2].Link[0])
	require.Equal(t, 0, a.Nodes[arc2].Link[1])
}

func TestRingSpliceBeforePreservesChainOrderAndBoundary(t *testing.T) {
	a := pgraph.NewArena(3, 5)
	src := 1

	c1, _ := a.AllocEdge(src, 0)
	c2, _ := a.AllocEdge(src, 0)
	c3, _ := a.AllocEdge(src, 0)
	a.RingAppend(src, c1)
	a.RingAppend(src, c2)
	a.RingAppend(src, c3)

	anchor := 2
	existing, _ := a.AllocEdge(anchor, 0)
	a.RingAppend(anchor, existing)

	a.RingSpliceBefore(anchor, src, 1)

	var order []int
	for cur := a.Nodes[anchor].Link[1]; ; cur = a.Nodes[cur].Link[1] {
		order = append(order, cur)
		if cur == a.Nodes[anchor].Link[0] {
			break
		}
	}
	require.Equal(t, []int{c1, c2, c3, existing}, order)

	// The chain's interior adjacency (c1-c2, c2-c3) must be exactly what it
	// was inside src's own ring, untouched by the splice.
	require.Equal(t, c2, a.Nodes[c1].Link[1])
	require.Equal(t, c1, a.Nodes[c2].Link[0])
	require.Equal(t, c3, a.Nodes[c2].Link[1])
	require.Equal(t, c2, a.Nodes[c3].Link[0])
}

func TestRingSpliceBeforeOnEmptySourceIsNoop(t *testing.T) {
	a := pgraph.NewArena(3, 2)
	anchor := 0
	arc, _ := a.AllocEdge(anchor, 1)
	a.RingAppend(anchor, arc)

	before0, before1 := a.Nodes[anchor].Link[0], a.Nodes[anchor].Link[1]

	a.RingSpliceBefore(anchor, 2, 1)

	require.Equal(t, before0, a.Nodes[anchor].Link[0])
	require.Equal(t, before1, a.Nodes[anchor].Link[1])
}

func TestCheckInvariantsOnFreshArena(t *testing.T) {
	a := pgraph.NewArena(5, 5)
	require.NoError(t, a.CheckInvariants())
}

func TestCheckInvariantsDetectsBrokenRing(t *testing.T) {
	a := pgraph.NewArena(2, 1)
	arcU, _ := a.AllocEdge(0, 1)
	a.RingAppend(0, arcU)

	// Corrupt the ring by hand: point the arc's forward link at itself,
	// orphaning vertex 0's link[1] traversal from closing.
	a.Nodes[arcU].Link[1] = arcU

	require.Error(t, a.CheckInvariants())
}
