package dfsprep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfsprep"
	"github.com/katalvlaran/planarity/extgraph"
)

func TestRunNilGraph(t *testing.T) {
	_, err := dfsprep.Run(nil)
	require.ErrorIs(t, err, dfsprep.ErrGraphNil)
}

func TestRunEmptyGraph(t *testing.T) {
	_, err := dfsprep.Run(extgraph.NewGraph())
	require.ErrorIs(t, err, dfsprep.ErrEmptyGraph)
}

func TestRunTriangleIsBiconnected(t *testing.T) {
	g := extgraph.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c")
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a")
	require.NoError(t, err)

	res, err := dfsprep.Run(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.N)

	root := res.IndexOf["a"]
	require.Equal(t, dfsprep.NoParent, res.DFSParent[root])

	// Every vertex's lowpoint reaches the DFS root: a single cycle is
	// one biconnected component.
	for i := 0; i < res.N; i++ {
		require.Equal(t, root, res.Lowpoint[i])
	}
}

func TestRunDisconnectedGraphCoversAllComponents(t *testing.T) {
	g := extgraph.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y")
	require.NoError(t, err)

	res, err := dfsprep.Run(g)
	require.NoError(t, err)
	require.Equal(t, 4, res.N)

	roots := 0
	for i := 0; i < res.N; i++ {
		if res.DFSParent[i] == dfsprep.NoParent {
			roots++
		}
	}
	require.Equal(t, 2, roots)
}

func TestRunTreeHasNoBackEdges(t *testing.T) {
	g := extgraph.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c")
	require.NoError(t, err)

	res, err := dfsprep.Run(g)
	require.NoError(t, err)

	for i := 0; i < res.N; i++ {
		require.Empty(t, res.BackEdges[i])
		require.Equal(t, i, res.Lowpoint[i])
		require.Equal(t, i, res.LeastAncestor[i])
	}
}

func TestRunRespectsCancellation(t *testing.T) {
	g := extgraph.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dfsprep.Run(g, dfsprep.WithContext(ctx))
	require.Error(t, err)
}
