package dfsprep

import (
	"context"

	"github.com/katalvlaran/planarity/extgraph"
)

// Run computes a DFS forest over g, renumbering vertices by discovery order
// and annotating each with its tree parent, lowpoint, and least ancestor.
//
// Disconnected graphs are fully covered: Run visits every vertex, starting
// a fresh tree (DFSParent == NoParent) whenever it encounters one not yet
// discovered, mirroring the teacher library's WithFullTraversal semantics —
// always on here, since the planarity engine must handle every component.
//
// Complexity: O(V + E).
func Run(g *extgraph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	d := &dfsRun{
		g:             g,
		ctx:           o.Ctx,
		indexOf:       make(map[string]int, n),
		vertexID:      make([]string, 0, n),
		dfsParent:     make([]int, 0, n),
		lowpoint:      make([]int, 0, n),
		leastAncestor: make([]int, 0, n),
		children:      make([][]int, 0, n),
		backEdges:     make([][]int, 0, n),
	}

	for _, id := range ids {
		if _, seen := d.indexOf[id]; seen {
			continue
		}
		if err := d.discover(id, NoParent); err != nil {
			return nil, err
		}
	}

	return &Result{
		N:             n,
		VertexID:      d.vertexID,
		IndexOf:       d.indexOf,
		DFSParent:     d.dfsParent,
		Lowpoint:      d.lowpoint,
		LeastAncestor: d.leastAncestor,
		Children:      d.children,
		BackEdges:     d.backEdges,
	}, nil
}

// dfsRun carries the mutable state of one Run call; its slices grow in
// discovery order, so index i is always DFI i once fully populated.
type dfsRun struct {
	g   *extgraph.Graph
	ctx context.Context

	indexOf       map[string]int
	vertexID      []string
	dfsParent     []int
	lowpoint      []int
	leastAncestor []int
	children      [][]int
	backEdges     [][]int
}

// discover assigns id the next DFI, recurses over its neighbors, and fills
// in its lowpoint and least-ancestor once every neighbor has been visited.
func (d *dfsRun) discover(id string, parentDFI int) error {
	if err := d.ctx.Err(); err != nil {
		return err
	}

	dfi := len(d.vertexID)
	d.indexOf[id] = dfi
	d.vertexID = append(d.vertexID, id)
	d.dfsParent = append(d.dfsParent, parentDFI)
	d.lowpoint = append(d.lowpoint, dfi)
	d.leastAncestor = append(d.leastAncestor, dfi)
	d.children = append(d.children, nil)
	d.backEdges = append(d.backEdges, nil)

	if parentDFI != NoParent {
		d.children[parentDFI] = append(d.children[parentDFI], dfi)
	}

	nbrs, err := d.g.Neighbors(id)
	if err != nil {
		return err
	}

	low := dfi
	least := dfi
	skippedParentOnce := false

	for _, w := range nbrs {
		if wdfi, seen := d.indexOf[w]; seen {
			if wdfi == parentDFI && !skippedParentOnce {
				// Skip exactly one occurrence of the tree-parent edge;
				// a second parallel edge to the same parent would be a
				// multigraph, already rejected by extgraph.
				skippedParentOnce = true
				continue
			}
			if wdfi < dfi {
				// Ancestor: a back edge. The mirror image (wdfi > dfi,
				// seen from the ancestor's own adjacency list) is not
				// recorded again here; undirected DFS has no true cross
				// edges.
				d.backEdges[wdfi] = append(d.backEdges[wdfi], dfi)
				if wdfi < least {
					least = wdfi
				}
				if wdfi < low {
					low = wdfi
				}
			}
			continue
		}

		if err := d.discover(w, dfi); err != nil {
			return err
		}
		childDFI := d.indexOf[w]
		if childLow := d.lowpoint[childDFI]; childLow < low {
			low = childLow
		}
	}

	d.lowpoint[dfi] = low
	d.leastAncestor[dfi] = least

	return nil
}
