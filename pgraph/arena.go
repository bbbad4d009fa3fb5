package pgraph

import (
	"fmt"

	"github.com/katalvlaran/planarity/list"
)

// ExtensionHooks models the seven synchronous indirections of spec.md §5 and
// §9 as a struct of function values — never a mutable global vtable.
// NewArena leaves every field nil; planarity.Embed binds each one to its
// planar-embedding body right after building the arena. Embed has no option
// to replace an individual hook; the isolator it runs on failure is chosen
// with planarity.WithIsolator.
type ExtensionHooks struct {
	// MergeBicomps drains theStack, splicing bicomps together (spec.md §4.6).
	MergeBicomps func(a *Arena, i, rootVertex, w, wPrevLink int) (Outcome, error)

	// EmbedBackEdgeToDescendant splices a back edge (R, W) into the
	// embedding (spec.md §4.5 step "Embed step").
	EmbedBackEdgeToDescendant func(a *Arena, rootSide, rootVertex, w, wPrevLink int)

	// HandleInactiveVertex advances W past an inactive vertex during
	// Walkdown's short-circuit step (spec.md §4.5 step "Short-circuit
	// step"). BicompRoot is preserved only for extension overrides
	// (spec.md §9 Open Questions); the default never consults it.
	HandleInactiveVertex func(a *Arena, bicompRoot int, w, wPrevLink *int) error

	// CreateFwdArcLists extracts each vertex's forward arcs into its
	// fwdArcList (spec.md §4.3).
	CreateFwdArcLists func(a *Arena) error

	// CreateDFSTreeEmbedding materializes the initial one-tree-edge
	// embedding with root copies (spec.md §4.3).
	CreateDFSTreeEmbedding func(a *Arena) error

	// EmbedIterationPostprocess runs after each vertex's Walkdown calls,
	// deciding whether to continue (spec.md §4.8).
	EmbedIterationPostprocess func(a *Arena, i int) (Outcome, error)

	// EmbedPostprocess runs once after the main loop: orient and join on
	// success, isolate an obstruction on failure (spec.md §4.7, §7).
	EmbedPostprocess func(a *Arena, i int, loopResult Outcome) (Outcome, error)
}

// Outcome is the three-way result of an engine operation (spec.md §7).
type Outcome int

const (
	// OK: the operation succeeded.
	OK Outcome = iota

	// NonEmbeddable: the input does not admit the requested embedding;
	// an obstruction subgraph may be present in the arena.
	NonEmbeddable

	// Failure: an invariant was violated. The arena is left in an
	// undefined but memory-safe state.
	Failure
)

// String renders the outcome for diagnostics and test failure messages.
func (o Outcome) String() string {
	switch o {
	case OK:
		return "OK"
	case NonEmbeddable:
		return "NONEMBEDDABLE"
	case Failure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Arena is the exclusively-owned, memory-only graph state threaded through
// every embedding operation (spec.md §5). It is never safe for concurrent
// use by two goroutines; distinct Arenas may be embedded in parallel
// without coordination.
type Arena struct {
	// N is the vertex count; the vertex region spans [0, 2N).
	N int

	// EdgeOffset is the first index of the edge region, equal to 2N.
	EdgeOffset int

	// MaxE is the number of undirected edges the arc region was sized for.
	MaxE int

	// Nodes is the flat array backing both vertex and arc slots.
	Nodes []Node

	// VAttr is the per-vertex side table, indexed like Nodes over [0, 2N).
	VAttr []VertexAttr

	// ExtFace is the external-face side table, indexed over [0, 2N).
	ExtFace []ExtFaceEntry

	// Stack is the shared LIFO used by Walkdown and the merge engine.
	Stack []StackEntry

	// Pertinent backs every vertex's PertinentBicompList (ids are DFS
	// child DFIs, capacity N).
	Pertinent *list.Collection

	// Separated backs every vertex's SeparatedDFSChildList (ids are DFS
	// child DFIs, capacity N).
	Separated *list.Collection

	// Forward backs every vertex's FwdArcList (ids are raw arc indices,
	// capacity EdgeOffset+2*MaxE).
	Forward *list.Collection

	// Hooks is the extension dispatch table (spec.md §5, §9).
	Hooks ExtensionHooks

	// nextArc is the allocation cursor used by AllocEdge during
	// construction, before the core loop begins.
	nextArc int
}

// NewArena allocates an arena sized for n vertices and up to maxE
// undirected edges, with every ring initialized to a singleton (each slot
// links only to itself), every list head empty, and every vertex slot's
// Visited set to n, a value no iteration index takes.
//
// Complexity: O(N + maxE).
func NewArena(n, maxE int) *Arena {
	edgeOffset := 2 * n
	total := edgeOffset + 2*maxE

	a := &Arena{
		N:          n,
		EdgeOffset: edgeOffset,
		MaxE:       maxE,
		Nodes:      make([]Node, total),
		VAttr:      make([]VertexAttr, edgeOffset),
		ExtFace:    make([]ExtFaceEntry, edgeOffset),
		Stack:      make([]StackEntry, 0, 2*edgeOffset),
		Pertinent:  list.NewCollection(n),
		Separated:  list.NewCollection(n),
		Forward:    list.NewCollection(total),
	}

	for i := 0; i < total; i++ {
		a.Nodes[i].Link = [2]int{i, i}
	}
	for i := 0; i < edgeOffset; i++ {
		a.Nodes[i].Visited = n
		a.VAttr[i] = VertexAttr{
			DFSParent:             None,
			FwdArcList:            None,
			PertinentBicompList:   None,
			SeparatedDFSChildList: None,
			AdjacentTo:            None,
		}
		a.ExtFace[i] = ExtFaceEntry{Link: [2]int{None, None}}
	}

	// Hooks is left zero-valued; the planarity package installs the
	// default planar-embedding bodies (and any extension overrides)
	// before the first call to Embed, keeping pgraph free of a reverse
	// dependency on the packages that implement those bodies.

	return a
}

// IsVertex reports whether i addresses a vertex or root-copy slot.
func (a *Arena) IsVertex(i int) bool { return i < a.EdgeOffset }

// IsArc reports whether i addresses an arc slot.
func (a *Arena) IsArc(i int) bool { return i >= a.EdgeOffset }

// IsRootCopy reports whether i addresses a root-copy slot (spec.md §3: root
// copies occupy [N, 2N)).
func (a *Arena) IsRootCopy(i int) bool { return i >= a.N && i < a.EdgeOffset }

// RootCopyOf returns the root-copy index for DFS-child DFI c.
func (a *Arena) RootCopyOf(c int) int { return a.N + c }

// Twin returns the complementary half-arc of e within its edge pair
// (spec.md §3: "flip the lowest bit of (J − edgeOffset)").
//
// Complexity: O(1).
func (a *Arena) Twin(e int) int {
	return a.EdgeOffset + ((e - a.EdgeOffset) ^ 1)
}

// AllocEdge allocates a fresh twin arc pair, returning (arcAtU, arcAtV)
// where arcAtU.V == v and arcAtV.V == u once typed by the caller. Must only
// be called during construction, before the core loop begins.
func (a *Arena) AllocEdge(u, v int) (int, int) {
	arcU := a.EdgeOffset + a.nextArc
	arcV := arcU + 1
	a.nextArc += 2

	a.Nodes[arcU].V = v
	a.Nodes[arcV].V = u
	a.Nodes[arcU].Link = [2]int{arcU, arcU}
	a.Nodes[arcV].Link = [2]int{arcV, arcV}

	return arcU, arcV
}

// RingAppend inserts arc into the circular ring anchored at anchor,
// immediately before anchor in link[1] traversal order — i.e. at the
// "link[1]-end" spec.md §4.3 refers to for forward-arc placement.
//
// Complexity: O(1).
func (a *Arena) RingAppend(anchor, arc int) {
	tail := a.Nodes[anchor].Link[0]
	a.Nodes[tail].Link[1] = arc
	a.Nodes[arc].Link[0] = tail
	a.Nodes[arc].Link[1] = anchor
	a.Nodes[anchor].Link[0] = arc
}

// RingInsertBefore places arc into anchor's ring immediately in the
// direction named by dir, wiring both of arc's links to its two new
// neighbors. arc must not already belong to any ring.
//
// Complexity: O(1).
func (a *Arena) RingInsertBefore(anchor, arc, dir int) {
	neighbor := a.Nodes[anchor].Link[dir]
	a.Nodes[arc].Link[dir] = neighbor
	a.Nodes[arc].Link[1^dir] = anchor
	a.Nodes[neighbor].Link[1^dir] = arc
	a.Nodes[anchor].Link[dir] = arc
}

// RingSpliceBefore removes src's entire ring — every arc still attached to
// it, excluding src itself — and re-threads that chain into anchor's ring
// immediately in the direction named by dir, in a single boundary
// reconnect. The chain's internal order is untouched: whatever sequence of
// arcs src's ring held in the dir direction is exactly the sequence found
// hanging off anchor afterward.
//
// src's own two links are left as found; the caller decides what becomes
// of src (typically marking it defunct once every arc has been retargeted
// to a new owner).
//
// Complexity: O(1), regardless of how many arcs src's ring holds.
func (a *Arena) RingSpliceBefore(anchor, src, dir int) {
	first := a.Nodes[src].Link[dir]
	if first == src {
		return
	}
	last := a.Nodes[src].Link[1^dir]
	anchorNeighbor := a.Nodes[anchor].Link[dir]

	a.Nodes[anchor].Link[dir] = first
	a.Nodes[first].Link[1^dir] = anchor

	a.Nodes[last].Link[dir] = anchorNeighbor
	a.Nodes[anchorNeighbor].Link[1^dir] = last
}

// RingUnlink removes e from whichever ring it currently occupies.
//
// Complexity: O(1).
func (a *Arena) RingUnlink(e int) {
	p, n := a.Nodes[e].Link[0], a.Nodes[e].Link[1]
	a.Nodes[p].Link[1] = n
	a.Nodes[n].Link[0] = p
	a.Nodes[e].Link = [2]int{e, e}
}

// CheckInvariants validates spec.md §3's global invariants 1 and 2 (twin
// pairing and ring closure) over the arena's current state; invariant 3 is
// not checked. Every error it returns wraps ErrArenaCorrupt. It is a
// diagnostic, not a hot-path call: it walks every vertex ring and root-copy
// slot.
//
// Grounded in the original implementation's debug-only TestIntegrity
// (original_source/trunk/c/graphEmbed.c), generalized here into a public,
// always-available post-condition checker (SPEC_FULL.md supplemented
// feature 1) rather than a conditionally-compiled internal test hook.
func (a *Arena) CheckInvariants() error {
	// Invariant 1: twin(twin(e)) == e for every live arc.
	for e := a.EdgeOffset; e < a.EdgeOffset+2*a.MaxE; e++ {
		if tw := a.Twin(e); a.Twin(tw) != e {
			return fmt.Errorf("%w: twin invariant broken at arc %d", ErrArenaCorrupt, e)
		}
	}

	// Invariant 2: each vertex/root-copy ring closes under link[0] and
	// link[1].
	for v := 0; v < a.EdgeOffset; v++ {
		if a.Nodes[v].Link[0] == None {
			continue // defunct root copy
		}
		if err := a.checkRingCloses(v, 0); err != nil {
			return err
		}
		if err := a.checkRingCloses(v, 1); err != nil {
			return err
		}
	}

	return nil
}

func (a *Arena) checkRingCloses(start, dir int) error {
	cur := a.Nodes[start].Link[dir]
	for steps := 0; cur != start; steps++ {
		if steps > len(a.Nodes) {
			return fmt.Errorf("%w: ring at vertex %d does not close under link[%d]", ErrArenaCorrupt, start, dir)
		}
		cur = a.Nodes[cur].Link[dir]
	}
	return nil
}
