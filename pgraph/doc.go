// Package pgraph implements the arena and link primitives of spec.md §3–4.1:
// a flat array of vertex and arc ("half-arc") records addressed by integer
// index, doubly-linked circular rings for vertex incidence and external-face
// adjacency, and the seven-hook extension table spec.md §5 and §9 describe.
//
// Layout (spec.md §3):
//
//	vertex region [0, 2N):  [0, N) parent copies, [N, 2N) root copies
//	edge region   [2N, 2N + 2*maxE): arcs, in twin pairs
//
// No node is ever freed during the core loop; defunct root copies are
// marked by Link[0] == None (spec.md §9), matching the teacher library's
// preference for index-based arenas over owning pointers (see
// extgraph.Graph's map-based storage for the caller-facing analogue).
package pgraph

// None is the arena-wide "no such index" sentinel, used for every pointer
// field that may be absent: side-table fields like DFSParent, AdjacentTo,
// ExtFace links, and list heads, and the Link of a defunct root copy. Link
// entries on a live, closed ring are never None.
const None = -1
