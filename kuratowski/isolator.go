// Package kuratowski defines the external-collaborator boundary spec.md §1
// names but scopes out of the core loop: isolating a concrete K5 or K3,3
// (or, for the outerplanarity variant, K4 or K2,3) subdivision once
// Walkdown reports NONEMBEDDABLE.
//
// planarity.Embed calls the installed Isolator exactly once, after the main
// loop finishes with a non-embeddable result, from within
// postprocess's role in EmbedPostprocess (spec.md §4.8, §7).
package kuratowski

import (
	"github.com/katalvlaran/planarity/pgraph"
)

// Isolator extracts the obstruction subgraph that witnesses non-planarity
// (or non-outerplanarity) at iteration i, once Walkdown has returned
// NonEmbeddable for it.
//
// A real implementation reconstructs the specific Kuratowski subdivision
// from the arena's state at the point of failure (spec.md §7); it is
// deliberately out of this module's scope (spec.md §1 Non-goals) and left
// as the seam an external collaborator fills in.
type Isolator interface {
	Isolate(a *pgraph.Arena, i int) (pgraph.Outcome, error)
}

// StubIsolator is a no-op Isolator: it reports NonEmbeddable without
// attempting to identify or mark a concrete obstruction subgraph.
//
// It exists to drive the embedding pipeline end to end (including its
// NONEMBEDDABLE branch) in tests and examples that don't need isolation
// itself, matching spec.md §8.3's shape without implementing real
// isolation (SPEC_FULL.md supplemented feature 6).
type StubIsolator struct{}

// Isolate always reports NonEmbeddable and performs no arena mutation.
func (StubIsolator) Isolate(a *pgraph.Arena, i int) (pgraph.Outcome, error) {
	return pgraph.NonEmbeddable, nil
}
