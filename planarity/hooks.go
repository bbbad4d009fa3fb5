package planarity

import (
	"github.com/katalvlaran/planarity/merge"
	"github.com/katalvlaran/planarity/pgraph"
	"github.com/katalvlaran/planarity/postprocess"
	"github.com/katalvlaran/planarity/walk"
)

// installHooks binds the arena's seven extension points to their default
// planar-embedding bodies: walk and merge contribute three, this package
// contributes the two postprocess bodies (the success path calls the
// postprocess package) and a no-op for the two construction hooks. This is
// the one place in the module that imports walk, merge, and postprocess
// together and wires them in — pgraph itself stays free of the reverse
// dependency (spec.md §5, §9).
func installHooks(a *pgraph.Arena, cfg *config) {
	a.Hooks = pgraph.ExtensionHooks{
		MergeBicomps:              merge.MergeBicomps,
		EmbedBackEdgeToDescendant: walk.EmbedBackEdgeToDescendant,
		HandleInactiveVertex:      walk.HandleInactiveVertex,
		CreateFwdArcLists:         noopArenaHook,
		CreateDFSTreeEmbedding:    noopArenaHook,
		EmbedIterationPostprocess: embedIterationPostprocess,
		EmbedPostprocess:          embedPostprocessFor(cfg),
	}
}

// noopArenaHook satisfies the CreateFwdArcLists/CreateDFSTreeEmbedding hook
// signatures without doing anything: preprocess.Build already performs both
// steps inline during arena construction (see preprocess/build.go), so by
// the time Embed installs hooks there is nothing left for these two to do.
// They remain as named hooks — rather than being dropped from
// ExtensionHooks — because spec.md §5 defines all seven as the fixed
// extension surface; an override that needs to redo this work after
// construction still has a seam to hook into.
func noopArenaHook(a *pgraph.Arena) error {
	return nil
}

// embedIterationPostprocess is the default EmbedIterationPostprocess body:
// a vertex finishing its iteration with unembedded forward arcs is always
// non-planar, so always stop the main loop here (spec.md §4.8; grounded in
// _EmbedIterationPostprocess, which never attempts to keep searching).
func embedIterationPostprocess(a *pgraph.Arena, i int) (pgraph.Outcome, error) {
	return pgraph.NonEmbeddable, nil
}

// embedPostprocessFor closes over cfg's isolator to build the default
// EmbedPostprocess body: orient and join on success, isolate an obstruction
// on failure (spec.md §4.7, §4.8; grounded in _EmbedPostprocess).
func embedPostprocessFor(cfg *config) func(*pgraph.Arena, int, pgraph.Outcome) (pgraph.Outcome, error) {
	return func(a *pgraph.Arena, i int, loopResult pgraph.Outcome) (pgraph.Outcome, error) {
		if loopResult == pgraph.OK {
			postprocess.Orient(a, false)
			postprocess.Join(a)
			return pgraph.OK, nil
		}

		return cfg.isolator.Isolate(a, i)
	}
}
