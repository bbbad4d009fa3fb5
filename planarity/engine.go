// Package planarity is the public entry point of the embedding engine: it
// runs DFS preprocessing, builds the arena, drives the Walkup/Walkdown core
// loop over every vertex from highest DFI to lowest, and runs the
// orientation/join or obstruction-isolation postprocess (spec.md §4.8).
//
// Grounded in the original implementation's gp_Embed
// (original_source/trunk/c/graphEmbed.c), adapted into idiomatic Go: a
// functional-options constructor, a context-cancellable core loop, and a
// three-way pgraph.Outcome folded into a public Result.
package planarity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarity/dfsprep"
	"github.com/katalvlaran/planarity/extgraph"
	"github.com/katalvlaran/planarity/list"
	"github.com/katalvlaran/planarity/pgraph"
	"github.com/katalvlaran/planarity/preprocess"
	"github.com/katalvlaran/planarity/walk"
)

// ErrGraphNil is returned when Embed is called with a nil *extgraph.Graph.
var ErrGraphNil = errors.New("planarity: graph is nil")

// Result is the outcome of an Embed call.
type Result struct {
	// Embeddable is true iff the graph admits a planar embedding.
	Embeddable bool

	// Arena is the engine's internal state after Embed returns. On
	// success, its rings describe a valid embedding (spec.md §4.7). On
	// failure, it may carry an isolated obstruction subgraph if the
	// configured kuratowski.Isolator populated one.
	Arena *pgraph.Arena

	// DFS is the preprocessing result Embed computed, exposed so callers
	// can translate Arena indices back to their own vertex IDs via
	// RestoreOriginalVertexOrder.
	DFS *dfsprep.Result
}

// Embed tests whether g admits a planar embedding, returning the populated
// arena either way. The flags chosen with WithFlags are recorded but do not
// change the pipeline: an Outerplanar call runs the same planar test.
//
// Complexity: O(V + E) (spec.md §1).
func Embed(g *extgraph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dfs, err := dfsprep.Run(g, dfsprep.WithContext(cfg.ctx))
	if err != nil {
		return nil, fmt.Errorf("planarity: dfs preprocessing: %w", err)
	}

	a, err := preprocess.Build(dfs)
	if err != nil {
		return nil, fmt.Errorf("planarity: arena construction: %w", err)
	}

	installHooks(a, cfg)

	outcome, err := runCoreLoop(cfg, a)
	if err != nil {
		return nil, fmt.Errorf("planarity: core loop: %w", err)
	}

	return &Result{
		Embeddable: outcome == pgraph.OK,
		Arena:      a,
		DFS:        dfs,
	}, nil
}

// runCoreLoop drives Walkup over every forward arc and Walkdown over every
// pertinent child bicomp, for each vertex from highest DFI down to lowest,
// then dispatches the installed EmbedPostprocess hook.
//
// Grounded in gp_Embed's main loop.
func runCoreLoop(cfg *config, a *pgraph.Arena) (pgraph.Outcome, error) {
	loopResult := pgraph.OK
	stoppedAt := 0

	for i := a.N - 1; i >= 0; i-- {
		stoppedAt = i
		if err := cfg.ctx.Err(); err != nil {
			return pgraph.Failure, err
		}

		fwdHead := a.VAttr[i].FwdArcList
		for cur := fwdHead; cur != list.None; cur = a.Forward.Next(fwdHead, cur) {
			walk.Walkup(a, i, cur)
		}

		childHead := a.VAttr[i].SeparatedDFSChildList
		for cur := childHead; cur != list.None; cur = a.Separated.Next(childHead, cur) {
			if a.VAttr[cur].PertinentBicompList == list.None {
				continue
			}

			outcome, err := walk.Walkdown(a, i, a.RootCopyOf(cur))
			if err != nil {
				return pgraph.Failure, err
			}
			if outcome == pgraph.Failure {
				return pgraph.Failure, fmt.Errorf("planarity: %w at iteration %d", pgraph.ErrArenaCorrupt, i)
			}
			if outcome == pgraph.NonEmbeddable {
				break
			}
		}

		if a.VAttr[i].FwdArcList != list.None {
			outcome, err := a.Hooks.EmbedIterationPostprocess(a, i)
			if err != nil {
				return pgraph.Failure, err
			}
			if outcome != pgraph.OK {
				loopResult = outcome
				break
			}
		}
	}

	return a.Hooks.EmbedPostprocess(a, stoppedAt, loopResult)
}
