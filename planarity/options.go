package planarity

import (
	"context"

	"github.com/katalvlaran/planarity/kuratowski"
)

// EmbedFlags selects which planarity notion Embed tests for (spec.md §1,
// SPEC_FULL.md supplemented feature 5).
type EmbedFlags int

const (
	// Planar requests a standard planar embedding or a K5/K3,3-witnessing
	// obstruction.
	Planar EmbedFlags = iota

	// Outerplanar names the outerplanar variant, whose obstructions are K4
	// and K2,3.
	//
	// The engine runs the same seven hooks, core loop, merge engine, and
	// orientation/join passes for both flags, so an Outerplanar call
	// reports planarity, not outerplanarity.
	Outerplanar
)

// config collects Embed's assembled options.
type config struct {
	ctx      context.Context
	flags    EmbedFlags
	isolator kuratowski.Isolator
}

func defaultConfig() *config {
	return &config{
		ctx:      context.Background(),
		flags:    Planar,
		isolator: kuratowski.StubIsolator{},
	}
}

// Option configures a call to Embed.
type Option func(*config)

// WithContext installs ctx for cancellation of DFS preprocessing and the
// core embedding loop.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithFlags records Planar or Outerplanar in the configuration; Embed runs
// the same planar pipeline for either value.
func WithFlags(flags EmbedFlags) Option {
	return func(c *config) {
		c.flags = flags
	}
}

// WithIsolator installs a kuratowski.Isolator to run when the core loop
// reports non-embeddability. The default is kuratowski.StubIsolator, which
// reports the failure without reconstructing the obstruction subgraph.
func WithIsolator(isolator kuratowski.Isolator) Option {
	return func(c *config) {
		if isolator != nil {
			c.isolator = isolator
		}
	}
}
