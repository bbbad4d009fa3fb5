package pgraph

import "errors"

// ErrHooksNotInstalled names the failure of running with an ExtensionHooks
// field left unset (spec.md §5: every hook must be bound before the core
// loop begins). The engine calls its hooks without checking for nil fields,
// and no function in this module returns this error.
var ErrHooksNotInstalled = errors.New("pgraph: extension hook not installed")

// ErrArenaCorrupt is the Failure-class sentinel wrapped by CheckInvariants
// and by planarity.Embed when the core loop reports a Failure outcome
// (spec.md §7: Failure leaves the arena in an undefined but memory-safe
// state).
var ErrArenaCorrupt = errors.New("pgraph: arena invariant violated")
