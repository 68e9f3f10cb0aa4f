// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

import (
	fn "github.com/lightningnetwork/lnd/fn/v2"
)

// Never marks a step as exit-free. [Run] and [UpdateFunc] accept only
// Step[S, E, Never], so every Exited case must be discharged with
// [OnExit] or [MapResult] before the boundary. Nothing in this package
// constructs a Never, and no caller should: Go cannot make a struct
// uninhabited, so the boundary backs the type-level contract with a
// runtime invariant check.
type Never struct{}

// Transition is the host runtime's native update pair: the next state
// and the effects to execute, in attachment order.
type Transition[S, E any] struct {
	State   S
	Effects []E
}

// Run converts an exit-free step to the host runtime's pair shape:
// Some(state, effects) for Transitioning, None for NoTransition.
//
// Run panics on an Exited step. Reaching the boundary with an
// unresolved exit means some producer's result was never handled by an
// [OnExit] — a composition bug in the calling code, surfaced loudly
// rather than silently discarding the result.
func Run[S, E any](s Step[S, E, Never]) fn.Option[Transition[S, E]] {
	switch s.kind {
	case kindTransition:
		return fn.Some(Transition[S, E]{State: s.state, Effects: s.effects})
	case kindExit:
		panic("step: unresolved exit in Run")
	}
	return fn.None[Transition[S, E]]()
}

// UpdateFunc wraps an exit-free Step-returning update function into one
// returning the host runtime's plain (state, effects) pair directly.
// NoTransition defaults to the previous state with no effects.
func UpdateFunc[M, S, E any](update func(M, S) Step[S, E, Never]) func(M, S) (S, []E) {
	return func(msg M, state S) (S, []E) {
		pair := Run(update(msg, state)).UnwrapOr(Transition[S, E]{State: state})
		return pair.State, pair.Effects
	}
}
