// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

import (
	fn "github.com/lightningnetwork/lnd/fn/v2"
)

// kind tags the active variant of a Step.
// kindStay is zero so the zero Step is NoTransition.
type kind uint8

const (
	kindStay kind = iota
	kindTransition
	kindExit
)

// Step is the return value of an update function: a closed union of
// exactly one of three variants.
//
//   - Transitioning: the interaction continues in a new state, with an
//     ordered queue of effect descriptions for the host runtime.
//   - NoTransition: this input changed nothing in this state.
//   - Exited: the interaction concluded with a result of type R.
//
// S is the state type, E the effect type, R the result type. The zero
// value is NoTransition. Steps are immutable; every operation returns a
// new value and never mutates its input.
type Step[S, E, R any] struct {
	kind    kind
	state   S
	effects []E
	result  R
}

// To returns a Transitioning step into state with no effects queued.
// S is inferred: To[MyEffect, MyResult](state).
func To[E, R, S any](state S) Step[S, E, R] {
	return Step[S, E, R]{kind: kindTransition, state: state}
}

// Stay returns the NoTransition step: no state change and no effects.
// Attaching an effect to a Stay drops the effect (see [Step.WithEffect]).
func Stay[S, E, R any]() Step[S, E, R] {
	return Step[S, E, R]{}
}

// Exit returns an Exited step carrying result, concluding the
// interaction. R is inferred: Exit[MyState, MyEffect](result).
func Exit[S, E, R any](result R) Step[S, E, R] {
	return Step[S, E, R]{kind: kindExit, result: result}
}

// FromPair lifts the host runtime's native (state, effect) update pair
// into a Transitioning step with a single queued effect.
// S and E are inferred: FromPair[MyResult](state, effect).
func FromPair[R, S, E any](state S, effect E) Step[S, E, R] {
	return Step[S, E, R]{kind: kindTransition, state: state, effects: []E{effect}}
}

// FromOption returns a Transitioning step into the contained state when
// state is Some, and NoTransition when it is None.
// S is inferred: FromOption[MyEffect, MyResult](state).
func FromOption[E, R, S any](state fn.Option[S]) Step[S, E, R] {
	if state.IsNone() {
		return Step[S, E, R]{}
	}
	var zero S
	return Step[S, E, R]{kind: kindTransition, state: state.UnwrapOr(zero)}
}

// IsTransition reports whether s is the Transitioning variant.
func (s Step[S, E, R]) IsTransition() bool { return s.kind == kindTransition }

// IsStay reports whether s is the NoTransition variant.
func (s Step[S, E, R]) IsStay() bool { return s.kind == kindStay }

// IsExit reports whether s is the Exited variant.
func (s Step[S, E, R]) IsExit() bool { return s.kind == kindExit }

// GetState returns the contained state and true when s is Transitioning.
func (s Step[S, E, R]) GetState() (S, bool) {
	if s.kind != kindTransition {
		var zero S
		return zero, false
	}
	return s.state, true
}

// GetEffects returns the queued effects in attachment order.
// The returned slice is a copy; mutating it does not affect s.
// NoTransition and Exited steps have no effects.
func (s Step[S, E, R]) GetEffects() []E {
	if len(s.effects) == 0 {
		return nil
	}
	effects := make([]E, len(s.effects))
	copy(effects, s.effects)
	return effects
}

// GetResult returns the final result and true when s is Exited.
func (s Step[S, E, R]) GetResult() (R, bool) {
	if s.kind != kindExit {
		var zero R
		return zero, false
	}
	return s.result, true
}
