// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

// MapState applies f to the contained state of a Transitioning step,
// leaving its effect queue intact. NoTransition and Exited steps pass
// through unchanged and f is never invoked for them.
func MapState[S1, S2, E, R any](s Step[S1, E, R], f func(S1) S2) Step[S2, E, R] {
	switch s.kind {
	case kindTransition:
		return Step[S2, E, R]{kind: kindTransition, state: f(s.state), effects: s.effects}
	case kindExit:
		return Step[S2, E, R]{kind: kindExit, result: s.result}
	}
	return Step[S2, E, R]{}
}

// MapEffect applies f to each queued effect of a Transitioning step,
// preserving queue order. NoTransition and Exited steps pass through
// unchanged.
//
// When the effect type is [Cmd], f should lift the message the command
// produces, not the command's deferred action: use [MapCmd] to build it.
func MapEffect[E1, E2, S, R any](s Step[S, E1, R], f func(E1) E2) Step[S, E2, R] {
	switch s.kind {
	case kindTransition:
		var effects []E2
		if len(s.effects) > 0 {
			effects = make([]E2, len(s.effects))
			for i, e := range s.effects {
				effects[i] = f(e)
			}
		}
		return Step[S, E2, R]{kind: kindTransition, state: s.state, effects: effects}
	case kindExit:
		return Step[S, E2, R]{kind: kindExit, result: s.result}
	}
	return Step[S, E2, R]{}
}

// Within lifts an entire child step into a parent's state and effect
// types. Equivalent to MapEffect(MapState(s, stateFn), effectFn), fused
// because it is the unit of nested update-function composition: every
// parent update that delegates to a child ends with a Within.
func Within[S1, S2, E1, E2, R any](s Step[S1, E1, R], stateFn func(S1) S2, effectFn func(E1) E2) Step[S2, E2, R] {
	return MapEffect(MapState(s, stateFn), effectFn)
}

// MapResult applies f to the final result of an Exited step. The other
// variants pass through unchanged, reinterpreted at the new result type.
func MapResult[R1, R2, S, E any](s Step[S, E, R1], f func(R1) R2) Step[S, E, R2] {
	switch s.kind {
	case kindExit:
		return Step[S, E, R2]{kind: kindExit, result: f(s.result)}
	case kindTransition:
		return Step[S, E, R2]{kind: kindTransition, state: s.state, effects: s.effects}
	}
	return Step[S, E, R2]{}
}
