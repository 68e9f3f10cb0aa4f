// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

// OrElse resolves two independently computed steps for the same input
// into one. The SECOND argument wins whenever it is not NoTransition;
// a is used only when b is NoTransition; when both are NoTransition the
// result is NoTransition.
//
// The bias is deliberate and unusual — most "first successful"
// combinators favor their first argument. It is designed for
// left-to-right pipelines where the most recently checked interaction
// should win, and when both arguments claim the input, b silently wins.
func OrElse[S, E, R any](a, b Step[S, E, R]) Step[S, E, R] {
	if b.kind != kindStay {
		return b
	}
	return a
}

// OnExit feeds the final result of an Exited step into f, which
// continues the larger interaction with a new step. Transitioning and
// NoTransition steps pass through unchanged, reinterpreted at the new
// result type.
//
// This is the sole composition point for "a nested interaction produced
// a value, and the parent decides what happens next" — the pattern other
// ecosystems reach for an OutMsg channel to express.
func OnExit[R1, R2, S, E any](s Step[S, E, R1], f func(R1) Step[S, E, R2]) Step[S, E, R2] {
	switch s.kind {
	case kindExit:
		return f(s.result)
	case kindTransition:
		return Step[S, E, R2]{kind: kindTransition, state: s.state, effects: s.effects}
	}
	return Step[S, E, R2]{}
}
