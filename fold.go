// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

// Replay folds update over msgs, starting from an initial (state,
// effects) pair, and returns the final step for assertions in tests.
//
// Each message is applied to the state threaded so far: a Transitioning
// step advances the state and appends its effects to the accumulated
// queue, a NoTransition step changes nothing, and an Exited step stops
// the fold and propagates as the final step. Effects accumulate across
// every replayed message in input order — replaying [m1, m2] through an
// update that attaches one effect per message yields a queue of two.
func Replay[M, S, E, R any](update func(M, S) Step[S, E, R], state S, effects []E, msgs []M) Step[S, E, R] {
	acc := make([]E, len(effects), len(effects)+len(msgs))
	copy(acc, effects)
	for _, m := range msgs {
		next := update(m, state)
		switch next.kind {
		case kindExit:
			return next
		case kindTransition:
			state = next.state
			acc = append(acc, next.effects...)
		}
	}
	return Step[S, E, R]{kind: kindTransition, state: state, effects: acc}
}
