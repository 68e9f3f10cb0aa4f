// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

import (
	"context"

	"code.hybscloud.com/kont"
)

// WithEffect appends effect to the step's queue. Queued effects reach
// the host runtime in attachment order: first attached, first executed.
//
// On NoTransition and Exited steps the effect is dropped and s is
// returned unchanged. Stay().WithEffect(e) == Stay() is a contract, not
// an error: an effect with no transition to carry it has nowhere to go.
func (s Step[S, E, R]) WithEffect(effect E) Step[S, E, R] {
	if s.kind != kindTransition {
		return s
	}
	effects := make([]E, len(s.effects), len(s.effects)+1)
	copy(effects, s.effects)
	s.effects = append(effects, effect)
	return s
}

// Cmd is the canonical effect form: a deferred operation executed by
// the host runtime, completing with a message of type M that is fed
// back into the update function.
type Cmd[M any] func(context.Context) M

// Task is a fallible asynchronous operation, e.g. a network call.
type Task[T any] func(context.Context) (T, error)

// Attempt wraps a fallible operation into a [Cmd]. When the host
// runtime executes the command, the operation's outcome is delivered
// to handler as a kont.Either — Right on success, Left on error — and
// the handler's message is fed back into the system.
func Attempt[T, M any](op Task[T], handler func(kont.Either[error, T]) M) Cmd[M] {
	return func(ctx context.Context) M {
		v, err := op(ctx)
		if err != nil {
			return handler(kont.Left[error, T](err))
		}
		return handler(kont.Right[error](v))
	}
}

// WithAttempt attaches a fallible asynchronous operation to the step.
// Fuses Attempt + WithEffect: the effect is queued on Transitioning
// steps and dropped on NoTransition and Exited steps.
func WithAttempt[T, M, S, R any](s Step[S, Cmd[M], R], op Task[T], handler func(kont.Either[error, T]) M) Step[S, Cmd[M], R] {
	return s.WithEffect(Attempt(op, handler))
}

// MapCmd applies f to the message the command will eventually produce.
// This is the effect-type lift specialized to [Cmd]: pass it to
// [MapEffect] or [Within] to raise a child's command messages into the
// parent's message type. A nil command maps to nil.
func MapCmd[A, B any](c Cmd[A], f func(A) B) Cmd[B] {
	if c == nil {
		return nil
	}
	return func(ctx context.Context) B {
		return f(c(ctx))
	}
}
