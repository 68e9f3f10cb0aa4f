// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package step provides a composable return-value type for update
// functions in unidirectional (Elm-style) state management.
//
// A [Step] replaces the conventional "(next state, effects)" pair with a
// single value that can additionally say "this input changed nothing" and
// "this interaction concluded with a result". Update functions return
// Steps; parents lift their children's Steps into their own state and
// message types; the outermost Step is converted back to the pair shape
// the host runtime consumes.
//
// # Architecture
//
//   - Variants: a Step is Transitioning (next state plus queued effects),
//     NoTransition (ignore this input), or Exited (a final result).
//     The zero value of Step is NoTransition.
//   - Purity: every operation is a total function over immutable values.
//     Nothing here blocks, schedules, or executes effects — effects are
//     descriptions handed to the host runtime for execution.
//   - Hierarchy: composition is strictly parent/child. A child hands a
//     final result upward through [OnExit]; there is no other channel.
//
// # API Topologies
//
//   - Constructors: [To], [Stay], [Exit], [FromPair], [FromOption].
//   - Effects: [Step.WithEffect], [Attempt], [WithAttempt], [MapCmd].
//   - Transforms: [MapState], [MapEffect], [Within], [MapResult].
//   - Combination: [OrElse] (second argument wins), [OnExit].
//   - Boundary: [Run] and [UpdateFunc] convert back to the host pair
//     shape. Both accept only exit-free steps (result type [Never]).
//   - Testing: [Replay] folds an update function over a message sequence,
//     threading state forward and accumulating effects.
//
// Constructors order their type parameters so that the parameters not
// determined by arguments come first and the rest are inferred, e.g.
// To[MyEffect, MyResult](state).
//
// # Integration
//
//   - Host runtime: [Model] adapts a Step-driven update function to
//     bubbletea's tea.Model convention; [TeaCmd] and [MapTeaCmd] convert
//     and lift commands at that boundary.
//   - Asynchronous work: effects that complete with a message use the
//     [Cmd] form; a fallible operation ([Task]) is wrapped with [Attempt],
//     which reports the outcome to the handler as a kont.Either.
//
// # Example
//
//	// Child interaction concludes with the chosen name.
//	child := step.Exit[appModel, step.Cmd[appMsg]]("bob")
//
//	// Parent consumes the result and continues.
//	next := step.OnExit(child, func(name string) step.Step[appModel, step.Cmd[appMsg], step.Never] {
//		return step.To[step.Cmd[appMsg], step.Never](appModel{loggedInAs: name})
//	})
//
//	pair := step.Run(next) // fn.Option[Transition]: Some(state, effects)
package step
