// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step_test

import (
	"reflect"
	"testing"

	"github.com/nicklawls/step"
)

func TestRunTransition(t *testing.T) {
	s := step.To[string, step.Never](counter{count: 2}).WithEffect("e1").WithEffect("e2")

	pair := step.Run(s)
	got := pair.UnwrapOr(step.Transition[counter, string]{})
	if got.State.count != 2 {
		t.Fatalf("state got %v, want count 2", got.State)
	}
	// First attached, first executed.
	if !reflect.DeepEqual(got.Effects, []string{"e1", "e2"}) {
		t.Fatalf("effects got %v, want [e1 e2]", got.Effects)
	}
}

func TestRunStay(t *testing.T) {
	if pair := step.Run(step.Stay[counter, string, step.Never]()); !pair.IsNone() {
		t.Fatalf("Run(Stay) got %v, want None", pair)
	}
}

// TestRunPanicsOnExit exercises the boundary's defect path: an Exited
// step reaching Run means a composition bug, surfaced as a panic
// rather than a silently dropped result.
func TestRunPanicsOnExit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Run must panic on an unresolved Exited step")
		}
	}()
	step.Run(step.Exit[counter, string](step.Never{}))
}

func TestUpdateFuncDefaultsOnStay(t *testing.T) {
	update := step.UpdateFunc(updateCounter)

	state, effects := update(msgNoop, counter{count: 7})
	if state.count != 7 {
		t.Fatalf("NoTransition must keep the previous state, got %v", state)
	}
	if len(effects) != 0 {
		t.Fatalf("NoTransition must produce no effects, got %v", effects)
	}
}

func TestUpdateFuncPair(t *testing.T) {
	update := step.UpdateFunc(updateCounter)

	state, effects := update(msgInc, counter{count: 0})
	if state.count != 1 {
		t.Fatalf("state got %v, want count 1", state)
	}
	if len(effects) != 0 {
		t.Fatalf("unexpected effects %v", effects)
	}

	state, effects = update(msgSave, state)
	if state.count != 1 {
		t.Fatalf("save must keep the count, got %v", state)
	}
	if !reflect.DeepEqual(effects, []string{"save:1"}) {
		t.Fatalf("effects got %v, want [save:1]", effects)
	}
}
