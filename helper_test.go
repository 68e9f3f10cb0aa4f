// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step_test

import (
	"fmt"

	"github.com/nicklawls/step"
)

// counter is the shared test state: a tiny interaction that counts.
type counter struct {
	count int
}

type counterMsg int

const (
	msgInc  counterMsg = iota // transition: count+1
	msgDec                    // transition: count-1
	msgSave                   // transition: same count, one "save:<n>" effect
	msgNoop                   // no transition
	msgQuit                   // exit with the final count (exiting fixture only)
)

// updateCounter is the exit-free fixture update function.
func updateCounter(m counterMsg, c counter) step.Step[counter, string, step.Never] {
	switch m {
	case msgInc:
		return step.To[string, step.Never](counter{count: c.count + 1})
	case msgDec:
		return step.To[string, step.Never](counter{count: c.count - 1})
	case msgSave:
		return step.To[string, step.Never](c).WithEffect(fmt.Sprintf("save:%d", c.count))
	}
	return step.Stay[counter, string, step.Never]()
}

// updateUntilQuit behaves like updateCounter but concludes on msgQuit,
// handing the final count to the enclosing interaction.
func updateUntilQuit(m counterMsg, c counter) step.Step[counter, string, int] {
	switch m {
	case msgInc:
		return step.To[string, int](counter{count: c.count + 1})
	case msgDec:
		return step.To[string, int](counter{count: c.count - 1})
	case msgSave:
		return step.To[string, int](c).WithEffect(fmt.Sprintf("save:%d", c.count))
	case msgQuit:
		return step.Exit[counter, string](c.count)
	}
	return step.Stay[counter, string, int]()
}

// arbStep builds a step in an arbitrary variant from raw parts, for
// testing/quick properties: quick cannot populate Step's unexported
// fields directly, so properties take the parts and construct.
func arbStep(variant uint8, state int, effects []string, result string) step.Step[int, string, string] {
	switch variant % 3 {
	case 0:
		return step.Stay[int, string, string]()
	case 1:
		s := step.To[string, string](state)
		for _, e := range effects {
			s = s.WithEffect(e)
		}
		return s
	default:
		return step.Exit[int, string](result)
	}
}
