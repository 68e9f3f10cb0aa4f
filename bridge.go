// ©Nick Lawls 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package step

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Model adapts a Step-driven update function to bubbletea's tea.Model
// convention. update must be exit-free: any child exits are resolved
// with [OnExit] inside it. A NoTransition step keeps the previous state
// and issues no command; a Transitioning step's effects are batched in
// attachment order.
//
// The bridge only converts — bubbletea executes the commands and feeds
// resulting messages back into Update.
type Model[S any] struct {
	state  S
	update func(tea.Msg, S) Step[S, Cmd[tea.Msg], Never]
	view   func(S) string
	init   Cmd[tea.Msg]
}

// NewModel returns a Model starting in initial. view may be nil for
// headless use (tests, non-rendering programs).
func NewModel[S any](initial S, update func(tea.Msg, S) Step[S, Cmd[tea.Msg], Never], view func(S) string) Model[S] {
	return Model[S]{state: initial, update: update, view: view}
}

// WithInit sets the command issued when the program starts.
func (m Model[S]) WithInit(c Cmd[tea.Msg]) Model[S] {
	m.init = c
	return m
}

// State returns the current state, for assertions in tests.
func (m Model[S]) State() S { return m.state }

// Init implements tea.Model.
func (m Model[S]) Init() tea.Cmd {
	return TeaCmd(m.init)
}

// Update implements tea.Model by running the step through the Run
// boundary: NoTransition keeps the previous model with no command.
func (m Model[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	pair := Run(m.update(msg, m.state)).UnwrapOr(Transition[S, Cmd[tea.Msg]]{State: m.state})
	m.state = pair.State
	return m, batchTea(pair.Effects)
}

// View implements tea.Model.
func (m Model[S]) View() string {
	if m.view == nil {
		return ""
	}
	return m.view(m.state)
}

// TeaCmd converts a [Cmd] into a bubbletea command. A nil Cmd converts
// to nil, which bubbletea treats as "no command".
func TeaCmd(c Cmd[tea.Msg]) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		return c(context.Background())
	}
}

// MapTeaCmd applies f to the message a bubbletea command will produce,
// lifting a child component's command into the parent's message type.
func MapTeaCmd(c tea.Cmd, f func(tea.Msg) tea.Msg) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		return f(c())
	}
}

// batchTea converts queued effects to a single bubbletea command,
// preserving attachment order in the batch.
func batchTea(effects []Cmd[tea.Msg]) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(effects))
	for i, c := range effects {
		cmds[i] = TeaCmd(c)
	}
	return tea.Batch(cmds...)
}
