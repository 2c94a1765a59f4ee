// Package tuitest provides helpers for driving Bubble Tea models in tests.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// TestRenderer sends messages to a model and captures what it renders, without a terminal.
type TestRenderer struct {
	// Output contains the last rendered view, ANSI codes included.
	Output string

	// Commands contains the non-nil commands returned by Update calls.
	Commands []tea.Cmd

	// UpdateCount tracks how many times Update was called.
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Update sends msg to model and renders the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.UpdateCount++

	next, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}
	r.Output = next.View()
	return next, cmd
}

// Send applies msgs in order and returns the resulting model.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// Run executes cmd and feeds every message it produces back into model.
// Batches are unwrapped one level. Only run commands known not to block on timers.
func (r *TestRenderer) Run(model tea.Model, cmd tea.Cmd) tea.Model {
	for _, msg := range Exec(cmd) {
		model, _ = r.Update(model, msg)
	}
	return model
}

// LastCommand returns the most recent command, or nil if none were returned.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

// Plain returns the last output with ANSI codes removed.
func (r *TestRenderer) Plain() string {
	return ansi.Strip(r.Output)
}

// Lines returns the plain output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Plain(), "\n")
}

// Exec runs cmd and returns the messages it produced, unwrapping a batch.
func Exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		if m := c(); m != nil {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
