package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PlayKeyMap defines the key bindings for the puzzle view.
type PlayKeyMap struct {
	Turn     key.Binding
	TurnBack key.Binding
	Flip     key.Binding
	TipMode  key.Binding
	Scramble key.Binding
	Undo     key.Binding
	Reset    key.Binding
	Solve    key.Binding
	Apply    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Turn, k.TurnBack, k.Scramble, k.Solve, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Turn, k.TurnBack, k.Flip, k.TipMode},
		{k.Scramble, k.Undo, k.Reset},
		{k.Solve, k.Apply, k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Turn: key.NewBinding(
			key.WithKeys("w", "x", "y", "z"),
			key.WithHelp("w/x/y/z", "turn +"),
		),
		TurnBack: key.NewBinding(
			key.WithKeys("W", "X", "Y", "Z"),
			key.WithHelp("W/X/Y/Z", "turn -"),
		),
		Flip: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "flip"),
		),
		TipMode: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips only"),
		),
		Scramble: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "scramble"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reset"),
		),
		Solve: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "solve"),
		),
		Apply: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply solution"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
