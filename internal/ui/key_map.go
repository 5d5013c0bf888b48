package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	submit      key.Binding
	continueKey key.Binding
	again       key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		continueKey: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue searching")),
		again:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "search another artist")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.continueKey},
		{k.again, k.quit},
	}
}
