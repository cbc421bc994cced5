package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	back    key.Binding
	search  key.Binding
	nextPg  key.Binding
	prevPg  key.Binding
	more    key.Binding
	filter  key.Binding
	clear   key.Binding
	open    key.Binding
	retry   key.Binding
	logout  key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		nextPg: key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next page")),
		prevPg: key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "prev page")),
		more:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "load more")),
		filter: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "filters")),
		clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear filters")),
		open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open trailer")),
		retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		logout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "logout")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.search, k.filter},
		{k.nextPg, k.prevPg, k.more},
		{k.open, k.retry, k.quit},
	}
}
