package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	newChat key.Binding
	memory  key.Binding
	save    key.Binding
	clear   key.Binding
	burn    key.Binding
	copy    key.Binding
	refresh key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q")),
	newChat: key.NewBinding(key.WithKeys("n")),
	memory:  key.NewBinding(key.WithKeys("m")),
	save:    key.NewBinding(key.WithKeys("s")),
	clear:   key.NewBinding(key.WithKeys("ctrl+d")),
	burn:    key.NewBinding(key.WithKeys("ctrl+b")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
