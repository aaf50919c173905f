package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	quit   key.Binding
	copy   key.Binding
	reload key.Binding
	info   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q")),
	copy:   key.NewBinding(key.WithKeys("c")),
	reload: key.NewBinding(key.WithKeys("r")),
	info:   key.NewBinding(key.WithKeys("v")),
}
