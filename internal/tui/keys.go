package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	pick      key.Binding
	digit     key.Binding
	sync      key.Binding
	finish    key.Binding
	reset     key.Binding
	copy      key.Binding
	buildInfo key.Binding
	dismiss   key.Binding
	quit      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	pick:      key.NewBinding(key.WithKeys("enter", " ")),
	digit:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
	sync:      key.NewBinding(key.WithKeys("s")),
	finish:    key.NewBinding(key.WithKeys("f")),
	reset:     key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	dismiss:   key.NewBinding(key.WithKeys("enter", "esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
