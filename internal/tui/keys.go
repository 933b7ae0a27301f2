package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	left          key.Binding
	right         key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	backtab       key.Binding
	quit          key.Binding
	submit        key.Binding
	secondary     key.Binding
	toggleSidebar key.Binding
	logout        key.Binding
	consultas     key.Binding
	verify        key.Binding
	history       key.Binding
	search        key.Binding
	clearSearch   key.Binding
	copy          key.Binding
	reload        key.Binding
	version       key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	left:          key.NewBinding(key.WithKeys("left", "h")),
	right:         key.NewBinding(key.WithKeys("right", "l")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab")),
	backtab:       key.NewBinding(key.WithKeys("shift+tab")),
	quit:          key.NewBinding(key.WithKeys("ctrl+c")),
	submit:        key.NewBinding(key.WithKeys("ctrl+s")),
	secondary:     key.NewBinding(key.WithKeys("ctrl+r")),
	toggleSidebar: key.NewBinding(key.WithKeys("ctrl+b")),
	logout:        key.NewBinding(key.WithKeys("ctrl+x")),
	consultas:     key.NewBinding(key.WithKeys("f1", "alt+1")),
	verify:        key.NewBinding(key.WithKeys("f2", "alt+2")),
	history:       key.NewBinding(key.WithKeys("f3", "alt+3")),
	search:        key.NewBinding(key.WithKeys("/")),
	clearSearch:   key.NewBinding(key.WithKeys("x")),
	copy:          key.NewBinding(key.WithKeys("c")),
	reload:        key.NewBinding(key.WithKeys("r")),
	version:       key.NewBinding(key.WithKeys("v")),
}
