package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	moveUp   key.Binding
	moveDown key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	forceQ   key.Binding
	logout   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	delete   key.Binding
	copy     key.Binding
	info     key.Binding
	add      key.Binding
	remove   key.Binding
	toggle   key.Binding
	title    key.Binding
	save     key.Binding
	publish  key.Binding
	colors   key.Binding
	seo      key.Binding
	canvas   key.Binding
	upload   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	moveUp:   key.NewBinding(key.WithKeys("shift+up", "K")),
	moveDown: key.NewBinding(key.WithKeys("shift+down", "J")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	info:     key.NewBinding(key.WithKeys("v")),
	add:      key.NewBinding(key.WithKeys("a")),
	remove:   key.NewBinding(key.WithKeys("x")),
	toggle:   key.NewBinding(key.WithKeys(" ", "space")),
	title:    key.NewBinding(key.WithKeys("t")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	publish:  key.NewBinding(key.WithKeys("p")),
	colors:   key.NewBinding(key.WithKeys("o")),
	seo:      key.NewBinding(key.WithKeys("s")),
	canvas:   key.NewBinding(key.WithKeys("w")),
	upload:   key.NewBinding(key.WithKeys("i")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
