// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	search     key.Binding
	newNote    key.Binding
	transcribe key.Binding
	settings   key.Binding
	share      key.Binding
	delete     key.Binding
	copy       key.Binding
	save       key.Binding
	cycle      key.Binding
	toggle     key.Binding
	version    key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:     key.NewBinding(key.WithKeys("l")),
	search:     key.NewBinding(key.WithKeys("/")),
	newNote:    key.NewBinding(key.WithKeys("n")),
	transcribe: key.NewBinding(key.WithKeys("t")),
	settings:   key.NewBinding(key.WithKeys("s")),
	share:      key.NewBinding(key.WithKeys("s")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	cycle:      key.NewBinding(key.WithKeys("ctrl+t")),
	toggle:     key.NewBinding(key.WithKeys(" ", "enter")),
	version:    key.NewBinding(key.WithKeys("v")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
