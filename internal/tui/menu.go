// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the first page of the sign-in flow. Items are picked with the
// arrows and enter or by their number.
type MenuModel struct {
	items  []menuItem
	cursor int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{items: []menuItem{
		{title: "Sign in", page: pageLogin},
		{title: "Register", page: pageRegister},
	}}
}

func (m *MenuModel) Init() tea.Cmd { return nil }

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)
	case key.Matches(keyMsg, keys.down):
		m.cursor = (m.cursor + 1) % len(m.items)
	case key.Matches(keyMsg, keys.enter):
		return m, m.open(m.cursor)
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil && n >= 1 && n <= len(m.items) {
			m.cursor = n - 1
			return m, m.open(m.cursor)
		}
	}
	return m, nil
}

func (m *MenuModel) open(i int) tea.Cmd {
	page := m.items[i].page
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func (m *MenuModel) View() string {
	lines := make([]string, len(m.items))
	for i, item := range m.items {
		line := strconv.Itoa(i+1) + ". " + item.title
		if i == m.cursor {
			line = titleStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines[i] = line
	}
	return renderPage("VOICE NOTES", strings.Join(lines, "\n"), "enter/1-2: select │ ↑/↓: move │ v: version │ ctrl+c: quit")
}
