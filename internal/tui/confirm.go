// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.screen = screenDetail
		m.setStatus("Deleting...")
		return m, m.cmdDelete(m.detailID)
	case key.Matches(keyMsg, keys.no):
		m.screen = screenDetail
	}
	return m, nil
}

func (m mainLoopModel) cmdDelete(noteID string) tea.Cmd {
	ctx, notes := m.ctx, m.services.NotesService
	return func() tea.Msg {
		return noteDeletedMsg{err: notes.Delete(ctx, noteID)}
	}
}

func (m mainLoopModel) onNoteDeleted(msg noteDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	if m.screen == screenDetail || m.screen == screenConfirmDelete {
		m.closeDetail()
		m.screen = screenList
	}
	m.setStatus("Note deleted")
	return m, nil
}

func (m mainLoopModel) viewConfirmDelete() string {
	title := "this note"
	if m.detail != nil && m.detail.Title != "" {
		title = "\"" + m.detail.Title + "\""
	}
	content := "Delete " + title + "?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
