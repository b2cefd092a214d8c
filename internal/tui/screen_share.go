// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type shareForm struct {
	email      textinput.Model
	canEdit    bool
	submitting bool
}

func newShareForm() shareForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	return shareForm{email: email}
}

func (f *shareForm) init() tea.Cmd {
	return f.email.Focus()
}

func (m mainLoopModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteSharedMsg:
		m.share.submitting = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.screen = screenDetail
		m.setStatus("Shared with " + msg.email)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenDetail
			m.status, m.errMsg = "", ""
			return m, nil
		case key.Matches(msg, keys.tab):
			m.share.canEdit = !m.share.canEdit
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.share.submitting {
				return m, nil
			}
			m.share.submitting = true
			return m, m.cmdShare(m.detailID, m.share.email.Value(), m.share.canEdit)
		}
	}

	var cmd tea.Cmd
	m.share.email, cmd = m.share.email.Update(msg)
	return m, cmd
}

func (m mainLoopModel) cmdShare(noteID, email string, canEdit bool) tea.Cmd {
	ctx, notes := m.ctx, m.services.NotesService
	return func() tea.Msg {
		err := notes.Share(ctx, noteID, email, canEdit)
		return noteSharedMsg{email: strings.TrimSpace(email), err: err}
	}
}

func (m mainLoopModel) viewShare() string {
	var b strings.Builder
	b.WriteString("Email  │ [")
	b.WriteString(m.share.email.View())
	b.WriteString("]\n")
	b.WriteString("Access │ ")
	if m.share.canEdit {
		b.WriteString("read and edit")
	} else {
		b.WriteString("read only")
	}
	b.WriteString("\n")
	if m.share.submitting {
		b.WriteString("\n[Sharing...]\n")
	}

	return renderPage("SHARE NOTE", strings.TrimRight(b.String(), "\n")+m.footer(), "enter: share │ tab: toggle edit access │ esc: cancel")
}
