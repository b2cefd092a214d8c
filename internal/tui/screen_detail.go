// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) openDetail(noteID string) (tea.Model, tea.Cmd) {
	m.closeDetail()

	s := newStream[*models.Note](m.nextStreamID)
	m.nextStreamID++

	m.detailID = noteID
	m.detail = nil
	m.detailLoaded = false
	m.detailSub = nil
	m.detailStream = s
	m.screen = screenDetail
	m.status, m.errMsg = "", ""

	// Show the list copy until the first snapshot arrives.
	for _, n := range m.notes {
		if n.ID == noteID {
			c := n.Clone()
			m.detail = &c
			break
		}
	}

	return m, tea.Batch(m.cmdSubscribeNote(noteID, s), s.next())
}

func (m *mainLoopModel) closeDetail() {
	if m.detailSub != nil {
		m.detailSub.Cancel()
		m.detailSub = nil
	}
	if m.detailStream != nil {
		m.detailStream.close()
		m.detailStream = nil
	}
}

func (m mainLoopModel) onNoteSubscribed(msg noteSubscribedMsg) (tea.Model, tea.Cmd) {
	if m.detailStream == nil || msg.streamID != m.detailStream.id {
		// The user left the note before the subscription opened.
		if msg.sub != nil {
			msg.sub.Cancel()
		}
		return m, nil
	}
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.detailSub = msg.sub
	return m, nil
}

func (m mainLoopModel) onNoteSnapshot(msg streamMsg[*models.Note]) (tea.Model, tea.Cmd) {
	if m.detailStream == nil || msg.id != m.detailStream.id {
		return m, nil
	}
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.detail = msg.value
	m.detailLoaded = true
	return m, m.detailStream.next()
}

func (m mainLoopModel) isOwner() bool {
	return m.detail != nil && m.detail.UserID == m.session.UserID
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus("Content copied to clipboard")
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			m.closeDetail()
			m.screen = screenList
			m.status, m.errMsg = "", ""
			return m, nil
		case key.Matches(msg, keys.copy):
			if m.detail == nil {
				return m, nil
			}
			return m, cmdCopy(m.detail.Content)
		case key.Matches(msg, keys.share):
			if !m.isOwner() {
				m.errMsg = "Only the owner can share this note"
				return m, nil
			}
			m.share = newShareForm()
			m.screen = screenShare
			cmd := m.share.init()
			return m, cmd
		case key.Matches(msg, keys.delete):
			if !m.isOwner() {
				m.errMsg = "Only the owner can delete this note"
				return m, nil
			}
			m.screen = screenConfirmDelete
			return m, nil
		}
	}
	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	if m.detail == nil {
		body := "Loading..."
		if m.detailLoaded {
			body = "This note was deleted or is no longer shared with you."
		}
		return renderPage("NOTE", body+m.footer(), "esc: back")
	}

	n := m.detail
	query := m.query.Value()

	var b strings.Builder
	b.WriteString(renderSegments(m.engine.Highlight(n.Title, query).Segments, m.theme.highlight))
	b.WriteString("\n")
	b.WriteString(m.theme.muted.Render(fmt.Sprintf("%s · created %s · updated %s",
		n.Type, formatTime(n.CreatedAt), formatTime(n.UpdatedAt))))
	b.WriteString("\n")
	if len(n.Tags) > 0 {
		b.WriteString(m.theme.muted.Render("tags: " + strings.Join(n.Tags, ", ")))
		b.WriteString("\n")
	}
	if n.TranscriptionID != nil {
		b.WriteString(m.theme.muted.Render("from transcription " + *n.TranscriptionID))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderSegments(m.engine.Highlight(n.Content, query).Segments, m.theme.highlight))
	b.WriteString("\n")

	if n.IsShared {
		b.WriteString("\nShared with:\n")
		for _, g := range n.SharedWith {
			access := "read"
			if g.CanEdit {
				access = "edit"
			}
			b.WriteString(fmt.Sprintf("  %s (%s)\n", g.Email, access))
		}
	}

	hotKeys := "esc: back │ c: copy"
	if m.isOwner() {
		hotKeys += " │ s: share │ d: delete"
	}
	return renderPage("NOTE", strings.TrimRight(b.String(), "\n")+m.footer(), hotKeys)
}
