// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-voice-notes/internal/search"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listTitleWidth   = 36
	listPreviewWidth = 60
)

// visible returns the notes matching the current query with their
// highlighted title and content.
func (m mainLoopModel) visible() []search.NoteHighlights {
	return m.engine.Apply(m.notes, m.query.Value())
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searching {
			var cmd tea.Cmd
			m.query, cmd = m.query.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.searching = false
			m.query.Blur()
			m.query.SetValue("")
			m.idx = 0
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.searching = false
			m.query.Blur()
			return m, nil
		case keyMsg.String() == "up" || keyMsg.String() == "down":
			m.moveCursor(keyMsg.String() == "down")
			return m, nil
		}
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		m.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, m.cmdServerVersion()
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		cmd := m.query.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.esc):
		m.query.SetValue("")
		m.idx = 0
	case key.Matches(keyMsg, keys.up):
		m.moveCursor(false)
	case key.Matches(keyMsg, keys.down):
		m.moveCursor(true)
	case key.Matches(keyMsg, keys.enter):
		items := m.visible()
		if len(items) == 0 {
			return m, nil
		}
		return m.openDetail(items[m.idx].Note.ID)
	case key.Matches(keyMsg, keys.newNote):
		m.create = newCreateForm()
		m.screen = screenCreate
		cmd := m.create.init()
		return m, cmd
	case key.Matches(keyMsg, keys.transcribe):
		m.transcribe = newTranscribeForm()
		m.screen = screenTranscribe
		cmd := m.transcribe.init()
		return m, cmd
	case key.Matches(keyMsg, keys.settings):
		m.settings = newSettingsForm()
		m.screen = screenSettings
		return m, m.cmdLoadSettings()
	}

	return m, nil
}

func (m *mainLoopModel) moveCursor(down bool) {
	n := len(m.visible())
	switch {
	case down && m.idx < n-1:
		m.idx++
	case !down && m.idx > 0:
		m.idx--
	}
}

func (m *mainLoopModel) clampIdx() {
	n := len(m.visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.searching || m.query.Value() != "" {
		b.WriteString(m.query.View())
		b.WriteString("\n\n")
	}

	items := m.visible()
	switch {
	case len(m.notes) == 0 && !m.live:
		b.WriteString("Loading notes...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes yet. Press n to write one or t to transcribe a recording.\n")
	case len(items) == 0:
		b.WriteString(fmt.Sprintf("Nothing matches %q.\n", m.query.Value()))
	}

	for i, item := range items {
		cursor := "  "
		if i == m.idx {
			cursor = m.theme.selected.Render("> ")
		}

		title := renderSegments(truncateSegments(item.Title, listTitleWidth), m.theme.highlight)
		if item.Note.Title == "" {
			title = m.theme.muted.Render("(untitled)")
		}

		shared := ""
		if item.Note.IsShared || item.Note.UserID != m.session.UserID {
			shared = " ⇄"
		}

		b.WriteString(fmt.Sprintf("%s%-9s %s%s  %s\n",
			cursor,
			"["+string(item.Note.Type)+"]",
			title,
			shared,
			m.theme.muted.Render(formatTime(item.Note.CreatedAt)),
		))

		if m.query.Value() != "" && item.Note.Content != "" {
			preview := renderSegments(truncateSegments(item.Content, listPreviewWidth), m.theme.highlight)
			b.WriteString("            ")
			b.WriteString(preview)
			b.WriteString("\n")
		}
	}

	liveMark := ""
	if !m.live {
		liveMark = " (offline)"
	}
	title := fmt.Sprintf("NOTES · %s · %d%s", m.session.Email, len(items), liveMark)

	return renderPage(title, strings.TrimRight(b.String(), "\n")+m.footer(),
		"enter: open │ /: search │ n: new │ t: transcribe │ s: settings │ v: version │ l: logout │ q: quit")
}
