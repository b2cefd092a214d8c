// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	createFieldTitle = iota
	createFieldTags
	createFieldContent
	createFieldCount
)

type createForm struct {
	title   textinput.Model
	tags    textinput.Model
	content textarea.Model
	typeIdx int
	focus   int
	saving  bool
}

func newCreateForm() createForm {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 50

	tags := textinput.New()
	tags.Placeholder = "comma separated tags"
	tags.CharLimit = 200
	tags.Width = 50

	content := textarea.New()
	content.Placeholder = "What is on your mind?"
	content.SetWidth(60)
	content.SetHeight(8)

	return createForm{title: title, tags: tags, content: content}
}

func (f *createForm) init() tea.Cmd {
	f.focus = createFieldTitle
	return f.title.Focus()
}

func (f *createForm) setFocus(i int) tea.Cmd {
	f.title.Blur()
	f.tags.Blur()
	f.content.Blur()

	f.focus = (i + createFieldCount) % createFieldCount
	switch f.focus {
	case createFieldTags:
		return f.tags.Focus()
	case createFieldContent:
		return f.content.Focus()
	default:
		return f.title.Focus()
	}
}

func (f createForm) draft() models.NoteDraft {
	return models.NoteDraft{
		Title:   strings.TrimSpace(f.title.Value()),
		Content: f.content.Value(),
		Type:    models.NoteTypes[f.typeIdx],
		Tags:    parseTags(f.tags.Value()),
	}
}

// parseTags splits a comma separated list, dropping blanks and repeats.
func parseTags(s string) []string {
	tags := lo.FilterMap(strings.Split(s, ","), func(t string, _ int) (string, bool) {
		t = strings.TrimSpace(t)
		return t, t != ""
	})
	return lo.Uniq(tags)
}

func (m mainLoopModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteCreatedMsg:
		m.create.saving = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.setStatus("Note created")
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenList
			m.status, m.errMsg = "", ""
			return m, nil
		case key.Matches(msg, keys.tab):
			cmd := m.create.setFocus(m.create.focus + 1)
			return m, cmd
		case key.Matches(msg, keys.backtab):
			cmd := m.create.setFocus(m.create.focus - 1)
			return m, cmd
		case key.Matches(msg, keys.cycle):
			m.create.typeIdx = (m.create.typeIdx + 1) % len(models.NoteTypes)
			return m, nil
		case key.Matches(msg, keys.save):
			if m.create.saving {
				return m, nil
			}
			draft := m.create.draft()
			if draft.Title == "" && strings.TrimSpace(draft.Content) == "" {
				m.errMsg = "Write a title or some content first"
				return m, nil
			}
			m.create.saving = true
			return m, m.cmdCreate(draft)
		}
	}

	var cmd tea.Cmd
	switch m.create.focus {
	case createFieldTags:
		m.create.tags, cmd = m.create.tags.Update(msg)
	case createFieldContent:
		m.create.content, cmd = m.create.content.Update(msg)
	default:
		m.create.title, cmd = m.create.title.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) cmdCreate(draft models.NoteDraft) tea.Cmd {
	ctx, notes := m.ctx, m.services.NotesService
	return func() tea.Msg {
		id, err := notes.Create(ctx, draft)
		return noteCreatedMsg{id: id, err: err}
	}
}

func (m mainLoopModel) viewCreate() string {
	var b strings.Builder
	b.WriteString("Title │ [")
	b.WriteString(m.create.title.View())
	b.WriteString("]\n")
	b.WriteString("Type  │ ")
	b.WriteString(string(models.NoteTypes[m.create.typeIdx]))
	b.WriteString("\n")
	b.WriteString("Tags  │ [")
	b.WriteString(m.create.tags.View())
	b.WriteString("]\n\n")
	b.WriteString(m.create.content.View())
	b.WriteString("\n")
	if m.create.saving {
		b.WriteString("\n[Saving...]\n")
	}

	return renderPage("NEW NOTE", strings.TrimRight(b.String(), "\n")+m.footer(),
		"ctrl+s: save │ tab: next field │ ctrl+t: change type │ esc: cancel")
}
