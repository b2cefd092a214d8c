// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsRowTheme = iota
	settingsRowNotifications
	settingsRowLanguage
	settingsRowCount
)

type settingsForm struct {
	ready    bool
	current  models.UserSettings
	edited   models.UserSettings
	language textinput.Model
	row      int
	saving   bool
}

func newSettingsForm() settingsForm {
	language := textinput.New()
	language.Placeholder = "en"
	language.CharLimit = 8
	language.Width = 10
	return settingsForm{language: language}
}

func (f *settingsForm) loaded(s models.UserSettings, err error) {
	if err != nil {
		s = models.DefaultSettings()
	}
	f.ready = true
	f.current, f.edited = s, s
	f.language.SetValue(s.Language)
}

// update returns the changed fields only.
func (f settingsForm) update() models.SettingsUpdate {
	var u models.SettingsUpdate
	if f.edited.Theme != f.current.Theme {
		theme := f.edited.Theme
		u.Theme = &theme
	}
	if f.edited.Notifications != f.current.Notifications {
		n := f.edited.Notifications
		u.Notifications = &n
	}
	if lang := strings.TrimSpace(f.language.Value()); lang != f.current.Language {
		u.Language = &lang
	}
	return u
}

func (m mainLoopModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.settings

	switch msg := msg.(type) {
	case settingsSavedMsg:
		f.saving = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		f.loaded(msg.settings, nil)
		m.theme = paletteFor(msg.settings.Theme)
		m.setStatus("Settings saved")
		return m, nil
	case tea.KeyMsg:
		if !f.ready {
			if key.Matches(msg, keys.esc) {
				m.screen = screenList
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenList
			m.status, m.errMsg = "", ""
			return m, nil
		case key.Matches(msg, keys.save):
			u := f.update()
			if u == (models.SettingsUpdate{}) {
				m.setStatus("Nothing to save")
				return m, nil
			}
			f.saving = true
			return m, m.cmdSaveSettings(u)
		case msg.String() == "up", msg.String() == "shift+tab":
			cmd := f.setRow(f.row - 1)
			return m, cmd
		case msg.String() == "down", msg.String() == "tab":
			cmd := f.setRow(f.row + 1)
			return m, cmd
		case f.row != settingsRowLanguage && key.Matches(msg, keys.toggle):
			f.toggle()
			return m, nil
		}
	}

	if f.row == settingsRowLanguage {
		var cmd tea.Cmd
		f.language, cmd = f.language.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (f *settingsForm) setRow(i int) tea.Cmd {
	f.row = (i + settingsRowCount) % settingsRowCount
	if f.row == settingsRowLanguage {
		return f.language.Focus()
	}
	f.language.Blur()
	return nil
}

func (f *settingsForm) toggle() {
	switch f.row {
	case settingsRowTheme:
		if f.edited.Theme == models.ThemeDark {
			f.edited.Theme = models.ThemeLight
		} else {
			f.edited.Theme = models.ThemeDark
		}
	case settingsRowNotifications:
		f.edited.Notifications = !f.edited.Notifications
	}
}

func (m mainLoopModel) cmdSaveSettings(u models.SettingsUpdate) tea.Cmd {
	ctx, settings, userID := m.ctx, m.services.SettingsService, m.session.UserID
	return func() tea.Msg {
		s, err := settings.UpdateSettings(ctx, userID, u)
		return settingsSavedMsg{settings: s, err: err}
	}
}

func (m mainLoopModel) viewSettings() string {
	f := m.settings
	if !f.ready {
		return renderPage("SETTINGS", "Loading..."+m.footer(), "esc: back")
	}

	notifications := "off"
	if f.edited.Notifications {
		notifications = "on"
	}
	rows := []string{
		fmt.Sprintf("Theme         │ %s", f.edited.Theme),
		fmt.Sprintf("Notifications │ %s", notifications),
		fmt.Sprintf("Language      │ [%s]", f.language.View()),
	}

	var b strings.Builder
	for i, row := range rows {
		cursor := "  "
		if i == f.row {
			cursor = m.theme.selected.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(row)
		b.WriteString("\n")
	}
	if f.saving {
		b.WriteString("\n[Saving...]\n")
	}

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n")+m.footer(),
		"↑/↓: select │ space: toggle │ ctrl+s: save │ esc: back")
}
