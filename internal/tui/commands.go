// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"path/filepath"

	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func (m mainLoopModel) cmdLoadCached() tea.Cmd {
	ctx, notes, userID := m.ctx, m.services.NotesService, m.session.UserID
	return func() tea.Msg {
		cached, err := notes.CachedUserNotes(ctx, userID)
		if err != nil {
			return nil
		}
		return cachedNotesMsg{notes: cached}
	}
}

func (m mainLoopModel) cmdSubscribeList() tea.Cmd {
	ctx, notes, userID, s := m.ctx, m.services.NotesService, m.session.UserID, m.listStream
	return func() tea.Msg {
		sub, err := notes.SubscribeUserNotes(ctx, userID, s.put, s.fail)
		return listSubscribedMsg{sub: sub, err: err}
	}
}

func (m mainLoopModel) cmdSubscribeNote(noteID string, s *stream[*models.Note]) tea.Cmd {
	ctx, notes := m.ctx, m.services.NotesService
	return func() tea.Msg {
		sub, err := notes.SubscribeNote(ctx, noteID, s.put, s.fail)
		return noteSubscribedMsg{streamID: s.id, sub: sub, err: err}
	}
}

func (m mainLoopModel) cmdLoadSettings() tea.Cmd {
	ctx, settings, userID := m.ctx, m.services.SettingsService, m.session.UserID
	return func() tea.Msg {
		s, err := settings.GetSettings(ctx, userID)
		return settingsLoadedMsg{settings: s, err: err}
	}
}

func (m mainLoopModel) cmdServerVersion() tea.Cmd {
	ctx, info := m.ctx, m.services.InfoService
	return func() tea.Msg {
		v, err := info.ServerVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}

func (m mainLoopModel) cmdWaitInbox() tea.Cmd {
	if m.inbox == nil {
		return nil
	}
	events, done := m.inbox, m.ctx.Done()
	return func() tea.Msg {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			return inboxEventMsg{event: ev}
		case <-done:
			return nil
		}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func titleFromEvent(ev inbox.Event) string {
	return filepath.Base(ev.Path)
}
