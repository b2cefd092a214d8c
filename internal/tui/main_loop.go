// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/internal/search"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenShare
	screenConfirmDelete
	screenCreate
	screenTranscribe
	screenSettings
)

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	engine    *search.Engine
	session   models.Session
	buildInfo models.AppBuildInfo
	inbox     <-chan inbox.Event

	screen        screen
	showBuildInfo bool
	serverVersion *models.VersionResponse
	theme         palette

	// live list
	notes      []models.Note
	live       bool
	listSub    *service.Subscription[[]models.Note]
	listStream *stream[[]models.Note]
	query      textinput.Model
	searching  bool
	idx        int

	// detail of one note, kept live by its own subscription
	detailID     string
	detail       *models.Note
	detailLoaded bool
	detailSub    *service.Subscription[*models.Note]
	detailStream *stream[*models.Note]
	nextStreamID int

	share      shareForm
	create     createForm
	transcribe transcribeForm
	settings   settingsForm

	status string
	errMsg string
	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, engine *search.Engine, session models.Session, buildInfo models.AppBuildInfo, events <-chan inbox.Event) mainLoopModel {
	query := textinput.New()
	query.Placeholder = "search notes"
	query.CharLimit = 200
	query.Width = 40
	query.Prompt = "/ "

	return mainLoopModel{
		ctx:          ctx,
		services:     services,
		engine:       engine,
		session:      session,
		buildInfo:    buildInfo,
		inbox:        events,
		theme:        paletteFor(models.DefaultSettings().Theme),
		listStream:   newStream[[]models.Note](1),
		query:        query,
		nextStreamID: 2,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadCached(),
		m.cmdSubscribeList(),
		m.listStream.next(),
		m.cmdLoadSettings(),
		m.cmdWaitInbox(),
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cachedNotesMsg:
		if !m.live {
			m.notes = msg.notes
			m.clampIdx()
		}
		return m, nil
	case listSubscribedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.listSub = msg.sub
		return m, nil
	case streamMsg[[]models.Note]:
		if msg.err != nil {
			m.live = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.live = true
		m.notes = msg.value
		m.clampIdx()
		return m, m.listStream.next()
	case noteDeletedMsg:
		return m.onNoteDeleted(msg)
	case noteSubscribedMsg:
		return m.onNoteSubscribed(msg)
	case streamMsg[*models.Note]:
		return m.onNoteSnapshot(msg)
	case settingsLoadedMsg:
		if msg.err == nil {
			m.theme = paletteFor(msg.settings.Theme)
		}
		if m.screen == screenSettings {
			m.settings.loaded(msg.settings, msg.err)
		}
		return m, nil
	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = &msg.version
		}
		return m, nil
	case inboxEventMsg:
		m.onInboxEvent(msg.event)
		return m, m.cmdWaitInbox()
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenShare:
		return m.updateShare(msg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(msg)
	case screenCreate:
		return m.updateCreate(msg)
	case screenTranscribe:
		return m.updateTranscribe(msg)
	case screenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenShare:
		return m.viewShare()
	case screenConfirmDelete:
		return m.viewConfirmDelete()
	case screenCreate:
		return m.viewCreate()
	case screenTranscribe:
		return m.viewTranscribe()
	case screenSettings:
		return m.viewSettings()
	default:
		return m.viewList()
	}
}

// close cancels every live subscription. It is called once the program
// has exited.
func (m mainLoopModel) close() {
	if m.listSub != nil {
		m.listSub.Cancel()
	}
	m.listStream.close()
	m.closeDetail()
}

func (m *mainLoopModel) setStatus(status string) {
	m.status = status
	m.errMsg = ""
}

func (m *mainLoopModel) setError(err error) {
	m.status = ""
	m.errMsg = humanizeError(err)
}

func (m *mainLoopModel) onInboxEvent(ev inbox.Event) {
	switch {
	case ev.Err != nil:
		m.errMsg = "Inbox " + titleFromEvent(ev) + ": " + humanizeError(ev.Err)
	case ev.NoteID != "":
		m.setStatus("Note created from " + titleFromEvent(ev))
	}
}

func (m mainLoopModel) footer() string {
	switch {
	case m.errMsg != "":
		return "\n" + errorStyle.Render("Error: "+m.errMsg)
	case m.status != "":
		return "\n" + statusStyle.Render(m.status)
	}
	return ""
}
