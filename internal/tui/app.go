// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-voice-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes the sign-in pages. It owns ctrl+c, the version overlay
// of the menu and NavigateTo, and hands everything else to the open page.
// The program ends once a sign-in or a registration succeeds.
type RootModel struct {
	pages     map[string]tea.Model
	page      tea.Model
	buildInfo models.AppBuildInfo

	aboutOpen  bool
	quitByUser bool
	session    models.Session
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{pages: pages, page: pages[startPage], buildInfo: buildInfo}
}

func (r RootModel) Init() tea.Cmd {
	if r.page == nil {
		return nil
	}
	return r.page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch k := msg.String(); {
		case k == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case r.aboutOpen:
			if k == "esc" || k == "v" {
				r.aboutOpen = false
			}
			return r, nil
		case k == "v" && r.onMenu():
			r.aboutOpen = true
			return r, nil
		}
	case NavigateTo:
		next, ok := r.pages[msg.Page]
		if !ok {
			return r, nil
		}
		r.page = next
		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.page.Init()
	case AuthResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
	}

	if r.page == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.page, cmd = r.page.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo, nil)
	case r.page == nil:
		return renderPage("VOICE NOTES", "", "")
	}
	return r.page.View()
}

func (r RootModel) onMenu() bool {
	_, ok := r.page.(*MenuModel)
	return ok
}
