// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// palette holds the styles that follow the user's theme.
type palette struct {
	highlight lipgloss.Style
	selected  lipgloss.Style
	muted     lipgloss.Style
}

func paletteFor(theme models.Theme) palette {
	if theme == models.ThemeDark {
		return palette{
			highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
			selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	}
	return palette{
		highlight: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("228")),
		selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		muted:     lipgloss.NewStyle().Faint(true),
	}
}
