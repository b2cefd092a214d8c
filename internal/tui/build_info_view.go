// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-voice-notes/models"
)

// renderBuildInfoWindow lists the client build and, once fetched, the
// server's. Unstamped values show as N/A.
func renderBuildInfoWindow(info models.AppBuildInfo, server *models.VersionResponse) string {
	rows := [][2]string{
		{"Application", "go-voice-notes"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}
	if server != nil {
		rows = append(rows,
			[2]string{"Server version", server.Version},
			[2]string{"Server commit", server.Commit},
		)
	}

	labels := make([]string, len(rows))
	values := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = helpStyle.Render(row[0] + ":")
		values[i] = valueOrNA(row[1])
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(labels, "\n"),
		"  ",
		strings.Join(values, "\n"),
	)
	return renderPage("ABOUT", body, "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
