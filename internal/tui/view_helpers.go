// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderSegments draws highlighted runs with hl and the rest unstyled.
func renderSegments(segments []models.HighlightSegment, hl lipgloss.Style) string {
	var b strings.Builder
	for _, s := range segments {
		if s.IsHighlighted {
			b.WriteString(hl.Render(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// truncateSegments keeps at most max runes of the first line of the
// segments, appending "..." when something was cut.
func truncateSegments(segments []models.HighlightSegment, max int) []models.HighlightSegment {
	out := make([]models.HighlightSegment, 0, len(segments))
	left := max
	for _, s := range segments {
		text, cut := s.Text, false
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text, cut = text[:i], true
		}
		if n := utf8.RuneCountInString(text); n > left {
			text, cut = string([]rune(text)[:left]), true
		}
		if text != "" {
			out = append(out, models.HighlightSegment{Text: text, IsHighlighted: s.IsHighlighted})
		}
		left -= utf8.RuneCountInString(text)
		if cut {
			out = append(out, models.HighlightSegment{Text: "..."})
			return out
		}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
