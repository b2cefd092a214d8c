// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(id, title, content string, created time.Time) models.Note {
	return models.Note{ID: id, Title: title, Content: content, CreatedAt: created, UpdatedAt: created}
}

func ids(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

// ── Filter ────────────────────────────────────────────────────────────────────

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	notes := []models.Note{
		note("a", "Groceries", "milk", time.Time{}),
		note("b", "", "", time.Time{}),
	}
	e := NewEngine(logger.Nop())

	for _, q := range []string{"", " ", "\t\n  "} {
		res := e.Filter(notes, q)
		assert.False(t, res.Degraded)
		assert.Equal(t, notes, res.Notes, "query %q", q)
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	notes := []models.Note{note("m", "Meeting Notes", "...", time.Time{})}

	res := NewEngine(logger.Nop()).Filter(notes, "MEETING")
	assert.Equal(t, []string{"m"}, ids(res.Notes))
}

func TestFilter_PreservesOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	notes := []models.Note{
		note("A", "standup", "", day(3)),
		note("B", "lunch", "", day(2)),
		note("C", "retro", "after standup", day(1)),
	}

	res := NewEngine(logger.Nop()).Filter(notes, "standup")
	assert.Equal(t, []string{"A", "C"}, ids(res.Notes))
}

func TestFilter_Cases(t *testing.T) {
	notes := []models.Note{
		note("title", "Call Mom", "", time.Time{}),
		note("content", "", "remember to call the plumber", time.Time{}),
		note("empty", "", "", time.Time{}),
		note("meta", "a.b*c", "(x|y)", time.Time{}),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title match", query: "mom", want: []string{"title"}},
		{name: "content match", query: "PLUMBER", want: []string{"content"}},
		{name: "both fields across notes", query: "call", want: []string{"title", "content"}},
		{name: "query is trimmed", query: "  call  ", want: []string{"title", "content"}},
		{name: "no match", query: "zebra", want: []string{}},
		{name: "metacharacters are literal", query: ".B*", want: []string{"meta"}},
		{name: "regex alternation is literal", query: "x|y", want: []string{"meta"}},
		{name: "dot does not match anything", query: ".", want: []string{"meta"}},
	}

	e := NewEngine(logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Filter(notes, tt.query)
			assert.False(t, res.Degraded)
			assert.Equal(t, tt.want, ids(res.Notes))
		})
	}
}

func TestFilter_NilInput(t *testing.T) {
	res := NewEngine(logger.Nop()).Filter(nil, "anything")
	assert.Empty(t, res.Notes)
	assert.False(t, res.Degraded)
}

func TestFilter_Degraded(t *testing.T) {
	var buf bytes.Buffer
	log := logger.Nop()
	log.Logger = log.Output(&buf).Level(0)

	e := NewEngine(log)
	e.fold = func(rune) rune { panic("broken folding table") }

	notes := []models.Note{note("a", "x", "y", time.Time{}), note("b", "z", "w", time.Time{})}
	res := e.Filter(notes, "x")

	assert.True(t, res.Degraded)
	require.Error(t, res.Reason)
	assert.Contains(t, res.Reason.Error(), "broken folding table")
	assert.Equal(t, notes, res.Notes)
	assert.Contains(t, buf.String(), "search degraded")
}

// ── Highlight ─────────────────────────────────────────────────────────────────

func TestHighlight_HelloWorld(t *testing.T) {
	res := NewEngine(logger.Nop()).Highlight("Hello World", "world")

	assert.Equal(t, []models.HighlightSegment{
		{Text: "Hello ", IsHighlighted: false},
		{Text: "World", IsHighlighted: true},
	}, res.Segments)
}

func TestHighlight_Cases(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []models.HighlightSegment
	}{
		{
			name:  "empty query",
			text:  "Hello",
			query: "",
			want:  []models.HighlightSegment{{Text: "Hello"}},
		},
		{
			name:  "whitespace query",
			text:  "Hello",
			query: "   ",
			want:  []models.HighlightSegment{{Text: "Hello"}},
		},
		{
			name:  "empty text",
			text:  "",
			query: "x",
			want:  []models.HighlightSegment{{Text: ""}},
		},
		{
			name:  "no match",
			text:  "Hello",
			query: "bye",
			want:  []models.HighlightSegment{{Text: "Hello"}},
		},
		{
			name:  "whole text",
			text:  "Note",
			query: "NOTE",
			want:  []models.HighlightSegment{{Text: "Note", IsHighlighted: true}},
		},
		{
			name:  "multiple matches",
			text:  "ab AB ab",
			query: "ab",
			want: []models.HighlightSegment{
				{Text: "ab", IsHighlighted: true},
				{Text: " "},
				{Text: "AB", IsHighlighted: true},
				{Text: " "},
				{Text: "ab", IsHighlighted: true},
			},
		},
		{
			name:  "non overlapping scan",
			text:  "aaa",
			query: "aa",
			want: []models.HighlightSegment{
				{Text: "aa", IsHighlighted: true},
				{Text: "a"},
			},
		},
		{
			name:  "metacharacters are literal",
			text:  "cost (USD): $5.00?",
			query: "$5.00?",
			want: []models.HighlightSegment{
				{Text: "cost (USD): "},
				{Text: "$5.00?", IsHighlighted: true},
			},
		},
		{
			name:  "unbalanced parenthesis",
			text:  "f(x",
			query: "(",
			want: []models.HighlightSegment{
				{Text: "f"},
				{Text: "(", IsHighlighted: true},
				{Text: "x"},
			},
		},
		{
			name:  "query is trimmed",
			text:  "buy milk",
			query: " milk ",
			want: []models.HighlightSegment{
				{Text: "buy "},
				{Text: "milk", IsHighlighted: true},
			},
		},
		{
			name:  "unicode",
			text:  "Привет, мир",
			query: "МИР",
			want: []models.HighlightSegment{
				{Text: "Привет, "},
				{Text: "мир", IsHighlighted: true},
			},
		},
	}

	e := NewEngine(logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Highlight(tt.text, tt.query)
			assert.False(t, res.Degraded)
			assert.Equal(t, tt.want, res.Segments)
			assert.Equal(t, tt.text, Join(res.Segments))
		})
	}
}

func TestHighlight_Degraded(t *testing.T) {
	e := NewEngine(logger.Nop())
	e.fold = func(rune) rune { panic("broken folding table") }

	res := e.Highlight("Hello World", "world")

	assert.True(t, res.Degraded)
	assert.ErrorContains(t, res.Reason, "broken folding table")
	assert.Equal(t, []models.HighlightSegment{{Text: "Hello World"}}, res.Segments)
}

// ── properties ────────────────────────────────────────────────────────────────

const alphabet = "aAbB .*()[]?+$^|\\ßПп"

func randomText(r *rand.Rand, maxLen int) string {
	runes := []rune(alphabet)
	n := r.IntN(maxLen + 1)
	var b strings.Builder
	for range n {
		b.WriteRune(runes[r.IntN(len(runes))])
	}
	return b.String()
}

func TestHighlight_RoundTripProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	e := NewEngine(logger.Nop())

	for range 2000 {
		text := randomText(r, 40)
		query := randomText(r, 4)

		res := e.Highlight(text, query)
		require.False(t, res.Degraded)
		require.Equal(t, text, Join(res.Segments), "text=%q query=%q", text, query)

		q := strings.TrimSpace(query)
		for _, s := range res.Segments {
			if s.IsHighlighted {
				require.Equal(t, NormalizeQuery(q), NormalizeQuery(s.Text), "segment %q query %q", s.Text, q)
			}
		}
	}
}

func TestFilter_MembershipProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	e := NewEngine(logger.Nop())

	for range 500 {
		notes := make([]models.Note, r.IntN(8))
		for i := range notes {
			notes[i] = note(string(rune('a'+i)), randomText(r, 12), randomText(r, 20), time.Time{})
		}
		query := randomText(r, 3)
		q := NormalizeQuery(query)

		res := e.Filter(notes, query)
		require.False(t, res.Degraded)

		if q == "" {
			require.Equal(t, notes, res.Notes)
			continue
		}

		kept := map[string]bool{}
		for _, n := range res.Notes {
			kept[n.ID] = true
		}
		for _, n := range notes {
			matches := strings.Contains(NormalizeQuery(n.Title), q) || strings.Contains(NormalizeQuery(n.Content), q)
			require.Equal(t, matches, kept[n.ID], "note %+v query %q", n, query)
		}
	}
}

func TestFilterAndHighlight_AgreeOnCaseFolding(t *testing.T) {
	tests := []struct {
		name  string
		title string
		query string
		want  string
	}{
		{name: "dotted capital I", title: "İstanbul trip", query: "i", want: "İ"},
		{name: "kelvin sign", title: "300 K", query: "k", want: "K"},
		{name: "greek final sigma", title: "ΟΔΟΣ", query: "σ", want: "Σ"},
		{name: "cyrillic", title: "Привет", query: "ПРИ", want: "При"},
	}

	e := NewEngine(logger.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := []models.Note{note("a", tt.title, "", time.Time{})}

			require.Len(t, e.Filter(notes, tt.query).Notes, 1)

			var highlighted []string
			for _, s := range e.Highlight(tt.title, tt.query).Segments {
				if s.IsHighlighted {
					highlighted = append(highlighted, s.Text)
				}
			}
			require.NotEmpty(t, highlighted)
			assert.Equal(t, tt.want, highlighted[0])
		})
	}
}

// ── Apply ─────────────────────────────────────────────────────────────────────

func TestApply(t *testing.T) {
	notes := []models.Note{
		note("a", "Weekly Plan", "plan the week", time.Time{}),
		note("b", "Shopping", "eggs", time.Time{}),
	}

	got := NewEngine(logger.Nop()).Apply(notes, "plan")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Note.ID)
	assert.Equal(t, []models.HighlightSegment{
		{Text: "Weekly "},
		{Text: "Plan", IsHighlighted: true},
	}, got[0].Title)
	assert.Equal(t, "plan the week", Join(got[0].Content))
}
