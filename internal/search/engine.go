// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package search

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/samber/lo"
)

// FilterResult is the outcome of [Engine.Filter].
type FilterResult struct {
	// Notes is the filtered list in the input order. When Degraded is true
	// it is the input list itself.
	Notes []models.Note

	// Degraded reports that matching failed and Notes is the unfiltered input.
	Degraded bool

	// Reason explains a degraded result. It is nil otherwise.
	Reason error
}

// HighlightResult is the outcome of [Engine.Highlight].
type HighlightResult struct {
	// Segments concatenate to the input text, in order.
	Segments []models.HighlightSegment

	// Degraded reports that matching failed and Segments is a single
	// unhighlighted run.
	Degraded bool

	// Reason explains a degraded result. It is nil otherwise.
	Reason error
}

// Engine filters and highlights notes. The zero value is not usable; create
// engines with [NewEngine]. An Engine is safe for concurrent use.
type Engine struct {
	log *logger.Logger

	// fold is the single case rule shared by Filter and Highlight. It maps
	// runes one to one, so match offsets stay valid in the original text.
	fold func(rune) rune
}

// NewEngine returns an engine that logs degraded results to log.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		log:  log,
		fold: unicode.ToLower,
	}
}

// NormalizeQuery trims and lower-cases a query rune by rune, the same way the
// engine compares text. An empty result means "no filter".
func NormalizeQuery(query string) string {
	return strings.Map(unicode.ToLower, strings.TrimSpace(query))
}

// Filter keeps the notes whose title or content contains query,
// case-insensitively, preserving their relative order.
//
// A query that is empty after trimming returns notes unchanged.
// Empty fields never match.
func (e *Engine) Filter(notes []models.Note, query string) (res FilterResult) {
	q := NormalizeQuery(query)
	if q == "" {
		return FilterResult{Notes: notes}
	}

	defer func() {
		if r := recover(); r != nil {
			res = e.degradeFilter(notes, query, fmt.Errorf("filter panicked: %v", r))
		}
	}()

	folded := e.foldQuery(strings.TrimSpace(query))
	filtered := lo.Filter(notes, func(n models.Note, _ int) bool {
		return e.contains(n.Title, folded) || e.contains(n.Content, folded)
	})

	return FilterResult{Notes: filtered}
}

func (e *Engine) contains(field string, q []rune) bool {
	_, _, ok := e.index(field, 0, q)
	return ok
}

func (e *Engine) foldQuery(q string) []rune {
	runes := []rune(q)
	for i, r := range runes {
		runes[i] = e.fold(r)
	}
	return runes
}

// index returns the byte span of the first occurrence of q in text starting
// at byte offset from, comparing folded runes.
func (e *Engine) index(text string, from int, q []rune) (start, end int, ok bool) {
	for i := from; i < len(text); {
		if j, matched := e.matchAt(text, i, q); matched {
			return i, j, true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return 0, 0, false
}

func (e *Engine) matchAt(text string, i int, q []rune) (int, bool) {
	for _, want := range q {
		if i >= len(text) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if e.fold(r) != want {
			return 0, false
		}
		i += size
	}
	return i, true
}

// Highlight splits text into runs by every case-insensitive, non-overlapping
// occurrence of query, scanning left to right. Matched runs are highlighted.
//
// The query is trimmed first so that highlighting agrees with Filter. An empty
// query or empty text yields a single unhighlighted segment equal to text.
func (e *Engine) Highlight(text, query string) (res HighlightResult) {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return HighlightResult{Segments: plain(text)}
	}

	defer func() {
		if r := recover(); r != nil {
			res = e.degradeHighlight(text, query, fmt.Errorf("highlight panicked: %v", r))
		}
	}()

	folded := e.foldQuery(q)

	var segments []models.HighlightSegment
	last := 0
	for {
		start, end, ok := e.index(text, last, folded)
		if !ok {
			break
		}
		if start > last {
			segments = append(segments, models.HighlightSegment{Text: text[last:start]})
		}
		segments = append(segments, models.HighlightSegment{Text: text[start:end], IsHighlighted: true})
		last = end
	}
	if len(segments) == 0 {
		return HighlightResult{Segments: plain(text)}
	}
	if last < len(text) {
		segments = append(segments, models.HighlightSegment{Text: text[last:]})
	}

	return HighlightResult{Segments: segments}
}

// NoteHighlights holds the highlighted runs of one note.
type NoteHighlights struct {
	Note    models.Note
	Title   []models.HighlightSegment
	Content []models.HighlightSegment
}

// Apply filters notes and highlights the title and content of every kept
// note. It is what a list view recomputes on each snapshot or query change.
func (e *Engine) Apply(notes []models.Note, query string) []NoteHighlights {
	filtered := e.Filter(notes, query).Notes
	return lo.Map(filtered, func(n models.Note, _ int) NoteHighlights {
		return NoteHighlights{
			Note:    n,
			Title:   e.Highlight(n.Title, query).Segments,
			Content: e.Highlight(n.Content, query).Segments,
		}
	})
}

// Join concatenates segment texts. For any Highlight result it returns the
// original text.
func Join(segments []models.HighlightSegment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func plain(text string) []models.HighlightSegment {
	return []models.HighlightSegment{{Text: text}}
}

func (e *Engine) degradeFilter(notes []models.Note, query string, err error) FilterResult {
	e.log.Warn().Err(err).
		Str("func", "search.Engine.Filter").
		Str("query", query).
		Int("notes", len(notes)).
		Msg("search degraded, returning unfiltered notes")
	return FilterResult{Notes: notes, Degraded: true, Reason: err}
}

func (e *Engine) degradeHighlight(text, query string, err error) HighlightResult {
	e.log.Warn().Err(err).
		Str("func", "search.Engine.Highlight").
		Str("query", query).
		Msg("highlight degraded, returning plain text")
	return HighlightResult{Segments: plain(text), Degraded: true, Reason: err}
}
