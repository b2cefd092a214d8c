// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package index keeps an in-memory full-text index of notes for ranked
// server-side search. It complements the literal filter used by clients:
// queries are tokenized, the last word is treated as a prefix, and hits are
// ordered by relevance.
package index

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	bleveSearch "github.com/blevesearch/bleve/v2/search"
	"github.com/samber/lo"
)

//go:generate mockgen -source=index.go -destination=../mock/note_index_mock.go -package=mock

// NoteIndex is a ranked full-text index of notes scoped by owner.
type NoteIndex interface {
	// Index adds or replaces a note.
	Index(note models.Note) error
	// IndexAll replaces the given notes in one batch.
	IndexAll(notes []models.Note) error
	// Remove drops a note. Removing an unknown id is not an error.
	Remove(noteID string) error
	// Search returns the ids of userID's notes matching q, best first.
	Search(ctx context.Context, userID int64, q string, limit int) ([]Hit, error)
	// Close releases the index.
	Close() error
}

// Hit is one ranked search result.
type Hit struct {
	NoteID string  `json:"note_id"`
	Score  float64 `json:"score"`
}

// DefaultLimit bounds searches that do not ask for a size.
const DefaultLimit = 20

// document is the indexed projection of a note.
type document struct {
	Owner   string   `json:"owner"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Type    string   `json:"type"`
}

type bleveIndex struct {
	index bleve.Index
}

// NewMemIndex creates an empty in-memory index. The server rebuilds it from
// the database on start.
func NewMemIndex() (NoteIndex, error) {
	idx, err := bleve.NewMemOnly(newMapping())
	if err != nil {
		return nil, fmt.Errorf("create in-memory index: %w", err)
	}
	return &bleveIndex{index: idx}, nil
}

func newMapping() *mapping.IndexMappingImpl {
	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name

	text := bleve.NewTextFieldMapping()

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("owner", exact)
	doc.AddFieldMappingsAt("type", exact)
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("content", text)
	doc.AddFieldMappingsAt("tags", text)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

func toDocument(n models.Note) document {
	return document{
		Owner:   strconv.FormatInt(n.UserID, 10),
		Title:   n.Title,
		Content: n.Content,
		Tags:    n.Tags,
		Type:    string(n.Type),
	}
}

func (b *bleveIndex) Index(note models.Note) error {
	if err := b.index.Index(note.ID, toDocument(note)); err != nil {
		return fmt.Errorf("index note %s: %w", note.ID, err)
	}
	return nil
}

func (b *bleveIndex) IndexAll(notes []models.Note) error {
	batch := b.index.NewBatch()
	for _, n := range notes {
		if err := batch.Index(n.ID, toDocument(n)); err != nil {
			return fmt.Errorf("batch note %s: %w", n.ID, err)
		}
	}
	if err := b.index.Batch(batch); err != nil {
		return fmt.Errorf("apply index batch: %w", err)
	}
	return nil
}

func (b *bleveIndex) Remove(noteID string) error {
	if err := b.index.Delete(noteID); err != nil {
		return fmt.Errorf("remove note %s: %w", noteID, err)
	}
	return nil
}

func (b *bleveIndex) Search(ctx context.Context, userID int64, q string, limit int) ([]Hit, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Hit{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	owner := bleve.NewTermQuery(strconv.FormatInt(userID, 10))
	owner.SetField("owner")

	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(owner, textQuery(q)), limit, 0, false)
	res, err := b.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	return lo.Map(res.Hits, func(h *bleveSearch.DocumentMatch, _ int) Hit {
		return Hit{NoteID: h.ID, Score: h.Score}
	}), nil
}

// textQuery matches q against title (boosted), content and tags, and
// treats the last word as a prefix so results update while typing.
func textQuery(q string) query.Query {
	fields := map[string]float64{"title": 2, "content": 1, "tags": 1.5}

	var clauses []query.Query
	for field, boost := range fields {
		m := bleve.NewMatchQuery(q)
		m.SetField(field)
		m.SetBoost(boost)
		clauses = append(clauses, m)
	}

	words := strings.Fields(strings.ToLower(q))
	if last := words[len(words)-1]; len(last) >= 2 {
		for field := range fields {
			p := bleve.NewPrefixQuery(last)
			p.SetField(field)
			clauses = append(clauses, p)
		}
	}

	return bleve.NewDisjunctionQuery(clauses...)
}

func (b *bleveIndex) Close() error {
	return b.index.Close()
}
