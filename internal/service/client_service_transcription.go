// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
)

type clientTranscriptionService struct {
	adapter adapter.ServerAdapter
	notes   ClientNotesService
	ids     idGenerator
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientTranscriptionService(serverAdapter adapter.ServerAdapter, notes ClientNotesService, logger *logger.Logger) ClientTranscriptionService {
	return &clientTranscriptionService{
		adapter: serverAdapter,
		notes:   notes,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}
}

func (s *clientTranscriptionService) Transcribe(ctx context.Context, recordingID, fileName string, audio io.Reader) (models.Transcription, error) {
	if strings.TrimSpace(recordingID) == "" {
		return models.Transcription{}, &ValidationError{Field: "recordingID", Reason: "is empty"}
	}
	if audio == nil {
		return models.Transcription{}, &ValidationError{Field: "audio", Reason: "is nil"}
	}

	t, err := s.adapter.Transcribe(ctx, recordingID, fileName, audio)
	if err != nil {
		return models.Transcription{}, mapAdapterError(err)
	}
	s.logger.Info().Str("transcription_id", t.ID).Str("recording_id", recordingID).Msg("recording transcribed")
	return t, nil
}

func (s *clientTranscriptionService) TranscribeFile(ctx context.Context, path string) (models.Transcription, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Transcription{}, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	return s.Transcribe(ctx, s.ids.Generate(), filepath.Base(path), f)
}

func (s *clientTranscriptionService) Finalize(ctx context.Context, id, text string) (models.Transcription, error) {
	if strings.TrimSpace(id) == "" {
		return models.Transcription{}, &ValidationError{Field: "id", Reason: "is empty"}
	}
	if strings.TrimSpace(text) == "" {
		return models.Transcription{}, &ValidationError{Field: "text", Reason: "is empty"}
	}

	t, err := s.adapter.FinalizeTranscription(ctx, id, text)
	if err != nil {
		return models.Transcription{}, mapAdapterError(err)
	}
	return t, nil
}

func (s *clientTranscriptionService) List(ctx context.Context) ([]models.Transcription, error) {
	list, err := s.adapter.ListTranscriptions(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return list, nil
}

func (s *clientTranscriptionService) CreateNote(ctx context.Context, t models.Transcription, title string) (string, error) {
	if strings.TrimSpace(t.ID) == "" {
		return "", &ValidationError{Field: "transcription", Reason: "has no id"}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		created := t.CreatedAt
		if created.IsZero() {
			created = s.now()
		}
		title = "Voice note " + created.Local().Format("2006-01-02 15:04")
	}

	id := t.ID
	return s.notes.Create(ctx, models.NoteDraft{
		Title:           title,
		Content:         t.Text,
		Type:            models.NoteTypeNote,
		Tags:            []string{},
		TranscriptionID: &id,
	})
}
