// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/internal/transcriber"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
)

type transcriptionService struct {
	repository store.TranscriptionRepository
	// transcriber is nil when no provider is configured.
	transcriber transcriber.Transcriber
	// archive is nil when uploads are not kept.
	archive store.AudioFileStorage

	// monthlyLimit below zero disables the quota.
	monthlyLimit int

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewTranscriptionService(
	repository store.TranscriptionRepository,
	archive store.AudioFileStorage,
	t transcriber.Transcriber,
	cfg config.App,
	logger *logger.Logger,
) TranscriptionService {
	return &transcriptionService{
		repository:   repository,
		transcriber:  t,
		archive:      archive,
		monthlyLimit: cfg.MonthlyTranscriptionLimit,
		ids:          utils.NewUUIDGenerator(),
		now:          func() time.Time { return time.Now().UTC() },
		logger:       logger,
	}
}

// Transcribe checks the monthly quota, sends audio to the provider and
// stores the text as a draft.
func (s *transcriptionService) Transcribe(ctx context.Context, userID int64, recordingID, fileName string, audio io.Reader) (models.Transcription, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(recordingID) == "" {
		return models.Transcription{}, ErrEmptyRecordingID
	}
	if s.transcriber == nil {
		return models.Transcription{}, ErrTranscriberNotConfigured
	}
	if audio == nil {
		return models.Transcription{}, ErrEmptyAudio
	}

	now := s.now()
	if s.monthlyLimit >= 0 {
		count, err := s.repository.CountTranscriptionsSince(ctx, userID, monthStart(now))
		if err != nil {
			return models.Transcription{}, fmt.Errorf("count transcriptions: %w", err)
		}
		if count >= s.monthlyLimit {
			log.Warn().Int64("user_id", userID).Int("count", count).Msg("monthly transcription limit reached")
			return models.Transcription{}, ErrTranscriptionLimitReached
		}
	}

	data, err := io.ReadAll(audio)
	if err != nil {
		return models.Transcription{}, fmt.Errorf("read audio: %w", err)
	}
	if len(data) == 0 {
		return models.Transcription{}, ErrEmptyAudio
	}

	text, err := s.transcriber.Transcribe(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		log.Err(err).Str("func", "transcriptionService.Transcribe").Str("recording_id", recordingID).Msg("transcription failed")
		return models.Transcription{}, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}

	id := s.ids.Generate()
	if s.archive != nil {
		if _, err = s.archive.SaveAudio(ctx, userID, id, filepath.Ext(fileName), bytes.NewReader(data)); err != nil {
			log.Err(err).Str("transcription_id", id).Msg("archiving audio failed")
		}
	}

	created, err := s.repository.CreateTranscription(ctx, models.Transcription{
		ID:          id,
		RecordingID: recordingID,
		UserID:      userID,
		Text:        text,
		Status:      models.TranscriptionDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return models.Transcription{}, fmt.Errorf("save transcription: %w", err)
	}
	return created, nil
}

func (s *transcriptionService) GetTranscription(ctx context.Context, userID int64, id string) (models.Transcription, error) {
	t, err := s.repository.GetTranscription(ctx, id, userID)
	if err != nil {
		return models.Transcription{}, fmt.Errorf("get transcription %s: %w", id, err)
	}
	return t, nil
}

func (s *transcriptionService) ListTranscriptions(ctx context.Context, userID int64) ([]models.Transcription, error) {
	list, err := s.repository.ListTranscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transcriptions: %w", err)
	}
	return list, nil
}

func (s *transcriptionService) FinalizeTranscription(ctx context.Context, userID int64, id, text string) (models.Transcription, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Transcription{}, ErrEmptyTranscriptionText
	}

	t, err := s.repository.FinalizeTranscription(ctx, id, userID, text, s.now())
	if err != nil {
		return models.Transcription{}, fmt.Errorf("finalize transcription %s: %w", id, err)
	}
	return t, nil
}

// monthStart returns midnight of the first day of t's month, in t's location.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
