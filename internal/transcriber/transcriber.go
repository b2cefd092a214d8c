// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transcriber turns recorded audio into text through an OpenAI
// compatible speech-to-text endpoint (Groq whisper by default).
package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
)

//go:generate mockgen -source=transcriber.go -destination=../mock/transcriber_mock.go -package=mock

var (
	// ErrNotConfigured is returned by [New] when no API key is set.
	ErrNotConfigured = errors.New("transcriber is not configured")
	// ErrEmptyTranscription is returned when the provider answers without text.
	ErrEmptyTranscription = errors.New("invalid response from transcription provider: empty text")
)

// Transcriber converts one audio file into text.
type Transcriber interface {
	// Transcribe reads audio to EOF. fileName only supplies the format hint
	// (its extension) to the provider.
	Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error)
}

// audioClient is the part of *openai.Client used here.
type audioClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type whisperTranscriber struct {
	client      audioClient
	model       string
	language    string
	temperature float32
	logger      *logger.Logger
}

// New builds a [Transcriber] for cfg. It returns [ErrNotConfigured] when
// cfg.APIKey is empty so that callers can run without transcription.
func New(cfg config.Transcription, log *logger.Logger) (Transcriber, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	return &whisperTranscriber{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		language:    cfg.Language,
		temperature: cfg.Temperature,
		logger:      log,
	}, nil
}

func (w *whisperTranscriber) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	if fileName == "" {
		fileName = "audio.mp4"
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:       w.model,
		FilePath:    filepath.Base(fileName),
		Reader:      audio,
		Language:    w.language,
		Temperature: w.temperature,
		Format:      openai.AudioResponseFormatJSON,
	})
	if err != nil {
		w.logger.Err(err).Str("func", "*whisperTranscriber.Transcribe").Str("model", w.model).Msg("transcription request failed")
		return "", fmt.Errorf("transcription request: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrEmptyTranscription
	}

	return text, nil
}
