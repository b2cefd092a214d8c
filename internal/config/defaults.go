// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress   = "localhost:8080"
	defaultGRPCAddress   = "localhost:9090"
	defaultTokenIssuer   = "go-voice-notes"
	defaultTokenDuration = 24 * time.Hour

	// 25 MiB is the upload limit of the hosted whisper endpoint.
	defaultMaxUploadBytes = 25 << 20

	defaultMonthlyTranscriptionLimit = 5
	defaultReindexInterval           = time.Hour

	defaultTranscriptionBaseURL     = "https://api.groq.com/openai/v1"
	defaultTranscriptionModel       = "whisper-large-v3"
	defaultTranscriptionLanguage    = "en"
	defaultTranscriptionTemperature = 0.3

	defaultInboxPattern  = "**/*.{m4a,mp3,wav,webm,ogg}"
	defaultInboxDebounce = 500 * time.Millisecond

	defaultLocalPath = "voice-notes.db"
	defaultLogFile   = "voice-notes.log"
	defaultEnvFile   = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:               defaultTokenIssuer,
			TokenDuration:             defaultTokenDuration,
			MonthlyTranscriptionLimit: defaultMonthlyTranscriptionLimit,
			LogFile:                   defaultLogFile,
		},
		Storage: Storage{
			Local: Local{Path: defaultLocalPath},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			GRPCAddress:     defaultGRPCAddress,
			RequestTimeout:  30 * time.Second,
			MaxUploadBytes:  defaultMaxUploadBytes,
			ReindexInterval: defaultReindexInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			GRPCAddress:    defaultGRPCAddress,
			RequestTimeout: 15 * time.Second,
		},
		Transcription: Transcription{
			BaseURL:     defaultTranscriptionBaseURL,
			Model:       defaultTranscriptionModel,
			Language:    defaultTranscriptionLanguage,
			Temperature: defaultTranscriptionTemperature,
		},
		Inbox: Inbox{
			Patterns: []string{defaultInboxPattern},
			Debounce: defaultInboxDebounce,
		},
		EnvFile: defaultEnvFile,
	}
}
