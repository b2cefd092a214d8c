// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/handler"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/server"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/internal/transcriber"
	"github.com/MKhiriev/go-voice-notes/internal/workers"
	"github.com/MKhiriev/go-voice-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("voice-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repos.Close()

	speech, err := transcriber.New(cfg.Transcription, log)
	if errors.Is(err, transcriber.ErrNotConfigured) {
		log.Warn().Msg("transcription API key is not set, transcription is disabled")
	} else if err != nil {
		log.Fatal().Err(err).Msg("error creating transcriber")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(repos, speech, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(
		workers.NewReindexWorker(repos.NoteStorage, cfg.Server.ReindexInterval, log),
	)

	srv, err := server.NewServer(handlers, cfg.Server, bg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
