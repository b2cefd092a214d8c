// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/internal/client"
	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/inbox"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/search"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/MKhiriev/go-voice-notes/internal/store"
	"github.com/MKhiriev/go-voice-notes/internal/tui"
	"github.com/MKhiriev/go-voice-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("voice-notes-client").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("voice-notes-client", cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	// The HTTP adapter holds the bearer token of the signed-in user.
	watchAdapter, err := adapter.NewGRPCWatchAdapter(cfg.Adapter, serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create watch adapter")
	}
	documents := adapter.NewDocumentStore(serverAdapter, watchAdapter)
	defer documents.Close()

	localStorages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorages.Close()

	services := service.NewClientServices(localStorages, serverAdapter, documents, log)

	var audioInbox client.AudioInbox
	if cfg.Inbox.Dir != "" {
		in, err := inbox.New(cfg.Inbox, services.TranscriptionService, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create audio inbox")
		}
		audioInbox = in
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, search.NewEngine(log), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, audioInbox, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
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
