// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(withGZipRequests, middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.With(h.withHashCheck).Post("/", h.createNote)
			r.Get("/shared", h.listSharedNotes)
			r.Get("/search", h.searchNotes)

			r.Route("/{noteID}", func(r chi.Router) {
				r.Get("/", h.getNote)
				r.With(h.withHashCheck).Patch("/", h.updateNote)
				r.Delete("/", h.deleteNote)
				r.With(h.withHashCheck).Post("/share", h.shareNote)
			})
		})

		r.Get("/api/settings", h.getSettings)
		r.With(h.withHashCheck).Patch("/api/settings", h.updateSettings)

		r.Route("/api/transcriptions", func(r chi.Router) {
			r.Get("/", h.listTranscriptions)
			r.Post("/", h.transcribe)
			r.Get("/{transcriptionID}", h.getTranscription)
			r.With(h.withHashCheck).Post("/{transcriptionID}/finalize", h.finalizeTranscription)
		})
	})

	router.MethodNotAllowed(methodNotAllowed)

	return router
}
