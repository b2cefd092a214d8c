// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var draft models.NoteDraft
	if !decodeJSON(w, r, &draft) {
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), caller, draft)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), caller, chi.URLParam(r, "noteID"))
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), caller)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	writeNotes(w, notes)
}

func (h *Handler) listSharedNotes(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.ListSharedNotes(r.Context(), caller)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	writeNotes(w, notes)
}

// searchNotes answers GET /api/notes/search?q=&limit=. The limit defaults
// to 20 and is capped at 100.
func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxSearchLimit)
	}

	notes, err := h.services.NoteService.SearchNotes(r.Context(), caller, r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	writeNotes(w, notes)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var update models.NoteUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), caller, chi.URLParam(r, "noteID"), update)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), caller, chi.URLParam(r, "noteID")); err != nil {
		writeError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) shareNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.ShareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.services.NoteService.ShareNote(r.Context(), caller, chi.URLParam(r, "noteID"), req)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func writeNotes(w http.ResponseWriter, notes []models.Note) {
	if notes == nil {
		notes = []models.Note{}
	}
	utils.WriteJSON(w, models.NotesResponse{Notes: notes, Length: len(notes)}, http.StatusOK)
}
