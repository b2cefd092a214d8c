// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart upload kept in memory; the
// rest spills to temporary files.
const multipartMemory = 8 << 20

// transcribe accepts a multipart form with an "audio" file and a
// "recording_id" field.
func (h *Handler) transcribe(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("audio upload too large")
			http.Error(w, app.MsgAudioTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("audio")
	if err != nil {
		log.Err(err).Msg("no audio file in form")
		http.Error(w, app.MsgEmptyAudio, http.StatusBadRequest)
		return
	}
	defer file.Close()

	t, err := h.services.TranscriptionService.Transcribe(r.Context(), caller.UserID, r.FormValue("recording_id"), header.Filename, file)
	if err != nil {
		writeError(w, r, err, app.MsgTranscriptionFailed)
		return
	}

	utils.WriteJSON(w, t, http.StatusCreated)
}

func (h *Handler) listTranscriptions(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	list, err := h.services.TranscriptionService.ListTranscriptions(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	if list == nil {
		list = []models.Transcription{}
	}

	utils.WriteJSON(w, models.TranscriptionsResponse{Transcriptions: list}, http.StatusOK)
}

func (h *Handler) getTranscription(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	t, err := h.services.TranscriptionService.GetTranscription(r.Context(), caller.UserID, chi.URLParam(r, "transcriptionID"))
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, t, http.StatusOK)
}

func (h *Handler) finalizeTranscription(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.FinalizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.services.TranscriptionService.FinalizeTranscription(r.Context(), caller.UserID, chi.URLParam(r, "transcriptionID"), req.Text)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, t, http.StatusOK)
}
