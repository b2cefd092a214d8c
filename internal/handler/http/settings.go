// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	settings, err := h.services.SettingsService.GetSettings(r.Context(), caller.UserID)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var update models.SettingsUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	settings, err := h.services.SettingsService.UpdateSettings(r.Context(), caller.UserID, update)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, settings, http.StatusOK)
}
