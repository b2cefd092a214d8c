// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-voice-notes/internal/app"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/utils"
	"github.com/MKhiriev/go-voice-notes/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.services.AuthService.RegisterUser, app.MsgRegistrationFailed)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	h.authenticate(w, r, h.services.AuthService.Login, app.MsgLoginFailed)
}

// authenticate runs a register or login operation and answers with the
// public part of the user and a fresh bearer token in "Authorization".
func (h *Handler) authenticate(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, models.User) (models.User, error),
	failMsg string,
) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	found, err := op(ctx, user)
	if err != nil {
		writeError(w, r, err, failMsg)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		log.Err(err).Int64("id", found.UserID).Msg("creation of token failed")
		http.Error(w, failMsg, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", found.UserID).Msg("user authenticated")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.User{
		UserID:    found.UserID,
		Email:     found.Email,
		CreatedAt: found.CreatedAt,
	}, http.StatusOK)
}

// decodeJSON decodes the request body into v and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// requireCaller returns the authenticated caller or answers 401.
func requireCaller(w http.ResponseWriter, r *http.Request) (models.Caller, bool) {
	caller, err := callerFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Send()
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return models.Caller{}, false
	}
	return caller, true
}
