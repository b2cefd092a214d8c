// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/internal/adapter"
	"github.com/MKhiriev/go-voice-notes/models"
)

type clientInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientInfoService(serverAdapter adapter.ServerAdapter) ClientInfoService {
	return &clientInfoService{adapter: serverAdapter}
}

func (s *clientInfoService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	v, err := s.adapter.GetVersion(ctx)
	if err != nil {
		return models.VersionResponse{}, mapAdapterError(err)
	}
	return v, nil
}
