// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/models"
)

type appInfoService struct {
	version models.VersionResponse
}

// NewAppInfoService refuses a build without a version string, which happens
// when the binary was built without the -ldflags stamps.
func NewAppInfoService(buildInfo models.AppBuildInfo) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return &appInfoService{version: buildInfo.Response()}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) models.VersionResponse {
	return s.version
}
