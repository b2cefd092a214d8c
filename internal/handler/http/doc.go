// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the voice notes server.
//
// Routes cover authentication, notes with sharing and search, user settings,
// audio transcriptions and the build version. Authentication, body signing,
// gzip and access logging run as middleware before a request reaches the
// service layer.
package http
