// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal client: it restores or asks for a
// session, starts the audio inbox for the signed-in user and shows the live
// note screens until the user quits. Signing out returns to the login pages.
package client
