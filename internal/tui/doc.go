// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the voice notes
// client with Bubble Tea.
//
// Two programs run one after the other: the sign-in flow ([TUI.LoginFlow])
// and the main loop ([TUI.MainLoop]) showing the live note list, search
// with highlighted matches, note details, sharing, note creation,
// transcription of audio files and the settings screen.
package tui
