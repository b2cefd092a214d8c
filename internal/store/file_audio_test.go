// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAudioFileStorage_Disabled(t *testing.T) {
	assert.Nil(t, NewAudioFileStorage(""))
}

func TestAudioFileStorage_SaveAudio(t *testing.T) {
	dir := t.TempDir()
	s := NewAudioFileStorage(dir)

	path, err := s.SaveAudio(context.Background(), 12, "t-1", ".m4a", strings.NewReader("RIFF...."))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "12", "t-1.m4a"), path)
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF....", string(body))
}

func TestAudioFileStorage_SaveAudio_CancelledRemovesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewAudioFileStorage(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveAudio(ctx, 12, "t-1", ".wav", strings.NewReader("data"))
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "12", "t-1.wav"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAudioFileStorage_SaveAudio_NoTraversal(t *testing.T) {
	dir := t.TempDir()
	s := NewAudioFileStorage(dir)

	path, err := s.SaveAudio(context.Background(), 1, "../../escape", ".mp3", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1", "escape.mp3"), path)
}
