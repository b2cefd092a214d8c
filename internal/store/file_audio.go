// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// audioFileStorage is the default implementation of [AudioFileStorage]. It
// writes each recording to <dir>/<user id>/<transcription id><ext>.
type audioFileStorage struct {
	dir string
}

// NewAudioFileStorage returns an [AudioFileStorage] rooted at dir, or nil when
// dir is empty and archiving is disabled.
func NewAudioFileStorage(dir string) AudioFileStorage {
	if dir == "" {
		return nil
	}
	return &audioFileStorage{dir: dir}
}

// SaveAudio copies r into the archive and returns the written path. A partly
// written file is removed when the copy fails.
func (a *audioFileStorage) SaveAudio(ctx context.Context, userID int64, transcriptionID, ext string, r io.Reader) (string, error) {
	userDir := filepath.Join(a.dir, strconv.FormatInt(userID, 10))
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	path := filepath.Join(userDir, filepath.Base(transcriptionID+ext))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}

	if _, err = io.Copy(f, &ctxReader{ctx: ctx, r: r}); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}

	if err = f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close audio file: %w", err)
	}

	return path, nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
