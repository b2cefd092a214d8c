// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-voice-notes/models"
)

// DocumentStore is the remote note store as the client sees it: live
// snapshots come from the [WatchAdapter] and mutations go through the
// [ServerAdapter].
type DocumentStore struct {
	server ServerAdapter
	watch  WatchAdapter
}

// NewDocumentStore combines the request and the streaming transports.
func NewDocumentStore(server ServerAdapter, watch WatchAdapter) *DocumentStore {
	return &DocumentStore{server: server, watch: watch}
}

func (d *DocumentStore) WatchUserNotes(ctx context.Context, userID int64) (<-chan models.NotesSnapshot, error) {
	return d.watch.WatchUserNotes(ctx, userID)
}

func (d *DocumentStore) WatchNote(ctx context.Context, noteID string) (<-chan models.NoteSnapshot, error) {
	return d.watch.WatchNote(ctx, noteID)
}

func (d *DocumentStore) AddNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	return d.server.CreateNote(ctx, draft)
}

func (d *DocumentStore) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) error {
	_, err := d.server.UpdateNote(ctx, noteID, update)
	return err
}

func (d *DocumentStore) DeleteNote(ctx context.Context, noteID string) error {
	return d.server.DeleteNote(ctx, noteID)
}

// ShareNote sends the grant. SharedAt is assigned by the server.
func (d *DocumentStore) ShareNote(ctx context.Context, noteID string, grant models.ShareGrant) error {
	_, err := d.server.ShareNote(ctx, noteID, models.ShareRequest{Email: grant.Email, CanEdit: grant.CanEdit})
	return err
}

// Close releases the streaming connection.
func (d *DocumentStore) Close() error {
	return d.watch.Close()
}
