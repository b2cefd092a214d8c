// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoteUpdate_ApplySharing(t *testing.T) {
	grant := ShareGrant{Email: "bob@example.com", CanEdit: true, SharedAt: time.Unix(10, 0)}
	yes, no := true, false

	tests := []struct {
		name       string
		note       Note
		update     NoteUpdate
		wantShared bool
		wantGrants []ShareGrant
	}{
		// ── unsharing drops grants ──
		{
			name:       "is_shared false clears grants",
			note:       Note{IsShared: true, SharedWith: []ShareGrant{grant}},
			update:     NoteUpdate{IsShared: &no},
			wantShared: false,
			wantGrants: nil,
		},
		// ── shared without grants is allowed ──
		{
			name:       "is_shared true keeps an empty grant list",
			note:       Note{},
			update:     NoteUpdate{IsShared: &yes},
			wantShared: true,
			wantGrants: nil,
		},
		{
			name:       "untouched flag keeps grants",
			note:       Note{IsShared: true, SharedWith: []ShareGrant{grant}},
			update:     NoteUpdate{},
			wantShared: true,
			wantGrants: []ShareGrant{grant},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.update.Apply(tt.note)

			assert.Equal(t, tt.wantShared, got.IsShared)
			assert.Equal(t, tt.wantGrants, got.SharedWith)
		})
	}
}
