// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-voice-notes/models"
)

func TestStringList(t *testing.T) {
	v, err := stringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = stringList{"work", "ideas"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["work","ideas"]`, v)

	tests := []struct {
		name string
		src  any
		want []string
	}{
		{name: "null", src: nil, want: []string{}},
		{name: "bytes", src: []byte(`["x"]`), want: []string{"x"}},
		{name: "string", src: `["x","y"]`, want: []string{"x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l stringList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, []string(l))
		})
	}

	var l stringList
	assert.ErrorIs(t, l.Scan(42), ErrEncodingColumn)
	assert.ErrorIs(t, l.Scan("{not json"), ErrEncodingColumn)
}

func TestJSONColumn(t *testing.T) {
	v, err := jsonColumn[models.UserSettings]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var c jsonColumn[models.UserSettings]
	require.NoError(t, c.Scan(`{"theme":"dark","notifications":true,"language":"fr"}`))
	assert.True(t, c.Valid)
	assert.Equal(t, models.ThemeDark, c.V.Theme)
	assert.Equal(t, "fr", c.V.Language)

	require.NoError(t, c.Scan(nil))
	assert.False(t, c.Valid)
	assert.Equal(t, models.UserSettings{}, c.V)
}
