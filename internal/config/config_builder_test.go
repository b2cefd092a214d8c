// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// isolateEnv points ENV_FILE at a missing file so a developer's .env never
// leaks into the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a value set by an earlier source
// is not overwritten by later ones, while zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "file-issuer", TokenSignKey: "file-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "file-key", cfg.App.TokenSignKey)
}

// ── fluent API ────────────────────────────────────────────────────────────────

func TestWithDefaults_ReturnsSameBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDefaults())
	assert.Len(t, b.configs, 1)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	assert.Same(t, b, b.withFile())
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_UnsupportedExtension(t *testing.T) {
	p := writeTempFile(t, "config.toml", "x = 1")
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: p})

	b.withFile()
	assert.ErrorIs(t, b.err, ErrUnsupportedConfigFile)
}

func TestWithDotEnv_LoadsFileWithoutOverridingEnv(t *testing.T) {
	p := writeTempFile(t, "test.env", "APP_TOKEN_ISSUER=dotenv-issuer\nAPP_TOKEN_SIGN_KEY=dotenv-key\n")
	t.Setenv("ENV_FILE", p)
	t.Setenv("APP_TOKEN_ISSUER", "real-issuer")
	// godotenv sets variables directly; register them for cleanup.
	t.Setenv("APP_TOKEN_SIGN_KEY", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_SIGN_KEY"))

	b := newConfigBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "real-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "dotenv-key", cfg.App.TokenSignKey)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Priority(t *testing.T) {
	isolateEnv(t)
	file := writeTempFile(t, "config.yaml", `
app:
  token_sign_key: file-key
  token_issuer: file-issuer
storage:
  db:
    dsn: postgres://file
server:
  request_timeout: 5s
`)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	cfg, err := loadStructuredConfig([]string{"-c", file, "-d", "postgres://flag"})
	require.NoError(t, err)

	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer, "env beats file")
	assert.Equal(t, "postgres://flag", cfg.Storage.DB.DSN, "flag beats file")
	assert.Equal(t, "file-key", cfg.App.TokenSignKey, "file fills gaps")
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultGRPCAddress, cfg.Server.GRPCAddress, "defaults fill the rest")
	assert.Equal(t, defaultTranscriptionModel, cfg.Transcription.Model)
	assert.Equal(t, []string{defaultInboxPattern}, cfg.Inbox.Patterns)
}

func TestLoadStructuredConfig_BadFlag(t *testing.T) {
	isolateEnv(t)
	_, err := loadStructuredConfig([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.Storage.DB.DSN = "postgres://localhost/notes"
		cfg.App.TokenSignKey = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no grpc", mutate: func(c *StructuredConfig) { c.Server.GRPCAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero upload", mutate: func(c *StructuredConfig) { c.Server.MaxUploadBytes = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "memory db", mutate: func(c *ClientConfig) { c.Storage.Path = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no grpc", mutate: func(c *ClientConfig) { c.Adapter.GRPCAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "bad pattern", mutate: func(c *ClientConfig) { c.Inbox.Patterns = []string{"[a-"} }, wantErr: ErrInvalidInboxConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig().clientView()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
