// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout shared by JSON and YAML config files.
type fileConfig struct {
	App struct {
		TokenSignKey              string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer               string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration             Duration `json:"token_duration" yaml:"token_duration"`
		HashKey                   string   `json:"hash_key" yaml:"hash_key"`
		MonthlyTranscriptionLimit int      `json:"monthly_transcription_limit" yaml:"monthly_transcription_limit"`
		LogFile                   string   `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Local struct {
			Path string `json:"path" yaml:"path"`
		} `json:"local" yaml:"local"`
		Files struct {
			AudioDir string `json:"audio_dir" yaml:"audio_dir"`
		} `json:"files" yaml:"files"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		MaxUploadBytes int64    `json:"max_upload_bytes" yaml:"max_upload_bytes"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Transcription struct {
		APIKey      string  `json:"api_key" yaml:"api_key"`
		BaseURL     string  `json:"base_url" yaml:"base_url"`
		Model       string  `json:"model" yaml:"model"`
		Language    string  `json:"language" yaml:"language"`
		Temperature float32 `json:"temperature" yaml:"temperature"`
	} `json:"transcription" yaml:"transcription"`

	Inbox struct {
		Dir      string   `json:"dir" yaml:"dir"`
		Patterns []string `json:"patterns" yaml:"patterns"`
		Debounce Duration `json:"debounce" yaml:"debounce"`
	} `json:"inbox" yaml:"inbox"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.toStructured(), nil
}

func parseYAML(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	if err := yaml.NewDecoder(f).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:              fc.App.TokenSignKey,
			TokenIssuer:               fc.App.TokenIssuer,
			TokenDuration:             time.Duration(fc.App.TokenDuration),
			HashKey:                   fc.App.HashKey,
			MonthlyTranscriptionLimit: fc.App.MonthlyTranscriptionLimit,
			LogFile:                   fc.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: fc.Storage.DB.DSN},
			Local: Local{Path: fc.Storage.Local.Path},
			Files: Files{AudioDir: fc.Storage.Files.AudioDir},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			MaxUploadBytes: fc.Server.MaxUploadBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			GRPCAddress:    fc.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Transcription: Transcription{
			APIKey:      fc.Transcription.APIKey,
			BaseURL:     fc.Transcription.BaseURL,
			Model:       fc.Transcription.Model,
			Language:    fc.Transcription.Language,
			Temperature: fc.Transcription.Temperature,
		},
		Inbox: Inbox{
			Dir:      fc.Inbox.Dir,
			Patterns: fc.Inbox.Patterns,
			Debounce: time.Duration(fc.Inbox.Debounce),
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML. Bare numbers are read as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(tmp)
	return nil
}
