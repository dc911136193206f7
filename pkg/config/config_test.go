package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.URL != "http://localhost:8000" {
		t.Fatalf("unexpected backend url %q", cfg.Backend.URL)
	}
	if cfg.Backend.SynthesisTimeout != 90*time.Second {
		t.Fatalf("unexpected synthesis timeout %v", cfg.Backend.SynthesisTimeout)
	}
	if cfg.Audio.Device != -1 || cfg.Audio.FramesPerBuffer != 1024 {
		t.Fatalf("unexpected audio config %+v", cfg.Audio)
	}
	if cfg.StorageEnabled() {
		t.Fatalf("storage should be disabled without an endpoint")
	}
	if cfg.GetServerAddr() != "127.0.0.1:8090" {
		t.Fatalf("unexpected server addr %q", cfg.GetServerAddr())
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("COACH_BACKEND_URL", "https://coach.example.com")
	t.Setenv("COACH_BACKEND_SYNTHESIS_TIMEOUT", "15s")
	t.Setenv("COACH_SERVER_PORT", "9999")
	t.Setenv("COACH_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.URL != "https://coach.example.com" {
		t.Fatalf("unexpected backend url %q", cfg.Backend.URL)
	}
	if cfg.Backend.SynthesisTimeout != 15*time.Second {
		t.Fatalf("unexpected synthesis timeout %v", cfg.Backend.SynthesisTimeout)
	}
	if cfg.Server.Port != "9999" || cfg.Log.Level != "debug" {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Server, cfg.Log)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("COACH_BACKEND_URL=http://10.0.0.5:8000\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("COACH_BACKEND_URL") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.URL != "http://10.0.0.5:8000" {
		t.Fatalf("expected .env value, got %q", cfg.Backend.URL)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Backend: BackendConfig{URL: "http://localhost:8000", Timeout: time.Minute, SynthesisTimeout: time.Minute},
			Server:  ServerConfig{Port: "8090"},
			Audio:   AudioConfig{FramesPerBuffer: 512},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "valid", mutate: func(c *Config) {}, ok: true},
		{name: "relative backend url", mutate: func(c *Config) { c.Backend.URL = "/api" }},
		{name: "non http scheme", mutate: func(c *Config) { c.Backend.URL = "ftp://host" }},
		{name: "zero synthesis timeout", mutate: func(c *Config) { c.Backend.SynthesisTimeout = 0 }},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }},
		{name: "storage without keys", mutate: func(c *Config) { c.Storage.Endpoint = "minio:9000" }},
		{name: "storage with keys", mutate: func(c *Config) {
			c.Storage = StorageConfig{Endpoint: "minio:9000", AccessKeyID: "a", SecretAccessKey: "b"}
		}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadSpeakerNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.yaml")
	content := "main: SPEAKER_00\nnames:\n  SPEAKER_00: Alice\n  SPEAKER_01: Bob\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	names, err := LoadSpeakerNames(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names.Main != "SPEAKER_00" || names.Names["SPEAKER_01"] != "Bob" {
		t.Fatalf("unexpected names %+v", names)
	}

	if _, err := LoadSpeakerNames(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory
// and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
