package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	viper.Reset()
	t.Setenv("HOME", dir)
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	setupTestConfig(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 100 {
		t.Errorf("default chunk_size = %d, want 100", cfg.ChunkSize)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("default output.format = %q, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("default output.color should be true")
	}
	if cfg.Watch.DebounceMs != 500 {
		t.Errorf("default watch.debounce_ms = %d, want 500", cfg.Watch.DebounceMs)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	setupTestConfig(t)
	t.Setenv("CHUNKLENS_CHUNK_SIZE", "256")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 256 {
		t.Errorf("chunk_size = %d, want env override 256", cfg.ChunkSize)
	}
}

func TestLoadClampsChunkSize(t *testing.T) {
	setupTestConfig(t)
	t.Setenv("CHUNKLENS_CHUNK_SIZE", "-5")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 100 {
		t.Errorf("invalid chunk_size should fall back to default, got %d", cfg.ChunkSize)
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	setupTestConfig(t)
	if err := Set("no.such.key", "1"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetAndGet(t *testing.T) {
	setupTestConfig(t)
	if _, err := Load(); err != nil {
		t.Fatal(err)
	}
	if err := Set("chunk_size", "120"); err != nil {
		t.Fatal(err)
	}
	v, err := Get("chunk_size")
	if err != nil {
		t.Fatal(err)
	}
	if v != "120" {
		t.Errorf("Get(chunk_size) = %v, want 120", v)
	}
}

func TestShowConfigListsKeys(t *testing.T) {
	setupTestConfig(t)
	if _, err := Load(); err != nil {
		t.Fatal(err)
	}
	dump := ShowConfig()
	for _, key := range []string{"chunk_size", "output.format", "watch.debounce_ms"} {
		if !strings.Contains(dump, key) {
			t.Errorf("ShowConfig missing %q:\n%s", key, dump)
		}
	}
}
