package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("json file", func(t *testing.T) {
		path := filepath.Join(tempDir, "simpledb.json")
		data := `{"prompt": "> ", "banner": false, "strictCommit": true, "logLevel": "debug"}`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if err := LoadConfig(path); err != nil {
			t.Fatalf("expected no error loading valid config, but got: %v", err)
		}
		if Config.Prompt != "> " {
			t.Errorf("expected prompt '> ', got %q", Config.Prompt)
		}
		if Config.Banner {
			t.Errorf("expected banner to be disabled")
		}
		if !Config.StrictCommit {
			t.Errorf("expected strictCommit to be enabled")
		}
		if Config.LogLevel != "debug" {
			t.Errorf("expected log level 'debug', got %q", Config.LogLevel)
		}
	})

	t.Run("toml file keeps defaults for missing keys", func(t *testing.T) {
		path := filepath.Join(tempDir, "simpledb.toml")
		if err := os.WriteFile(path, []byte(`prompt = "db> "`+"\n"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if err := LoadConfig(path); err != nil {
			t.Fatalf("expected no error loading valid config, but got: %v", err)
		}
		if Config.Prompt != "db> " {
			t.Errorf("expected prompt 'db> ', got %q", Config.Prompt)
		}
		if !Config.Banner || Config.StrictCommit || Config.LogLevel != "warn" {
			t.Errorf("expected defaults for unset keys, got %+v", Config)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SIMPLEDB_LOGLEVEL", "error")
		path := filepath.Join(tempDir, "simpledb.json")

		if err := LoadConfig(path); err != nil {
			t.Fatalf("expected no error, but got: %v", err)
		}
		if Config.LogLevel != "error" {
			t.Errorf("expected log level from environment, got %q", Config.LogLevel)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		if err := LoadConfig(filepath.Join(tempDir, "nonexistent.json")); err == nil {
			t.Fatal("expected an error for non-existent file, but got none")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(tempDir, "invalid.json")
		if err := os.WriteFile(path, []byte(`{"prompt": `), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		if err := LoadConfig(path); err == nil {
			t.Fatal("expected an error for invalid JSON, but got none")
		}
	})
}

func TestLoadConfig_DefaultFileOptional(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	if err := LoadConfig(""); err != nil {
		t.Fatalf("expected missing config.json to fall back to defaults, got: %v", err)
	}
	if *Config != *Default() {
		t.Errorf("expected defaults %+v, got %+v", Default(), Config)
	}
}
