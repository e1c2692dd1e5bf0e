package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig_Defaults(t *testing.T) {
	cfg, err := LoadFileConfig("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.BaseDir == "" {
		t.Error("Expected base dir default to be non-empty")
	}
	if cfg.MaxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, cfg.MaxParallel)
	}
	if *cfg.TruncateDateToYear != DefaultTruncateDateToYear {
		t.Error("Expected default date truncation")
	}
	if *cfg.RetagAudio != DefaultRetagAudio {
		t.Error("Expected default audio retagging")
	}
	if *cfg.ConvertThumbnails != DefaultConvertThumbnails {
		t.Error("Expected default thumbnail conversion")
	}
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	cfg, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Missing file should fall back to defaults, got %v", err)
	}
	if cfg.MaxParallel != DefaultMaxParallel {
		t.Errorf("Expected defaults for missing file, got max parallel %d", cfg.MaxParallel)
	}
}

func TestLoadFileConfig_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_dir: /media/grab\nmax_parallel: 4\ntruncate_date_to_year: false\nconvert_thumbnails: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.BaseDir != "/media/grab" {
		t.Errorf("Expected base dir /media/grab, got %q", cfg.BaseDir)
	}
	if cfg.MaxParallel != 4 {
		t.Errorf("Expected max parallel 4, got %d", cfg.MaxParallel)
	}
	if *cfg.TruncateDateToYear {
		t.Error("Expected date truncation disabled")
	}
	if !*cfg.ConvertThumbnails {
		t.Error("Expected thumbnail conversion enabled")
	}
	// Absent fields still get defaults
	if *cfg.RetagAudio != DefaultRetagAudio {
		t.Error("Expected default audio retagging for absent field")
	}

	rc := cfg.RunnerConfig()
	if rc.Prefs.TruncateDateToYear {
		t.Error("Expected runner prefs to carry disabled truncation")
	}
	if !rc.ConvertThumbnails {
		t.Error("Expected runner config to carry thumbnail conversion")
	}
}

func TestLoadFileConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_dir: [broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
