package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Optimize.TargetRatio <= 0 || cfg.Optimize.TargetRatio > 1 {
		t.Errorf("default target ratio %v out of (0, 1]", cfg.Optimize.TargetRatio)
	}
	if cfg.Optimize.OverdrawThreshold < 1 {
		t.Errorf("default overdraw threshold %v below 1", cfg.Optimize.OverdrawThreshold)
	}
	if cfg.Optimize.MeshletMaxVertices <= 0 || cfg.Optimize.MeshletMaxTriangles <= 0 {
		t.Error("default meshlet bounds must be positive")
	}
	if cfg.Preview.FPS <= 0 {
		t.Errorf("default FPS %d must be positive", cfg.Preview.FPS)
	}
	if cfg.Logging.Level == "" {
		t.Error("default log level missing")
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meshtune.yaml")
	data := []byte("optimize:\n  target_ratio: 0.25\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Optimize.TargetRatio != 0.25 {
		t.Errorf("target ratio = %v, want 0.25 from file", cfg.Optimize.TargetRatio)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug from file", cfg.Logging.Level)
	}
	// Values absent from the file keep their defaults.
	if cfg.Optimize.MeshletMaxTriangles != Default().Optimize.MeshletMaxTriangles {
		t.Error("file load clobbered a defaulted value")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meshtune.yaml")
	if err := os.WriteFile(path, []byte("optimize: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "meshtune.yaml")

	cfg := Default()
	cfg.Optimize.MeshletConeWeight = 0.75
	if err := Save(cfg, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Optimize.MeshletConeWeight != 0.75 {
		t.Errorf("cone weight = %v after round trip, want 0.75", loaded.Optimize.MeshletConeWeight)
	}
}
