package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cubemap.Size != 512 {
		t.Errorf("expected default face size 512, got %d", cfg.Cubemap.Size)
	}
	if cfg.Cubemap.Format != "png" {
		t.Errorf("expected default format png, got %s", cfg.Cubemap.Format)
	}
	if cfg.Shader.GlslcPath != "glslc" {
		t.Errorf("expected default glslc path, got %s", cfg.Shader.GlslcPath)
	}
	if cfg.Capture.FPS != 10 {
		t.Errorf("expected default fps 10, got %v", cfg.Capture.FPS)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cubemap.Size != 512 {
		t.Errorf("expected defaults, got size %d", cfg.Cubemap.Size)
	}
}

func TestLoadFileOverridesSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge-tools.yaml")
	body := "cubemap:\n  size: 256\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Cubemap.Size != 256 {
		t.Errorf("expected size 256 from file, got %d", cfg.Cubemap.Size)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug from file, got %s", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Cubemap.Format != "png" {
		t.Errorf("expected format png to survive, got %s", cfg.Cubemap.Format)
	}
	if cfg.Capture.FPS != 10 {
		t.Errorf("expected fps 10 to survive, got %v", cfg.Capture.FPS)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for explicit missing config path")
	}
}
