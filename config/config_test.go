package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "data" {
		t.Errorf("Expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.FPS != 60 {
		t.Errorf("Expected default fps 60, got %d", cfg.FPS)
	}
	if !cfg.Sound {
		t.Error("Expected sound enabled by default")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PIXELATE_DATA_DIR", "/tmp/px")
	t.Setenv("PIXELATE_FPS", "30")
	t.Setenv("PIXELATE_SOUND", "false")
	t.Setenv("PIXELATE_LISTEN", ":8137")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/px" {
		t.Errorf("Expected /tmp/px, got %q", cfg.DataDir)
	}
	if cfg.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", cfg.FPS)
	}
	if cfg.Sound {
		t.Error("Expected sound disabled")
	}
	if cfg.SpritesPath() != "/tmp/px/sprites.json" {
		t.Errorf("Unexpected sprites path %q", cfg.SpritesPath())
	}
}

func TestFPSOutOfRange(t *testing.T) {
	t.Setenv("PIXELATE_FPS", "1000")
	if _, err := Load(); err == nil {
		t.Error("Expected error for out-of-range fps")
	}
}
