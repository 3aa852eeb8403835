package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Textures.PaintSize != 16 {
		t.Errorf("expected paint size 16, got %d", cfg.Textures.PaintSize)
	}
	if cfg.Textures.Upscale != 4 {
		t.Errorf("expected upscale 4, got %d", cfg.Textures.Upscale)
	}
	if cfg.Hair.MaxInertia != 0.35 {
		t.Errorf("expected max inertia 0.35, got %f", cfg.Hair.MaxInertia)
	}
	if cfg.Hair.Gravity[1] >= 0 {
		t.Errorf("expected downward hair gravity, got %v", cfg.Hair.Gravity)
	}
	if cfg.Debug.HeadOverlay || cfg.Debug.Assertions {
		t.Error("expected debug toggles to be off by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "avatar.yaml")

	yamlContent := `
logging:
  level: "debug"
  log_file: "avatar.log"

textures:
  paint_size: 32
  upscale: 2

hair:
  max_inertia: 0.5
  spring_rate: 4

debug:
  head_overlay: true
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "avatar.log" {
		t.Errorf("expected log file 'avatar.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Textures.PaintSize != 32 || cfg.Textures.Upscale != 2 {
		t.Errorf("expected textures 32x2, got %+v", cfg.Textures)
	}
	// Untouched keys keep their defaults.
	if cfg.Textures.EyeSize != 32 {
		t.Errorf("expected eye size to stay 32, got %d", cfg.Textures.EyeSize)
	}
	if cfg.Hair.MaxInertia != 0.5 || cfg.Hair.SpringRate != 4 {
		t.Errorf("unexpected hair config %+v", cfg.Hair)
	}
	if cfg.Hair.CentrifugalGain != Default().Hair.CentrifugalGain {
		t.Errorf("expected centrifugal gain default, got %f", cfg.Hair.CentrifugalGain)
	}
	if !cfg.Debug.HeadOverlay {
		t.Error("expected head overlay to be enabled")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
textures:
  paint_size: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/avatar.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("AVATAR_LOG_LEVEL", "warn")
	t.Setenv("AVATAR_TEXTURE_PAINT_SIZE", "8")
	t.Setenv("AVATAR_DEBUG_HEAD_OVERLAY", "true")

	cfg := Default()
	cfg.Output.Dir = "from-file"
	if err := applyEnv(cfg); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Textures.PaintSize != 8 {
		t.Errorf("expected env paint size 8, got %d", cfg.Textures.PaintSize)
	}
	if !cfg.Debug.HeadOverlay {
		t.Error("expected env to enable head overlay")
	}
	if cfg.Output.Dir != "from-file" {
		t.Errorf("unset env var should keep existing value, got %s", cfg.Output.Dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.Assertions {
					t.Error("expected assertions to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "appearance flag",
			setup: func() { *flagAppearance = "hero.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Avatar.AppearanceFile != "hero.yaml" {
					t.Errorf("expected appearance hero.yaml, got %s", cfg.Avatar.AppearanceFile)
				}
			},
			teardown: func() { *flagAppearance = "" },
		},
		{
			name:  "paint size flag",
			setup: func() { *flagPaintSize = 64 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Textures.PaintSize != 64 {
					t.Errorf("expected paint size 64, got %d", cfg.Textures.PaintSize)
				}
			},
			teardown: func() { *flagPaintSize = 0 },
		},
		{
			name:  "out flag",
			setup: func() { *flagOut = "/tmp/avatar-out" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Dir != "/tmp/avatar-out" {
					t.Errorf("expected out dir /tmp/avatar-out, got %s", cfg.Output.Dir)
				}
			},
			teardown: func() { *flagOut = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "avatar.yaml")
	yamlContent := `
textures:
  paint_size: 24
  upscale: 0
logging:
  level: error
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("AVATAR_LOG_LEVEL", "warn")
	*flagConfig = configPath
	*flagPaintSize = 48
	defer func() {
		*flagConfig = ""
		*flagPaintSize = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Textures.PaintSize != 48 {
		t.Errorf("flag should override file: expected 48, got %d", cfg.Textures.PaintSize)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env should override file: expected warn, got %s", cfg.Logging.Level)
	}
	if cfg.Textures.Upscale != 1 {
		t.Errorf("zero upscale should be sanitized to 1, got %d", cfg.Textures.Upscale)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "avatar.yaml")
	cfg := Default()
	cfg.Textures.PaintSize = 12

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Textures.PaintSize != 12 {
		t.Errorf("expected saved paint size 12, got %d", loaded.Textures.PaintSize)
	}
}
