package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Duration != 4.0 {
		t.Errorf("expected duration 4.0, got %f", cfg.Duration)
	}
	if cfg.FPS != 12.5 {
		t.Errorf("expected fps 12.5, got %f", cfg.FPS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero duration", Config{Duration: 0, FPS: 25}},
		{"negative duration", Config{Duration: -1, FPS: 25}},
		{"zero fps", Config{Duration: 4, FPS: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTimeConversions(t *testing.T) {
	cfg := &Config{Duration: 4.0, FPS: 12.5}

	if got := cfg.TransitionDuration(); got != 4*time.Second {
		t.Errorf("transition duration = %v, want 4s", got)
	}
	if got := cfg.FrameDelta(); got != 80*time.Millisecond {
		t.Errorf("frame delta = %v, want 80ms", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Duration != 4.0 || cfg.FPS != 12.5 {
		t.Errorf("classic preset = %+v", cfg)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dissolve.yaml")
	want := &Config{Duration: 2.5, FPS: 24, Seed: 99, Output: "out.gif"}

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: %+v vs %+v", got, want)
	}
}
