package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.FPS != 60 {
		t.Errorf("fps = %d", cfg.FPS)
	}
	if cfg.MusicFile != "background_music.mp3" || cfg.MusicVolume != 0.3 || !cfg.MusicEnabled {
		t.Errorf("music = %q %v %v", cfg.MusicFile, cfg.MusicVolume, cfg.MusicEnabled)
	}
	if cfg.KeyHold != 150*time.Millisecond {
		t.Errorf("key hold = %v", cfg.KeyHold)
	}
	if cfg.Log.Filename != "pong.log" || cfg.Log.Level != "Info" || cfg.Log.MaxSize != 10 {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoadPropertiesFile(t *testing.T) {
	path := writeProperties(t, `backend=window
fps=30
musicFile=theme.wav
musicVolume=0.8
keyHoldMs=90
level=Debug
compress=true
`)
	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendWindow || cfg.FPS != 30 {
		t.Errorf("backend/fps = %q/%d", cfg.Backend, cfg.FPS)
	}
	if cfg.MusicFile != "theme.wav" || cfg.MusicVolume != 0.8 {
		t.Errorf("music = %q %v", cfg.MusicFile, cfg.MusicVolume)
	}
	if cfg.KeyHold != 90*time.Millisecond {
		t.Errorf("key hold = %v", cfg.KeyHold)
	}
	if cfg.Log.Level != "Debug" || !cfg.Log.Compress {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeProperties(t, "fps=30\nmusicVolume=0.5\n")
	cfg, err := Load([]string{"--config", path, "--fps", "120", "--volume", "7", "--mute"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 120 {
		t.Errorf("fps = %d, want flag value", cfg.FPS)
	}
	if cfg.MusicVolume != 1 {
		t.Errorf("volume = %v, want clamped to 1", cfg.MusicVolume)
	}
	if cfg.MusicEnabled {
		t.Error("--mute did not disable music")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("PONG_BACKEND", "window")
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != BackendWindow {
		t.Errorf("backend = %q", cfg.Backend)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"missing explicit file", []string{"--config", filepath.Join(t.TempDir(), "nope.properties")}},
		{"unknown backend", []string{"--backend", "vga"}},
		{"zero fps", []string{"--fps", "0"}},
		{"bad flag", []string{"--frames", "3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
