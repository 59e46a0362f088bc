package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"cropguide/internal/editor"
)

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)

	path := GetConfigPath()
	if !strings.HasPrefix(path, home) {
		t.Errorf("GetConfigPath() = %q, want under %q", path, home)
	}
	if !strings.HasSuffix(path, filepath.Join("cropguide", "config.json")) {
		t.Errorf("GetConfigPath() = %q", path)
	}
}

func TestLoadFile_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.json")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Editor.MaxHistory != 50 || cfg.Storage.Format != "json" {
		t.Errorf("LoadFile() = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestLoadFile_Validates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"editor": {"aspectWidth": -1, "aspectHeight": 3, "snapThreshold": 12, "guideHitTolerance": 0, "maxHistory": 0},
		"keymap": {"undo": ["hyper+z"]},
		"storage": {"directory": "../etc", "format": "YML", "keepDays": -3}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	def := DefaultConfig()

	if cfg.Editor.AspectWidth != def.Editor.AspectWidth || cfg.Editor.AspectHeight != def.Editor.AspectHeight {
		t.Errorf("aspect = %v:%v, want defaults", cfg.Editor.AspectWidth, cfg.Editor.AspectHeight)
	}
	if cfg.Editor.SnapThreshold != 12 {
		t.Errorf("SnapThreshold = %v, want 12", cfg.Editor.SnapThreshold)
	}
	if cfg.Editor.GuideHitTolerance != editor.DefaultGuideHitTolerance {
		t.Errorf("GuideHitTolerance = %v", cfg.Editor.GuideHitTolerance)
	}
	if cfg.Editor.MaxHistory != 50 {
		t.Errorf("MaxHistory = %v, want 50", cfg.Editor.MaxHistory)
	}
	if len(cfg.Keymap) != len(def.Keymap) {
		t.Errorf("invalid keymap should fall back to defaults, got %v", cfg.Keymap)
	}
	if cfg.Storage.Format != "yaml" || cfg.Storage.KeepDays != 0 {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Storage.Directory != def.Storage.Directory {
		t.Errorf("Directory = %q, want default", cfg.Storage.Directory)
	}
}

func TestLoadFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte("{"), 0644)

	cfg, err := LoadFile(path)
	if err == nil {
		t.Error("LoadFile() error = nil for malformed file")
	}
	if cfg == nil {
		t.Error("LoadFile() should still return defaults")
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.Editor.AspectLock = true
	cfg.Keymap["undo"] = []string{"ctrl+u"}

	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !got.Editor.AspectLock || got.Keymap["undo"][0] != "ctrl+u" {
		t.Errorf("LoadFile() = %+v", got)
	}
}

func TestConfig_EditorOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.AspectLock = true
	cfg.Editor.MaxHistory = 7

	opts, err := cfg.EditorOptions()
	if err != nil {
		t.Fatalf("EditorOptions() error = %v", err)
	}
	got := editor.New(opts...).Options()
	if !got.AspectLock || got.MaxHistory != 7 || got.Ratio != cfg.Ratio() {
		t.Errorf("Options() = %+v", got)
	}

	cfg.Keymap = map[string][]string{"nope": {"x"}}
	if _, err := cfg.EditorOptions(); err == nil {
		t.Error("EditorOptions() with bad keymap should fail")
	}
}

func TestConfig_EnsureStorageDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tilde expansion uses HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.Storage.Directory = "~/crops"
	if err := cfg.EnsureStorageDir(); err != nil {
		t.Fatalf("EnsureStorageDir() error = %v", err)
	}
	want := filepath.Join(home, "crops")
	if cfg.Storage.Directory != want {
		t.Errorf("Directory = %q, want %q", cfg.Storage.Directory, want)
	}
	if fi, err := os.Stat(want); err != nil || !fi.IsDir() {
		t.Errorf("directory not created: %v", err)
	}
}
