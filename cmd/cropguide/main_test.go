package main

import (
	"runtime"
	"testing"

	"cropguide/internal/config"
)

func TestUpdateBinding(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("config path uses APPDATA")
	}
	t.Setenv("HOME", t.TempDir())

	if err := updateBinding("undo = ctrl+u, ctrl+backspace"); err != nil {
		t.Fatalf("updateBinding() error = %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	got := cfg.Keymap["undo"]
	if len(got) != 2 || got[0] != "ctrl+u" || got[1] != "ctrl+backspace" {
		t.Errorf("Keymap[undo] = %v", got)
	}

	bad := []string{"undo", "fly=f", "undo=hyper+z", "undo=ctrl+y"}
	for _, spec := range bad {
		if err := updateBinding(spec); err == nil {
			t.Errorf("updateBinding(%q) should fail", spec)
		}
	}
}
