package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cropguide/internal/editor"
	"cropguide/internal/keymap"
	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

const sample = `
container: {width: 800, height: 600}
aspect_lock: true
steps:
  - {pointer: down, target: ruler-v, x: 250, y: 0}
  - {pointer: up, x: 250, y: 300}
  - {key: down, chord: ctrl+z}
  - {wheel: 1, x: 400, y: 300}
  - {command: set-selection, rect: {left: 1, top: 2, right: 30, bottom: 40}}
  - {resize: {width: 1024, height: 768}}
  - {command: apply}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !s.AspectLock || s.Container != (viewport.Size{Width: 800, Height: 600}) {
		t.Errorf("Parse() = %+v", s)
	}

	events, err := s.Events()
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	want := []editor.Event{
		editor.PointerEvent{Kind: editor.PointerDown, Target: editor.TargetRulerV, Pos: viewport.Pt(250, 0)},
		editor.PointerEvent{Kind: editor.PointerUp, Target: editor.TargetCanvas, Pos: viewport.Pt(250, 300)},
		editor.KeyEvent{Kind: editor.KeyDown, Chord: keymap.Chord{Mods: keymap.ModCtrl, Key: 'Z'}},
		editor.WheelEvent{Pos: viewport.Pt(400, 300), DeltaY: 1},
		editor.CommandEvent{Command: editor.CommandSetSelection, Rect: selection.Rect{Left: 1, Top: 2, Right: 30, Bottom: 40}},
		editor.ResizeEvent{Size: viewport.Size{Width: 1024, Height: 768}},
		editor.CommandEvent{Command: editor.CommandApply},
	}
	if len(events) != len(want) {
		t.Fatalf("len(Events()) = %d, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Events()[%d] = %#v, want %#v", i, events[i], want[i])
		}
	}
}

func TestParse_DefaultContainer(t *testing.T) {
	s, err := Parse([]byte("steps: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Container != DefaultContainer {
		t.Errorf("Container = %v, want %v", s.Container, DefaultContainer)
	}
}

func TestParse_UnknownField(t *testing.T) {
	if _, err := Parse([]byte("stepz: []\n")); err == nil {
		t.Error("Parse() should reject unknown fields")
	}
}

func TestEvents_Errors(t *testing.T) {
	tests := []string{
		"steps: [{}]",
		"steps: [{pointer: hover}]",
		"steps: [{pointer: down, target: ruler-x}]",
		"steps: [{key: press, chord: a}]",
		"steps: [{command: explode}]",
		"steps: [{command: set-selection}]",
	}
	for _, data := range tests {
		s, err := Parse([]byte(data))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", data, err)
		}
		if _, err := s.Events(); !errors.Is(err, ErrUnknownStep) {
			t.Errorf("Events(%q) error = %v, want ErrUnknownStep", data, err)
		}
	}

	s, _ := Parse([]byte("steps: [{key: down, chord: ''}]"))
	if _, err := s.Events(); !errors.Is(err, keymap.ErrEmptyChord) {
		t.Errorf("Events() error = %v, want ErrEmptyChord", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	os.WriteFile(path, []byte(sample), 0644)
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v", err)
	}
	if _, err := Load(path + ".missing"); err == nil {
		t.Error("Load() on missing file should fail")
	}
}
