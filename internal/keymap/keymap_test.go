package keymap

import (
	"errors"
	"testing"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		in   string
		want Chord
	}{
		{"ctrl+z", Chord{Mods: ModCtrl, Key: 'Z'}},
		{"Ctrl+Shift+Z", Chord{Mods: ModCtrl | ModShift, Key: 'Z'}},
		{"shift + up", Chord{Mods: ModShift, Key: KeyUp}},
		{"ctrl+0", Chord{Mods: ModCtrl, Key: '0'}},
		{"ctrl+-", Chord{Mods: ModCtrl, Key: KeyMinus}},
		{"ctrl+plus", Chord{Mods: ModCtrl, Key: KeyPlus}},
		{"cmd+esc", Chord{Mods: ModMeta, Key: KeyEscape}},
		{"space", Chord{Key: KeySpace}},
		{"l", Chord{Key: 'L'}},
	}
	for _, tt := range tests {
		got, err := ParseChord(tt.in)
		if err != nil {
			t.Errorf("ParseChord(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChord(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseChord_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyChord},
		{" + ", ErrEmptyChord},
		{"ctrl+f13", ErrUnknownKey},
		{"hyper+z", ErrUnknownModifier},
	}
	for _, tt := range tests {
		if _, err := ParseChord(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseChord(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestChord_String(t *testing.T) {
	c := Chord{Mods: ModShift | ModCtrl, Key: 'Z'}
	if got := c.String(); got != "ctrl+shift+z" {
		t.Errorf("String() = %q, want ctrl+shift+z", got)
	}

	back, err := ParseChord(c.String())
	if err != nil || back != c {
		t.Errorf("ParseChord(String()) = %+v, %v", back, err)
	}
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		chord string
		want  Action
	}{
		{"ctrl+z", ActionUndo},
		{"ctrl+y", ActionRedo},
		{"ctrl+shift+z", ActionRedo},
		{"ctrl+equal", ActionZoomIn},
		{"ctrl+semicolon", ActionZoomIn},
		{"ctrl+minus", ActionZoomOut},
		{"ctrl+0", ActionZoomReset},
		{"l", ActionToggleLock},
		{"backspace", ActionDeleteGuide},
		{"escape", ActionEscape},
		{"space", ActionPan},
		{"shift+left", ActionNudgeLeft},
		{"z", ActionNone},
	}
	for _, tt := range tests {
		c, err := ParseChord(tt.chord)
		if err != nil {
			t.Fatalf("ParseChord(%q) error = %v", tt.chord, err)
		}
		if got := b.Lookup(c); got != tt.want {
			t.Errorf("Lookup(%s) = %v, want %v", tt.chord, got, tt.want)
		}
	}
}

func TestBindings_LookupKey(t *testing.T) {
	b := DefaultBindings()
	if got := b.LookupKey(KeySpace); got != ActionPan {
		t.Errorf("LookupKey(space) = %v, want pan", got)
	}
	if got := b.LookupKey(KeyMinus); got != ActionZoomOut {
		t.Errorf("LookupKey(minus) = %v, want zoom-out", got)
	}
	if got := b.LookupKey(KeyTab); got != ActionNone {
		t.Errorf("LookupKey(tab) = %v, want none", got)
	}
}

func TestFromSpec_Errors(t *testing.T) {
	if _, err := FromSpec(map[string][]string{"fly": {"f"}}); err == nil {
		t.Error("FromSpec() with unknown action should fail")
	}
	if _, err := FromSpec(map[string][]string{"undo": {"ctrl+f13"}}); err == nil {
		t.Error("FromSpec() with bad chord should fail")
	}

	conflict := map[string][]string{"undo": {"ctrl+z"}, "redo": {"ctrl+z"}}
	if _, err := FromSpec(conflict); err == nil {
		t.Error("FromSpec() with conflicting chords should fail")
	}
}

func TestAction_Nudge(t *testing.T) {
	if dx, dy, ok := ActionNudgeLeft.Nudge(); !ok || dx != -1 || dy != 0 {
		t.Errorf("NudgeLeft = %d, %d, %v", dx, dy, ok)
	}
	if _, _, ok := ActionUndo.Nudge(); ok {
		t.Error("Undo should not be a nudge")
	}
}

func TestBindings_Describe(t *testing.T) {
	lines := DefaultBindings().Describe()
	if len(lines) != len(DefaultSpec()) {
		t.Errorf("len(Describe()) = %d, want %d", len(lines), len(DefaultSpec()))
	}
}
