package guide

import (
	"errors"
	"testing"

	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"h", Horizontal, false},
		{"Horizontal", Horizontal, false},
		{" v ", Vertical, false},
		{"vertical", Vertical, false},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownAxis) {
				t.Errorf("ParseAxis(%q) error = %v, want ErrUnknownAxis", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestAxis_Text(t *testing.T) {
	var a Axis
	if err := a.UnmarshalText([]byte("v")); err != nil || a != Vertical {
		t.Fatalf("UnmarshalText(v) = %v, %v", a, err)
	}
	b, _ := a.MarshalText()
	if string(b) != "v" {
		t.Errorf("MarshalText() = %q, want v", b)
	}
}

func TestSet_Add(t *testing.T) {
	s := NewSet(1000, 800)

	i := s.Add(Vertical, 1200)
	if i != 0 {
		t.Errorf("Add() = %d, want 0", i)
	}
	if g, _ := s.At(0); g.Position != 1000 {
		t.Errorf("Position = %d, want clamped 1000", g.Position)
	}
	if sel, ok := s.Selected(); !ok || sel != 0 {
		t.Errorf("Selected() = %d, %v, want 0, true", sel, ok)
	}

	s.Add(Horizontal, -20)
	if g, _ := s.At(1); g.Position != 0 {
		t.Errorf("Position = %d, want clamped 0", g.Position)
	}
}

func TestSet_Remove(t *testing.T) {
	tests := []struct {
		name       string
		selected   int
		remove     int
		wantSel    int
		wantSelOK  bool
	}{
		{"removed selected", 1, 1, -1, false},
		{"removed before selected", 2, 0, 1, true},
		{"removed after selected", 0, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet(1000, 1000)
			s.Add(Vertical, 10)
			s.Add(Vertical, 20)
			s.Add(Vertical, 30)
			s.Select(tt.selected)

			if !s.Remove(tt.remove) {
				t.Fatal("Remove() = false")
			}
			sel, ok := s.Selected()
			if sel != tt.wantSel || ok != tt.wantSelOK {
				t.Errorf("Selected() = %d, %v, want %d, %v", sel, ok, tt.wantSel, tt.wantSelOK)
			}
			if s.Len() != 2 {
				t.Errorf("Len() = %d, want 2", s.Len())
			}
		})
	}

	s := NewSet(100, 100)
	if s.Remove(0) || s.Remove(-1) {
		t.Error("Remove() out of range should fail")
	}
}

func TestSet_Move(t *testing.T) {
	s := NewSet(1000, 800)
	h := s.Add(Horizontal, 100)
	v := s.Add(Vertical, 100)

	s.MoveBy(h, 50, 10)
	s.MoveBy(v, 50, 10)
	if g, _ := s.At(h); g.Position != 110 {
		t.Errorf("horizontal Position = %d, want 110", g.Position)
	}
	if g, _ := s.At(v); g.Position != 150 {
		t.Errorf("vertical Position = %d, want 150", g.Position)
	}

	s.MoveTo(h, 5000)
	if g, _ := s.At(h); g.Position != 800 {
		t.Errorf("Position = %d, want clamped 800", g.Position)
	}
	if s.MoveTo(h, 900) {
		t.Error("MoveTo() to the same clamped position should report no change")
	}
}

func TestSet_ToggleLock(t *testing.T) {
	s := NewSet(1000, 1000)
	for i := 0; i < 3; i++ {
		s.Add(Vertical, i*10)
	}
	if s.ToggleLock() || s.Locked() {
		t.Fatal("ToggleLock() with 3 guides should be a no-op")
	}

	s.Add(Horizontal, 10)
	if !s.ToggleLock() || !s.Locked() {
		t.Fatal("ToggleLock() with 4 guides should lock")
	}
	if _, ok := s.Selected(); ok {
		t.Error("locking should clear the selection")
	}
	if s.Select(0) {
		t.Error("Select() while locked should fail")
	}
	if s.MoveBy(0, 5, 5) {
		t.Error("MoveBy() while locked should fail")
	}
	if got := s.HitTest(viewport.Pt(0, 0), 4, 4); got != -1 {
		t.Errorf("HitTest() while locked = %d, want -1", got)
	}

	s.ToggleLock()
	if s.Locked() {
		t.Error("second ToggleLock() should unlock")
	}

	s.ToggleLock()
	s.Restore(s.Guides()[:2])
	if !s.ToggleLock() || s.Locked() {
		t.Error("ToggleLock() should unlock with fewer than 4 guides")
	}
}

func TestSet_DeriveBounds(t *testing.T) {
	s := NewSet(1000, 1000)
	s.Add(Vertical, 400)
	s.Add(Vertical, 100)
	s.Add(Horizontal, 300)
	s.Add(Horizontal, 50)

	got, ok := s.DeriveBounds(selection.Rect{})
	want := selection.Rect{Left: 100, Top: 50, Right: 400, Bottom: 300}
	if !ok || got != want {
		t.Errorf("DeriveBounds() = %v, %v, want %v", got, ok, want)
	}
}

func TestSet_DeriveBoundsPartial(t *testing.T) {
	s := NewSet(1000, 1000)
	s.Add(Vertical, 400)
	s.Add(Vertical, 100)
	s.Add(Horizontal, 300)

	current := selection.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}
	got, ok := s.DeriveBounds(current)
	want := selection.Rect{Left: 100, Top: 2, Right: 400, Bottom: 4}
	if !ok || got != want {
		t.Errorf("DeriveBounds() = %v, %v, want %v", got, ok, want)
	}

	empty := NewSet(1000, 1000)
	empty.Add(Vertical, 10)
	if _, ok := empty.DeriveBounds(current); ok {
		t.Error("DeriveBounds() with a single guide should fail")
	}
}

func TestSet_HitTest(t *testing.T) {
	s := NewSet(1000, 1000)
	s.Add(Vertical, 100)
	s.Add(Horizontal, 200)
	s.Add(Vertical, 103)

	tests := []struct {
		p    viewport.Point
		want int
	}{
		{viewport.Pt(99, 500), 0},
		{viewport.Pt(103, 500), 2},
		{viewport.Pt(500, 197), 1},
		{viewport.Pt(500, 500), -1},
	}
	for _, tt := range tests {
		if got := s.HitTest(tt.p, 4, 4); got != tt.want {
			t.Errorf("HitTest(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestSet_Restore(t *testing.T) {
	s := NewSet(1000, 1000)
	s.Add(Vertical, 10)
	s.Add(Vertical, 20)
	s.Add(Vertical, 30)

	s.Restore([]Guide{{Axis: Horizontal, Position: 5}})
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if _, ok := s.Selected(); ok {
		t.Error("out-of-range selection should be cleared on Restore")
	}
}

func TestSet_GuidesIsCopy(t *testing.T) {
	s := NewSet(1000, 1000)
	s.Add(Vertical, 10)
	gs := s.Guides()
	gs[0].Position = 999
	if g, _ := s.At(0); g.Position != 10 {
		t.Error("Guides() must not alias internal state")
	}
}

func TestSet_ClearAndMerge(t *testing.T) {
	s := NewSet(500, 500)
	for i := 0; i < 4; i++ {
		s.Add(Vertical, i)
	}
	s.ToggleLock()
	s.Clear()
	if s.Len() != 0 || s.Locked() {
		t.Errorf("Clear() left Len=%d Locked=%v", s.Len(), s.Locked())
	}

	n := s.Merge([]Guide{{Axis: Vertical, Position: 900}, {Axis: Horizontal, Position: 10}})
	if n != 2 || s.Count(Vertical) != 1 || s.Count(Horizontal) != 1 {
		t.Errorf("Merge() = %d, counts %d/%d", n, s.Count(Vertical), s.Count(Horizontal))
	}
	if g, _ := s.At(0); g.Position != 500 {
		t.Errorf("merged Position = %d, want clamped 500", g.Position)
	}
	if _, ok := s.Selected(); ok {
		t.Error("Merge() should not select")
	}
}
