package selection

import "fmt"

// Rect 自然坐标系中的选区，全零表示无选区
type Rect struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
}

// IsZero 是否为全零（从未选择或已清除）
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Empty 宽或高为零，下游视为无选区
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

func (r Rect) Width() int {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

func (r Rect) Height() int {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Canon 规范化，保证 Left<=Right、Top<=Bottom
func (r Rect) Canon() Rect {
	if r.Right < r.Left {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Bottom < r.Top {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Clamp 将四边限制在 [0,w]x[0,h]
func (r Rect) Clamp(w, h int) Rect {
	return Rect{
		Left:   clampInt(r.Left, 0, w),
		Top:    clampInt(r.Top, 0, h),
		Right:  clampInt(r.Right, 0, w),
		Bottom: clampInt(r.Bottom, 0, h),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
