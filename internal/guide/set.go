package guide

import (
	"math"

	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

// MinLockGuides 锁定参考线所需的最少数量
const MinLockGuides = 4

// Set 有序参考线集合，最多一条处于选中状态
type Set struct {
	guides   []Guide
	selected int // -1 表示未选中
	locked   bool
	width    int
	height   int
}

// NewSet 创建参考线集合，width/height 为图像自然尺寸
func NewSet(width, height int) *Set {
	return &Set{
		guides:   make([]Guide, 0),
		selected: -1,
		width:    width,
		height:   height,
	}
}

func (s *Set) Len() int { return len(s.guides) }

// Width 图像宽度（垂直线的范围）
func (s *Set) Width() int { return s.width }

// Height 图像高度（水平线的范围）
func (s *Set) Height() int { return s.height }

// At 返回第 i 条参考线
func (s *Set) At(i int) (Guide, bool) {
	if !s.valid(i) {
		return Guide{}, false
	}
	return s.guides[i], true
}

// Guides 返回参考线副本
func (s *Set) Guides() []Guide {
	out := make([]Guide, len(s.guides))
	copy(out, s.guides)
	return out
}

// Count 某方向的参考线数量
func (s *Set) Count(axis Axis) int {
	n := 0
	for _, g := range s.guides {
		if g.Axis == axis {
			n++
		}
	}
	return n
}

// Positions 某方向所有参考线的位置，用于吸附
func (s *Set) Positions(axis Axis) []float64 {
	var out []float64
	for _, g := range s.guides {
		if g.Axis == axis {
			out = append(out, float64(g.Position))
		}
	}
	return out
}

// Add 添加参考线并选中，返回其索引
func (s *Set) Add(axis Axis, position int) int {
	s.guides = append(s.guides, Guide{Axis: axis, Position: s.clamp(axis, position)})
	s.selected = len(s.guides) - 1
	return s.selected
}

// Merge 追加导入的参考线，不改变选中状态，返回追加数量
func (s *Set) Merge(guides []Guide) int {
	for _, g := range guides {
		s.guides = append(s.guides, Guide{Axis: g.Axis, Position: s.clamp(g.Axis, g.Position)})
	}
	return len(guides)
}

// Remove 删除第 i 条参考线
func (s *Set) Remove(i int) bool {
	if !s.valid(i) {
		return false
	}

	s.guides = append(s.guides[:i], s.guides[i+1:]...)
	switch {
	case s.selected == i:
		s.selected = -1
	case s.selected > i:
		s.selected--
	}
	return true
}

// Select 选中第 i 条参考线，锁定时不可选中
func (s *Set) Select(i int) bool {
	if s.locked || !s.valid(i) {
		return false
	}
	s.selected = i
	return true
}

func (s *Set) Deselect() { s.selected = -1 }

// Selected 当前选中的索引
func (s *Set) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// MoveBy 沿参考线的法向移动（水平线取 dy，垂直线取 dx），返回位置是否变化
func (s *Set) MoveBy(i, dx, dy int) bool {
	g, ok := s.At(i)
	if !ok {
		return false
	}
	delta := dy
	if g.Axis == Vertical {
		delta = dx
	}
	return s.MoveTo(i, g.Position+delta)
}

// MoveTo 移动到指定位置
func (s *Set) MoveTo(i, position int) bool {
	if s.locked || !s.valid(i) {
		return false
	}
	g := &s.guides[i]
	p := s.clamp(g.Axis, position)
	if p == g.Position {
		return false
	}
	g.Position = p
	return true
}

func (s *Set) Locked() bool { return s.locked }

// ToggleLock 切换锁定，参考线少于 MinLockGuides 时不能锁定，解锁总是成功
// 锁定时清除选中状态
func (s *Set) ToggleLock() bool {
	if s.locked {
		s.locked = false
		return true
	}
	if len(s.guides) < MinLockGuides {
		return false
	}
	s.locked = true
	s.selected = -1
	return true
}

// Clear 删除全部参考线并解除锁定
func (s *Set) Clear() {
	s.guides = s.guides[:0]
	s.selected = -1
	s.locked = false
}

// Restore 用快照替换参考线，选中索引越界时取消选中
func (s *Set) Restore(guides []Guide) {
	s.guides = make([]Guide, len(guides))
	for i, g := range guides {
		s.guides[i] = Guide{Axis: g.Axis, Position: s.clamp(g.Axis, g.Position)}
	}
	if s.selected >= len(s.guides) {
		s.selected = -1
	}
}

// HitTest 返回距离 p（自然坐标）在容差内最近的参考线，锁定或未命中时返回 -1
// 距离相同时取后添加的（绘制在上层）
func (s *Set) HitTest(p viewport.Point, tolX, tolY float64) int {
	if s.locked {
		return -1
	}

	hit := -1
	best := math.Inf(1)
	for i, g := range s.guides {
		var d, tol float64
		if g.Axis == Vertical {
			d, tol = math.Abs(p.X-float64(g.Position)), tolX
		} else {
			d, tol = math.Abs(p.Y-float64(g.Position)), tolY
		}
		if d <= tol && d <= best {
			hit, best = i, d
		}
	}
	return hit
}

// DeriveBounds 由参考线推导选区
// 至少两条垂直线时取其最小/最大 X 作为左右边，水平线同理；不足两条的方向保留原值
func (s *Set) DeriveBounds(current selection.Rect) (selection.Rect, bool) {
	xs := s.Positions(Vertical)
	ys := s.Positions(Horizontal)
	if len(xs) < 2 && len(ys) < 2 {
		return current, false
	}

	r := current
	if len(xs) >= 2 {
		lo, hi := minMax(xs)
		r.Left, r.Right = int(lo), int(hi)
	}
	if len(ys) >= 2 {
		lo, hi := minMax(ys)
		r.Top, r.Bottom = int(lo), int(hi)
	}
	return r, true
}

func (s *Set) valid(i int) bool {
	return i >= 0 && i < len(s.guides)
}

func (s *Set) clamp(axis Axis, position int) int {
	extent := s.height
	if axis == Vertical {
		extent = s.width
	}
	if position < 0 {
		return 0
	}
	if position > extent {
		return extent
	}
	return position
}

func minMax(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
