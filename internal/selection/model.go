package selection

import (
	"math"

	"cropguide/internal/viewport"
)

// Ratio 宽高比
type Ratio struct {
	W float64 `json:"width" yaml:"width"`
	H float64 `json:"height" yaml:"height"`
}

// DefaultRatio 默认锁定比例 640:909
var DefaultRatio = Ratio{W: 640, H: 909}

func (r Ratio) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Value 宽/高
func (r Ratio) Value() float64 {
	return r.W / r.H
}

// Model 拖拽选区模型
type Model struct {
	width    int
	height   int
	rect     Rect
	ratio    Ratio
	locked   bool           // 比例锁定
	dragging bool
	start    viewport.Point // 拖拽起点（自然坐标，已吸附）
}

// NewModel 创建选区模型，natural 为图像自然尺寸
func NewModel(natural viewport.Size) *Model {
	return &Model{
		width:  int(math.Round(natural.Width)),
		height: int(math.Round(natural.Height)),
		ratio:  DefaultRatio,
	}
}

// SetRatio 设置锁定比例，无效比例被忽略
func (m *Model) SetRatio(r Ratio) {
	if r.Valid() {
		m.ratio = r
	}
}

func (m *Model) Ratio() Ratio { return m.ratio }

func (m *Model) SetAspectLock(on bool) { m.locked = on }

func (m *Model) AspectLock() bool { return m.locked }

func (m *Model) Rect() Rect { return m.rect }

// HasSelection 选区宽高均大于零
func (m *Model) HasSelection() bool { return !m.rect.Empty() }

func (m *Model) Dragging() bool { return m.dragging }

// Begin 开始拖拽，起点先限制在图像内再吸附
// 只记录起点，不修改当前选区
func (m *Model) Begin(p viewport.Point, snap SnapTargets) {
	m.start = snap.Snap(m.clampPoint(p))
	m.dragging = true
}

// Update 拖拽中更新选区
func (m *Model) Update(p viewport.Point, snap SnapTargets) Rect {
	if !m.dragging {
		return m.rect
	}

	cur := snap.Snap(m.clampPoint(p))
	if m.locked {
		m.rect = m.lockedRect(cur)
	} else {
		m.rect = m.freeRect(cur)
	}
	return m.rect
}

// Commit 结束拖拽，返回最终选区及其是否有效
func (m *Model) Commit() (Rect, bool) {
	m.dragging = false
	return m.rect, m.HasSelection()
}

// Clear 清除选区
func (m *Model) Clear() {
	m.rect = Rect{}
	m.dragging = false
}

// Set 直接设置选区（预设、数值输入、撤销恢复）
func (m *Model) Set(r Rect) {
	m.rect = r.Canon().Clamp(m.width, m.height)
}

// Translate 平移选区，碰到边缘时向内推回以保持宽高
// 宽或高为零的选区不移动
func (m *Model) Translate(dx, dy int) bool {
	if m.rect.Empty() {
		return false
	}

	r := m.rect
	r.Left += dx
	r.Right += dx
	r.Top += dy
	r.Bottom += dy

	if r.Left < 0 {
		r.Right -= r.Left
		r.Left = 0
	}
	if r.Top < 0 {
		r.Bottom -= r.Top
		r.Top = 0
	}
	if r.Right > m.width {
		r.Left -= r.Right - m.width
		r.Right = m.width
	}
	if r.Bottom > m.height {
		r.Top -= r.Bottom - m.height
		r.Bottom = m.height
	}
	// 选区比图像还大时只能贴边
	if r.Left < 0 {
		r.Left = 0
	}
	if r.Top < 0 {
		r.Top = 0
	}

	if r == m.rect {
		return false
	}
	m.rect = r
	return true
}

func (m *Model) clampPoint(p viewport.Point) viewport.Point {
	return viewport.Point{
		X: viewport.Clamp(p.X, 0, float64(m.width)),
		Y: viewport.Clamp(p.Y, 0, float64(m.height)),
	}
}

func (m *Model) freeRect(cur viewport.Point) Rect {
	return m.toRect(
		math.Min(m.start.X, cur.X), math.Min(m.start.Y, cur.Y),
		math.Max(m.start.X, cur.X), math.Max(m.start.Y, cur.Y),
	)
}

// lockedRect 将位移投影到比例对角线上，只接受向右下的拖拽
func (m *Model) lockedRect(cur viewport.Point) Rect {
	dx := cur.X - m.start.X
	dy := cur.Y - m.start.Y

	var w, h float64
	if dx > 0 && dy > 0 {
		diag := math.Hypot(m.ratio.W, m.ratio.H)
		proj := (dx*m.ratio.W + dy*m.ratio.H) / diag
		w = proj * m.ratio.W / diag
		h = proj * m.ratio.H / diag

		maxW := float64(m.width) - m.start.X
		maxH := float64(m.height) - m.start.Y
		if w > maxW {
			w = maxW
			h = w / m.ratio.Value()
		}
		if h > maxH {
			h = maxH
			w = h * m.ratio.Value()
		}
	}
	return m.toRect(m.start.X, m.start.Y, m.start.X+w, m.start.Y+h)
}

func (m *Model) toRect(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   clampInt(int(math.Round(left)), 0, m.width),
		Top:    clampInt(int(math.Round(top)), 0, m.height),
		Right:  clampInt(int(math.Round(right)), 0, m.width),
		Bottom: clampInt(int(math.Round(bottom)), 0, m.height),
	}
}
