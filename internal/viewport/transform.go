package viewport

import "math"

// Viewport 缩放/平移状态及坐标换算
// 所有自然坐标与显示坐标之间的换算都只在这里进行
type Viewport struct {
	natural   Size
	container Size
	zoom      float64
	pan       Point // 内容滚动偏移（显示像素）
	base      Size  // 首次离开 1.0 倍时记录的适配尺寸
}

// New 创建视口，初始为 1.0 倍适配
func New(natural, container Size) *Viewport {
	return &Viewport{
		natural:   natural,
		container: container,
		zoom:      1,
	}
}

func (v *Viewport) Natural() Size   { return v.natural }
func (v *Viewport) Container() Size { return v.container }
func (v *Viewport) Zoom() float64   { return v.zoom }
func (v *Viewport) Pan() Point      { return v.pan }

// BaseSize 返回记录的基准显示尺寸，未缩放过时为空
func (v *Viewport) BaseSize() Size { return v.base }

// SetContainer 容器尺寸变化
func (v *Viewport) SetContainer(container Size) {
	v.container = container
	v.clampPan()
}

// contentSize 缩放后的图像显示尺寸
func (v *Viewport) contentSize() Size {
	if v.zoom == 1 || v.base.IsZero() {
		fit := ComputeFitBounds(v.container, v.natural)
		return Size{Width: fit.DisplayWidth, Height: fit.DisplayHeight}
	}
	return Size{Width: v.base.Width * v.zoom, Height: v.base.Height * v.zoom}
}

// Bounds 当前图像在显示空间中的位置
func (v *Viewport) Bounds() Bounds {
	if v.zoom == 1 || v.base.IsZero() {
		return ComputeFitBounds(v.container, v.natural)
	}

	content := v.contentSize()
	b := Bounds{DisplayWidth: content.Width, DisplayHeight: content.Height}
	if content.Width < v.container.Width {
		b.OffsetX = (v.container.Width - content.Width) / 2
	}
	if content.Height < v.container.Height {
		b.OffsetY = (v.container.Height - content.Height) / 2
	}
	b.OffsetX -= v.pan.X
	b.OffsetY -= v.pan.Y
	return b
}

// Scale 每个自然像素对应的显示像素
func (v *Viewport) Scale() (sx, sy float64) {
	b := v.Bounds()
	if b.IsZero() || v.natural.IsZero() {
		return 0, 0
	}
	return b.DisplayWidth / v.natural.Width, b.DisplayHeight / v.natural.Height
}

// NaturalToDisplay 自然坐标 -> 显示坐标
func (v *Viewport) NaturalToDisplay(p Point) Point {
	b := v.Bounds()
	if v.natural.IsZero() {
		return Point{X: b.OffsetX, Y: b.OffsetY}
	}
	return Point{
		X: p.X*b.DisplayWidth/v.natural.Width + b.OffsetX,
		Y: p.Y*b.DisplayHeight/v.natural.Height + b.OffsetY,
	}
}

// DisplayToNatural 显示坐标 -> 自然坐标
func (v *Viewport) DisplayToNatural(p Point) Point {
	b := v.Bounds()
	if b.IsZero() {
		return Point{}
	}
	return Point{
		X: (p.X - b.OffsetX) * v.natural.Width / b.DisplayWidth,
		Y: (p.Y - b.OffsetY) * v.natural.Height / b.DisplayHeight,
	}
}

// DisplayToNaturalLength 将显示像素长度换算为两个方向上的自然像素长度
func (v *Viewport) DisplayToNaturalLength(px float64) (dx, dy float64) {
	sx, sy := v.Scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return px / sx, px / sy
}

// InImageX 显示坐标 x 是否落在图像水平范围内
func (v *Viewport) InImageX(x float64) bool {
	b := v.Bounds()
	return !b.IsZero() && x >= b.OffsetX && x <= b.OffsetX+b.DisplayWidth
}

// InImageY 显示坐标 y 是否落在图像垂直范围内
func (v *Viewport) InImageY(y float64) bool {
	b := v.Bounds()
	return !b.IsZero() && y >= b.OffsetY && y <= b.OffsetY+b.DisplayHeight
}

// ClampNatural 将自然坐标限制在图像范围内
func (v *Viewport) ClampNatural(p Point) Point {
	return Point{
		X: Clamp(p.X, 0, v.natural.Width),
		Y: Clamp(p.Y, 0, v.natural.Height),
	}
}

// ============================================================
// 缩放与平移
// ============================================================

// SetZoom 按倍率缩放，结果限制在 [MinZoom, MaxZoom]，未变化时返回 false
func (v *Viewport) SetZoom(factor float64) bool {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return false
	}

	newZoom := Clamp(v.zoom*factor, MinZoom, MaxZoom)
	if newZoom == v.zoom {
		return false
	}

	v.captureBase()
	v.zoom = newZoom
	v.clampPan()
	return true
}

// ZoomAroundPoint 以显示坐标 anchor 为中心缩放，anchor 下的图像点保持不动
// 1.0 倍时图像居中留边，锚点位置要扣除居中偏移
func (v *Viewport) ZoomAroundPoint(factor float64, anchor Point) bool {
	before := v.Bounds()
	if !v.SetZoom(factor) {
		return false
	}

	after := v.Bounds()
	if before.IsZero() || after.IsZero() {
		return true
	}
	// 去掉平移后的居中偏移
	centre := Point{X: after.OffsetX + v.pan.X, Y: after.OffsetY + v.pan.Y}
	if v.zoom == 1 || v.base.IsZero() {
		centre = Point{X: after.OffsetX, Y: after.OffsetY}
	}
	v.pan = Point{
		X: centre.X + (anchor.X-before.OffsetX)*after.DisplayWidth/before.DisplayWidth - anchor.X,
		Y: centre.Y + (anchor.Y-before.OffsetY)*after.DisplayHeight/before.DisplayHeight - anchor.Y,
	}
	v.clampPan()
	return true
}

// ResetZoom 恢复 1.0 倍并回到原点
func (v *Viewport) ResetZoom() {
	v.zoom = 1
	v.pan = Point{}
}

// PanTo 设置滚动偏移，超出可滚动范围的部分被截断
func (v *Viewport) PanTo(p Point) {
	v.pan = p
	v.clampPan()
}

func (v *Viewport) captureBase() {
	if !v.base.IsZero() {
		return
	}
	fit := ComputeFitBounds(v.container, v.natural)
	v.base = Size{Width: fit.DisplayWidth, Height: fit.DisplayHeight}
}

func (v *Viewport) clampPan() {
	content := v.contentSize()
	maxX := math.Max(0, content.Width-v.container.Width)
	maxY := math.Max(0, content.Height-v.container.Height)
	v.pan.X = Clamp(v.pan.X, 0, maxX)
	v.pan.Y = Clamp(v.pan.Y, 0, maxY)
}
