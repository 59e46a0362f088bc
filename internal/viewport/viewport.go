package viewport

import "math"

// 缩放范围
const (
	MinZoom = 0.5
	MaxZoom = 8.0
)

// Size 尺寸（像素）
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// IsZero 任一边非正时视为空尺寸
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point 坐标点
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt 构造坐标点
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Bounds 图像在显示空间（容器左上角为原点）中的实际位置
type Bounds struct {
	DisplayWidth  float64
	DisplayHeight float64
	OffsetX       float64
	OffsetY       float64
}

// IsZero 是否为空区域
func (b Bounds) IsZero() bool {
	return b.DisplayWidth <= 0 || b.DisplayHeight <= 0
}

// ComputeFitBounds 计算图像按 contain 方式放入容器后的显示区域
// 图像比容器更宽时按宽度适配，否则按高度适配，另一方向居中
func ComputeFitBounds(container, natural Size) Bounds {
	if container.IsZero() || natural.IsZero() {
		return Bounds{}
	}

	imageAspect := natural.Width / natural.Height
	containerAspect := container.Width / container.Height

	if imageAspect > containerAspect {
		h := container.Width / imageAspect
		return Bounds{
			DisplayWidth:  container.Width,
			DisplayHeight: h,
			OffsetY:       (container.Height - h) / 2,
		}
	}

	w := container.Height * imageAspect
	return Bounds{
		DisplayWidth:  w,
		DisplayHeight: container.Height,
		OffsetX:       (container.Width - w) / 2,
	}
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
