package selection

import (
	"math"

	"cropguide/internal/viewport"
)

// SnapTargets 吸附目标，坐标与阈值均为自然像素
type SnapTargets struct {
	Vertical   []float64 // 垂直参考线的 X
	Horizontal []float64 // 水平参考线的 Y
	ThresholdX float64
	ThresholdY float64
}

// Snap 每个方向独立吸附到阈值内（严格小于）最近的参考线
func (t SnapTargets) Snap(p viewport.Point) viewport.Point {
	p.X = snapAxis(p.X, t.Vertical, t.ThresholdX)
	p.Y = snapAxis(p.Y, t.Horizontal, t.ThresholdY)
	return p
}

func snapAxis(v float64, lines []float64, threshold float64) float64 {
	if threshold <= 0 {
		return v
	}
	best, bestDist := v, threshold
	for _, line := range lines {
		if d := math.Abs(v - line); d < bestDist {
			best, bestDist = line, d
		}
	}
	return best
}
