package viewport

import "math"

// TickKind 刻度类型
type TickKind int

const (
	TickMinor TickKind = iota
	TickMedium
	TickMajor
)

// Tick 标尺刻度
type Tick struct {
	Display float64  // 沿标尺方向的显示坐标
	Value   int      // 对应的自然像素值
	Kind    TickKind
}

// RulerSpacing 根据每自然像素的显示像素数选择主/次刻度间隔（自然像素）
func RulerSpacing(pixelsPerUnit float64) (major, minor int) {
	switch {
	case pixelsPerUnit > 2:
		return 100, 10
	case pixelsPerUnit > 0.5:
		return 500, 50
	default:
		return 1000, 100
	}
}

// RulerTicks 生成长度为 length 的标尺刻度
// offset 为图像原点在标尺上的显示坐标，scale 为每自然像素的显示像素数
func RulerTicks(length, offset, scale float64) []Tick {
	if length <= 0 || scale <= 0 {
		return nil
	}

	major, minor := RulerSpacing(scale)
	step := float64(minor) * scale

	// 从图像原点对齐的第一个可见刻度开始
	first := math.Ceil(-offset/step) * step
	var ticks []Tick
	for d := first; d+offset < length; d += step {
		value := int(math.Round(d / scale))
		kind := TickMinor
		switch {
		case value%major == 0:
			kind = TickMajor
		case value%(major/2) == 0:
			kind = TickMedium
		}
		ticks = append(ticks, Tick{Display: d + offset, Value: value, Kind: kind})
	}
	return ticks
}
