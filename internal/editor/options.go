package editor

import (
	"cropguide/internal/history"
	"cropguide/internal/keymap"
	"cropguide/internal/selection"
)

// 默认交互参数（显示像素）
const (
	DefaultSnapThreshold     = 8.0
	DefaultGuideHitTolerance = 4.0

	ZoomInFactor  = 1.25
	ZoomOutFactor = 0.8

	NudgeFine   = 1
	NudgeCoarse = 10
)

// Options 控制器参数
type Options struct {
	Ratio             selection.Ratio
	SnapThreshold     float64
	GuideHitTolerance float64
	MaxHistory        int
	AspectLock        bool
	Bindings          keymap.Bindings
}

// Option 配置控制器
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Ratio:             selection.DefaultRatio,
		SnapThreshold:     DefaultSnapThreshold,
		GuideHitTolerance: DefaultGuideHitTolerance,
		MaxHistory:        history.DefaultMaxHistory,
		Bindings:          keymap.DefaultBindings(),
	}
}

// WithRatio 设置固定比例
func WithRatio(r selection.Ratio) Option {
	return func(o *Options) {
		if r.Valid() {
			o.Ratio = r
		}
	}
}

// WithSnapThreshold 设置吸附阈值
func WithSnapThreshold(px float64) Option {
	return func(o *Options) { o.SnapThreshold = px }
}

// WithGuideHitTolerance 设置参考线点击容差
func WithGuideHitTolerance(px float64) Option {
	return func(o *Options) { o.GuideHitTolerance = px }
}

// WithMaxHistory 设置撤销步数
func WithMaxHistory(n int) Option {
	return func(o *Options) { o.MaxHistory = n }
}

// WithAspectLock 新会话默认开启固定比例
func WithAspectLock(on bool) Option {
	return func(o *Options) { o.AspectLock = on }
}

// WithBindings 替换快捷键表
func WithBindings(b keymap.Bindings) Option {
	return func(o *Options) {
		if len(b) > 0 {
			o.Bindings = b
		}
	}
}
