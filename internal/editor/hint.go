package editor

import (
	"fmt"

	"cropguide/internal/guide"
)

// HintKind 下一步操作提示
type HintKind int

const (
	HintSelect       HintKind = iota // 拖拽选择范围或从标尺拖出参考线
	HintNeedGuides                   // 还需要更多参考线
	HintLockGuides                   // 可以锁定参考线
	HintDragLocked                   // 已锁定，拖拽选择范围
	HintDeriveGuides                 // 可以用参考线生成选区
	HintReady                        // 已有选区，可以应用
)

// Hint 提示
type Hint struct {
	Kind      HintKind
	Remaining int // HintNeedGuides 时还缺少的参考线数量
}

func (h Hint) String() string {
	switch h.Kind {
	case HintSelect:
		return "拖拽选择裁剪范围，或从标尺拖出参考线"
	case HintNeedGuides:
		return fmt.Sprintf("再添加 %d 条参考线", h.Remaining)
	case HintLockGuides:
		return "按 L 锁定参考线"
	case HintDragLocked:
		return "参考线已锁定，拖拽选择范围会吸附到参考线"
	case HintDeriveGuides:
		return "可以用参考线生成裁剪范围"
	case HintReady:
		return "确认裁剪范围后应用"
	}
	return ""
}

// Hint 根据当前状态给出下一步提示
func (c *Controller) Hint() Hint {
	s := c.session
	if s == nil {
		return Hint{Kind: HintSelect}
	}
	if s.selection.HasSelection() {
		return Hint{Kind: HintReady}
	}

	n := s.guides.Len()
	switch {
	case n == 0:
		return Hint{Kind: HintSelect}
	case n < guide.MinLockGuides:
		return Hint{Kind: HintNeedGuides, Remaining: guide.MinLockGuides - n}
	case !s.selection.AspectLock():
		return Hint{Kind: HintDeriveGuides}
	case s.guides.Locked():
		return Hint{Kind: HintDragLocked}
	}
	return Hint{Kind: HintLockGuides}
}
