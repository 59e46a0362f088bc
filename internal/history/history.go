package history

import (
	"cropguide/internal/guide"
	"cropguide/internal/selection"
)

// DefaultMaxHistory 默认最多保留的撤销步数
const DefaultMaxHistory = 50

// Snapshot 编辑状态快照（参考线 + 选区）
type Snapshot struct {
	Guides    []guide.Guide
	Selection selection.Rect
}

// Clone 深拷贝，快照之间不共享切片
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{Selection: s.Selection, Guides: make([]guide.Guide, len(s.Guides))}
	copy(c.Guides, s.Guides)
	return c
}

// State 可被快照和恢复的编辑状态
type State interface {
	Capture() Snapshot
	Restore(Snapshot)
}

// History 撤销/重做管理器
type History struct {
	state      State
	undoStack  []Snapshot // 撤销栈（保存之前的状态快照）
	redoStack  []Snapshot // 重做栈
	maxHistory int
	onRestore  []func()
}

// NewHistory 创建历史记录管理器
func NewHistory(state State, maxHistory int) *History {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &History{
		state:      state,
		undoStack:  make([]Snapshot, 0),
		redoStack:  make([]Snapshot, 0),
		maxHistory: maxHistory,
	}
}

// OnRestore 注册撤销/重做恢复后的回调
func (h *History) OnRestore(fn func()) {
	h.onRestore = append(h.onRestore, fn)
}

// Snapshot 在修改前保存当前状态
func (h *History) Snapshot() {
	h.undoStack = append(h.undoStack, h.state.Capture().Clone())
	if len(h.undoStack) > h.maxHistory {
		h.undoStack = h.undoStack[1:]
	}

	// 清空重做栈（新操作后重做无效）
	h.redoStack = h.redoStack[:0]
}

// Undo 撤销上一步操作，返回是否成功
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}

	// 保存当前状态到重做栈
	h.redoStack = append(h.redoStack, h.state.Capture().Clone())

	prev := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.restore(prev)
	return true
}

// Redo 重做上一步撤销的操作，返回是否成功
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}

	// 保存当前状态到撤销栈
	h.undoStack = append(h.undoStack, h.state.Capture().Clone())

	next := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.restore(next)
	return true
}

func (h *History) restore(s Snapshot) {
	h.state.Restore(s.Clone())
	for _, fn := range h.onRestore {
		fn()
	}
}

// CanUndo 是否可以撤销
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo 是否可以重做
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

func (h *History) UndoLen() int { return len(h.undoStack) }
func (h *History) RedoLen() int { return len(h.redoStack) }

// Clear 清空所有历史
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}
