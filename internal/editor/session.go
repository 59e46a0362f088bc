package editor

import (
	"math"

	"github.com/google/uuid"

	"cropguide/internal/guide"
	"cropguide/internal/history"
	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

// State 交互状态
type State int

const (
	StateIdle State = iota
	StateDraggingSelection
	StateDraggingGuide
	StateDraggingNewGuide
	StatePanning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraggingSelection:
		return "dragging-selection"
	case StateDraggingGuide:
		return "dragging-guide"
	case StateDraggingNewGuide:
		return "dragging-new-guide"
	case StatePanning:
		return "panning"
	}
	return "unknown"
}

// Session 一次编辑会话，持有唯一的参考线集合与选区
type Session struct {
	id      uuid.UUID
	source  string
	natural viewport.Size

	view      *viewport.Viewport
	selection *selection.Model
	guides    *guide.Set
	history   *history.History
	open      bool

	// 交互状态，会话关闭时重置
	state       State
	dragGuide   int
	rulerAxis   guide.Axis
	preview     guide.Guide
	hasPreview  bool
	panStart    viewport.Point // 平移开始时的指针位置
	panOrigin   viewport.Point // 平移开始时的滚动偏移
	panHeld     bool           // 平移修饰键按下
	nudging     bool           // 方向键连续移动中
	lastPointer viewport.Point
	fillPreview bool // 是否显示选区填充预览
}

func newSession(natural, container viewport.Size, source string, opts Options) *Session {
	w := int(math.Round(natural.Width))
	h := int(math.Round(natural.Height))

	s := &Session{
		id:        uuid.New(),
		source:    source,
		natural:   natural,
		view:      viewport.New(natural, container),
		selection: selection.NewModel(natural),
		guides:    guide.NewSet(w, h),
		open:      true,
		dragGuide: -1,
	}
	s.selection.SetRatio(opts.Ratio)
	s.selection.SetAspectLock(opts.AspectLock)
	s.history = history.NewHistory(s, opts.MaxHistory)
	return s
}

// Capture 实现 history.State
func (s *Session) Capture() history.Snapshot {
	return history.Snapshot{
		Guides:    s.guides.Guides(),
		Selection: s.selection.Rect(),
	}
}

// Restore 实现 history.State
func (s *Session) Restore(snap history.Snapshot) {
	s.guides.Restore(snap.Guides)
	s.selection.Set(snap.Selection)
	s.fillPreview = s.selection.HasSelection()
}

func (s *Session) resetInteraction() {
	s.state = StateIdle
	s.dragGuide = -1
	s.hasPreview = false
	s.panHeld = false
	s.nudging = false
}

func (s *Session) ID() uuid.UUID                { return s.id }
func (s *Session) Source() string               { return s.source }
func (s *Session) Natural() viewport.Size       { return s.natural }
func (s *Session) Viewport() *viewport.Viewport { return s.view }
func (s *Session) State() State                 { return s.state }
func (s *Session) IsOpen() bool                 { return s.open }

// Selection 当前选区
func (s *Session) Selection() selection.Rect { return s.selection.Rect() }

// HasSelection 当前选区是否有效
func (s *Session) HasSelection() bool { return s.selection.HasSelection() }

// Guides 参考线副本
func (s *Session) Guides() []guide.Guide { return s.guides.Guides() }

// SelectedGuide 当前选中的参考线索引
func (s *Session) SelectedGuide() (int, bool) { return s.guides.Selected() }

func (s *Session) GuidesLocked() bool { return s.guides.Locked() }
func (s *Session) AspectLock() bool   { return s.selection.AspectLock() }
func (s *Session) CanUndo() bool      { return s.history.CanUndo() }
func (s *Session) CanRedo() bool      { return s.history.CanRedo() }

// Preview 正在从标尺拖出的参考线，指针不在图像范围内时不显示
func (s *Session) Preview() (guide.Guide, bool) {
	return s.preview, s.state == StateDraggingNewGuide && s.hasPreview
}

// FillPreview 是否显示选区填充，拖拽选区期间隐藏
func (s *Session) FillPreview() bool { return s.fillPreview }
