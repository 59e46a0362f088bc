package editor

import (
	"fmt"
	"strings"

	"cropguide/internal/keymap"
	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

// Event 宿主输入事件
type Event interface {
	event()
}

// PointerKind 指针事件类型
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave // 离开画布
)

// Target 指针按下的位置
type Target int

const (
	TargetCanvas Target = iota
	TargetRulerH        // 顶部标尺，拖出水平参考线
	TargetRulerV        // 左侧标尺，拖出垂直参考线
)

// PointerEvent 指针事件，Pos 为容器坐标
type PointerEvent struct {
	Kind   PointerKind
	Target Target
	Pos    viewport.Point
}

// KeyKind 按键事件类型
type KeyKind int

const (
	KeyDown KeyKind = iota
	KeyUp
)

// KeyEvent 按键事件
type KeyEvent struct {
	Kind  KeyKind
	Chord keymap.Chord
}

// WheelEvent 滚轮事件，DeltaY > 0 放大
type WheelEvent struct {
	Pos    viewport.Point
	DeltaY float64
}

// ResizeEvent 容器尺寸变化
type ResizeEvent struct {
	Size viewport.Size
}

// Command 按钮/菜单命令
type Command int

const (
	CommandDeriveGuides Command = iota
	CommandClearAll
	CommandClearGuides
	CommandResetRange
	CommandToggleLock
	CommandUndo
	CommandRedo
	CommandApply
	CommandCancel
	CommandSetSelection
)

var commandNames = map[Command]string{
	CommandDeriveGuides: "derive-guides",
	CommandClearAll:     "clear-all",
	CommandClearGuides:  "clear-guides",
	CommandResetRange:   "reset-range",
	CommandToggleLock:   "toggle-lock",
	CommandUndo:         "undo",
	CommandRedo:         "redo",
	CommandApply:        "apply",
	CommandCancel:       "cancel",
	CommandSetSelection: "set-selection",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand 解析命令名称
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range commandNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("未知命令: %q", s)
}

// CommandEvent 命令事件，Rect 仅用于 CommandSetSelection
type CommandEvent struct {
	Command Command
	Rect    selection.Rect
}

func (PointerEvent) event() {}
func (KeyEvent) event()     {}
func (WheelEvent) event()   {}
func (ResizeEvent) event()  {}
func (CommandEvent) event() {}
