package keymap

import (
	"fmt"
	"sort"
	"strings"
)

// Action 编辑器快捷键动作
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionRedo
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionToggleLock
	ActionDeleteGuide
	ActionEscape
	ActionPan
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight
)

var actionNames = map[Action]string{
	ActionUndo:        "undo",
	ActionRedo:        "redo",
	ActionZoomIn:      "zoom-in",
	ActionZoomOut:     "zoom-out",
	ActionZoomReset:   "zoom-reset",
	ActionToggleLock:  "toggle-lock",
	ActionDeleteGuide: "delete-guide",
	ActionEscape:      "escape",
	ActionPan:         "pan",
	ActionNudgeUp:     "nudge-up",
	ActionNudgeDown:   "nudge-down",
	ActionNudgeLeft:   "nudge-left",
	ActionNudgeRight:  "nudge-right",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction 解析动作名称
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("未知动作: %q", s)
}

// Nudge 方向键动作对应的单位位移
func (a Action) Nudge() (dx, dy int, ok bool) {
	switch a {
	case ActionNudgeUp:
		return 0, -1, true
	case ActionNudgeDown:
		return 0, 1, true
	case ActionNudgeLeft:
		return -1, 0, true
	case ActionNudgeRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// DefaultSpec 默认快捷键（动作 -> 快捷键列表），同时作为配置文件的默认值
func DefaultSpec() map[string][]string {
	return map[string][]string{
		"undo":         {"ctrl+z"},
		"redo":         {"ctrl+y", "ctrl+shift+z"},
		"zoom-in":      {"ctrl+equal", "ctrl+plus", "ctrl+shift+plus", "ctrl+semicolon"},
		"zoom-out":     {"ctrl+minus"},
		"zoom-reset":   {"ctrl+0"},
		"toggle-lock":  {"l", "shift+l"},
		"delete-guide": {"delete", "backspace"},
		"escape":       {"escape"},
		"pan":          {"space"},
		"nudge-up":     {"up", "shift+up"},
		"nudge-down":   {"down", "shift+down"},
		"nudge-left":   {"left", "shift+left"},
		"nudge-right":  {"right", "shift+right"},
	}
}

// Bindings 快捷键 -> 动作
type Bindings map[Chord]Action

// DefaultBindings 默认快捷键表
func DefaultBindings() Bindings {
	b, err := FromSpec(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return b
}

// FromSpec 由配置构建快捷键表
func FromSpec(spec map[string][]string) (Bindings, error) {
	b := make(Bindings)
	for name, chords := range spec {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, s := range chords {
			c, err := ParseChord(s)
			if err != nil {
				return nil, fmt.Errorf("动作 %s 的快捷键 %q 无效: %w", name, s, err)
			}
			if prev, ok := b[c]; ok && prev != action {
				return nil, fmt.Errorf("快捷键 %s 同时绑定了 %s 和 %s", c, prev, action)
			}
			b[c] = action
		}
	}
	return b, nil
}

// Lookup 精确匹配快捷键
func (b Bindings) Lookup(c Chord) Action {
	return b[c]
}

// LookupKey 只按主键查找动作（用于按键抬起），优先无修饰键的绑定
func (b Bindings) LookupKey(k Key) Action {
	if a, ok := b[Chord{Key: k}]; ok {
		return a
	}
	for _, c := range sortedChords(b.chords()) {
		if c.Key == k {
			return b[c]
		}
	}
	return ActionNone
}

// Describe 按动作分组列出快捷键
func (b Bindings) Describe() []string {
	groups := make(map[Action][]Chord)
	for c, a := range b {
		groups[a] = append(groups[a], c)
	}

	var lines []string
	for a, cs := range groups {
		var names []string
		for _, c := range sortedChords(cs) {
			names = append(names, c.String())
		}
		lines = append(lines, fmt.Sprintf("%-13s %s", a, strings.Join(names, ", ")))
	}
	sort.Strings(lines)
	return lines
}

func (b Bindings) chords() []Chord {
	cs := make([]Chord, 0, len(b))
	for c := range b {
		cs = append(cs, c)
	}
	return cs
}
