// Package script 读取 YAML 手势脚本并转换为编辑器事件
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cropguide/internal/editor"
	"cropguide/internal/keymap"
	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

// ErrUnknownStep 无法识别的步骤
var ErrUnknownStep = errors.New("无法识别的步骤")

// DefaultContainer 未指定容器尺寸时使用
var DefaultContainer = viewport.Size{Width: 800, Height: 600}

// Script 手势脚本
type Script struct {
	Container  viewport.Size `yaml:"container"`
	AspectLock bool          `yaml:"aspect_lock"`
	Steps      []Step        `yaml:"steps"`
}

// Step 单个步骤，pointer/key/wheel/command/resize 五选一
type Step struct {
	Pointer string          `yaml:"pointer"` // down, move, up, leave
	Target  string          `yaml:"target"`  // canvas, ruler-h, ruler-v
	X       float64         `yaml:"x"`
	Y       float64         `yaml:"y"`
	Key     string          `yaml:"key"` // down, up
	Chord   string          `yaml:"chord"`
	Wheel   *float64        `yaml:"wheel"`
	Command string          `yaml:"command"`
	Rect    *selection.Rect `yaml:"rect"`
	Resize  *viewport.Size  `yaml:"resize"`
}

// Load 读取脚本文件
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取脚本: %w", err)
	}
	return Parse(data)
}

// Parse 解析脚本
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("脚本格式错误: %w", err)
	}
	if s.Container.IsZero() {
		s.Container = DefaultContainer
	}
	return &s, nil
}

// Events 将所有步骤转换为事件
func (s *Script) Events() ([]editor.Event, error) {
	events := make([]editor.Event, 0, len(s.Steps))
	for i, step := range s.Steps {
		ev, err := step.Event()
		if err != nil {
			return nil, fmt.Errorf("第 %d 步: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Event 转换为编辑器事件
func (st Step) Event() (editor.Event, error) {
	pos := viewport.Pt(st.X, st.Y)

	switch {
	case st.Pointer != "":
		kind, err := parsePointerKind(st.Pointer)
		if err != nil {
			return nil, err
		}
		target, err := parseTarget(st.Target)
		if err != nil {
			return nil, err
		}
		return editor.PointerEvent{Kind: kind, Target: target, Pos: pos}, nil

	case st.Key != "":
		chord, err := keymap.ParseChord(st.Chord)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(st.Key) {
		case "down":
			return editor.KeyEvent{Kind: editor.KeyDown, Chord: chord}, nil
		case "up":
			return editor.KeyEvent{Kind: editor.KeyUp, Chord: chord}, nil
		}
		return nil, fmt.Errorf("%w: key %q", ErrUnknownStep, st.Key)

	case st.Wheel != nil:
		return editor.WheelEvent{Pos: pos, DeltaY: *st.Wheel}, nil

	case st.Command != "":
		cmd, err := editor.ParseCommand(st.Command)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownStep, err)
		}
		ev := editor.CommandEvent{Command: cmd}
		if cmd == editor.CommandSetSelection {
			if st.Rect == nil {
				return nil, fmt.Errorf("%w: set-selection 缺少 rect", ErrUnknownStep)
			}
			ev.Rect = *st.Rect
		}
		return ev, nil

	case st.Resize != nil:
		return editor.ResizeEvent{Size: *st.Resize}, nil
	}
	return nil, ErrUnknownStep
}

func parsePointerKind(s string) (editor.PointerKind, error) {
	switch strings.ToLower(s) {
	case "down":
		return editor.PointerDown, nil
	case "move":
		return editor.PointerMove, nil
	case "up":
		return editor.PointerUp, nil
	case "leave":
		return editor.PointerLeave, nil
	}
	return 0, fmt.Errorf("%w: pointer %q", ErrUnknownStep, s)
}

func parseTarget(s string) (editor.Target, error) {
	switch strings.ToLower(s) {
	case "", "canvas":
		return editor.TargetCanvas, nil
	case "ruler-h":
		return editor.TargetRulerH, nil
	case "ruler-v":
		return editor.TargetRulerV, nil
	}
	return 0, fmt.Errorf("%w: target %q", ErrUnknownStep, s)
}
