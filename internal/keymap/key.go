package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Modifier 修饰键位掩码
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModMeta
)

// Key 主键，字母和数字使用其大写 ASCII 码
type Key int

const (
	KeyNone      Key = 0
	KeySpace     Key = ' '
	KeyMinus     Key = '-'
	KeySemicolon Key = ';'
	KeyEqual     Key = '='
)

// 功能键
const (
	KeyUp Key = 0x100 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyDelete
	KeyBackspace
	KeyEscape
	KeyReturn
	KeyTab
	KeyPlus
)

var (
	ErrEmptyChord      = errors.New("快捷键为空")
	ErrUnknownKey      = errors.New("未知按键")
	ErrUnknownModifier = errors.New("未知修饰键")
)

var keyNames = map[Key]string{
	KeySpace:     "space",
	KeyMinus:     "minus",
	KeySemicolon: "semicolon",
	KeyEqual:     "equal",
	KeyPlus:      "plus",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyReturn:    "return",
	KeyTab:       "tab",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if (k >= 'A' && k <= 'Z') || (k >= '0' && k <= '9') {
		return strings.ToLower(string(rune(k)))
	}
	return fmt.Sprintf("key(0x%X)", int(k))
}

// ParseKey 解析主键
func ParseKey(key string) (Key, error) {
	key = strings.ToUpper(strings.TrimSpace(key))

	// 字母键
	if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
		return Key(key[0]), nil
	}

	// 数字键
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return Key(key[0]), nil
	}

	switch key {
	case "SPACE", " ":
		return KeySpace, nil
	case "MINUS", "-":
		return KeyMinus, nil
	case "SEMICOLON", ";":
		return KeySemicolon, nil
	case "EQUAL", "=":
		return KeyEqual, nil
	case "PLUS":
		return KeyPlus, nil
	case "UP", "ARROWUP":
		return KeyUp, nil
	case "DOWN", "ARROWDOWN":
		return KeyDown, nil
	case "LEFT", "ARROWLEFT":
		return KeyLeft, nil
	case "RIGHT", "ARROWRIGHT":
		return KeyRight, nil
	case "DELETE", "DEL":
		return KeyDelete, nil
	case "BACKSPACE":
		return KeyBackspace, nil
	case "ESCAPE", "ESC":
		return KeyEscape, nil
	case "RETURN", "ENTER":
		return KeyReturn, nil
	case "TAB":
		return KeyTab, nil
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// parseModifier 解析修饰键
func parseModifier(mod string) (Modifier, error) {
	switch strings.ToLower(mod) {
	case "ctrl", "control":
		return ModCtrl, nil
	case "alt", "option":
		return ModAlt, nil
	case "shift":
		return ModShift, nil
	case "meta", "win", "cmd", "command", "super":
		return ModMeta, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModifier, mod)
}

// Chord 修饰键 + 主键
type Chord struct {
	Mods Modifier
	Key  Key
}

// Has 是否包含修饰键 m
func (c Chord) Has(m Modifier) bool {
	return c.Mods&m != 0
}

func (c Chord) String() string {
	var parts []string
	if c.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if c.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if c.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if c.Has(ModMeta) {
		parts = append(parts, "meta")
	}
	return strings.Join(append(parts, c.Key.String()), "+")
}

// ParseChord 解析形如 "ctrl+shift+z" 的快捷键，最后一段为主键
func ParseChord(s string) (Chord, error) {
	var tokens []string
	for _, t := range strings.Split(s, "+") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return Chord{}, ErrEmptyChord
	}

	key, err := ParseKey(tokens[len(tokens)-1])
	if err != nil {
		return Chord{}, err
	}

	c := Chord{Key: key}
	for _, t := range tokens[:len(tokens)-1] {
		m, err := parseModifier(t)
		if err != nil {
			return Chord{}, err
		}
		c.Mods |= m
	}
	return c, nil
}

// sortedChords 按字符串排序，便于稳定输出
func sortedChords(cs []Chord) []Chord {
	sort.Slice(cs, func(i, j int) bool { return cs[i].String() < cs[j].String() })
	return cs
}
