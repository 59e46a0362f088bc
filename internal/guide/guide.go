package guide

import (
	"errors"
	"fmt"
	"strings"
)

// Axis 参考线方向
type Axis int

const (
	Horizontal Axis = iota // 水平线，位置为 Y
	Vertical               // 垂直线，位置为 X
)

// ErrUnknownAxis 无法识别的方向
var ErrUnknownAxis = errors.New("未知的参考线方向")

// ErrNoEmbedded 图片没有嵌入的参考线，读取方以此区分“没有”与“读取失败”
var ErrNoEmbedded = errors.New("没有嵌入的参考线")

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis 解析方向字符串（h/v/horizontal/vertical）
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	v, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Guide 参考线，位置为自然像素
type Guide struct {
	Axis     Axis `json:"axis" yaml:"axis"`
	Position int  `json:"position" yaml:"position"`
}
