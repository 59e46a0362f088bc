// Package guideimport 读取图片旁的参考线文件（<图片>.guides.yaml / .json）
package guideimport

import (
	"context"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"cropguide/internal/guide"
)

// ErrNoSidecar 图片没有参考线文件
var ErrNoSidecar = fmt.Errorf("没有参考线文件: %w", guide.ErrNoEmbedded)

// 查找顺序
var sidecarSuffixes = []string{".guides.yaml", ".guides.yml", ".guides.json"}

// Sidecar 参考线文件读取器
type Sidecar struct {
	path string // 为空时按图片路径查找
}

// NewSidecar 创建读取器，path 为空时根据图片路径查找
func NewSidecar(path string) *Sidecar {
	return &Sidecar{path: path}
}

// entry 参考线条目，兼容 type 和 guide_type 两种字段
type entry struct {
	Type      string  `yaml:"type"`
	GuideType string  `yaml:"guide_type"`
	Axis      string  `yaml:"axis"`
	Position  float64 `yaml:"position"`
}

type document struct {
	Guides []entry `yaml:"guides"`
}

// FetchEmbeddedGuides 读取 ref 对应的参考线
func (s *Sidecar) FetchEmbeddedGuides(ctx context.Context, ref string) ([]guide.Guide, error) {
	path := s.path
	if path == "" {
		var err error
		if path, err = Find(ref); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSidecar, path)
		}
		return nil, fmt.Errorf("无法读取参考线文件: %w", err)
	}
	return Parse(data)
}

// Find 查找图片旁的参考线文件
func Find(imagePath string) (string, error) {
	for _, suffix := range sidecarSuffixes {
		p := imagePath + suffix
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoSidecar, imagePath)
}

// Parse 解析参考线文件，JSON 作为 YAML 子集一并处理
// 支持 {guides: [...]} 和顶层数组两种写法
func Parse(data []byte) ([]guide.Guide, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("参考线文件格式错误: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var entries []entry
	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&entries); err != nil {
			return nil, fmt.Errorf("参考线文件格式错误: %w", err)
		}
	default:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("参考线文件格式错误: %w", err)
		}
		entries = doc.Guides
	}

	guides := make([]guide.Guide, 0, len(entries))
	for i, e := range entries {
		name := e.Type
		if name == "" {
			name = e.GuideType
		}
		if name == "" {
			name = e.Axis
		}
		axis, err := guide.ParseAxis(name)
		if err != nil {
			return nil, fmt.Errorf("第 %d 条参考线: %w", i+1, err)
		}
		guides = append(guides, guide.Guide{Axis: axis, Position: int(math.Round(e.Position))})
	}
	return guides, nil
}
