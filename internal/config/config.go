package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cropguide/internal/editor"
	"cropguide/internal/keymap"
	"cropguide/internal/selection"
)

// Editor 编辑器配置
type Editor struct {
	AspectWidth       float64 `json:"aspectWidth"`       // 固定比例宽
	AspectHeight      float64 `json:"aspectHeight"`      // 固定比例高
	AspectLock        bool    `json:"aspectLock"`        // 默认开启固定比例
	SnapThreshold     float64 `json:"snapThreshold"`     // 吸附阈值（显示像素）
	GuideHitTolerance float64 `json:"guideHitTolerance"` // 参考线点击容差（显示像素）
	MaxHistory        int     `json:"maxHistory"`        // 撤销步数
}

// Storage 存储配置
type Storage struct {
	Directory string `json:"directory"` // 保存目录
	Format    string `json:"format"`    // 结果格式: json, yaml
	KeepDays  int    `json:"keepDays"`  // 结果文件保留天数，0 表示不清理
}

// Behavior 行为配置
type Behavior struct {
	ShowNotification bool `json:"showNotification"` // 显示通知
}

// Config 主配置结构
type Config struct {
	Editor   Editor              `json:"editor"`
	Keymap   map[string][]string `json:"keymap"` // 动作 -> 快捷键列表
	Storage  Storage             `json:"storage"`
	Behavior Behavior            `json:"behavior"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	// 获取 exe 所在目录
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	return &Config{
		Editor: Editor{
			AspectWidth:       selection.DefaultRatio.W,
			AspectHeight:      selection.DefaultRatio.H,
			SnapThreshold:     editor.DefaultSnapThreshold,
			GuideHitTolerance: editor.DefaultGuideHitTolerance,
			MaxHistory:        50,
		},
		Keymap: keymap.DefaultSpec(),
		Storage: Storage{
			Directory: filepath.Join(exeDir, "crops"),
			Format:    "json",
			KeepDays:  0,
		},
		Behavior: Behavior{
			ShowNotification: true,
		},
	}
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	var configDir string

	if runtime.GOOS == "windows" {
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			homeDir, _ := os.UserHomeDir()
			configDir = filepath.Join(homeDir, "AppData", "Roaming")
		}
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "cropguide", "config.json")
}

// Load 加载配置
func Load() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile 从指定路径加载配置，文件不存在时写入默认配置
func LoadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		// 保存默认配置
		_ = cfg.SaveFile(configPath)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("无法读取配置文件: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("配置文件格式错误: %w", err)
	}

	// 验证并修正配置
	cfg.Validate()

	return &cfg, nil
}

// Validate 验证并修正配置值
func (c *Config) Validate() {
	defaults := DefaultConfig()

	// 比例必须为正
	if c.Editor.AspectWidth <= 0 || c.Editor.AspectHeight <= 0 {
		c.Editor.AspectWidth = defaults.Editor.AspectWidth
		c.Editor.AspectHeight = defaults.Editor.AspectHeight
	}
	if c.Editor.SnapThreshold < 0 || c.Editor.SnapThreshold > 100 {
		c.Editor.SnapThreshold = defaults.Editor.SnapThreshold
	}
	if c.Editor.GuideHitTolerance <= 0 || c.Editor.GuideHitTolerance > 100 {
		c.Editor.GuideHitTolerance = defaults.Editor.GuideHitTolerance
	}
	if c.Editor.MaxHistory < 1 || c.Editor.MaxHistory > 1000 {
		c.Editor.MaxHistory = defaults.Editor.MaxHistory
	}

	// 快捷键无效时整体回退到默认值
	if len(c.Keymap) == 0 {
		c.Keymap = defaults.Keymap
	} else if _, err := keymap.FromSpec(c.Keymap); err != nil {
		c.Keymap = defaults.Keymap
	}

	// 验证结果格式
	format := strings.ToLower(c.Storage.Format)
	switch format {
	case "json", "yaml":
		c.Storage.Format = format
	case "yml":
		c.Storage.Format = "yaml"
	default:
		c.Storage.Format = defaults.Storage.Format
	}
	if c.Storage.KeepDays < 0 {
		c.Storage.KeepDays = 0
	}

	// 防止路径遍历攻击
	if c.Storage.Directory == "" || strings.Contains(c.Storage.Directory, "..") {
		c.Storage.Directory = defaults.Storage.Directory
	}
}

// Save 保存配置
func (c *Config) Save() error {
	return c.SaveFile(GetConfigPath())
}

// SaveFile 保存配置到指定路径
func (c *Config) SaveFile(configPath string) error {
	// 确保目录存在
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("无法创建配置目录: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Ratio 固定比例
func (c *Config) Ratio() selection.Ratio {
	return selection.Ratio{W: c.Editor.AspectWidth, H: c.Editor.AspectHeight}
}

// EditorOptions 转换为编辑器参数
func (c *Config) EditorOptions() ([]editor.Option, error) {
	bindings, err := keymap.FromSpec(c.Keymap)
	if err != nil {
		return nil, fmt.Errorf("快捷键配置无效: %w", err)
	}

	return []editor.Option{
		editor.WithRatio(c.Ratio()),
		editor.WithSnapThreshold(c.Editor.SnapThreshold),
		editor.WithGuideHitTolerance(c.Editor.GuideHitTolerance),
		editor.WithMaxHistory(c.Editor.MaxHistory),
		editor.WithAspectLock(c.Editor.AspectLock),
		editor.WithBindings(bindings),
	}, nil
}

// EnsureStorageDir 确保存储目录存在
func (c *Config) EnsureStorageDir() error {
	// 展开 ~
	dir := c.Storage.Directory
	if len(dir) > 0 && dir[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, dir[1:])
	}
	c.Storage.Directory = dir

	return os.MkdirAll(dir, 0755)
}
