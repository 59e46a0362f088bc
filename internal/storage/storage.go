package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"cropguide/internal/editor"
)

// 结果文件名前缀
const filePrefix = "crop_"

// Storage 裁剪结果存储
type Storage struct {
	directory string
	format    string
	now       func() time.Time
}

// NewStorage 创建存储管理器，format 为 json 或 yaml
func NewStorage(directory, format string) *Storage {
	return &Storage{
		directory: directory,
		format:    format,
		now:       time.Now,
	}
}

// SetDirectory 设置保存目录
func (s *Storage) SetDirectory(dir string) error {
	// 展开 ~
	if len(dir) > 0 && dir[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		dir = filepath.Join(homeDir, dir[1:])
	}

	s.directory = dir
	return os.MkdirAll(dir, 0755)
}

// Save 保存裁剪结果，返回文件路径
func (s *Storage) Save(res editor.Result) (string, error) {
	// 确保目录存在
	if err := os.MkdirAll(s.directory, 0755); err != nil {
		return "", fmt.Errorf("无法创建目录: %w", err)
	}

	var (
		data []byte
		err  error
		ext  string
	)
	switch s.format {
	case "yaml", "yml":
		ext = "yaml"
		data, err = yaml.Marshal(res)
	default:
		ext = "json"
		data, err = json.MarshalIndent(res, "", "    ")
	}
	if err != nil {
		return "", fmt.Errorf("无法编码结果: %w", err)
	}

	// 同一秒内的多次保存用会话 ID 区分
	timestamp := s.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s%s_%s.%s", filePrefix, timestamp, res.Session.String()[:8], ext)
	path := filepath.Join(s.directory, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("无法保存结果: %w", err)
	}

	return path, nil
}

// Load 读取保存的结果
func Load(path string) (editor.Result, error) {
	var res editor.Result
	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("无法读取结果: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &res)
	default:
		err = json.Unmarshal(data, &res)
	}
	if err != nil {
		return res, fmt.Errorf("结果格式错误: %w", err)
	}
	return res, nil
}

// Cleanup 清理旧的结果文件，返回删除数量
func (s *Storage) Cleanup(olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-olderThan)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), filePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(s.directory, entry.Name())) == nil {
				removed++
			}
		}
	}

	return removed, nil
}

// GetDirectory 获取保存目录
func (s *Storage) GetDirectory() string {
	return s.directory
}
