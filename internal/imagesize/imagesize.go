// Package imagesize 只读取图片头部获取自然尺寸，不解码像素
package imagesize

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"cropguide/internal/viewport"
)

// ErrEmptyImage 图片宽或高为零
var ErrEmptyImage = errors.New("图片尺寸为空")

// Info 图片信息
type Info struct {
	Size   viewport.Size
	Format string
}

// Probe 读取文件的图片尺寸
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("无法打开图片: %w", err)
	}
	defer f.Close()

	info, err := Decode(f)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// Decode 从 r 读取图片头部
func Decode(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("无法识别图片格式: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, ErrEmptyImage
	}
	return Info{
		Size:   viewport.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)},
		Format: format,
	}, nil
}
