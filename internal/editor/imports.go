package editor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cropguide/internal/guide"
)

// GuideFetcher 读取图片中嵌入的参考线
type GuideFetcher interface {
	FetchEmbeddedGuides(ctx context.Context, ref string) ([]guide.Guide, error)
}

// GuideFetcherFunc 函数适配器
type GuideFetcherFunc func(ctx context.Context, ref string) ([]guide.Guide, error)

func (f GuideFetcherFunc) FetchEmbeddedGuides(ctx context.Context, ref string) ([]guide.Guide, error) {
	return f(ctx, ref)
}

// ImportResult 异步导入结果，带发起时的会话 ID
type ImportResult struct {
	Session uuid.UUID
	Guides  []guide.Guide
	Err     error
}

// StartImport 在后台读取当前会话图片的嵌入参考线
// 结果通过 post 投递回宿主线程后再合并，会话已关闭或已更换时丢弃
func (c *Controller) StartImport(ctx context.Context, f GuideFetcher, post func(func())) bool {
	s := c.session
	if s == nil || s.source == "" {
		return false
	}

	id, ref := s.id, s.source
	go func() {
		guides, err := f.FetchEmbeddedGuides(ctx, ref)
		res := ImportResult{Session: id, Guides: guides, Err: err}
		post(func() { c.MergeImport(res) })
	}()
	return true
}

// MergeImport 合并导入的参考线，不记录历史
func (c *Controller) MergeImport(res ImportResult) Status {
	s := c.session
	if s == nil || s.id != res.Session {
		Logger().Debug("丢弃过期的参考线导入结果", "session", res.Session)
		return StatusIgnored
	}
	if errors.Is(res.Err, guide.ErrNoEmbedded) {
		Logger().Debug("图片没有嵌入参考线", "session", res.Session)
		return StatusIgnored
	}
	if res.Err != nil {
		Logger().Warn("读取嵌入参考线失败", "session", res.Session, "error", res.Err)
		return StatusIgnored
	}
	if len(res.Guides) == 0 {
		return StatusIgnored
	}

	n := s.guides.Merge(res.Guides)
	Logger().Debug("导入参考线", "session", s.id, "count", n)
	c.emit(ChangeGuides)
	return StatusOK
}
