//go:build !windows

package notify

import (
	"log/slog"

	"cropguide/internal/editor"
)

// LogNotifier 没有系统通知时写入日志
type LogNotifier struct {
	logger *slog.Logger
}

// NewNotifier 创建通知器
func NewNotifier() Notifier {
	return &LogNotifier{logger: slog.Default()}
}

// Show 记录通知内容
func (n *LogNotifier) Show(title, message string) error {
	n.logger.Info(title, "message", message)
	return nil
}

// ShowResult 记录结果及保存路径
func (n *LogNotifier) ShowResult(res editor.Result, path string) error {
	title, message := ResultMessage(res)
	n.logger.Info(title, "message", message, "session", res.Session, "path", path)
	return nil
}
