//go:build windows

package notify

import (
	"path/filepath"

	"github.com/go-toast/toast"

	"cropguide/internal/editor"
)

const appID = "CropGuide"

// ToastNotifier Windows 通知，点击打开结果文件
type ToastNotifier struct{}

// NewNotifier 创建通知器
func NewNotifier() Notifier {
	return &ToastNotifier{}
}

// Show 显示通知（异步，不阻塞主流程）
func (n *ToastNotifier) Show(title, message string) error {
	push(toast.Notification{AppID: appID, Title: title, Message: message})
	return nil
}

// ShowResult 显示结果通知，点击打开结果文件，按钮打开所在目录
func (n *ToastNotifier) ShowResult(res editor.Result, path string) error {
	title, message := ResultMessage(res)
	push(toast.Notification{
		AppID:               appID,
		Title:               title,
		Message:             message,
		ActivationType:      "protocol",
		ActivationArguments: path,
		Actions: []toast.Action{
			{Type: "protocol", Label: "打开文件夹", Arguments: filepath.Dir(path)},
		},
	})
	return nil
}

func push(notification toast.Notification) {
	go func() {
		if err := notification.Push(); err != nil {
			editor.Logger().Warn("通知发送失败", "error", err)
		}
	}()
}
