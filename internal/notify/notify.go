package notify

import (
	"fmt"

	"cropguide/internal/editor"
)

// Notifier 通知接口
type Notifier interface {
	Show(title, message string) error
	// ShowResult 通知应用结果，path 为保存的结果文件
	ShowResult(res editor.Result, path string) error
}

// ResultMessage 生成应用结果的通知内容
func ResultMessage(res editor.Result) (title, message string) {
	if !res.HasCrop {
		return "裁剪范围已应用", fmt.Sprintf("未选择范围，%d 条参考线", len(res.Guides))
	}
	return "裁剪范围已应用", fmt.Sprintf("%s  %dx%d", res.Selection, res.CropWidth, res.CropHeight)
}
