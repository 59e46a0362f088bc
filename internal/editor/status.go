package editor

// Status 操作结果，前置条件不满足时返回对应状态而不是错误
type Status int

const (
	StatusOK Status = iota
	StatusIgnored
	StatusNoSession
	StatusNothingToUndo
	StatusNothingToRedo
	StatusInvalidGuide
	StatusLockUnavailable
	StatusApplied
	StatusCancelled
)

var statusNames = [...]string{
	StatusOK:              "ok",
	StatusIgnored:         "ignored",
	StatusNoSession:       "no-session",
	StatusNothingToUndo:   "nothing-to-undo",
	StatusNothingToRedo:   "nothing-to-redo",
	StatusInvalidGuide:    "invalid-guide",
	StatusLockUnavailable: "lock-unavailable",
	StatusApplied:         "applied",
	StatusCancelled:       "cancelled",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Message 面向用户的提示文字
func (s Status) Message() string {
	switch s {
	case StatusNothingToUndo:
		return "没有可撤销的操作"
	case StatusNothingToRedo:
		return "没有可重做的操作"
	case StatusInvalidGuide:
		return "参考线不存在"
	case StatusLockUnavailable:
		return "至少需要 4 条参考线并开启固定比例才能锁定"
	case StatusNoSession:
		return "没有打开的编辑会话"
	case StatusApplied:
		return "裁剪范围已应用"
	case StatusCancelled:
		return "已取消编辑"
	}
	return ""
}

// Failed 是否为前置条件失败
func (s Status) Failed() bool {
	switch s {
	case StatusNothingToUndo, StatusNothingToRedo, StatusInvalidGuide, StatusLockUnavailable, StatusNoSession:
		return true
	}
	return false
}
