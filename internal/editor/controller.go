package editor

import (
	"cropguide/internal/guide"
	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

// Controller 编辑器交互控制器
// 非并发安全，宿主需将所有调用串行化到同一线程
type Controller struct {
	opts    Options
	session *Session
	emitter emitter
}

// New 创建控制器
func New(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{opts: o}
}

// Options 返回生效的参数
func (c *Controller) Options() Options { return c.opts }

// OnStateChanged 订阅状态变化，返回取消订阅函数
func (c *Controller) OnStateChanged(fn func(Change)) func() {
	return c.emitter.subscribe(fn)
}

// Session 当前会话，没有打开的会话时返回 nil
func (c *Controller) Session() *Session {
	return c.session
}

// Open 打开新会话，已有会话会先被取消
func (c *Controller) Open(natural, container viewport.Size, source string) *Session {
	if c.session != nil {
		c.close(nil)
	}

	s := newSession(natural, container, source, c.opts)
	s.history.OnRestore(func() {
		c.emit(ChangeRestored)
	})
	c.session = s

	Logger().Info("打开编辑会话", "session", s.id,
		"width", natural.Width, "height", natural.Height, "source", source)
	c.emit(ChangeOpened)
	return s
}

// Cancel 放弃当前会话
func (c *Controller) Cancel() Status {
	if c.session == nil {
		return StatusNoSession
	}
	c.close(nil)
	return StatusCancelled
}

// Apply 结束当前会话并返回最终选区
func (c *Controller) Apply() (Result, Status) {
	s := c.session
	if s == nil {
		return Result{}, StatusNoSession
	}
	res := newResult(s)
	c.close(&res)
	return res, StatusApplied
}

func (c *Controller) close(res *Result) {
	s := c.session
	s.resetInteraction()
	s.open = false
	c.session = nil

	Logger().Info("关闭编辑会话", "session", s.id, "applied", res != nil)
	c.emitter.emit(Change{Kind: ChangeClosed, Session: s.id, Result: res})
}

func (c *Controller) emit(kind ChangeKind) {
	ch := Change{Kind: kind}
	if c.session != nil {
		ch.Session = c.session.id
	}
	c.emitter.emit(ch)
}

// signal 报告状态，失败状态同时记录调试日志
func (c *Controller) signal(st Status) Status {
	if st.Failed() {
		Logger().Debug("操作未执行", "status", st)
	}
	ch := Change{Kind: ChangeStatus, Status: st}
	if c.session != nil {
		ch.Session = c.session.id
	}
	c.emitter.emit(ch)
	return st
}

// idle 返回处于空闲状态的会话
func (c *Controller) idle() (*Session, Status) {
	s := c.session
	if s == nil {
		return nil, StatusNoSession
	}
	if s.state != StateIdle {
		return nil, StatusIgnored
	}
	s.nudging = false
	return s, StatusOK
}

// Dispatch 分发宿主事件
func (c *Controller) Dispatch(ev Event) Status {
	switch e := ev.(type) {
	case PointerEvent:
		return c.HandlePointer(e)
	case KeyEvent:
		return c.HandleKey(e)
	case WheelEvent:
		return c.HandleWheel(e)
	case ResizeEvent:
		return c.Resize(e.Size)
	case CommandEvent:
		return c.runCommand(e)
	}
	return StatusIgnored
}

func (c *Controller) runCommand(e CommandEvent) Status {
	switch e.Command {
	case CommandDeriveGuides:
		return c.DeriveFromGuides()
	case CommandClearAll:
		return c.ClearAll()
	case CommandClearGuides:
		return c.ClearGuides()
	case CommandResetRange:
		return c.ResetRange()
	case CommandToggleLock:
		return c.ToggleLock()
	case CommandUndo:
		return c.Undo()
	case CommandRedo:
		return c.Redo()
	case CommandApply:
		_, st := c.Apply()
		return st
	case CommandCancel:
		return c.Cancel()
	case CommandSetSelection:
		return c.SetSelection(e.Rect)
	}
	return StatusIgnored
}

// ============================================================
// 历史
// ============================================================

// Undo 撤销
func (c *Controller) Undo() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if !s.history.Undo() {
		return c.signal(StatusNothingToUndo)
	}
	return StatusOK
}

// Redo 重做
func (c *Controller) Redo() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if !s.history.Redo() {
		return c.signal(StatusNothingToRedo)
	}
	return StatusOK
}

// ============================================================
// 参考线
// ============================================================

// AddGuide 添加参考线并选中
func (c *Controller) AddGuide(axis guide.Axis, position int) (int, Status) {
	s, st := c.idle()
	if s == nil {
		return -1, st
	}
	s.history.Snapshot()
	i := s.guides.Add(axis, position)
	c.emit(ChangeGuides)
	return i, StatusOK
}

// RemoveGuide 删除参考线
func (c *Controller) RemoveGuide(i int) Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if _, ok := s.guides.At(i); !ok {
		return c.signal(StatusInvalidGuide)
	}
	if s.guides.Locked() {
		return StatusIgnored
	}
	s.history.Snapshot()
	s.guides.Remove(i)
	c.emit(ChangeGuides)
	return StatusOK
}

// SelectGuide 选中参考线
func (c *Controller) SelectGuide(i int) Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if s.guides.Locked() {
		return StatusIgnored
	}
	if !s.guides.Select(i) {
		return c.signal(StatusInvalidGuide)
	}
	c.emit(ChangeGuides)
	return StatusOK
}

// DeselectGuide 取消选中
func (c *Controller) DeselectGuide() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if _, ok := s.guides.Selected(); !ok {
		return StatusIgnored
	}
	s.guides.Deselect()
	c.emit(ChangeGuides)
	return StatusOK
}

// MoveGuide 将参考线移动到指定位置
func (c *Controller) MoveGuide(i, position int) Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if _, ok := s.guides.At(i); !ok {
		return c.signal(StatusInvalidGuide)
	}
	if s.guides.Locked() {
		return StatusIgnored
	}
	s.history.Snapshot()
	s.guides.MoveTo(i, position)
	c.emit(ChangeGuides)
	return StatusOK
}

// ToggleLock 切换参考线锁定，锁定需要开启固定比例且至少 4 条参考线，解锁不受限制
func (c *Controller) ToggleLock() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if !s.guides.Locked() && !s.selection.AspectLock() {
		return c.signal(StatusLockUnavailable)
	}
	if !s.guides.ToggleLock() {
		return c.signal(StatusLockUnavailable)
	}
	Logger().Debug("参考线锁定", "locked", s.guides.Locked())
	c.emit(ChangeGuides)
	return StatusOK
}

// DeriveFromGuides 用参考线围成的范围作为选区
func (c *Controller) DeriveFromGuides() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	r, ok := s.guides.DeriveBounds(s.selection.Rect())
	if !ok {
		return StatusIgnored
	}
	s.history.Snapshot()
	s.selection.Set(r)
	s.fillPreview = s.selection.HasSelection()
	c.emit(ChangeSelection)
	return StatusOK
}

// ClearGuides 删除全部参考线并解除锁定
func (c *Controller) ClearGuides() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	if s.guides.Len() > 0 {
		s.history.Snapshot()
	}
	s.guides.Clear()
	c.emit(ChangeGuides)
	return StatusOK
}

// ClearAll 清除参考线和选区
func (c *Controller) ClearAll() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	s.history.Snapshot()
	s.guides.Clear()
	s.selection.Clear()
	s.fillPreview = false
	c.emit(ChangeGuides)
	c.emit(ChangeSelection)
	return StatusOK
}

// ============================================================
// 选区
// ============================================================

// ResetRange 清除选区，不记录历史
func (c *Controller) ResetRange() Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	s.selection.Clear()
	s.fillPreview = false
	c.emit(ChangeSelection)
	return StatusOK
}

// SetSelection 直接设置选区（预设或数值输入）
func (c *Controller) SetSelection(r selection.Rect) Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	s.history.Snapshot()
	s.selection.Set(r)
	s.fillPreview = s.selection.HasSelection()
	c.emit(ChangeSelection)
	return StatusOK
}

// SetAspectLock 开关固定比例
func (c *Controller) SetAspectLock(on bool) Status {
	s, st := c.idle()
	if s == nil {
		return st
	}
	s.selection.SetAspectLock(on)
	c.emit(ChangeInteraction)
	return StatusOK
}

// ============================================================
// 视口
// ============================================================

// ZoomIn 以最后的指针位置为中心放大
func (c *Controller) ZoomIn() Status {
	return c.zoomAround(ZoomInFactor, nil)
}

// ZoomOut 以最后的指针位置为中心缩小
func (c *Controller) ZoomOut() Status {
	return c.zoomAround(ZoomOutFactor, nil)
}

// ResetZoom 恢复 1.0 倍
func (c *Controller) ResetZoom() Status {
	s := c.session
	if s == nil {
		return StatusNoSession
	}
	s.view.ResetZoom()
	c.emit(ChangeViewport)
	return StatusOK
}

// HandleWheel 滚轮缩放
func (c *Controller) HandleWheel(e WheelEvent) Status {
	switch {
	case e.DeltaY > 0:
		return c.zoomAround(ZoomInFactor, &e.Pos)
	case e.DeltaY < 0:
		return c.zoomAround(ZoomOutFactor, &e.Pos)
	}
	return StatusIgnored
}

func (c *Controller) zoomAround(factor float64, anchor *viewport.Point) Status {
	s := c.session
	if s == nil {
		return StatusNoSession
	}
	if anchor != nil {
		s.lastPointer = *anchor
	}
	if !s.view.ZoomAroundPoint(factor, s.lastPointer) {
		return StatusIgnored
	}
	c.emit(ChangeViewport)
	return StatusOK
}

// Resize 容器尺寸变化
func (c *Controller) Resize(size viewport.Size) Status {
	s := c.session
	if s == nil {
		return StatusNoSession
	}
	s.view.SetContainer(size)
	c.emit(ChangeViewport)
	return StatusOK
}
