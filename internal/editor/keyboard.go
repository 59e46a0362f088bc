package editor

import "cropguide/internal/keymap"

// HandleKey 处理按键，除平移修饰键外只在空闲状态下生效
func (c *Controller) HandleKey(e KeyEvent) Status {
	s := c.session
	if s == nil {
		return StatusNoSession
	}
	if e.Kind == KeyUp {
		return c.keyUp(s, e)
	}

	action := c.opts.Bindings.Lookup(e.Chord)
	if action == keymap.ActionPan {
		s.panHeld = true
		return StatusOK
	}
	if s.state != StateIdle {
		return StatusIgnored
	}

	switch action {
	case keymap.ActionUndo:
		return c.Undo()
	case keymap.ActionRedo:
		return c.Redo()
	case keymap.ActionZoomIn:
		return c.ZoomIn()
	case keymap.ActionZoomOut:
		return c.ZoomOut()
	case keymap.ActionZoomReset:
		return c.ResetZoom()
	case keymap.ActionToggleLock:
		return c.ToggleLock()
	case keymap.ActionDeleteGuide:
		i, ok := s.guides.Selected()
		if !ok {
			return StatusIgnored
		}
		return c.RemoveGuide(i)
	case keymap.ActionEscape:
		if _, ok := s.guides.Selected(); ok {
			return c.DeselectGuide()
		}
		return c.Cancel()
	}

	if dx, dy, ok := action.Nudge(); ok {
		return c.nudge(s, dx, dy, e.Chord.Has(keymap.ModShift))
	}
	return StatusIgnored
}

func (c *Controller) keyUp(s *Session, e KeyEvent) Status {
	action := c.opts.Bindings.LookupKey(e.Chord.Key)
	if action == keymap.ActionPan {
		s.panHeld = false
		if s.state == StatePanning {
			s.state = StateIdle
			c.emit(ChangeCommitted)
		}
		return StatusOK
	}
	if _, _, ok := action.Nudge(); ok {
		s.nudging = false
		return StatusOK
	}
	return StatusIgnored
}

// nudge 方向键移动选中的参考线（1px，shift 10px）或选区（10px，shift 1px）
// 连续按键只记录一次历史
func (c *Controller) nudge(s *Session, dx, dy int, shift bool) Status {
	if i, ok := s.guides.Selected(); ok {
		step := NudgeFine
		if shift {
			step = NudgeCoarse
		}
		c.beginNudge(s)
		s.guides.MoveBy(i, dx*step, dy*step)
		c.emit(ChangeGuides)
		return StatusOK
	}

	if !s.selection.HasSelection() {
		return StatusIgnored
	}
	step := NudgeCoarse
	if shift {
		step = NudgeFine
	}
	c.beginNudge(s)
	s.selection.Translate(dx*step, dy*step)
	c.emit(ChangeSelection)
	return StatusOK
}

func (c *Controller) beginNudge(s *Session) {
	if !s.nudging {
		s.history.Snapshot()
		s.nudging = true
	}
}
