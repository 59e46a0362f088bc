package editor

import (
	"math"

	"cropguide/internal/guide"
	"cropguide/internal/selection"
	"cropguide/internal/viewport"
)

// HandlePointer 处理指针事件
func (c *Controller) HandlePointer(e PointerEvent) Status {
	s := c.session
	if s == nil {
		return StatusNoSession
	}
	s.lastPointer = e.Pos

	switch e.Kind {
	case PointerDown:
		return c.pointerDown(s, e)
	case PointerMove:
		return c.pointerMove(s, e)
	case PointerUp, PointerLeave:
		return c.pointerUp(s, e)
	}
	return StatusIgnored
}

func (c *Controller) pointerDown(s *Session, e PointerEvent) Status {
	if s.state != StateIdle {
		return StatusIgnored
	}
	s.nudging = false

	switch e.Target {
	case TargetRulerH:
		return c.beginNewGuide(s, guide.Horizontal, e.Pos)
	case TargetRulerV:
		return c.beginNewGuide(s, guide.Vertical, e.Pos)
	}

	nat := s.view.DisplayToNatural(e.Pos)

	// 参考线优先于选区，锁定后不可拖动
	tolX, tolY := s.view.DisplayToNaturalLength(c.opts.GuideHitTolerance)
	if i := s.guides.HitTest(nat, tolX, tolY); i >= 0 {
		s.history.Snapshot()
		s.guides.Select(i)
		s.dragGuide = i
		s.state = StateDraggingGuide
		c.emit(ChangeGuides)
		return StatusOK
	}

	if s.panHeld && s.view.Zoom() > 1 {
		s.panStart = e.Pos
		s.panOrigin = s.view.Pan()
		s.state = StatePanning
		c.emit(ChangeInteraction)
		return StatusOK
	}

	s.guides.Deselect()
	s.history.Snapshot()
	s.fillPreview = false
	s.selection.Begin(nat, c.snapTargets(s))
	s.state = StateDraggingSelection
	c.emit(ChangeSelection)
	return StatusOK
}

func (c *Controller) beginNewGuide(s *Session, axis guide.Axis, pos viewport.Point) Status {
	s.rulerAxis = axis
	s.state = StateDraggingNewGuide
	c.updatePreview(s, pos)
	c.emit(ChangeInteraction)
	return StatusOK
}

// updatePreview 预览线只在图像范围内显示
func (c *Controller) updatePreview(s *Session, pos viewport.Point) {
	nat := s.view.DisplayToNatural(pos)
	s.preview.Axis = s.rulerAxis
	if s.rulerAxis == guide.Horizontal {
		s.hasPreview = s.view.InImageY(pos.Y)
		s.preview.Position = int(math.Round(nat.Y))
	} else {
		s.hasPreview = s.view.InImageX(pos.X)
		s.preview.Position = int(math.Round(nat.X))
	}
}

func (c *Controller) pointerMove(s *Session, e PointerEvent) Status {
	switch s.state {
	case StateDraggingSelection:
		s.selection.Update(s.view.DisplayToNatural(e.Pos), c.snapTargets(s))
		c.emit(ChangeSelection)

	case StateDraggingGuide:
		nat := s.view.DisplayToNatural(e.Pos)
		g, _ := s.guides.At(s.dragGuide)
		pos := nat.Y
		if g.Axis == guide.Vertical {
			pos = nat.X
		}
		s.guides.MoveTo(s.dragGuide, int(math.Round(pos)))
		c.emit(ChangeGuides)

	case StateDraggingNewGuide:
		c.updatePreview(s, e.Pos)
		c.emit(ChangeInteraction)

	case StatePanning:
		delta := e.Pos.Sub(s.panStart)
		s.view.PanTo(s.panOrigin.Sub(delta))
		c.emit(ChangeViewport)

	default:
		return StatusIgnored
	}
	return StatusOK
}

func (c *Controller) pointerUp(s *Session, e PointerEvent) Status {
	switch s.state {
	case StateIdle:
		return StatusIgnored

	case StateDraggingSelection:
		_, ok := s.selection.Commit()
		s.fillPreview = ok

	case StateDraggingNewGuide:
		c.updatePreview(s, e.Pos)
		if s.hasPreview {
			s.history.Snapshot()
			s.guides.Add(s.preview.Axis, s.preview.Position)
		}
	}

	s.state = StateIdle
	s.dragGuide = -1
	s.hasPreview = false
	c.emit(ChangeCommitted)
	return StatusOK
}

// snapTargets 吸附阈值由显示像素换算为自然像素
func (c *Controller) snapTargets(s *Session) selection.SnapTargets {
	tx, ty := s.view.DisplayToNaturalLength(c.opts.SnapThreshold)
	return selection.SnapTargets{
		Vertical:   s.guides.Positions(guide.Vertical),
		Horizontal: s.guides.Positions(guide.Horizontal),
		ThresholdX: tx,
		ThresholdY: ty,
	}
}
