package script

import (
	"errors"
	"fmt"

	"github.com/gogpu/paint"
)

// ErrBadStep is returned for a step with no action or several.
var ErrBadStep = errors.New("script: step must set exactly one action")

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Tool != "", s.Primary != "", s.Secondary != "", s.Thickness != nil,
		s.Style != "", s.Sides != nil, s.Tolerance != nil,
		len(s.Drag) > 0, s.Click != nil, s.DoubleClick != nil, s.Leave,
		s.Wheel != 0, s.Type != "", s.Key != "", s.Action != "",
	} {
		if set {
			n++
		}
	}
	return n
}

func (s Step) button() (paint.Button, error) {
	switch s.Button {
	case "", "left":
		return paint.ButtonLeft, nil
	case "middle":
		return paint.ButtonMiddle, nil
	case "right":
		return paint.ButtonRight, nil
	}
	return 0, fmt.Errorf("script: unknown button %q", s.Button)
}

func (s Step) pointer(p Point, clicks int) (paint.PointerEvent, error) {
	b, err := s.button()
	if err != nil {
		return paint.PointerEvent{}, err
	}
	return paint.PointerEvent{Pos: p.vec(), Button: b, Clicks: clicks, Shift: s.Shift, Ctrl: s.Ctrl}, nil
}

func (s Step) key(k paint.Key) paint.KeyEvent {
	return paint.KeyEvent{Key: k, Shift: s.Shift, Ctrl: s.Ctrl, Alt: s.Alt}
}

func (s Step) apply(e *paint.Editor) error {
	if n := s.actions(); n != 1 {
		return fmt.Errorf("%w (got %d)", ErrBadStep, n)
	}
	tools := e.Tools()
	switch {
	case s.Tool != "":
		k, err := paint.ParseToolKind(s.Tool)
		if err != nil {
			return err
		}
		return e.SetTool(k)
	case s.Primary != "":
		c, err := paint.ParseHex(s.Primary)
		if err != nil {
			return err
		}
		e.Colors().SetPrimary(c)
	case s.Secondary != "":
		c, err := paint.ParseHex(s.Secondary)
		if err != nil {
			return err
		}
		e.Colors().SetSecondary(c)
	case s.Thickness != nil:
		return tools.SetThickness(*s.Thickness)
	case s.Style != "":
		st, ok := paint.ParseShapeStyle(s.Style)
		if !ok {
			return fmt.Errorf("%w: style %q", paint.ErrInvalidAttribute, s.Style)
		}
		return tools.SetStyle(st)
	case s.Sides != nil:
		return tools.SetSides(*s.Sides)
	case s.Tolerance != nil:
		return tools.SetTolerance(*s.Tolerance)
	case len(s.Drag) > 0:
		return s.drag(e)
	case s.Click != nil:
		return s.click(e, *s.Click, 1)
	case s.DoubleClick != nil:
		if err := s.click(e, *s.DoubleClick, 1); err != nil {
			return err
		}
		return s.click(e, *s.DoubleClick, 2)
	case s.Leave:
		e.PointerLeave(paint.PointerEvent{})
	case s.Wheel != 0:
		e.Wheel(paint.WheelEvent{Delta: s.Wheel, Alt: s.Alt})
	case s.Type != "":
		for _, r := range s.Type {
			k := paint.Key(string(r))
			if r == '\n' {
				k = paint.KeyEnter
			}
			e.KeyDown(s.key(k))
			e.KeyUp(s.key(k))
		}
	case s.Key != "":
		e.KeyDown(s.key(paint.Key(s.Key)))
		e.KeyUp(s.key(paint.Key(s.Key)))
	case s.Action != "":
		return s.action(e)
	}
	return nil
}

// drag presses at the first point, moves through the rest and releases
// at the last.
func (s Step) drag(e *paint.Editor) error {
	down, err := s.pointer(s.Drag[0], 1)
	if err != nil {
		return err
	}
	e.PointerDown(down)
	last := down
	for _, p := range s.Drag[1:] {
		last, _ = s.pointer(p, 0)
		e.PointerMove(last)
	}
	e.PointerUp(last)
	return nil
}

func (s Step) click(e *paint.Editor, p Point, clicks int) error {
	ev, err := s.pointer(p, clicks)
	if err != nil {
		return err
	}
	e.PointerDown(ev)
	e.PointerUp(ev)
	return nil
}

func (s Step) action(e *paint.Editor) error {
	switch s.Action {
	case "undo":
		return e.Undo()
	case "redo":
		return e.Redo()
	case "copy":
		e.Copy()
	case "cut":
		e.Cut()
	case "paste":
		return e.Paste()
	case "delete":
		e.Delete()
	case "select-all":
		return e.SelectAll()
	case "new":
		e.NewDrawing()
	case "grid":
		e.Grid().Toggle()
	default:
		return fmt.Errorf("script: unknown action %q", s.Action)
	}
	return nil
}
