package paint

// shapeTool is the drag state machine shared by Rectangle, Ellipse and
// Polygon: Idle, then Dragging from pointer down until pointer up commits
// or Escape aborts. Shift constrains the box to a square.
type shapeTool struct {
	baseTool
	thickness float64
	style     ShapeStyle
	build     func(m meta, p ShapeParams) Command

	anchor   Vec2
	current  Vec2
	dragging bool
	shift    bool
}

func newShapeTool(e *env, kind ToolKind, build func(m meta, p ShapeParams) Command) *shapeTool {
	return &shapeTool{
		baseTool:  baseTool{env: e, kind: kind},
		thickness: 1,
		style:     Outline,
		build:     build,
	}
}

// Thickness returns the stroke width.
func (t *shapeTool) Thickness() float64 { return t.thickness }

// SetThickness sets the stroke width.
func (t *shapeTool) SetThickness(v float64) { t.thickness = v }

// Style returns the render mode.
func (t *shapeTool) Style() ShapeStyle { return t.style }

// SetStyle sets the render mode.
func (t *shapeTool) SetStyle(s ShapeStyle) { t.style = s }

func (t *shapeTool) params() ShapeParams {
	end := t.current
	if t.shift {
		end = ConstrainSquare(t.anchor, t.current)
	}
	return ShapeParams{
		A:         t.anchor,
		B:         end,
		Style:     t.style,
		Thickness: t.thickness,
		Fill:      t.env.palette.Primary(),
		Stroke:    t.env.palette.Secondary(),
	}
}

func (t *shapeTool) refresh() {
	if !t.dragging {
		return
	}
	if p, ok := t.build(meta{}, t.params()).(previewer); ok {
		t.env.previewCommand(p)
	}
}

func (t *shapeTool) PointerDown(ev PointerEvent) {
	t.anchor, t.current = ev.Pos, ev.Pos
	t.shift = ev.Shift
	t.dragging = true
	t.refresh()
}

func (t *shapeTool) PointerMove(ev PointerEvent) {
	if !t.dragging {
		return
	}
	t.current = ev.Pos
	t.shift = ev.Shift
	t.refresh()
}

func (t *shapeTool) PointerUp(ev PointerEvent) {
	if !t.dragging {
		return
	}
	t.current = ev.Pos
	t.shift = ev.Shift
	t.commit()
}

// PointerLeave finalizes the shape at the last known position.
func (t *shapeTool) PointerLeave(PointerEvent) {
	if t.dragging {
		t.commit()
	}
}

func (t *shapeTool) KeyDown(ev KeyEvent) {
	switch ev.Key {
	case KeyShift:
		t.shift = true
		t.refresh()
	case KeyEscape:
		t.dragging = false
		t.env.clearPreview()
	}
}

func (t *shapeTool) KeyUp(ev KeyEvent) {
	if ev.Key == KeyShift {
		t.shift = false
		t.refresh()
	}
}

func (t *shapeTool) commit() {
	t.dragging = false
	t.env.commit(t.build(t.env.id(), t.params()))
}

func newRectangleTool(e *env) *shapeTool {
	return newShapeTool(e, ToolRectangle, func(m meta, p ShapeParams) Command {
		return RectangleCommand{meta: m, ShapeParams: p}
	})
}

func newEllipseTool(e *env) *shapeTool {
	return newShapeTool(e, ToolEllipse, func(m meta, p ShapeParams) Command {
		return EllipseCommand{meta: m, ShapeParams: p}
	})
}

// polygonTool is a shape tool drawing regular polygons.
type polygonTool struct {
	*shapeTool
	sides int
}

func newPolygonTool(e *env) *polygonTool {
	t := &polygonTool{sides: 3}
	t.shapeTool = newShapeTool(e, ToolPolygon, func(m meta, p ShapeParams) Command {
		return PolygonCommand{meta: m, ShapeParams: p, Sides: t.sides}
	})
	return t
}

// Sides returns the number of polygon sides.
func (t *polygonTool) Sides() int { return t.sides }

// SetSides sets the number of polygon sides.
func (t *polygonTool) SetSides(n int) { t.sides = n }
