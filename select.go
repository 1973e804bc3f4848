package paint

import (
	"image"
	"math"
)

// selectionTool is implemented by tools that operate on the shared
// SelectionContext.
type selectionTool interface {
	Tool
	setSelection(s *SelectionContext)
}

// selectTool marks, moves and resizes a selection. The rectangle and
// ellipse variants mark by dragging a box; the lasso variant marks by
// clicking the vertices of a closed path.
type selectTool struct {
	baseTool
	shape SelectionKind
	sel   *SelectionContext

	anchor  Vec2
	current Vec2
	shift   bool

	lasso   polyline
	pointer Vec2
	inside  bool

	offset Vec2
	resize resizer
}

func newSelectTool(e *env, kind ToolKind, shape SelectionKind) *selectTool {
	return &selectTool{baseTool: baseTool{env: e, kind: kind}, shape: shape}
}

func (t *selectTool) setSelection(s *SelectionContext) { t.sel = s }

func (t *selectTool) PointerDown(ev PointerEvent) {
	if t.sel == nil {
		return
	}
	switch t.sel.state {
	case SelectionIdle:
		t.beginMarking(ev.Pos)
	case SelectionMarking:
		if t.shape == SelectionLasso {
			t.lassoClick(ev.Pos)
		}
	case SelectionActive:
		b := t.sel.Bounds()
		if h := HitHandle(b, ev.Pos); h != HandleOff {
			t.resize = resizer{
				handle:  h,
				start:   ev.Pos,
				origin:  b,
				content: t.sel.content,
				flipX:   t.sel.flipX,
				flipY:   t.sel.flipY,
			}
			t.sel.setState(SelectionResizing)
			return
		}
		if inside(b, ev.Pos) {
			t.offset = VecFromPoint(b.Min).Sub(ev.Pos)
			t.sel.setState(SelectionDragging)
			return
		}
		t.sel.commit(t.env)
		t.beginMarking(ev.Pos)
	}
}

// inside reports whether p lies strictly within r.
func inside(r image.Rectangle, p Vec2) bool {
	return p.X > float64(r.Min.X) && p.X < float64(r.Max.X) &&
		p.Y > float64(r.Min.Y) && p.Y < float64(r.Max.Y)
}

func (t *selectTool) beginMarking(p Vec2) {
	t.sel.setState(SelectionMarking)
	if t.shape == SelectionLasso {
		t.lasso.clear()
		t.lasso.add(t.clamp(p))
		t.pointer, t.inside = p, true
		t.previewLasso()
		return
	}
	t.anchor, t.current = p, p
	t.previewBox()
}

func (t *selectTool) PointerMove(ev PointerEvent) {
	if t.sel == nil {
		return
	}
	switch t.sel.state {
	case SelectionMarking:
		if t.shape == SelectionLasso {
			t.pointer, t.inside = ev.Pos, true
			t.previewLasso()
			return
		}
		t.current = ev.Pos
		t.previewBox()
	case SelectionDragging:
		to := ev.Pos.Add(t.offset)
		if t.sel.magnetism {
			to = t.env.grid.Magnetism().Snap(to)
		}
		t.sel.move(t.env, to.Point().Sub(t.sel.topLeft))
	case SelectionResizing:
		t.resizeTo(ev.Pos)
	}
}

func (t *selectTool) resizeTo(p Vec2) {
	var snap func(Vec2) Vec2
	if t.sel.magnetism {
		snap = t.env.grid.Magnetism().Snap
	}
	l := t.resize.at(p, t.shift, snap)
	t.sel.resizeTo(t.env, t.resize.content, l, t.resize.flipX, t.resize.flipY)
}

func (t *selectTool) PointerUp(ev PointerEvent) {
	if t.sel == nil {
		return
	}
	switch t.sel.state {
	case SelectionMarking:
		if t.shape != SelectionLasso {
			t.current = ev.Pos
			t.finishBox()
		}
	case SelectionDragging:
		t.sel.setState(SelectionActive)
		t.sel.render(t.env)
	case SelectionResizing:
		t.resizeTo(ev.Pos)
		t.endResize()
	}
}

func (t *selectTool) endResize() {
	t.sel.setState(SelectionActive)
	t.sel.redecode(t.env)
	t.sel.render(t.env)
}

// PointerLeave ends a drag or resize where it is. A box being marked is
// finished; a lasso loses its pending segment.
func (t *selectTool) PointerLeave(PointerEvent) {
	if t.sel == nil {
		return
	}
	switch t.sel.state {
	case SelectionMarking:
		if t.shape == SelectionLasso {
			t.inside = false
			t.previewLasso()
			return
		}
		t.finishBox()
	case SelectionDragging:
		t.sel.setState(SelectionActive)
		t.sel.render(t.env)
	case SelectionResizing:
		t.endResize()
	}
}

// box returns the marked box, squared when shift is held.
func (t *selectTool) box() (topLeft, size Vec2) {
	end := t.current
	if t.shift {
		end = ConstrainSquare(t.anchor, end)
	}
	return NormalizeRect(t.anchor, end)
}

func (t *selectTool) previewBox() {
	tl, size := t.box()
	ps := []Primitive{dashedBox(tl, tl.Add(size))}
	if t.shape == SelectionEllipse {
		ps = append(ps, EllipsePrimitive{A: tl, B: tl.Add(size), Style: Outline, Thickness: 1, Stroke: Black})
	}
	t.env.preview(ps...)
}

// finishBox captures the marked box. A box with no area inside the
// canvas returns to idle.
func (t *selectTool) finishBox() {
	tl, size := t.box()
	r := ClipRect(tl, size, t.env.surface.Bounds())
	if r.Empty() {
		t.abort()
		return
	}
	shape := SelectionShape{Kind: t.shape}
	if t.shape == SelectionEllipse {
		if full := PixelRect(tl, size); full != r {
			shape.Frame = full.Sub(r.Min)
		}
	}
	t.sel.capture(t.env, r, shape)
}

func (t *selectTool) abort() {
	t.lasso.clear()
	t.sel.setState(SelectionIdle)
	t.env.clearPreview()
}

func (t *selectTool) clamp(p Vec2) Vec2 {
	b := t.env.surface.Bounds()
	return V(
		math.Min(math.Max(p.X, float64(b.Min.X)), float64(b.Max.X)),
		math.Min(math.Max(p.Y, float64(b.Min.Y)), float64(b.Max.Y)),
	)
}

// lassoClick places a vertex. A vertex near the first one closes the
// path; a vertex whose segment would cross the path is refused.
func (t *selectTool) lassoClick(p Vec2) {
	c := t.clamp(t.lasso.target(p, t.shift))
	pts := t.lasso.points
	if len(pts) >= 3 && t.lasso.nearStart(c) {
		if PathCrosses(pts[1:], pts[0]) {
			t.previewLasso()
			return
		}
		t.closeLasso()
		return
	}
	if c == t.lasso.last() || PathCrosses(pts, c) {
		t.previewLasso()
		return
	}
	t.lasso.add(c)
	t.previewLasso()
}

func (t *selectTool) closeLasso() {
	pts := t.lasso.points
	t.lasso.clear()
	r := boundsOf(pts).Intersect(t.env.surface.Bounds())
	if r.Empty() {
		t.abort()
		return
	}
	rel := make([]Vec2, len(pts))
	for i, p := range pts {
		rel[i] = p.Sub(VecFromPoint(r.Min))
	}
	t.sel.capture(t.env, r, SelectionShape{Kind: SelectionLasso, Path: rel})
}

func boundsOf(pts []Vec2) image.Rectangle {
	lo, hi := PathBounds(pts)
	return image.Rect(int(math.Floor(lo.X)), int(math.Floor(lo.Y)), int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)))
}

// previewLasso draws the path and, while the pointer is over the canvas,
// the pending segment: black when it can be placed, red when it would
// cross the path.
func (t *selectTool) previewLasso() {
	if t.lasso.empty() {
		t.env.clearPreview()
		return
	}
	pts := t.lasso.points
	col := Black
	if t.inside {
		c := t.clamp(t.lasso.target(t.pointer, t.shift))
		if PathCrosses(pts, c) && !(len(pts) >= 3 && t.lasso.nearStart(c)) {
			col = InvalidRed
		}
		pts = t.lasso.with(c)
	}
	t.env.preview(StrokePrimitive{Points: pts, Width: 1, Color: col, Cap: CapRound})
}

func (t *selectTool) KeyDown(ev KeyEvent) {
	if t.sel == nil {
		return
	}
	switch ev.Key {
	case KeyShift:
		t.shift = true
		t.refresh()
		return
	case KeyEscape:
		if t.sel.state == SelectionMarking {
			t.abort()
			return
		}
		t.sel.cancel(t.env)
		return
	case KeyBackspace:
		if t.sel.state == SelectionMarking && t.shape == SelectionLasso && t.lasso.pop() {
			t.previewLasso()
		}
		return
	case "m", "M":
		if t.sel.Active() {
			t.sel.magnetism = !t.sel.magnetism
		}
		return
	}
	if t.sel.state == SelectionActive {
		t.sel.arrow(t.env, ev.Key)
	}
}

func (t *selectTool) KeyUp(ev KeyEvent) {
	if ev.Key == KeyShift {
		t.shift = false
		t.refresh()
	}
}

func (t *selectTool) refresh() {
	if t.sel == nil || t.sel.state != SelectionMarking {
		return
	}
	if t.shape == SelectionLasso {
		t.previewLasso()
		return
	}
	t.previewBox()
}

// finish commits an active selection and drops one being marked.
func (t *selectTool) finish() {
	if t.sel == nil {
		return
	}
	switch t.sel.state {
	case SelectionMarking:
		t.abort()
	case SelectionResizing:
		t.endResize()
		t.sel.commit(t.env)
	default:
		t.sel.commit(t.env)
	}
}
