package paint

import (
	"image/color"
	"math"
	"slices"
)

// closeTolerance is the per-axis distance, in pixels, within which a new
// vertex closes the path on its first vertex.
const closeTolerance = 20

// polyline is the vertex list shared by the line and lasso tools.
type polyline struct {
	points []Vec2
}

func (p *polyline) empty() bool { return len(p.points) == 0 }

func (p *polyline) last() Vec2 { return p.points[len(p.points)-1] }

func (p *polyline) add(v Vec2) { p.points = append(p.points, v) }

func (p *polyline) clear() { p.points = nil }

// pop removes the last vertex if more than one remains.
func (p *polyline) pop() bool {
	if len(p.points) <= 1 {
		return false
	}
	p.points = p.points[:len(p.points)-1]
	return true
}

// target is where a vertex placed at pos would land. With shift the
// pending segment snaps to the nearest compass direction.
func (p *polyline) target(pos Vec2, shift bool) Vec2 {
	if shift && !p.empty() {
		return SnapAngle(p.last(), pos)
	}
	return pos
}

// nearStart reports whether v would close the loop.
func (p *polyline) nearStart(v Vec2) bool {
	if p.empty() {
		return false
	}
	first := p.points[0]
	return math.Abs(v.X-first.X) <= closeTolerance && math.Abs(v.Y-first.Y) <= closeTolerance
}

// with returns the vertices plus a pending one.
func (p *polyline) with(v Vec2) []Vec2 {
	return append(slices.Clone(p.points), v)
}

// lineTool builds a polyline click by click. A double click commits it
// open; a click near the first vertex commits it closed.
type lineTool struct {
	baseTool
	thickness float64
	showDots  bool
	dotRadius float64

	path    polyline
	color   color.NRGBA
	pointer Vec2
	inside  bool
	shift   bool
}

func newLineTool(e *env) *lineTool {
	return &lineTool{baseTool: baseTool{env: e, kind: ToolLine}, thickness: 1, dotRadius: 1}
}

// Thickness returns the stroke width.
func (t *lineTool) Thickness() float64 { return t.thickness }

// SetThickness sets the stroke width.
func (t *lineTool) SetThickness(v float64) { t.thickness = v }

// ShowDots reports whether vertices are marked with dots.
func (t *lineTool) ShowDots() bool { return t.showDots }

// SetShowDots toggles vertex dots.
func (t *lineTool) SetShowDots(v bool) { t.showDots = v }

// DotRadius returns the vertex dot radius.
func (t *lineTool) DotRadius() float64 { return t.dotRadius }

// SetDotRadius sets the vertex dot radius.
func (t *lineTool) SetDotRadius(v float64) { t.dotRadius = v }

func (t *lineTool) command(points []Vec2, closed bool) LineCommand {
	return LineCommand{
		Points:    points,
		Closed:    closed,
		Thickness: t.thickness,
		Color:     t.color,
		ShowDots:  t.showDots,
		DotRadius: t.dotRadius,
	}
}

func (t *lineTool) refresh() {
	if t.path.empty() {
		t.env.clearPreview()
		return
	}
	points := t.path.points
	if t.inside {
		points = t.path.with(t.path.target(t.pointer, t.shift))
	}
	t.env.previewCommand(t.command(points, false))
}

func (t *lineTool) PointerDown(ev PointerEvent) {
	t.pointer, t.inside, t.shift = ev.Pos, true, ev.Shift
	v := t.path.target(ev.Pos, ev.Shift)
	switch {
	case t.path.empty():
		t.color = t.env.palette.ForButton(ev.Button)
		t.path.add(v)
	case ev.Clicks >= 2:
		t.commit(false)
		return
	case len(t.path.points) >= 3 && t.path.nearStart(v):
		t.commit(true)
		return
	default:
		t.path.add(v)
	}
	t.refresh()
}

func (t *lineTool) PointerMove(ev PointerEvent) {
	t.pointer, t.inside, t.shift = ev.Pos, true, ev.Shift
	t.refresh()
}

// PointerLeave drops the pending segment from the preview.
func (t *lineTool) PointerLeave(PointerEvent) {
	t.inside = false
	t.refresh()
}

func (t *lineTool) KeyDown(ev KeyEvent) {
	switch ev.Key {
	case KeyBackspace:
		if t.path.pop() {
			t.refresh()
		}
	case KeyEscape:
		t.path.clear()
		t.env.clearPreview()
	case KeyShift:
		t.shift = true
		t.refresh()
	}
}

func (t *lineTool) KeyUp(ev KeyEvent) {
	if ev.Key == KeyShift {
		t.shift = false
		t.refresh()
	}
}

func (t *lineTool) finish() {
	if len(t.path.points) >= 2 {
		t.commit(false)
		return
	}
	t.path.clear()
	t.env.clearPreview()
}

func (t *lineTool) commit(closed bool) {
	cmd := t.command(slices.Clone(t.path.points), closed)
	cmd.meta = t.env.id()
	t.path.clear()
	if len(cmd.Points) < 2 {
		t.env.clearPreview()
		return
	}
	t.env.commit(cmd)
}
