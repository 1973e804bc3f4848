package paint

import "image/color"

// Default freehand widths.
const (
	defaultPencilWidth = 1
	defaultEraserWidth = 5
)

// freehandTool records a pointer path and commits it as a StrokeCommand.
// The pencil paints round strokes with the button's color; the eraser
// paints square strokes with the background color.
type freehandTool struct {
	baseTool
	thickness float64
	erase     bool

	points  []Vec2
	color   color.NRGBA
	drawing bool
}

func newPencilTool(e *env) *freehandTool {
	return &freehandTool{baseTool: baseTool{env: e, kind: ToolPencil}, thickness: defaultPencilWidth}
}

func newEraserTool(e *env) *freehandTool {
	return &freehandTool{baseTool: baseTool{env: e, kind: ToolEraser}, thickness: defaultEraserWidth, erase: true}
}

// Thickness returns the stroke width.
func (t *freehandTool) Thickness() float64 { return t.thickness }

// SetThickness sets the stroke width.
func (t *freehandTool) SetThickness(v float64) { t.thickness = v }

func (t *freehandTool) cap() LineCap {
	if t.erase {
		return CapSquare
	}
	return CapRound
}

func (t *freehandTool) stroke() StrokeCommand {
	return StrokeCommand{Points: t.points, Width: t.thickness, Color: t.color, Cap: t.cap()}
}

func (t *freehandTool) PointerDown(ev PointerEvent) {
	t.color = t.env.palette.ForButton(ev.Button)
	if t.erase {
		t.color = t.env.background()
	}
	t.points = []Vec2{ev.Pos}
	t.drawing = true
	t.env.previewCommand(t.stroke())
}

func (t *freehandTool) PointerMove(ev PointerEvent) {
	if !t.drawing {
		if t.erase {
			t.footprint(ev.Pos)
		}
		return
	}
	t.add(ev.Pos)
	t.env.previewCommand(t.stroke())
}

func (t *freehandTool) PointerUp(ev PointerEvent) {
	if !t.drawing {
		return
	}
	t.add(ev.Pos)
	t.finish()
}

// PointerLeave commits the stroke drawn so far.
func (t *freehandTool) PointerLeave(PointerEvent) {
	if t.drawing {
		t.finish()
		return
	}
	t.env.clearPreview()
}

func (t *freehandTool) add(p Vec2) {
	if len(t.points) > 0 && t.points[len(t.points)-1] == p {
		return
	}
	t.points = append(t.points, p)
}

func (t *freehandTool) finish() {
	if !t.drawing {
		return
	}
	t.drawing = false
	cmd := t.stroke()
	cmd.meta = t.env.id()
	t.points = nil
	t.env.commit(cmd)
}

// footprint outlines the area the eraser would clear at p.
func (t *freehandTool) footprint(p Vec2) {
	h := t.thickness / 2
	t.env.preview(RectPrimitive{
		A:         p.Sub(V(h, h)),
		B:         p.Add(V(h, h)),
		Style:     Outline,
		Thickness: 1,
		Stroke:    Black,
	})
}
