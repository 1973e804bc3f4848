package paint

import (
	"image"
	"image/color"
	"math"
)

// PipettePreviewSize is the side of the magnified grid shown around the
// pointer by the pipette.
const PipettePreviewSize = 11

// OutOfBounds marks grid cells that fall outside the canvas.
var OutOfBounds = color.NRGBA{}

// pipetteTool picks colors from the base layer.
type pipetteTool struct {
	baseTool
	grid []color.NRGBA
}

func newPipetteTool(e *env) *pipetteTool {
	return &pipetteTool{baseTool: baseTool{env: e, kind: ToolPipette}}
}

// Preview returns the colors around the last pointer position in row
// major order, PipettePreviewSize cells per row, or nil when the pointer
// is not over the canvas.
func (t *pipetteTool) Preview() []color.NRGBA {
	return t.grid
}

// Sample returns the base color at p. Transparent pixels read as the
// background. ok is false outside the canvas.
func (t *pipetteTool) Sample(p Vec2) (c color.NRGBA, ok bool) {
	pt := pixelAt(p)
	if !pt.In(t.env.surface.Bounds()) {
		return OutOfBounds, false
	}
	px := t.env.surface.Region(LayerBase, image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))})
	return t.opaque(px.RGBAAt(0, 0)), true
}

func (t *pipetteTool) opaque(c color.RGBA) color.NRGBA {
	if c.A == 0 {
		return t.env.background()
	}
	return toNRGBA(c)
}

func (t *pipetteTool) PointerDown(ev PointerEvent) {
	c, ok := t.Sample(ev.Pos)
	if !ok {
		return
	}
	if ev.Button == ButtonLeft {
		t.env.palette.SetPrimary(c)
	} else {
		t.env.palette.SetSecondary(c)
	}
}

func (t *pipetteTool) PointerMove(ev PointerEvent) {
	const half = PipettePreviewSize / 2
	center := pixelAt(ev.Pos)
	area := image.Rect(center.X-half, center.Y-half, center.X+half+1, center.Y+half+1)
	bounds := t.env.surface.Bounds()
	visible := area.Intersect(bounds)
	region := t.env.surface.Region(LayerBase, visible)

	grid := make([]color.NRGBA, 0, PipettePreviewSize*PipettePreviewSize)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			p := image.Pt(x, y)
			if !p.In(visible) {
				grid = append(grid, OutOfBounds)
				continue
			}
			q := p.Sub(visible.Min)
			grid = append(grid, t.opaque(region.RGBAAt(q.X, q.Y)))
		}
	}
	t.grid = grid
}

func (t *pipetteTool) PointerLeave(PointerEvent) { t.grid = nil }

// pixelAt returns the pixel containing p.
func pixelAt(p Vec2) image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}
