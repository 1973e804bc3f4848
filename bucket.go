package paint

import (
	"image"

	"github.com/gogpu/paint/internal/flood"
)

// bucketTool fills the region around a click. Shift fills every pixel of
// a similar color instead of the connected region.
type bucketTool struct {
	baseTool
	tolerance int
}

func newBucketTool(e *env) *bucketTool {
	return &bucketTool{baseTool: baseTool{env: e, kind: ToolPaintBucket}}
}

// Tolerance returns the color tolerance in percent.
func (t *bucketTool) Tolerance() int { return t.tolerance }

// SetTolerance sets the color tolerance in percent.
func (t *bucketTool) SetTolerance(v int) { t.tolerance = v }

func (t *bucketTool) PointerDown(ev PointerEvent) {
	s := t.env.surface
	base := s.Region(LayerBase, s.Bounds())
	mode := flood.Contiguous
	if ev.Shift {
		mode = flood.Global
	}
	seed := pixelAt(ev.Pos)
	m := flood.Fill(base, seed, flood.Delta(t.tolerance), mode)
	if m == nil {
		return
	}
	m, at := cropAlpha(m)
	if m == nil {
		return
	}
	t.env.commit(FillCommand{
		meta:  t.env.id(),
		Mask:  m,
		At:    at,
		Color: t.env.palette.ForButton(ev.Button),
	})
}

// cropAlpha trims m to the box of its covered pixels and returns the
// trimmed mask with origin bounds plus its position. It returns nil when
// nothing is covered.
func cropAlpha(m *image.Alpha) (*image.Alpha, image.Point) {
	b := m.Bounds()
	box := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.AlphaAt(x, y).A != 0 {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if box.Empty() {
		return nil, image.Point{}
	}
	out := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := 0; y < box.Dy(); y++ {
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], m.Pix[m.PixOffset(box.Min.X, box.Min.Y+y):])
	}
	return out, box.Min
}
