package paint

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// handleTolerance is the per-axis distance, in pixels, within which a
// press grabs a resize handle.
const handleTolerance = 4

// Handle is one of the eight resize handles of a selection.
type Handle int

const (
	HandleOff Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
)

// axes reports which edge each axis moves: -1 for the left or top edge,
// +1 for the right or bottom edge, 0 when the axis is fixed.
func (h Handle) axes() (x, y int) {
	switch h {
	case HandleTopLeft:
		return -1, -1
	case HandleTop:
		return 0, -1
	case HandleTopRight:
		return 1, -1
	case HandleRight:
		return 1, 0
	case HandleBottomRight:
		return 1, 1
	case HandleBottom:
		return 0, 1
	case HandleBottomLeft:
		return -1, 1
	case HandleLeft:
		return -1, 0
	}
	return 0, 0
}

// Corner reports whether h is a corner handle.
func (h Handle) Corner() bool {
	x, y := h.axes()
	return x != 0 && y != 0
}

// position returns where h sits on r.
func (h Handle) position(r image.Rectangle) Vec2 {
	ax, ay := h.axes()
	pick := func(s, lo, hi int) float64 {
		switch s {
		case -1:
			return float64(lo)
		case 1:
			return float64(hi)
		}
		return float64(lo+hi) / 2
	}
	return V(pick(ax, r.Min.X, r.Max.X), pick(ay, r.Min.Y, r.Max.Y))
}

// HitHandle returns the handle of r under p, or HandleOff.
func HitHandle(r image.Rectangle, p Vec2) Handle {
	for h := HandleTopLeft; h <= HandleLeft; h++ {
		q := h.position(r)
		if math.Abs(p.X-q.X) <= handleTolerance && math.Abs(p.Y-q.Y) <= handleTolerance {
			return h
		}
	}
	return HandleOff
}

// resizer tracks one resize gesture. The edges opposite the grabbed
// handle stay anchored; the grabbed edges follow the cumulative pointer
// offset and mirror the content when they cross the anchor.
type resizer struct {
	handle  Handle
	start   Vec2
	origin  image.Rectangle
	content *image.RGBA
	// flipX and flipY are the mirroring of content relative to the
	// captured pixels.
	flipX, flipY bool
}

// resizeLayout is the outcome of a resize step.
type resizeLayout struct {
	bounds       image.Rectangle
	flipX, flipY bool
}

// resizeAxis resizes one axis. lo and hi are the original edges and moved is
// where the grabbed edge now is.
func resizeAxis(side int, lo, hi, moved int) (start, extent int, flipped bool) {
	switch side {
	case -1:
		e := moved - hi
		return hi + min(0, e), max(abs(e), 1), e > 0
	case 1:
		e := moved - lo
		return lo + min(0, e), max(abs(e), 1), e < 0
	}
	return lo, hi - lo, false
}

// at computes the layout for pointer p. With square set on a corner
// handle the box becomes a square of the smaller extent anchored at the
// opposite corner. snap, when not nil, moves the grabbed handle onto the
// grid.
func (r resizer) at(p Vec2, square bool, snap func(Vec2) Vec2) resizeLayout {
	ax, ay := r.handle.axes()
	moved := r.handle.position(r.origin).Add(p.Sub(r.start))
	if snap != nil {
		moved = snap(moved)
	}
	mx, my := int(math.Round(moved.X)), int(math.Round(moved.Y))

	x0, w, fx := resizeAxis(ax, r.origin.Min.X, r.origin.Max.X, mx)
	y0, h, fy := resizeAxis(ay, r.origin.Min.Y, r.origin.Max.Y, my)

	if square && r.handle.Corner() {
		m := min(w, h)
		if x0 < r.anchor().X {
			x0 = r.anchor().X - m
		}
		if y0 < r.anchor().Y {
			y0 = r.anchor().Y - m
		}
		w, h = m, m
	}
	return resizeLayout{bounds: image.Rect(x0, y0, x0+w, y0+h), flipX: fx, flipY: fy}
}

// anchor returns the corner opposite a corner handle.
func (r resizer) anchor() image.Point {
	ax, ay := r.handle.axes()
	a := r.origin.Min
	if ax == -1 {
		a.X = r.origin.Max.X
	}
	if ay == -1 {
		a.Y = r.origin.Max.Y
	}
	return a
}

// resample scales src to size, mirroring it as requested.
func resample(src *image.RGBA, size image.Point, flipX, flipY bool) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	sb := src.Bounds()
	if sb.Empty() || size.X <= 0 || size.Y <= 0 {
		return dst
	}
	sx := float64(size.X) / float64(sb.Dx())
	sy := float64(size.Y) / float64(sb.Dy())
	tx, ty := -sx*float64(sb.Min.X), -sy*float64(sb.Min.Y)
	if flipX {
		sx, tx = -sx, float64(size.X)+sx*float64(sb.Min.X)
	}
	if flipY {
		sy, ty = -sy, float64(size.Y)+sy*float64(sb.Min.Y)
	}
	s2d := f64.Aff3{
		sx, 0, tx,
		0, sy, ty,
	}
	draw.ApproxBiLinear.Transform(dst, s2d, src, sb, draw.Src, nil)
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
