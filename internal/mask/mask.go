// Package mask builds binary coverage masks for selection shapes.
//
// Masks are hard-edged: a pixel is either fully inside (255) or fully
// outside (0). Capturing a selection and filling the region it vacates
// use the same mask, so a moved region never leaves a blended fringe.
package mask

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// threshold is the coverage at which an anti-aliased pixel counts as inside.
const threshold = 128

// kappa is the cubic Bézier control distance for a quarter ellipse.
const kappa = 0.5522847498

// Full returns a w×h mask with every pixel inside.
func Full(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}
	return m
}

// Ellipse returns a w×h mask of the ellipse inscribed in the box.
func Ellipse(w, h int) *image.Alpha {
	if w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}
	z := vector.NewRasterizer(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	rx, ry := float32(w)/2, float32(h)/2
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	return rasterize(z, w, h)
}

// Polygon returns a w×h mask of the closed polygon. Vertices are relative
// to the top-left corner of the box.
func Polygon(w, h int, pts []f64.Vec2) *image.Alpha {
	if w <= 0 || h <= 0 || len(pts) < 3 {
		return image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}
	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
	return rasterize(z, w, h)
}

func rasterize(z *vector.Rasterizer, w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	z.DrawOp = draw.Src
	z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	for i, a := range m.Pix {
		if a >= threshold {
			m.Pix[i] = 0xff
		} else {
			m.Pix[i] = 0
		}
	}
	return m
}

// Inside reports whether (x, y) is covered by m. A nil mask covers
// everything.
func Inside(m *image.Alpha, x, y int) bool {
	if m == nil {
		return true
	}
	return m.AlphaAt(x, y).A != 0
}

// Count returns the number of covered pixels.
func Count(m *image.Alpha) int {
	n := 0
	for _, a := range m.Pix {
		if a != 0 {
			n++
		}
	}
	return n
}

// Scale maps vertices from a box of size (sw, sh) into one of size
// (dw, dh).
func Scale(pts []f64.Vec2, sw, sh, dw, dh float64) []f64.Vec2 {
	out := make([]f64.Vec2, len(pts))
	fx, fy := 1.0, 1.0
	if sw != 0 {
		fx = dw / sw
	}
	if sh != 0 {
		fy = dh / sh
	}
	for i, p := range pts {
		out[i] = f64.Vec2{p[0] * fx, p[1] * fy}
	}
	return out
}

// Bounds returns the integer bounding box of the vertices.
func Bounds(pts []f64.Vec2) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x0, y0 = math.Min(x0, p[0]), math.Min(y0, p[1])
		x1, y1 = math.Max(x1, p[0]), math.Max(y1, p[1])
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}
