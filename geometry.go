package paint

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Quadrant identifies the side of an anchor a pointer lies on.
type Quadrant int

const (
	// QuadrantAxis means the pointer lies on one of the anchor's axes.
	QuadrantAxis Quadrant = iota
	// QuadrantBottomRight is +x, +y.
	QuadrantBottomRight
	// QuadrantTopLeft is -x, -y.
	QuadrantTopLeft
	// QuadrantBottomLeft is -x, +y.
	QuadrantBottomLeft
	// QuadrantTopRight is +x, -y.
	QuadrantTopRight
)

// QuadrantOf reports the quadrant of p relative to anchor.
func QuadrantOf(anchor, p Vec2) Quadrant {
	d := p.Sub(anchor)
	switch {
	case d.X > 0 && d.Y > 0:
		return QuadrantBottomRight
	case d.X < 0 && d.Y < 0:
		return QuadrantTopLeft
	case d.X < 0 && d.Y > 0:
		return QuadrantBottomLeft
	case d.X > 0 && d.Y < 0:
		return QuadrantTopRight
	}
	return QuadrantAxis
}

// ConstrainSquare returns the end point that makes the box spanned from
// anchor to p a square. Each quadrant keeps the signs of the drag and
// shrinks the longer extent onto the shorter one, so the constrained box
// stays on the side of the anchor the pointer is on.
// Points on an axis are returned unchanged.
func ConstrainSquare(anchor, p Vec2) Vec2 {
	d := p.Sub(anchor)
	switch QuadrantOf(anchor, p) {
	case QuadrantBottomRight:
		m := math.Min(d.X, d.Y)
		d = V(m, m)
	case QuadrantTopLeft:
		m := math.Max(d.X, d.Y)
		d = V(m, m)
	case QuadrantBottomLeft:
		if math.Abs(d.X) > math.Abs(d.Y) {
			d.X = -d.Y
		} else {
			d.Y = -d.X
		}
	case QuadrantTopRight:
		if math.Abs(d.Y) > math.Abs(d.X) {
			d.Y = -d.X
		} else {
			d.X = -d.Y
		}
	}
	return anchor.Add(d)
}

// SnapAngle snaps p to the nearest of the eight compass directions
// around last. Each direction owns a ±22.5° sector.
func SnapAngle(last, p Vec2) Vec2 {
	d := p.Sub(last)
	if d.X == 0 {
		return V(last.X, p.Y)
	}
	angle := math.Atan(d.Y/d.X) * 180 / math.Pi
	switch {
	case math.Abs(angle) > 67.5:
		return V(last.X, p.Y)
	case math.Abs(angle) >= 22.5:
		// Diagonal: the vertical extent follows the horizontal one.
		if (d.X > 0) == (d.Y > 0) {
			return V(p.X, last.Y+d.X)
		}
		return V(p.X, last.Y-d.X)
	}
	return V(p.X, last.Y)
}

// ccw reports whether a, b, c turn counter-clockwise.
func ccw(a, b, c Vec2) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsCross reports whether segment a0-a1 properly crosses b0-b1.
func SegmentsCross(a0, a1, b0, b1 Vec2) bool {
	return ccw(a0, b0, b1) != ccw(a1, b0, b1) && ccw(a0, a1, b0) != ccw(a0, a1, b1)
}

// PathCrosses reports whether extending path with candidate would make
// the new edge cross an earlier one. The edge adjacent to the new one
// shares a vertex with it and is skipped.
func PathCrosses(path []Vec2, candidate Vec2) bool {
	if len(path) < 3 {
		return false
	}
	last := path[len(path)-1]
	for i := 0; i < len(path)-2; i++ {
		if SegmentsCross(last, candidate, path[i], path[i+1]) {
			return true
		}
	}
	return false
}

// PointInPolygon tests if p is inside polygon using ray casting.
func PointInPolygon(p Vec2, polygon []Vec2) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		pi, pj := polygon[i], polygon[(i+1)%n]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

// PathBounds returns the min and max corners of the points.
func PathBounds(points []Vec2) (minV, maxV Vec2) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return V(floats.Min(xs), floats.Min(ys)), V(floats.Max(xs), floats.Max(ys))
}

// NormalizeRect returns the top-left corner and the non-negative size of
// the box spanned by a and b.
func NormalizeRect(a, b Vec2) (topLeft, size Vec2) {
	topLeft = V(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
	size = b.Sub(a).Abs()
	return topLeft, size
}

// ClipRect converts a float box to pixels and clips it to bounds.
// The result is empty when nothing of the box lies inside.
func ClipRect(topLeft, size Vec2, bounds image.Rectangle) image.Rectangle {
	return PixelRect(topLeft, size).Intersect(bounds)
}

// PixelRect rounds a float box to pixels.
func PixelRect(topLeft, size Vec2) image.Rectangle {
	lo := topLeft.Round()
	hi := topLeft.Add(size).Round()
	return image.Rect(int(lo.X), int(lo.Y), int(hi.X), int(hi.Y))
}

// PolygonVertices returns the vertices of a regular polygon inscribed in
// the circle (center, radius). The first vertex is at the top.
func PolygonVertices(center Vec2, radius float64, sides int) []Vec2 {
	if sides < 3 {
		sides = 3
	}
	step := 2 * math.Pi / float64(sides)
	pts := make([]Vec2, sides)
	for i := range pts {
		a := float64(i) * step
		pts[i] = V(center.X+radius*math.Sin(a), center.Y-radius*math.Cos(a))
	}
	return pts
}
