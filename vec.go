package paint

import (
	"image"
	"math"
)

// Vec2 is a point or vector in pixel space.
// Negative components are meaningful: during an interactive resize they
// carry the direction of the drag before the box is normalized.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is a convenience function to create a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// VecFromPoint converts an integer image point.
func VecFromPoint(p image.Point) Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Round rounds both components to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// Distance returns the euclidean distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Point rounds v to an image.Point.
func (v Vec2) Point() image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}
