package paint

import "math"

// Magnetism snaps selection handles to the lines of a square grid.
// Distances are measured from a handle coordinate to a grid line and are
// subtracted from the coordinate to land on that line.
type Magnetism struct {
	Size float64
}

func (m Magnetism) mod(v float64) float64 {
	d := math.Mod(v, m.Size)
	if d < 0 {
		d += m.Size
	}
	return d
}

// NearestLineLeft returns the distance to the grid line left of v. A
// coordinate on a line jumps a whole cell.
func (m Magnetism) NearestLineLeft(v float64) float64 {
	if d := m.mod(v); d != 0 {
		return d
	}
	return m.Size
}

// NearestLineTop is NearestLineLeft for the vertical axis.
func (m Magnetism) NearestLineTop(v float64) float64 { return m.NearestLineLeft(v) }

// NearestLineRight returns the negative distance to the grid line right
// of v. A coordinate on a line jumps a whole cell.
func (m Magnetism) NearestLineRight(v float64) float64 {
	return m.mod(v) - m.Size
}

// NearestLineDown is NearestLineRight for the vertical axis.
func (m Magnetism) NearestLineDown(v float64) float64 { return m.NearestLineRight(v) }

// SnapValue moves v onto the nearer grid line. Ties go to the lower line.
func (m Magnetism) SnapValue(v float64) float64 {
	if m.Size <= 0 {
		return v
	}
	d := m.mod(v)
	if d == 0 {
		return v
	}
	if d <= m.Size/2 {
		return v - d
	}
	return v - d + m.Size
}

// Snap moves p onto the nearest grid intersection.
func (m Magnetism) Snap(p Vec2) Vec2 {
	return V(m.SnapValue(p.X), m.SnapValue(p.Y))
}
