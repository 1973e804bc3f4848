package paint

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Grid limits.
const (
	DefaultGridSize = 50
	GridStep        = 5
	MinGridSize     = 5
	MaxGridSize     = 200
)

// DefaultGridOpacity is the opacity of a new grid.
const DefaultGridOpacity = 0.5

// Grid is the overlay shown above the drawing. Its size is also the cell
// size magnetism snaps to.
type Grid struct {
	visible bool
	size    int
	opacity float64
}

// NewGrid returns a hidden grid of the default size.
func NewGrid() *Grid {
	return &Grid{size: DefaultGridSize, opacity: DefaultGridOpacity}
}

// Visible reports whether the overlay is shown.
func (g *Grid) Visible() bool { return g.visible }

// SetVisible shows or hides the overlay.
func (g *Grid) SetVisible(v bool) { g.visible = v }

// Toggle flips visibility.
func (g *Grid) Toggle() { g.visible = !g.visible }

// Size returns the cell size in pixels.
func (g *Grid) Size() int { return g.size }

// SetSize sets the cell size.
func (g *Grid) SetSize(size int) error {
	if size < MinGridSize || size > MaxGridSize {
		return fmt.Errorf("%w: grid size %d", ErrInvalidAttribute, size)
	}
	g.size = size
	return nil
}

// Grow enlarges the cells by one step, up to the maximum.
func (g *Grid) Grow() { g.size = min(g.size+GridStep, MaxGridSize) }

// Shrink reduces the cells by one step, down to the minimum.
func (g *Grid) Shrink() { g.size = max(g.size-GridStep, MinGridSize) }

// Opacity returns the line opacity in [0.1, 1].
func (g *Grid) Opacity() float64 { return g.opacity }

// SetOpacity sets the line opacity.
func (g *Grid) SetOpacity(o float64) error {
	if o < 0.1 || o > 1 {
		return fmt.Errorf("%w: grid opacity %g", ErrInvalidAttribute, o)
	}
	g.opacity = o
	return nil
}

// Magnetism returns the snapping rules for the current cell size.
func (g *Grid) Magnetism() Magnetism {
	return Magnetism{Size: float64(g.size)}
}

// Overlay renders the grid lines over a transparent image of the given
// bounds. It returns nil when the grid is hidden.
func (g *Grid) Overlay(bounds image.Rectangle) (*image.RGBA, error) {
	if !g.visible || bounds.Empty() {
		return nil, nil
	}
	w, h := bounds.Dx(), bounds.Dy()
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	dc.SetRGBA(0, 0, 0, g.opacity)
	dc.SetLineWidth(1)
	for x := g.size; x < w; x += g.size {
		dc.DrawLine(float64(x)+0.5, 0, float64(x)+0.5, float64(h))
	}
	for y := g.size; y < h; y += g.size {
		dc.DrawLine(0, float64(y)+0.5, float64(w), float64(y)+0.5)
	}
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out, nil
}
