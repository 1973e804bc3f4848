package paint

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Layer selects one of the two pixel buffers of a surface.
type Layer int

const (
	// LayerBase holds committed content.
	LayerBase Layer = iota
	// LayerPreview holds transient feedback. Clearing it never touches
	// the base.
	LayerPreview
)

// Surface is the raster surface the editing engine draws on.
//
// Regions are returned as independent copies whose bounds start at the
// origin. Coordinates outside the surface are clipped.
type Surface interface {
	// Bounds returns the surface size.
	Bounds() image.Rectangle

	// Region copies r out of a layer.
	Region(l Layer, r image.Rectangle) *image.RGBA

	// PutRegion copies src into a layer with its top-left corner at at.
	PutRegion(l Layer, src *image.RGBA, at image.Point)

	// Clear resets r to the layer's blank state: the background color for
	// the base, transparent for the preview.
	Clear(l Layer, r image.Rectangle)

	// Draw applies a primitive to a layer.
	Draw(l Layer, p Primitive) error

	// DecodeBitmap turns a detached pixel buffer into a bitmap ready to
	// be drawn. It may be called from any goroutine.
	DecodeBitmap(ctx context.Context, buf *image.RGBA) (*image.RGBA, error)

	// Snapshot returns a copy of the base layer.
	Snapshot() *image.RGBA

	// Restore replaces the base layer with img and resizes the surface
	// to match.
	Restore(img image.Image)

	// Background returns the color of a blank base.
	Background() color.NRGBA
}

// Canvas is the in-memory Surface.
type Canvas struct {
	base       *image.RGBA
	preview    *image.RGBA
	background color.NRGBA
}

// NewCanvas creates a w×h canvas cleared to bg. The background is made
// opaque.
func NewCanvas(w, h int, bg color.NRGBA) *Canvas {
	bg.A = 0xff
	c := &Canvas{
		base:       image.NewRGBA(image.Rect(0, 0, w, h)),
		preview:    image.NewRGBA(image.Rect(0, 0, w, h)),
		background: bg,
	}
	c.Clear(LayerBase, c.base.Bounds())
	return c
}

// Bounds implements Surface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.base.Bounds()
}

// Background implements Surface.
func (c *Canvas) Background() color.NRGBA {
	return c.background
}

func (c *Canvas) layer(l Layer) *image.RGBA {
	if l == LayerPreview {
		return c.preview
	}
	return c.base
}

// Base returns the base layer. The image is owned by the canvas.
func (c *Canvas) Base() *image.RGBA {
	return c.base
}

// Preview returns the preview layer. The image is owned by the canvas.
func (c *Canvas) Preview() *image.RGBA {
	return c.preview
}

// Region implements Surface.
func (c *Canvas) Region(l Layer, r image.Rectangle) *image.RGBA {
	r = r.Intersect(c.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), c.layer(l), r.Min, draw.Src)
	return out
}

// PutRegion implements Surface.
func (c *Canvas) PutRegion(l Layer, src *image.RGBA, at image.Point) {
	sb := src.Bounds()
	draw.Draw(c.layer(l), image.Rectangle{Min: at, Max: at.Add(sb.Size())}, src, sb.Min, draw.Src)
}

// Clear implements Surface.
func (c *Canvas) Clear(l Layer, r image.Rectangle) {
	if l == LayerPreview {
		draw.Draw(c.preview, r, image.Transparent, image.Point{}, draw.Src)
		return
	}
	draw.Draw(c.base, r, image.NewUniform(c.background), image.Point{}, draw.Src)
}

// Draw implements Surface.
func (c *Canvas) Draw(l Layer, p Primitive) error {
	return p.render(c.layer(l))
}

// DecodeBitmap implements Surface. The in-memory canvas keeps bitmaps in
// the same premultiplied RGBA layout, so decoding is a copy.
func (c *Canvas) DecodeBitmap(ctx context.Context, buf *image.RGBA) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if buf == nil || buf.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return cloneRGBA(buf), nil
}

// Snapshot implements Surface.
func (c *Canvas) Snapshot() *image.RGBA {
	return cloneRGBA(c.base)
}

// Restore implements Surface.
func (c *Canvas) Restore(img image.Image) {
	b := img.Bounds()
	base := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(base, base.Bounds(), img, b.Min, draw.Src)
	c.base = base
	if c.preview.Bounds() != base.Bounds() {
		c.preview = image.NewRGBA(base.Bounds())
	} else {
		c.Clear(LayerPreview, c.preview.Bounds())
	}
}

// EncodePNG writes the base layer as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.base)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	sb := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Draw(out, out.Bounds(), src, sb.Min, draw.Src)
	return out
}
