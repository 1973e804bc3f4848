package paint

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// ShapeStyle is the render mode shared by the shape tools.
type ShapeStyle int

const (
	// Outline strokes the shape with the secondary color.
	Outline ShapeStyle = iota
	// Filled fills the shape with the primary color.
	Filled
	// FilledOutline fills with the primary color and strokes with the
	// secondary color.
	FilledOutline
)

var styleNames = [...]string{"outline", "filled", "filled-outline"}

func (s ShapeStyle) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// ParseShapeStyle resolves a style name.
func ParseShapeStyle(name string) (ShapeStyle, bool) {
	for i, n := range styleNames {
		if n == name {
			return ShapeStyle(i), true
		}
	}
	return 0, false
}

// Primitive is a drawing operation a Surface can apply to a layer.
// The set of primitives is closed; adapters render them with Render.
type Primitive interface {
	render(dst *image.RGBA) error
}

// Render draws p onto dst.
func Render(dst *image.RGBA, p Primitive) error {
	return p.render(dst)
}

// LineCap is the end style of a stroke.
type LineCap int

const (
	CapRound LineCap = iota
	CapSquare
	CapButt
)

func (c LineCap) gg() gg.LineCap {
	switch c {
	case CapSquare:
		return gg.LineCapSquare
	case CapButt:
		return gg.LineCapButt
	}
	return gg.LineCapRound
}

// RectPrimitive is an axis-aligned rectangle spanned by two corners.
type RectPrimitive struct {
	A, B      Vec2
	Style     ShapeStyle
	Thickness float64
	Fill      color.NRGBA
	Stroke    color.NRGBA
}

func (p RectPrimitive) render(dst *image.RGBA) error {
	tl, size := NormalizeRect(p.A, p.B)
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	t := math.Max(p.Thickness, 1)
	r := pad(tl, tl.Add(size), 1)

	fill := func(x, y, w, h float64, c color.NRGBA) error {
		return paintCoverage(dst, r, c, func(dc *gg.Context) error {
			dc.DrawRectangle(x, y, w, h)
			return dc.Fill()
		})
	}
	outline := func() error {
		if size.X <= 2*t || size.Y <= 2*t {
			return fill(tl.X, tl.Y, size.X, size.Y, p.Stroke)
		}
		return paintCoverage(dst, r, p.Stroke, func(dc *gg.Context) error {
			dc.SetLineWidth(t)
			dc.DrawRectangle(tl.X+t/2, tl.Y+t/2, size.X-t, size.Y-t)
			return dc.Stroke()
		})
	}

	switch p.Style {
	case Filled:
		return fill(tl.X, tl.Y, size.X, size.Y, p.Fill)
	case FilledOutline:
		if size.X > t && size.Y > t {
			if err := fill(tl.X+t/2, tl.Y+t/2, size.X-t, size.Y-t, p.Fill); err != nil {
				return err
			}
		}
		return outline()
	}
	return outline()
}

// EllipsePrimitive is the ellipse inscribed in the box spanned by two
// corners.
type EllipsePrimitive struct {
	A, B      Vec2
	Style     ShapeStyle
	Thickness float64
	Fill      color.NRGBA
	Stroke    color.NRGBA
}

func (p EllipsePrimitive) render(dst *image.RGBA) error {
	tl, size := NormalizeRect(p.A, p.B)
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	t := math.Max(p.Thickness, 1)
	c := tl.Add(size.Mul(0.5))
	rx, ry := size.X/2, size.Y/2
	r := pad(tl, tl.Add(size), 1)

	fill := func(rx, ry float64, col color.NRGBA) error {
		return paintCoverage(dst, r, col, func(dc *gg.Context) error {
			dc.DrawEllipse(c.X, c.Y, rx, ry)
			return dc.Fill()
		})
	}
	outline := func() error {
		if rx <= t || ry <= t {
			return fill(rx, ry, p.Stroke)
		}
		return paintCoverage(dst, r, p.Stroke, func(dc *gg.Context) error {
			dc.SetLineWidth(t)
			dc.DrawEllipse(c.X, c.Y, rx-t/2, ry-t/2)
			return dc.Stroke()
		})
	}

	switch p.Style {
	case Filled:
		return fill(rx, ry, p.Fill)
	case FilledOutline:
		if rx > t/2 && ry > t/2 {
			if err := fill(rx-t/2, ry-t/2, p.Fill); err != nil {
				return err
			}
		}
		return outline()
	}
	return outline()
}

// PolygonPrimitive is a regular polygon inscribed in a circle.
type PolygonPrimitive struct {
	Center    Vec2
	Radius    float64
	Sides     int
	Style     ShapeStyle
	Thickness float64
	Fill      color.NRGBA
	Stroke    color.NRGBA
}

func (p PolygonPrimitive) render(dst *image.RGBA) error {
	if p.Radius <= 0 {
		return nil
	}
	t := math.Max(p.Thickness, 1)
	rad := V(p.Radius, p.Radius)
	r := pad(p.Center.Sub(rad), p.Center.Add(rad), 1)

	trace := func(dc *gg.Context, radius float64) {
		pts := PolygonVertices(p.Center, radius, p.Sides)
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, v := range pts[1:] {
			dc.LineTo(v.X, v.Y)
		}
		dc.ClosePath()
	}
	fill := func(radius float64, col color.NRGBA) error {
		return paintCoverage(dst, r, col, func(dc *gg.Context) error {
			trace(dc, radius)
			return dc.Fill()
		})
	}
	outline := func() error {
		if p.Radius <= t {
			return fill(p.Radius, p.Stroke)
		}
		return paintCoverage(dst, r, p.Stroke, func(dc *gg.Context) error {
			dc.SetLineWidth(t)
			dc.SetLineJoin(gg.LineJoinRound)
			trace(dc, p.Radius-t/2)
			return dc.Stroke()
		})
	}

	switch p.Style {
	case Filled:
		return fill(p.Radius, p.Fill)
	case FilledOutline:
		if p.Radius > t/2 {
			if err := fill(p.Radius-t/2, p.Fill); err != nil {
				return err
			}
		}
		return outline()
	}
	return outline()
}

// StrokePrimitive strokes a polyline. A single point is drawn as a dot
// of the stroke width.
type StrokePrimitive struct {
	Points []Vec2
	Width  float64
	Color  color.NRGBA
	Cap    LineCap
	Closed bool
	// Dash, when set, alternates drawn and skipped lengths.
	Dash []float64
}

func (p StrokePrimitive) render(dst *image.RGBA) error {
	if len(p.Points) == 0 {
		return nil
	}
	w := math.Max(p.Width, 1)
	lo, hi := PathBounds(p.Points)
	r := pad(lo, hi, w)

	if len(p.Points) == 1 {
		pt := p.Points[0]
		return paintCoverage(dst, r, p.Color, func(dc *gg.Context) error {
			if p.Cap == CapSquare {
				dc.DrawRectangle(pt.X-w/2, pt.Y-w/2, w, w)
			} else {
				dc.DrawCircle(pt.X, pt.Y, w/2)
			}
			return dc.Fill()
		})
	}
	return paintCoverage(dst, r, p.Color, func(dc *gg.Context) error {
		dc.SetLineWidth(w)
		dc.SetLineCap(p.Cap.gg())
		dc.SetLineJoin(gg.LineJoinRound)
		if len(p.Dash) > 0 {
			dc.SetDash(p.Dash...)
		}
		dc.MoveTo(p.Points[0].X, p.Points[0].Y)
		for _, pt := range p.Points[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		if p.Closed {
			dc.ClosePath()
		}
		return dc.Stroke()
	})
}

// DotsPrimitive fills a disc at each center.
type DotsPrimitive struct {
	Centers []Vec2
	Radius  float64
	Color   color.NRGBA
}

func (p DotsPrimitive) render(dst *image.RGBA) error {
	if len(p.Centers) == 0 || p.Radius <= 0 {
		return nil
	}
	lo, hi := PathBounds(p.Centers)
	r := pad(lo, hi, 2*p.Radius)
	return paintCoverage(dst, r, p.Color, func(dc *gg.Context) error {
		for _, c := range p.Centers {
			dc.DrawCircle(c.X, c.Y, p.Radius)
		}
		return dc.Fill()
	})
}

// ImagePrimitive blits Image with its top-left corner at At.
// With draw.Over the image is composited. With draw.Src the pixels are
// copied; when Mask is set only covered pixels are copied.
type ImagePrimitive struct {
	Image *image.RGBA
	At    image.Point
	Mask  *image.Alpha
	Op    draw.Op
}

func (p ImagePrimitive) render(dst *image.RGBA) error {
	if p.Image == nil {
		return nil
	}
	sb := p.Image.Bounds()
	r := image.Rectangle{Min: p.At, Max: p.At.Add(sb.Size())}
	switch {
	case p.Mask == nil:
		draw.Draw(dst, r, p.Image, sb.Min, p.Op)
	case p.Op == draw.Src:
		copyMasked(dst, r, p.Image, p.Mask)
	default:
		draw.DrawMask(dst, r, p.Image, sb.Min, p.Mask, p.Mask.Bounds().Min, p.Op)
	}
	return nil
}

// MaskPrimitive paints Color through Mask, placed at At.
type MaskPrimitive struct {
	Mask  *image.Alpha
	At    image.Point
	Color color.NRGBA
}

func (p MaskPrimitive) render(dst *image.RGBA) error {
	if p.Mask == nil {
		return nil
	}
	mb := p.Mask.Bounds()
	r := image.Rectangle{Min: p.At, Max: p.At.Add(mb.Size())}
	draw.DrawMask(dst, r, image.NewUniform(p.Color), image.Point{}, p.Mask, mb.Min, draw.Over)
	return nil
}

// copyMasked copies the pixels of src covered by m into dst at r.Min.
func copyMasked(dst *image.RGBA, r image.Rectangle, src *image.RGBA, m *image.Alpha) {
	sb, mb := src.Bounds(), m.Bounds()
	clip := r.Intersect(dst.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx, sy := x-r.Min.X, y-r.Min.Y
			if m.AlphaAt(mb.Min.X+sx, mb.Min.Y+sy).A == 0 {
				continue
			}
			si := src.PixOffset(sb.Min.X+sx, sb.Min.Y+sy)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}

// pad returns the pixel box covering lo..hi grown by d on every side.
func pad(lo, hi Vec2, d float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(lo.X-d))-1, int(math.Floor(lo.Y-d))-1,
		int(math.Ceil(hi.X+d))+1, int(math.Ceil(hi.Y+d))+1,
	)
}

// paintCoverage rasterizes the path built by fn with gg and composites
// col through the resulting coverage onto dst. Only the box r is
// rasterized; fn works in canvas coordinates.
func paintCoverage(dst *image.RGBA, r image.Rectangle, col color.NRGBA, fn func(dc *gg.Context) error) error {
	r = r.Intersect(dst.Bounds())
	if r.Empty() || col.A == 0 {
		return nil
	}
	dc := gg.NewContext(r.Dx(), r.Dy())
	defer func() { _ = dc.Close() }()
	dc.Translate(float64(-r.Min.X), float64(-r.Min.Y))
	dc.SetRGBA(1, 1, 1, 1)
	if err := fn(dc); err != nil {
		return err
	}
	cov := coverageOf(dc.Image())
	draw.DrawMask(dst, r, image.NewUniform(col), image.Point{}, cov, image.Point{}, draw.Over)
	return nil
}

// coverageOf extracts the alpha channel of img.
func coverageOf(img image.Image) *image.Alpha {
	b := img.Bounds()
	m := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	if rgba, ok := img.(*image.RGBA); ok {
		for i := 0; i < len(m.Pix); i++ {
			m.Pix[i] = rgba.Pix[i*4+3]
		}
		return m
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			m.SetAlpha(x-b.Min.X, y-b.Min.Y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return m
}
