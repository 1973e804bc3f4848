package paint

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func rgba(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRectPrimitiveStyles(t *testing.T) {
	tests := []struct {
		style        ShapeStyle
		edge, center color.NRGBA
	}{
		{Outline, blue, White},
		{Filled, red, red},
		{FilledOutline, blue, red},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			c := NewCanvas(120, 80, White)
			p := RectPrimitive{A: V(0, 0), B: V(100, 60), Style: tt.style, Thickness: 5, Fill: red, Stroke: blue}
			if err := c.Draw(LayerBase, p); err != nil {
				t.Fatal(err)
			}
			img := c.Snapshot()
			if got := img.RGBAAt(2, 30); got != rgba(tt.edge) {
				t.Errorf("edge pixel = %v, want %v", got, rgba(tt.edge))
			}
			if got := img.RGBAAt(50, 30); got != rgba(tt.center) {
				t.Errorf("center pixel = %v, want %v", got, rgba(tt.center))
			}
			if got := img.RGBAAt(110, 70); got != rgba(White) {
				t.Errorf("outside pixel = %v, want white", got)
			}
		})
	}
}

func TestEllipsePrimitiveFilled(t *testing.T) {
	c := NewCanvas(120, 80, White)
	p := EllipsePrimitive{A: V(100, 60), B: V(0, 0), Style: Filled, Thickness: 1, Fill: green}
	if err := c.Draw(LayerBase, p); err != nil {
		t.Fatal(err)
	}
	img := c.Snapshot()
	if got := img.RGBAAt(50, 30); got != rgba(green) {
		t.Errorf("center = %v, want green", got)
	}
	if got := img.RGBAAt(1, 1); got != rgba(White) {
		t.Errorf("box corner = %v, want white", got)
	}
}

func TestDegeneratePrimitivesDrawNothing(t *testing.T) {
	prims := []Primitive{
		RectPrimitive{A: V(10, 10), B: V(10, 50), Style: Filled, Fill: red},
		EllipsePrimitive{A: V(10, 10), B: V(40, 10), Style: Filled, Fill: red},
		PolygonPrimitive{Center: V(20, 20), Radius: 0, Sides: 5, Style: Filled, Fill: red},
		StrokePrimitive{Color: red, Width: 3},
		MaskPrimitive{Color: red},
	}
	for _, p := range prims {
		c := NewCanvas(60, 60, White)
		if err := c.Draw(LayerBase, p); err != nil {
			t.Fatalf("%T: %v", p, err)
		}
		img := c.Snapshot()
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i+1] != 0xff {
				t.Errorf("%T changed pixel %d", p, i/4)
				break
			}
		}
	}
}

func TestMaskPrimitive(t *testing.T) {
	m := image.NewAlpha(image.Rect(0, 0, 4, 4))
	m.SetAlpha(1, 1, color.Alpha{A: 0xff})
	c := NewCanvas(20, 20, White)
	if err := c.Draw(LayerBase, MaskPrimitive{Mask: m, At: image.Pt(10, 5), Color: red}); err != nil {
		t.Fatal(err)
	}
	img := c.Snapshot()
	if got := img.RGBAAt(11, 6); got != rgba(red) {
		t.Errorf("masked pixel = %v, want red", got)
	}
	if got := img.RGBAAt(10, 5); got != rgba(White) {
		t.Errorf("unmasked pixel = %v, want white", got)
	}
}

func TestImagePrimitiveMaskedCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{})
	src.SetRGBA(1, 0, color.RGBA{})
	m := image.NewAlpha(src.Bounds())
	m.SetAlpha(0, 0, color.Alpha{A: 0xff})

	c := NewCanvas(4, 4, White)
	if err := c.Draw(LayerBase, ImagePrimitive{Image: src, At: image.Pt(1, 1), Mask: m, Op: draw.Src}); err != nil {
		t.Fatal(err)
	}
	img := c.Snapshot()
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("copied pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(2, 1); got != rgba(White) {
		t.Errorf("unmasked pixel = %v, want white", got)
	}
}

func TestShapeStyleNames(t *testing.T) {
	for _, s := range []ShapeStyle{Outline, Filled, FilledOutline} {
		got, ok := ParseShapeStyle(s.String())
		if !ok || got != s {
			t.Errorf("ParseShapeStyle(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseShapeStyle("dotted"); ok {
		t.Error("ParseShapeStyle accepted an unknown name")
	}
}
