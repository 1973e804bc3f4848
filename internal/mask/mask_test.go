package mask

import (
	"testing"

	"golang.org/x/image/math/f64"
)

func TestFull(t *testing.T) {
	m := Full(4, 3)
	if got := Count(m); got != 12 {
		t.Errorf("Count(Full(4,3)) = %d, want 12", got)
	}
}

func TestEllipse(t *testing.T) {
	m := Ellipse(40, 20)
	if !Inside(m, 20, 10) {
		t.Error("center should be inside the ellipse")
	}
	if Inside(m, 0, 0) || Inside(m, 39, 19) {
		t.Error("corners should be outside the ellipse")
	}
	for _, a := range m.Pix {
		if a != 0 && a != 0xff {
			t.Fatalf("mask pixel = %d, want 0 or 255", a)
		}
	}
}

func TestPolygon(t *testing.T) {
	tri := []f64.Vec2{{0, 0}, {20, 0}, {0, 20}}
	m := Polygon(20, 20, tri)
	if !Inside(m, 3, 3) {
		t.Error("(3,3) should be inside the triangle")
	}
	if Inside(m, 17, 17) {
		t.Error("(17,17) should be outside the triangle")
	}
}

func TestDegenerate(t *testing.T) {
	if got := Count(Ellipse(0, 10)); got != 0 {
		t.Errorf("Count(Ellipse(0,10)) = %d, want 0", got)
	}
	if got := Count(Polygon(10, 10, []f64.Vec2{{0, 0}, {5, 5}})); got != 0 {
		t.Errorf("two-point polygon covers %d pixels, want 0", got)
	}
}

func TestInsideNil(t *testing.T) {
	if !Inside(nil, 5, 5) {
		t.Error("Inside(nil) = false, want true")
	}
}

func TestScaleAndBounds(t *testing.T) {
	pts := Scale([]f64.Vec2{{0, 0}, {10, 5}}, 10, 5, 20, 20)
	if pts[1] != (f64.Vec2{20, 20}) {
		t.Errorf("Scale = %v, want (20,20)", pts[1])
	}
	b := Bounds([]f64.Vec2{{1.5, 2}, {4, 7.2}})
	if b.Min.X != 1 || b.Min.Y != 2 || b.Max.X != 4 || b.Max.Y != 8 {
		t.Errorf("Bounds = %v, want (1,2)-(4,8)", b)
	}
}
