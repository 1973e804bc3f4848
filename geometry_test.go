package paint

import (
	"image"
	"math"
	"testing"
)

func TestConstrainSquare(t *testing.T) {
	anchor := V(0, 0)
	tests := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"bottom right smaller x", V(150, 300), V(150, 150)},
		{"bottom right smaller y", V(300, 150), V(150, 150)},
		{"top left", V(-40, -90), V(-40, -40)},
		{"bottom left wide", V(-90, 40), V(-40, 40)},
		{"bottom left tall", V(-40, 90), V(-40, 40)},
		{"top right tall", V(40, -90), V(40, -40)},
		{"top right wide", V(90, -40), V(40, -40)},
		{"on axis", V(0, 70), V(0, 70)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConstrainSquare(anchor, tt.p); got != tt.want {
				t.Errorf("ConstrainSquare(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestConstrainSquareOffsetAnchor(t *testing.T) {
	got := ConstrainSquare(V(10, 10), V(160, 310))
	if got != V(160, 160) {
		t.Errorf("ConstrainSquare = %v, want (160,160)", got)
	}
}

func TestSnapAngle(t *testing.T) {
	last := V(10, 10)
	tests := []struct {
		p, want Vec2
	}{
		{V(50, 15), V(50, 10)},   // near horizontal
		{V(12, 60), V(10, 60)},   // near vertical
		{V(50, 45), V(50, 50)},   // diagonal down-right
		{V(-30, 45), V(-30, 50)}, // diagonal down-left
		{V(-30, -25), V(-30, -30)},
		{V(10, 40), V(10, 40)}, // straight down
	}
	for _, tt := range tests {
		if got := SnapAngle(last, tt.p); got != tt.want {
			t.Errorf("SnapAngle(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPathCrosses(t *testing.T) {
	path := []Vec2{V(0, 0), V(10, 10), V(10, 0)}
	if !PathCrosses(path, V(0, 10)) {
		t.Error("PathCrosses((0,10)) = false, want true")
	}
	if PathCrosses(path, V(10, 8)) {
		t.Error("PathCrosses((10,8)) = true, want false")
	}
	if PathCrosses(path[:2], V(0, 10)) {
		t.Error("a two-point path can not cross")
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Vec2{V(0, 0), V(10, 0), V(10, 10), V(0, 10)}
	if !PointInPolygon(V(5, 5), square) {
		t.Error("center should be inside")
	}
	if PointInPolygon(V(15, 5), square) {
		t.Error("(15,5) should be outside")
	}
}

func TestPathBounds(t *testing.T) {
	lo, hi := PathBounds([]Vec2{V(5, 9), V(-2, 4), V(7, 1)})
	if lo != V(-2, 1) || hi != V(7, 9) {
		t.Errorf("PathBounds = %v, %v; want (-2,1), (7,9)", lo, hi)
	}
}

func TestClipRect(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	got := ClipRect(V(-10, 90), V(30, 30), bounds)
	want := image.Rect(0, 90, 20, 100)
	if got != want {
		t.Errorf("ClipRect = %v, want %v", got, want)
	}
	if r := ClipRect(V(200, 200), V(5, 5), bounds); !r.Empty() {
		t.Errorf("ClipRect outside = %v, want empty", r)
	}
}

func TestPolygonVertices(t *testing.T) {
	pts := PolygonVertices(V(50, 50), 20, 4)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	if math.Abs(pts[0].X-50) > 1e-9 || math.Abs(pts[0].Y-30) > 1e-9 {
		t.Errorf("first vertex = %v, want (50,30)", pts[0])
	}
	if math.Abs(pts[1].X-70) > 1e-9 || math.Abs(pts[1].Y-50) > 1e-9 {
		t.Errorf("second vertex = %v, want (70,50)", pts[1])
	}
}
