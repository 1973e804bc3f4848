package paint

import (
	"errors"
	"image"
	"testing"
)

func TestGridSize(t *testing.T) {
	g := NewGrid()
	if g.Size() != DefaultGridSize || g.Visible() {
		t.Fatalf("NewGrid = size %d visible %v", g.Size(), g.Visible())
	}
	for _, bad := range []int{0, MinGridSize - 1, MaxGridSize + 1} {
		if err := g.SetSize(bad); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("SetSize(%d) error = %v, want ErrInvalidAttribute", bad, err)
		}
	}
	if err := g.SetSize(MaxGridSize); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	g.Grow()
	if g.Size() != MaxGridSize {
		t.Errorf("Grow past max = %d, want %d", g.Size(), MaxGridSize)
	}
	_ = g.SetSize(MinGridSize)
	g.Shrink()
	if g.Size() != MinGridSize {
		t.Errorf("Shrink past min = %d, want %d", g.Size(), MinGridSize)
	}
	_ = g.SetSize(40)
	if got := g.Magnetism(); got.Size != 40 {
		t.Errorf("Magnetism().Size = %v, want 40", got.Size)
	}
}

func TestGridOpacity(t *testing.T) {
	g := NewGrid()
	if err := g.SetOpacity(0.05); !errors.Is(err, ErrInvalidAttribute) {
		t.Errorf("SetOpacity(0.05) error = %v", err)
	}
	if err := g.SetOpacity(1); err != nil || g.Opacity() != 1 {
		t.Errorf("SetOpacity(1) = %v, opacity %v", err, g.Opacity())
	}
}

func TestGridOverlay(t *testing.T) {
	g := NewGrid()
	img, err := g.Overlay(image.Rect(0, 0, 120, 120))
	if err != nil || img != nil {
		t.Fatalf("hidden Overlay = %v, %v; want nil, nil", img, err)
	}
	g.Toggle()
	img, err = g.Overlay(image.Rect(0, 0, 120, 120))
	if err != nil {
		t.Fatalf("Overlay: %v", err)
	}
	if a := img.RGBAAt(50, 17).A; a == 0 {
		t.Error("no line drawn at x=50")
	}
	if a := img.RGBAAt(25, 17).A; a != 0 {
		t.Errorf("alpha between lines = %d, want 0", a)
	}
}
