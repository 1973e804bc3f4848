package paint

import (
	"image"
	"math"
	"testing"
)

func TestVec2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero+zero", V(0, 0), V(0, 0), V(0, 0)},
		{"positive", V(1, 2), V(3, 4), V(4, 6)},
		{"negative", V(-1, -2), V(-3, -4), V(-4, -6)},
		{"mixed", V(1, -2), V(-3, 4), V(-2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Add(tt.w); got != tt.expect {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec2_Sub(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero-zero", V(0, 0), V(0, 0), V(0, 0)},
		{"positive", V(5, 7), V(2, 3), V(3, 4)},
		{"negative", V(-1, -2), V(-3, -4), V(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Sub(tt.w); got != tt.expect {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.v, tt.w, got, tt.expect)
			}
		})
	}
}

func TestVec2_MulAbs(t *testing.T) {
	if got := V(-2, 3).Mul(0.5); got != V(-1, 1.5) {
		t.Errorf("Mul = %v, want (-1, 1.5)", got)
	}
	if got := V(-2, 3).Abs(); got != V(2, 3) {
		t.Errorf("Abs = %v, want (2, 3)", got)
	}
}

func TestVec2_Round(t *testing.T) {
	tests := []struct {
		v      Vec2
		expect image.Point
	}{
		{V(0.4, 0.6), image.Pt(0, 1)},
		{V(-0.6, 2.5), image.Pt(-1, 3)},
		{V(10, -10), image.Pt(10, -10)},
	}
	for _, tt := range tests {
		if got := tt.v.Point(); got != tt.expect {
			t.Errorf("%v.Point() = %v, want %v", tt.v, got, tt.expect)
		}
		if got := tt.v.Round(); got != VecFromPoint(tt.expect) {
			t.Errorf("%v.Round() = %v, want %v", tt.v, got, tt.expect)
		}
	}
}

func TestVec2_Distance(t *testing.T) {
	if got := V(0, 0).Distance(V(3, 4)); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
