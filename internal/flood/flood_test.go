package flood

import (
	"image"
	"image/color"
	"testing"
)

// twoRooms is a 10x5 white image split by a black wall at x=5.
func twoRooms() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 10, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x == 5 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func covered(m *image.Alpha) int {
	n := 0
	for _, a := range m.Pix {
		if a != 0 {
			n++
		}
	}
	return n
}

func TestFillContiguous(t *testing.T) {
	m := Fill(twoRooms(), image.Pt(1, 1), 0, Contiguous)
	if got := covered(m); got != 25 {
		t.Errorf("covered = %d, want 25", got)
	}
	if m.AlphaAt(7, 2).A != 0 {
		t.Error("fill leaked through the wall")
	}
}

func TestFillGlobal(t *testing.T) {
	m := Fill(twoRooms(), image.Pt(1, 1), 0, Global)
	if got := covered(m); got != 45 {
		t.Errorf("covered = %d, want 45", got)
	}
}

func TestFillTolerance(t *testing.T) {
	img := twoRooms()
	img.SetRGBA(2, 2, color.RGBA{250, 250, 250, 255})
	if m := Fill(img, image.Pt(0, 0), 0, Contiguous); m.AlphaAt(2, 2).A != 0 {
		t.Error("tolerance 0 should skip the near-white pixel")
	}
	if m := Fill(img, image.Pt(0, 0), Delta(5), Contiguous); m.AlphaAt(2, 2).A == 0 {
		t.Error("tolerance 5% should include the near-white pixel")
	}
}

func TestFillOutside(t *testing.T) {
	if m := Fill(twoRooms(), image.Pt(20, 20), 0, Contiguous); m != nil {
		t.Error("seed outside the image should yield nil")
	}
}

func TestDelta(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {100, 255}, {50, 127}, {-3, 0}, {400, 255}}
	for _, tt := range tests {
		if got := Delta(tt.in); got != tt.want {
			t.Errorf("Delta(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
