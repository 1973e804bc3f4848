package paint

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"00ff00", color.NRGBA{G: 255, A: 255}},
		{"#00f", color.NRGBA{B: 255, A: 255}},
		{"#ffffff80", color.NRGBA{R: 255, G: 255, B: 255, A: 128}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz"} {
		if _, err := ParseHex(bad); !errors.Is(err, ErrInvalidAttribute) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidAttribute", bad, err)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{R: 1, G: 2, B: 255, A: 16}); got != "#0102ff10" {
		t.Errorf("Hex = %q, want #0102ff10", got)
	}
}

func TestPaletteSwapAndHistory(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	p := NewPalette(Black, White)
	calls := 0
	p.OnChange(func(color.NRGBA, color.NRGBA) { calls++ })

	p.SetPrimary(red)
	p.Swap()
	if p.Primary() != White || p.Secondary() != red {
		t.Errorf("after Swap primary=%v secondary=%v", p.Primary(), p.Secondary())
	}
	if h := p.History(); len(h) != 1 || h[0] != Black {
		t.Errorf("History() = %v, want [black]", h)
	}
	if calls != 2 {
		t.Errorf("listener calls = %d, want 2", calls)
	}
	if p.ForButton(ButtonRight) != red {
		t.Errorf("ForButton(right) = %v, want red", p.ForButton(ButtonRight))
	}
}

func TestPaletteHistoryDedup(t *testing.T) {
	p := NewPalette(Black, White)
	red := color.NRGBA{R: 255, A: 255}
	p.SetPrimary(red)   // remembers black
	p.SetPrimary(Black) // remembers red
	p.SetPrimary(red)   // remembers black again, moved to front
	h := p.History()
	if len(h) != 2 || h[0] != Black || h[1] != red {
		t.Errorf("History() = %v, want [black red]", h)
	}
}
