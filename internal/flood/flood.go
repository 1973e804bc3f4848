// Package flood computes paint-bucket coverage on RGBA images.
package flood

import (
	"image"
)

// Mode selects which pixels a fill reaches.
type Mode int

const (
	// Contiguous fills the 4-connected region around the seed.
	Contiguous Mode = iota
	// Global fills every matching pixel of the image.
	Global
)

// Delta maps a tolerance percentage (0–100) to a per-channel delta.
func Delta(percent int) int {
	percent = min(max(percent, 0), 100)
	return percent * 255 / 100
}

// Fill returns the coverage mask of the pixels that match the seed color
// within delta on every channel, alpha included. The mask has the bounds
// of img. A seed outside img yields nil.
func Fill(img *image.RGBA, seed image.Point, delta int, mode Mode) *image.Alpha {
	b := img.Bounds()
	if !seed.In(b) {
		return nil
	}
	w, h := b.Dx(), b.Dy()
	out := image.NewAlpha(b)

	si := img.PixOffset(seed.X, seed.Y)
	ref := [4]uint8{img.Pix[si], img.Pix[si+1], img.Pix[si+2], img.Pix[si+3]}
	match := func(x, y int) bool {
		i := img.PixOffset(x, y)
		for c := 0; c < 4; c++ {
			if absDiff(int(img.Pix[i+c]), int(ref[c])) > delta {
				return false
			}
		}
		return true
	}

	if mode == Global {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if match(x, y) {
					out.Pix[out.PixOffset(x, y)] = 0xff
				}
			}
		}
		return out
	}

	visited := make([]bool, w*h)
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.In(b) {
			continue
		}
		idx := (p.Y-b.Min.Y)*w + (p.X - b.Min.X)
		if visited[idx] {
			continue
		}
		visited[idx] = true
		if !match(p.X, p.Y) {
			continue
		}
		out.Pix[out.PixOffset(p.X, p.Y)] = 0xff

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
