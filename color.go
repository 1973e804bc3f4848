package paint

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/gg"
)

// Default colors.
var (
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.NRGBA{A: 0xff}
	// InvalidRed previews a rejected lasso vertex.
	InvalidRed = color.NRGBA{R: 0xff, A: 0xff}
)

// historyLimit bounds the recently used colors list.
const historyLimit = 10

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidAttribute, s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalidAttribute, s)
		}
	}
	c := gg.Hex(h)
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}, nil
}

// unit8 maps a [0,1] component to a byte.
func unit8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}

// Hex formats c as "#rrggbbaa".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Palette holds the primary and secondary colors and the colors used
// most recently. Left-button actions use the primary color, others the
// secondary.
type Palette struct {
	primary   color.NRGBA
	secondary color.NRGBA
	history   []color.NRGBA
	listeners []func(primary, secondary color.NRGBA)
}

// NewPalette returns a palette with the given colors.
func NewPalette(primary, secondary color.NRGBA) *Palette {
	return &Palette{primary: primary, secondary: secondary}
}

// Primary returns the primary color.
func (p *Palette) Primary() color.NRGBA { return p.primary }

// Secondary returns the secondary color.
func (p *Palette) Secondary() color.NRGBA { return p.secondary }

// SetPrimary replaces the primary color and records the previous one.
func (p *Palette) SetPrimary(c color.NRGBA) {
	p.remember(p.primary)
	p.primary = c
	p.notify()
}

// SetSecondary replaces the secondary color and records the previous one.
func (p *Palette) SetSecondary(c color.NRGBA) {
	p.remember(p.secondary)
	p.secondary = c
	p.notify()
}

// SetAlpha sets the transparency of the primary or secondary color.
func (p *Palette) SetAlpha(primary bool, a uint8) {
	if primary {
		p.primary.A = a
	} else {
		p.secondary.A = a
	}
	p.notify()
}

// Swap exchanges the primary and secondary colors.
func (p *Palette) Swap() {
	p.primary, p.secondary = p.secondary, p.primary
	p.notify()
}

// History returns recently replaced colors, newest first.
func (p *Palette) History() []color.NRGBA {
	return slices.Clone(p.history)
}

// ForButton returns the color a pointer button paints with.
func (p *Palette) ForButton(b Button) color.NRGBA {
	if b == ButtonLeft {
		return p.primary
	}
	return p.secondary
}

// OnChange registers fn to be called after either color changes.
func (p *Palette) OnChange(fn func(primary, secondary color.NRGBA)) {
	p.listeners = append(p.listeners, fn)
}

func (p *Palette) remember(c color.NRGBA) {
	if i := slices.Index(p.history, c); i >= 0 {
		p.history = slices.Delete(p.history, i, i+1)
	}
	p.history = slices.Insert(p.history, 0, c)
	if len(p.history) > historyLimit {
		p.history = p.history[:historyLimit]
	}
}

func (p *Palette) notify() {
	for _, fn := range p.listeners {
		fn(p.primary, p.secondary)
	}
}
