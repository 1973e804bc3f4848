package paint

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// StampKind names a stamp design.
type StampKind string

const (
	StampHouse   StampKind = "house"
	StampLetter  StampKind = "letter"
	StampStar    StampKind = "star"
	StampHashtag StampKind = "hashtag"
	StampSmile   StampKind = "smile"
)

// StampKinds lists the available designs.
var StampKinds = []StampKind{StampHouse, StampLetter, StampStar, StampHashtag, StampSmile}

// stampBox is the side of the square every design is drawn in, centered
// on the origin, at scale 1.
const stampBox = 48

// Wheel rotation steps in degrees.
const (
	stampStep     = 15
	stampFineStep = 1
)

// StampParams places one stamp. Angle is in degrees, clockwise.
type StampParams struct {
	Kind   StampKind   `json:"stamp"`
	Center Vec2        `json:"center"`
	Scale  float64     `json:"scale"`
	Angle  float64     `json:"angle"`
	Color  color.NRGBA `json:"color"`
}

// StampPrimitive draws a stamp design.
type StampPrimitive struct {
	StampParams
}

func (p StampPrimitive) render(dst *image.RGBA) error {
	design, ok := stampDesigns[p.Kind]
	if !ok {
		return fmt.Errorf("%w: stamp %q", ErrInvalidAttribute, p.Kind)
	}
	half := stampBox / 2 * p.Scale * math.Sqrt2
	r := pad(p.Center.Sub(V(half, half)), p.Center.Add(V(half, half)), 2)
	return paintCoverage(dst, r, p.Color, func(dc *gg.Context) error {
		dc.Translate(p.Center.X, p.Center.Y)
		dc.Rotate(p.Angle * math.Pi / 180)
		dc.Scale(p.Scale, p.Scale)
		return design(dc, p.Scale)
	})
}

// stampDesigns draw in the stamp box. Stroke widths are given in canvas
// pixels, so designs multiply them by the scale.
var stampDesigns = map[StampKind]func(dc *gg.Context, scale float64) error{
	StampHouse: func(dc *gg.Context, _ float64) error {
		dc.MoveTo(-22, -2)
		dc.LineTo(0, -22)
		dc.LineTo(22, -2)
		dc.ClosePath()
		dc.DrawRectangle(-16, -4, 32, 26)
		return dc.Fill()
	},
	StampLetter: func(dc *gg.Context, scale float64) error {
		dc.SetLineWidth(3 * scale)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.DrawRectangle(-22, -14, 44, 28)
		dc.MoveTo(-22, -14)
		dc.LineTo(0, 4)
		dc.LineTo(22, -14)
		return dc.Stroke()
	},
	StampStar: func(dc *gg.Context, _ float64) error {
		const outer, inner = 22, 9
		for i := 0; i < 10; i++ {
			r := float64(outer)
			if i%2 == 1 {
				r = inner
			}
			a := float64(i)*math.Pi/5 - math.Pi/2
			if i == 0 {
				dc.MoveTo(r*math.Cos(a), r*math.Sin(a))
				continue
			}
			dc.LineTo(r*math.Cos(a), r*math.Sin(a))
		}
		dc.ClosePath()
		return dc.Fill()
	},
	StampHashtag: func(dc *gg.Context, scale float64) error {
		dc.SetLineWidth(4 * scale)
		dc.SetLineCap(gg.LineCapRound)
		dc.DrawLine(-6, -20, -10, 20)
		dc.DrawLine(10, -20, 6, 20)
		dc.DrawLine(-18, -7, 20, -7)
		dc.DrawLine(-20, 7, 18, 7)
		return dc.Stroke()
	},
	StampSmile: func(dc *gg.Context, scale float64) error {
		dc.SetLineWidth(3 * scale)
		dc.SetLineCap(gg.LineCapRound)
		dc.DrawCircle(0, 0, 20)
		dc.MoveTo(-10, 6)
		dc.CubicTo(-5, 13, 5, 13, 10, 6)
		if err := dc.Stroke(); err != nil {
			return err
		}
		dc.DrawCircle(-7, -6, 2.5)
		dc.DrawCircle(7, -6, 2.5)
		return dc.Fill()
	},
}

// stampTool follows the pointer with a preview of the design and stamps
// it on click. The wheel rotates the design.
type stampTool struct {
	baseTool
	kind   StampKind
	scale  float64
	angle  float64
	at     Vec2
	inside bool
}

func newStampTool(e *env) *stampTool {
	return &stampTool{
		baseTool: baseTool{env: e, kind: ToolStamp},
		kind:     StampHouse,
		scale:    1,
	}
}

// Stamp returns the design, scale and angle in degrees.
func (t *stampTool) Stamp() (StampKind, float64, float64) {
	return t.kind, t.scale, t.angle
}

// SetStamp sets the design, scale and angle in degrees.
func (t *stampTool) SetStamp(kind StampKind, scale, angle float64) {
	t.kind, t.scale, t.angle = kind, scale, normalizeDegrees(angle)
	t.refresh()
}

func (t *stampTool) params(c color.NRGBA) StampParams {
	return StampParams{Kind: t.kind, Center: t.at, Scale: t.scale, Angle: t.angle, Color: c}
}

func (t *stampTool) refresh() {
	if !t.inside {
		return
	}
	t.env.preview(StampPrimitive{t.params(t.env.palette.Primary())})
}

func (t *stampTool) PointerMove(ev PointerEvent) {
	t.at, t.inside = ev.Pos, true
	t.refresh()
}

func (t *stampTool) PointerDown(ev PointerEvent) {
	t.at, t.inside = ev.Pos, true
	t.env.commit(StampCommand{meta: t.env.id(), StampParams: t.params(t.env.palette.ForButton(ev.Button))})
	t.refresh()
}

func (t *stampTool) PointerLeave(PointerEvent) {
	t.inside = false
	t.env.clearPreview()
}

// Wheel rotates the design by 15 degrees per notch, or 1 with Alt held.
func (t *stampTool) Wheel(ev WheelEvent) {
	step := float64(stampStep)
	if ev.Alt {
		step = stampFineStep
	}
	switch {
	case ev.Delta > 0:
		t.angle = normalizeDegrees(t.angle + step)
	case ev.Delta < 0:
		t.angle = normalizeDegrees(t.angle - step)
	}
	t.refresh()
}

func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
