package paint

import (
	"image/color"
	"math"
)

// aerosolTool sprays droplets scattered uniformly over a jet disc around
// the pointer. Droplet centers are recorded so replay never depends on
// the random source.
type aerosolTool struct {
	baseTool
	dropletDiameter float64
	frequency       int
	jetDiameter     float64

	droplets []Vec2
	color    color.NRGBA
	spraying bool
}

func newAerosolTool(e *env) *aerosolTool {
	return &aerosolTool{
		baseTool:        baseTool{env: e, kind: ToolAerosol},
		dropletDiameter: 1,
		frequency:       1,
		jetDiameter:     1,
	}
}

// Spray returns the droplet diameter, the droplets emitted per pointer
// event and the jet diameter.
func (t *aerosolTool) Spray() (droplet float64, frequency int, jet float64) {
	return t.dropletDiameter, t.frequency, t.jetDiameter
}

// SetSpray sets the droplet diameter, frequency and jet diameter.
func (t *aerosolTool) SetSpray(droplet float64, frequency int, jet float64) {
	t.dropletDiameter, t.frequency, t.jetDiameter = droplet, frequency, jet
}

func (t *aerosolTool) command() SprayCommand {
	return SprayCommand{Droplets: t.droplets, Diameter: t.dropletDiameter, Color: t.color}
}

func (t *aerosolTool) spray(at Vec2) {
	r := t.jetDiameter / 2
	for i := 0; i < max(t.frequency, 1); i++ {
		d := r * math.Sqrt(t.env.rand.Float64())
		a := 2 * math.Pi * t.env.rand.Float64()
		t.droplets = append(t.droplets, V(at.X+d*math.Cos(a), at.Y+d*math.Sin(a)))
	}
	t.env.previewCommand(t.command())
}

func (t *aerosolTool) PointerDown(ev PointerEvent) {
	t.color = t.env.palette.ForButton(ev.Button)
	t.droplets = nil
	t.spraying = true
	t.spray(ev.Pos)
}

func (t *aerosolTool) PointerMove(ev PointerEvent) {
	if t.spraying {
		t.spray(ev.Pos)
	}
}

func (t *aerosolTool) PointerUp(PointerEvent) { t.finish() }

// PointerLeave commits what was sprayed so far.
func (t *aerosolTool) PointerLeave(PointerEvent) { t.finish() }

func (t *aerosolTool) finish() {
	if !t.spraying {
		return
	}
	t.spraying = false
	cmd := t.command()
	cmd.meta = t.env.id()
	t.droplets = nil
	t.env.commit(cmd)
}
