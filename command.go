package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// CommandKind identifies a command variant.
type CommandKind string

const (
	KindRectangle CommandKind = "rectangle"
	KindEllipse   CommandKind = "ellipse"
	KindPolygon   CommandKind = "polygon"
	KindLine      CommandKind = "line"
	KindText      CommandKind = "text"
	KindStamp     CommandKind = "stamp"
	KindStroke    CommandKind = "stroke"
	KindSpray     CommandKind = "spray"
	KindFill      CommandKind = "fill"
	KindSelection CommandKind = "selection"
)

// Raster reports whether commands of kind k replay recorded pixel data
// or point paths rather than re-deriving them from parameters.
func (k CommandKind) Raster() bool {
	switch k {
	case KindStroke, KindSpray, KindFill, KindSelection:
		return true
	}
	return false
}

// Command is one committed, replayable change to the base layer.
//
// The set of commands is closed. Vector commands (RectangleCommand,
// EllipseCommand, PolygonCommand, LineCommand, TextCommand, StampCommand)
// store parameters and redraw through the primitive the tool drew live.
// Raster commands (StrokeCommand, SprayCommand, FillCommand,
// SelectionCommand) store literal points or pixels.
type Command interface {
	ID() string
	Kind() CommandKind
	// Apply draws the command onto the base layer of s.
	Apply(s Surface) error
	command()
}

// meta carries the fields every command shares.
type meta struct {
	CommandID string `json:"id"`
}

func (m meta) ID() string { return m.CommandID }
func (meta) command()     {}

// drawAll applies primitives to the base layer in order.
func drawAll(s Surface, ps ...Primitive) error {
	for _, p := range ps {
		if err := s.Draw(LayerBase, p); err != nil {
			return err
		}
	}
	return nil
}

// ShapeParams describes a shape dragged from A to B.
type ShapeParams struct {
	A         Vec2        `json:"a"`
	B         Vec2        `json:"b"`
	Style     ShapeStyle  `json:"style"`
	Thickness float64     `json:"thickness"`
	Fill      color.NRGBA `json:"fill"`
	Stroke    color.NRGBA `json:"stroke"`
}

// RectangleCommand draws a rectangle.
type RectangleCommand struct {
	meta
	ShapeParams
}

func (RectangleCommand) Kind() CommandKind { return KindRectangle }

func (c RectangleCommand) primitives() []Primitive {
	return []Primitive{RectPrimitive{A: c.A, B: c.B, Style: c.Style, Thickness: c.Thickness, Fill: c.Fill, Stroke: c.Stroke}}
}

// Apply implements Command.
func (c RectangleCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// EllipseCommand draws the ellipse inscribed in the dragged box.
type EllipseCommand struct {
	meta
	ShapeParams
}

func (EllipseCommand) Kind() CommandKind { return KindEllipse }

func (c EllipseCommand) primitives() []Primitive {
	return []Primitive{EllipsePrimitive{A: c.A, B: c.B, Style: c.Style, Thickness: c.Thickness, Fill: c.Fill, Stroke: c.Stroke}}
}

// Apply implements Command.
func (c EllipseCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// PolygonCommand draws a regular polygon. The dragged box is always
// constrained to a square whose inscribed circle carries the vertices.
type PolygonCommand struct {
	meta
	ShapeParams
	Sides int `json:"sides"`
}

func (PolygonCommand) Kind() CommandKind { return KindPolygon }

func (c PolygonCommand) primitives() []Primitive {
	end := ConstrainSquare(c.A, c.B)
	ext := end.Sub(c.A)
	radius := ext.Abs().Y / 2
	if ext.Y == 0 {
		radius = ext.Abs().X / 2
	}
	return []Primitive{PolygonPrimitive{
		Center:    c.A.Add(ext.Mul(0.5)),
		Radius:    radius,
		Sides:     c.Sides,
		Style:     c.Style,
		Thickness: c.Thickness,
		Fill:      c.Fill,
		Stroke:    c.Stroke,
	}}
}

// Apply implements Command.
func (c PolygonCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// LineCommand draws a polyline, optionally closed, with optional dots at
// the vertices.
type LineCommand struct {
	meta
	Points    []Vec2      `json:"points"`
	Closed    bool        `json:"closed"`
	Thickness float64     `json:"thickness"`
	Color     color.NRGBA `json:"color"`
	ShowDots  bool        `json:"show_dots"`
	DotRadius float64     `json:"dot_radius"`
}

func (LineCommand) Kind() CommandKind { return KindLine }

func (c LineCommand) primitives() []Primitive {
	ps := []Primitive{StrokePrimitive{Points: c.Points, Width: c.Thickness, Color: c.Color, Cap: CapRound, Closed: c.Closed}}
	if c.ShowDots {
		ps = append(ps, DotsPrimitive{Centers: c.Points, Radius: c.DotRadius, Color: c.Color})
	}
	return ps
}

// Apply implements Command.
func (c LineCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// TextCommand draws committed text.
type TextCommand struct {
	meta
	TextParams
}

func (TextCommand) Kind() CommandKind { return KindText }

func (c TextCommand) primitives() []Primitive { return []Primitive{TextPrimitive{c.TextParams}} }

// Apply implements Command.
func (c TextCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// StampCommand draws one stamp.
type StampCommand struct {
	meta
	StampParams
}

func (StampCommand) Kind() CommandKind { return KindStamp }

func (c StampCommand) primitives() []Primitive { return []Primitive{StampPrimitive{c.StampParams}} }

// Apply implements Command.
func (c StampCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// StrokeCommand replays a freehand pencil or eraser path.
type StrokeCommand struct {
	meta
	Points []Vec2      `json:"points"`
	Width  float64     `json:"width"`
	Color  color.NRGBA `json:"color"`
	Cap    LineCap     `json:"cap"`
}

func (StrokeCommand) Kind() CommandKind { return KindStroke }

func (c StrokeCommand) primitives() []Primitive {
	return []Primitive{StrokePrimitive{Points: c.Points, Width: c.Width, Color: c.Color, Cap: c.Cap}}
}

// Apply implements Command.
func (c StrokeCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// SprayCommand replays the droplets of one aerosol gesture.
type SprayCommand struct {
	meta
	Droplets []Vec2      `json:"droplets"`
	Diameter float64     `json:"diameter"`
	Color    color.NRGBA `json:"color"`
}

func (SprayCommand) Kind() CommandKind { return KindSpray }

func (c SprayCommand) primitives() []Primitive {
	return []Primitive{DotsPrimitive{Centers: c.Droplets, Radius: c.Diameter / 2, Color: c.Color}}
}

// Apply implements Command.
func (c SprayCommand) Apply(s Surface) error { return drawAll(s, c.primitives()...) }

// FillCommand paints a recorded paint-bucket coverage mask whose
// top-left corner is at At.
type FillCommand struct {
	meta
	Mask  *image.Alpha
	At    image.Point
	Color color.NRGBA
}

func (FillCommand) Kind() CommandKind { return KindFill }

// Apply implements Command.
func (c FillCommand) Apply(s Surface) error {
	if c.Mask == nil {
		return nil
	}
	return drawAll(s, MaskPrimitive{Mask: c.Mask, At: c.At, Color: c.Color})
}

// SelectionCommand records a committed selection: the region vacated at
// Initial is filled with the background and the content is stamped at
// Final. A pasted selection has no Initial; a cut or delete has no Final.
type SelectionCommand struct {
	meta
	Content *image.RGBA
	// Size is the size of the region captured at Initial.
	Size    image.Point
	Initial *image.Point
	Final   *image.Point
	Shape   SelectionShape
}

func (SelectionCommand) Kind() CommandKind { return KindSelection }

// Apply implements Command.
func (c SelectionCommand) Apply(s Surface) error {
	if c.Initial != nil {
		m := c.Shape.Mask(c.Size)
		if err := s.Draw(LayerBase, MaskPrimitive{Mask: m, At: *c.Initial, Color: s.Background()}); err != nil {
			return err
		}
	}
	if c.Final != nil && c.Content != nil {
		return s.Draw(LayerBase, ImagePrimitive{Image: c.Content, At: *c.Final, Op: draw.Over})
	}
	return nil
}
