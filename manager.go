package paint

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/paint/internal/fonts"
)

// Manager owns one instance of every tool and routes input and attribute
// changes to the active one.
type Manager struct {
	tools     [toolCount]Tool
	active    Tool
	selection *SelectionContext
	listeners []func(ToolKind)
}

func newManager(e *env, sel *SelectionContext) *Manager {
	m := &Manager{selection: sel}
	m.tools = [toolCount]Tool{
		ToolPencil:          newPencilTool(e),
		ToolEraser:          newEraserTool(e),
		ToolLine:            newLineTool(e),
		ToolRectangle:       newRectangleTool(e),
		ToolEllipse:         newEllipseTool(e),
		ToolPolygon:         newPolygonTool(e),
		ToolAerosol:         newAerosolTool(e),
		ToolPaintBucket:     newBucketTool(e),
		ToolPipette:         newPipetteTool(e),
		ToolStamp:           newStampTool(e),
		ToolText:            newTextTool(e),
		ToolSelectRectangle: newSelectTool(e, ToolSelectRectangle, SelectionRect),
		ToolSelectEllipse:   newSelectTool(e, ToolSelectEllipse, SelectionEllipse),
		ToolSelectLasso:     newSelectTool(e, ToolSelectLasso, SelectionLasso),
	}
	m.active = m.tools[ToolPencil]
	return m
}

// Active returns the active tool.
func (m *Manager) Active() Tool { return m.active }

// Kind returns the kind of the active tool.
func (m *Manager) Kind() ToolKind { return m.active.Kind() }

// Tool returns the instance of kind k.
func (m *Manager) Tool(k ToolKind) (Tool, error) {
	if k < 0 || k >= toolCount {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTool, k)
	}
	return m.tools[k], nil
}

// Select makes k the active tool. Work pending in the previous tool is
// committed first.
func (m *Manager) Select(k ToolKind) error {
	next, err := m.Tool(k)
	if err != nil {
		return err
	}
	prev := m.active
	if prev == next {
		return nil
	}
	if f, ok := prev.(finisher); ok {
		f.finish()
	}
	m.active = next
	if st, ok := next.(selectionTool); ok {
		st.setSelection(m.selection)
	}
	Logger().Debug("tool changed", slog.String("from", prev.Kind().String()), slog.String("to", k.String()))
	for _, fn := range m.listeners {
		fn(k)
	}
	return nil
}

// OnChange registers fn to be called after the active tool changes.
func (m *Manager) OnChange(fn func(ToolKind)) {
	m.listeners = append(m.listeners, fn)
}

// Attributes returns the current settings of the active tool.
func (m *Manager) Attributes() Attributes { return attributesOf(m.active) }

// Editing reports whether the active tool is capturing the keyboard.
func (m *Manager) Editing() bool {
	t, ok := m.active.(typist)
	return ok && t.Editing()
}

// finish commits pending work of the active tool without switching.
func (m *Manager) finish() {
	if f, ok := m.active.(finisher); ok {
		f.finish()
	}
}

func (m *Manager) unsupported(a Attribute) error {
	return fmt.Errorf("%w: %s on %s", ErrUnsupportedAttribute, a, m.Kind())
}

func invalid(a Attribute, v any) error {
	return fmt.Errorf("%w: %s %v", ErrInvalidAttribute, a, v)
}

// SetThickness sets the stroke width of the active tool.
func (m *Manager) SetThickness(v float64) error {
	h, ok := m.active.(thicknessHolder)
	if !ok {
		return m.unsupported(AttrThickness)
	}
	if v < MinThickness || v > MaxThickness {
		return invalid(AttrThickness, v)
	}
	h.SetThickness(v)
	return nil
}

// SetStyle sets the render mode of the active shape tool.
func (m *Manager) SetStyle(s ShapeStyle) error {
	h, ok := m.active.(styleHolder)
	if !ok {
		return m.unsupported(AttrStyle)
	}
	if s < Outline || s > FilledOutline {
		return invalid(AttrStyle, s)
	}
	h.SetStyle(s)
	return nil
}

// SetSides sets the number of polygon sides.
func (m *Manager) SetSides(n int) error {
	h, ok := m.active.(sidesHolder)
	if !ok {
		return m.unsupported(AttrSides)
	}
	if n < MinSides || n > MaxSides {
		return invalid(AttrSides, n)
	}
	h.SetSides(n)
	return nil
}

// SetDots sets whether line vertices get dots and their radius.
func (m *Manager) SetDots(show bool, radius float64) error {
	h, ok := m.active.(dotsHolder)
	if !ok {
		return m.unsupported(AttrDots)
	}
	if radius < 1 || radius > MaxDotRadius {
		return invalid(AttrDots, radius)
	}
	h.SetShowDots(show)
	h.SetDotRadius(radius)
	return nil
}

// SetSpray sets the aerosol droplet diameter, frequency and jet diameter.
func (m *Manager) SetSpray(droplet float64, frequency int, jet float64) error {
	h, ok := m.active.(sprayHolder)
	if !ok {
		return m.unsupported(AttrSpray)
	}
	if droplet < 1 || droplet > MaxDroplet || frequency < 1 || frequency > MaxFrequency || jet < 1 || jet > MaxJet {
		return invalid(AttrSpray, []any{droplet, frequency, jet})
	}
	h.SetSpray(droplet, frequency, jet)
	return nil
}

// SetTolerance sets the paint bucket tolerance in percent.
func (m *Manager) SetTolerance(v int) error {
	h, ok := m.active.(toleranceHolder)
	if !ok {
		return m.unsupported(AttrTolerance)
	}
	if v < 0 || v > MaxTolerance {
		return invalid(AttrTolerance, v)
	}
	h.SetTolerance(v)
	return nil
}

// SetFont sets the text font.
func (m *Manager) SetFont(f FontSpec) error {
	h, ok := m.active.(fontHolder)
	if !ok {
		return m.unsupported(AttrFont)
	}
	if !fonts.Valid(fonts.Family(f.Family)) || f.Size < MinFontSize || f.Size > MaxFontSize ||
		f.Align < AlignStart || f.Align > AlignEnd {
		return invalid(AttrFont, f)
	}
	h.SetFont(f)
	return nil
}

// SetStamp sets the stamp design, scale and angle in degrees.
func (m *Manager) SetStamp(kind StampKind, scale, angle float64) error {
	h, ok := m.active.(stampHolder)
	if !ok {
		return m.unsupported(AttrStamp)
	}
	if !slices.Contains(StampKinds, kind) || scale < MinStampSize || scale > MaxStampSize {
		return invalid(AttrStamp, kind)
	}
	h.SetStamp(kind, scale, angle)
	return nil
}
