package paint

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/paint/internal/mask"
)

// SelectionState is the phase of the selection life cycle.
type SelectionState int

const (
	SelectionIdle SelectionState = iota
	SelectionMarking
	SelectionActive
	SelectionDragging
	SelectionResizing
)

var selectionStateNames = [...]string{"idle", "marking", "active", "dragging", "resizing"}

func (s SelectionState) String() string {
	if s < 0 || int(s) >= len(selectionStateNames) {
		return fmt.Sprintf("SelectionState(%d)", int(s))
	}
	return selectionStateNames[s]
}

// SelectionKind is the outline of a selection.
type SelectionKind int

const (
	SelectionRect SelectionKind = iota
	SelectionEllipse
	SelectionLasso
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionRect:
		return "rectangle"
	case SelectionEllipse:
		return "ellipse"
	case SelectionLasso:
		return "lasso"
	}
	return fmt.Sprintf("SelectionKind(%d)", int(k))
}

// SelectionShape is the outline a region was captured with.
type SelectionShape struct {
	Kind SelectionKind `json:"kind"`
	// Path holds the lasso vertices relative to the captured top-left.
	Path []Vec2 `json:"path,omitempty"`
	// Frame is the box of an ellipse cut by the canvas edge, relative to
	// the captured top-left. It is empty when the ellipse fits.
	Frame image.Rectangle `json:"frame"`
}

// Mask returns the binary coverage of the shape over a region of the
// given size.
func (s SelectionShape) Mask(size image.Point) *image.Alpha {
	switch s.Kind {
	case SelectionEllipse:
		if s.Frame.Empty() {
			return mask.Ellipse(size.X, size.Y)
		}
		full := mask.Ellipse(s.Frame.Dx(), s.Frame.Dy())
		m := image.NewAlpha(image.Rectangle{Max: size})
		draw.Draw(m, m.Bounds(), full, s.Frame.Min.Mul(-1), draw.Src)
		return m
	case SelectionLasso:
		return mask.Polygon(size.X, size.Y, toF64(s.Path))
	}
	return mask.Full(size.X, size.Y)
}

func toF64(pts []Vec2) []f64.Vec2 {
	out := make([]f64.Vec2, len(pts))
	for i, p := range pts {
		out[i] = f64.Vec2{p.X, p.Y}
	}
	return out
}

func fromF64(pts []f64.Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = V(p[0], p[1])
	}
	return out
}

// SelectionContext is the state of the current selection. The Editor
// owns one and the tool manager hands it to whichever selection tool is
// active, so a selection survives switching between selection tools.
type SelectionContext struct {
	state       SelectionState
	topLeft     image.Point
	size        image.Point
	initial     *image.Point
	initialSize image.Point

	// content is what will be stamped, at the current size. raw is the
	// untouched capture, restored on cancel.
	content *image.RGBA
	raw     *image.RGBA
	shape   SelectionShape

	flipX, flipY bool
	magnetism    bool

	// generation increases whenever the content changes. A decoded bitmap
	// is only shown if it was requested by the current generation.
	generation uint64
	bitmap     *image.RGBA
}

// NewSelectionContext returns an idle selection.
func NewSelectionContext() *SelectionContext {
	return &SelectionContext{}
}

// State returns the current phase.
func (s *SelectionContext) State() SelectionState { return s.state }

// Started reports whether a selection is being marked or is active.
func (s *SelectionContext) Started() bool { return s.state != SelectionIdle }

// Active reports whether a region has been captured.
func (s *SelectionContext) Active() bool { return s.state >= SelectionActive }

// Bounds returns the current placement of the selected region.
func (s *SelectionContext) Bounds() image.Rectangle {
	return image.Rectangle{Min: s.topLeft, Max: s.topLeft.Add(s.size)}
}

// Initial returns where the region was captured from. ok is false for
// pasted content.
func (s *SelectionContext) Initial() (p image.Point, ok bool) {
	if s.initial == nil {
		return image.Point{}, false
	}
	return *s.initial, true
}

// Content returns the selected pixels at their current size.
func (s *SelectionContext) Content() *image.RGBA { return s.content }

// Shape returns the outline the region was captured with.
func (s *SelectionContext) Shape() SelectionShape { return s.shape }

// Magnetism reports whether moves snap to the grid.
func (s *SelectionContext) Magnetism() bool { return s.magnetism }

// SetMagnetism turns grid snapping on or off. It only applies while a
// selection is active.
func (s *SelectionContext) SetMagnetism(on bool) {
	s.magnetism = on && s.Active()
}

// Generation returns the decode generation.
func (s *SelectionContext) Generation() uint64 { return s.generation }

// Bitmap returns the decoded bitmap shown on the preview, if any.
func (s *SelectionContext) Bitmap() *image.RGBA { return s.bitmap }

func (s *SelectionContext) setState(st SelectionState) {
	if s.state == st {
		return
	}
	Logger().Debug("selection state", slog.String("from", s.state.String()), slog.String("to", st.String()))
	s.state = st
}

func (s *SelectionContext) reset() {
	s.setState(SelectionIdle)
	s.topLeft, s.size, s.initial, s.initialSize = image.Point{}, image.Point{}, nil, image.Point{}
	s.content, s.raw, s.bitmap = nil, nil, nil
	s.shape = SelectionShape{}
	s.flipX, s.flipY, s.magnetism = false, false, false
	s.generation++
}

// capture lifts the region r of the base out with the given shape and
// makes it the active selection. Outside the shape the content is
// transparent; transparent pixels inside it become opaque white. The
// region left behind is filled with the background through the same
// mask.
func (s *SelectionContext) capture(e *env, r image.Rectangle, shape SelectionShape) {
	raw := e.surface.Region(LayerBase, r)
	m := shape.Mask(r.Size())
	content := image.NewRGBA(raw.Bounds())
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			if !mask.Inside(m, x, y) {
				continue
			}
			c := raw.RGBAAt(x, y)
			if c.A == 0 {
				c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			}
			content.SetRGBA(x, y, c)
		}
	}
	if err := e.surface.Draw(LayerBase, MaskPrimitive{Mask: m, At: r.Min, Color: e.background()}); err != nil {
		Logger().Warn("paint: selection vacate failed", slog.Any("err", err))
	}
	at := r.Min
	s.activate(e, content, raw, r.Min, &at, shape)
}

// activate makes content the active selection at topLeft. initial is nil
// for content that was not lifted from the base.
func (s *SelectionContext) activate(e *env, content, raw *image.RGBA, topLeft image.Point, initial *image.Point, shape SelectionShape) {
	s.topLeft = topLeft
	s.size = content.Bounds().Size()
	s.initial = initial
	s.initialSize = s.size
	s.content, s.raw = content, raw
	s.shape = shape
	s.flipX, s.flipY = false, false
	s.setState(SelectionActive)
	s.redecode(e)
	s.render(e)
}

// redecode invalidates the shown bitmap and requests a new one for the
// current content.
func (s *SelectionContext) redecode(e *env) {
	s.generation++
	s.bitmap = nil
	e.decoder.schedule(s.generation, s.content)
}

// applyDecode installs a finished bitmap if it is still current.
func (s *SelectionContext) applyDecode(e *env, r decodeResult) {
	if r.gen != s.generation || !s.Active() {
		Logger().Debug("selection: stale bitmap dropped", slog.Uint64("generation", r.gen))
		return
	}
	s.bitmap = r.img
	s.render(e)
}

// commit stamps the content at its current place and records it.
func (s *SelectionContext) commit(e *env) {
	if !s.Active() {
		return
	}
	final := s.topLeft
	cmd := SelectionCommand{
		meta:    e.id(),
		Content: s.content,
		Size:    s.initialSize,
		Initial: s.initial,
		Final:   &final,
		Shape:   s.shape,
	}
	s.reset()
	e.commit(cmd)
}

// cancel puts the captured pixels back exactly where they were. Pasted
// content is dropped.
func (s *SelectionContext) cancel(e *env) {
	if !s.Started() {
		return
	}
	if s.Active() && s.initial != nil {
		restore := ImagePrimitive{Image: s.raw, At: *s.initial, Mask: s.shape.Mask(s.initialSize), Op: draw.Src}
		if err := e.surface.Draw(LayerBase, restore); err != nil {
			Logger().Warn("paint: selection restore failed", slog.Any("err", err))
		}
	}
	s.reset()
	e.clearPreview()
}

// vacate drops the content and records the vacated region, as cut and
// delete do. Pasted content leaves nothing to record.
func (s *SelectionContext) vacate(e *env) {
	if !s.Active() {
		return
	}
	if s.initial == nil {
		s.reset()
		e.clearPreview()
		return
	}
	cmd := SelectionCommand{
		meta:    e.id(),
		Content: image.NewRGBA(image.Rect(0, 0, 1, 1)),
		Size:    s.initialSize,
		Initial: s.initial,
		Shape:   s.shape,
	}
	s.reset()
	e.commit(cmd)
}

// move shifts the selection by d.
func (s *SelectionContext) move(e *env, d image.Point) {
	s.topLeft = s.topLeft.Add(d)
	s.render(e)
}

// arrow moves the selection for an arrow key: a fixed step, or to the
// next grid line in that direction with magnetism on.
func (s *SelectionContext) arrow(e *env, k Key) {
	step := int(e.arrowStep)
	g := e.grid.Magnetism()
	b := s.Bounds()
	var d image.Point
	switch k {
	case KeyArrowUp:
		d.Y = -step
		if s.magnetism {
			d.Y = -int(g.NearestLineTop(float64(b.Min.Y)))
		}
	case KeyArrowDown:
		d.Y = step
		if s.magnetism {
			d.Y = -int(g.NearestLineDown(float64(b.Max.Y)))
		}
	case KeyArrowLeft:
		d.X = -step
		if s.magnetism {
			d.X = -int(g.NearestLineLeft(float64(b.Min.X)))
		}
	case KeyArrowRight:
		d.X = step
		if s.magnetism {
			d.X = -int(g.NearestLineRight(float64(b.Max.X)))
		}
	default:
		return
	}
	s.move(e, d)
}

// resizeTo applies a resize layout, resampling from src.
func (s *SelectionContext) resizeTo(e *env, src *image.RGBA, l resizeLayout, flipX, flipY bool) {
	s.topLeft = l.bounds.Min
	s.size = l.bounds.Size()
	s.content = resample(src, s.size, l.flipX, l.flipY)
	s.flipX, s.flipY = flipX != l.flipX, flipY != l.flipY
	s.render(e)
}

// outline returns the lasso path fitted to the current bounds.
func (s *SelectionContext) outline() []Vec2 {
	if s.shape.Kind != SelectionLasso || len(s.shape.Path) == 0 {
		return nil
	}
	sw, sh := float64(s.initialSize.X), float64(s.initialSize.Y)
	dw, dh := float64(s.size.X), float64(s.size.Y)
	pts := fromF64(mask.Scale(toF64(s.shape.Path), sw, sh, dw, dh))
	origin := VecFromPoint(s.topLeft)
	for i, p := range pts {
		if s.flipX {
			p.X = dw - p.X
		}
		if s.flipY {
			p.Y = dh - p.Y
		}
		pts[i] = origin.Add(p)
	}
	return pts
}

// render draws the selection feedback: the bitmap, the dashed frame and
// the resize handles. While resizing the live content is drawn instead
// of the bitmap.
func (s *SelectionContext) render(e *env) {
	if !s.Active() {
		return
	}
	var ps []Primitive
	img := s.bitmap
	if s.state == SelectionResizing {
		img = s.content
	}
	if img != nil {
		ps = append(ps, ImagePrimitive{Image: img, At: s.topLeft, Op: draw.Over})
	}
	b := s.Bounds()
	ps = append(ps, dashedBox(VecFromPoint(b.Min), VecFromPoint(b.Max)))
	if pts := s.outline(); len(pts) > 0 {
		ps = append(ps, StrokePrimitive{Points: pts, Width: 1, Color: Black, Cap: CapButt, Closed: true, Dash: []float64{4, 4}})
	}
	for h := HandleTopLeft; h <= HandleLeft; h++ {
		q := h.position(b)
		ps = append(ps, RectPrimitive{A: q.Sub(V(3, 3)), B: q.Add(V(3, 3)), Style: Filled, Fill: Black})
	}
	e.preview(ps...)
}

// dashedBox outlines the box from a to b.
func dashedBox(a, b Vec2) StrokePrimitive {
	return StrokePrimitive{
		Points: []Vec2{a, V(b.X, a.Y), b, V(a.X, b.Y)},
		Width:  1,
		Color:  Black,
		Cap:    CapButt,
		Closed: true,
		Dash:   []float64{4, 4},
	}
}
