package paint

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"

	"github.com/gogpu/paint/internal/idgen"
)

// ToolKind identifies one of the editor's tools.
type ToolKind int

const (
	ToolPencil ToolKind = iota
	ToolEraser
	ToolLine
	ToolRectangle
	ToolEllipse
	ToolPolygon
	ToolAerosol
	ToolPaintBucket
	ToolPipette
	ToolStamp
	ToolText
	ToolSelectRectangle
	ToolSelectEllipse
	ToolSelectLasso

	toolCount
)

var toolNames = [toolCount]string{
	"pencil", "eraser", "line", "rectangle", "ellipse", "polygon", "aerosol",
	"paint-bucket", "pipette", "stamp", "text",
	"select-rectangle", "select-ellipse", "select-lasso",
}

func (k ToolKind) String() string {
	if k < 0 || k >= toolCount {
		return fmt.Sprintf("ToolKind(%d)", int(k))
	}
	return toolNames[k]
}

// IsSelection reports whether k is one of the selection tools.
func (k ToolKind) IsSelection() bool {
	return k == ToolSelectRectangle || k == ToolSelectEllipse || k == ToolSelectLasso
}

// ParseToolKind resolves a tool name as returned by ToolKind.String.
func ParseToolKind(name string) (ToolKind, error) {
	for i, n := range toolNames {
		if n == name {
			return ToolKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Tool is an interactive tool. Handlers run on the event goroutine.
//
// A tool draws feedback on the preview layer while a gesture is in
// progress and commits at most one Command per gesture. Leaving the
// canvas mid-gesture either finalizes or aborts the gesture; it never
// leaves a half-drawn preview.
type Tool interface {
	Kind() ToolKind
	PointerDown(ev PointerEvent)
	PointerMove(ev PointerEvent)
	PointerUp(ev PointerEvent)
	PointerLeave(ev PointerEvent)
	KeyDown(ev KeyEvent)
	KeyUp(ev KeyEvent)
}

// finisher is implemented by tools holding uncommitted work that must be
// committed before another tool becomes active.
type finisher interface {
	finish()
}

// wheeler is implemented by tools reacting to the pointer wheel.
type wheeler interface {
	Wheel(ev WheelEvent)
}

// previewer is implemented by commands that can draw themselves on the
// preview layer.
type previewer interface {
	primitives() []Primitive
}

// env is what tools share: the surface, the history, the colors and the
// grid. Tools never reach the Editor directly.
type env struct {
	surface   Surface
	history   *History
	palette   *Palette
	grid      *Grid
	decoder   *decoder
	newID     idgen.Generator
	rand      *rand.Rand
	arrowStep float64
}

// commit applies cmd to the base layer and records it. The preview is
// cleared either way.
func (e *env) commit(cmd Command) {
	e.clearPreview()
	if err := cmd.Apply(e.surface); err != nil {
		Logger().Warn("paint: command not applied",
			slog.String("kind", string(cmd.Kind())), slog.Any("err", err))
		return
	}
	e.history.Add(cmd)
}

func (e *env) id() meta {
	return meta{CommandID: e.newID()}
}

func (e *env) clearPreview() {
	e.surface.Clear(LayerPreview, e.surface.Bounds())
}

// preview replaces the preview layer with ps.
func (e *env) preview(ps ...Primitive) {
	e.clearPreview()
	for _, p := range ps {
		if err := e.surface.Draw(LayerPreview, p); err != nil {
			Logger().Warn("paint: preview failed", slog.Any("err", err))
			return
		}
	}
}

// previewCommand draws cmd on the preview layer.
func (e *env) previewCommand(cmd previewer) {
	e.preview(cmd.primitives()...)
}

func (e *env) background() color.NRGBA {
	return e.surface.Background()
}

// baseTool provides the kind and no-op handlers for tools to override.
type baseTool struct {
	env  *env
	kind ToolKind
}

func (t *baseTool) Kind() ToolKind          { return t.kind }
func (*baseTool) PointerDown(PointerEvent)  {}
func (*baseTool) PointerMove(PointerEvent)  {}
func (*baseTool) PointerUp(PointerEvent)    {}
func (*baseTool) PointerLeave(PointerEvent) {}
func (*baseTool) KeyDown(KeyEvent)          {}
func (*baseTool) KeyUp(KeyEvent)            {}
