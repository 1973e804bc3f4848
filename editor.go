package paint

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math/rand/v2"

	// Decoders for Load.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/paint/internal/idgen"
)

// Editor is a drawing session: a surface, its history, the tools and the
// selection. Methods must be called from a single goroutine.
type Editor struct {
	id        string
	surface   Surface
	env       *env
	history   *History
	palette   *Palette
	grid      *Grid
	clipboard Clipboard
	selection *SelectionContext
	manager   *Manager
	decoder   *decoder
}

// New creates an editor on a width×height canvas. The Pencil is active.
func New(width, height int, opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.preset != nil {
		if bg, primary, secondary, err := o.preset.colors(); err == nil {
			o.background, o.primary, o.secondary = bg, primary, secondary
		}
	}

	s := o.surface
	if s == nil {
		s = NewCanvas(width, height, o.background)
	}
	seed1, seed2 := o.seed, o.seed
	if !o.seeded {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}

	e := &Editor{
		id:        idgen.UUIDv7()(),
		surface:   s,
		history:   NewHistory(s),
		palette:   NewPalette(o.primary, o.secondary),
		grid:      NewGrid(),
		selection: NewSelectionContext(),
		decoder:   newDecoder(s),
	}
	if err := e.grid.SetSize(o.gridSize); err != nil {
		Logger().Warn("paint: grid size not applied", slog.Any("err", err))
	}
	e.env = &env{
		surface:   s,
		history:   e.history,
		palette:   e.palette,
		grid:      e.grid,
		decoder:   e.decoder,
		newID:     o.newID,
		rand:      rand.New(rand.NewPCG(seed1, seed2)),
		arrowStep: o.arrowStep,
	}
	e.manager = newManager(e.env, e.selection)
	if o.preset != nil {
		if err := o.preset.apply(e); err != nil {
			Logger().Warn("paint: preset not applied", slog.Any("err", err))
		}
	}
	b := s.Bounds()
	Logger().Debug("editor created", slog.String("id", e.id), slog.Int("width", b.Dx()), slog.Int("height", b.Dy()))
	return e
}

// ID returns the session id.
func (e *Editor) ID() string { return e.id }

// Surface returns the surface the editor draws on.
func (e *Editor) Surface() Surface { return e.surface }

// Bounds returns the canvas size.
func (e *Editor) Bounds() image.Rectangle { return e.surface.Bounds() }

// Tools returns the tool manager.
func (e *Editor) Tools() *Manager { return e.manager }

// Colors returns the palette.
func (e *Editor) Colors() *Palette { return e.palette }

// Grid returns the grid settings.
func (e *Editor) Grid() *Grid { return e.grid }

// History returns the command history.
func (e *Editor) History() *History { return e.history }

// Selection returns the selection state.
func (e *Editor) Selection() *SelectionContext { return e.selection }

// SetTool activates a tool, committing pending work of the current one.
func (e *Editor) SetTool(k ToolKind) error {
	e.drain()
	return e.manager.Select(k)
}

// Image returns a copy of the committed drawing.
func (e *Editor) Image() *image.RGBA { return e.surface.Snapshot() }

// Preview returns a copy of the preview layer.
func (e *Editor) Preview() *image.RGBA {
	return e.surface.Region(LayerPreview, e.surface.Bounds())
}

// GridOverlay renders the grid, or returns nil when it is hidden.
func (e *Editor) GridOverlay() (*image.RGBA, error) {
	return e.grid.Overlay(e.surface.Bounds())
}

// applyDecode is the decoder callback.
func (e *Editor) applyDecode(r decodeResult) {
	e.selection.applyDecode(e.env, r)
}

// drain applies finished bitmap decodes. Every input handler calls it
// first.
func (e *Editor) drain() {
	e.decoder.drain(e.applyDecode)
}

// Settle waits for pending bitmap decodes and applies them.
func (e *Editor) Settle(ctx context.Context) error {
	return e.decoder.wait(ctx, e.applyDecode)
}

// PointerDown forwards a press to the active tool.
func (e *Editor) PointerDown(ev PointerEvent) {
	e.drain()
	e.manager.Active().PointerDown(ev)
}

// PointerMove forwards motion to the active tool.
func (e *Editor) PointerMove(ev PointerEvent) {
	e.drain()
	e.manager.Active().PointerMove(ev)
}

// PointerUp forwards a release to the active tool.
func (e *Editor) PointerUp(ev PointerEvent) {
	e.drain()
	e.manager.Active().PointerUp(ev)
}

// PointerLeave tells the active tool the pointer left the canvas.
func (e *Editor) PointerLeave(ev PointerEvent) {
	e.drain()
	e.manager.Active().PointerLeave(ev)
}

// KeyDown handles editor shortcuts and forwards other keys to the active
// tool. Shortcuts are off while the Text tool is editing.
func (e *Editor) KeyDown(ev KeyEvent) {
	e.drain()
	if !e.manager.Editing() && e.shortcut(ev) {
		return
	}
	e.manager.Active().KeyDown(ev)
}

// KeyUp forwards a key release to the active tool.
func (e *Editor) KeyUp(ev KeyEvent) {
	e.drain()
	e.manager.Active().KeyUp(ev)
}

// Wheel forwards a wheel event to the active tool if it uses the wheel.
func (e *Editor) Wheel(ev WheelEvent) {
	e.drain()
	if w, ok := e.manager.Active().(wheeler); ok {
		w.Wheel(ev)
	}
}

// Undo reverts the last command. An active selection is cancelled first.
func (e *Editor) Undo() error {
	e.drain()
	e.selection.cancel(e.env)
	return e.history.Undo()
}

// Redo re-applies the next command. An active selection is cancelled
// first.
func (e *Editor) Redo() error {
	e.drain()
	e.selection.cancel(e.env)
	return e.history.Redo()
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// IsSelectionActive reports whether a region is selected.
func (e *Editor) IsSelectionActive() bool { return e.selection.Active() }

// HasClipboardContent reports whether Paste has something to paste.
func (e *Editor) HasClipboardContent() bool { return !e.clipboard.Empty() }

// Copy puts the selected pixels on the clipboard.
func (e *Editor) Copy() {
	e.drain()
	if !e.selection.Active() {
		return
	}
	e.clipboard.Set(e.selection.Content())
}

// Cut copies the selection and removes it from the drawing.
func (e *Editor) Cut() {
	e.drain()
	if !e.selection.Active() {
		return
	}
	e.clipboard.Set(e.selection.Content())
	e.selection.vacate(e.env)
}

// Delete removes the selection from the drawing.
func (e *Editor) Delete() {
	e.drain()
	e.selection.vacate(e.env)
}

// Paste places the clipboard content at the top-left corner as a new
// selection. It does nothing when the clipboard is empty.
func (e *Editor) Paste() error {
	e.drain()
	content := e.clipboard.Content()
	if content == nil {
		return nil
	}
	if !e.manager.Kind().IsSelection() {
		if err := e.manager.Select(ToolSelectRectangle); err != nil {
			return err
		}
	}
	e.selection.commit(e.env)
	e.selection.activate(e.env, content, nil, image.Point{}, nil, SelectionShape{Kind: SelectionRect})
	return nil
}

// SelectAll selects the whole canvas with the rectangle selection.
func (e *Editor) SelectAll() error {
	e.drain()
	if err := e.manager.Select(ToolSelectRectangle); err != nil {
		return err
	}
	e.selection.commit(e.env)
	e.selection.capture(e.env, e.surface.Bounds(), SelectionShape{Kind: SelectionRect})
	return nil
}

// NewDrawing clears the canvas and the history.
func (e *Editor) NewDrawing() {
	e.drain()
	e.manager.finish()
	e.selection.commit(e.env)
	b := e.surface.Bounds()
	e.surface.Clear(LayerBase, b)
	e.surface.Clear(LayerPreview, b)
	e.history.Reset()
	Logger().Info("new drawing", slog.String("id", e.id))
}

// Load replaces the drawing with a decoded image and clears the history.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func (e *Editor) Load(r io.Reader) error {
	img, format, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("paint: load: %w", err)
	}
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	e.drain()
	e.manager.finish()
	e.selection.commit(e.env)
	e.surface.Restore(img)
	e.history.Reset()
	Logger().Info("image loaded", slog.String("format", format), slog.Any("bounds", img.Bounds()))
	return nil
}

// EncodePNG writes the committed drawing as PNG.
func (e *Editor) EncodePNG(w io.Writer) error {
	return png.Encode(w, e.surface.Snapshot())
}
