package paint

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/gogpu/paint/internal/idgen"
)

func newTestEditor(t *testing.T, w, h int) *Editor {
	t.Helper()
	return New(w, h, WithSeed(7), WithIDGenerator(idgen.Sequence("cmd")))
}

func settle(t *testing.T, e *Editor) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Settle(ctx); err != nil {
		t.Fatalf("Settle: %v", err)
	}
}

func drag(e *Editor, from, to Vec2) {
	e.PointerDown(PointerEvent{Pos: from, Clicks: 1})
	e.PointerMove(PointerEvent{Pos: from.Add(to).Mul(0.5)})
	e.PointerMove(PointerEvent{Pos: to})
	e.PointerUp(PointerEvent{Pos: to})
}

func pixel(e *Editor, x, y int) color.RGBA {
	return e.Image().RGBAAt(x, y)
}

func TestEditorFilledRectangleUndoRedo(t *testing.T) {
	e := newTestEditor(t, 100, 80)
	e.Colors().SetPrimary(red)
	if err := e.SetTool(ToolRectangle); err != nil {
		t.Fatal(err)
	}
	if err := e.Tools().SetStyle(Filled); err != nil {
		t.Fatal(err)
	}
	blank := e.Image()

	drag(e, V(10, 10), V(60, 40))
	drawn := e.Image()
	if got := drawn.RGBAAt(30, 25); got != rgba(red) {
		t.Fatalf("inside pixel = %v, want red", got)
	}
	if got := drawn.RGBAAt(70, 50); got != rgba(White) {
		t.Errorf("outside pixel = %v, want white", got)
	}
	if n := e.History().Len(); n != 1 {
		t.Fatalf("history len = %d, want 1", n)
	}
	if cmd := e.History().Commands()[0]; cmd.Kind() != KindRectangle || cmd.ID() != "cmd-1" {
		t.Errorf("recorded %s %q, want rectangle cmd-1", cmd.Kind(), cmd.ID())
	}
	if e.Preview().RGBAAt(30, 25).A != 0 {
		t.Error("preview not cleared after commit")
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(e.Image().Pix, blank.Pix) {
		t.Error("undo did not restore the blank canvas")
	}
	if err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(e.Image().Pix, drawn.Pix) {
		t.Error("redo is not byte-identical to the original drawing")
	}
}

func TestEditorShapePreviewOnly(t *testing.T) {
	e := newTestEditor(t, 60, 60)
	_ = e.SetTool(ToolRectangle)
	_ = e.Tools().SetStyle(Filled)
	e.PointerDown(PointerEvent{Pos: V(5, 5)})
	e.PointerMove(PointerEvent{Pos: V(30, 30)})
	if e.Preview().RGBAAt(15, 15).A == 0 {
		t.Error("no preview while dragging")
	}
	if e.History().Len() != 0 {
		t.Error("command recorded before release")
	}
	e.KeyDown(KeyEvent{Key: KeyEscape})
	if e.Preview().RGBAAt(15, 15).A != 0 {
		t.Error("escape left the preview")
	}
	e.PointerUp(PointerEvent{Pos: V(30, 30)})
	if e.History().Len() != 0 {
		t.Error("escaped drag was committed")
	}
}

// selectBox marks a rectangle selection and waits for its bitmap.
func selectBox(t *testing.T, e *Editor, from, to Vec2) {
	t.Helper()
	if err := e.SetTool(ToolSelectRectangle); err != nil {
		t.Fatal(err)
	}
	drag(e, from, to)
	settle(t, e)
	if !e.IsSelectionActive() {
		t.Fatalf("selection state = %v, want active", e.Selection().State())
	}
}

func drawRedSquare(t *testing.T, e *Editor) {
	t.Helper()
	e.Colors().SetPrimary(red)
	_ = e.SetTool(ToolRectangle)
	_ = e.Tools().SetStyle(Filled)
	drag(e, V(10, 10), V(30, 30))
}

func TestEditorSelectionMoveUndoRedo(t *testing.T) {
	e := newTestEditor(t, 100, 100)
	drawRedSquare(t, e)
	selectBox(t, e, V(5, 5), V(40, 40))

	if got := e.Selection().Bounds(); got != image.Rect(5, 5, 40, 40) {
		t.Fatalf("selection bounds = %v", got)
	}
	if p, ok := e.Selection().Initial(); !ok || p != image.Pt(5, 5) {
		t.Fatalf("Initial = %v, %v", p, ok)
	}
	if e.Selection().Bitmap() == nil {
		t.Error("bitmap not decoded after Settle")
	}

	drag(e, V(20, 20), V(50, 40))
	if got := e.Selection().Bounds(); got != image.Rect(35, 25, 70, 60) {
		t.Fatalf("moved bounds = %v, want (35,25)-(70,60)", got)
	}
	if err := e.SetTool(ToolPencil); err != nil {
		t.Fatal(err)
	}
	if e.IsSelectionActive() {
		t.Fatal("selection still active after switching tools")
	}

	moved := e.Image()
	if got := moved.RGBAAt(50, 40); got != rgba(red) {
		t.Errorf("moved pixel = %v, want red", got)
	}
	if got := moved.RGBAAt(12, 12); got != rgba(White) {
		t.Errorf("vacated pixel = %v, want white", got)
	}
	cmds := e.History().Commands()
	if len(cmds) != 2 || cmds[1].Kind() != KindSelection {
		t.Fatalf("history = %d commands, want rectangle then selection", len(cmds))
	}

	_ = e.Undo()
	if got := pixel(e, 12, 12); got != rgba(red) {
		t.Errorf("after undo pixel = %v, want red", got)
	}
	if got := pixel(e, 50, 40); got != rgba(White) {
		t.Errorf("after undo moved pixel = %v, want white", got)
	}
	_ = e.Redo()
	if !bytes.Equal(e.Image().Pix, moved.Pix) {
		t.Error("redo of the move is not byte-identical")
	}
}

func TestEditorEllipseSelectionClippedAtEdge(t *testing.T) {
	e := newTestEditor(t, 100, 100)
	blank := e.Image()
	drawRedSquare(t, e)

	_ = e.SetTool(ToolSelectEllipse)
	drag(e, V(-20, -10), V(30, 30))
	settle(t, e)
	if !e.IsSelectionActive() {
		t.Fatalf("selection state = %v, want active", e.Selection().State())
	}
	if got := e.Selection().Bounds(); got != image.Rect(0, 0, 30, 30) {
		t.Fatalf("selection bounds = %v, want (0,0)-(30,30)", got)
	}

	drag(e, V(15, 15), V(45, 40))
	settle(t, e)
	if got := e.Selection().Bounds(); got != image.Rect(30, 25, 60, 55) {
		t.Fatalf("moved bounds = %v, want (30,25)-(60,55)", got)
	}
	_ = e.SetTool(ToolPencil)

	cmds := e.History().Commands()
	if len(cmds) != 2 {
		t.Fatalf("recorded %d commands, want 2", len(cmds))
	}
	sc, ok := cmds[1].(SelectionCommand)
	if !ok {
		t.Fatalf("second command = %T, want SelectionCommand", cmds[1])
	}
	if want := image.Rect(-20, -10, 30, 30); sc.Shape.Kind != SelectionEllipse || sc.Shape.Frame != want {
		t.Errorf("shape = %v %v, want ellipse framed at %v", sc.Shape.Kind, sc.Shape.Frame, want)
	}

	final := e.Image()
	if got := final.RGBAAt(42, 37); got != rgba(red) {
		t.Errorf("moved pixel = %v, want red", got)
	}
	if got := final.RGBAAt(12, 12); got != rgba(White) {
		t.Errorf("vacated pixel = %v, want white", got)
	}

	for e.CanUndo() {
		if err := e.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(e.Image().Pix, blank.Pix) {
		t.Error("undoing everything did not restore the blank canvas")
	}
	for e.CanRedo() {
		if err := e.Redo(); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(e.Image().Pix, final.Pix) {
		t.Error("redoing everything is not byte-identical")
	}
}

func TestEditorSelectionCancelRestoresExactly(t *testing.T) {
	e := newTestEditor(t, 80, 80)
	drawRedSquare(t, e)
	before := e.Image()

	_ = e.SetTool(ToolSelectEllipse)
	drag(e, V(0, 0), V(50, 50))
	if !e.IsSelectionActive() {
		t.Fatal("no selection")
	}
	drag(e, V(25, 25), V(45, 30))
	e.KeyDown(KeyEvent{Key: KeyArrowLeft})
	e.KeyDown(KeyEvent{Key: KeyEscape})

	if e.IsSelectionActive() {
		t.Fatal("selection still active after escape")
	}
	if !bytes.Equal(e.Image().Pix, before.Pix) {
		t.Error("cancel did not restore the original pixels")
	}
	if e.History().Len() != 1 {
		t.Errorf("history len = %d, want 1", e.History().Len())
	}
}

func TestEditorArrowKeysMoveSelection(t *testing.T) {
	e := New(100, 100, WithArrowStep(4))
	selectBox(t, e, V(10, 10), V(30, 30))
	e.KeyDown(KeyEvent{Key: KeyArrowRight})
	e.KeyDown(KeyEvent{Key: KeyArrowDown})
	if got := e.Selection().Bounds().Min; got != image.Pt(14, 14) {
		t.Errorf("after arrows Min = %v, want (14,14)", got)
	}

	e.KeyDown(KeyEvent{Key: "m"})
	if !e.Selection().Magnetism() {
		t.Fatal("m did not enable magnetism")
	}
	e.KeyDown(KeyEvent{Key: KeyArrowRight})
	// Right edge 34 snaps to the grid line at 50.
	if got := e.Selection().Bounds().Max.X; got != 50 {
		t.Errorf("magnetic right edge = %d, want 50", got)
	}
}

func TestEditorPasteWithEmptyClipboard(t *testing.T) {
	e := newTestEditor(t, 40, 40)
	if e.HasClipboardContent() {
		t.Fatal("new editor has clipboard content")
	}
	if err := e.Paste(); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if e.Tools().Kind() != ToolPencil || e.IsSelectionActive() || e.History().Len() != 0 {
		t.Error("paste with empty clipboard changed the editor")
	}
}

func TestEditorCopyPaste(t *testing.T) {
	e := newTestEditor(t, 100, 100)
	drawRedSquare(t, e)
	selectBox(t, e, V(10, 10), V(30, 30))
	e.KeyDown(KeyEvent{Key: "c", Ctrl: true})
	if !e.HasClipboardContent() {
		t.Fatal("copy left the clipboard empty")
	}
	_ = e.SetTool(ToolPencil)

	e.KeyDown(KeyEvent{Key: "v", Ctrl: true})
	if e.Tools().Kind() != ToolSelectRectangle {
		t.Errorf("paste switched to %v, want select-rectangle", e.Tools().Kind())
	}
	if got := e.Selection().Bounds(); got != image.Rect(0, 0, 20, 20) {
		t.Errorf("pasted bounds = %v, want (0,0)-(20,20)", got)
	}
	if _, ok := e.Selection().Initial(); ok {
		t.Error("pasted selection has an initial position")
	}
	drag(e, V(10, 10), V(70, 70))
	_ = e.SetTool(ToolPencil)
	if got := pixel(e, 65, 65); got != rgba(red) {
		t.Errorf("pasted pixel = %v, want red", got)
	}
	if got := pixel(e, 20, 20); got != rgba(red) {
		t.Errorf("source pixel = %v, want red", got)
	}
}

func TestEditorCutAndDelete(t *testing.T) {
	e := newTestEditor(t, 60, 60)
	drawRedSquare(t, e)
	selectBox(t, e, V(10, 10), V(30, 30))
	e.Cut()
	if e.IsSelectionActive() || !e.HasClipboardContent() {
		t.Fatal("cut did not clear the selection into the clipboard")
	}
	if got := pixel(e, 20, 20); got != rgba(White) {
		t.Errorf("cut pixel = %v, want white", got)
	}
	if n := e.History().Len(); n != 2 {
		t.Errorf("history len = %d, want 2", n)
	}
	_ = e.Undo()
	if got := pixel(e, 20, 20); got != rgba(red) {
		t.Errorf("undo cut pixel = %v, want red", got)
	}

	selectBox(t, e, V(10, 10), V(30, 30))
	e.KeyDown(KeyEvent{Key: KeyDelete})
	if got := pixel(e, 20, 20); got != rgba(White) {
		t.Errorf("deleted pixel = %v, want white", got)
	}
}

func TestEditorSelectAll(t *testing.T) {
	e := newTestEditor(t, 30, 20)
	e.KeyDown(KeyEvent{Key: "a", Ctrl: true})
	if got := e.Selection().Bounds(); got != image.Rect(0, 0, 30, 20) {
		t.Errorf("select all bounds = %v", got)
	}
}

func TestEditorShortcuts(t *testing.T) {
	e := newTestEditor(t, 40, 40)
	tests := []struct {
		key  Key
		want ToolKind
	}{
		{"1", ToolRectangle},
		{"2", ToolEllipse},
		{"3", ToolPolygon},
		{"l", ToolLine},
		{"b", ToolPaintBucket},
		{"i", ToolPipette},
		{"d", ToolStamp},
		{"s", ToolSelectEllipse},
		{"c", ToolPencil},
	}
	for _, tt := range tests {
		e.KeyDown(KeyEvent{Key: tt.key})
		if got := e.Tools().Kind(); got != tt.want {
			t.Errorf("key %q selected %v, want %v", tt.key, got, tt.want)
		}
	}

	e.KeyDown(KeyEvent{Key: "g"})
	if !e.Grid().Visible() {
		t.Error("g did not show the grid")
	}
	e.KeyDown(KeyEvent{Key: "+"})
	if e.Grid().Size() != DefaultGridSize+GridStep {
		t.Errorf("grid size = %d after +", e.Grid().Size())
	}
	e.KeyDown(KeyEvent{Key: "-"})
	if e.Grid().Size() != DefaultGridSize {
		t.Errorf("grid size = %d after -", e.Grid().Size())
	}
}

func TestEditorUndoShortcut(t *testing.T) {
	e := newTestEditor(t, 60, 60)
	drawRedSquare(t, e)
	e.KeyDown(KeyEvent{Key: "z", Ctrl: true})
	if e.CanUndo() || !e.CanRedo() {
		t.Fatal("ctrl+z did not undo")
	}
	e.KeyDown(KeyEvent{Key: "z", Ctrl: true, Shift: true})
	if got := pixel(e, 20, 20); got != rgba(red) {
		t.Errorf("ctrl+shift+z pixel = %v, want red", got)
	}
}

func TestEditorTextCommitOnToolSwitch(t *testing.T) {
	e := newTestEditor(t, 120, 60)
	_ = e.SetTool(ToolText)
	e.PointerDown(PointerEvent{Pos: V(10, 10)})
	if !e.Tools().Editing() {
		t.Fatal("click did not open a text box")
	}
	for _, k := range []Key{"H", "1", "g"} {
		e.KeyDown(KeyEvent{Key: k})
	}
	if e.Tools().Kind() != ToolText || e.Grid().Visible() {
		t.Fatal("shortcuts fired while typing")
	}
	if err := e.SetTool(ToolPencil); err != nil {
		t.Fatal(err)
	}
	cmds := e.History().Commands()
	if len(cmds) != 1 || cmds[0].Kind() != KindText {
		t.Fatalf("history = %v, want one text command", cmds)
	}
	if got := cmds[0].(TextCommand).Lines; len(got) != 1 || got[0] != "H1g" {
		t.Errorf("text lines = %q, want [H1g]", got)
	}
}

func TestEditorWhitespaceTextDropped(t *testing.T) {
	e := newTestEditor(t, 60, 60)
	_ = e.SetTool(ToolText)
	e.PointerDown(PointerEvent{Pos: V(5, 5)})
	e.KeyDown(KeyEvent{Key: " "})
	e.KeyDown(KeyEvent{Key: KeyEnter})
	e.PointerDown(PointerEvent{Pos: V(30, 30)})
	if e.History().Len() != 0 {
		t.Error("whitespace-only text was committed")
	}
}

func TestEditorLoadAndNewDrawing(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	src.SetNRGBA(3, 3, blue)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	e := newTestEditor(t, 40, 40)
	drawRedSquare(t, e)
	if err := e.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if e.Bounds() != image.Rect(0, 0, 12, 8) {
		t.Errorf("bounds after load = %v", e.Bounds())
	}
	if got := pixel(e, 3, 3); got != rgba(blue) {
		t.Errorf("loaded pixel = %v, want blue", got)
	}
	if e.CanUndo() {
		t.Error("history survived Load")
	}
	if err := e.Load(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Load accepted garbage")
	}

	e.NewDrawing()
	if got := pixel(e, 3, 3); got != rgba(White) {
		t.Errorf("pixel after NewDrawing = %v, want white", got)
	}
}

func TestEditorEncodePNG(t *testing.T) {
	e := newTestEditor(t, 16, 16)
	var buf bytes.Buffer
	if err := e.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}
}
