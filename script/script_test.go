package script

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/paint"
)

const session = `
width: 120
height: 80
seed: 3
steps:
  - tool: rectangle
  - style: filled
  - primary: "#ff0000"
  - drag: [[10, 10], [40, 30], [60, 40]]
  - tool: select-rectangle
  - drag: [[5, 5], [65, 45]]
  - drag: [[30, 20], [80, 50]]
  - action: copy
  - tool: pencil
  - action: undo
  - action: redo
`

func run(t *testing.T, src string) *paint.Editor {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e, err := s.Editor()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(context.Background(), e); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return e
}

func TestRunSession(t *testing.T) {
	e := run(t, session)
	if e.Bounds().Dx() != 120 || e.Bounds().Dy() != 80 {
		t.Fatalf("bounds = %v", e.Bounds())
	}
	img := e.Image()
	red := color.RGBA{R: 0xff, A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// The square moved by (50, 30).
	if got := img.RGBAAt(80, 50); got != red {
		t.Errorf("moved pixel = %v, want red", got)
	}
	if got := img.RGBAAt(20, 20); got != white {
		t.Errorf("vacated pixel = %v, want white", got)
	}
	if !e.HasClipboardContent() {
		t.Error("copy step left the clipboard empty")
	}
	cmds := e.History().Commands()
	if len(cmds) != 2 || cmds[0].ID() != "cmd-1" || cmds[1].ID() != "cmd-2" {
		t.Errorf("history ids = %v", cmds)
	}
}

func TestRunDeterministic(t *testing.T) {
	src := `
seed: 9
width: 60
height: 60
steps:
  - tool: aerosol
  - drag: [[20, 20], [30, 30], [40, 20]]
  - tool: text
  - click: [5, 5]
  - type: "hi\nthere"
  - tool: stamp
  - wheel: 1
  - click: [40, 40]
`
	a, b := run(t, src), run(t, src)
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("two runs of the same script differ")
	}
	if n := a.History().Len(); n != 3 {
		t.Errorf("history len = %d, want 3", n)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"two actions", "steps:\n  - tool: pencil\n    action: undo\n", ErrBadStep},
		{"no action", "steps:\n  - shift: true\n", ErrBadStep},
		{"unknown tool", "steps:\n  - tool: brush\n", paint.ErrUnknownTool},
		{"bad style", "steps:\n  - tool: rectangle\n  - style: dotted\n", paint.ErrInvalidAttribute},
		{"unsupported", "steps:\n  - sides: 5\n", paint.ErrUnsupportedAttribute},
		{"unknown action", "steps:\n  - action: fly\n", nil},
		{"unknown button", "steps:\n  - click: [1, 1]\n    button: fourth\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			e, _ := s.Editor()
			err = s.Run(context.Background(), e)
			if err == nil {
				t.Fatal("Run error = nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Run error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse(strings.NewReader("colour: red\n")); err == nil {
		t.Error("Parse accepted an unknown field")
	}
	s, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("defaults = %dx%d", s.Width, s.Height)
	}
}

func TestRunCancelled(t *testing.T) {
	s, _ := Parse(strings.NewReader("steps:\n  - tool: pencil\n"))
	e, _ := s.Editor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Run(ctx, e); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}
