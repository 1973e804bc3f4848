package paint

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/paint/internal/fonts"
)

// FontFamily names a text font family.
type FontFamily string

const (
	FontSans FontFamily = FontFamily(fonts.Sans)
	FontMono FontFamily = FontFamily(fonts.Mono)
)

// TextAlign aligns the lines of a text box.
type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

// lineSpacing scales ascent plus descent into the distance between
// baselines.
const lineSpacing = 1.2

// FontSpec is the face and layout of a text box.
type FontSpec struct {
	Family FontFamily `json:"family"`
	Size   float64    `json:"size"`
	Bold   bool       `json:"bold"`
	Italic bool       `json:"italic"`
	Align  TextAlign  `json:"align"`
}

// DefaultFont is the font the Text tool starts with.
var DefaultFont = FontSpec{Family: FontSans, Size: 20}

func (f FontSpec) face() (text.Face, error) {
	return fonts.Face(fonts.Family(f.Family), fonts.Style{Bold: f.Bold, Italic: f.Italic}, f.Size)
}

// TextParams is a committed text box. Origin is the top-left corner of
// the box.
type TextParams struct {
	Origin Vec2        `json:"origin"`
	Lines  []string    `json:"lines"`
	Font   FontSpec    `json:"font"`
	Color  color.NRGBA `json:"color"`
}

// textLayout is the measured geometry of a text box.
type textLayout struct {
	face       text.Face
	ascent     float64
	lineHeight float64
	widths     []float64
	width      float64
}

func (p TextParams) layout() (textLayout, error) {
	face, err := p.Font.face()
	if err != nil {
		return textLayout{}, err
	}
	m := face.Metrics()
	l := textLayout{
		face:       face,
		ascent:     m.Ascent,
		lineHeight: (m.Ascent + m.Descent) * lineSpacing,
		widths:     make([]float64, len(p.Lines)),
	}
	for i, line := range p.Lines {
		w, _ := text.Measure(line, face)
		l.widths[i] = w
		l.width = math.Max(l.width, w)
	}
	return l, nil
}

// size returns the box size, at least one line high.
func (l textLayout) size(lines int) Vec2 {
	return V(l.width, l.lineHeight*float64(max(lines, 1)))
}

// TextPrimitive draws the lines of a text box.
type TextPrimitive struct {
	TextParams
}

func (p TextPrimitive) render(dst *image.RGBA) error {
	l, err := p.layout()
	if err != nil {
		return err
	}
	for i, line := range p.Lines {
		x := p.Origin.X
		switch p.Font.Align {
		case AlignCenter:
			x += (l.width - l.widths[i]) / 2
		case AlignEnd:
			x += l.width - l.widths[i]
		}
		y := p.Origin.Y + l.ascent + float64(i)*l.lineHeight
		text.Draw(dst, line, l.face, x, y, p.Color)
	}
	return nil
}

// textTool edits one text box at a time. The box is committed by a
// click or by switching tools and dropped by Escape.
type textTool struct {
	baseTool
	font    FontSpec
	editing bool
	origin  Vec2
	content string
	color   color.NRGBA
}

func newTextTool(e *env) *textTool {
	return &textTool{baseTool: baseTool{env: e, kind: ToolText}, font: DefaultFont}
}

// Font returns the font of the text box.
func (t *textTool) Font() FontSpec { return t.font }

// SetFont changes the font, including that of the box being edited.
func (t *textTool) SetFont(f FontSpec) {
	t.font = f
	t.refresh()
}

// Editing reports whether a text box is open. Shortcuts are disabled
// while it is.
func (t *textTool) Editing() bool { return t.editing }

func (t *textTool) params() TextParams {
	return TextParams{
		Origin: t.origin,
		Lines:  strings.Split(t.content, "\n"),
		Font:   t.font,
		Color:  t.color,
	}
}

func (t *textTool) refresh() {
	if !t.editing {
		return
	}
	p := t.params()
	l, err := p.layout()
	if err != nil {
		Logger().Warn("paint: text layout failed", slog.Any("err", err))
		return
	}
	size := l.size(len(p.Lines))
	box := StrokePrimitive{
		Points: []Vec2{
			p.Origin.Add(V(-2, -2)),
			p.Origin.Add(V(size.X+2, -2)),
			p.Origin.Add(size).Add(V(2, 2)),
			p.Origin.Add(V(-2, size.Y+2)),
		},
		Width:  1,
		Color:  Black,
		Cap:    CapButt,
		Closed: true,
		Dash:   []float64{4, 4},
	}
	t.env.preview(TextPrimitive{p}, box)
}

func (t *textTool) PointerDown(ev PointerEvent) {
	if t.editing {
		t.finish()
		return
	}
	t.editing = true
	t.origin = ev.Pos
	t.content = ""
	t.color = t.env.palette.ForButton(ev.Button)
	t.refresh()
}

func (t *textTool) KeyDown(ev KeyEvent) {
	if !t.editing || ev.Ctrl {
		return
	}
	switch ev.Key {
	case KeyEscape:
		t.editing = false
		t.content = ""
		t.env.clearPreview()
		return
	case KeyEnter:
		t.content += "\n"
	case KeyBackspace:
		_, n := utf8.DecodeLastRuneInString(t.content)
		t.content = t.content[:len(t.content)-n]
	default:
		if !ev.Key.Printable() {
			return
		}
		t.content = norm.NFC.String(t.content + string(ev.Key))
	}
	t.refresh()
}

// finish commits the open box unless it holds only whitespace.
func (t *textTool) finish() {
	if !t.editing {
		return
	}
	t.editing = false
	p := t.params()
	t.content = ""
	if strings.TrimSpace(strings.Join(p.Lines, "")) == "" {
		t.env.clearPreview()
		return
	}
	t.env.commit(TextCommand{meta: t.env.id(), TextParams: p})
}
