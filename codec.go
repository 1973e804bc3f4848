package paint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// envelope is the JSON form of a command: its kind and its fields.
type envelope struct {
	Kind CommandKind     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// fillJSON carries the fill mask as PNG. Alpha images round-trip
// through PNG exactly.
type fillJSON struct {
	ID    string      `json:"id"`
	Mask  []byte      `json:"mask"`
	At    image.Point `json:"at"`
	Color color.NRGBA `json:"color"`
}

// pixelsJSON is an *image.RGBA as stored in memory. PNG would
// unpremultiply partially transparent pixels and lose their low bits.
type pixelsJSON struct {
	Rect   image.Rectangle `json:"rect"`
	Stride int             `json:"stride"`
	Pix    []byte          `json:"pix"`
}

type selectionJSON struct {
	ID      string         `json:"id"`
	Content *pixelsJSON    `json:"content,omitempty"`
	Size    image.Point    `json:"size"`
	Initial *image.Point   `json:"initial,omitempty"`
	Final   *image.Point   `json:"final,omitempty"`
	Shape   SelectionShape `json:"shape"`
}

// MarshalCommand encodes cmd as JSON. Fill masks are embedded as PNG,
// selection content as raw premultiplied pixels.
func MarshalCommand(cmd Command) ([]byte, error) {
	var v any = cmd
	switch c := cmd.(type) {
	case RectangleCommand, EllipseCommand, PolygonCommand, LineCommand,
		TextCommand, StampCommand, StrokeCommand, SprayCommand:
	case FillCommand:
		mask, err := encodePNG(c.Mask)
		if err != nil {
			return nil, err
		}
		v = fillJSON{ID: c.ID(), Mask: mask, At: c.At, Color: c.Color}
	case SelectionCommand:
		v = selectionJSON{ID: c.ID(), Content: pixelsOf(c.Content), Size: c.Size, Initial: c.Initial, Final: c.Final, Shape: c.Shape}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("paint: marshal %s: %w", cmd.Kind(), err)
	}
	return json.Marshal(envelope{Kind: cmd.Kind(), Data: data})
}

// UnmarshalCommand decodes a command encoded by MarshalCommand.
func UnmarshalCommand(data []byte) (Command, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("paint: unmarshal command: %w", err)
	}
	switch env.Kind {
	case KindRectangle:
		return decodeAs[RectangleCommand](env)
	case KindEllipse:
		return decodeAs[EllipseCommand](env)
	case KindPolygon:
		return decodeAs[PolygonCommand](env)
	case KindLine:
		return decodeAs[LineCommand](env)
	case KindText:
		return decodeAs[TextCommand](env)
	case KindStamp:
		return decodeAs[StampCommand](env)
	case KindStroke:
		return decodeAs[StrokeCommand](env)
	case KindSpray:
		return decodeAs[SprayCommand](env)
	case KindFill:
		w, err := decodeAs[fillJSON](env)
		if err != nil {
			return nil, err
		}
		img, err := decodePNG(w.Mask)
		if err != nil {
			return nil, err
		}
		c := FillCommand{At: w.At, Color: w.Color}
		c.CommandID = w.ID
		if img != nil {
			c.Mask = coverageOf(img)
		}
		return c, nil
	case KindSelection:
		w, err := decodeAs[selectionJSON](env)
		if err != nil {
			return nil, err
		}
		content, err := w.Content.image()
		if err != nil {
			return nil, err
		}
		c := SelectionCommand{Content: content, Size: w.Size, Initial: w.Initial, Final: w.Final, Shape: w.Shape}
		c.CommandID = w.ID
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, env.Kind)
}

func decodeAs[T any](env envelope) (T, error) {
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, fmt.Errorf("paint: unmarshal %s: %w", env.Kind, err)
	}
	return v, nil
}

func pixelsOf(img *image.RGBA) *pixelsJSON {
	if img == nil {
		return nil
	}
	return &pixelsJSON{Rect: img.Rect, Stride: img.Stride, Pix: img.Pix}
}

func (p *pixelsJSON) image() (*image.RGBA, error) {
	if p == nil {
		return nil, nil
	}
	dx, dy := p.Rect.Dx(), p.Rect.Dy()
	if !p.Rect.Empty() && (p.Stride < 4*dx || len(p.Pix) < p.Stride*(dy-1)+4*dx) {
		return nil, fmt.Errorf("paint: decode pixels: %d bytes with stride %d for %v", len(p.Pix), p.Stride, p.Rect)
	}
	return &image.RGBA{Pix: p.Pix, Stride: p.Stride, Rect: p.Rect}, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	if img == nil || isNilImage(img) {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("paint: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func isNilImage(img image.Image) bool {
	switch m := img.(type) {
	case *image.RGBA:
		return m == nil
	case *image.Alpha:
		return m == nil
	}
	return false
}

func decodePNG(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("paint: decode png: %w", err)
	}
	return img, nil
}
