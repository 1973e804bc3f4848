// Package script replays editing sessions described in YAML against a
// paint.Editor. Scripts drive the editor through the same pointer and
// keyboard events a user would produce.
//
//	width: 200
//	height: 120
//	seed: 1
//	steps:
//	  - tool: rectangle
//	  - style: filled
//	  - primary: "#ff0000"
//	  - drag: [[10, 10], [60, 40]]
//	  - action: undo
//	  - action: redo
package script

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/idgen"
)

// Default canvas size.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// Script is a recorded editing session.
type Script struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Seed       uint64 `yaml:"seed"`
	Background string `yaml:"background"`
	Steps      []Step `yaml:"steps"`
}

// Point is an [x, y] pair.
type Point [2]float64

func (p Point) vec() paint.Vec2 { return paint.V(p[0], p[1]) }

// Step is one action. Exactly one action field must be set; Button,
// Shift and Ctrl modify pointer and key actions.
type Step struct {
	Tool      string   `yaml:"tool,omitempty"`
	Primary   string   `yaml:"primary,omitempty"`
	Secondary string   `yaml:"secondary,omitempty"`
	Thickness *float64 `yaml:"thickness,omitempty"`
	Style     string   `yaml:"style,omitempty"`
	Sides     *int     `yaml:"sides,omitempty"`
	Tolerance *int     `yaml:"tolerance,omitempty"`

	Drag        []Point `yaml:"drag,omitempty"`
	Click       *Point  `yaml:"click,omitempty"`
	DoubleClick *Point  `yaml:"double_click,omitempty"`
	Leave       bool    `yaml:"leave,omitempty"`
	Wheel       float64 `yaml:"wheel,omitempty"`
	Type        string  `yaml:"type,omitempty"`
	Key         string  `yaml:"key,omitempty"`
	Action      string  `yaml:"action,omitempty"`

	Button string `yaml:"button,omitempty"`
	Shift  bool   `yaml:"shift,omitempty"`
	Ctrl   bool   `yaml:"ctrl,omitempty"`
	Alt    bool   `yaml:"alt,omitempty"`
}

// Parse decodes a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("script: %w", err)
	}
	s.defaults()
	return &s, nil
}

func (s *Script) defaults() {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
}

// Editor creates an editor sized and seeded for the script. Command ids
// are sequential so that repeated runs produce identical histories.
func (s *Script) Editor(opts ...paint.Option) (*paint.Editor, error) {
	base := []paint.Option{
		paint.WithSeed(s.Seed),
		paint.WithIDGenerator(idgen.Sequence("cmd")),
	}
	if s.Background != "" {
		bg, err := paint.ParseHex(s.Background)
		if err != nil {
			return nil, fmt.Errorf("script: background: %w", err)
		}
		base = append(base, paint.WithBackground(bg))
	}
	return paint.New(s.Width, s.Height, append(base, opts...)...), nil
}

// Run applies every step to e, then waits for pending decodes.
func (s *Script) Run(ctx context.Context, e *paint.Editor) error {
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.apply(e); err != nil {
			return fmt.Errorf("script: step %d: %w", i+1, err)
		}
	}
	return e.Settle(ctx)
}
