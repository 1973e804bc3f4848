package paint

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gopkg.in/yaml.v3"
)

// Preset is a reusable editor setup, usually read from YAML:
//
//	background: "#ffffff"
//	primary: "#1e90ff"
//	secondary: "#ffffff"
//	tool: rectangle
//	grid:
//	  size: 25
//	  visible: true
//	thickness:
//	  rectangle: 4
//	  pencil: 2
type Preset struct {
	Background string             `yaml:"background"`
	Primary    string             `yaml:"primary"`
	Secondary  string             `yaml:"secondary"`
	Tool       string             `yaml:"tool"`
	Grid       GridPreset         `yaml:"grid"`
	Thickness  map[string]float64 `yaml:"thickness"`
}

// GridPreset configures the grid.
type GridPreset struct {
	Size    int     `yaml:"size"`
	Visible bool    `yaml:"visible"`
	Opacity float64 `yaml:"opacity"`
}

// LoadPreset decodes a YAML preset. Unknown keys are rejected and
// missing ones take their defaults.
func LoadPreset(r io.Reader) (*Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Preset
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("paint: preset: %w", err)
	}
	p.defaults()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// defaults fills zero values.
func (p *Preset) defaults() {
	if p.Background == "" {
		p.Background = Hex(White)
	}
	if p.Primary == "" {
		p.Primary = Hex(Black)
	}
	if p.Secondary == "" {
		p.Secondary = Hex(White)
	}
	if p.Tool == "" {
		p.Tool = ToolPencil.String()
	}
	if p.Grid.Size == 0 {
		p.Grid.Size = DefaultGridSize
	}
	if p.Grid.Opacity == 0 {
		p.Grid.Opacity = DefaultGridOpacity
	}
}

func (p *Preset) validate() error {
	if _, _, _, err := p.colors(); err != nil {
		return fmt.Errorf("paint: preset: %w", err)
	}
	if _, err := ParseToolKind(p.Tool); err != nil {
		return fmt.Errorf("paint: preset: %w", err)
	}
	for name, v := range p.Thickness {
		if _, err := ParseToolKind(name); err != nil {
			return fmt.Errorf("paint: preset: %w", err)
		}
		if v < MinThickness || v > MaxThickness {
			return fmt.Errorf("paint: preset: %w", invalid(AttrThickness, v))
		}
	}
	if err := NewGrid().SetSize(p.Grid.Size); err != nil {
		return fmt.Errorf("paint: preset: %w", err)
	}
	if err := NewGrid().SetOpacity(p.Grid.Opacity); err != nil {
		return fmt.Errorf("paint: preset: %w", err)
	}
	return nil
}

// colors parses the three preset colors.
func (p *Preset) colors() (bg, primary, secondary color.NRGBA, err error) {
	if bg, err = ParseHex(p.Background); err != nil {
		return
	}
	if primary, err = ParseHex(p.Primary); err != nil {
		return
	}
	secondary, err = ParseHex(p.Secondary)
	return
}

// apply configures a freshly built editor. Colors are applied by New
// before the canvas and palette exist.
func (p *Preset) apply(e *Editor) error {
	if err := e.grid.SetSize(p.Grid.Size); err != nil {
		return err
	}
	if err := e.grid.SetOpacity(p.Grid.Opacity); err != nil {
		return err
	}
	e.grid.SetVisible(p.Grid.Visible)

	for name, v := range p.Thickness {
		k, err := ParseToolKind(name)
		if err != nil {
			return err
		}
		if err := e.manager.Select(k); err != nil {
			return err
		}
		if err := e.manager.SetThickness(v); err != nil {
			return err
		}
	}
	k, err := ParseToolKind(p.Tool)
	if err != nil {
		return err
	}
	return e.manager.Select(k)
}
