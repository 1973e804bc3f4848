package paint

import (
	"image/color"

	"github.com/gogpu/paint/internal/idgen"
)

// Option configures an Editor during creation.
//
// Example:
//
//	// White canvas, default tools
//	ed := paint.New(800, 600)
//
//	// Reproducible spray and readable ids, for tests and scripts
//	ed := paint.New(800, 600, paint.WithSeed(1), paint.WithIDGenerator(seq))
type Option func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	background color.NRGBA
	surface    Surface
	gridSize   int
	seed       uint64
	seeded     bool
	newID      idgen.Generator
	primary    color.NRGBA
	secondary  color.NRGBA
	arrowStep  float64
	preset     *Preset
}

// defaultOptions returns the default editor options.
func defaultOptions() editorOptions {
	return editorOptions{
		background: White,
		gridSize:   DefaultGridSize,
		newID:      idgen.TypeID(idgen.PrefixCommand),
		primary:    Black,
		secondary:  White,
		arrowStep:  3,
	}
}

// WithBackground sets the color of a blank canvas. It is ignored when
// WithSurface is also given.
func WithBackground(c color.NRGBA) Option {
	return func(o *editorOptions) {
		o.background = c
	}
}

// WithSurface draws on s instead of an in-memory Canvas. The width and
// height given to New are then ignored.
func WithSurface(s Surface) Option {
	return func(o *editorOptions) {
		o.surface = s
	}
}

// WithGridSize sets the initial grid cell size. Out-of-range sizes keep
// the default and are logged at Warn.
func WithGridSize(n int) Option {
	return func(o *editorOptions) {
		o.gridSize = n
	}
}

// WithSeed seeds the random source used by the aerosol tool. Without it
// the source is seeded from the runtime.
func WithSeed(seed uint64) Option {
	return func(o *editorOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithIDGenerator replaces the command id generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *editorOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithColors sets the initial primary and secondary colors.
func WithColors(primary, secondary color.NRGBA) Option {
	return func(o *editorOptions) {
		o.primary, o.secondary = primary, secondary
	}
}

// WithArrowStep sets how far arrow keys move a selection, in pixels.
func WithArrowStep(px float64) Option {
	return func(o *editorOptions) {
		if px > 0 {
			o.arrowStep = px
		}
	}
}

// WithPreset applies p after the editor is built. Preset colors override
// WithBackground and WithColors.
func WithPreset(p *Preset) Option {
	return func(o *editorOptions) {
		o.preset = p
	}
}
