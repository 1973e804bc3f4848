// Package fonts resolves text faces from the embedded Go font family.
package fonts

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names a font family.
type Family string

const (
	Sans Family = "sans"
	Mono Family = "mono"
)

// Style selects the weight and slant within a family.
type Style struct {
	Bold   bool
	Italic bool
}

type key struct {
	family Family
	style  Style
}

// ttf returns the font file for a family and style, or nil.
func ttf(f Family, s Style) []byte {
	switch f {
	case Sans:
		switch {
		case s.Bold && s.Italic:
			return gobolditalic.TTF
		case s.Bold:
			return gobold.TTF
		case s.Italic:
			return goitalic.TTF
		}
		return goregular.TTF
	case Mono:
		switch {
		case s.Bold && s.Italic:
			return gomonobolditalic.TTF
		case s.Bold:
			return gomonobold.TTF
		case s.Italic:
			return gomonoitalic.TTF
		}
		return gomono.TTF
	}
	return nil
}

var (
	mu      sync.Mutex
	sources = map[key]*text.FontSource{}
)

// Valid reports whether f is a known family.
func Valid(f Family) bool {
	return f == Sans || f == Mono
}

// Face returns a face of the family and style at size points.
// Parsed sources are cached for the life of the process.
func Face(f Family, s Style, size float64) (text.Face, error) {
	data := ttf(f, s)
	if data == nil {
		return nil, fmt.Errorf("fonts: unknown family %q", f)
	}
	k := key{f, s}

	mu.Lock()
	defer mu.Unlock()
	src, ok := sources[k]
	if !ok {
		var err error
		src, err = text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("fonts: parse %s: %w", f, err)
		}
		sources[k] = src
	}
	return src.Face(size), nil
}
