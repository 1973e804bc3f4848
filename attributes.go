package paint

// Attribute names a tool setting.
type Attribute uint

const (
	AttrThickness Attribute = 1 << iota
	AttrStyle
	AttrSides
	AttrDots
	AttrSpray
	AttrTolerance
	AttrFont
	AttrStamp
)

var attributeNames = map[Attribute]string{
	AttrThickness: "thickness",
	AttrStyle:     "style",
	AttrSides:     "sides",
	AttrDots:      "dots",
	AttrSpray:     "spray",
	AttrTolerance: "tolerance",
	AttrFont:      "font",
	AttrStamp:     "stamp",
}

func (a Attribute) String() string {
	if n, ok := attributeNames[a]; ok {
		return n
	}
	return "attribute"
}

// Attribute limits.
const (
	MinThickness = 1
	MaxThickness = 100
	MinSides     = 3
	MaxSides     = 12
	MaxDotRadius = 50
	MaxDroplet   = 50
	MaxFrequency = 100
	MaxJet       = 200
	MaxTolerance = 100
	MinFontSize  = 4
	MaxFontSize  = 200
	MinStampSize = 0.1
	MaxStampSize = 10
)

// Capabilities a tool may implement. The manager routes attribute
// setters by type assertion on the active tool.
type (
	thicknessHolder interface {
		Thickness() float64
		SetThickness(v float64)
	}
	styleHolder interface {
		Style() ShapeStyle
		SetStyle(s ShapeStyle)
	}
	sidesHolder interface {
		Sides() int
		SetSides(n int)
	}
	dotsHolder interface {
		ShowDots() bool
		SetShowDots(v bool)
		DotRadius() float64
		SetDotRadius(v float64)
	}
	sprayHolder interface {
		Spray() (droplet float64, frequency int, jet float64)
		SetSpray(droplet float64, frequency int, jet float64)
	}
	toleranceHolder interface {
		Tolerance() int
		SetTolerance(v int)
	}
	fontHolder interface {
		Font() FontSpec
		SetFont(f FontSpec)
	}
	stampHolder interface {
		Stamp() (kind StampKind, scale, angle float64)
		SetStamp(kind StampKind, scale, angle float64)
	}
	// typist is implemented by tools that capture the keyboard while
	// editing.
	typist interface {
		Editing() bool
	}
)

// Attributes is a snapshot of the active tool's settings. Only the
// fields of supported attributes are meaningful.
type Attributes struct {
	Tool      ToolKind
	supported Attribute

	Thickness       float64
	Style           ShapeStyle
	Sides           int
	ShowDots        bool
	DotRadius       float64
	DropletDiameter float64
	Frequency       int
	JetDiameter     float64
	Tolerance       int
	Font            FontSpec
	Stamp           StampKind
	StampScale      float64
	StampAngle      float64
}

// Supports reports whether the active tool has attribute a.
func (a Attributes) Supports(attr Attribute) bool {
	return a.supported&attr != 0
}

// attributesOf projects the settings of t.
func attributesOf(t Tool) Attributes {
	a := Attributes{Tool: t.Kind()}
	if h, ok := t.(thicknessHolder); ok {
		a.supported |= AttrThickness
		a.Thickness = h.Thickness()
	}
	if h, ok := t.(styleHolder); ok {
		a.supported |= AttrStyle
		a.Style = h.Style()
	}
	if h, ok := t.(sidesHolder); ok {
		a.supported |= AttrSides
		a.Sides = h.Sides()
	}
	if h, ok := t.(dotsHolder); ok {
		a.supported |= AttrDots
		a.ShowDots, a.DotRadius = h.ShowDots(), h.DotRadius()
	}
	if h, ok := t.(sprayHolder); ok {
		a.supported |= AttrSpray
		a.DropletDiameter, a.Frequency, a.JetDiameter = h.Spray()
	}
	if h, ok := t.(toleranceHolder); ok {
		a.supported |= AttrTolerance
		a.Tolerance = h.Tolerance()
	}
	if h, ok := t.(fontHolder); ok {
		a.supported |= AttrFont
		a.Font = h.Font()
	}
	if h, ok := t.(stampHolder); ok {
		a.supported |= AttrStamp
		a.Stamp, a.StampScale, a.StampAngle = h.Stamp()
	}
	return a
}
