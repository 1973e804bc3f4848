package paint

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// PointerEvent is a pointer press, motion or release over the canvas.
type PointerEvent struct {
	Pos    Vec2
	Button Button
	// Clicks is the click count of a press: 2 for a double click.
	Clicks int
	Shift  bool
	Ctrl   bool
}

// Key names a keyboard key. Printable keys are their text ("a", "A",
// "="); others use the names below.
type Key string

const (
	KeyShift      Key = "Shift"
	KeyControl    Key = "Control"
	KeyAlt        Key = "Alt"
	KeyEscape     Key = "Escape"
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
	KeyEnter      Key = "Enter"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Printable reports whether k inserts text.
func (k Key) Printable() bool {
	return len([]rune(string(k))) == 1
}

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool
}

// WheelEvent is a scroll of the pointer wheel. Positive Delta scrolls
// down.
type WheelEvent struct {
	Pos   Vec2
	Delta float64
	Alt   bool
}
