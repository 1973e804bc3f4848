// Package paint is the editing engine of a 2D raster drawing program.
//
// # Overview
//
// An Editor owns a two-layer raster Surface, a set of interactive tools,
// a command history with undo and redo, and a selection that can be
// moved, resized, copied and pasted. It has no user interface of its
// own: the host feeds it pointer and keyboard events and displays the
// base and preview layers.
//
// # Quick Start
//
//	ed := paint.New(800, 600)
//
//	// Drag a rectangle
//	_ = ed.SetTool(paint.ToolRectangle)
//	ed.PointerDown(paint.PointerEvent{Pos: paint.V(10, 10)})
//	ed.PointerMove(paint.PointerEvent{Pos: paint.V(200, 120)})
//	ed.PointerUp(paint.PointerEvent{Pos: paint.V(200, 120)})
//
//	_ = ed.Undo()
//	_ = ed.Redo()
//
//	f, _ := os.Create("drawing.png")
//	defer f.Close()
//	_ = ed.EncodePNG(f)
//
// # Layers
//
// The base layer holds committed drawing. Tools draw transient feedback
// on the preview layer while a gesture is in progress and clear it when
// the gesture ends.
//
// # Commands and History
//
// Every finished gesture produces exactly one Command. The Editor applies
// it to the base layer and appends it to the History. Vector commands
// (rectangle, ellipse, polygon, line, text, stamp) store their parameters;
// raster commands (pencil and eraser strokes, spray, bucket fill,
// selection moves) store points or pixels. Undo restores the initial
// snapshot and replays the remaining commands, so replaying the history
// always reproduces the drawing exactly.
//
// Commands round-trip through JSON with MarshalCommand and
// UnmarshalCommand.
//
// # Selection
//
// The rectangle, ellipse and lasso selection tools share one
// SelectionContext. A marked region is lifted out of the base layer,
// can be dragged, nudged with the arrow keys, resized through eight
// handles and snapped to the grid, and is stamped back when committed.
// Escape restores the original pixels exactly.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles
// of stamps are in degrees, clockwise.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive log/slog
// records: Debug for history, tool and selection transitions, Warn for
// failed commands and dropped bitmap decodes.
package paint
