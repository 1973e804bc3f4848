package paint

import "log/slog"

// toolShortcuts maps single keys to tools.
var toolShortcuts = map[Key]ToolKind{
	"l": ToolLine,
	"1": ToolRectangle,
	"2": ToolEllipse,
	"3": ToolPolygon,
	"c": ToolPencil,
	"e": ToolEraser,
	"a": ToolAerosol,
	"b": ToolPaintBucket,
	"i": ToolPipette,
	"t": ToolText,
	"d": ToolStamp,
	"r": ToolSelectRectangle,
	"s": ToolSelectEllipse,
	"v": ToolSelectLasso,
}

// shortcut runs the editor action bound to ev and reports whether there
// was one.
func (e *Editor) shortcut(ev KeyEvent) bool {
	if ev.Ctrl {
		return e.ctrlShortcut(ev)
	}
	switch ev.Key {
	case KeyDelete:
		e.Delete()
	case "g":
		e.grid.Toggle()
	case "=", "+":
		e.grid.Grow()
	case "-":
		e.grid.Shrink()
	default:
		k, ok := toolShortcuts[ev.Key]
		if !ok {
			return false
		}
		logError("tool shortcut", e.manager.Select(k))
	}
	return true
}

func (e *Editor) ctrlShortcut(ev KeyEvent) bool {
	switch ev.Key {
	case "z":
		if ev.Shift {
			logError("redo", e.Redo())
		} else {
			logError("undo", e.Undo())
		}
	case "Z":
		logError("redo", e.Redo())
	case "c":
		e.Copy()
	case "x":
		e.Cut()
	case "v":
		logError("paste", e.Paste())
	case "a":
		logError("select all", e.SelectAll())
	case "o":
		e.NewDrawing()
	default:
		return false
	}
	return true
}

// logError logs a failed shortcut action. Shortcuts have no caller to
// return errors to.
func logError(action string, err error) {
	if err != nil {
		Logger().Warn("paint: "+action+" failed", slog.Any("err", err))
	}
}
