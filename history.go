package paint

import (
	"image"
	"log/slog"
	"slices"
)

// History is a linear, replay-based undo/redo log.
//
// Replaying the commands up to and including the cursor, in order, on
// the initial snapshot reproduces the base layer exactly. Undo restores
// the snapshot and replays the remaining prefix. Redo applies just the
// next command, since replay is strictly additive.
type History struct {
	surface  Surface
	commands []Command
	cursor   int
	initial  *image.RGBA
}

// NewHistory creates an empty history whose baseline is the current
// base layer of s.
func NewHistory(s Surface) *History {
	h := &History{surface: s, cursor: -1}
	h.SaveInitialState()
	return h
}

// SaveInitialState snapshots the base layer as the replay baseline.
func (h *History) SaveInitialState() {
	h.initial = h.surface.Snapshot()
}

// Add records a command that has already been applied to the surface.
// Commands after the cursor are discarded.
func (h *History) Add(cmd Command) {
	h.commands = append(h.commands[:h.cursor+1], cmd)
	h.cursor = len(h.commands) - 1
	Logger().Debug("history: add",
		slog.String("kind", string(cmd.Kind())),
		slog.String("id", cmd.ID()),
		slog.Int("len", len(h.commands)))
}

// Undo steps back one command. It is a no-op at the start of history.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return nil
	}
	h.cursor--
	Logger().Debug("history: undo", slog.Int("cursor", h.cursor))
	return h.replay()
}

// Redo re-applies the next command. It is a no-op at the end of history.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return nil
	}
	h.cursor++
	cmd := h.commands[h.cursor]
	Logger().Debug("history: redo", slog.Int("cursor", h.cursor), slog.String("kind", string(cmd.Kind())))
	return cmd.Apply(h.surface)
}

// replay rebuilds the base layer from the snapshot and the applied prefix.
// Every command is replayed even if an earlier one fails; the first error
// is returned.
func (h *History) replay() error {
	h.surface.Restore(h.initial)
	var first error
	for _, cmd := range h.commands[:h.cursor+1] {
		if err := cmd.Apply(h.surface); err != nil {
			Logger().Warn("history: replay failed",
				slog.String("kind", string(cmd.Kind())),
				slog.String("id", cmd.ID()),
				slog.Any("err", err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Reset drops every command and takes a new baseline.
func (h *History) Reset() {
	h.commands = nil
	h.cursor = -1
	h.SaveInitialState()
}

// CanUndo reports whether Undo would change anything.
func (h *History) CanUndo() bool { return h.cursor >= 0 }

// CanRedo reports whether Redo would change anything.
func (h *History) CanRedo() bool { return h.cursor < len(h.commands)-1 }

// Len returns the number of recorded commands, undone ones included.
func (h *History) Len() int { return len(h.commands) }

// Cursor returns the index of the last applied command, or -1.
func (h *History) Cursor() int { return h.cursor }

// Commands returns the recorded commands.
func (h *History) Commands() []Command { return slices.Clone(h.commands) }
