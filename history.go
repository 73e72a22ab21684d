package pix

// History is a full-snapshot undo/redo stack over pixel buffers.
//
// Callers drive it around each mutating operation: clone the buffer
// before mutating, and call Commit with that snapshot only when the
// operation actually changed at least one pixel (tools report this via
// their boolean return). Entries live for the session; nothing is
// persisted.
type History struct {
	undo []*Buffer
	redo []*Buffer
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Commit pushes a clone of the pre-operation snapshot onto the undo
// stack and clears the redo stack, since the new edit forks away from
// any previously undone states.
func (h *History) Commit(before *Buffer) {
	h.undo = append(h.undo, before.Clone())
	h.redo = h.redo[:0]
}

// Undo pops the most recent undo snapshot and returns it, pushing a
// clone of current onto the redo stack. With nothing to undo it
// returns current unchanged.
func (h *History) Undo(current *Buffer) *Buffer {
	if len(h.undo) == 0 {
		return current
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return top
}

// Redo is the mirror of Undo: it pops the most recent redo snapshot,
// pushing a clone of current onto the undo stack. With nothing to redo
// it returns current unchanged.
func (h *History) Redo(current *Buffer) *Buffer {
	if len(h.redo) == 0 {
		return current
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return top
}

// Clear empties both stacks. Used when a new project replaces the canvas.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
