package pix

import "testing"

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history should have nothing to undo or redo")
	}
	buf := NewFilled(2, 2, Red)
	if h.Undo(buf) != buf {
		t.Error("Undo with empty stack should return current unchanged")
	}
	if h.Redo(buf) != buf {
		t.Error("Redo with empty stack should return current unchanged")
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	const n = 5
	buf := New(4, 4)
	h := NewHistory()

	states := make([]*Buffer, 0, n+1)
	states = append(states, buf.Clone())
	for i := 0; i < n; i++ {
		before := buf.Clone()
		buf.Set(i%4, i/4, RGBA{R: uint8(40 * (i + 1)), A: 255})
		h.Commit(before)
		states = append(states, buf.Clone())
	}

	// N undos walk back to the initial state bit for bit.
	for i := n; i > 0; i-- {
		buf = h.Undo(buf)
		if !buf.Equal(states[i-1]) {
			t.Fatalf("undo %d did not restore state %d exactly", n-i+1, i-1)
		}
	}
	if h.CanUndo() {
		t.Error("all snapshots should be consumed")
	}

	// N redos walk forward to the final state bit for bit.
	for i := 0; i < n; i++ {
		buf = h.Redo(buf)
		if !buf.Equal(states[i+1]) {
			t.Fatalf("redo %d did not restore state %d exactly", i+1, i+1)
		}
	}
	if h.CanRedo() {
		t.Error("all redo snapshots should be consumed")
	}
}

func TestHistoryCommitClearsRedo(t *testing.T) {
	buf := New(2, 2)
	h := NewHistory()

	before := buf.Clone()
	buf.Set(0, 0, Red)
	h.Commit(before)

	buf = h.Undo(buf)
	if !h.CanRedo() {
		t.Fatal("undo should leave a redo snapshot")
	}

	// A new edit forks away from the undone branch.
	before = buf.Clone()
	buf.Set(1, 1, Blue)
	h.Commit(before)
	if h.CanRedo() {
		t.Error("a new commit should clear the redo stack")
	}
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	buf := New(2, 2)
	h := NewHistory()
	before := buf.Clone()
	buf.Set(0, 0, Red)
	h.Commit(before)

	// Mutating the caller's snapshot must not corrupt the stack entry.
	before.Set(0, 0, Green)
	restored := h.Undo(buf)
	got, _ := restored.Get(0, 0)
	if got != Transparent {
		t.Errorf("got %v from restored snapshot, want transparent", got)
	}
}

func TestHistoryClear(t *testing.T) {
	buf := New(2, 2)
	h := NewHistory()
	h.Commit(buf)
	buf = h.Undo(buf)
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear should empty both stacks")
	}
}
