package pix

// FloatingSelection is a detached, independently transformable copy of
// pixels lifted from a layer's selected region. X and Y are the
// canvas-space offset of the sub-buffer origin.
type FloatingSelection struct {
	X, Y   int
	Pixels *Buffer
}

// SessionState tracks the floating-selection transform lifecycle.
type SessionState uint8

const (
	// SessionIdle means no transform is in progress.
	SessionIdle SessionState = iota
	// SessionEditing means pixels are lifted and being transformed.
	SessionEditing
	// SessionCommitted means the last session pasted its result back.
	SessionCommitted
)

// TransformSession is the stateful lift -> edit -> commit workflow for
// selection-bound transforms. It is the one multi-step sequence in the
// core and owns no UI concerns, so it is testable without a rendering
// layer.
//
// Begin lifts the selection's bounding content out of the layer into a
// floating buffer, clearing the source region to transparent. Every
// edit re-derives the floating pixels from the originally lifted
// buffer through the accumulated transform, so repeated edits never
// compound resampling error. Commit pastes the floating pixels back
// and records a single history entry for the whole session.
//
// Anything that would replace the live selection while a session is
// still editing must call Commit first; silently dropping an
// in-progress transform is not allowed (see ReplaceSelection).
type TransformSession struct {
	state SessionState

	layer *Layer
	mask  *Mask

	// original holds the lifted pixels exactly as they left the
	// layer; accum maps original indices to current floating indices.
	original *Buffer
	accum    Matrix

	floating FloatingSelection
	before   *Buffer
}

// NewTransformSession returns an idle session.
func NewTransformSession() *TransformSession {
	return &TransformSession{state: SessionIdle, accum: Identity()}
}

// State returns the current lifecycle state.
func (s *TransformSession) State() SessionState { return s.state }

// Floating returns the current floating selection, or nil outside an
// editing session.
func (s *TransformSession) Floating() *FloatingSelection {
	if s.state != SessionEditing {
		return nil
	}
	return &s.floating
}

// Begin lifts the pixels under the mask's bounding rectangle out of
// the layer into a floating buffer and enters the editing state. The
// lifted source region is cleared to transparent in the layer; pixels
// inside the bounds but outside the mask stay behind. It reports
// whether a session started: an empty selection, a nil layer, or an
// already-editing session is a no-op.
func (s *TransformSession) Begin(layer *Layer, mask *Mask) bool {
	if s.state == SessionEditing || layer == nil || layer.Pixels == nil || mask == nil {
		return false
	}
	bounds := mask.SelectionBounds()
	if bounds == nil {
		return false
	}

	s.before = layer.Pixels.Clone()

	w := bounds.Dx()
	h := bounds.Dy()
	lifted := New(w, h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !mask.At(x, y) {
				continue
			}
			c, ok := layer.Pixels.Get(x, y)
			if !ok {
				continue
			}
			lifted.Set(x-bounds.Min.X, y-bounds.Min.Y, c)
			layer.Pixels.Set(x, y, Transparent)
		}
	}

	s.layer = layer
	s.mask = mask
	s.original = lifted
	s.accum = Identity()
	s.floating = FloatingSelection{X: bounds.Min.X, Y: bounds.Min.Y, Pixels: lifted.Clone()}
	s.state = SessionEditing

	Logger().Debug("transform session begin",
		"x", s.floating.X, "y", s.floating.Y, "w", w, "h", h)
	return true
}

// rederive rebuilds the floating pixels from the original lifted
// buffer through the accumulated transform and re-syncs the selection
// mask to the floating rectangle.
func (s *TransformSession) rederive(newW, newH int) {
	s.floating.Pixels = ApplyTransform(s.original, s.accum, newW, newH)
	s.syncMask()
}

// syncMask replaces the selection with the floating region's bounds.
func (s *TransformSession) syncMask() {
	s.mask.Fill(false)
	for y := 0; y < s.floating.Pixels.Height(); y++ {
		for x := 0; x < s.floating.Pixels.Width(); x++ {
			s.mask.Set(s.floating.X+x, s.floating.Y+y, true)
		}
	}
}

// Move shifts the floating selection by (dx, dy) in canvas space.
// Pure translation never resamples.
func (s *TransformSession) Move(dx, dy int) bool {
	if s.state != SessionEditing {
		return false
	}
	s.floating.X += dx
	s.floating.Y += dy
	s.syncMask()
	return true
}

// FlipHorizontal mirrors the floating pixels left to right.
func (s *TransformSession) FlipHorizontal() bool {
	if s.state != SessionEditing {
		return false
	}
	w := s.floating.Pixels.Width()
	h := s.floating.Pixels.Height()
	s.accum = FlipHorizontalMatrix(w).Multiply(s.accum)
	s.rederive(w, h)
	return true
}

// FlipVertical mirrors the floating pixels top to bottom.
func (s *TransformSession) FlipVertical() bool {
	if s.state != SessionEditing {
		return false
	}
	w := s.floating.Pixels.Width()
	h := s.floating.Pixels.Height()
	s.accum = FlipVerticalMatrix(h).Multiply(s.accum)
	s.rederive(w, h)
	return true
}

// Rotate90CW rotates the floating pixels a quarter turn clockwise,
// swapping the floating width and height.
func (s *TransformSession) Rotate90CW() bool {
	if s.state != SessionEditing {
		return false
	}
	w := s.floating.Pixels.Width()
	h := s.floating.Pixels.Height()
	s.accum = Rotate90CWMatrix(w, h).Multiply(s.accum)
	s.rederive(h, w)
	return true
}

// Rotate90CCW rotates the floating pixels a quarter turn
// counter-clockwise, swapping the floating width and height.
func (s *TransformSession) Rotate90CCW() bool {
	if s.state != SessionEditing {
		return false
	}
	w := s.floating.Pixels.Width()
	h := s.floating.Pixels.Height()
	s.accum = Rotate90CCWMatrix(w, h).Multiply(s.accum)
	s.rederive(h, w)
	return true
}

// Rotate180 rotates the floating pixels a half turn.
func (s *TransformSession) Rotate180() bool {
	if s.state != SessionEditing {
		return false
	}
	w := s.floating.Pixels.Width()
	h := s.floating.Pixels.Height()
	s.accum = Rotate180Matrix(w, h).Multiply(s.accum)
	s.rederive(w, h)
	return true
}

// Resize scales the floating pixels to newW x newH with
// nearest-neighbor sampling. Because the result is re-derived from the
// originally lifted pixels, scaling down and back up restores the
// original exactly. Non-positive dimensions are a no-op.
func (s *TransformSession) Resize(newW, newH int) bool {
	if s.state != SessionEditing || newW <= 0 || newH <= 0 {
		return false
	}
	w := s.floating.Pixels.Width()
	h := s.floating.Pixels.Height()
	s.accum = ScaleMatrix(float64(newW)/float64(w), float64(newH)/float64(h)).Multiply(s.accum)
	s.rederive(newW, newH)
	return true
}

// Commit pastes the floating pixels back into the layer at the current
// offset and ends the session. Pixels with alpha > 0 overwrite the
// destination; fully transparent floating pixels are skipped, so the
// paste is non-destructive outside the floated shape. One history
// entry covering the whole session is recorded on h (when non-nil and
// any pixel differs from the pre-session snapshot).
func (s *TransformSession) Commit(h *History) bool {
	if s.state != SessionEditing {
		return false
	}

	fp := s.floating.Pixels
	for y := 0; y < fp.Height(); y++ {
		for x := 0; x < fp.Width(); x++ {
			c, _ := fp.Get(x, y)
			if c.A == 0 {
				continue
			}
			s.layer.Pixels.Set(s.floating.X+x, s.floating.Y+y, c)
		}
	}

	if h != nil && !s.layer.Pixels.Equal(s.before) {
		h.Commit(s.before)
	}

	s.state = SessionCommitted
	s.layer = nil
	s.mask = nil
	s.original = nil
	s.floating = FloatingSelection{}
	s.before = nil
	return true
}

// ReplaceSelection installs a new selection mask value into dst,
// forcing an implicit commit first when a transform session is still
// editing. Selection tools must route replacement through this so an
// in-progress transform is never silently lost.
func (s *TransformSession) ReplaceSelection(dst *Mask, newSel *Mask, h *History) {
	if s.state == SessionEditing {
		s.Commit(h)
	}
	copy(dst.data, newSel.data)
}
