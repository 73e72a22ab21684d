package pix

import "testing"

func TestNewLayerDefaults(t *testing.T) {
	l := NewLayer("background", 8, 8)
	if l.Name != "background" {
		t.Errorf("got name %q, want %q", l.Name, "background")
	}
	if l.Opacity != 1 || l.Blend != BlendNormal || !l.Visible || l.Locked {
		t.Errorf("unexpected defaults: opacity=%v blend=%v visible=%v locked=%v",
			l.Opacity, l.Blend, l.Visible, l.Locked)
	}
	if l.Pixels.Width() != 8 || l.Pixels.Height() != 8 {
		t.Errorf("got %dx%d buffer, want 8x8", l.Pixels.Width(), l.Pixels.Height())
	}
	if l.ID == "" {
		t.Error("layer should get an ID")
	}
}

func TestNewLayerUniqueIDs(t *testing.T) {
	a := NewLayer("a", 2, 2)
	b := NewLayer("b", 2, 2)
	if a.ID == b.ID {
		t.Errorf("both layers got ID %q", a.ID)
	}
}

func TestLayerCloneIsDeep(t *testing.T) {
	l := NewLayer("sprite", 4, 4)
	l.Pixels.Set(1, 1, Red)
	c := l.Clone()

	if c.ID == l.ID {
		t.Error("clone should get a fresh ID")
	}
	if !c.Pixels.Equal(l.Pixels) {
		t.Error("clone should copy pixels")
	}
	c.Pixels.Set(1, 1, Blue)
	got, _ := l.Pixels.Get(1, 1)
	if got != Red {
		t.Error("mutating the clone should not touch the original")
	}
}

func TestLayerStackAddClampsIndex(t *testing.T) {
	var s LayerStack
	a := NewLayer("a", 2, 2)
	b := NewLayer("b", 2, 2)
	c := NewLayer("c", 2, 2)
	s.Add(a, 0)
	s.Add(b, -5) // clamps to top
	s.Add(c, 99) // clamps to bottom

	if s[0] != b || s[1] != a || s[2] != c {
		t.Errorf("got order %q %q %q, want b a c", s[0].Name, s[1].Name, s[2].Name)
	}
}

func TestLayerStackDuplicate(t *testing.T) {
	var s LayerStack
	s.Add(NewLayer("base", 2, 2), 0)
	s[0].Pixels.Set(0, 0, Red)

	dup := s.Duplicate(0)
	if dup == nil {
		t.Fatal("duplicate of a valid index should succeed")
	}
	if dup.Name != "base copy" {
		t.Errorf("got name %q, want %q", dup.Name, "base copy")
	}
	if s[0] != dup {
		t.Error("the copy should sit directly above the original")
	}
	if got, _ := dup.Pixels.Get(0, 0); got != Red {
		t.Error("the copy should carry the original pixels")
	}

	if s.Duplicate(7) != nil {
		t.Error("duplicate of an invalid index should return nil")
	}
}

func TestLayerStackDeleteKeepsLastLayer(t *testing.T) {
	var s LayerStack
	s.Add(NewLayer("only", 2, 2), 0)
	if s.Delete(0) {
		t.Error("the last layer should never be deleted")
	}

	s.Add(NewLayer("top", 2, 2), 0)
	if !s.Delete(0) {
		t.Error("delete of a valid index should succeed")
	}
	if len(s) != 1 || s[0].Name != "only" {
		t.Errorf("got %d layers, want the original one left", len(s))
	}
}

func TestLayerStackMove(t *testing.T) {
	var s LayerStack
	names := []string{"a", "b", "c"}
	for i, n := range names {
		s.Add(NewLayer(n, 2, 2), i)
	}

	s.Move(0, 2)
	got := []string{s[0].Name, s[1].Name, s[2].Name}
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}

	// Out-of-range moves are a no-op.
	s.Move(-1, 0)
	s.Move(0, 9)
	if s[0].Name != "b" {
		t.Error("invalid moves should leave the stack untouched")
	}
}

func TestLayerStackIndex(t *testing.T) {
	var s LayerStack
	a := NewLayer("a", 2, 2)
	b := NewLayer("b", 2, 2)
	s.Add(a, 0)
	s.Add(b, 1)

	if got := s.Index(b.ID); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := s.Index("layer-missing"); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}
