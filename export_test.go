package pix

import (
	"image/color"
	"testing"
)

func TestExportScaledDimensions(t *testing.T) {
	buf := New(3, 2)
	img := ExportScaled(buf, 4)
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("got %dx%d, want 12x8", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestExportScaledReplicatesPixels(t *testing.T) {
	buf := New(2, 1)
	buf.Set(0, 0, Red)
	buf.Set(1, 0, Blue)
	img := ExportScaled(buf, 3)

	want := color.NRGBA{R: 255, A: 255}
	for x := 0; x < 3; x++ {
		if got := img.NRGBAAt(x, 0); got != want {
			t.Errorf("got %v at (%d, 0), want %v", got, x, want)
		}
	}
	want = color.NRGBA{B: 255, A: 255}
	for x := 3; x < 6; x++ {
		if got := img.NRGBAAt(x, 0); got != want {
			t.Errorf("got %v at (%d, 0), want %v", got, x, want)
		}
	}
}

func TestExportScaledZoomFloor(t *testing.T) {
	buf := New(2, 2)
	img := ExportScaled(buf, 0)
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("got %dx%d, want zoom clamped to 1", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPackSpritesheetGrid(t *testing.T) {
	frames := make([]*Buffer, 5)
	for i := range frames {
		frames[i] = NewFilled(4, 4, RGBA{R: uint8(50 * (i + 1)), A: 255})
	}
	sheet := PackSpritesheet(frames, 3)
	if sheet.Width() != 12 || sheet.Height() != 8 {
		t.Fatalf("got %dx%d, want 12x8", sheet.Width(), sheet.Height())
	}

	// Frame 3 starts the second row.
	got, _ := sheet.Get(0, 4)
	if got.R != 200 {
		t.Errorf("got R=%d at second row start, want 200", got.R)
	}
	// Frame 4 sits beside it.
	got, _ = sheet.Get(4, 4)
	if got.R != 250 {
		t.Errorf("got R=%d, want 250", got.R)
	}
	// The unused sixth cell stays transparent.
	got, _ = sheet.Get(8, 4)
	if got != Transparent {
		t.Errorf("got %v in empty cell, want transparent", got)
	}
}

func TestPackSpritesheetSingleRow(t *testing.T) {
	frames := []*Buffer{NewFilled(2, 2, Red), NewFilled(2, 2, Blue)}
	sheet := PackSpritesheet(frames, 0)
	if sheet.Width() != 4 || sheet.Height() != 2 {
		t.Errorf("got %dx%d, want 4x2", sheet.Width(), sheet.Height())
	}
}

func TestPackSpritesheetEmpty(t *testing.T) {
	sheet := PackSpritesheet(nil, 4)
	if sheet.Width() != 0 || sheet.Height() != 0 {
		t.Errorf("got %dx%d, want empty", sheet.Width(), sheet.Height())
	}
}

func TestPackSpritesheetNilFrame(t *testing.T) {
	frames := []*Buffer{NewFilled(2, 2, Red), nil, NewFilled(2, 2, Blue)}
	sheet := PackSpritesheet(frames, 3)
	got, _ := sheet.Get(2, 0)
	if got != Transparent {
		t.Errorf("got %v in nil frame's cell, want transparent", got)
	}
	got, _ = sheet.Get(4, 0)
	if got != Blue {
		t.Errorf("got %v, want Blue", got)
	}
}
