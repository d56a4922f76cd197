package texture

import (
	"image"
	"image/color"
	"testing"
)

func TestFlipToRGBAReversesRows(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	// Distinct color per row.
	rows := []color.RGBA{
		{R: 10, G: 0, B: 0, A: 255},
		{R: 0, G: 20, B: 0, A: 255},
		{R: 0, G: 0, B: 30, A: 255},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, rows[y])
		}
	}

	flipped := FlipToRGBA(src)
	for y := 0; y < 3; y++ {
		got := flipped.RGBAAt(0, y)
		want := rows[2-y]
		if got != want {
			t.Errorf("row %d: got %v, want %v", y, got, want)
		}
	}
}

func TestFlipToRGBAOddHeightKeepsMiddleRow(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 3))
	src.SetRGBA(0, 1, color.RGBA{R: 99, G: 99, B: 99, A: 255})

	flipped := FlipToRGBA(src)
	if got := flipped.RGBAAt(0, 1); got.R != 99 {
		t.Errorf("middle row moved: got %v", got)
	}
}

func TestFlipToRGBAHandlesNonZeroOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.SetRGBA(5, 5, color.RGBA{R: 255, A: 255})

	flipped := FlipToRGBA(src)
	if flipped.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds not normalized: %v", flipped.Bounds())
	}
	// Top-left of source ends up on the bottom row.
	if got := flipped.RGBAAt(0, 1); got.R != 255 {
		t.Errorf("pixel not flipped into place: %v", got)
	}
}
