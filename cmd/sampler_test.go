package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSampleImageDimensions(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 20, 12))
	cfg := SamplingConfig{Width: 8, Height: 6}

	g, err := SampleImage(img, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if g.W != 8 || g.H != 6 || len(g.Cells) != 48 {
		t.Fatalf("got %dx%d with %d cells", g.W, g.H, len(g.Cells))
	}

	for i, v := range g.Cells {
		if v < 0 || v > 1 {
			t.Fatalf("cell %d out of range: %g", i, v)
		}
	}
}

func TestSampleImageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	g, err := SampleImage(img, SamplingConfig{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}

	// pure red carries only its Rec.601 weight
	if v := g.At(0, 0); math.Abs(v-0.299) > 0.02 {
		t.Fatalf("red luminance %g, want ~0.299", v)
	}
}

func TestSampleImageFlip(t *testing.T) {
	// white on top, black on the bottom
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	g, err := SampleImage(img, SamplingConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}

	// row 0 of the grid is the bottom of the image
	if v := g.At(4, 0); v > 0.3 {
		t.Fatalf("bottom row reads %g, want dark", v)
	}

	if v := g.At(4, 7); v < 0.7 {
		t.Fatalf("top row reads %g, want light", v)
	}
}

func TestSampleImageTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	g, err := SampleImage(img, SamplingConfig{Width: 4, Height: 4})
	if err != nil {
		t.Fatal(err)
	}

	if v := g.At(1, 1); v != 1.0 {
		t.Fatalf("transparent pixel reads %g, want 1", v)
	}
}

func TestSamplePNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}

	path := filepath.Join(t.TempDir(), "mid.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	g, err := Sample(path, SamplingConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}

	if v := g.At(3, 3); math.Abs(v-0.5) > 0.01 {
		t.Fatalf("mid gray reads %g, want ~0.5", v)
	}
}

func TestSampleNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("not an image at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Sample(path, SamplingConfig{Width: 8, Height: 8}); !errors.Is(err, ErrDecode) {
		t.Fatalf("got %v, want ErrDecode", err)
	}
}

func TestSampleMissingFile(t *testing.T) {
	if _, err := Sample(filepath.Join(t.TempDir(), "nope.png"), SamplingConfig{Width: 8, Height: 8}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSampleInvalidConfig(t *testing.T) {
	cases := map[string]SamplingConfig{
		"zero width":      {Width: 0, Height: 8},
		"zero height":     {Width: 8, Height: 0},
		"negative width":  {Width: -1, Height: 8},
		"negative height": {Width: 8, Height: -4},
	}

	for name, cfg := range cases {
		if _, err := Sample("irrelevant.png", cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got %v, want ErrInvalidConfig", name, err)
		}
	}
}
