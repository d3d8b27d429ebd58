package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Grid is a row-major intensity grid in [0,1]. Row 0 is the bottom of the
// image: tracks come out mirrored otherwise, because the table's y axis
// points up while image rows grow downward.
type Grid struct {
	W, H  int
	Cells []float64
}

func (g *Grid) At(x, y int) float64 {
	return g.Cells[y*g.W+x]
}

// Sample decodes the image at path and reduces it to a cfg-sized intensity
// grid. SVG sources are rasterised first; everything else goes through the
// registered stdlib decoders.
func Sample(path string, cfg SamplingConfig) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	var img image.Image

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		img, err = rasteriseSVG(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%s: %v", path, err)
	}

	return SampleImage(img, cfg)
}

// SampleImage resamples img to the configured resolution (bilinear, the one
// fixed rule) and reduces each pixel to Rec.601 luminance.
func SampleImage(img image.Image, cfg SamplingConfig) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scaled := resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.Bilinear)
	bounds := scaled.Bounds()

	g := &Grid{
		W:     cfg.Width,
		H:     cfg.Height,
		Cells: make([]float64, cfg.Width*cfg.Height),
	}

	for y := 0; y < cfg.Height; y++ {
		row := (cfg.Height - 1 - y) * cfg.Width // flip vertically

		for x := 0; x < cfg.Width; x++ {
			r, gc, b, a := scaled.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				// Transparent reads as sand, not ink.
				g.Cells[row+x] = 1.0

				continue
			}

			lum := 0.299*float64(r>>8) + 0.587*float64(gc>>8) + 0.114*float64(b>>8)
			g.Cells[row+x] = lum / 255.0
		}
	}

	return g, nil
}

func rasteriseSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("svg viewbox %gx%g", icon.ViewBox.W, icon.ViewBox.H)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return img, nil
}
