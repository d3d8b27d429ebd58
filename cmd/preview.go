package main

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/colornames"
)

// Raster scale of the preview, pixels per table unit.
const previewDPMM = 4.0

var (
	previewStart = colorful.Color{R: 0.10, G: 0.20, B: 0.55}
	previewEnd   = colorful.Color{R: 0.85, G: 0.10, B: 0.25}
)

// WritePreview renders the track as connected straight segments on a
// 2R x 2R canvas and saves it. Segments fade from blue to red along the
// drawing order so the operator can see where the ball starts and ends.
func WritePreview(path string, t Track, cfg TrackConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	size := 2.0 * cfg.Radius

	c := canvas.New(size, size)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(colornames.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(size, size))

	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(colornames.Silver)
	ctx.SetStrokeWidth(2.0 / previewDPMM)
	ctx.DrawPath(cfg.Radius, cfg.Radius, canvas.Circle(cfg.Radius))

	ctx.SetStrokeWidth(1.0 / previewDPMM)

	for i := 1; i < len(t); i++ {
		frac := 0.0
		if len(t) > 2 {
			frac = float64(i-1) / float64(len(t)-2)
		}

		seg := &canvas.Path{}
		seg.MoveTo(t[i-1].X+cfg.Radius, t[i-1].Y+cfg.Radius)
		seg.LineTo(t[i].X+cfg.Radius, t[i].Y+cfg.Radius)

		ctx.SetStrokeColor(previewStart.BlendLab(previewEnd, frac).Clamped())
		ctx.DrawPath(0, 0, seg)
	}

	if err := renderers.Write(path, c, canvas.DPMM(previewDPMM)); err != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}

	return nil
}
