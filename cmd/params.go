package main

import "github.com/pkg/errors"

// SamplingConfig controls how a source image is reduced to an intensity grid.
type SamplingConfig struct {
	Width, Height int
}

// TrackConfig describes the table surface and the path constraints. The
// drawable area is a circle of the given radius centered at the origin.
type TrackConfig struct {
	Radius  float64
	Density float64

	// MaxStep caps the distance between consecutive track coordinates,
	// MinSegment floors it.
	MaxStep    float64
	MinSegment float64
}

// EdgeConfig tunes edge detection for the tracing pipeline.
type EdgeConfig struct {
	Blur      int
	Low, High float64
}

func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:  128,
		Height: 128,
	}
}

func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		Radius:     100,
		Density:    1.0,
		MaxStep:    2.0,
		MinSegment: 0.05,
	}
}

func DefaultEdgeConfig() EdgeConfig {
	return EdgeConfig{
		Blur: 2,
		Low:  0.04,
		High: 0.17,
	}
}

func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "resolution %dx%d", c.Width, c.Height)
	}

	return nil
}

func (c TrackConfig) Validate() error {
	if c.Radius <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "radius %g", c.Radius)
	}

	if c.Density <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "density %g", c.Density)
	}

	if c.MaxStep <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max step %g", c.MaxStep)
	}

	// Subdividing an over-long segment halves it at worst, so the floor
	// must sit below half the cap.
	if c.MinSegment < 0 || c.MinSegment >= c.MaxStep/2 {
		return errors.Wrapf(ErrInvalidConfig, "min segment %g with max step %g", c.MinSegment, c.MaxStep)
	}

	return nil
}

func (c EdgeConfig) Validate() error {
	if c.Blur < 0 {
		return errors.Wrapf(ErrInvalidConfig, "blur radius %d", c.Blur)
	}

	if c.Low < 0 || c.High > 1 || c.Low > c.High {
		return errors.Wrapf(ErrInvalidConfig, "edge thresholds low %g high %g", c.Low, c.High)
	}

	return nil
}
