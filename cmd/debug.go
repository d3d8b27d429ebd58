package main

import (
	"math"

	"github.com/davecgh/go-spew/spew"
)

type TrackStats struct {
	Points    int
	Length    float64
	MinStep   float64
	MaxStep   float64
	MaxRadius float64
}

func Stats(t Track) TrackStats {
	st := TrackStats{
		Points:  len(t),
		MinStep: math.Inf(1),
	}

	for i, c := range t {
		if r := math.Hypot(c.X, c.Y); r > st.MaxRadius {
			st.MaxRadius = r
		}

		if i == 0 {
			continue
		}

		d := dist(t[i-1], c)
		st.Length += d

		if d < st.MinStep {
			st.MinStep = d
		}
		if d > st.MaxStep {
			st.MaxStep = d
		}
	}

	if st.Points < 2 {
		st.MinStep = 0
	}

	return st
}

func dumpStats(file string) error {
	track, err := ReadTrack(file)
	if err != nil {
		return err
	}

	spew.Dump(Stats(track))

	return nil
}
