package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// A mid-gray grid goes through generation, the text file, and back with no
// more loss than the four decimal places of the format.
func TestTrackRoundTrip(t *testing.T) {
	g := uniformGrid(4, 4, 0.5)
	cfg := testTrackConfig()

	track, err := GenerateShading(g, cfg)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteTrack(path, track); err != nil {
		t.Fatal(err)
	}

	got, err := ReadTrack(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(track) {
		t.Fatalf("read %d points, wrote %d", len(got), len(track))
	}

	for i := range track {
		if math.Abs(got[i].X-track[i].X) > 1e-3 || math.Abs(got[i].Y-track[i].Y) > 1e-3 {
			t.Fatalf("point %d read back as %v, wrote %v", i, got[i], track[i])
		}
	}
}

func TestWriteTrackUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")

	err := WriteTrack(path, Track{{X: 1, Y: 2}})
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("got %v, want ErrWrite", err)
	}
}

func TestReadTrackMalformed(t *testing.T) {
	cases := map[string]string{
		"not numbers":  "abc def\n",
		"one field":    "1.0\n",
		"three fields": "1.0 2.0 3.0\n",
	}

	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "bad.txt")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := ReadTrack(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestReadTrackSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.txt")
	if err := os.WriteFile(path, []byte("1.0 2.0\n\n3.0 4.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	track, err := ReadTrack(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(track) != 2 {
		t.Fatalf("got %d points, want 2", len(track))
	}

	if track[1] != (Coordinate{X: 3, Y: 4}) {
		t.Fatalf("unexpected second point %v", track[1])
	}
}

func TestStats(t *testing.T) {
	track := Track{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 5}}

	s := Stats(track)

	if s.Points != 3 {
		t.Fatalf("points %d, want 3", s.Points)
	}

	if math.Abs(s.Length-6) > 1e-9 {
		t.Fatalf("length %g, want 6", s.Length)
	}

	if math.Abs(s.MinStep-1) > 1e-9 || math.Abs(s.MaxStep-5) > 1e-9 {
		t.Fatalf("steps %g..%g, want 1..5", s.MinStep, s.MaxStep)
	}

	if math.Abs(s.MaxRadius-math.Hypot(3, 5)) > 1e-9 {
		t.Fatalf("max radius %g", s.MaxRadius)
	}
}
