package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// WriteTrack writes one coordinate per line, "x y", four decimals, in track
// order. The file is created or truncated.
func WriteTrack(path string, t Track) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}

	w := bufio.NewWriter(f)

	for _, c := range t {
		fmt.Fprintf(w, "%.4f %.4f\n", c.X, c.Y)
	}

	if err := w.Flush(); err != nil {
		f.Close()

		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(ErrWrite, "%s: %v", path, err)
	}

	return nil
}

// ReadTrack parses a file written by WriteTrack.
func ReadTrack(path string) (Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open track")
	}

	defer f.Close()

	var t Track

	scanner := bufio.NewScanner(f)
	line := 0

	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) != 2 {
			return nil, errors.Errorf("%s:%d: expected two fields, got %d", path, line, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}

		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}

		t = append(t, Coordinate{X: x, Y: y})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return t, nil
}
