package main

import "github.com/pkg/errors"

// The pipeline has three failure classes. Everything a stage reports wraps
// one of these so callers can test with errors.Is.
var (
	ErrDecode        = errors.New("input is not a decodable image")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrWrite         = errors.New("destination is not writable")
)
