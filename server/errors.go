package server

import "errors"

var (
	// ErrEngineRequired indicates NewServer was called without an engine.
	ErrEngineRequired = errors.New("classification engine is required")
)
