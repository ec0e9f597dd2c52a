package anim

import (
	"errors"
	"fmt"
)

// Sentinel errors returned at load boundaries. The evaluation engine
// itself never returns errors.
var (
	// ErrMalformedFile is returned when a scene graph fails verification.
	ErrMalformedFile = errors.New("anim: malformed animation file")

	// ErrUnsupportedAudio is returned when embedded audio bytes cannot be
	// recognized by the configured decoder.
	ErrUnsupportedAudio = errors.New("anim: unsupported audio format")
)

// VerifyError locates the first node that failed verification.
// It unwraps to ErrMalformedFile.
type VerifyError struct {
	Path string
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("anim: malformed animation file: %s", e.Path)
}

func (e *VerifyError) Unwrap() error {
	return ErrMalformedFile
}
