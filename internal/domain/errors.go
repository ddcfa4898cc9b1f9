package domain

import "errors"

// Sentinel errors for the four terminal failure kinds. Callers match with
// errors.Is; lower layers wrap these with fmt.Errorf("...: %w", ...) to add
// context.
var (
	// ErrNotFound means no archive rows matched the requested storm name and
	// season, or a matching row was malformed beyond the blank-field
	// convention.
	ErrNotFound = errors.New("storm not found")

	// ErrEmptyTrack means the completeness filter removed every observation.
	ErrEmptyTrack = errors.New("track empty after filtering")

	// ErrInvalidConfig means a render setting (scale, color, path) failed
	// validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRender means drawing or writing the output image failed.
	ErrRender = errors.New("render failed")
)
