package state

import "errors"

// Sentinel errors for the dense mirror. All public surfaces return these
// (wrapped with context where useful) instead of panicking; tests match with
// errors.Is.
var (
	// ErrBadShape is returned when a requested dense shape is invalid.
	ErrBadShape = errors.New("state: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("state: index out of range")

	// ErrNilGraph indicates a nil *district.Graph was passed to NewMirror.
	ErrNilGraph = errors.New("state: graph is nil")

	// ErrEmptyGraph indicates the graph holds no vertices to mirror.
	ErrEmptyGraph = errors.New("state: graph has no vertices")

	// ErrPadCollision indicates a vertex id equals the padding sentinel.
	ErrPadCollision = errors.New("state: vertex id collides with padding sentinel")

	// ErrNonPositiveDistrict indicates a district id < 1; the border negation
	// in column 0 requires strictly positive districts.
	ErrNonPositiveDistrict = errors.New("state: district id must be positive")

	// ErrUnknownVertex indicates a referenced vertex id has no mirror row.
	ErrUnknownVertex = errors.New("state: unknown vertex id")
)
