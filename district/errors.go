package district

import (
	"errors"
	"fmt"
)

// Sentinel errors for district graph operations. Construction errors are fatal
// to NewGraph; move rejections are recoverable and leave the graph unchanged.
// Callers match with errors.Is; ErrSameDistrict and ErrNotBordering both
// satisfy errors.Is(err, ErrInvalidMove) so the whole recoverable class can be
// handled with a single check.
var (
	// ErrNilVertex indicates a nil *Vertex in the construction input.
	ErrNilVertex = errors.New("district: nil vertex")

	// ErrDuplicateVertexID indicates two construction vertices share an id.
	ErrDuplicateVertexID = errors.New("district: duplicate vertex id")

	// ErrUnknownNeighbor indicates an adjacency list references a vertex id
	// absent from the construction input.
	ErrUnknownNeighbor = errors.New("district: neighbor references unknown vertex")

	// ErrAsymmetricEdge indicates u lists v as a neighbor but v does not list u.
	// Reported only when the graph is built with WithSymmetryCheck.
	ErrAsymmetricEdge = errors.New("district: asymmetric adjacency")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("district: vertex not found")

	// ErrInvalidMove is the base sentinel for every rejected move.
	ErrInvalidMove = errors.New("district: invalid move")

	// ErrSameDistrict indicates a move into the vertex's current district.
	ErrSameDistrict = fmt.Errorf("%w: vertex already in target district", ErrInvalidMove)

	// ErrNotBordering indicates a move into a district the vertex has no
	// neighbor in; only adjacent districts are legal targets.
	ErrNotBordering = fmt.Errorf("%w: vertex does not border target district", ErrInvalidMove)
)
