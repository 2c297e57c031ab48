// Package district maintains a dynamic partition of a fixed graph into named
// districts, with an incrementally-updated index of every border vertex.
//
// What:
//
//   - Vertex: immutable identity and adjacency, mutable district assignment.
//   - Graph: owns all vertices and the border index; the sole mutation is
//     MoveVertex, which reassigns one vertex to an adjacent district.
//   - A vertex is "on the border" when at least one neighbor belongs to a
//     different district; the index records, per border vertex, every
//     neighboring district it touches.
//
// Why:
//
//   - Redistricting search: enumerate contiguity-preserving single-vertex
//     moves without rescanning the graph after each one.
//   - Local optimization / annealing: MoveVertex restores the border index by
//     touching only the moved vertex and its direct neighbors.
//
// Complexity:
//
//   - NewGraph:         O(V + E) validation, Memory O(V + E).
//   - DiscoverBorders:  O(V + E), one full seed pass, idempotent.
//   - MoveVertex:       O(d²) where d bounds the degree of the moved vertex
//     and its neighbors (clear-then-rebuild over the affected set only).
//   - Queries:          O(1) membership; O(k log k) for sorted enumerations.
//
// Errors:
//
//   - ErrNilVertex, ErrDuplicateVertexID, ErrUnknownNeighbor,
//     ErrAsymmetricEdge: malformed input at construction.
//   - ErrInvalidMove (with ErrSameDistrict / ErrNotBordering): recoverable
//     move rejections; the graph is left untouched.
//   - ErrVertexNotFound: a query or move referenced an unknown vertex.
//
// The Graph is not safe for concurrent mutation: MoveVertex performs several
// dependent steps that are not atomic with respect to interleaved moves.
// Serialize all moves behind a single writer if concurrency is ever needed.
package district
