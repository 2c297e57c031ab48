// Package state exposes a dense, row-major mirror of a district graph for
// batch numeric consumers (learning or optimization processes that want an
// array, not a map).
//
// What:
//
//   - Dense: a safe row-major float64 matrix (bounds-checked At/Set, Clone).
//   - Mirror: one row per vertex, ascending by vertex id. Column 0 holds the
//     vertex's current district id, negated while the vertex is on a border;
//     columns 1..maxDegree hold its neighbor ids, padded with a sentinel.
//
// The mirror is a pure projection of the authoritative map-based model in
// package district — never a source of truth. Rebuild regenerates every row;
// ApplyMove patches only the rows named by a district.MoveResult, which is
// exactly the set whose border status may have changed.
//
// Sentinel rules (checked at construction):
//
//   - No vertex id may equal the padding sentinel (default 0), or padding
//     would be indistinguishable from real adjacency.
//   - Every district id must be ≥ 1, or the border negation in column 0
//     would be ambiguous.
//
// Errors:
//
//   - ErrNilGraph, ErrEmptyGraph, ErrPadCollision, ErrNonPositiveDistrict:
//     mirror construction rejections.
//   - ErrBadShape, ErrOutOfRange: dense buffer misuse.
//   - ErrUnknownVertex: a row lookup or patch referenced an unmapped id.
package state
