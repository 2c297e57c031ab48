// File: mirror.go
// Role: projection of the district graph into a Dense row per vertex, kept
// consistent after every move by patching only the affected rows.
package state

import (
	"fmt"

	"github.com/arnaudbergeron/GFN-election-interference/district"
)

// Option configures a Mirror before construction completes.
type Option func(*Mirror)

// WithPad overrides the padding sentinel written into unused neighbor
// columns. The default is 0; whatever the value, no vertex id may equal it.
func WithPad(pad int64) Option {
	return func(m *Mirror) { m.pad = float64(pad) }
}

// Mirror is a read-oriented dense snapshot of one district graph.
// Row i describes the vertex IDOf(i): column 0 carries the district id,
// negated while the vertex is on a border; the remaining columns carry the
// neighbor ids padded with the sentinel. Neighbor columns are fixed at
// construction since topology never changes; only column 0 is live.
type Mirror struct {
	g     *district.Graph
	mat   *Dense
	rowOf map[district.VertexID]int
	ids   []district.VertexID
	pad   float64
}

// NewMirror builds a mirror of g with rows ordered by ascending vertex id
// and width 1+maxDegree.
//
// Returns ErrNilGraph, ErrEmptyGraph, ErrPadCollision when a vertex id equals
// the padding sentinel, or ErrNonPositiveDistrict when any district id < 1.
// Complexity: O(V + E).
func NewMirror(g *district.Graph, opts ...Option) (*Mirror, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	m := &Mirror{g: g, pad: 0}
	for _, opt := range opts {
		opt(m)
	}

	m.ids = g.Vertices()
	if len(m.ids) == 0 {
		return nil, ErrEmptyGraph
	}

	maxDegree := 0
	for _, id := range m.ids {
		if float64(id) == m.pad {
			return nil, fmt.Errorf("vertex %d: %w", id, ErrPadCollision)
		}
		d, err := g.District(id)
		if err != nil {
			return nil, err
		}
		if d < 1 {
			return nil, fmt.Errorf("vertex %d in district %d: %w", id, d, ErrNonPositiveDistrict)
		}
		ns, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		if len(ns) > maxDegree {
			maxDegree = len(ns)
		}
	}

	mat, err := NewDense(len(m.ids), 1+maxDegree)
	if err != nil {
		return nil, err
	}
	m.mat = mat

	m.rowOf = make(map[district.VertexID]int, len(m.ids))
	for row, id := range m.ids {
		m.rowOf[id] = row
	}

	// Neighbor columns are construction-fixed; write them once.
	for row, id := range m.ids {
		ns, _ := g.Neighbors(id)
		col := 1
		for _, nid := range ns {
			_ = m.mat.Set(row, col, float64(nid))
			col++
		}
		for ; col < m.mat.Cols(); col++ {
			_ = m.mat.Set(row, col, m.pad)
		}
	}
	m.Rebuild()

	return m, nil
}

// Rebuild regenerates column 0 of every row from the authoritative graph.
// Complexity: O(V).
func (m *Mirror) Rebuild() {
	for row, id := range m.ids {
		_ = m.mat.Set(row, 0, m.column0(id))
	}
}

// ApplyMove patches column 0 for exactly the rows named by a completed move:
// the moved vertex and its direct neighbors, the only rows whose district or
// border status may differ. Returns ErrUnknownVertex if the result names an
// id this mirror never mapped. Complexity: O(len(res.Affected)).
func (m *Mirror) ApplyMove(res district.MoveResult) error {
	for _, id := range res.Affected {
		row, ok := m.rowOf[id]
		if !ok {
			return fmt.Errorf("patch vertex %d: %w", id, ErrUnknownVertex)
		}
		if err := m.mat.Set(row, 0, m.column0(id)); err != nil {
			return err
		}
	}

	return nil
}

// column0 encodes a vertex's live assignment: district id, negated on border.
func (m *Mirror) column0(id district.VertexID) float64 {
	d, _ := m.g.District(id)
	if m.g.IsBorder(id) {
		return -float64(d)
	}

	return float64(d)
}

// Rows returns the vertex count. Complexity: O(1).
func (m *Mirror) Rows() int { return m.mat.Rows() }

// Cols returns 1 + the maximum degree. Complexity: O(1).
func (m *Mirror) Cols() int { return m.mat.Cols() }

// At reads one cell of the mirror. Complexity: O(1).
func (m *Mirror) At(row, col int) (float64, error) { return m.mat.At(row, col) }

// Row returns a copy of one vertex row. Complexity: O(c).
func (m *Mirror) Row(row int) ([]float64, error) { return m.mat.Row(row) }

// RowOf returns the row index of a vertex id.
func (m *Mirror) RowOf(id district.VertexID) (int, error) {
	row, ok := m.rowOf[id]
	if !ok {
		return 0, fmt.Errorf("row of %d: %w", id, ErrUnknownVertex)
	}

	return row, nil
}

// IDOf returns the vertex id mapped to a row index.
func (m *Mirror) IDOf(row int) (district.VertexID, error) {
	if row < 0 || row >= len(m.ids) {
		return 0, fmt.Errorf("id of row %d: %w", row, ErrOutOfRange)
	}

	return m.ids[row], nil
}

// Pad returns the padding sentinel in use. Complexity: O(1).
func (m *Mirror) Pad() float64 { return m.pad }

// Snapshot returns an independent Dense copy of the current mirror, safe to
// hand to a downstream consumer. Complexity: O(r*c).
func (m *Mirror) Snapshot() *Dense { return m.mat.Clone() }
