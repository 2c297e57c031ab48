package state_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnaudbergeron/GFN-election-interference/district"
	"github.com/arnaudbergeron/GFN-election-interference/state"
)

// chainGraph builds the path 1-2-3-4 with districts [1,1,2,2] and discovered
// borders.
func chainGraph(t *testing.T) *district.Graph {
	t.Helper()

	v1 := district.NewVertex(1, 1)
	v1.SetNeighbors(2)
	v2 := district.NewVertex(2, 1)
	v2.SetNeighbors(1, 3)
	v3 := district.NewVertex(3, 2)
	v3.SetNeighbors(2, 4)
	v4 := district.NewVertex(4, 2)
	v4.SetNeighbors(3)

	g, err := district.NewGraph([]*district.Vertex{v1, v2, v3, v4})
	require.NoError(t, err)
	g.DiscoverBorders()

	return g
}

func TestNewMirror_Errors(t *testing.T) {
	t.Run("NilGraph", func(t *testing.T) {
		_, err := state.NewMirror(nil)
		require.ErrorIs(t, err, state.ErrNilGraph)
	})

	t.Run("PadCollision", func(t *testing.T) {
		v0 := district.NewVertex(0, 1) // id 0 collides with the default pad
		g, err := district.NewGraph([]*district.Vertex{v0})
		require.NoError(t, err)
		_, err = state.NewMirror(g)
		require.ErrorIs(t, err, state.ErrPadCollision)

		// A distinct sentinel resolves the collision.
		_, err = state.NewMirror(g, state.WithPad(-1))
		require.NoError(t, err)
	})

	t.Run("NonPositiveDistrict", func(t *testing.T) {
		v := district.NewVertex(1, 0)
		g, err := district.NewGraph([]*district.Vertex{v})
		require.NoError(t, err)
		_, err = state.NewMirror(g)
		require.ErrorIs(t, err, state.ErrNonPositiveDistrict)
	})
}

func TestMirror_Layout(t *testing.T) {
	g := chainGraph(t)
	m, err := state.NewMirror(g)
	require.NoError(t, err)

	require.Equal(t, 4, m.Rows())
	require.Equal(t, 3, m.Cols(), "1 + max degree of the chain")

	// Row order follows ascending vertex id.
	for row := 0; row < m.Rows(); row++ {
		id, ierr := m.IDOf(row)
		require.NoError(t, ierr)
		require.Equal(t, district.VertexID(row+1), id)
		back, rerr := m.RowOf(id)
		require.NoError(t, rerr)
		require.Equal(t, row, back)
	}

	// Column 0: district, negated on border. Columns 1..: padded neighbors.
	rows := [][]float64{
		{1, 2, 0},  // vertex 1: interior district 1, neighbor 2, pad
		{-1, 1, 3}, // vertex 2: border district 1, neighbors 1 and 3
		{-2, 2, 4}, // vertex 3: border district 2, neighbors 2 and 4
		{2, 3, 0},  // vertex 4: interior district 2, neighbor 3, pad
	}
	for i, want := range rows {
		got, rerr := m.Row(i)
		require.NoError(t, rerr)
		require.Equal(t, want, got, "row %d", i)
	}

	_, err = m.RowOf(42)
	require.ErrorIs(t, err, state.ErrUnknownVertex)
	_, err = m.IDOf(4)
	require.ErrorIs(t, err, state.ErrOutOfRange)
}

func TestMirror_ApplyMove(t *testing.T) {
	g := chainGraph(t)
	m, err := state.NewMirror(g)
	require.NoError(t, err)

	res, err := g.MoveVertex(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.ApplyMove(res))

	// After the move: 1 is border(1), 2 is border(2), 3 and 4 interior(2).
	wantCol0 := []float64{-1, -2, 2, 2}
	for row, want := range wantCol0 {
		got, aerr := m.At(row, 0)
		require.NoError(t, aerr)
		require.Equal(t, want, got, "row %d col 0", row)
	}

	// A patch must agree with a full regeneration.
	patched := m.Snapshot()
	m.Rebuild()
	require.Equal(t, m.Snapshot(), patched)
}

func TestMirror_RandomWalkStaysConsistent(t *testing.T) {
	// 6×6 grid split into two vertical districts.
	const n = 6
	id := func(x, y int) district.VertexID { return district.VertexID(y*n + x + 1) }
	vertices := make([]*district.Vertex, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			d := district.DistrictID(1)
			if x >= n/2 {
				d = 2
			}
			v := district.NewVertex(id(x, y), d)
			var ns []district.VertexID
			if x > 0 {
				ns = append(ns, id(x-1, y))
			}
			if x < n-1 {
				ns = append(ns, id(x+1, y))
			}
			if y > 0 {
				ns = append(ns, id(x, y-1))
			}
			if y < n-1 {
				ns = append(ns, id(x, y+1))
			}
			v.SetNeighbors(ns...)
			vertices = append(vertices, v)
		}
	}
	g, err := district.NewGraph(vertices)
	require.NoError(t, err)
	g.DiscoverBorders()

	m, err := state.NewMirror(g)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		facts := g.BorderFacts()
		if len(facts) == 0 {
			break
		}
		pick := facts[rng.Intn(len(facts))]

		res, merr := g.MoveVertex(pick.Vertex, pick.Neighboring)
		require.NoError(t, merr)
		require.NoError(t, m.ApplyMove(res))

		// Incremental patching must match a mirror built from scratch.
		fresh, ferr := state.NewMirror(g)
		require.NoError(t, ferr)
		require.Equal(t, fresh.Snapshot(), m.Snapshot(), "step %d", i)
	}
}
