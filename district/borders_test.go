package district_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnaudbergeron/GFN-election-interference/district"
)

// gridGraph builds a w×h 4-connected grid with ids 1..w*h (row-major) and
// districts by vertical half: left columns district 1, right columns 2.
func gridGraph(t *testing.T, w, h int) *district.Graph {
	t.Helper()

	id := func(x, y int) district.VertexID { return district.VertexID(y*w + x + 1) }
	vertices := make([]*district.Vertex, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := district.DistrictID(1)
			if x >= w/2 {
				d = 2
			}
			v := district.NewVertex(id(x, y), d)
			var ns []district.VertexID
			if x > 0 {
				ns = append(ns, id(x-1, y))
			}
			if x < w-1 {
				ns = append(ns, id(x+1, y))
			}
			if y > 0 {
				ns = append(ns, id(x, y-1))
			}
			if y < h-1 {
				ns = append(ns, id(x, y+1))
			}
			v.SetNeighbors(ns...)
			vertices = append(vertices, v)
		}
	}

	g, err := district.NewGraph(vertices, district.WithSymmetryCheck())
	require.NoError(t, err)

	return g
}

// snapshot captures every vertex's district and the full border index.
func snapshot(t *testing.T, g *district.Graph) (map[district.VertexID]district.DistrictID, []district.BorderFact) {
	t.Helper()

	districts := make(map[district.VertexID]district.DistrictID, g.VertexCount())
	for _, id := range g.Vertices() {
		d, err := g.District(id)
		require.NoError(t, err)
		districts[id] = d
	}

	return districts, g.BorderFacts()
}

func TestDiscoverBorders_Chain(t *testing.T) {
	g := chainGraph(t)
	require.Zero(t, g.BorderCount(), "index must stay empty until discovery")

	g.DiscoverBorders()

	// Only the two endpoints of the cross-district edge 2-3 are indexed.
	require.Equal(t, 2, g.BorderCount())
	require.Equal(t, []district.BorderFact{
		{Vertex: 2, District: 1, Neighboring: 2},
		{Vertex: 3, District: 2, Neighboring: 1},
	}, g.BorderFacts())

	require.False(t, g.IsBorder(1))
	require.False(t, g.IsBorder(4))
	require.Nil(t, g.BorderDistricts(1))
	requireConsistent(t, g)
}

func TestDiscoverBorders_Idempotent(t *testing.T) {
	g := chainGraph(t)
	g.DiscoverBorders()
	first := g.BorderFacts()

	g.DiscoverBorders()
	require.Equal(t, first, g.BorderFacts())
	requireConsistent(t, g)
}

func TestMoveVertex_Chain(t *testing.T) {
	g := chainGraph(t)
	g.DiscoverBorders()

	// Valid: vertex 2 borders district 2 via neighbor 3.
	res, err := g.MoveVertex(2, 2)
	require.NoError(t, err)
	require.Equal(t, district.MoveResult{
		Vertex:   2,
		From:     1,
		To:       2,
		Affected: []district.VertexID{1, 2, 3},
	}, res)

	d, err := g.District(2)
	require.NoError(t, err)
	require.Equal(t, district.DistrictID(2), d)

	// Vertex 1 now borders district 2 via vertex 2; vertex 2 still borders
	// district 1 via vertex 1; vertices 3 and 4 are interior.
	require.Equal(t, []district.BorderFact{
		{Vertex: 1, District: 1, Neighboring: 2},
		{Vertex: 2, District: 2, Neighboring: 1},
	}, g.BorderFacts())
	require.False(t, g.IsBorder(3))
	require.False(t, g.IsBorder(4))
	requireConsistent(t, g)
}

func TestMoveVertex_Rejections(t *testing.T) {
	g := chainGraph(t)
	g.DiscoverBorders()
	beforeDistricts, beforeFacts := snapshot(t, g)

	cases := []struct {
		name string
		id   district.VertexID
		to   district.DistrictID
		err  error
	}{
		{"UnknownVertex", 42, 2, district.ErrVertexNotFound},
		{"SameDistrict", 2, 1, district.ErrSameDistrict},
		{"NotBordering", 1, 2, district.ErrNotBordering}, // only neighbor of 1 is in district 1
		{"NoSuchBorder", 4, 3, district.ErrNotBordering},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.MoveVertex(tc.id, tc.to)
			require.ErrorIs(t, err, tc.err)

			// Every rejection leaves the graph bit-identical.
			districts, facts := snapshot(t, g)
			require.Equal(t, beforeDistricts, districts)
			require.Equal(t, beforeFacts, facts)
		})
	}

	// Both rejection kinds belong to the recoverable InvalidMove class.
	_, err := g.MoveVertex(2, 1)
	require.ErrorIs(t, err, district.ErrInvalidMove)
	_, err = g.MoveVertex(1, 2)
	require.ErrorIs(t, err, district.ErrInvalidMove)
}

func TestMoveVertex_Locality(t *testing.T) {
	g := gridGraph(t, 8, 8)
	g.DiscoverBorders()
	requireConsistent(t, g)

	// Pick the first possible move from the sorted index.
	facts := g.BorderFacts()
	require.NotEmpty(t, facts)
	pick := facts[0]

	before := make(map[district.VertexID][]district.DistrictID)
	for _, id := range g.Vertices() {
		before[id] = g.BorderDistricts(id)
	}

	res, err := g.MoveVertex(pick.Vertex, pick.Neighboring)
	require.NoError(t, err)

	affected := make(map[district.VertexID]struct{}, len(res.Affected))
	for _, id := range res.Affected {
		affected[id] = struct{}{}
	}
	for _, id := range g.Vertices() {
		if _, ok := affected[id]; ok {
			continue
		}
		require.Equal(t, before[id], g.BorderDistricts(id),
			"vertex %d outside the affected set changed", id)
	}
	requireConsistent(t, g)
}

func TestMoveVertex_RandomWalkInvariant(t *testing.T) {
	g := gridGraph(t, 6, 6)
	g.DiscoverBorders()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		facts := g.BorderFacts()
		if len(facts) == 0 {
			// One district absorbed the other; no legal move remains.
			break
		}
		pick := facts[rng.Intn(len(facts))]

		res, err := g.MoveVertex(pick.Vertex, pick.Neighboring)
		require.NoError(t, err, "step %d", i)
		require.Equal(t, pick.Vertex, res.Vertex)
		require.Equal(t, pick.Neighboring, res.To)

		if i%20 == 0 {
			requireConsistent(t, g)
		}
	}
	requireConsistent(t, g)
}

func TestMoveVertex_MaxDistrictMonotonic(t *testing.T) {
	g := chainGraph(t)
	g.DiscoverBorders()
	require.Equal(t, district.DistrictID(2), g.MaxDistrict())

	_, err := g.MoveVertex(3, 1)
	require.NoError(t, err)
	require.Equal(t, district.DistrictID(2), g.MaxDistrict(), "counter never decreases")
}
