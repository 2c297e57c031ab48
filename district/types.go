// Package district core types: identifiers, Vertex, BorderFact, MoveResult,
// and the functional Option set consumed by NewGraph.
package district

import "sort"

// VertexID uniquely identifies a vertex (a precinct in districting data).
// Ids are assigned at construction and never reused.
type VertexID int64

// DistrictID names the district a vertex currently belongs to.
type DistrictID int64

// Vertex is a node of the partition graph: immutable id and neighbor set,
// mutable district assignment. The district is mutated only through
// Graph.MoveVertex once the vertex is registered in a graph.
type Vertex struct {
	id        VertexID
	district  DistrictID
	neighbors map[VertexID]struct{}
}

// NewVertex creates a vertex in the given district with an empty neighbor set.
// Complexity: O(1).
func NewVertex(id VertexID, district DistrictID) *Vertex {
	return &Vertex{
		id:        id,
		district:  district,
		neighbors: make(map[VertexID]struct{}),
	}
}

// SetNeighbors replaces the neighbor set with the given ids, deduplicated.
// Self-references are dropped (no self-loops). Construction-time only: calling
// it after the vertex is registered in a graph's border index is unsupported.
// Complexity: O(len(ids)).
func (v *Vertex) SetNeighbors(ids ...VertexID) {
	v.neighbors = make(map[VertexID]struct{}, len(ids))
	for _, id := range ids {
		if id == v.id {
			continue
		}
		v.neighbors[id] = struct{}{}
	}
}

// ID returns the vertex identifier. Complexity: O(1).
func (v *Vertex) ID() VertexID { return v.id }

// District returns the current district assignment. Complexity: O(1).
func (v *Vertex) District() DistrictID { return v.district }

// Degree returns the neighbor count. Complexity: O(1).
func (v *Vertex) Degree() int { return len(v.neighbors) }

// Neighbors returns the neighbor ids in ascending order.
// Complexity: O(d log d).
func (v *Vertex) Neighbors() []VertexID {
	ids := make([]VertexID, 0, len(v.neighbors))
	for id := range v.neighbors {
		ids = append(ids, id)
	}
	sortVertexIDs(ids)

	return ids
}

// BorderFact is the descriptor stored per (vertex, neighboring district) pair:
// the border vertex, its current district, and the adjacent district it
// borders. District is a snapshot refreshed on every rebuild of the vertex's
// entries; it is never left stale after a move.
type BorderFact struct {
	Vertex      VertexID
	District    DistrictID
	Neighboring DistrictID
}

// MoveResult reports a completed move: the vertex, its former and new
// districts, and the affected set (the moved vertex plus its direct
// neighbors, ascending) whose border entries were rebuilt. Derived consumers
// such as a dense state mirror patch exactly these rows.
type MoveResult struct {
	Vertex   VertexID
	From     DistrictID
	To       DistrictID
	Affected []VertexID
}

// borderKey indexes the border map by (vertex, neighboring district).
// Comparable struct keys keep lookups allocation-free.
type borderKey struct {
	vertex   VertexID
	district DistrictID
}

// Option configures a Graph before construction completes.
type Option func(*Graph)

// WithSymmetryCheck makes NewGraph reject adjacency lists that are not
// symmetric (u lists v but v does not list u) with ErrAsymmetricEdge.
// Without it only the listed direction is used for border computation.
func WithSymmetryCheck() Option {
	return func(g *Graph) { g.checkSymmetry = true }
}

// sortVertexIDs sorts ids ascending; shared by every deterministic
// enumeration surface.
func sortVertexIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// sortDistrictIDs sorts district ids ascending.
func sortDistrictIDs(ids []DistrictID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
