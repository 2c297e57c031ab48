// File: queries.go
// Role: read surface over the vertex catalog and the border index.
//
// Determinism:
//   - Every enumeration (Vertices, Districts, BorderDistricts, BorderFacts)
//     returns ascending order; rely on it for stable test assertions.
package district

import (
	"fmt"
	"sort"
)

// District returns the current district of a vertex.
// Complexity: O(1).
func (g *Graph) District(id VertexID) (DistrictID, error) {
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("district of %d: %w", id, ErrVertexNotFound)
	}

	return v.district, nil
}

// Neighbors returns the neighbor ids of a vertex in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("neighbors of %d: %w", id, ErrVertexNotFound)
	}

	return v.Neighbors(), nil
}

// IsBorder reports whether the vertex currently borders another district.
// Unknown ids report false. Complexity: O(1).
func (g *Graph) IsBorder(id VertexID) bool {
	return len(g.borderDistricts[id]) > 0
}

// HasBorder reports whether the vertex currently borders district d, i.e.
// whether MoveVertex(id, d) would pass the adjacency precondition.
// Complexity: O(1).
func (g *Graph) HasBorder(id VertexID, d DistrictID) bool {
	_, ok := g.borders[borderKey{id, d}]

	return ok
}

// BorderDistricts returns the districts the vertex currently borders,
// ascending; nil when the vertex is interior. Complexity: O(k log k).
func (g *Graph) BorderDistricts(id VertexID) []DistrictID {
	set := g.borderDistricts[id]
	if len(set) == 0 {
		return nil
	}
	out := make([]DistrictID, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sortDistrictIDs(out)

	return out
}

// BorderFacts returns a snapshot of the whole border index, sorted by vertex
// then neighboring district. Complexity: O(B log B).
func (g *Graph) BorderFacts() []BorderFact {
	out := make([]BorderFact, 0, len(g.borders))
	for _, f := range g.borders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Vertex != out[j].Vertex {
			return out[i].Vertex < out[j].Vertex
		}

		return out[i].Neighboring < out[j].Neighboring
	})

	return out
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sortVertexIDs(ids)

	return ids
}

// Districts returns the distinct districts currently in use, ascending.
// Complexity: O(V + D log D).
func (g *Graph) Districts() []DistrictID {
	seen := make(map[DistrictID]struct{})
	for _, v := range g.vertices {
		seen[v.district] = struct{}{}
	}
	out := make([]DistrictID, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sortDistrictIDs(out)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// BorderCount returns the number of border vertices. Complexity: O(1).
func (g *Graph) BorderCount() int { return len(g.borderDistricts) }

// MaxDistrict returns the largest district id observed so far, a monotonic
// informational counter. Complexity: O(1).
func (g *Graph) MaxDistrict() DistrictID { return g.maxDistrict }
