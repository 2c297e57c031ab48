// File: graph.go
// Role: Graph construction, border discovery, and the single mutation
// (MoveVertex) with incremental border-index maintenance.
//
// Index invariants (hold after every completed operation):
//  1. borderDistricts[v] exists with a non-empty set iff v has at least one
//     neighbor in a different district; empty sets are removed, never kept.
//  2. borders holds exactly one BorderFact per (v, d) with d in
//     borderDistricts[v]; the two maps stay in lock-step.
//  3. every stored BorderFact.District equals the vertex's current district.
//
// A detected lock-step violation is an internal-logic fault and panics rather
// than being patched over.
package district

import "fmt"

// Graph owns a fixed set of vertices partitioned into districts and the
// border index over them. Construction fixes topology; MoveVertex is the only
// mutator afterwards. Not safe for concurrent mutation.
type Graph struct {
	vertices        map[VertexID]*Vertex
	borders         map[borderKey]BorderFact
	borderDistricts map[VertexID]map[DistrictID]struct{}
	maxDistrict     DistrictID
	discovered      bool
	checkSymmetry   bool
}

// NewGraph takes ownership of fully-initialized vertices and builds the
// vertex catalog; the border index starts empty until DiscoverBorders runs.
//
// Returns ErrNilVertex, ErrDuplicateVertexID or ErrUnknownNeighbor on
// malformed input, and ErrAsymmetricEdge when WithSymmetryCheck is set and
// some edge is listed in one direction only. Complexity: O(V + E).
func NewGraph(vertices []*Vertex, opts ...Option) (*Graph, error) {
	g := &Graph{
		vertices:        make(map[VertexID]*Vertex, len(vertices)),
		borders:         make(map[borderKey]BorderFact),
		borderDistricts: make(map[VertexID]map[DistrictID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	// Catalog pass: unique ids, track the largest district seen.
	for _, v := range vertices {
		if v == nil {
			return nil, ErrNilVertex
		}
		if _, exists := g.vertices[v.id]; exists {
			return nil, fmt.Errorf("vertex %d: %w", v.id, ErrDuplicateVertexID)
		}
		g.vertices[v.id] = v
		if v.district > g.maxDistrict {
			g.maxDistrict = v.district
		}
	}

	// Adjacency pass: every listed neighbor must exist.
	for _, v := range g.vertices {
		for nid := range v.neighbors {
			n, ok := g.vertices[nid]
			if !ok {
				return nil, fmt.Errorf("vertex %d lists %d: %w", v.id, nid, ErrUnknownNeighbor)
			}
			if g.checkSymmetry {
				if _, back := n.neighbors[v.id]; !back {
					return nil, fmt.Errorf("vertex %d lists %d: %w", v.id, nid, ErrAsymmetricEdge)
				}
			}
		}
	}

	return g, nil
}

// DiscoverBorders seeds the border index with one full pass: for every vertex
// and every neighbor in a different district, the border fact is recorded for
// the visited vertex, so both endpoints of a cross-district edge end up
// indexed independently. Must run once after construction, before any move;
// repeated calls are no-ops. Complexity: O(V + E).
func (g *Graph) DiscoverBorders() {
	if g.discovered {
		return
	}
	for _, v := range g.vertices {
		for nid := range v.neighbors {
			if n := g.vertices[nid]; v.district != n.district {
				g.updateBorder(v, n)
			}
		}
	}
	g.discovered = true
}

// MoveVertex reassigns one vertex to an adjacent district, the sole mutation.
//
// Rejections (no state is touched): ErrVertexNotFound for an unknown id,
// ErrSameDistrict when to equals the current district, ErrNotBordering when
// the vertex has no neighbor currently in to — a vertex may only move into a
// district it already borders, which models contiguity-preserving moves.
//
// On success the border index is restored by clearing every entry of the
// affected set (the moved vertex plus its direct neighbors — border status
// depends only on one's own district and one's neighbors' districts, so no
// other vertex can change) and re-scanning just those vertices. The full
// clear-then-rebuild over the affected set trades a degree-bounded constant
// factor for correctness that needs no incremental case analysis.
// Complexity: O(d²) for degree bound d.
func (g *Graph) MoveVertex(id VertexID, to DistrictID) (MoveResult, error) {
	v, ok := g.vertices[id]
	if !ok {
		return MoveResult{}, fmt.Errorf("move vertex %d: %w", id, ErrVertexNotFound)
	}
	from := v.district
	if to == from {
		return MoveResult{}, fmt.Errorf("vertex %d into district %d: %w", id, to, ErrSameDistrict)
	}
	if _, onBorder := g.borders[borderKey{id, to}]; !onBorder {
		return MoveResult{}, fmt.Errorf("vertex %d into district %d: %w", id, to, ErrNotBordering)
	}

	// Apply the reassignment before any index work; updateBorder must only
	// ever observe post-move districts.
	v.district = to
	if to > g.maxDistrict {
		g.maxDistrict = to
	}

	// The moved vertex itself belongs in the affected set: its standing with
	// respect to the former district is resolved by its own rebuild.
	affected := make([]VertexID, 0, len(v.neighbors)+1)
	affected = append(affected, id)
	for nid := range v.neighbors {
		affected = append(affected, nid)
	}
	sortVertexIDs(affected)

	// Clear first, for the whole set, then rebuild: re-insertion for one
	// vertex must never race its own clearing.
	for _, wid := range affected {
		g.clearBorders(wid)
	}
	for _, wid := range affected {
		w := g.vertices[wid]
		for nid := range w.neighbors {
			if n := g.vertices[nid]; w.district != n.district {
				g.updateBorder(w, n)
			}
		}
	}

	return MoveResult{Vertex: id, From: from, To: to, Affected: affected}, nil
}

// updateBorder records that v borders n's district: inserts/overwrites the
// BorderFact for (v, n.district) and adds n.district to v's border set.
// Callers guarantee v.district != n.district and that districts are already
// post-move when invoked during a rebuild. Complexity: O(1).
func (g *Graph) updateBorder(v, n *Vertex) {
	g.borders[borderKey{v.id, n.district}] = BorderFact{
		Vertex:      v.id,
		District:    v.district,
		Neighboring: n.district,
	}
	set, ok := g.borderDistricts[v.id]
	if !ok {
		set = make(map[DistrictID]struct{})
		g.borderDistricts[v.id] = set
	}
	set[n.district] = struct{}{}
}

// clearBorders removes every border entry of one vertex from both maps,
// leaving it unindexed. A district present in the per-vertex set without a
// matching fact means the maps fell out of lock-step; that is a broken
// maintenance contract, surfaced as a panic. Complexity: O(k) entries.
func (g *Graph) clearBorders(id VertexID) {
	set, ok := g.borderDistricts[id]
	if !ok {
		return
	}
	for d := range set {
		key := borderKey{id, d}
		if _, ok = g.borders[key]; !ok {
			panic(fmt.Sprintf("district: border index out of sync: vertex %d, district %d", id, d))
		}
		delete(g.borders, key)
	}
	delete(g.borderDistricts, id)
}
