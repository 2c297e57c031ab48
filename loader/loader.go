// Package loader reads a precinct dataset into district vertices.
//
// The expected format is a JSON array of records, one per precinct:
//
//	[
//	  {"id": 1, "district": 2, "adj": [2, 5]},
//	  {"id": 2, "district": 2, "adj": [1]},
//	  ...
//	]
//
// where id is the precinct identifier, district its initial assignment and
// adj its adjacency list. The loader only produces fully-initialized
// *district.Vertex values; all structural validation (duplicate ids, unknown
// or asymmetric adjacency) happens in district.NewGraph, which owns those
// rules.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arnaudbergeron/GFN-election-interference/district"
)

// ErrEmptyDataset indicates the input decoded to zero records.
var ErrEmptyDataset = errors.New("loader: dataset has no records")

// Record is one precinct row of the raw dataset.
type Record struct {
	ID       int64   `json:"id"`
	District int64   `json:"district"`
	Adj      []int64 `json:"adj"`
}

// Parse decodes a JSON record array from r and builds one vertex per record.
// Returns ErrEmptyDataset for an empty array and wraps decode failures.
// Complexity: O(V + E).
func Parse(r io.Reader) ([]*district.Vertex, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("loader: decode dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return Build(records), nil
}

// Build converts raw records into vertices, deduplicating each adjacency
// list through SetNeighbors. Complexity: O(V + E).
func Build(records []Record) []*district.Vertex {
	vertices := make([]*district.Vertex, 0, len(records))
	for _, rec := range records {
		v := district.NewVertex(district.VertexID(rec.ID), district.DistrictID(rec.District))
		adj := make([]district.VertexID, 0, len(rec.Adj))
		for _, nid := range rec.Adj {
			adj = append(adj, district.VertexID(nid))
		}
		v.SetNeighbors(adj...)
		vertices = append(vertices, v)
	}

	return vertices
}

// Load reads and parses the dataset file at path.
func Load(path string) ([]*district.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
