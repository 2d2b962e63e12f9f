// SPDX-License-Identifier: MIT

// Package graphio reads and writes labeled digraphs as YAML documents:
//
//	loops: false
//	vertices:
//	  - {id: 0, label: 1}
//	  - {id: 1, label: 2}
//	edges:
//	  - [0, 1]
//
// Vertices are written in ascending ID order and edges in (From, To) order,
// so encoding is deterministic. A document with a self-loop edge decodes into
// a graph that permits loops even when the loops key is absent.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tightsim/core"
)

// Sentinel errors for graph documents.
var (
	// ErrGraphNil is returned by Encode and SaveFile for a nil graph.
	ErrGraphNil = errors.New("graphio: graph is nil")

	// ErrMalformedEdge is returned for an edge entry that is not a [from, to] pair.
	ErrMalformedEdge = errors.New("graphio: edge must be a [from, to] pair")
)

// Document is the on-disk representation of a graph.
type Document struct {
	Loops    bool     `yaml:"loops,omitempty"`
	Vertices []Vertex `yaml:"vertices"`
	Edges    [][]int  `yaml:"edges,flow"`
}

// Vertex is one entry of Document.Vertices.
type Vertex struct {
	ID    int `yaml:"id"`
	Label int `yaml:"label"`
}

// ToDocument snapshots v.
func ToDocument(v core.View) Document {
	doc := Document{Vertices: make([]Vertex, 0, v.VertexCount())}
	for _, id := range v.Vertices() {
		doc.Vertices = append(doc.Vertices, Vertex{ID: id, Label: v.Label(id)})
	}
	for _, e := range core.EdgesOf(v) {
		if e.From == e.To {
			doc.Loops = true
		}
		doc.Edges = append(doc.Edges, []int{e.From, e.To})
	}

	return doc
}

// Graph builds a core.Graph from the document.
func (d Document) Graph() (*core.Graph, error) {
	loops := d.Loops
	for _, e := range d.Edges {
		if len(e) == 2 && e[0] == e[1] {
			loops = true
		}
	}
	var gopts []core.GraphOption
	if loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)

	for _, v := range d.Vertices {
		if err := g.AddVertex(v.ID, v.Label); err != nil {
			return nil, fmt.Errorf("graphio: vertex %d: %w", v.ID, err)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d elements", ErrMalformedEdge, i, len(e))
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("graphio: edge %d→%d: %w", e[0], e[1], err)
		}
	}

	return g, nil
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*core.Graph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return doc.Graph()
}

// Encode writes v to w as YAML.
func Encode(w io.Writer, v core.View) error {
	if v == nil {
		return ErrGraphNil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(v)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// LoadFile decodes the graph stored at path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// SaveFile writes v to path, truncating any existing file.
func SaveFile(path string, v core.View) error {
	if v == nil {
		return ErrGraphNil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := Encode(f, v); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
