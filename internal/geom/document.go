package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Vertex is the interchange form of a point: an `{x, y}` pair of real
// numbers, with no implicit closing vertex duplicated.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Document is the persisted polygon-set record: a list of polygons
// plus an optional list of intersection rings in the same vertex
// format.
type Document struct {
	Polygons     [][]Vertex `json:"polygons"`
	Intersection [][]Vertex `json:"intersection,omitempty"`
}

// NewDocument builds a document from session rings.
func NewDocument(polygons, intersection []Ring) Document {
	d := Document{Polygons: make([][]Vertex, 0, len(polygons))}
	for _, r := range polygons {
		d.Polygons = append(d.Polygons, ringVertices(r))
	}
	for _, r := range intersection {
		d.Intersection = append(d.Intersection, ringVertices(r))
	}
	return d
}

func ringVertices(r Ring) []Vertex {
	vs := make([]Vertex, len(r))
	for i, p := range r {
		vs[i] = Vertex{X: p.X, Y: p.Y}
	}
	return vs
}

func verticesRing(vs []Vertex) Ring {
	r := make(Ring, len(vs))
	for i, v := range vs {
		r[i] = Point{X: v.X, Y: v.Y}
	}
	return r
}

// Rings returns the document's polygons as vertex rings.
func (d Document) Rings() []Ring {
	out := make([]Ring, 0, len(d.Polygons))
	for _, vs := range d.Polygons {
		out = append(out, verticesRing(vs))
	}
	return out
}

// IntersectionRings returns the document's intersection rings, if any.
func (d Document) IntersectionRings() []Ring {
	out := make([]Ring, 0, len(d.Intersection))
	for _, vs := range d.Intersection {
		out = append(out, verticesRing(vs))
	}
	return out
}

// Validate checks that every polygon and intersection ring is a valid
// isothetic ring, naming the offending ring and vertex.
func (d Document) Validate() error {
	if err := validateRings("polygon", d.Polygons); err != nil {
		return err
	}
	return validateRings("intersection", d.Intersection)
}

func validateRings(kind string, rings [][]Vertex) error {
	for n, vs := range rings {
		if len(vs) < 3 {
			return fmt.Errorf("%s %d: must have at least 3 points", kind, n)
		}
		r := verticesRing(vs)
		for i := range r {
			prev := r[(i+len(r)-1)%len(r)]
			if !IsIsotheticStep(prev, r[i]) {
				return fmt.Errorf("%s %d: non-isothetic edge at point %d", kind, n, i)
			}
		}
	}
	return nil
}

// LoadDocument reads and validates a polygon document. The file must
// carry a "polygons" key; every ring must be isothetic. Nothing is
// returned on error, so a caller can keep its current session intact
// when an import fails.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("invalid JSON format: %w", err)
	}
	if _, ok := raw["polygons"]; !ok {
		return Document{}, errors.New("invalid file format: missing 'polygons' key")
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("invalid JSON format: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Save writes the document as indented JSON.
func (d Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
