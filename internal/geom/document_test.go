package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocumentRoundTrip(t *testing.T) {
	polys := []Ring{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		{{2, 2}, {6, 2}, {6, 6}, {2, 6}},
	}
	inter := []Ring{
		(Rect{MinX: 2, MinY: 2, MaxX: 4, MaxY: 4}).Ring(),
	}
	doc := NewDocument(polys, inter)

	path := filepath.Join(t.TempDir(), "session.json")
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	rings := got.Rings()
	if len(rings) != 2 {
		t.Fatalf("loaded %d polygons, want 2", len(rings))
	}
	for i, r := range rings {
		if len(r) != len(polys[i]) {
			t.Errorf("polygon %d: %d vertices, want %d", i, len(r), len(polys[i]))
			continue
		}
		for j, p := range r {
			if p != polys[i][j] {
				t.Errorf("polygon %d vertex %d: got %v, want %v", i, j, p, polys[i][j])
			}
		}
	}
	ir := got.IntersectionRings()
	if len(ir) != 1 || len(ir[0]) != 4 {
		t.Fatalf("intersection rings=%v, want one 4-vertex ring", ir)
	}
}

func TestLoadDocumentRejects(t *testing.T) {
	vs := []struct {
		name, body, wantErr string
	}{
		{
			name:    "invalid json",
			body:    "{not json",
			wantErr: "invalid JSON format",
		},
		{
			name:    "missing polygons key",
			body:    `{"intersection": []}`,
			wantErr: "missing 'polygons' key",
		},
		{
			name:    "too few points",
			body:    `{"polygons": [[{"x":0,"y":0},{"x":1,"y":0}]]}`,
			wantErr: "at least 3 points",
		},
		{
			name:    "diagonal edge",
			body:    `{"polygons": [[{"x":0,"y":0},{"x":2,"y":0},{"x":3,"y":3}]]}`,
			wantErr: "non-isothetic edge",
		},
		{
			name:    "diagonal edge in intersection",
			body:    `{"polygons": [], "intersection": [[{"x":0,"y":0},{"x":2,"y":0},{"x":3,"y":3}]]}`,
			wantErr: "non-isothetic edge",
		},
	}
	dir := t.TempDir()
	for _, v := range vs {
		path := filepath.Join(dir, strings.ReplaceAll(v.name, " ", "_")+".json")
		if err := os.WriteFile(path, []byte(v.body), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadDocument(path)
		if err == nil || !strings.Contains(err.Error(), v.wantErr) {
			t.Errorf("%s: err=%v, want containing %q", v.name, err, v.wantErr)
		}
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDocumentValidateNamesTheVertex(t *testing.T) {
	d := Document{Polygons: [][]Vertex{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5}},
	}}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "polygon 1") || !strings.Contains(err.Error(), "point 2") {
		t.Errorf("err=%v, want polygon 1 / point 2 named", err)
	}
}
