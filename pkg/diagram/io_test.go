package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pentagongym/gymdiag/pkg/errors"
)

func TestJSONRoundTrip(t *testing.T) {
	d := sample()

	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"kind": "inheritance"`) {
		t.Errorf("JSON output missing relationship kind:\n%s", buf.String())
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ReadJSON returned %d diagrams, want 1", len(got))
	}
	if got[0].Name != d.Name || len(got[0].Boxes) != len(d.Boxes) {
		t.Errorf("round trip lost data: %+v", got[0])
	}
	if err := got[0].Validate(); err != nil {
		t.Errorf("round-tripped diagram invalid: %v", err)
	}
}

func TestReadJSONEnvelope(t *testing.T) {
	input := `{"diagrams": [
		{"name": "a", "kind": "erd", "width": 10, "height": 10},
		{"name": "b", "kind": "class", "width": 20, "height": 20}
	]}`

	got, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a" || got[1].Kind != KindClass {
		t.Errorf("ReadJSON envelope = %+v", got)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`[1, 2`))
	if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
		t.Errorf("ReadJSON(garbage) code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidDiagram)
	}
}

func TestReadJSONRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"diagram", `{"name": "x", "kind": "erd", "width": 10, "height": 10, "boxs": [{"label": "A"}]}`},
		{"box", `{"name": "x", "kind": "erd", "width": 10, "height": 10, "boxes": [{"label": "A", "colour": "red"}]}`},
		{"envelope", `{"diagrams": [{"name": "x", "kind": "erd", "width": 10, "height": 10}], "version": 2}`},
		{"envelope entry", `{"diagrams": [{"name": "x", "kind": "erd", "widht": 10, "height": 10}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
				t.Errorf("ReadJSON() error = %v, want INVALID_DIAGRAM", err)
			}
			if err != nil && !strings.Contains(err.Error(), "unknown field") {
				t.Errorf("error %q does not mention the unknown field", err)
			}
		})
	}
}

const tomlSample = `
[[diagram]]
name = "gym_erd"
kind = "erd"
title = "Gym ERD"
width = 20
height = 16

  [[diagram.boxes]]
  label = "USER"
  kind = "entity"
  x = 1
  y = 12
  w = 3
  h = 3
  attributes = ["id (PK)", "email"]

  [[diagram.boxes]]
  label = "MEMBER"
  kind = "entity"
  x = 6
  y = 12
  w = 3
  h = 3
  attributes = ["id (PK)", "userId (FK)"]

  [[diagram.relationships]]
  from = "USER"
  to = "MEMBER"
  kind = "relation"
  cardinality = "1:1"
`

func TestReadTOML(t *testing.T) {
	got, err := ReadTOML(strings.NewReader(tomlSample))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ReadTOML returned %d diagrams, want 1", len(got))
	}
	d := got[0]
	if d.Kind != KindERD || len(d.Boxes) != 2 || d.Relationships[0].Cardinality != "1:1" {
		t.Errorf("ReadTOML = %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestReadTOMLRejectsUnknownKeys(t *testing.T) {
	input := tomlSample + "\n  colour = \"red\"\n"
	_, err := ReadTOML(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Errorf("ReadTOML with typo = %v, want unknown keys error", err)
	}
}

func TestReadTOMLEmpty(t *testing.T) {
	_, err := ReadTOML(strings.NewReader(""))
	if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
		t.Errorf("ReadTOML(empty) = %v, want INVALID_DIAGRAM", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "diagrams.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlSample), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := Load(tomlPath); err != nil || len(got) != 1 {
		t.Errorf("Load(toml) = %v, %v", got, err)
	}

	jsonPath := filepath.Join(dir, "diagram.json")
	data, err := MarshalJSON(sample())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := Load(jsonPath); err != nil || got[0].Name != "sample" {
		t.Errorf("Load(json) = %v, %v", got, err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) = %v, want FILE_NOT_FOUND", err)
	}

	yamlPath := filepath.Join(dir, "diagram.yaml")
	if err := os.WriteFile(yamlPath, []byte("name: x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Load(yaml) = %v, want UNSUPPORTED", err)
	}
}

func TestLoadExampleTables(t *testing.T) {
	diagrams, err := Load(filepath.Join("..", "..", "examples", "diagrams", "coach_schedule.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(diagrams) != 2 {
		t.Fatalf("Load returned %d diagrams, want 2", len(diagrams))
	}
	for _, d := range diagrams {
		if err := d.Validate(); err != nil {
			t.Errorf("%s: %v", d.Name, err)
		}
	}
	if diagrams[1].Kind != KindSequence || len(diagrams[1].Sequence.Messages) != 5 {
		t.Errorf("sequence table = %+v", diagrams[1].Sequence)
	}
}
