package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pentagongym/gymdiag/pkg/errors"
)

// file is the on-disk envelope holding several diagram tables.
// In TOML each table is a [[diagram]] entry.
type file struct {
	Diagrams []Diagram `json:"diagrams" toml:"diagram"`
}

// WriteJSON encodes d as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON is a convenience wrapper around [WriteJSON] returning bytes.
func MarshalJSON(d *Diagram) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadJSON decodes diagram tables from r. It accepts either a single
// diagram object or an envelope of the form {"diagrams": [...]}. Unknown
// keys are rejected, as in [ReadTOML].
func ReadJSON(r io.Reader) ([]*Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode JSON")
	}

	if _, ok := top["diagrams"]; ok {
		var f file
		if err := decodeStrict(data, &f); err != nil {
			return nil, err
		}
		return pointers(f.Diagrams), nil
	}

	var d Diagram
	if err := decodeStrict(data, &d); err != nil {
		return nil, err
	}
	return []*Diagram{&d}, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode JSON")
	}
	return nil
}

// ReadTOML decodes [[diagram]] tables from r. Unknown keys are rejected so
// that typos in hand-written tables surface instead of being ignored.
func ReadTOML(r io.Reader) ([]*Diagram, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidDiagram, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(f.Diagrams) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDiagram, "no [[diagram]] tables found")
	}
	return pointers(f.Diagrams), nil
}

// Load reads diagram tables from a .toml or .json file.
func Load(path string) ([]*Diagram, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ReadTOML(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported diagram file extension %q (want .toml or .json)", ext)
	}
}

func pointers(ds []Diagram) []*Diagram {
	out := make([]*Diagram, len(ds))
	for i := range ds {
		out[i] = &ds[i]
	}
	return out
}
