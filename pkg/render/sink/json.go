package sink

import (
	"bytes"

	"github.com/pentagongym/gymdiag/pkg/diagram"
)

// RenderJSON exports the diagram table so it can be edited and loaded back
// with --spec.
func RenderJSON(d *diagram.Diagram) ([]byte, error) {
	var buf bytes.Buffer
	if err := diagram.WriteJSON(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
