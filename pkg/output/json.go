package output

import (
	"encoding/json"
	"io"
)

// JSONRenderer renders analysis results as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render writes v to w as indented JSON.
func (r *JSONRenderer) Render(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
