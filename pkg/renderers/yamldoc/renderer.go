// Package yamldoc renders the challenge as challenge.yml, carrying the same
// normalised fields as the structured document.
package yamldoc

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-lncgen/pkg/render"
	"github.com/goliatone/go-lncgen/pkg/renderers/structured"
)

// FileName is the default download name of the YAML document.
const FileName = "challenge.yml"

// Renderer emits the YAML document.
type Renderer struct {
	indent int
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a YAML renderer using 2-space indentation.
func New() *Renderer {
	return &Renderer{indent: 2}
}

func (r *Renderer) Name() string        { return render.KindYAML }
func (r *Renderer) ContentType() string { return "application/yaml" }
func (r *Renderer) FileName() string    { return FileName }

// Render encodes the normalised payload.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(r.indent)
	if err := enc.Encode(structured.NewPayload(doc.Config)); err != nil {
		return nil, fmt.Errorf("yamldoc: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yamldoc: close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
