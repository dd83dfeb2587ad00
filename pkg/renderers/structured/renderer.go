package structured

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-lncgen/pkg/render"
)

const (
	// FileName is the default download name of the structured document.
	FileName = "chall.json"
	indent   = "    "
)

// Renderer emits the structured (JSON) document.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns a structured document renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string        { return render.KindStructured }
func (r *Renderer) ContentType() string { return "application/json" }
func (r *Renderer) FileName() string    { return FileName }

// Render serialises the normalised payload with 4-space indentation.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Marshal(NewPayload(doc.Config))
}

// Marshal encodes p without HTML escaping and without a trailing newline.
func Marshal(p Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("structured: encode: %w", err)
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 as raw characters, which
// encoding/json always escapes. Other escape sequences are copied unchanged.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			i++
			continue
		}
		if i+6 <= len(b) {
			switch string(b[i+1 : i+6]) {
			case "u2028":
				out = utf8.AppendRune(out, '\u2028')
				i += 6
				continue
			case "u2029":
				out = utf8.AppendRune(out, '\u2029')
				i += 6
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i += 2
	}
	return out
}
