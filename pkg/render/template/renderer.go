package template

import (
	"io"
)

// TemplateRenderer is the seam text renderers rely on. Output is returned and,
// when writers are supplied, also copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
