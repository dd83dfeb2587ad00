package lncgen

import (
	"io/fs"

	"github.com/goliatone/go-lncgen/pkg/renderers/summary"
)

// EmbeddedTemplates exposes the built-in summary templates so callers can
// copy or extend them and pass the result back through
// summary.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return summary.TemplatesFS()
}
