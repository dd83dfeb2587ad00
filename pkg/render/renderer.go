package render

import (
	"context"

	"github.com/goliatone/go-lncgen/pkg/model"
)

// Document kinds understood by the default registry.
const (
	KindStructured = "structured"
	KindSummary    = "summary"
	KindYAML       = "yaml"
)

// Document is the renderer input: the challenge configuration plus the file
// list that travels beside it.
type Document struct {
	Config model.Config
	Files  []string
}

// NewDocument copies cfg and files so renderers never observe later edits.
func NewDocument(cfg model.Config, files []string) Document {
	return Document{
		Config: cfg.Clone(),
		Files:  append([]string(nil), files...),
	}
}

// Renderer converts a Document into one textual artifact. Implementations must
// be deterministic: the same Document always yields the same bytes.
type Renderer interface {
	// Name is the document kind, used as the registry key.
	Name() string
	ContentType() string
	// FileName is the default name used when the artifact is downloaded.
	FileName() string
	Render(ctx context.Context, doc Document) ([]byte, error)
}
