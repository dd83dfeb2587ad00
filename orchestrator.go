package lncgen

import (
	"context"
	"fmt"

	"github.com/goliatone/go-lncgen/pkg/draft"
	"github.com/goliatone/go-lncgen/pkg/form"
	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/orchestrator"
)

// Config aliases model.Config for callers that only import the root package.
type Config = model.Config

// Hint aliases model.Hint.
type Hint = model.Hint

// Draft aliases draft.Draft.
type Draft = draft.Draft

// ErrInvalidModel is returned when exporting while the flag or port is
// invalid.
var ErrInvalidModel = orchestrator.ErrInvalidModel

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(options...)
}

// LoadDraft reads a YAML or JSON draft (or an existing chall.json).
func LoadDraft(path string) (Draft, error) {
	return draft.Load(path)
}

// Generate renders kind for cfg and files. Rendering does not require a
// valid model; use GenerateExport for the gated variant.
func Generate(ctx context.Context, cfg Config, files []string, kind string) ([]byte, error) {
	o, err := seeded(cfg, files)
	if err != nil {
		return nil, err
	}
	out, err := o.Render(ctx, kind)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// GenerateExport renders kind only when the model is valid, returning
// ErrInvalidModel otherwise.
func GenerateExport(ctx context.Context, cfg Config, files []string, kind string) ([]byte, error) {
	o, err := seeded(cfg, files)
	if err != nil {
		return nil, err
	}
	art, err := o.Export(ctx, kind)
	if err != nil {
		return nil, err
	}
	return art.Content, nil
}

// GenerateFromDraft loads the draft at path, replays it through the form
// manager, and renders kind.
func GenerateFromDraft(ctx context.Context, path, kind string) ([]byte, error) {
	d, err := draft.Load(path)
	if err != nil {
		return nil, err
	}
	m := form.New()
	if err := d.Apply(m); err != nil {
		return nil, err
	}
	o, err := orchestrator.New(orchestrator.WithManager(m))
	if err != nil {
		return nil, err
	}
	out, err := o.Render(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("lncgen: %w", err)
	}
	return []byte(out), nil
}

func seeded(cfg Config, files []string) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(orchestrator.WithManager(form.New(
		form.WithConfig(cfg),
		form.WithFiles(files),
	)))
}
