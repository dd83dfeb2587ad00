// Package renderers wires the built-in document renderers into a registry and
// exposes pure convenience functions for the two primary documents.
package renderers

import (
	"context"
	"fmt"

	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/render"
	"github.com/goliatone/go-lncgen/pkg/renderers/structured"
	"github.com/goliatone/go-lncgen/pkg/renderers/summary"
	"github.com/goliatone/go-lncgen/pkg/renderers/yamldoc"
)

// DefaultRegistry registers the structured, summary and yaml renderers.
// Summary options are forwarded to the summary renderer.
func DefaultRegistry(summaryOpts ...summary.Option) (*render.Registry, error) {
	sum, err := summary.New(summaryOpts...)
	if err != nil {
		return nil, err
	}

	reg := render.NewRegistry()
	for _, r := range []render.Renderer{structured.New(), sum, yamldoc.New()} {
		if err := reg.Register(r); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// RenderStructured returns the structured document for cfg.
func RenderStructured(cfg model.Config, files []string) (string, error) {
	out, err := structured.New().Render(context.Background(), render.NewDocument(cfg, files))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// RenderSummary returns the summary document for cfg and files.
func RenderSummary(cfg model.Config, files []string) (string, error) {
	r, err := summary.New()
	if err != nil {
		return "", err
	}
	out, err := r.Render(context.Background(), render.NewDocument(cfg, files))
	if err != nil {
		return "", fmt.Errorf("renderers: %w", err)
	}
	return string(out), nil
}
