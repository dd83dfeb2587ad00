package summary

import (
	"io/fs"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-lncgen/pkg/render/template"
)

// Option configures the summary renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithTemplatesFS loads the summary template from fsys instead of the
// embedded default. The filesystem must contain summary.md.tpl.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// WithSanitizer strips markup from free-text fields before rendering. A nil
// policy selects bluemonday's strict policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy == nil {
			policy = bluemonday.StrictPolicy()
		}
		r.sanitizer = policy
	}
}
