package summary

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/render"
	"github.com/goliatone/go-lncgen/pkg/render/template"
	"github.com/goliatone/go-lncgen/pkg/render/template/pongo"
)

const (
	// FileName is the default download name of the summary document.
	FileName = "README.md"
	// DistPrefix is prepended to every file link.
	DistPrefix = "./dist/"

	templateName = "summary.md"
	none         = "None"
)

// Placeholders shown for empty fields.
const (
	PlaceholderName        = "[Challenge Name]"
	PlaceholderDescription = "Description here."
	PlaceholderAuthor      = "[Author]"
	PlaceholderDiscord     = "[Discord]"
)

// Renderer emits the Markdown summary document.
type Renderer struct {
	engine    template.TemplateRenderer
	templates fs.FS
	sanitizer *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a summary renderer backed by the embedded template unless
// options override the engine or template source.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{templates: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.engine == nil {
		engine, err := pongo.New(
			pongo.WithFS(r.templates),
			pongo.WithExtension(".tpl"),
			pongo.WithSetName("summary"),
		)
		if err != nil {
			return nil, fmt.Errorf("summary: template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

func (r *Renderer) Name() string        { return render.KindSummary }
func (r *Renderer) ContentType() string { return "text/markdown; charset=utf-8" }
func (r *Renderer) FileName() string    { return FileName }

// Render executes the summary template for doc.
func (r *Renderer) Render(ctx context.Context, doc render.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.engine.RenderTemplate(templateName, r.viewData(doc))
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) viewData(doc render.Document) map[string]any {
	cfg := doc.Config
	return map[string]any{
		"name":        r.clean(cfg.Name),
		"description": r.clean(cfg.Description),
		"author":      r.clean(cfg.Author),
		"discord":     r.clean(cfg.Discord),
		"category":    string(cfg.Category),
		"difficulty":  string(cfg.Difficulty),
		"flag":        cfg.Flag,
		"hints":       r.hintLines(cfg.Hints),
		"files":       r.fileLines(doc.Files),
		"services":    serviceLine(cfg.Port),
		"placeholder": map[string]any{
			"name":        PlaceholderName,
			"description": PlaceholderDescription,
			"author":      PlaceholderAuthor,
			"discord":     PlaceholderDiscord,
			"flag":        model.FlagPlaceholder,
		},
	}
}

func (r *Renderer) hintLines(hints []model.Hint) string {
	if len(hints) == 0 {
		return none
	}
	lines := make([]string, len(hints))
	for i, h := range hints {
		lines[i] = fmt.Sprintf("- `%s` (%d pts)", r.clean(h.Description), h.Cost)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) fileLines(files []string) string {
	if len(files) == 0 {
		return none
	}
	lines := make([]string, len(files))
	for i, f := range files {
		f = r.clean(f)
		lines[i] = fmt.Sprintf("- [`%s`](%s%s)", f, DistPrefix, f)
	}
	return strings.Join(lines, "\n")
}

func serviceLine(port string) string {
	if port == "" {
		return none
	}
	return fmt.Sprintf("- Runs on port `%s`", port)
}

func (r *Renderer) clean(s string) string {
	if r.sanitizer == nil || s == "" {
		return s
	}
	return r.sanitizer.Sanitize(s)
}
