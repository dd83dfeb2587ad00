package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/pkg/form"
	"github.com/goliatone/go-lncgen/pkg/model"
	"github.com/goliatone/go-lncgen/pkg/render"
	"github.com/goliatone/go-lncgen/pkg/renderers"
	"github.com/goliatone/go-lncgen/pkg/renderers/summary"
)

// ErrInvalidModel is returned by Export while the flag or port blocks export.
var ErrInvalidModel = errors.New("orchestrator: please fix the highlighted errors before copying or downloading")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithManager injects an existing form manager.
func WithManager(manager *form.Manager) Option {
	return func(o *Orchestrator) {
		o.manager = manager
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithSummaryOptions forwards options to the default summary renderer. Ignored
// when WithRegistry is used.
func WithSummaryOptions(opts ...summary.Option) Option {
	return func(o *Orchestrator) {
		o.summaryOpts = append(o.summaryOpts, opts...)
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the manager and the renderers for one session.
type Orchestrator struct {
	manager     *form.Manager
	registry    *render.Registry
	summaryOpts []summary.Option
	logger      *zap.Logger
}

// Snapshot captures both primary documents together with the validity state
// they were rendered under.
type Snapshot struct {
	Structured  string
	Summary     string
	Valid       bool
	FieldErrors []model.FieldValidationError
}

// Artifact is an exportable rendered document.
type Artifact struct {
	Kind        string
	FileName    string
	ContentType string
	Content     []byte
}

// New constructs an Orchestrator. Missing dependencies are initialised with
// the built-in implementations.
func New(options ...Option) (*Orchestrator, error) {
	o := &Orchestrator{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.manager == nil {
		o.manager = form.New(form.WithLogger(o.logger))
	}
	if o.registry == nil {
		registry, err := renderers.DefaultRegistry(o.summaryOpts...)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: default registry: %w", err)
		}
		o.registry = registry
	}
	return o, nil
}

// Manager returns the underlying form manager.
func (o *Orchestrator) Manager() *form.Manager {
	return o.manager
}

// Kinds lists the registered document kinds.
func (o *Orchestrator) Kinds() []string {
	return o.registry.List()
}

// Render renders the current model as kind. Rendering is always allowed,
// regardless of validity.
func (o *Orchestrator) Render(ctx context.Context, kind string) (string, error) {
	out, err := o.render(ctx, kind)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Snapshot renders the structured and summary documents for the current
// model.
func (o *Orchestrator) Snapshot(ctx context.Context) (Snapshot, error) {
	structuredOut, err := o.Render(ctx, render.KindStructured)
	if err != nil {
		return Snapshot{}, err
	}
	summaryOut, err := o.Render(ctx, render.KindSummary)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Structured:  structuredOut,
		Summary:     summaryOut,
		Valid:       o.manager.Valid(),
		FieldErrors: o.manager.FieldErrors(),
	}, nil
}

// Export renders kind for copy or download. It fails with ErrInvalidModel,
// joined with the individual field errors, while the model is invalid.
func (o *Orchestrator) Export(ctx context.Context, kind string) (Artifact, error) {
	if err := o.manager.Err(); err != nil {
		o.logger.Debug("export refused", zap.String("kind", kind), zap.Error(err))
		return Artifact{}, errors.Join(ErrInvalidModel, err)
	}

	renderer, err := o.registry.Get(kind)
	if err != nil {
		return Artifact{}, fmt.Errorf("orchestrator: %w", err)
	}
	out, err := o.render(ctx, kind)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Kind:        kind,
		FileName:    renderer.FileName(),
		ContentType: renderer.ContentType(),
		Content:     out,
	}, nil
}

func (o *Orchestrator) render(ctx context.Context, kind string) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	doc := render.NewDocument(o.manager.Config(), o.manager.Files())
	out, err := o.registry.Render(ctx, kind, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return out, nil
}
