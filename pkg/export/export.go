// Package export delivers rendered documents to the outside world: the system
// clipboard or a file on disk. Both paths go through the orchestrator export
// gate, so nothing leaves the process while the model is invalid.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/pkg/orchestrator"
)

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(text string) error

// ErrInvalidModel is returned by Copy and Download while the model has field
// errors.
var ErrInvalidModel = orchestrator.ErrInvalidModel

// Source renders documents and produces gated artifacts.
// *orchestrator.Orchestrator satisfies it.
type Source interface {
	Render(ctx context.Context, kind string) (string, error)
	Export(ctx context.Context, kind string) (orchestrator.Artifact, error)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClipboard overrides the clipboard writer.
func WithClipboard(w ClipboardWriter) Option {
	return func(e *Exporter) {
		if w != nil {
			e.clipboard = w
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithFileMode sets the permissions of downloaded files.
func WithFileMode(mode os.FileMode) Option {
	return func(e *Exporter) {
		e.fileMode = mode
	}
}

// Exporter copies or downloads rendered documents.
type Exporter struct {
	source    Source
	clipboard ClipboardWriter
	fileMode  os.FileMode
	logger    *zap.Logger
}

// New constructs an Exporter reading artifacts from source.
func New(source Source, options ...Option) *Exporter {
	e := &Exporter{
		source:    source,
		clipboard: clipboard.WriteAll,
		fileMode:  0o644,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Text returns the rendered kind without the validity gate, for previews.
func (e *Exporter) Text(ctx context.Context, kind string) (string, error) {
	return e.source.Render(ctx, kind)
}

// Copy places the rendered kind on the clipboard.
func (e *Exporter) Copy(ctx context.Context, kind string) (orchestrator.Artifact, error) {
	art, err := e.source.Export(ctx, kind)
	if err != nil {
		return orchestrator.Artifact{}, err
	}
	if err := e.clipboard(string(art.Content)); err != nil {
		return orchestrator.Artifact{}, fmt.Errorf("export: copy %s: %w", kind, err)
	}
	e.logger.Info("copied to clipboard", zap.String("kind", kind), zap.Int("bytes", len(art.Content)))
	return art, nil
}

// Download writes the rendered kind into dir under its default file name and
// returns the written path.
func (e *Exporter) Download(ctx context.Context, kind, dir string) (string, error) {
	art, err := e.source.Export(ctx, kind)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, art.FileName)
	if err := os.WriteFile(path, art.Content, e.fileMode); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	e.logger.Info("document written", zap.String("kind", kind), zap.String("path", path))
	return path, nil
}
