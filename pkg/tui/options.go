package tui

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/pkg/export"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies the status line styles.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithPreviewer overrides how documents are shown by the preview action.
func WithPreviewer(p Previewer) Option {
	return func(s *Session) {
		if p != nil {
			s.preview = p
		}
	}
}

// WithExporter overrides the exporter used for copy and download.
func WithExporter(e *export.Exporter) Option {
	return func(s *Session) {
		if e != nil {
			s.exporter = e
		}
	}
}

// WithDownloadDir sets where downloaded documents are written.
func WithDownloadDir(dir string) Option {
	return func(s *Session) {
		s.downloadDir = dir
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}
