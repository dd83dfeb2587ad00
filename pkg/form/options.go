package form

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-lncgen/pkg/model"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger attaches a logger used for debug traces of mutations.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithConfig seeds the manager with an existing configuration instead of the
// session defaults.
func WithConfig(cfg model.Config) Option {
	return func(m *Manager) {
		m.config = cfg.Clone()
	}
}

// WithFiles seeds the file list.
func WithFiles(files []string) Option {
	return func(m *Manager) {
		m.files = append([]string(nil), files...)
	}
}
