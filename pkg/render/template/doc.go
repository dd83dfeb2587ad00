// Package template defines the renderer-agnostic template contract used by
// text document renderers. The pongo subpackage provides the default engine.
package template
