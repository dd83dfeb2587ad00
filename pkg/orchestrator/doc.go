// Package orchestrator wires the form manager to the renderer registry. It is
// the single entry point input surfaces use to read rendered documents and
// the export gate that refuses artifacts while the model is invalid.
package orchestrator
