// Package model defines the challenge configuration consumed by the form
// manager and the document renderers. A Config carries the scalar metadata of
// a capture-the-flag challenge (name, author, category, difficulty, flag,
// optional service port) plus the ordered hint and requirement lists. Files
// travel beside the Config because only the summary document lists them.
//
// Validation helpers are pure: ValidFlag and PortError are the single source
// of truth for the flag pattern and the port range, and FormFields describes
// the editable fields so input surfaces can build prompts without hardcoding
// labels or enum options.
package model
