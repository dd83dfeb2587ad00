// Package draft loads challenge drafts from JSON or YAML files and replays
// them onto a form.Manager, so the CLI can render documents without the
// interactive form. An existing chall.json is itself a valid draft.
package draft
