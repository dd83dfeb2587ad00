// Package lncgen generates the configuration documents of an LNC25 capture the
// flag challenge: a structured chall.json and a Markdown README.md.
//
// The root package is a thin facade over pkg/orchestrator, pkg/form, and
// pkg/draft for callers that want a one-call entry point.
package lncgen
