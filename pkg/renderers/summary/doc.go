// Package summary renders the human-readable challenge README. Section order
// is fixed: title, description, Summary, Hints, Files, Services, Flag. Empty
// free-text fields fall back to bracketed placeholders and empty sections read
// "None".
//
// The layout lives in an embedded pongo2 template; list sections are
// assembled in Go so the template stays free of whitespace-sensitive loops.
package summary
