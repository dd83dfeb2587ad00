// Package tui runs the interactive challenge form in a terminal. A Session
// drives a form.Manager through a PromptDriver (survey by default) and offers
// preview, copy, and download of the rendered documents.
package tui
