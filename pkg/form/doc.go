// Package form implements the model manager: it owns a challenge Config plus
// its file list, applies field and list edits, and keeps the validity state
// that gates export in sync with every mutation.
//
// Each list (hints, files) has its own edit cursor and staged draft. Editing
// an item loads it into the draft and moves the cursor to EditingAt(i); the
// next successful AddOrUpdate call replaces that item and returns the cursor
// to Idle. Without an active cursor AddOrUpdate appends.
//
// A Manager is not safe for concurrent use.
package form
