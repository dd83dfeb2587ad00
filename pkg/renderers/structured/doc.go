// Package structured renders the machine-readable challenge document
// (chall.json). Keys always appear in the order name, author, category,
// difficulty, description, discord, flag, port, hints, requirements; port,
// hints and requirements are omitted when empty.
package structured
