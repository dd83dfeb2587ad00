// Package validation lints structured challenge documents (chall.json) against
// the schema the structured renderer produces, reporting every issue with its
// location.
package validation
