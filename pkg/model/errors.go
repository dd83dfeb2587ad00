package model

import "fmt"

// FieldValidationError marks a scalar field whose value blocks export. It
// never blocks editing.
type FieldValidationError struct {
	Field   FieldName
	Value   string
	Message string
}

func (e FieldValidationError) Error() string {
	return fmt.Sprintf("model: field %s: %s", e.Field, e.Message)
}

// ItemValidationError is returned when a list item cannot be added or
// updated. The list is left untouched.
type ItemValidationError struct {
	List    ListName
	Message string
}

func (e ItemValidationError) Error() string {
	return fmt.Sprintf("model: %s item: %s", e.List, e.Message)
}

// IndexError reports an out-of-range list index.
type IndexError struct {
	List  ListName
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("model: %s index %d out of range [0,%d)", e.List, e.Index, e.Len)
}
