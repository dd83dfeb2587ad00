package form

import "fmt"

// Cursor tracks whether an item of a list is staged for editing. The zero
// value is Idle.
type Cursor struct {
	index   int
	editing bool
}

// Idle returns a cursor with no item under edit.
func Idle() Cursor {
	return Cursor{}
}

// EditingAt returns a cursor pointing at index.
func EditingAt(index int) Cursor {
	return Cursor{index: index, editing: true}
}

// Index returns the edited index and true, or false when idle.
func (c Cursor) Index() (int, bool) {
	if !c.editing {
		return 0, false
	}
	return c.index, true
}

// Editing reports whether an item is staged for editing.
func (c Cursor) Editing() bool {
	return c.editing
}

func (c Cursor) String() string {
	if !c.editing {
		return "idle"
	}
	return fmt.Sprintf("editing[%d]", c.index)
}

// afterDelete keeps the cursor pointing at the same item once index has been
// removed from the list.
func (c Cursor) afterDelete(index int) Cursor {
	if !c.editing {
		return c
	}
	switch {
	case c.index == index:
		return Idle()
	case c.index > index:
		return EditingAt(c.index - 1)
	default:
		return c
	}
}
