// Package selection tracks which task is currently selected.
package selection

// Selector holds the current task selection. The selection is a plain ID
// reference; it is not validated against the store and survives deletion of
// the selected task, so readers must handle a dangling selection.
type Selector struct {
	id int
	ok bool
}

// New creates an empty Selector.
func New() *Selector {
	return &Selector{}
}

// Select sets the current selection to the given task ID.
func (s *Selector) Select(id int) {
	s.id = id
	s.ok = true
}

// Clear drops the current selection.
func (s *Selector) Clear() {
	s.id = 0
	s.ok = false
}

// Current returns the selected task ID. The second result is false when
// nothing is selected.
func (s *Selector) Current() (int, bool) {
	return s.id, s.ok
}
