package controller

// PhaseNavigator tracks which syllabus phase is active on the detail screen.
// It only ever exposes indices that exist; the zero value is an empty
// navigator. It is not safe for concurrent use on its own, the owning
// controller serializes access.
type PhaseNavigator struct {
	count int
	index int
}

// Reset sizes the navigator for a freshly loaded course and activates the
// first phase, irrespective of the previous selection.
func (n *PhaseNavigator) Reset(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.index = 0
}

// Select activates phase i and reports whether it did. Out-of-range requests
// are silent no-ops; the phase count can shrink when the underlying course
// changes, so a stale index from the view must never corrupt state.
func (n *PhaseNavigator) Select(i int) bool {
	if i < 0 || i >= n.count {
		return false
	}
	n.index = i
	return true
}

// ActiveIndex returns the active phase index. Zero for an empty navigator.
func (n *PhaseNavigator) ActiveIndex() int {
	return n.index
}

// Count returns the number of selectable phases.
func (n *PhaseNavigator) Count() int {
	return n.count
}
