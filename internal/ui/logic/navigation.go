package logic

import "strconv"

// unset is the selection value before the user has navigated anywhere.
const unset = -1

// Navigator handles row selection and the vim-style numeric count
// prefix. All movement is clamped into [0, length-1] for the current
// result set length, which the caller passes in: the navigator itself
// never holds the result slice.
type Navigator struct {
	selectedIndex int
	repeat        string // pending count-prefix digits
}

// NewNavigator creates a navigator with no selection.
func NewNavigator() *Navigator {
	return &Navigator{selectedIndex: unset}
}

// Selected returns the selected index and whether one is set.
func (n *Navigator) Selected() (int, bool) {
	if n.selectedIndex == unset {
		return 0, false
	}
	return n.selectedIndex, true
}

// MoveDown shifts the selection down by amount, clamped to the last
// row. With no prior selection it lands on row 0, same as MoveUp: the
// first movement in either direction just picks up the first row.
// Empty result sets are a no-op.
func (n *Navigator) MoveDown(amount, length int) {
	if length <= 0 {
		return
	}
	if n.selectedIndex == unset {
		n.selectedIndex = 0
		return
	}
	i := n.selectedIndex + amount
	if i > length-1 {
		i = length - 1
	}
	n.selectedIndex = i
}

// MoveUp shifts the selection up by amount, clamped to row 0.
func (n *Navigator) MoveUp(amount, length int) {
	if length <= 0 {
		return
	}
	if n.selectedIndex == unset {
		n.selectedIndex = 0
		return
	}
	i := n.selectedIndex - amount
	if i < 0 {
		i = 0
	}
	n.selectedIndex = i
}

// JumpFirst selects the first row.
func (n *Navigator) JumpFirst(length int) {
	if length <= 0 {
		return
	}
	n.selectedIndex = 0
}

// JumpLast selects the last row.
func (n *Navigator) JumpLast(length int) {
	if length <= 0 {
		return
	}
	n.selectedIndex = length - 1
}

// Clamp re-validates the selection against a new result set length.
// Called after every fetch: the replacement set may be shorter than
// the one the selection was made in.
func (n *Navigator) Clamp(length int) {
	if n.selectedIndex == unset {
		return
	}
	if length <= 0 {
		n.selectedIndex = unset
		return
	}
	if n.selectedIndex > length-1 {
		n.selectedIndex = length - 1
	}
}

// AccumulateDigit appends a digit to the pending count prefix.
// Non-digit runes are rejected.
func (n *Navigator) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	n.repeat += string(r)
	return true
}

// ConsumeRepeat parses and clears the pending count prefix. An empty
// or unparseable buffer counts as 1. Every navigation and pagination
// command consumes the buffer exactly once, digits or not.
func (n *Navigator) ConsumeRepeat() int {
	buf := n.repeat
	n.repeat = ""
	amount, err := strconv.Atoi(buf)
	if err != nil || amount < 1 {
		return 1
	}
	return amount
}

// PendingRepeat returns the unconsumed count prefix for display.
func (n *Navigator) PendingRepeat() string {
	return n.repeat
}
