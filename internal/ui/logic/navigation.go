package logic

// Navigator moves the selection through a list of cards and keeps the
// selected card inside the viewport
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = max(viewportHeight, 1)
	n.total = total
}

// Move applies a direction and returns the new index and offset.
// Directions: up, down, pageup, pagedown, home, end.
func (n *Navigator) Move(direction string) (int, int) {
	idx := n.selectedIndex
	switch direction {
	case "up":
		idx--
	case "down":
		idx++
	case "pageup":
		idx -= n.viewportHeight
	case "pagedown":
		idx += n.viewportHeight
	case "home":
		idx = 0
	case "end":
		idx = n.total - 1
	}
	return n.SetSelectedIndex(idx)
}

// SetSelectedIndex clamps index to the list and ensures it is visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index > n.total-1 {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}
	maxOffset := max(n.total-n.viewportHeight, 0)
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
