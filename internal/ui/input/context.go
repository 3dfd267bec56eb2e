package input

import (
	"copticsocial/internal/domain"
	"copticsocial/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of loaded groups
func (c *ModelContext) TotalItems() int {
	return len(c.State.Groups)
}

// CurrentGroup returns the selected group
func (c *ModelContext) CurrentGroup() *domain.Group {
	return c.State.CurrentGroup()
}

// HasFilters reports whether filters narrow the list
func (c *ModelContext) HasFilters() bool {
	return c.State.HasFilters()
}

// Busy reports whether a join or leave is in flight for the group
func (c *ModelContext) Busy(groupID string) bool {
	return c.State.Busy[groupID]
}
