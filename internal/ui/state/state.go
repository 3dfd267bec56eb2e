package state

import (
	"copticsocial/internal/domain"
	"copticsocial/internal/ui/logic"
)

// Page is the top-level screen
type Page int

const (
	PageLanding Page = iota
	PageGroups
)

// Tab is the active list on the groups page
type Tab string

const (
	TabDiscover Tab = "discover"
	TabMine     Tab = "mine"
)

// ParseTab maps a saved value to a Tab, defaulting to TabDiscover
func ParseTab(s string) Tab {
	if Tab(s) == TabMine {
		return TabMine
	}
	return TabDiscover
}

// AppState contains all the application state
type AppState struct {
	Page Page
	Tab  Tab

	// Filters sent with every list request. Empty means all.
	GroupType  domain.GroupType
	Privacy    domain.Privacy
	SearchTerm string
	// Sort applies locally and is not a filter
	Sort logic.SortMode

	// Group data for the active tab, in Sort order
	Groups []domain.Group
	// Counts shown on the tabs
	DiscoverCount int
	MineCount     int

	// LoadSeq identifies the newest list request; older responses are dropped
	LoadSeq int
	Loading bool
	Error   string

	// Group ids with a join or leave request in flight
	Busy map[string]bool

	// Selection state
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int // in cards

	ShowHelp      bool
	StatusMessage string
	User          domain.User
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Page:           PageLanding,
		Tab:            TabDiscover,
		Busy:           make(map[string]bool),
		ViewportHeight: 3,
	}
}

// StartLoad marks a new list request and returns its sequence number
func (s *AppState) StartLoad() int {
	s.LoadSeq++
	s.Loading = true
	s.Error = ""
	return s.LoadSeq
}

// FinishLoad applies a list response. Responses for superseded requests
// are ignored and false is returned.
func (s *AppState) FinishLoad(seq int, groups []domain.Group, err error) bool {
	if seq != s.LoadSeq {
		return false
	}
	s.Loading = false
	if err != nil {
		s.Error = err.Error()
		s.Groups = nil
	} else {
		s.Error = ""
		s.Groups = groups
	}
	s.clampSelection()
	return true
}

// ShowGroups replaces the visible list without touching the load state
func (s *AppState) ShowGroups(groups []domain.Group) {
	s.Groups = groups
	s.clampSelection()
}

// CurrentGroup returns the selected group or nil when the list is empty
func (s *AppState) CurrentGroup() *domain.Group {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Groups) {
		return nil
	}
	return &s.Groups[s.SelectedIndex]
}

// GroupByID finds a loaded group
func (s *AppState) GroupByID(id string) *domain.Group {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// SwitchTab changes the active tab and resets the selection
func (s *AppState) SwitchTab(t Tab) {
	s.Tab = t
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}

// CycleGroupType advances the group type filter through all types and
// back to none
func (s *AppState) CycleGroupType() {
	s.GroupType = nextOf(domain.GroupTypes, s.GroupType)
}

// CyclePrivacy advances the privacy filter through all levels and back
// to none
func (s *AppState) CyclePrivacy() {
	s.Privacy = nextOf(domain.PrivacyLevels, s.Privacy)
}

func nextOf[T comparable](values []T, cur T) T {
	var zero T
	if cur == zero {
		return values[0]
	}
	for i, v := range values {
		if v == cur && i+1 < len(values) {
			return values[i+1]
		}
	}
	return zero
}

// HasFilters reports whether any filter or search narrows the list
func (s *AppState) HasFilters() bool {
	return s.GroupType != "" || s.Privacy != "" || s.SearchTerm != ""
}

// ClearFilters removes every filter and the search term
func (s *AppState) ClearFilters() {
	s.GroupType = ""
	s.Privacy = ""
	s.SearchTerm = ""
}

func (s *AppState) clampSelection() {
	if s.SelectedIndex >= len(s.Groups) {
		s.SelectedIndex = len(s.Groups) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.ViewportOffset > s.SelectedIndex {
		s.ViewportOffset = s.SelectedIndex
	}
}
