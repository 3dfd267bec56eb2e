package logic

import (
	"sort"
	"strings"

	"copticsocial/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortFeatured SortMode = iota // API order: featured first, then by name
	SortByName
	SortByMembers
	SortByActivity
	SortNewest
)

var sortNames = []string{"featured", "name", "members", "activity", "newest"}

// String returns the value stored in the config file
func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortNames) {
		return sortNames[0]
	}
	return sortNames[m]
}

// Label returns the name shown in the filter bar
func (m SortMode) Label() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Next returns the mode after m, wrapping around
func (m SortMode) Next() SortMode {
	return SortMode((int(m) + 1) % len(sortNames))
}

// ParseSortMode maps a saved value to a SortMode, defaulting to SortFeatured
func ParseSortMode(s string) SortMode {
	for i, name := range sortNames {
		if name == s {
			return SortMode(i)
		}
	}
	return SortFeatured
}

// SortGroups returns a sorted copy of groups. The input is never modified
// so cached listings keep their API order.
func SortGroups(groups []domain.Group, mode SortMode) []domain.Group {
	if groups == nil {
		return nil
	}
	out := make([]domain.Group, len(groups))
	copy(out, groups)

	switch mode {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortByMembers:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].MemberCount != out[j].MemberCount {
				return out[i].MemberCount > out[j].MemberCount
			}
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortByActivity:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].PostCount != out[j].PostCount {
				return out[i].PostCount > out[j].PostCount
			}
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
