package logic

import (
	"strings"

	"copticsocial/internal/domain"
)

// MatchesFilter checks if a group matches the given filter.
// Search matches name or description case-insensitively.
func MatchesFilter(group *domain.Group, f Filter) bool {
	if f.GroupType != "" && group.GroupType != f.GroupType {
		return false
	}
	if f.Privacy != "" && group.Privacy != f.Privacy {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(group.Name), query) ||
		strings.Contains(strings.ToLower(group.Description), query)
}

// ApplyFilter returns the groups matching f, keeping their order and
// honouring f.Limit when positive
func ApplyFilter(groups []*domain.Group, f Filter) []*domain.Group {
	result := make([]*domain.Group, 0, len(groups))
	for _, g := range groups {
		if !MatchesFilter(g, f) {
			continue
		}
		result = append(result, g)
		if f.Limit > 0 && len(result) == f.Limit {
			break
		}
	}
	return result
}
