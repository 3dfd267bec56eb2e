package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"copticsocial/internal/domain"
)

func sortFixture() []domain.Group {
	day := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Group{
		{ID: "praise", Name: "Midnight Praises", IsFeatured: true, MemberCount: 42, PostCount: 18, CreatedAt: day},
		{ID: "choir", Name: "deacons choir", MemberCount: 19, PostCount: 54, CreatedAt: day.AddDate(0, 0, 14)},
		{ID: "youth", Name: "Youth Bible Study", MemberCount: 42, PostCount: 31, CreatedAt: day.AddDate(0, 0, 7)},
	}
}

func ids(groups []domain.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.ID
	}
	return out
}

func TestSortGroups(t *testing.T) {
	tests := []struct {
		mode SortMode
		want []string
	}{
		{SortFeatured, []string{"praise", "choir", "youth"}},
		{SortByName, []string{"choir", "praise", "youth"}},
		{SortByMembers, []string{"praise", "youth", "choir"}},
		{SortByActivity, []string{"choir", "youth", "praise"}},
		{SortNewest, []string{"choir", "youth", "praise"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortGroups(sortFixture(), tt.mode)))
		})
	}
}

func TestSortGroupsLeavesInputUntouched(t *testing.T) {
	groups := sortFixture()
	_ = SortGroups(groups, SortByName)
	assert.Equal(t, []string{"praise", "choir", "youth"}, ids(groups))
	assert.Nil(t, SortGroups(nil, SortByName))
}

func TestSortModeCycle(t *testing.T) {
	mode := SortFeatured
	seen := []string{}
	for range 5 {
		seen = append(seen, mode.Label())
		mode = mode.Next()
	}
	assert.Equal(t, []string{"Featured", "Name", "Members", "Activity", "Newest"}, seen)
	assert.Equal(t, SortFeatured, mode)

	assert.Equal(t, SortByActivity, ParseSortMode("activity"))
	assert.Equal(t, SortFeatured, ParseSortMode("bogus"))
}
