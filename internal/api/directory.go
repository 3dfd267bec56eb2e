package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"copticsocial/internal/domain"
)

// Directory is the discover listing together with the user's own groups
type Directory struct {
	Discover []domain.Group
	Mine     []domain.Group
}

// LoadDirectory fetches the discover and my-groups listings concurrently.
// Memberships from the my-groups listing are merged into the discover list.
func (c *Client) LoadDirectory(ctx context.Context, params ListParams) (*Directory, error) {
	var discover, mine *GroupList

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p := params
		p.MyGroups = false
		var err error
		discover, err = c.ListGroups(ctx, p)
		return err
	})
	g.Go(func() error {
		p := params
		p.MyGroups = true
		var err error
		mine, err = c.ListGroups(ctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	memberships := make(map[string]*domain.Membership, len(mine.Results))
	for _, grp := range mine.Results {
		if grp.UserMembership != nil {
			memberships[grp.ID] = grp.UserMembership
		}
	}
	for i := range discover.Results {
		if m, ok := memberships[discover.Results[i].ID]; ok && discover.Results[i].UserMembership == nil {
			discover.Results[i].UserMembership = m
		}
	}

	return &Directory{Discover: discover.Results, Mine: mine.Results}, nil
}
