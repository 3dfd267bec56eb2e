package logic

import (
	"time"

	"github.com/google/uuid"

	"copticsocial/internal/domain"
)

// JoinOutcome describes the result of a successful join call
type JoinOutcome struct {
	Pending bool
	Member  *Member
	Request *JoinRequest
}

// MembershipService applies the join and leave rules over the stores
type MembershipService struct {
	groups  GroupStore
	members MembershipStore
	now     func() time.Time
}

// NewMembershipService creates a membership service
func NewMembershipService(groups GroupStore, members MembershipStore) *MembershipService {
	return &MembershipService{
		groups:  groups,
		members: members,
		now:     time.Now,
	}
}

// CanJoin reports why user may not join group, or nil when it may
func (s *MembershipService) CanJoin(group *domain.Group, user domain.User) error {
	if !group.IsActive {
		return ErrGroupInactive
	}
	if group.IsFull() {
		return ErrGroupFull
	}
	if group.Privacy == domain.PrivacyInviteOnly {
		return ErrNotJoinable
	}
	if group.Privacy != domain.PrivacyPublic && group.Parish.ID != user.ParishID {
		return ErrParishOnly
	}
	return nil
}

// Join adds user to the group, or files a join request when the group
// requires approval
func (s *MembershipService) Join(groupID string, user domain.User, message string) (JoinOutcome, error) {
	group := s.groups.GetGroup(groupID)
	if group == nil {
		return JoinOutcome{}, ErrGroupNotFound
	}
	if m := s.members.GetMember(groupID, user.ID); m != nil && m.IsActive {
		return JoinOutcome{}, ErrAlreadyMember
	}
	if err := s.CanJoin(group, user); err != nil {
		return JoinOutcome{}, err
	}

	if group.RequireApproval || group.Privacy == domain.PrivacyPrivate {
		if s.members.PendingRequest(groupID, user.ID) != nil {
			return JoinOutcome{}, ErrRequestPending
		}
		req := JoinRequest{
			ID:        uuid.NewString(),
			GroupID:   groupID,
			UserID:    user.ID,
			Message:   message,
			Status:    JoinRequestPending,
			CreatedAt: s.now(),
		}
		s.members.SaveJoinRequest(req)
		return JoinOutcome{Pending: true, Request: &req}, nil
	}

	member := Member{
		GroupID:  groupID,
		UserID:   user.ID,
		Role:     domain.RoleMember,
		IsActive: true,
		JoinedAt: s.now(),
	}
	s.members.SaveMember(member)
	group.MemberCount++
	s.groups.UpdateGroup(group)

	return JoinOutcome{Member: &member}, nil
}

// Leave deactivates user's membership. The only admin of a group
// cannot leave it.
func (s *MembershipService) Leave(groupID string, user domain.User) error {
	group := s.groups.GetGroup(groupID)
	if group == nil {
		return ErrGroupNotFound
	}
	m := s.members.GetMember(groupID, user.ID)
	if m == nil || !m.IsActive {
		return ErrNotMember
	}

	if m.Role == domain.RoleAdmin {
		admins := 0
		for _, other := range s.members.ActiveMembers(groupID) {
			if other.Role == domain.RoleAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return ErrSoleAdmin
		}
	}

	m.IsActive = false
	s.members.SaveMember(*m)
	if group.MemberCount > 0 {
		group.MemberCount--
	}
	s.groups.UpdateGroup(group)
	return nil
}

// Annotate returns a copy of group carrying userID's membership
func (s *MembershipService) Annotate(group *domain.Group, userID string) domain.Group {
	g := *group
	g.UserMembership = nil
	if m := s.members.GetMember(group.ID, userID); m != nil && m.IsActive {
		g.UserMembership = &domain.Membership{Role: m.Role, JoinedAt: m.JoinedAt}
	}
	return g
}

// List returns the active groups matching f as seen by userID.
// With mine set only groups userID belongs to are returned.
func (s *MembershipService) List(f Filter, userID string, mine bool) []domain.Group {
	limit := f.Limit
	f.Limit = 0

	var result []domain.Group
	for _, g := range ApplyFilter(s.groups.GetAllGroups(), f) {
		if !g.IsActive {
			continue
		}
		annotated := s.Annotate(g, userID)
		if mine && !annotated.IsMember() {
			continue
		}
		result = append(result, annotated)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}
