package logic

import (
	"errors"
	"time"

	"copticsocial/internal/domain"
)

// Errors returned by the membership rules
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrGroupInactive  = errors.New("group is not currently active")
	ErrGroupFull      = errors.New("group has reached its member limit")
	ErrParishOnly     = errors.New("group is restricted to members of its parish")
	ErrAlreadyMember  = errors.New("already a member of this group")
	ErrRequestPending = errors.New("a join request is already pending")
	ErrNotMember      = errors.New("not a member of this group")
	ErrSoleAdmin      = errors.New("cannot leave group as the only admin")
	ErrNotJoinable    = errors.New("group does not accept join requests")
)

// GroupStore provides access to group data
type GroupStore interface {
	GetGroup(id string) *domain.Group
	GetAllGroups() []*domain.Group
	AddGroup(group *domain.Group)
	UpdateGroup(group *domain.Group)
	DeleteGroup(id string)
}

// Member is a user's membership record in a group
type Member struct {
	GroupID  string
	UserID   string
	Role     domain.Role
	IsActive bool
	JoinedAt time.Time
}

// JoinRequestStatus is the review state of a join request
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

// JoinRequest asks the admins of an approval-gated group for membership
type JoinRequest struct {
	ID        string
	GroupID   string
	UserID    string
	Message   string
	Status    JoinRequestStatus
	CreatedAt time.Time
}

// MembershipStore provides access to memberships and join requests
type MembershipStore interface {
	GetMember(groupID, userID string) *Member
	ActiveMembers(groupID string) []Member
	GroupsForUser(userID string) []string
	SaveMember(member Member)
	PendingRequest(groupID, userID string) *JoinRequest
	SaveJoinRequest(req JoinRequest)
}

// Filter narrows a group listing
type Filter struct {
	Search    string
	GroupType domain.GroupType
	Privacy   domain.Privacy
	Limit     int
}
