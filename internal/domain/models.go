package domain

import (
	"strings"
	"time"
)

// GroupType is the kind of community group
type GroupType string

const (
	GroupTypeMinistry  GroupType = "ministry"
	GroupTypeCommittee GroupType = "committee"
	GroupTypeInterest  GroupType = "interest"
	GroupTypeAgeBased  GroupType = "age_based"
	GroupTypeStudy     GroupType = "study"
	GroupTypeService   GroupType = "service"
	GroupTypePrayer    GroupType = "prayer"
	GroupTypeSocial    GroupType = "social"
)

// GroupTypes lists every group type in filter order
var GroupTypes = []GroupType{
	GroupTypeMinistry,
	GroupTypeCommittee,
	GroupTypeStudy,
	GroupTypePrayer,
	GroupTypeService,
	GroupTypeSocial,
	GroupTypeAgeBased,
	GroupTypeInterest,
}

var groupTypeIcons = map[GroupType]string{
	GroupTypeMinistry:  "⛪",
	GroupTypeCommittee: "🏛",
	GroupTypeStudy:     "📚",
	GroupTypePrayer:    "🙏",
	GroupTypeService:   "🤝",
	GroupTypeSocial:    "🎉",
	GroupTypeAgeBased:  "👥",
	GroupTypeInterest:  "🔗",
}

// Icon returns the glyph shown next to a group of this type
func (t GroupType) Icon() string {
	if icon, ok := groupTypeIcons[t]; ok {
		return icon
	}
	return "•"
}

// Label returns a human readable name ("age_based" -> "Age Based")
func (t GroupType) Label() string {
	return titleize(string(t))
}

// Privacy is the visibility level of a group
type Privacy string

const (
	PrivacyPublic     Privacy = "public"
	PrivacyParishOnly Privacy = "parish_only"
	PrivacyPrivate    Privacy = "private"
	PrivacyInviteOnly Privacy = "invite_only"
)

// PrivacyLevels lists every privacy level in filter order
var PrivacyLevels = []Privacy{
	PrivacyPublic,
	PrivacyParishOnly,
	PrivacyPrivate,
	PrivacyInviteOnly,
}

// Label returns a human readable name
func (p Privacy) Label() string {
	return titleize(string(p))
}

// Joinable reports whether non-members can join without an invitation
func (p Privacy) Joinable() bool {
	return p == PrivacyPublic || p == PrivacyParishOnly
}

// Role is a member's role within a group
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
)

// Parish is a local church community
type Parish struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// User is the minimal user profile returned by the API
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ParishID  string `json:"parish_id,omitempty"`
}

// DisplayName returns the full name, falling back to the username
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Membership is the current user's membership in a group
type Membership struct {
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at,omitempty"`
}

// Group represents a community group
type Group struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	GroupType       GroupType   `json:"group_type"`
	Privacy         Privacy     `json:"privacy"`
	Parish          Parish      `json:"parish"`
	CoverImage      string      `json:"cover_image,omitempty"`
	IsActive        bool        `json:"is_active"`
	IsFeatured      bool        `json:"is_featured"`
	RequireApproval bool        `json:"require_approval"`
	MemberCount     int         `json:"member_count"`
	MaxMembers      *int        `json:"max_members,omitempty"`
	PostCount       int         `json:"post_count"`
	UserMembership  *Membership `json:"user_membership,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// IsMember reports whether the current user belongs to the group
func (g Group) IsMember() bool {
	return g.UserMembership != nil
}

// CanJoin reports whether the join action should be offered
func (g Group) CanJoin() bool {
	return !g.IsMember() && g.Privacy.Joinable()
}

// IsFull reports whether the group reached its member cap
func (g Group) IsFull() bool {
	return g.MaxMembers != nil && g.MemberCount >= *g.MaxMembers
}

func titleize(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
