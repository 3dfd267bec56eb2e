package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventGroupsLoaded      EventType = "GroupsLoaded"
	EventMembershipChanged EventType = "MembershipChanged"
	EventJoinRequested     EventType = "JoinRequested"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventConfigChanged     EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// GroupsLoadedEvent is emitted after a group listing was fetched
type GroupsLoadedEvent struct {
	Query string
	Count int
}

func (e GroupsLoadedEvent) Type() EventType { return EventGroupsLoaded }

// MembershipChangedEvent is emitted when the user joined or left a group
type MembershipChangedEvent struct {
	GroupID   string
	GroupName string
	Joined    bool
	Role      Role
}

func (e MembershipChangedEvent) Type() EventType { return EventMembershipChanged }

// JoinRequestedEvent is emitted when a join request awaits approval
type JoinRequestedEvent struct {
	GroupID   string
	GroupName string
	Message   string
}

func (e JoinRequestedEvent) Type() EventType { return EventJoinRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is read from disk
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent carries UI preferences that should be persisted
type ConfigChangedEvent struct {
	LastTab       string
	LastGroupType string
	LastPrivacy   string
	LastSort      string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
