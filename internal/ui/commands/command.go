package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"copticsocial/internal/api"
	"copticsocial/internal/domain"
	"copticsocial/internal/eventbus"
	"copticsocial/internal/ui/state"
)

// GroupsAPI is the part of the platform API the UI calls
type GroupsAPI interface {
	LoadDirectory(ctx context.Context, params api.ListParams) (*api.Directory, error)
	GetGroup(ctx context.Context, id string) (*domain.Group, error)
	JoinGroup(ctx context.Context, id, message string) (*api.JoinResult, error)
	LeaveGroup(ctx context.Context, id string) error
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	API     GroupsAPI
	Timeout time.Duration
	Logger  *zap.Logger
}

func (c *CommandContext) publish(e eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(e)
	}
}

func (c *CommandContext) call() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

// GroupsLoadedMsg carries the result of a list request
type GroupsLoadedMsg struct {
	Seq       int
	Search    string
	Directory *api.Directory
	Err       error
}

// JoinedMsg carries the result of a join request
type JoinedMsg struct {
	GroupID   string
	GroupName string
	Result    *api.JoinResult
	Err       error
}

// LeftMsg carries the result of a leave request
type LeftMsg struct {
	GroupID   string
	GroupName string
	Err       error
}

// DetailsMsg carries a freshly fetched group
type DetailsMsg struct {
	Group *domain.Group
	Err   error
}

// UserLoadedMsg carries the signed-in user
type UserLoadedMsg struct {
	User *domain.User
	Err  error
}

// LoadGroupsCommand fetches the discover and my-groups listings with the
// current filters
type LoadGroupsCommand struct {
	ctx *CommandContext
}

// NewLoadGroupsCommand creates a new load command
func NewLoadGroupsCommand(ctx *CommandContext) *LoadGroupsCommand {
	return &LoadGroupsCommand{ctx: ctx}
}

// Execute marks the state loading and returns the fetch
func (c *LoadGroupsCommand) Execute() tea.Cmd {
	s := c.ctx.State
	seq := s.StartLoad()
	params := api.ListParams{
		Search:    s.SearchTerm,
		GroupType: s.GroupType,
		Privacy:   s.Privacy,
	}
	return func() tea.Msg {
		ctx, cancel := c.ctx.call()
		defer cancel()

		dir, err := c.ctx.API.LoadDirectory(ctx, params)
		if err != nil {
			c.ctx.Logger.Warn("loading groups failed", zap.Error(err))
			c.ctx.publish(eventbus.ErrorEvent{Message: "loading groups failed", Err: err})
			return GroupsLoadedMsg{Seq: seq, Search: params.Search, Err: err}
		}
		c.ctx.publish(eventbus.GroupsLoadedEvent{Query: params.Search, Count: len(dir.Discover)})
		return GroupsLoadedMsg{Seq: seq, Search: params.Search, Directory: dir}
	}
}

// JoinCommand joins a group or sends a join request
type JoinCommand struct {
	ctx     *CommandContext
	group   domain.Group
	message string
}

// NewJoinCommand creates a new join command
func NewJoinCommand(ctx *CommandContext, group domain.Group, message string) *JoinCommand {
	return &JoinCommand{ctx: ctx, group: group, message: message}
}

// Execute marks the group busy and returns the request
func (c *JoinCommand) Execute() tea.Cmd {
	c.ctx.State.Busy[c.group.ID] = true
	g := c.group
	return func() tea.Msg {
		ctx, cancel := c.ctx.call()
		defer cancel()

		res, err := c.ctx.API.JoinGroup(ctx, g.ID, c.message)
		if err != nil {
			c.ctx.Logger.Warn("join failed", zap.String("group", g.ID), zap.Error(err))
			c.ctx.publish(eventbus.ErrorEvent{Message: "join failed", Err: err})
			return JoinedMsg{GroupID: g.ID, GroupName: g.Name, Err: err}
		}
		if res.Pending {
			c.ctx.publish(eventbus.JoinRequestedEvent{GroupID: g.ID, GroupName: g.Name, Message: c.message})
		} else {
			c.ctx.publish(eventbus.MembershipChangedEvent{GroupID: g.ID, GroupName: g.Name, Joined: true, Role: res.Role})
		}
		return JoinedMsg{GroupID: g.ID, GroupName: g.Name, Result: res}
	}
}

// LeaveCommand leaves a group
type LeaveCommand struct {
	ctx   *CommandContext
	group domain.Group
}

// NewLeaveCommand creates a new leave command
func NewLeaveCommand(ctx *CommandContext, group domain.Group) *LeaveCommand {
	return &LeaveCommand{ctx: ctx, group: group}
}

// Execute marks the group busy and returns the request
func (c *LeaveCommand) Execute() tea.Cmd {
	c.ctx.State.Busy[c.group.ID] = true
	g := c.group
	return func() tea.Msg {
		ctx, cancel := c.ctx.call()
		defer cancel()

		if err := c.ctx.API.LeaveGroup(ctx, g.ID); err != nil {
			c.ctx.Logger.Warn("leave failed", zap.String("group", g.ID), zap.Error(err))
			c.ctx.publish(eventbus.ErrorEvent{Message: "leave failed", Err: err})
			return LeftMsg{GroupID: g.ID, GroupName: g.Name, Err: err}
		}
		c.ctx.publish(eventbus.MembershipChangedEvent{GroupID: g.ID, GroupName: g.Name, Joined: false})
		return LeftMsg{GroupID: g.ID, GroupName: g.Name}
	}
}

// DetailsCommand fetches one group for the detail pager
type DetailsCommand struct {
	ctx *CommandContext
	id  string
}

// NewDetailsCommand creates a new details command
func NewDetailsCommand(ctx *CommandContext, id string) *DetailsCommand {
	return &DetailsCommand{ctx: ctx, id: id}
}

// Execute returns the fetch
func (c *DetailsCommand) Execute() tea.Cmd {
	id := c.id
	return func() tea.Msg {
		ctx, cancel := c.ctx.call()
		defer cancel()

		g, err := c.ctx.API.GetGroup(ctx, id)
		return DetailsMsg{Group: g, Err: err}
	}
}

// LoadUserCommand fetches the signed-in user for the navigation bar
type LoadUserCommand struct {
	ctx *CommandContext
}

// NewLoadUserCommand creates a new user command
func NewLoadUserCommand(ctx *CommandContext) *LoadUserCommand {
	return &LoadUserCommand{ctx: ctx}
}

// Execute returns the fetch
func (c *LoadUserCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.call()
		defer cancel()

		u, err := c.ctx.API.CurrentUser(ctx)
		return UserLoadedMsg{User: u, Err: err}
	}
}
