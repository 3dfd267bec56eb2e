package ui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"copticsocial/internal/api"
	"copticsocial/internal/config"
	"copticsocial/internal/domain"
	"copticsocial/internal/eventbus"
	"copticsocial/internal/ui/commands"
	inputtypes "copticsocial/internal/ui/input/types"
	"copticsocial/internal/ui/logic"
	"copticsocial/internal/ui/state"
	"copticsocial/internal/ui/views"
)

type fakeGroupsAPI struct {
	mu       sync.Mutex
	groups   []domain.Group
	loadErr  error
	userErr  error
	loads    int
	params   api.ListParams
	joined   string
	message  string
	left     string
	joinResp *api.JoinResult
}

func (f *fakeGroupsAPI) LoadDirectory(_ context.Context, p api.ListParams) (*api.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	f.params = p
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	dir := &api.Directory{Discover: []domain.Group{}, Mine: []domain.Group{}}
	q := strings.ToLower(p.Search)
	for _, g := range f.groups {
		if q != "" && !strings.Contains(strings.ToLower(g.Name), q) {
			continue
		}
		if p.GroupType != "" && g.GroupType != p.GroupType {
			continue
		}
		dir.Discover = append(dir.Discover, g)
		if g.IsMember() {
			dir.Mine = append(dir.Mine, g)
		}
	}
	return dir, nil
}

func (f *fakeGroupsAPI) GetGroup(_ context.Context, id string) (*domain.Group, error) {
	for _, g := range f.groups {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, api.StatusError{StatusCode: http.StatusNotFound}
}

func (f *fakeGroupsAPI) JoinGroup(_ context.Context, id, message string) (*api.JoinResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.joined, f.message = id, message
	if f.joinResp != nil {
		return f.joinResp, nil
	}
	return &api.JoinResult{Role: domain.RoleMember}, nil
}

func (f *fakeGroupsAPI) LeaveGroup(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.left = id
	return nil
}

func (f *fakeGroupsAPI) CurrentUser(context.Context) (*domain.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return &domain.User{Username: "mina", FirstName: "Mina", LastName: "Girgis"}, nil
}

func (f *fakeGroupsAPI) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loads
}

func seedGroups() []domain.Group {
	return []domain.Group{
		{ID: "praise", Name: "Midnight Praises", GroupType: domain.GroupTypePrayer, Privacy: domain.PrivacyPublic},
		{ID: "youth", Name: "Youth Bible Study", GroupType: domain.GroupTypeStudy, Privacy: domain.PrivacyParishOnly, RequireApproval: true},
		{ID: "choir", Name: "Deacons Choir", GroupType: domain.GroupTypeMinistry, Privacy: domain.PrivacyPublic,
			UserMembership: &domain.Membership{Role: domain.RoleMember}},
		{ID: "prayer", Name: "Prayer Chain", GroupType: domain.GroupTypePrayer, Privacy: domain.PrivacyPublic},
	}
}

func instantTick(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Now()) }
}

func newTestModel(t *testing.T, client *fakeGroupsAPI, configure func(*config.Config)) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UI.SkipLanding = true
	if configure != nil {
		configure(cfg)
	}
	m := NewModel(nil, cfg, client, zap.NewNop())
	m.search = m.search.WithTick(instantTick)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	settle(m, m.Init())
	return m
}

// drain runs cmd and returns the messages it produces. Commands that
// block on timers are abandoned.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// settle feeds the messages produced by cmd back into the model until
// nothing is left. Spinner frames are skipped.
func settle(m *Model, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := drain(cmd)
	for i := 0; len(queue) > 0 && i < 50; i++ {
		msg := queue[0]
		queue = queue[1:]
		seen = append(seen, msg)
		if _, ok := msg.(bspinner.TickMsg); ok {
			continue
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		_, next := m.Update(msg)
		queue = append(queue, drain(next)...)
	}
	return seen
}

func press(m *Model, keys ...string) []tea.Msg {
	var seen []tea.Msg
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := m.Update(msg)
		seen = append(seen, settle(m, cmd)...)
	}
	return seen
}

func toastTitles(m *Model) []string {
	var titles []string
	for _, t := range m.toasts.Toasts() {
		titles = append(titles, t.Title)
	}
	return titles
}

func selectGroup(t *testing.T, m *Model, id string) {
	t.Helper()
	for i, g := range m.state.Groups {
		if g.ID == id {
			m.setSelection(i)
			return
		}
	}
	t.Fatalf("group %s not loaded", id)
}

func TestLandingEnterLoadsGroups(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, func(c *config.Config) { c.UI.SkipLanding = false })

	assert.Equal(t, state.PageLanding, m.state.Page)
	assert.Contains(t, ansi.Strip(m.View()), "Browse groups")
	assert.Zero(t, client.loadCount())

	press(m, "enter")

	assert.Equal(t, state.PageGroups, m.state.Page)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	require.Len(t, m.state.Groups, 4)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Midnight Praises")
	assert.Contains(t, view, "MG")
	assert.Equal(t, "Mina Girgis", m.nav.User)
}

func TestTabSwitchShowsCachedListing(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)
	loads := client.loadCount()

	press(m, "tab")

	assert.Equal(t, state.TabMine, m.state.Tab)
	require.Len(t, m.state.Groups, 1)
	assert.Equal(t, "choir", m.state.Groups[0].ID)
	assert.Equal(t, loads, client.loadCount())

	press(m, "tab")
	assert.Len(t, m.state.Groups, 4)
}

func TestSearchFillsDropdownAndFiltersList(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, func(c *config.Config) { c.Search.ResultLimit = 1 })

	press(m, "/")
	require.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.True(t, m.search.Focused())

	press(m, "p", "r")

	assert.Equal(t, "pr", client.params.Search)
	assert.Equal(t, "pr", m.state.SearchTerm)
	assert.Len(t, m.state.Groups, 2)
	require.True(t, m.search.Open())
	require.Len(t, m.search.Results(), 1)
	assert.Equal(t, "Midnight Praises", m.search.Results()[0].Title)
	assert.False(t, m.search.Loading())
	assert.Contains(t, ansi.Strip(m.View()), "Search: \"pr\"")
}

func TestSelectingSuggestionMovesSelection(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)

	press(m, "/", "p", "r", "a", "y")
	require.Len(t, m.search.Results(), 1)

	press(m, "down", "enter")

	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.False(t, m.search.Open())
	assert.False(t, m.search.Focused())
	assert.Equal(t, "Prayer Chain", m.search.Query())
	assert.Equal(t, "Prayer Chain", m.state.SearchTerm, "the committed title settles as the new search")
	assert.Equal(t, "Prayer Chain", client.params.Search)
	require.NotNil(t, m.state.CurrentGroup())
	assert.Equal(t, "prayer", m.state.CurrentGroup().ID)
}

func TestErasingQueryShowsAllGroups(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)

	press(m, "/", "p", "r")
	require.Len(t, m.state.Groups, 2)

	press(m, "backspace", "backspace")

	assert.Empty(t, m.search.Query())
	assert.Empty(t, m.state.SearchTerm)
	assert.Empty(t, client.params.Search)
	assert.Len(t, m.state.Groups, 4)
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode(), "erasing keeps the bar focused")
	assert.NotContains(t, ansi.Strip(m.View()), "Search: ")
}

func TestEscapeReturnsToList(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)

	press(m, "/", "p")
	require.True(t, m.search.Open())

	press(m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.False(t, m.search.Open())
	assert.Equal(t, "p", m.search.Query())
	assert.Equal(t, "p", m.state.SearchTerm)
}

func TestStaleListingIsDropped(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)

	stale := &api.Directory{Discover: []domain.Group{{ID: "old", Name: "Old"}}}
	m.Update(commands.GroupsLoadedMsg{Seq: m.state.LoadSeq - 1, Directory: stale})
	assert.Len(t, m.state.Groups, 4)
}

func TestJoinPublicGroup(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)
	selectGroup(t, m, "praise")
	loads := client.loadCount()

	press(m, "J")

	assert.Equal(t, "praise", client.joined)
	assert.Empty(t, client.message)
	assert.Empty(t, m.state.Busy)
	assert.Contains(t, toastTitles(m), "Welcome to Midnight Praises")
	assert.Greater(t, client.loadCount(), loads)
}

func TestJoinRequestSendsMessage(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups(), joinResp: &api.JoinResult{Pending: true}}
	m := newTestModel(t, client, nil)
	selectGroup(t, m, "youth")

	press(m, "J")
	require.Equal(t, inputtypes.ModeJoinMessage, m.inputHandler.CurrentMode())
	require.True(t, m.join.IsOpen())
	assert.Contains(t, ansi.Strip(m.View()), "Request to join Youth Bible Study")

	press(m, "h", "i", "enter")

	assert.Equal(t, "youth", client.joined)
	assert.Equal(t, "hi", client.message)
	assert.False(t, m.join.IsOpen())
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Contains(t, toastTitles(m), "Request sent")
}

func TestJoinRequestCancelled(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)
	selectGroup(t, m, "youth")

	press(m, "J", "esc")

	assert.False(t, m.join.IsOpen())
	assert.Empty(t, client.joined)
}

func TestLeaveAsksFirst(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)
	selectGroup(t, m, "choir")

	press(m, "L")
	require.True(t, m.confirm.IsOpen())
	assert.Contains(t, ansi.Strip(m.View()), "Leave Deacons Choir?")

	press(m, "n")
	assert.False(t, m.confirm.IsOpen())
	assert.Empty(t, client.left)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	press(m, "L", "y")
	assert.Equal(t, "choir", client.left)
	assert.Contains(t, toastTitles(m), "You left Deacons Choir")
}

func TestLoadErrorShowsRetry(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups(), loadErr: errors.New("connection refused")}
	m := newTestModel(t, client, nil)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Could not load groups")
	assert.Contains(t, view, "connection refused")
	assert.Contains(t, toastTitles(m), "Could not load groups")

	client.loadErr = nil
	press(m, "r")
	assert.Empty(t, m.state.Error)
	assert.Len(t, m.state.Groups, 4)
}

func TestFilterCyclePublishesPreferences(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	defer bus.Close()
	events := make(chan eventbus.ConfigChangedEvent, 4)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		events <- e.(eventbus.ConfigChangedEvent)
	})

	client := &fakeGroupsAPI{groups: seedGroups()}
	cfg := config.DefaultConfig()
	cfg.UI.SkipLanding = true
	m := NewModel(bus, cfg, client, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	settle(m, m.Init())

	press(m, "t")

	assert.Equal(t, domain.GroupTypes[0], client.params.GroupType)
	select {
	case e := <-events:
		assert.Equal(t, string(domain.GroupTypes[0]), e.LastGroupType)
		assert.Equal(t, "discover", e.LastTab)
	case <-time.After(time.Second):
		t.Fatal("no preferences event")
	}

	press(m, "c")
	assert.False(t, m.state.HasFilters())
	assert.Empty(t, client.params.GroupType)
}

func TestSortCycleReordersCachedListing(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)
	loads := client.loadCount()

	press(m, "s")

	assert.Equal(t, logic.SortByName, m.state.Sort)
	assert.Equal(t, loads, client.loadCount(), "sorting reuses the cached listing")
	names := make([]string, len(m.state.Groups))
	for i, g := range m.state.Groups {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"Deacons Choir", "Midnight Praises", "Prayer Chain", "Youth Bible Study"}, names)
	assert.Contains(t, ansi.Strip(m.View()), "Sort: Name")

	press(m, "c")
	assert.Equal(t, logic.SortByName, m.state.Sort, "clearing filters keeps the sort")
}

func TestSavedPreferencesRestored(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, func(c *config.Config) {
		c.UI.LastTab = "mine"
		c.UI.LastGroupType = "prayer"
		c.UI.LastPrivacy = "bogus"
		c.UI.LastSort = "members"
	})

	assert.Equal(t, state.TabMine, m.state.Tab)
	assert.Equal(t, domain.GroupTypePrayer, m.state.GroupType)
	assert.Empty(t, m.state.Privacy)
	assert.Equal(t, logic.SortByMembers, m.state.Sort)
	assert.Equal(t, domain.GroupTypePrayer, client.params.GroupType)
}

func TestQuitUnmountsSearch(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)

	seen := press(m, "q")

	assert.False(t, m.search.Mounted())
	assert.Contains(t, seen, tea.Msg(tea.QuitMsg{}))
}

func TestCardClickSelects(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups()}
	m := newTestModel(t, client, nil)

	top := views.ListTop(m.nav.View())
	m.Update(tea.MouseMsg{X: 10, Y: top + views.CardHeight + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.state.SelectedIndex)

	m.Update(tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 2, m.state.SelectedIndex)
}

func TestUnauthorizedUserWarns(t *testing.T) {
	client := &fakeGroupsAPI{groups: seedGroups(), userErr: api.StatusError{StatusCode: http.StatusUnauthorized}}
	m := newTestModel(t, client, nil)

	assert.Contains(t, toastTitles(m), "Not signed in")
	assert.Equal(t, "Guest", m.nav.User)
}

func TestDetailsMarkdown(t *testing.T) {
	limit := 30
	g := domain.Group{
		Name:            "Deacons Choir",
		GroupType:       domain.GroupTypeMinistry,
		Privacy:         domain.PrivacyParishOnly,
		Parish:          domain.Parish{Name: "St. Mark", City: "Cairo"},
		MemberCount:     12,
		MaxMembers:      &limit,
		RequireApproval: true,
		UserMembership:  &domain.Membership{Role: domain.RoleModerator},
	}

	md := detailsMarkdown(g)
	assert.Contains(t, md, "# ⛪ Deacons Choir")
	assert.Contains(t, md, "St. Mark, Cairo")
	assert.Contains(t, md, "12 of 30")
	assert.Contains(t, md, "requires approval")
	assert.Contains(t, md, "**moderator**")
	assert.Contains(t, detailsMarkdown(domain.Group{Name: "Empty"}), "No description provided")
}

func TestHelpContentListsKeys(t *testing.T) {
	help := ansi.Strip(RenderHelpContent())
	for _, want := range []string{"Focus the search bar", "Join, or request to join", "Clear the search"} {
		assert.Contains(t, help, want)
	}
}
