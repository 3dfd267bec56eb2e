package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"copticsocial/internal/api"
	"copticsocial/internal/config"
	"copticsocial/internal/domain"
	"copticsocial/internal/eventbus"
	"copticsocial/internal/ui/commands"
	"copticsocial/internal/ui/components/modal"
	"copticsocial/internal/ui/components/navigation"
	"copticsocial/internal/ui/components/searchbar"
	"copticsocial/internal/ui/components/spinner"
	"copticsocial/internal/ui/components/toast"
	"copticsocial/internal/ui/input"
	inputtypes "copticsocial/internal/ui/input/types"
	"copticsocial/internal/ui/logic"
	"copticsocial/internal/ui/state"
	"copticsocial/internal/ui/views"
)

const (
	leaveDialogID = "leave"
	joinDialogID  = "join"
)

// searchRequestedMsg is sent once the search bar settles on a query
type searchRequestedMsg struct {
	query string
}

// searchSelectedMsg is sent when a suggestion is committed
type searchSelectedMsg struct {
	result searchbar.Result
}

// searchClearedMsg is sent after the search bar was cleared
type searchClearedMsg struct{}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	logger *zap.Logger

	// UI-specific state not in AppState
	width  int
	height int
	help   help.Model
	keys   keyMap

	// Components
	nav         navigation.Model
	search      searchbar.Model
	searchWidth int // natural width of the search bar's size variant
	toasts      toast.Model
	loader      spinner.Model
	confirm     modal.Confirm
	join        modal.Model

	// Handlers
	navigator    *logic.Navigator   // navigation and viewport handler
	renderer     *views.Renderer    // view renderer
	cmdExecutor  *commands.Executor // command executor
	inputHandler *input.Handler     // input handling
	pager        *PagerOps          // help and details pager

	dir         *api.Directory // last loaded listings
	resultLimit int
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, client commands.GroupsAPI, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	appState := state.NewAppState()
	appState.Tab = state.ParseTab(cfg.UI.LastTab)
	if t := domain.GroupType(cfg.UI.LastGroupType); slices.Contains(domain.GroupTypes, t) {
		appState.GroupType = t
	}
	if p := domain.Privacy(cfg.UI.LastPrivacy); slices.Contains(domain.PrivacyLevels, p) {
		appState.Privacy = p
	}
	appState.Sort = logic.ParseSortMode(cfg.UI.LastSort)

	start := inputtypes.ModeLanding
	if cfg.UI.SkipLanding {
		start = inputtypes.ModeNormal
		appState.Page = state.PageGroups
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		logger:       logger,
		help:         help.New(),
		keys:         defaultKeyMap(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(start),
		pager:        NewPagerOps(),
		resultLimit:  cfg.Search.ResultLimit,
	}

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	m.cmdExecutor = commands.NewExecutor(appState, bus, client, timeout, logger)

	m.nav = navigation.New("Coptic Social", []navigation.Item{
		{Key: string(state.TabDiscover), Label: "Discover", Icon: "🔍"},
		{Key: string(state.TabMine), Label: "My Groups", Icon: "⛪"},
	}, cfg.UI.CompactWidth)
	m.nav.SetActive(string(appState.Tab))
	m.nav.User = cfg.UI.UserName

	// The callbacks run inside the search bar's Update, so they only
	// report back through messages.
	m.search = searchbar.New(searchbar.Options{
		Debounce:        time.Duration(cfg.Search.DebounceMs) * time.Millisecond,
		Placeholder:     cfg.Search.Placeholder,
		ShowClearButton: true,
		Size:            searchbar.ParseSize(cfg.Search.Size),
		OnSearch: func(q string) tea.Cmd {
			return func() tea.Msg { return searchRequestedMsg{query: q} }
		},
		OnSelect: func(r searchbar.Result) tea.Cmd {
			return func() tea.Msg { return searchSelectedMsg{result: r} }
		},
		OnClear: func() tea.Cmd {
			return func() tea.Msg { return searchClearedMsg{} }
		},
	})
	m.searchWidth = m.search.Width()

	m.toasts = toast.New(
		cfg.Toasts.Max,
		time.Duration(cfg.Toasts.DurationMs)*time.Millisecond,
		toast.ParsePosition(cfg.Toasts.Position),
	)
	m.loader = spinner.New(spinner.VariantSpiritual, spinner.SizeDefault, "")
	m.confirm = modal.NewConfirm(leaveDialogID, "Leave group", "")
	m.join = modal.New(joinDialogID)
	m.join.Footer = "[enter] send request   [esc] cancel"

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.Groups),
	)
}

func (m *Model) setSelection(index int) {
	m.syncNavigatorState()
	m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.SetSelectedIndex(index)
}

// Init loads the signed-in user and, past the landing page, the groups
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.cmdExecutor.ExecuteLoadUser()}
	if m.state.Page == state.PageGroups {
		cmds = append(cmds, m.loadGroups())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.nav.SetWidth(msg.Width)
		m.toasts.SetWidth(min(44, msg.Width-4))
		m.confirm.SetScreen(msg.Width, msg.Height)
		m.join.SetScreen(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case searchRequestedMsg:
		m.state.SearchTerm = msg.query
		cmd = tea.Batch(m.search.SetLoading(true), m.loadGroups())

	case searchSelectedMsg:
		cmd = m.handleSearchSelected(msg.result)

	case searchClearedMsg:
		m.search.SetResults(nil)
		m.search.SetLoading(false)
		if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
			cmd = m.switchMode(inputtypes.ModeSearch)
		}
		if m.state.SearchTerm != "" {
			m.state.SearchTerm = ""
			cmd = tea.Batch(cmd, m.loadGroups())
		}

	case commands.GroupsLoadedMsg:
		cmd = m.handleGroupsLoaded(msg)

	case commands.JoinedMsg:
		cmd = m.handleJoined(msg)

	case commands.LeftMsg:
		cmd = m.handleLeft(msg)

	case commands.DetailsMsg:
		m.state.StatusMessage = ""
		if msg.Err != nil {
			cmd = m.toasts.Error("Could not load group", api.UserMessage(msg.Err))
			break
		}
		g, w := *msg.Group, m.width
		cmd = func() tea.Msg {
			return pagerClosedMsg{err: m.pager.Show(renderDetails(g, w))}
		}

	case commands.UserLoadedMsg:
		cmd = m.handleUserLoaded(msg)

	case modal.ConfirmedMsg:
		if msg.ID == leaveDialogID {
			groupID := m.inputHandler.PendingLeave()
			cmd = tea.Batch(
				m.switchMode(inputtypes.ModeNormal),
				m.processAction(inputtypes.LeaveAction{GroupID: groupID}),
			)
		}

	case modal.CancelledMsg:
		cmd = m.switchMode(inputtypes.ModeNormal)

	case modal.ClosedMsg:
		cmd = m.switchMode(inputtypes.ModeNormal)

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.Error(msg.err))
			cmd = m.toasts.Warning("Pager unavailable", msg.err.Error())
		}

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			cmd = m.toasts.Warning(capitalize(e.Message), api.UserMessage(e.Err))
		}

	case bspinner.TickMsg:
		var searchCmd, loaderCmd tea.Cmd
		m.search, searchCmd = m.search.Update(msg)
		if m.state.Loading {
			m.loader, loaderCmd = m.loader.Update(msg)
		}
		cmd = tea.Batch(searchCmd, loaderCmd)

	default:
		// Debounce timers, cursor blinks and toast timers
		var searchCmd, toastCmd, fieldCmd tea.Cmd
		m.search, searchCmd = m.search.Update(msg)
		m.toasts, toastCmd = m.toasts.Update(msg)
		fieldCmd = m.inputHandler.Update(msg)
		cmd = tea.Batch(searchCmd, toastCmd, fieldCmd)
	}

	m.layout()
	return m, cmd
}

// layout sizes the search bar and the list to the current navigation
// bar, which grows when its compact menu opens
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	nav := m.nav.View()
	w := views.CardWidth(m.width)
	if m.search.Size() != searchbar.SizeFull {
		w = min(m.searchWidth, w)
	}
	m.search.SetWidth(w)
	m.search.SetOrigin(views.SearchOrigin(nav))

	m.state.ViewportHeight = views.ViewportCards(m.height, nav)
	m.setSelection(m.state.SelectedIndex)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	prev := m.inputHandler.CurrentMode()
	ctx := &input.ModelContext{State: m.state}

	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	cmds = append(cmds, m.syncSearchFocus(prev))
	return tea.Batch(cmds...)
}

// switchMode changes mode from outside a key press and runs the
// actions the mode hooks return
func (m *Model) switchMode(mode inputtypes.Mode) tea.Cmd {
	prev := m.inputHandler.CurrentMode()
	ctx := &input.ModelContext{State: m.state}

	var cmds []tea.Cmd
	for _, action := range m.inputHandler.SwitchMode(mode, ctx) {
		cmds = append(cmds, m.processAction(action))
	}
	cmds = append(cmds, m.syncSearchFocus(prev))
	return tea.Batch(cmds...)
}

// syncSearchFocus keeps the search bar's focus in step with the mode
func (m *Model) syncSearchFocus(prev inputtypes.Mode) tea.Cmd {
	cur := m.inputHandler.CurrentMode()
	switch {
	case cur == prev:
		return nil
	case cur == inputtypes.ModeSearch:
		return m.search.Focus()
	case prev == inputtypes.ModeSearch:
		m.closeSearch()
	}
	return nil
}

// closeSearch closes the dropdown and blurs the search bar, keeping its
// query
func (m *Model) closeSearch() {
	if m.search.Open() {
		m.search, _ = m.search.Update(tea.KeyMsg{Type: tea.KeyEsc})
	}
	m.search.Blur()
}

// processAction executes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.Move(a.Direction)

	case inputtypes.EnterGroupsAction:
		m.state.Page = state.PageGroups
		return m.loadGroups()

	case inputtypes.SwitchTabAction:
		next := state.TabMine
		if m.state.Tab == state.TabMine {
			next = state.TabDiscover
		}
		m.state.SwitchTab(next)
		m.nav.SetActive(string(next))
		if m.dir != nil {
			m.state.ShowGroups(m.tabGroups(m.dir))
		}
		m.publishPreferences()

	case inputtypes.CycleFilterAction:
		switch a.Filter {
		case "type":
			m.state.CycleGroupType()
		case "privacy":
			m.state.CyclePrivacy()
		}
		m.publishPreferences()
		return m.loadGroups()

	case inputtypes.CycleSortAction:
		m.state.Sort = m.state.Sort.Next()
		if m.dir != nil {
			m.state.ShowGroups(m.tabGroups(m.dir))
		}
		m.publishPreferences()

	case inputtypes.ClearFiltersAction:
		m.state.ClearFilters()
		m.search.SetValue("")
		m.search.SetResults(nil)
		m.publishPreferences()
		return m.loadGroups()

	case inputtypes.RefreshAction:
		return m.loadGroups()

	case inputtypes.JoinAction:
		g := m.state.GroupByID(a.GroupID)
		if g == nil || m.state.Busy[g.ID] {
			return nil
		}
		return m.cmdExecutor.ExecuteJoin(*g, a.Message)

	case inputtypes.LeaveAction:
		g := m.state.GroupByID(a.GroupID)
		if g == nil || m.state.Busy[g.ID] {
			return nil
		}
		return m.cmdExecutor.ExecuteLeave(*g)

	case inputtypes.ViewDetailsAction:
		if a.GroupID == "" {
			return nil
		}
		m.state.StatusMessage = "Loading details..."
		return m.cmdExecutor.ExecuteDetails(a.GroupID)

	case inputtypes.OpenJoinDialogAction:
		m.join.Title = "Request to join " + a.GroupName
		m.join.Open()

	case inputtypes.ConfirmLeaveAction:
		m.confirm.Body = fmt.Sprintf("Leave %s? You will stop seeing its posts.", a.GroupName)
		m.confirm.Open()

	case inputtypes.CloseDialogAction:
		m.confirm.Close()
		m.join.Close()

	case inputtypes.ForwardKeyAction:
		return m.forwardKey(a.Msg)

	case inputtypes.ToggleHelpAction:
		return m.pager.pagerCmd(RenderHelpContent())

	case inputtypes.ToggleMenuAction:
		m.nav.ToggleMenu()

	case inputtypes.DismissToastsAction:
		m.toasts.DismissAll()

	case inputtypes.QuitAction:
		m.search.Unmount()
		m.publishPreferences()
		return tea.Quit
	}
	return nil
}

// forwardKey hands a key to the component owning the current mode
func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeConfirmLeave:
		m.confirm, cmd = m.confirm.Update(msg)
		return cmd

	case inputtypes.ModeSearch:
		committing := m.search.Open() && m.search.Selected() >= 0
		m.search, cmd = m.search.Update(msg)

		// an emptied query never settles, so drop the term here
		if m.search.TrimmedQuery() == "" && m.state.SearchTerm != "" {
			m.state.SearchTerm = ""
			m.search.SetResults(nil)
			m.search.SetLoading(false)
			cmd = tea.Batch(cmd, m.loadGroups())
		}

		leave := !m.search.Focused()
		switch msg.String() {
		case "esc":
			leave = true
		case "enter":
			leave = leave || !committing
		}
		if leave {
			return tea.Batch(cmd, m.switchMode(inputtypes.ModeNormal))
		}
		return cmd
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.Page != state.PageGroups {
		return nil
	}

	var cmd tea.Cmd
	switch {
	case m.confirm.IsOpen():
		m.confirm, cmd = m.confirm.Update(msg)
		return cmd
	case m.join.IsOpen():
		m.join, cmd = m.join.Update(msg)
		return cmd
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.processAction(inputtypes.NavigateAction{Direction: "up"})
		case tea.MouseButtonWheelDown:
			return m.processAction(inputtypes.NavigateAction{Direction: "down"})
		}
	}

	wasOpen := m.search.Open()
	m.search, cmd = m.search.Update(msg)
	cmds := []tea.Cmd{cmd}

	mode := m.inputHandler.CurrentMode()
	if m.search.Focused() && mode == inputtypes.ModeNormal {
		cmds = append(cmds, m.switchMode(inputtypes.ModeSearch))
	}

	if !wasOpen && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if i, ok := m.cardAt(msg.Y); ok {
			m.setSelection(i)
			if mode == inputtypes.ModeSearch {
				cmds = append(cmds, m.switchMode(inputtypes.ModeNormal))
			}
		}
	}
	return tea.Batch(cmds...)
}

// cardAt maps a screen row to the index of the group card drawn there
func (m *Model) cardAt(y int) (int, bool) {
	top := views.ListTop(m.nav.View())
	if y < top || len(m.state.Groups) == 0 {
		return 0, false
	}
	i := m.state.ViewportOffset + (y-top)/views.CardHeight
	if i >= len(m.state.Groups) || i >= m.state.ViewportOffset+m.state.ViewportHeight {
		return 0, false
	}
	return i, true
}

// loadGroups reloads both listings with the current filters
func (m *Model) loadGroups() tea.Cmd {
	return tea.Batch(m.cmdExecutor.ExecuteLoad(), m.loader.Tick)
}

func (m *Model) tabGroups(dir *api.Directory) []domain.Group {
	list := dir.Discover
	if m.state.Tab == state.TabMine {
		list = dir.Mine
	}
	return logic.SortGroups(list, m.state.Sort)
}

func (m *Model) handleGroupsLoaded(msg commands.GroupsLoadedMsg) tea.Cmd {
	var list []domain.Group
	if msg.Directory != nil {
		list = m.tabGroups(msg.Directory)
	}
	if !m.state.FinishLoad(msg.Seq, list, msg.Err) {
		m.logger.Debug("dropping stale group listing", zap.Int("seq", msg.Seq))
		return nil
	}
	m.search.SetLoading(false)

	if msg.Err != nil {
		m.state.Error = api.UserMessage(msg.Err)
		m.search.SetResults(nil)
		return m.toasts.Error("Could not load groups", m.state.Error)
	}

	m.dir = msg.Directory
	m.state.DiscoverCount = len(msg.Directory.Discover)
	m.state.MineCount = len(msg.Directory.Mine)
	m.nav.SetCount(string(state.TabDiscover), m.state.DiscoverCount)
	m.nav.SetCount(string(state.TabMine), m.state.MineCount)

	if msg.Search != "" && msg.Search == m.search.TrimmedQuery() {
		m.search.SetResults(searchResults(list, m.resultLimit))
	}
	return nil
}

// searchResults turns the first limit groups into dropdown rows
func searchResults(groups []domain.Group, limit int) []searchbar.Result {
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	results := make([]searchbar.Result, 0, len(groups))
	for _, g := range groups {
		subtitle := g.GroupType.Label()
		if g.Parish.Name != "" {
			subtitle += " · " + g.Parish.Name
		}
		results = append(results, searchbar.Result{
			ID:       g.ID,
			Title:    g.Name,
			Subtitle: subtitle,
			Type:     string(g.GroupType),
			Icon:     g.GroupType.Icon(),
		})
	}
	return results
}

func (m *Model) handleSearchSelected(r searchbar.Result) tea.Cmd {
	for i, g := range m.state.Groups {
		if g.ID == r.ID {
			m.setSelection(i)
			break
		}
	}
	return m.switchMode(inputtypes.ModeNormal)
}

func (m *Model) handleJoined(msg commands.JoinedMsg) tea.Cmd {
	delete(m.state.Busy, msg.GroupID)
	if msg.Err != nil {
		return m.toasts.Error("Could not join "+msg.GroupName, api.UserMessage(msg.Err))
	}

	var note tea.Cmd
	if msg.Result != nil && msg.Result.Pending {
		note = m.toasts.Info("Request sent", orDefault(msg.Result.Message, "The group admins will review your request."))
	} else {
		text := "You are now a member."
		if msg.Result != nil {
			text = orDefault(msg.Result.Message, text)
		}
		note = m.toasts.Spiritual("Welcome to "+msg.GroupName, text)
	}
	return tea.Batch(note, m.loadGroups())
}

func (m *Model) handleLeft(msg commands.LeftMsg) tea.Cmd {
	delete(m.state.Busy, msg.GroupID)
	if msg.Err != nil {
		return m.toasts.Error("Could not leave "+msg.GroupName, api.UserMessage(msg.Err))
	}
	return tea.Batch(m.toasts.Success("You left "+msg.GroupName, ""), m.loadGroups())
}

func (m *Model) handleUserLoaded(msg commands.UserLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Warn("loading user failed", zap.Error(msg.Err))
		if api.IsUnauthorized(msg.Err) {
			return m.toasts.Warning("Not signed in", "Set api.token in the config file to join groups.")
		}
		return nil
	}
	m.state.User = *msg.User
	m.nav.User = msg.User.DisplayName()
	return nil
}

// publishPreferences asks for the current tab and filters to be saved
func (m *Model) publishPreferences() {
	if m.bus == nil {
		return
	}
	m.bus.Publish(eventbus.ConfigChangedEvent{
		LastTab:       string(m.state.Tab),
		LastGroupType: string(m.state.GroupType),
		LastPrivacy:   string(m.state.Privacy),
		LastSort:      m.state.Sort.String(),
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.state.Page == state.PageLanding {
		return m.renderer.RenderOverlays(m.renderer.RenderLanding(m.width, m.height), views.ViewState{
			Width:         m.width,
			Height:        m.height,
			Toasts:        m.toasts.View(),
			ToastPosition: m.toasts.Position(),
		})
	}

	s := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Nav:            m.nav.View(),
		SearchInput:    m.search.InputView(),
		Tab:            m.state.Tab,
		GroupType:      m.state.GroupType,
		Privacy:        m.state.Privacy,
		Sort:           m.state.Sort.Label(),
		HasFilters:     m.state.HasFilters(),
		SearchTerm:     m.state.SearchTerm,
		Groups:         m.state.Groups,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Busy:           m.state.Busy,
		Loading:        m.state.Loading,
		Spinner:        m.loader.View(),
		Error:          m.state.Error,
		StatusMessage:  m.state.StatusMessage,
		Toasts:         m.toasts.View(),
		ToastPosition:  m.toasts.Position(),
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		s.Help = m.help.View(m.search.KeyMap)
	} else {
		s.Help = m.help.View(m.keys)
	}

	if m.search.Open() {
		s.Dropdown = m.search.DropdownView()
	}

	switch {
	case m.confirm.IsOpen():
		s.Dialog = m.confirm.View()
		s.DialogX, s.DialogY = m.confirm.Origin()
		s.DialogOpen = true
	case m.join.IsOpen():
		m.join.Body = m.joinBody()
		s.Dialog = m.join.View()
		s.DialogX, s.DialogY = m.join.Origin()
		s.DialogOpen = true
	}

	return m.renderer.Render(s)
}

func (m *Model) joinBody() string {
	body := "This group requires approval. Add an optional message for the admins."
	if f := m.inputHandler.TextInput(); f != nil {
		body += "\n\n" + f.View()
	}
	return body
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
