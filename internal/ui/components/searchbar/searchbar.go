// Package searchbar implements a typeahead search input with a debounced
// query callback and a keyboard and mouse navigable result dropdown.
//
// The control never performs lookups itself. After the query settles it
// calls Options.OnSearch with the trimmed query and the caller delivers
// matches back through SetResults.
package searchbar

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounce is the quiet period before a query is dispatched
const DefaultDebounce = 300 * time.Millisecond

// Result is an item shown in the dropdown. Order is kept as given.
type Result struct {
	ID       string
	Title    string
	Subtitle string
	Type     string
	Icon     string
}

// Size is the visual width variant of the input
type Size string

const (
	SizeSmall   Size = "sm"
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
	SizeFull    Size = "full"
)

// ParseSize maps a config value to a Size, defaulting to SizeDefault
func ParseSize(s string) Size {
	switch Size(s) {
	case SizeSmall, SizeLarge, SizeFull:
		return Size(s)
	default:
		return SizeDefault
	}
}

func (s Size) width() int {
	switch s {
	case SizeSmall:
		return 32
	case SizeLarge:
		return 64
	default:
		return 48
	}
}

// Options configures a search bar
type Options struct {
	Debounce        time.Duration
	Placeholder     string
	ShowClearButton bool
	Size            Size

	// OnSearch runs once the query has been stable for Debounce.
	// It receives the trimmed, non-empty query.
	OnSearch func(query string) tea.Cmd
	// OnSelect runs when a result is committed
	OnSelect func(Result) tea.Cmd
	// OnClear runs after the clear action
	OnClear func() tea.Cmd
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Debounce:        DefaultDebounce,
		Placeholder:     "Search...",
		ShowClearButton: true,
		Size:            SizeDefault,
	}
}

// TickFunc schedules a message after a delay. tea.Tick satisfies it.
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// debounceMsg fires when a debounce timer elapses. Only the message
// matching the instance id and the latest sequence is acted on.
type debounceMsg struct {
	id  int64
	seq int
}

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// Model is the search bar state
type Model struct {
	KeyMap KeyMap
	Styles Styles

	id       int64
	opts     Options
	input    textinput.Model
	spinner  spinner.Model
	results  []Result
	loading  bool
	open     bool
	selected int
	seq      int
	pending  bool
	mounted  bool
	tick     TickFunc

	originX int
	originY int
	width   int
}

// New creates a mounted search bar
func New(opts Options) Model {
	if opts.Debounce < 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Size == "" {
		opts.Size = SizeDefault
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 256

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		KeyMap:   DefaultKeyMap(),
		Styles:   DefaultStyles(),
		id:       nextID(),
		opts:     opts,
		input:    ti,
		spinner:  sp,
		selected: -1,
		mounted:  true,
		tick:     tea.Tick,
	}
	m.SetWidth(opts.Size.width())
	sp.Style = m.Styles.Spinner
	m.spinner = sp
	return m
}

// WithTick replaces the timer used for debouncing
func (m Model) WithTick(tick TickFunc) Model {
	m.tick = tick
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Query returns the raw query text
func (m Model) Query() string { return m.input.Value() }

// TrimmedQuery returns the query without surrounding whitespace
func (m Model) TrimmedQuery() string { return strings.TrimSpace(m.input.Value()) }

// Results returns the current result list
func (m Model) Results() []Result { return m.results }

// Selected returns the highlighted result index, or -1
func (m Model) Selected() int { return m.selected }

// Open reports whether the dropdown is shown
func (m Model) Open() bool { return m.open }

// Loading reports whether a lookup is in flight
func (m Model) Loading() bool { return m.loading }

// Focused reports whether the input has keyboard focus
func (m Model) Focused() bool { return m.input.Focused() }

// Mounted reports whether the control still handles events
func (m Model) Mounted() bool { return m.mounted }

// Pending reports whether a debounced dispatch is scheduled
func (m Model) Pending() bool { return m.pending }

// Focus gives the input keyboard focus and reopens the dropdown when
// there is a query
func (m *Model) Focus() tea.Cmd {
	if !m.mounted {
		return nil
	}
	if m.TrimmedQuery() != "" {
		m.open = true
	}
	return m.input.Focus()
}

// Blur removes keyboard focus
func (m *Model) Blur() {
	m.input.Blur()
}

// SetResults replaces the result list and resets the selection
func (m *Model) SetResults(results []Result) {
	m.results = append([]Result(nil), results...)
	m.selected = -1
}

// SetLoading toggles the loading indicator
func (m *Model) SetLoading(loading bool) tea.Cmd {
	wasLoading := m.loading
	m.loading = loading
	if loading && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// SetValue replaces the query without scheduling a search. A pending
// dispatch is cancelled.
func (m *Model) SetValue(q string) {
	m.input.SetValue(q)
	m.input.CursorEnd()
	m.cancelPending()
	m.selected = -1
	if strings.TrimSpace(q) == "" {
		m.open = false
	}
}

// SetWidth sets the outer width of the control
func (m *Model) SetWidth(w int) {
	if w < 16 {
		w = 16
	}
	m.width = w
	// border, padding, glyph and trailing affordance
	m.input.Width = w - 10
}

// Width returns the outer width of the control
func (m Model) Width() int { return m.width }

// Size returns the configured size variant
func (m Model) Size() Size { return m.opts.Size }

// SetOrigin records where the control is drawn on screen so mouse
// events can be hit tested
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Clear resets the query, closes the dropdown and restores focus
func (m *Model) Clear() tea.Cmd {
	if !m.mounted {
		return nil
	}
	m.input.SetValue("")
	m.cancelPending()
	m.open = false
	m.selected = -1

	cmds := []tea.Cmd{m.input.Focus()}
	if m.opts.OnClear != nil {
		cmds = append(cmds, m.opts.OnClear())
	}
	return tea.Batch(cmds...)
}

// Unmount tears the control down. Pending dispatches are dropped and
// no further events are handled.
func (m *Model) Unmount() {
	m.mounted = false
	m.cancelPending()
	m.open = false
	m.selected = -1
	m.input.Blur()
}

func (m *Model) cancelPending() {
	m.seq++
	m.pending = false
}

// schedule restarts the debounce timer for the current query
func (m *Model) schedule() tea.Cmd {
	m.seq++
	m.pending = false
	if m.TrimmedQuery() == "" {
		return nil
	}
	m.pending = true
	msg := debounceMsg{id: m.id, seq: m.seq}
	return m.tick(m.opts.Debounce, func(time.Time) tea.Msg {
		return msg
	})
}

func (m *Model) queryChanged() tea.Cmd {
	m.selected = -1
	m.open = m.TrimmedQuery() != ""
	return m.schedule()
}

func (m *Model) commit(i int) tea.Cmd {
	if i < 0 || i >= len(m.results) {
		return nil
	}
	item := m.results[i]
	m.input.SetValue(item.Title)
	m.input.CursorEnd()
	m.open = false
	m.selected = -1

	var cmds []tea.Cmd
	if m.opts.OnSelect != nil {
		cmds = append(cmds, m.opts.OnSelect(item))
	}
	// the title is a new query and settles like any other edit
	cmds = append(cmds, m.schedule())
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.mounted {
		return m, nil
	}

	switch msg := msg.(type) {
	case debounceMsg:
		if msg.id != m.id || msg.seq != m.seq || !m.pending {
			return m, nil
		}
		m.pending = false
		q := m.TrimmedQuery()
		if q == "" || m.opts.OnSearch == nil {
			return m, nil
		}
		return m, m.opts.OnSearch(q)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Clear):
		cmd := m.Clear()
		return m, cmd

	case key.Matches(msg, m.KeyMap.Down):
		if m.open && len(m.results) > 0 {
			m.selected = min(m.selected+1, len(m.results)-1)
		}
		return m, nil

	case key.Matches(msg, m.KeyMap.Up):
		if m.open {
			m.selected = max(m.selected-1, -1)
		}
		return m, nil

	case key.Matches(msg, m.KeyMap.Select):
		if m.open && m.selected >= 0 {
			cmd := m.commit(m.selected)
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.KeyMap.Dismiss):
		if m.open {
			m.open = false
			m.selected = -1
			m.input.Blur()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.queryChanged())
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.open {
			if row, ok := m.rowAt(msg.X, msg.Y); ok {
				m.selected = row
			}
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.inClearZone(msg.X, msg.Y) {
			cmd := m.Clear()
			return m, cmd
		}
		if m.open {
			if row, ok := m.rowAt(msg.X, msg.Y); ok {
				cmd := m.commit(row)
				return m, cmd
			}
		}
		if m.inInput(msg.X, msg.Y) {
			cmd := m.Focus()
			return m, cmd
		}
		if m.open && !m.inDropdown(msg.X, msg.Y) {
			m.open = false
			m.selected = -1
		}
	}
	return m, nil
}
