// Package toast implements a bounded stack of auto-dismissing notifications.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const (
	// DefaultMax is the default capacity of the stack
	DefaultMax = 5
	// DefaultDuration is how long a toast stays before it closes itself
	DefaultDuration = 5 * time.Second
	// LeaveDelay is how long a closing toast stays visible before removal
	LeaveDelay = 300 * time.Millisecond
)

// Variant selects the icon and colour of a toast
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSuccess   Variant = "success"
	VariantError     Variant = "error"
	VariantWarning   Variant = "warning"
	VariantInfo      Variant = "info"
	VariantSpiritual Variant = "spiritual"
)

var variantIcons = map[Variant]string{
	VariantDefault:   "🔔",
	VariantSuccess:   "✓",
	VariantError:     "✗",
	VariantWarning:   "⚠",
	VariantInfo:      "ℹ",
	VariantSpiritual: "✝",
}

var variantColors = map[Variant]lipgloss.Color{
	VariantDefault:   lipgloss.Color("245"),
	VariantSuccess:   lipgloss.Color("78"),
	VariantError:     lipgloss.Color("203"),
	VariantWarning:   lipgloss.Color("214"),
	VariantInfo:      lipgloss.Color("33"),
	VariantSpiritual: lipgloss.Color("178"),
}

// Icon returns the glyph for the variant
func (v Variant) Icon() string {
	if icon, ok := variantIcons[v]; ok {
		return icon
	}
	return variantIcons[VariantDefault]
}

// Position is where the stack is drawn on screen
type Position string

const (
	TopRight     Position = "top-right"
	TopLeft      Position = "top-left"
	TopCenter    Position = "top-center"
	BottomRight  Position = "bottom-right"
	BottomLeft   Position = "bottom-left"
	BottomCenter Position = "bottom-center"
)

// ParsePosition maps a config value to a Position, defaulting to TopRight
func ParsePosition(s string) Position {
	switch p := Position(s); p {
	case TopLeft, TopCenter, BottomRight, BottomLeft, BottomCenter:
		return p
	default:
		return TopRight
	}
}

// Top reports whether the stack is anchored to the top edge
func (p Position) Top() bool {
	return strings.HasPrefix(string(p), "top")
}

// Align returns the horizontal alignment for the position
func (p Position) Align() lipgloss.Position {
	switch {
	case strings.HasSuffix(string(p), "left"):
		return lipgloss.Left
	case strings.HasSuffix(string(p), "center"):
		return lipgloss.Center
	default:
		return lipgloss.Right
	}
}

// Toast is a single notification
type Toast struct {
	ID          string
	Variant     Variant
	Title       string
	Description string
	// Persistent toasts stay until dismissed
	Persistent bool
	// Duration overrides the stack default when positive
	Duration time.Duration
	HideIcon bool

	leaving bool
}

// Leaving reports whether the toast is in its closing phase
func (t Toast) Leaving() bool { return t.leaving }

// TickFunc schedules a message after a delay. tea.Tick satisfies it.
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

type expireMsg struct{ id string }

type removeMsg struct{ id string }

// Model is the toast stack
type Model struct {
	Styles Styles

	toasts   []Toast
	max      int
	duration time.Duration
	position Position
	width    int
	tick     TickFunc
}

// New creates a stack holding at most capacity toasts. When full,
// pushing evicts the oldest toast.
func New(capacity int, duration time.Duration, position Position) Model {
	if capacity <= 0 {
		capacity = DefaultMax
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return Model{
		Styles:   DefaultStyles(),
		max:      capacity,
		duration: duration,
		position: position,
		width:    40,
		tick:     tea.Tick,
	}
}

// WithTick replaces the timer used for auto-dismissal
func (m Model) WithTick(tick TickFunc) Model {
	m.tick = tick
	return m
}

// Toasts returns the visible toasts, oldest first
func (m Model) Toasts() []Toast { return m.toasts }

// Len returns the number of visible toasts
func (m Model) Len() int { return len(m.toasts) }

// Max returns the capacity of the stack
func (m Model) Max() int { return m.max }

// Position returns where the stack is drawn
func (m Model) Position() Position { return m.position }

// SetWidth sets the width of each toast
func (m *Model) SetWidth(w int) {
	if w > 10 {
		m.width = w
	}
}

// Push adds a toast and returns its id with the command that will
// close it
func (m *Model) Push(t Toast) (string, tea.Cmd) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Variant == "" {
		t.Variant = VariantDefault
	}
	t.leaving = false

	m.toasts = append(m.toasts, t)
	if over := len(m.toasts) - m.max; over > 0 {
		m.toasts = append([]Toast(nil), m.toasts[over:]...)
	}

	if t.Persistent {
		return t.ID, nil
	}
	d := t.Duration
	if d <= 0 {
		d = m.duration
	}
	id := t.ID
	return id, m.tick(d, func(time.Time) tea.Msg { return expireMsg{id: id} })
}

func (m *Model) push(v Variant, title, description string) tea.Cmd {
	_, cmd := m.Push(Toast{Variant: v, Title: title, Description: description})
	return cmd
}

// Success pushes a success toast
func (m *Model) Success(title, description string) tea.Cmd {
	return m.push(VariantSuccess, title, description)
}

// Error pushes an error toast
func (m *Model) Error(title, description string) tea.Cmd {
	return m.push(VariantError, title, description)
}

// Warning pushes a warning toast
func (m *Model) Warning(title, description string) tea.Cmd {
	return m.push(VariantWarning, title, description)
}

// Info pushes an informational toast
func (m *Model) Info(title, description string) tea.Cmd {
	return m.push(VariantInfo, title, description)
}

// Spiritual pushes a toast in the spiritual style
func (m *Model) Spiritual(title, description string) tea.Cmd {
	return m.push(VariantSpiritual, title, description)
}

// Dismiss starts the closing phase of a toast. It is removed after
// LeaveDelay.
func (m *Model) Dismiss(id string) tea.Cmd {
	i := m.index(id)
	if i < 0 || m.toasts[i].leaving {
		return nil
	}
	m.toasts[i].leaving = true
	return m.tick(LeaveDelay, func(time.Time) tea.Msg { return removeMsg{id: id} })
}

// DismissAll removes every toast immediately
func (m *Model) DismissAll() {
	m.toasts = nil
}

func (m *Model) remove(id string) {
	if i := m.index(id); i >= 0 {
		m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
	}
}

func (m Model) index(id string) int {
	for i, t := range m.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Update handles the stack's timer messages. Messages for toasts that
// are already gone are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expireMsg:
		cmd := m.Dismiss(msg.id)
		return m, cmd
	case removeMsg:
		m.remove(msg.id)
	}
	return m, nil
}

// Styles for toasts
type Styles struct {
	Box         lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Leaving     lipgloss.Style
}

// DefaultStyles returns the default toast styles
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Leaving:     lipgloss.NewStyle().Faint(true),
	}
}

// View renders the stack. Newest toasts are nearest the anchored edge.
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}

	boxes := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		boxes = append(boxes, m.renderToast(t))
	}
	if m.position.Top() {
		for i, j := 0, len(boxes)-1; i < j; i, j = i+1, j-1 {
			boxes[i], boxes[j] = boxes[j], boxes[i]
		}
	}
	return lipgloss.JoinVertical(m.position.Align(), boxes...)
}

func (m Model) renderToast(t Toast) string {
	color := variantColors[t.Variant]

	title := m.Styles.Title.Foreground(color).Render(t.Title)
	if !t.HideIcon {
		title = lipgloss.NewStyle().Foreground(color).Render(t.Variant.Icon()) + " " + title
	}
	body := title
	if t.Description != "" {
		body += "\n" + m.Styles.Description.Render(t.Description)
	}

	box := m.Styles.Box.BorderForeground(color).Width(m.width - 2).Render(body)
	if t.leaving {
		box = m.Styles.Leaving.Render(box)
	}
	return box
}
