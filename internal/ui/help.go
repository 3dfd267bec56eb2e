package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// keyMap drives the one-line help in the footer
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Tab     key.Binding
	Join    key.Binding
	Leave   key.Binding
	Details key.Binding
	Filter  key.Binding
	Sort    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "my groups")),
		Join:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "join")),
		Leave:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "leave")),
		Details: key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "details")),
		Filter:  key.NewBinding(key.WithKeys("t", "p"), key.WithHelp("t/p", "filter")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tab, k.Join, k.Leave, k.Details, k.Filter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Search, k.Filter, k.Sort},
		{k.Join, k.Leave, k.Details},
		{k.Help, k.Quit},
	}
}

// helpSection is a titled block of key descriptions
type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Navigation", [][2]string{
		{"↑/↓, j/k", "Move between groups"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/G", "Go to top/bottom"},
		{"tab", "Switch between Discover and My Groups"},
		{"m", "Toggle the menu on narrow screens"},
	}},
	{"Search", [][2]string{
		{"/", "Focus the search bar"},
		{"↑/↓", "Move through suggestions"},
		{"enter", "Open the highlighted suggestion"},
		{"esc", "Close suggestions"},
		{"ctrl+l", "Clear the search"},
		{"tab", "Back to the list, keeping the search"},
	}},
	{"Filters", [][2]string{
		{"t", "Cycle group type"},
		{"p", "Cycle privacy"},
		{"s", "Cycle sort order"},
		{"c", "Clear filters and search"},
		{"r", "Refresh"},
	}},
	{"Groups", [][2]string{
		{"J", "Join, or request to join"},
		{"L", "Leave (asks first)"},
		{"enter/v", "Show group details"},
	}},
	{"Other", [][2]string{
		{"esc", "Dismiss notifications"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent generates help content with colors for the pager
func RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("178")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("✝ Coptic Social Help"))
	help.WriteString("\n")

	for _, s := range helpSections {
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, k := range s.keys {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(k[0]), descStyle.Render(k[1])))
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Press q to return"))
	return help.String()
}

// PagerOps shows long text in ov while the TUI is suspended
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content using ov
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd shows content in the pager off the update loop
func (p *PagerOps) pagerCmd(content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{err: p.Show(content)}
	}
}
