package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"copticsocial/internal/domain"
	"copticsocial/internal/ui/components/toast"
	"copticsocial/internal/ui/state"
)

const (
	// BodyIndent is the left margin of everything below the navigation bar
	BodyIndent = 2
	// searchHeight is the height of the search input box
	searchHeight = 3
	// chromeLines are the filter line, its spacer and the two footer lines
	chromeLines = 4
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Nav         string
	SearchInput string
	Dropdown    string

	Tab        state.Tab
	GroupType  domain.GroupType
	Privacy    domain.Privacy
	Sort       string
	HasFilters bool
	SearchTerm string

	Groups         []domain.Group
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Busy           map[string]bool

	Loading bool
	Spinner string
	Error   string

	StatusMessage string
	Help          string

	Dialog     string
	DialogX    int
	DialogY    int
	DialogOpen bool

	Toasts        string
	ToastPosition toast.Position
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	groupRender *GroupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		groupRender: NewGroupRenderer(styles),
	}
}

// SearchOrigin returns the screen cell of the search box's top-left
// corner below the given navigation bar
func SearchOrigin(nav string) (int, int) {
	return BodyIndent, lipgloss.Height(nav)
}

// ListTop returns the screen row of the first group card
func ListTop(nav string) int {
	return lipgloss.Height(nav) + searchHeight + 2
}

// ViewportCards returns how many cards fit below the navigation bar
func ViewportCards(height int, nav string) int {
	free := height - lipgloss.Height(nav) - searchHeight - chromeLines
	return max(free/CardHeight, 1)
}

// CardWidth returns the width of a group card for a terminal width
func CardWidth(width int) int {
	return max(min(width-BodyIndent*2, 100), 30)
}

// Render produces the groups page
func (r *Renderer) Render(s ViewState) string {
	body := []string{s.SearchInput, r.renderFilters(s), ""}
	body = append(body, r.renderList(s))

	page := s.Nav + "\n" + lipgloss.NewStyle().PaddingLeft(BodyIndent).Render(strings.Join(body, "\n"))

	// Pin the footer to the last two rows
	lines := strings.Split(page, "\n")
	limit := max(s.Height-2, 1)
	if len(lines) > limit {
		lines = lines[:limit]
	}
	for len(lines) < limit {
		lines = append(lines, "")
	}
	lines = append(lines, r.renderStatus(s), r.styles.Help.Render(" "+s.Help))
	view := strings.Join(lines, "\n")

	if s.Dropdown != "" {
		x, y := SearchOrigin(s.Nav)
		view = PlaceOverlay(x, y+searchHeight, s.Dropdown, view, false)
	}
	return r.RenderOverlays(view, s)
}

// RenderOverlays draws the open dialog and the toast stack over view
func (r *Renderer) RenderOverlays(view string, s ViewState) string {
	if s.DialogOpen && s.Dialog != "" {
		view = PlaceOverlay(s.DialogX, s.DialogY, s.Dialog, view, true)
	}
	if s.Toasts != "" {
		w, h := lipgloss.Width(s.Toasts), lipgloss.Height(s.Toasts)
		var x, y int
		switch s.ToastPosition.Align() {
		case lipgloss.Left:
			x = 1
		case lipgloss.Center:
			x = (s.Width - w) / 2
		default:
			x = s.Width - w - 1
		}
		if s.ToastPosition.Top() {
			y = 1
		} else {
			y = s.Height - h - 2
		}
		view = PlaceOverlay(x, y, s.Toasts, view, false)
	}
	return view
}

func (r *Renderer) renderFilters(s ViewState) string {
	typeLabel, privacyLabel := "All", "All"
	typeStyle, privacyStyle := r.styles.Filter, r.styles.Filter
	if s.GroupType != "" {
		typeLabel = s.GroupType.Icon() + " " + s.GroupType.Label()
		typeStyle = r.styles.FilterActive
	}
	if s.Privacy != "" {
		privacyLabel = s.Privacy.Label()
		privacyStyle = r.styles.FilterActive
	}
	parts := []string{
		r.styles.Dim.Render("[t]") + " Type: " + typeStyle.Render(typeLabel),
		r.styles.Dim.Render("[p]") + " Privacy: " + privacyStyle.Render(privacyLabel),
	}
	if s.Sort != "" {
		parts = append(parts, r.styles.Dim.Render("[s]")+" Sort: "+r.styles.Filter.Render(s.Sort))
	}
	if s.SearchTerm != "" {
		parts = append(parts, "Search: "+r.styles.FilterActive.Render(fmt.Sprintf("%q", s.SearchTerm)))
	}
	if s.HasFilters {
		parts = append(parts, r.styles.Dim.Render("[c] Clear filters"))
	}
	return strings.Join(parts, "   ")
}

func (r *Renderer) renderList(s ViewState) string {
	width := CardWidth(s.Width)

	if s.Loading && len(s.Groups) == 0 {
		cards := []string{s.Spinner + " Loading groups..."}
		for i := 0; i < min(s.ViewportHeight, 2); i++ {
			cards = append(cards, r.groupRender.RenderSkeleton(width))
		}
		return strings.Join(cards, "\n")
	}

	if s.Error != "" {
		return strings.Join([]string{
			r.styles.StatusError.Render("⚠ Could not load groups"),
			r.styles.Dim.Render(s.Error),
			"",
			r.styles.Action.Render("[r] Try again"),
		}, "\n")
	}

	if len(s.Groups) == 0 {
		lines := []string{r.styles.CardTitle.Render("No groups found")}
		if s.Tab == state.TabMine {
			lines = append(lines, r.styles.Dim.Render("You haven't joined any groups yet. Press tab to discover groups."))
		} else {
			lines = append(lines, r.styles.Dim.Render("Try adjusting your search or filters."))
			if s.HasFilters {
				lines = append(lines, "", r.styles.Action.Render("[c] Clear filters"))
			}
		}
		return strings.Join(lines, "\n")
	}

	end := min(s.ViewportOffset+s.ViewportHeight, len(s.Groups))
	cards := make([]string, 0, end-s.ViewportOffset)
	for i := s.ViewportOffset; i < end; i++ {
		g := s.Groups[i]
		cards = append(cards, r.groupRender.RenderCard(g, i == s.SelectedIndex, s.Busy[g.ID], s.SearchTerm, width))
	}
	return strings.Join(cards, "\n")
}

func (r *Renderer) renderStatus(s ViewState) string {
	left := s.StatusMessage
	if left == "" && len(s.Groups) > 0 {
		left = fmt.Sprintf("%d of %d", s.SelectedIndex+1, len(s.Groups))
	}
	if s.Loading && len(s.Groups) > 0 {
		left = s.Spinner + " Refreshing..."
	}
	return r.styles.Status.Render(" " + left)
}
