package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copticsocial/internal/domain"
	"copticsocial/internal/ui/components/toast"
	"copticsocial/internal/ui/state"
)

func plain(s string) string { return ansi.Strip(s) }

func TestPlaceOverlayKeepsSurroundings(t *testing.T) {
	bg := "abcdefghij\nklmnopqrst\nuvwxyz"
	out := plain(PlaceOverlay(2, 1, "XY\nZW", bg, false))
	assert.Equal(t, "abcdefghij\nklXYopqrst\nuvZWyz", out)
}

func TestPlaceOverlayPadsShortRows(t *testing.T) {
	out := plain(PlaceOverlay(4, 2, "!!", "ab", false))
	assert.Equal(t, "ab\n\n    !!", out)
}

func TestPlaceOverlayDimStripsStyles(t *testing.T) {
	bg := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render("red text")
	out := PlaceOverlay(0, 1, "top", bg, true)
	assert.Equal(t, "red text\ntop", plain(out))
}

func TestActionLabels(t *testing.T) {
	limit := 10
	tests := []struct {
		name  string
		group domain.Group
		busy  bool
		want  string
	}{
		{"member", domain.Group{Privacy: domain.PrivacyPublic, UserMembership: &domain.Membership{Role: domain.RoleMember}}, false, "[L] Leave"},
		{"public", domain.Group{Privacy: domain.PrivacyPublic}, false, "[J] Join"},
		{"approval", domain.Group{Privacy: domain.PrivacyParishOnly, RequireApproval: true}, false, "[J] Request to join"},
		{"full", domain.Group{Privacy: domain.PrivacyPublic, MemberCount: 10, MaxMembers: &limit}, false, "Full"},
		{"private", domain.Group{Privacy: domain.PrivacyPrivate}, false, "Private"},
		{"invite", domain.Group{Privacy: domain.PrivacyInviteOnly}, false, "Invite Only"},
		{"busy", domain.Group{Privacy: domain.PrivacyPublic}, true, "Working..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Action(tt.group, tt.busy))
		})
	}
}

func TestCardHasFixedHeight(t *testing.T) {
	g := NewGroupRenderer(NewStyles())
	short := domain.Group{Name: "Praises", GroupType: domain.GroupTypePrayer, Privacy: domain.PrivacyPublic}
	long := short
	long.Description = strings.Repeat("Tasbeha every Saturday night. ", 40)
	long.Parish = domain.Parish{Name: "St. Mark"}
	long.UserMembership = &domain.Membership{Role: domain.RoleAdmin}

	for _, grp := range []domain.Group{short, long} {
		card := g.RenderCard(grp, false, false, "", 60)
		assert.Equal(t, CardHeight, lipgloss.Height(card))
		assert.Equal(t, 60, lipgloss.Width(card))
	}

	card := plain(g.RenderCard(long, true, false, "praise", 60))
	assert.Contains(t, card, "Praises")
	assert.Contains(t, card, "…")
	assert.Contains(t, card, "St. Mark")
	assert.Contains(t, card, "admin")
	assert.Contains(t, card, "[L] Leave")
	assert.Contains(t, card, "0 members")
}

func TestRenderListStates(t *testing.T) {
	r := NewRenderer()
	base := ViewState{Width: 100, Height: 40, Nav: "nav", SearchInput: "search", ViewportHeight: 3, Spinner: "*"}

	loading := base
	loading.Loading = true
	assert.Contains(t, plain(r.Render(loading)), "Loading groups...")

	failed := base
	failed.Error = "connection refused"
	out := plain(r.Render(failed))
	assert.Contains(t, out, "Could not load groups")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "Try again")

	empty := base
	empty.HasFilters = true
	out = plain(r.Render(empty))
	assert.Contains(t, out, "No groups found")
	assert.Contains(t, out, "Clear filters")

	mine := base
	mine.Tab = state.TabMine
	assert.Contains(t, plain(r.Render(mine)), "haven't joined any groups")
}

func TestRenderPinsFooterAndShowsWindow(t *testing.T) {
	r := NewRenderer()
	groups := make([]domain.Group, 5)
	for i := range groups {
		groups[i] = domain.Group{ID: string(rune('a' + i)), Name: "Group " + string(rune('A'+i)), Privacy: domain.PrivacyPublic}
	}
	s := ViewState{
		Width: 100, Height: 30, Nav: "nav", SearchInput: "search",
		Groups: groups, SelectedIndex: 2, ViewportOffset: 1, ViewportHeight: 2,
		Help: "? help",
	}

	out := plain(r.Render(s))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	assert.Contains(t, lines[29], "? help")
	assert.Contains(t, lines[28], "3 of 5")
	assert.NotContains(t, out, "Group A")
	assert.Contains(t, out, "Group B")
	assert.Contains(t, out, "Group C")
	assert.NotContains(t, out, "Group D")
}

func TestToastOverlayPosition(t *testing.T) {
	r := NewRenderer()
	view := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)
	s := ViewState{Width: 40, Height: 10, Toasts: "TOAST", ToastPosition: toast.TopRight}

	lines := strings.Split(plain(r.RenderOverlays(view, s)), "\n")
	assert.Equal(t, strings.Repeat(".", 34)+"TOAST.", lines[1])

	s.ToastPosition = toast.BottomLeft
	lines = strings.Split(plain(r.RenderOverlays(view, s)), "\n")
	assert.Equal(t, "."+"TOAST"+strings.Repeat(".", 34), lines[7])
}

func TestLandingMentionsActions(t *testing.T) {
	out := plain(NewRenderer().RenderLanding(100, 30))
	assert.Contains(t, out, "Coptic Social")
	assert.Contains(t, out, "Browse groups")
	assert.Contains(t, out, "Quit")
}
