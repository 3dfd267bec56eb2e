package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"copticsocial/internal/domain"
)

// detailsMarkdown describes a group as markdown for the details pager
func detailsMarkdown(g domain.Group) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", g.GroupType.Icon(), g.Name)

	fmt.Fprintf(&b, "**%s** · %s", g.GroupType.Label(), g.Privacy.Label())
	if g.IsFeatured {
		b.WriteString(" · ⭐ Featured")
	}
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(g.Description); desc != "" {
		b.WriteString(desc)
	} else {
		b.WriteString("_No description provided._")
	}
	b.WriteString("\n\n## Details\n\n")

	if g.Parish.Name != "" {
		parish := g.Parish.Name
		if g.Parish.City != "" {
			parish += ", " + g.Parish.City
		}
		fmt.Fprintf(&b, "- **Parish:** %s\n", parish)
	}
	if g.MaxMembers != nil {
		fmt.Fprintf(&b, "- **Members:** %d of %d\n", g.MemberCount, *g.MaxMembers)
	} else {
		fmt.Fprintf(&b, "- **Members:** %d\n", g.MemberCount)
	}
	fmt.Fprintf(&b, "- **Posts:** %d\n", g.PostCount)
	if g.RequireApproval {
		b.WriteString("- **Joining:** requires approval from the group admins\n")
	}
	if !g.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Created:** %s\n", g.CreatedAt.Format("January 2, 2006"))
	}

	if m := g.UserMembership; m != nil {
		fmt.Fprintf(&b, "\n## Your membership\n\nYou are a **%s** of this group", m.Role)
		if !m.JoinedAt.IsZero() {
			fmt.Fprintf(&b, " since %s", m.JoinedAt.Format("January 2, 2006"))
		}
		b.WriteString(".\n")
	}
	return b.String()
}

// renderDetails renders the group as terminal markdown, falling back to
// the raw markdown when glamour fails
func renderDetails(g domain.Group, width int) string {
	md := detailsMarkdown(g)
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(width, 100)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
