package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var landingFeatures = []string{
	"⛪  Find ministries, study groups and committees in your parish",
	"🙏  Join prayer groups and services",
	"🤝  Stay connected with your church community",
}

// RenderLanding renders the welcome page centered on screen
func (r *Renderer) RenderLanding(width, height int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("✝ Coptic Social"))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Tagline.Render("Connecting the Coptic Orthodox community"))
	b.WriteString("\n\n")
	for _, f := range landingFeatures {
		b.WriteString(r.styles.CardMeta.Render(f))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Action.Render("[enter] Browse groups"))
	b.WriteString("    ")
	b.WriteString(r.styles.Dim.Render("[q] Quit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("178")).
		Padding(1, 4).
		Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
