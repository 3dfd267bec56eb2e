package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"copticsocial/internal/domain"
	"copticsocial/internal/ui/components/badge"
)

// CardHeight is the number of terminal rows a group card occupies
const CardHeight = 7

const descriptionLines = 3

// GroupRenderer handles rendering of group cards
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderCard renders one group as a bordered card of CardHeight rows
func (g *GroupRenderer) RenderCard(group domain.Group, selected, busy bool, searchQuery string, width int) string {
	inner := max(width-4, 20)

	name := group.Name
	if searchQuery != "" {
		name = g.highlightMatch(name, searchQuery, g.styles.Highlight, g.styles.CardTitle)
	} else {
		name = g.styles.CardTitle.Render(name)
	}
	header := []string{group.GroupType.Icon() + " " + name, g.styles.CardMeta.Render(group.GroupType.Label()), badge.ForPrivacy(group.Privacy)}
	if group.UserMembership != nil {
		header = append(header, badge.ForRole(group.UserMembership.Role))
	}
	if group.IsFeatured {
		header = append(header, badge.Render(badge.Spiritual, "Featured"))
	}

	lines := []string{strings.Join(header, "  ")}
	lines = append(lines, g.description(group.Description, inner)...)

	meta := fmt.Sprintf("👥 %s", pluralize(group.MemberCount, "member"))
	if group.MaxMembers != nil {
		meta = fmt.Sprintf("👥 %d/%d members", group.MemberCount, *group.MaxMembers)
	}
	meta += fmt.Sprintf(" · 💬 %s", pluralize(group.PostCount, "post"))
	left := g.styles.CardMeta.Render(meta)
	if group.Parish.Name != "" {
		left += "  " + badge.Render(badge.Outline, group.Parish.Name)
	}
	action := g.action(group, busy)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(action), 1)
	lines = append(lines, left+strings.Repeat(" ", gap)+action)
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], inner, "…")
	}

	style := g.styles.Card
	if selected {
		style = g.styles.CardSelected
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Action returns the label of the card's primary action
func Action(group domain.Group, busy bool) string {
	switch {
	case busy:
		return "Working..."
	case group.IsMember():
		return "[L] Leave"
	case group.CanJoin() && group.IsFull():
		return "Full"
	case group.CanJoin() && group.RequireApproval:
		return "[J] Request to join"
	case group.CanJoin():
		return "[J] Join"
	case group.Privacy == domain.PrivacyInviteOnly:
		return "Invite Only"
	default:
		return "Private"
	}
}

func (g *GroupRenderer) action(group domain.Group, busy bool) string {
	label := Action(group, busy)
	switch {
	case busy:
		return g.styles.Dim.Render(label)
	case group.IsMember():
		return g.styles.ActionLeave.Render(label)
	case strings.HasPrefix(label, "[J]"):
		return g.styles.Action.Render(label)
	default:
		return g.styles.Dim.Render("🔒 " + label)
	}
}

// description wraps text to exactly descriptionLines rows, marking
// truncation with an ellipsis
func (g *GroupRenderer) description(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "No description provided."
	}
	wrapped := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	if len(wrapped) > descriptionLines {
		wrapped = wrapped[:descriptionLines]
		last := strings.TrimRight(wrapped[descriptionLines-1], " ")
		if lipgloss.Width(last) >= width {
			r := []rune(last)
			last = string(r[:len(r)-1])
		}
		wrapped[descriptionLines-1] = last + "…"
	}
	for len(wrapped) < descriptionLines {
		wrapped = append(wrapped, "")
	}
	for i := range wrapped {
		wrapped[i] = strings.TrimRight(wrapped[i], " ")
	}
	return wrapped
}

// RenderSkeleton renders a placeholder card shown while loading
func (g *GroupRenderer) RenderSkeleton(width int) string {
	inner := max(width-4, 20)
	bar := func(n int) string {
		return g.styles.Skeleton.Render(strings.Repeat("░", min(n, inner)))
	}
	lines := []string{bar(inner / 3), bar(inner), bar(inner * 2 / 3), "", bar(inner / 4)}
	return g.styles.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// highlightMatch highlights matching text within a string
func (g *GroupRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || lowerQuery == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
