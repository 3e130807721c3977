package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/domain"
)

// renderRow renders one notification as a two-line entry. Both the dropdown
// and the notifications page go through here so the surfaces never drift.
func renderRow(n domain.Notification, selected, responding bool, width int) string {
	look := notify.CategoryLook(n.Category)
	glyph := lipgloss.NewStyle().Foreground(look.Color).Render(look.Glyph)

	dot := " "
	if !n.IsRead {
		dot = unreadDotStyle.Render("●")
	}

	cursor := "  "
	msgStyle := normalStyle
	if selected {
		cursor = accentStyle.Render("> ")
		msgStyle = selectedStyle
	}
	if n.IsRead {
		msgStyle = dimStyle
	}
	if selected && n.IsRead {
		msgStyle = selectedStyle
	}

	msgWidth := width - 8
	if msgWidth < 20 {
		msgWidth = 20
	}

	line := " " + cursor + dot + " " + glyph + " " + msgStyle.Render(truncStr(n.Message, msgWidth))

	// Meta line: relative time, then invitation state or detail
	meta := []string{formatTime(n.CreatedAt)}
	if n.Detail != "" {
		meta = append(meta, truncStr(n.Detail, 48))
	}
	metaLine := "       " + metaStyle.Render(strings.Join(meta, " · "))

	if inv := n.Invitation; inv != nil {
		switch {
		case inv.Status == domain.InvitationAccepted:
			metaLine += " " + acceptStyle.Render("accepted")
		case inv.Status == domain.InvitationDeclined:
			metaLine += " " + declineStyle.Render("declined")
		case responding:
			metaLine += " " + pendingStyle.Render("responding...")
		case inv.Status.Pending():
			metaLine += " " + acceptStyle.Render("a accept") + " " + declineStyle.Render("d decline")
		default:
			metaLine += " " + metaStyle.Render(string(inv.Status))
		}
	}

	return line + "\n" + metaLine
}
