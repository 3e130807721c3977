package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/domain"
	"github.com/hirewire/hirewire/pkg/push"
)

// overviewModel is the landing tab: who you are, whether the push channel is
// up, and a glance at what is waiting in the inbox.
type overviewModel struct {
	store     *notify.Store
	me        *domain.Account
	meErr     string
	connState push.State
	width     int
	height    int
}

func newOverviewModel(s *notify.Store) overviewModel {
	return overviewModel{store: s}
}

func (m overviewModel) Update(msg tea.Msg) (overviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case meLoadedMsg:
		if msg.err != nil {
			m.meErr = msg.err.Error()
		} else {
			m.me = msg.me
			m.meErr = ""
		}

	case pushStatusMsg:
		if msg.ok {
			m.connState = msg.s.State
		}
	}
	return m, nil
}

func (m overviewModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")

	// Identity card
	if m.me != nil {
		sb.WriteString(" " + selectedStyle.Render(m.me.DisplayName) + "  " + metaStyle.Render(m.me.Email) + "\n")
		line := []string{}
		if m.me.Role != "" {
			line = append(line, m.me.Role)
		}
		if m.me.CompanyName != "" {
			line = append(line, m.me.CompanyName)
		}
		line = append(line, "joined "+formatTime(m.me.CreatedAt))
		sb.WriteString(" " + dimStyle.Render(strings.Join(line, " · ")) + "\n")
	} else if m.meErr != "" {
		sb.WriteString(" " + errStyle.Render("profile unavailable: "+m.meErr) + "\n")
	} else {
		sb.WriteString(" " + dimStyle.Render("loading profile...") + "\n")
	}
	sb.WriteString("\n")

	// Connection line
	sb.WriteString(" " + connDot(connStateLabel(m.connState)))
	if m.connState != push.StateConnected {
		sb.WriteString("  " + metaStyle.Render("falling back to polling"))
	}
	sb.WriteString("\n\n")

	// Inbox summary
	unread := m.store.UnreadCount()
	total := m.store.Len()
	pending := 0
	for _, n := range m.store.All() {
		if n.HasPendingInvitation() {
			pending++
		}
	}

	sb.WriteString(" " + sectionHeaderStyle.Render("Inbox") + "\n")
	switch {
	case total == 0:
		sb.WriteString(" " + dimStyle.Render("nothing yet") + "\n")
	case unread == 0:
		sb.WriteString(" " + dimStyle.Render(fmt.Sprintf("all %d read", total)) + "\n")
	default:
		sb.WriteString(" " + goldStyle.Render(fmt.Sprintf("%d unread", unread)) + dimStyle.Render(fmt.Sprintf(" of %d", total)) + "\n")
	}
	if pending > 0 {
		label := "invitation awaits a response"
		if pending > 1 {
			label = "invitations await a response"
		}
		sb.WriteString(" " + pendingStyle.Render(fmt.Sprintf("%d %s", pending, label)) + "\n")
	}
	sb.WriteString("\n")

	// Latest rows, read-only preview
	latest := m.store.All()
	if len(latest) > 3 {
		latest = latest[:3]
	}
	if len(latest) > 0 {
		sb.WriteString(" " + sectionHeaderStyle.Render("Latest") + "\n")
		for _, n := range latest {
			sb.WriteString(renderRow(n, false, false, m.width) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(" " + metaStyle.Render("press 2 for the full list, b for the bell panel") + "\n")

	return sb.String()
}
