package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/client"
	"github.com/hirewire/hirewire/pkg/domain"
)

// notifsModel is the notification manager page: the uncapped list with the
// full action set, including mark-all-read and manual refresh.
type notifsModel struct {
	client     *client.Client
	store      *notify.Store
	invites    *invitationHandler
	cursor     int
	unreadOnly bool
	loading    bool
	spinner    spinner.Model
	err        string
	width      int
	height     int
}

func newNotifsModel(c *client.Client, s *notify.Store, h *invitationHandler) notifsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return notifsModel{
		client:  c,
		store:   s,
		invites: h,
		spinner: sp,
	}
}

func (m notifsModel) Init() tea.Cmd {
	if m.store.Len() == 0 {
		return tea.Batch(fetchNotifications(m.client, m.store), m.spinner.Tick)
	}
	return fetchNotifications(m.client, m.store)
}

func (m notifsModel) visible() []domain.Notification {
	if m.unreadOnly {
		return m.store.Unread()
	}
	return m.store.All()
}

func (m notifsModel) Update(msg tea.Msg) (notifsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.store.Len() > 0 || m.err != "" {
			m.loading = false
			return m, nil
		}
		m.loading = true
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err.Error()
		} else {
			m.err = ""
		}
		return m, nil

	case tea.KeyMsg:
		rows := m.visible()
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(rows)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g":
			m.cursor = 0
		case "G":
			if len(rows) > 0 {
				m.cursor = len(rows) - 1
			}
		case "u", "tab":
			m.unreadOnly = !m.unreadOnly
			m.cursor = 0
		case "enter":
			if n, ok := rowAt(rows, m.cursor); ok {
				return m, openNotification(m.client, m.store, n)
			}
		case "m":
			if n, ok := rowAt(rows, m.cursor); ok {
				return m, markRead(m.client, m.store, n.ID)
			}
		case "M":
			return m, markAllRead(m.client, m.store)
		case "a":
			if n, ok := rowAt(rows, m.cursor); ok {
				return m, m.invites.resolve(n, true)
			}
		case "d":
			if n, ok := rowAt(rows, m.cursor); ok {
				return m, m.invites.resolve(n, false)
			}
		case "c":
			if n, ok := rowAt(rows, m.cursor); ok && n.TargetURL != "" {
				url := n.TargetURL
				return m, func() tea.Msg {
					if err := clipboard.WriteAll(url); err != nil {
						return toastMsg{kind: toastErr, text: "copy failed: " + err.Error()}
					}
					return toastMsg{kind: toastOk, text: "link copied"}
				}
			}
		case "r":
			m.err = ""
			if m.store.Len() == 0 {
				m.loading = true
				return m, tea.Batch(fetchNotifications(m.client, m.store), m.spinner.Tick)
			}
			return m, fetchNotifications(m.client, m.store)
		}
	}
	return m, nil
}

func (m notifsModel) View() string {
	if m.loading && m.store.Len() == 0 {
		return " " + m.spinner.View() + dimStyle.Render("loading notifications...")
	}
	if m.err != "" && m.store.Len() == 0 {
		return " " + errStyle.Render("error: "+m.err) + "\n" +
			" " + dimStyle.Render("press r to retry")
	}

	var sb strings.Builder

	filter := "All"
	if m.unreadOnly {
		filter = "Unread"
	}
	header := " " + sectionHeaderStyle.Render(fmt.Sprintf("%s · %d", filter, len(m.visible())))
	if m.err != "" {
		header += "  " + errStyle.Render("refresh failed") + " " + dimStyle.Render("(r to retry)")
	}
	sb.WriteString(header + "\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		if m.unreadOnly {
			sb.WriteString(" " + dimStyle.Render("all caught up") + "\n")
		} else {
			sb.WriteString(" " + dimStyle.Render("no notifications yet") + "\n")
		}
		return sb.String()
	}

	cursor := m.cursor
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}

	// Each row takes 3 lines (entry, meta, gap); keep the cursor in view.
	maxRows := (m.height - 2) / 3
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if cursor >= maxRows {
		start = cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(rows) {
		end = len(rows)
	}

	for i := start; i < end; i++ {
		n := rows[i]
		sb.WriteString(renderRow(n, i == cursor, m.invites.respondingTo(n.ID), m.width) + "\n\n")
	}

	if start > 0 || end < len(rows) {
		sb.WriteString(" " + metaStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(rows))) + "\n")
	}

	return sb.String()
}
