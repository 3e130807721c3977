package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire/hirewire/internal/config"
	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/client"
	"github.com/hirewire/hirewire/pkg/domain"
)

// dropdownModel is the bell panel: a capped, quick view of recent
// notifications overlaid on whatever tab is active.
type dropdownModel struct {
	client     *client.Client
	store      *notify.Store
	invites    *invitationHandler
	cap        int
	cursor     int
	unreadOnly bool
	loading    bool
	spinner    spinner.Model
	err        string
	width      int
	height     int
}

func newDropdownModel(c *client.Client, s *notify.Store, cfg *config.Config, h *invitationHandler) dropdownModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	return dropdownModel{
		client:  c,
		store:   s,
		invites: h,
		cap:     cfg.DropdownCap,
		spinner: sp,
	}
}

// open refreshes the panel. With rows already on hand the refetch is silent;
// only a cold panel shows a spinner.
func (m dropdownModel) open() (dropdownModel, tea.Cmd) {
	m.cursor = 0
	fetch := fetchNotifications(m.client, m.store)
	if m.store.Len() == 0 {
		m.loading = true
		return m, tea.Batch(fetch, m.spinner.Tick)
	}
	return m, fetch
}

// visible returns the rows the panel shows: filtered, newest first, capped.
func (m dropdownModel) visible() []domain.Notification {
	var list []domain.Notification
	if m.unreadOnly {
		list = m.store.Unread()
	} else {
		list = m.store.All()
	}
	if len(list) > m.cap {
		list = list[:m.cap]
	}
	return list
}

func (m dropdownModel) Update(msg tea.Msg) (dropdownModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
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
		case "a":
			if n, ok := rowAt(rows, m.cursor); ok {
				return m, m.invites.resolve(n, true)
			}
		case "d":
			if n, ok := rowAt(rows, m.cursor); ok {
				return m, m.invites.resolve(n, false)
			}
		case "r":
			m.err = ""
			if m.store.Len() == 0 {
				m.loading = true
				return m, tea.Batch(fetchNotifications(m.client, m.store), m.spinner.Tick)
			}
			return m, fetchNotifications(m.client, m.store)
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
		}
	}
	return m, nil
}

func rowAt(rows []domain.Notification, i int) (domain.Notification, bool) {
	if i < 0 || i >= len(rows) {
		return domain.Notification{}, false
	}
	return rows[i], true
}

func (m dropdownModel) View() string {
	var sb strings.Builder

	filter := "all"
	if m.unreadOnly {
		filter = "unread"
	}
	title := " " + goldStyle.Render("Notifications") + "  " +
		metaStyle.Render(fmt.Sprintf("%d unread · %s", m.store.UnreadCount(), filter))
	sb.WriteString(title + "\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	sb.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.loading && m.store.Len() == 0 {
		sb.WriteString(" " + m.spinner.View() + dimStyle.Render("loading...") + "\n")
		return sb.String()
	}
	if m.err != "" && m.store.Len() == 0 {
		sb.WriteString(" " + errStyle.Render("error: "+m.err) + "\n")
		sb.WriteString(" " + dimStyle.Render("press r to retry") + "\n")
		return sb.String()
	}

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

	for i, n := range rows {
		sb.WriteString(renderRow(n, i == cursor, m.invites.respondingTo(n.ID), m.width) + "\n")
	}

	total := m.store.Len()
	if m.unreadOnly {
		total = m.store.UnreadCount()
	}
	if total > len(rows) {
		sb.WriteString("\n " + metaStyle.Render(fmt.Sprintf("showing %d of %d · press 2 for all", len(rows), total)) + "\n")
	}

	return sb.String()
}
