package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hirewire/hirewire/internal/browser"
	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/client"
	"github.com/hirewire/hirewire/pkg/domain"
)

// fetchDoneMsg signals a completed snapshot fetch. On success the fresh list
// is already in the store by the time this message arrives.
type fetchDoneMsg struct {
	err error
}

// fetchNotifications pulls a full snapshot and replaces the store contents.
func fetchNotifications(c *client.Client, s *notify.Store) tea.Cmd {
	return func() tea.Msg {
		list, err := c.ListMyNotifications(context.Background())
		if err != nil {
			return fetchDoneMsg{err: err}
		}
		s.Replace(list)
		return fetchDoneMsg{}
	}
}

// markRead flips local read state immediately and tells the server in the
// background. The call result is ignored: local read state never rolls back,
// and a missed write is repaired by the next snapshot.
func markRead(c *client.Client, s *notify.Store, id uuid.UUID) tea.Cmd {
	if !s.MarkRead(id) {
		return nil
	}
	return func() tea.Msg {
		c.MarkNotificationRead(context.Background(), id) //nolint:errcheck // fire-and-forget
		return nil
	}
}

// markAllRead marks every unread notification locally, then reports each one
// to the server in the background.
func markAllRead(c *client.Client, s *notify.Store) tea.Cmd {
	affected := s.MarkAllRead()
	if len(affected) == 0 {
		return nil
	}
	return func() tea.Msg {
		for _, id := range affected {
			c.MarkNotificationRead(context.Background(), id) //nolint:errcheck // fire-and-forget
		}
		return nil
	}
}

// openNotification marks the row read and opens its target in the browser.
// Pending invitations do not open: they demand an explicit accept or decline.
func openNotification(c *client.Client, s *notify.Store, n domain.Notification) tea.Cmd {
	if n.HasPendingInvitation() {
		return nil
	}
	readCmd := markRead(c, s, n.ID)
	if n.TargetURL == "" {
		return readCmd
	}
	url := n.TargetURL
	openCmd := func() tea.Msg {
		browser.Open(url) //nolint:errcheck // best-effort browser open
		return nil
	}
	if readCmd == nil {
		return openCmd
	}
	return tea.Batch(readCmd, openCmd)
}
