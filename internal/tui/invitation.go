package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/client"
	"github.com/hirewire/hirewire/pkg/domain"
)

// invitationResolvedMsg carries the outcome of an accept or decline call.
type invitationResolvedMsg struct {
	notifID  uuid.UUID
	accepted bool
	inv      *domain.Invitation
	err      error
}

// invitationHandler serializes invitation responses. Every surface shares the
// one handler, so at most a single invitation response is in flight at a time
// no matter which surface the keypress came from.
type invitationHandler struct {
	client     *client.Client
	store      *notify.Store
	responding uuid.UUID
}

func newInvitationHandler(c *client.Client, s *notify.Store) *invitationHandler {
	return &invitationHandler{client: c, store: s}
}

// respondingTo reports whether this notification has a response in flight.
func (h *invitationHandler) respondingTo(id uuid.UUID) bool {
	return h.responding != uuid.Nil && h.responding == id
}

// resolve starts an accept or decline for the notification's invitation.
// Returns nil when the notification has no pending invitation or another
// response is already in flight.
func (h *invitationHandler) resolve(n domain.Notification, accept bool) tea.Cmd {
	if !n.HasPendingInvitation() || h.responding != uuid.Nil {
		return nil
	}
	h.responding = n.ID

	c := h.client
	notifID := n.ID
	invID := n.Invitation.InvitationID
	return func() tea.Msg {
		var inv *domain.Invitation
		var err error
		if accept {
			inv, err = c.AcceptInvitation(context.Background(), invID)
		} else {
			inv, err = c.DeclineInvitation(context.Background(), invID)
		}
		if err != nil {
			return invitationResolvedMsg{notifID: notifID, accepted: accept, err: fmt.Errorf("invitation: %w", err)}
		}
		return invitationResolvedMsg{notifID: notifID, accepted: accept, inv: inv}
	}
}

// finish folds a completed response into the store. On error nothing is
// written: the row stays Pending and the caller surfaces the failure.
func (h *invitationHandler) finish(msg invitationResolvedMsg) {
	h.responding = uuid.Nil
	if msg.err != nil {
		return
	}
	status := domain.InvitationAccepted
	if !msg.accepted {
		status = domain.InvitationDeclined
	}
	// Trust the server's view of the final status when it reports one.
	if msg.inv != nil && msg.inv.Status.Resolved() {
		status = msg.inv.Status
	}
	h.store.ResolveInvitation(msg.notifID, status)
}
