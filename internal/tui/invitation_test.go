package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/domain"
)

var errTest = errors.New("server said no")

func pendingInvite(company string) domain.Notification {
	return domain.Notification{
		ID:        uuid.New(),
		Message:   company + " invited you",
		Category:  domain.CategoryInvitation,
		CreatedAt: time.Now(),
		Invitation: &domain.Invitation{
			InvitationID: uuid.New(),
			CompanyName:  company,
			Status:       domain.InvitationPending,
		},
	}
}

func TestInvitationHandlerSingleInFlight(t *testing.T) {
	s := notify.NewStore()
	h := newInvitationHandler(nil, s)

	first := pendingInvite("Initech")
	second := pendingInvite("Globex")
	s.Ingest(first)
	s.Ingest(second)

	if cmd := h.resolve(first, true); cmd == nil {
		t.Fatal("first resolve should start")
	}
	if !h.respondingTo(first.ID) {
		t.Error("handler should report the first notification as in flight")
	}
	if cmd := h.resolve(second, false); cmd != nil {
		t.Error("second resolve must be refused while one is in flight")
	}
}

func TestInvitationHandlerRejectsNonPending(t *testing.T) {
	s := notify.NewStore()
	h := newInvitationHandler(nil, s)

	n := pendingInvite("Initech")
	n.Invitation.Status = domain.InvitationAccepted
	if cmd := h.resolve(n, true); cmd != nil {
		t.Error("resolved invitation must not be re-resolvable")
	}

	plain := domain.Notification{ID: uuid.New(), Message: "no invite here", CreatedAt: time.Now()}
	if cmd := h.resolve(plain, true); cmd != nil {
		t.Error("notification without invitation must not resolve")
	}
}

func TestInvitationHandlerFinishSuccess(t *testing.T) {
	s := notify.NewStore()
	h := newInvitationHandler(nil, s)

	n := pendingInvite("Initech")
	s.Ingest(n)
	h.responding = n.ID

	h.finish(invitationResolvedMsg{notifID: n.ID, accepted: false})

	got, _ := s.Get(n.ID)
	if got.Invitation.Status != domain.InvitationDeclined {
		t.Errorf("status = %v, want Declined", got.Invitation.Status)
	}
	if h.responding != uuid.Nil {
		t.Error("responding not cleared after finish")
	}
}

func TestInvitationHandlerFinishTrustsServerStatus(t *testing.T) {
	s := notify.NewStore()
	h := newInvitationHandler(nil, s)

	n := pendingInvite("Initech")
	s.Ingest(n)
	h.responding = n.ID

	// Server reports Declined even though the local action was accept.
	h.finish(invitationResolvedMsg{
		notifID:  n.ID,
		accepted: true,
		inv:      &domain.Invitation{InvitationID: n.Invitation.InvitationID, Status: domain.InvitationDeclined},
	})

	got, _ := s.Get(n.ID)
	if got.Invitation.Status != domain.InvitationDeclined {
		t.Errorf("status = %v, want server-reported Declined", got.Invitation.Status)
	}
}

func TestInvitationHandlerFinishErrorRollsNothingIn(t *testing.T) {
	s := notify.NewStore()
	h := newInvitationHandler(nil, s)

	n := pendingInvite("Initech")
	s.Ingest(n)
	h.responding = n.ID

	h.finish(invitationResolvedMsg{notifID: n.ID, accepted: true, err: errTest})

	got, _ := s.Get(n.ID)
	if got.Invitation.Status != domain.InvitationPending {
		t.Errorf("status = %v, want Pending preserved on error", got.Invitation.Status)
	}
	if got.IsRead {
		t.Error("error outcome must not mark the notification read")
	}
}
