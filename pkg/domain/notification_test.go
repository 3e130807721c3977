package domain

import "testing"

func TestInvitationStatusPredicates(t *testing.T) {
	tests := []struct {
		status   InvitationStatus
		pending  bool
		resolved bool
		terminal bool
	}{
		{InvitationPending, true, false, false},
		{InvitationAccepted, false, true, true},
		{InvitationDeclined, false, true, true},
		{InvitationCancelled, false, false, true},
		{InvitationExpired, false, false, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := tc.status.Pending(); got != tc.pending {
				t.Errorf("Pending() = %v, want %v", got, tc.pending)
			}
			if got := tc.status.Resolved(); got != tc.resolved {
				t.Errorf("Resolved() = %v, want %v", got, tc.resolved)
			}
			if got := tc.status.Terminal(); got != tc.terminal {
				t.Errorf("Terminal() = %v, want %v", got, tc.terminal)
			}
		})
	}
}

func TestHasPendingInvitation(t *testing.T) {
	n := Notification{Category: CategoryInvitation}
	if n.HasPendingInvitation() {
		t.Error("expected false for notification without invitation")
	}

	n.Invitation = &Invitation{Status: InvitationPending}
	if !n.HasPendingInvitation() {
		t.Error("expected true for pending invitation")
	}

	n.Invitation.Status = InvitationAccepted
	if n.HasPendingInvitation() {
		t.Error("expected false once invitation is accepted")
	}
}
