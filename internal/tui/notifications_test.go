package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hirewire/hirewire/internal/notify"
	"github.com/hirewire/hirewire/pkg/domain"
)

func newTestNotifs() (notifsModel, *notify.Store) {
	s := notify.NewStore()
	h := newInvitationHandler(nil, s)
	m := newNotifsModel(nil, s, h)
	m.width = 80
	m.height = 24
	return m, s
}

func TestNotifsCursorNavigation(t *testing.T) {
	m, s := newTestNotifs()
	s.Ingest(testNotif("first", false, time.Minute))
	s.Ingest(testNotif("second", false, 2*time.Minute))
	s.Ingest(testNotif("third", false, 3*time.Minute))

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
	// Clamp at the end
	m, _ = m.Update(keyMsg("j"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want clamped at 2", m.cursor)
	}
	m, _ = m.Update(keyMsg("g"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", m.cursor)
	}
	m, _ = m.Update(keyMsg("G"))
	if m.cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", m.cursor)
	}
}

func TestNotifsUnreadFilter(t *testing.T) {
	m, s := newTestNotifs()
	s.Ingest(testNotif("read one", true, time.Minute))
	s.Ingest(testNotif("unread one", false, 2*time.Minute))

	m, _ = m.Update(keyMsg("u"))
	rows := m.visible()
	if len(rows) != 1 {
		t.Fatalf("visible = %d rows, want 1 unread", len(rows))
	}
	if rows[0].Message != "unread one" {
		t.Errorf("visible row = %q, want the unread one", rows[0].Message)
	}
	if m.cursor != 0 {
		t.Error("filter toggle must reset the cursor")
	}
}

func TestNotifsMarkReadOnKeypress(t *testing.T) {
	m, s := newTestNotifs()
	n := testNotif("mark me", false, time.Minute)
	s.Ingest(n)

	m, _ = m.Update(keyMsg("m"))
	got, _ := s.Get(n.ID)
	if !got.IsRead {
		t.Error("expected notification read after 'm'")
	}
	if s.UnreadCount() != 0 {
		t.Errorf("unread = %d, want 0", s.UnreadCount())
	}
}

func TestNotifsMarkAllRead(t *testing.T) {
	m, s := newTestNotifs()
	s.Ingest(testNotif("a", false, time.Minute))
	s.Ingest(testNotif("b", false, 2*time.Minute))
	s.Ingest(testNotif("c", true, 3*time.Minute))

	m, cmd := m.Update(keyMsg("M"))
	_ = m
	if cmd == nil {
		t.Fatal("expected background command reporting reads to the server")
	}
	if s.UnreadCount() != 0 {
		t.Errorf("unread = %d, want 0", s.UnreadCount())
	}
}

func TestNotifsEnterOnPendingInvitationIsNoOp(t *testing.T) {
	m, s := newTestNotifs()
	n := pendingInvite("Initech")
	s.Ingest(n)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = m
	if cmd != nil {
		t.Error("enter on a pending invitation must not produce a command")
	}
	got, _ := s.Get(n.ID)
	if got.IsRead {
		t.Error("pending invitation must not be marked read by open")
	}
}

func TestNotifsFetchErrorShowsRetry(t *testing.T) {
	m, _ := newTestNotifs()
	m, _ = m.Update(fetchDoneMsg{err: errTest})

	out := m.View()
	if !strings.Contains(out, "error") || !strings.Contains(out, "r to retry") {
		t.Errorf("expected inline error with retry hint, got:\n%s", out)
	}

	// A later successful fetch clears the error
	m, _ = m.Update(fetchDoneMsg{})
	if m.err != "" {
		t.Error("fetch success must clear the error")
	}
}

func TestNotifsRefreshFailureKeepsRows(t *testing.T) {
	m, s := newTestNotifs()
	s.Ingest(testNotif("still here", false, time.Minute))
	m, _ = m.Update(fetchDoneMsg{err: errTest})

	out := m.View()
	if !strings.Contains(out, "still here") {
		t.Error("refresh failure must not blank existing rows")
	}
	if !strings.Contains(out, "refresh failed") {
		t.Error("refresh failure should still be surfaced")
	}
}

func TestNotifsViewEmptyStates(t *testing.T) {
	m, _ := newTestNotifs()
	m, _ = m.Update(fetchDoneMsg{})
	if !strings.Contains(m.View(), "no notifications yet") {
		t.Error("expected empty-state copy for an empty inbox")
	}

	m.unreadOnly = true
	if !strings.Contains(m.View(), "all caught up") {
		t.Error("expected caught-up copy for the unread filter")
	}
}

func TestNotifsInvitationRowShowsActions(t *testing.T) {
	m, s := newTestNotifs()
	s.Ingest(pendingInvite("Initech"))
	m, _ = m.Update(fetchDoneMsg{})

	out := m.View()
	if !strings.Contains(out, "a accept") || !strings.Contains(out, "d decline") {
		t.Errorf("expected invitation action hints, got:\n%s", out)
	}
}

func TestRowRendersInvitationOutcome(t *testing.T) {
	n := pendingInvite("Initech")
	n.Invitation.Status = domain.InvitationDeclined
	out := renderRow(n, false, false, 80)
	if !strings.Contains(out, "declined") {
		t.Errorf("expected declined marker, got:\n%s", out)
	}

	out = renderRow(n, false, true, 80)
	if !strings.Contains(out, "declined") {
		t.Errorf("terminal status must win over responding flag, got:\n%s", out)
	}
}

func TestRowRespondingMarker(t *testing.T) {
	n := pendingInvite("Initech")
	out := renderRow(n, true, true, 80)
	if !strings.Contains(out, "responding") {
		t.Errorf("expected responding marker, got:\n%s", out)
	}
}
