// Package notify holds the client-side notification state shared by every
// surface in the app: the dropdown overlay, the manager tab, and the shell
// badge all render from one Store and hear about changes through one
// subscription mechanism.
package notify

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hirewire/hirewire/pkg/domain"
)

// Store is the single source of truth for the notification list. It merges
// push-delivered events and REST snapshots, applies local read-state
// mutations, and signals subscribers on every change.
//
// All methods are safe for concurrent use: push events arrive on the
// channel goroutine while fetch completions land on others.
type Store struct {
	mu    sync.Mutex
	items []domain.Notification

	// readIDs remembers every ID marked read locally. A stale push or a
	// snapshot taken before the server saw the (fire-and-forget) mark-read
	// call must never flip one of these back to unread.
	readIDs map[uuid.UUID]bool

	subs map[chan struct{}]struct{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		readIDs: make(map[uuid.UUID]bool),
		subs:    make(map[chan struct{}]struct{}),
	}
}

// Subscribe registers a change listener. The channel carries coalesced
// signals: a pending signal that hasn't been drained absorbs later ones.
func (s *Store) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener registered with Subscribe.
func (s *Store) Unsubscribe(ch chan struct{}) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

// notifyLocked signals all subscribers. Callers hold s.mu.
func (s *Store) notifyLocked() {
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Replace swaps in a server-fetched snapshot, sorting it newest-first. The
// input may arrive in any order. IDs already marked read locally stay read
// even if the snapshot predates the server confirmation.
func (s *Store) Replace(list []domain.Notification) {
	items := make([]domain.Notification, len(list))
	copy(items, list)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range items {
		if s.readIDs[items[i].ID] {
			items[i].IsRead = true
		}
		if items[i].IsRead {
			s.readIDs[items[i].ID] = true
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	s.items = items
	s.notifyLocked()
}

// Ingest merges one push-delivered notification. Known IDs are a no-op —
// the first-seen copy wins — so duplicate delivery is harmless. Reports
// whether a genuinely new item was added; callers use that to decide
// whether to raise a toast.
func (s *Store) Ingest(raw domain.Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		if n.ID == raw.ID {
			return false
		}
	}

	if s.readIDs[raw.ID] {
		raw.IsRead = true
	} else if raw.IsRead {
		s.readIDs[raw.ID] = true
	}

	// Insert keeping newest-first order; push events usually belong at the
	// head but the transport only promises per-connection order.
	pos := sort.Search(len(s.items), func(i int) bool {
		return raw.CreatedAt.After(s.items[i].CreatedAt)
	})
	s.items = append(s.items, domain.Notification{})
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = raw

	s.notifyLocked()
	return true
}

// MarkRead flips a notification to read. Purely local and optimistic: the
// caller fires the server confirmation separately and ignores its outcome.
// Reports whether anything changed.
func (s *Store) MarkRead(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.readIDs[id] = true
		if s.items[i].IsRead {
			return false
		}
		s.items[i].IsRead = true
		s.notifyLocked()
		return true
	}
	return false
}

// MarkAllRead marks every unread notification read and returns the affected
// IDs so the caller can confirm each one with the server (one call per
// item, matching the REST contract).
func (s *Store) MarkAllRead() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for i := range s.items {
		if s.items[i].IsRead {
			continue
		}
		s.items[i].IsRead = true
		s.readIDs[s.items[i].ID] = true
		ids = append(ids, s.items[i].ID)
	}
	if len(ids) > 0 {
		s.notifyLocked()
	}
	return ids
}

// ResolveInvitation folds a server-confirmed invitation resolution into the
// store: the invitation takes the given status and the parent notification
// becomes read (answering an invite always implies having seen it). Only a
// Pending invitation can resolve; resolved, cancelled, and expired ones are
// terminal and the call is a no-op. Reports whether state changed.
func (s *Store) ResolveInvitation(id uuid.UUID, status domain.InvitationStatus) bool {
	if !status.Resolved() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		n := &s.items[i]
		if n.ID != id || n.Invitation == nil {
			continue
		}
		if !n.Invitation.Status.Pending() {
			return false
		}
		inv := *n.Invitation
		inv.Status = status
		n.Invitation = &inv
		n.IsRead = true
		s.readIDs[n.ID] = true
		s.notifyLocked()
		return true
	}
	return false
}

// UnreadCount derives the number of unread notifications. Never cached:
// the count cannot drift from the list.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// All returns a copy of the notification list, newest first.
func (s *Store) All() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Unread returns a copy of only the unread notifications, newest first.
func (s *Store) Unread() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Notification
	for _, n := range s.items {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out
}

// Get returns the notification with the given ID, if present.
func (s *Store) Get(id uuid.UUID) (domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.items {
		if n.ID == id {
			return n, true
		}
	}
	return domain.Notification{}, false
}

// Len returns the number of notifications held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
