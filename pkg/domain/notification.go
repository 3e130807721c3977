package domain

import (
	"time"

	"github.com/google/uuid"
)

// Well-known notification categories. The set is open: servers may ship
// categories this client has never heard of, and rendering falls back to a
// default glyph rather than failing.
const (
	CategorySystem     = "System"
	CategoryJob        = "Job"
	CategoryInvitation = "Invitation"
	CategoryPayment    = "Payment"
	CategoryMessage    = "Message"
)

// Notification is a single server-issued event directed at the current user.
type Notification struct {
	ID         uuid.UUID   `json:"id"`
	Message    string      `json:"message"`
	Detail     string      `json:"detail,omitempty"`
	Category   string      `json:"category"`
	IsRead     bool        `json:"is_read"`
	TargetURL  string      `json:"target_url,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	Invitation *Invitation `json:"invitation,omitempty"`
}

// HasPendingInvitation reports whether this notification carries an
// invitation that still awaits a response. Such notifications must not be
// dismissed by simply opening them.
func (n Notification) HasPendingInvitation() bool {
	return n.Invitation != nil && n.Invitation.Status.Pending()
}

// InvitationStatus is the lifecycle state of a company-membership invitation.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "Pending"
	InvitationAccepted  InvitationStatus = "Accepted"
	InvitationDeclined  InvitationStatus = "Declined"
	InvitationCancelled InvitationStatus = "Cancelled"
	InvitationExpired   InvitationStatus = "Expired"
)

// Pending reports whether the invitation can still be accepted or declined.
func (s InvitationStatus) Pending() bool {
	return s == InvitationPending
}

// Resolved reports whether the user has answered the invitation. Cancelled
// and Expired are terminal but were not resolved by the user.
func (s InvitationStatus) Resolved() bool {
	return s == InvitationAccepted || s == InvitationDeclined
}

// Terminal reports whether the status can no longer change client-side.
func (s InvitationStatus) Terminal() bool {
	return s != InvitationPending
}

// Invitation is the actionable sub-entity carried by invitation
// notifications: a company offering membership to the current user.
type Invitation struct {
	InvitationID uuid.UUID        `json:"invitation_id"`
	CompanyName  string           `json:"company_name"`
	SenderName   string           `json:"sender_name"`
	Status       InvitationStatus `json:"status"`
}
