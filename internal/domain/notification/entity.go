package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a user-facing message. RequestID is a weak reference
// to a reschedule request used to route approve/reject actions; the
// request owns the notification's lifecycle and deletes it on finalize
// or reject.
type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	message   string
	read      bool
	requestID *uuid.UUID
	createdAt time.Time
}

func New(userID uuid.UUID, message string, requestID *uuid.UUID, now time.Time) *Notification {
	return &Notification{
		id:        uuid.New(),
		userID:    userID,
		message:   message,
		requestID: requestID,
		createdAt: now,
	}
}

func Reconstruct(id, userID uuid.UUID, message string, read bool, requestID *uuid.UUID, createdAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		message:   message,
		read:      read,
		requestID: requestID,
		createdAt: createdAt,
	}
}

func (n *Notification) ID() uuid.UUID         { return n.id }
func (n *Notification) UserID() uuid.UUID     { return n.userID }
func (n *Notification) Message() string       { return n.message }
func (n *Notification) IsRead() bool          { return n.read }
func (n *Notification) RequestID() *uuid.UUID { return n.requestID }
func (n *Notification) CreatedAt() time.Time  { return n.createdAt }

func (n *Notification) MarkRead() { n.read = true }
