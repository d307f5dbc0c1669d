package schedule

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistEntry queues a user for a currently booked slot. Entries for
// a slot form a FIFO by creation time, earliest-waiting served first.
type WaitlistEntry struct {
	id        uuid.UUID
	slotID    uuid.UUID
	userID    uuid.UUID
	purpose   string
	createdAt time.Time
}

func NewWaitlistEntry(slotID, userID uuid.UUID, purpose string, now time.Time) *WaitlistEntry {
	return &WaitlistEntry{
		id:        uuid.New(),
		slotID:    slotID,
		userID:    userID,
		purpose:   purpose,
		createdAt: now,
	}
}

func ReconstructWaitlistEntry(id, slotID, userID uuid.UUID, purpose string, createdAt time.Time) *WaitlistEntry {
	return &WaitlistEntry{
		id:        id,
		slotID:    slotID,
		userID:    userID,
		purpose:   purpose,
		createdAt: createdAt,
	}
}

func (w *WaitlistEntry) ID() uuid.UUID        { return w.id }
func (w *WaitlistEntry) SlotID() uuid.UUID    { return w.slotID }
func (w *WaitlistEntry) UserID() uuid.UUID    { return w.userID }
func (w *WaitlistEntry) Purpose() string      { return w.purpose }
func (w *WaitlistEntry) CreatedAt() time.Time { return w.createdAt }
