package schedule

import (
	"errors"

	"github.com/google/uuid"
)

var ErrSameSlot = errors.New("booking already references this slot")

// Booking is an active assignment of a requester to a slot, exclusive
// 1:1 with the booked slot while active. A reassignment mutates the
// slot reference in place; the booking id and purpose survive the move.
type Booking struct {
	id          uuid.UUID
	slotID      uuid.UUID
	requesterID uuid.UUID
	providerID  uuid.UUID
	purpose     string
}

func NewBooking(slotID, requesterID, providerID uuid.UUID, purpose string) *Booking {
	return &Booking{
		id:          uuid.New(),
		slotID:      slotID,
		requesterID: requesterID,
		providerID:  providerID,
		purpose:     purpose,
	}
}

func ReconstructBooking(id, slotID, requesterID, providerID uuid.UUID, purpose string) *Booking {
	return &Booking{
		id:          id,
		slotID:      slotID,
		requesterID: requesterID,
		providerID:  providerID,
		purpose:     purpose,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) SlotID() uuid.UUID      { return b.slotID }
func (b *Booking) RequesterID() uuid.UUID { return b.requesterID }
func (b *Booking) ProviderID() uuid.UUID  { return b.providerID }
func (b *Booking) Purpose() string        { return b.purpose }

// MoveTo repoints the booking at a new slot, preserving id and purpose.
func (b *Booking) MoveTo(slotID, providerID uuid.UUID) error {
	if b.slotID == slotID {
		return ErrSameSlot
	}
	b.slotID = slotID
	b.providerID = providerID
	return nil
}
