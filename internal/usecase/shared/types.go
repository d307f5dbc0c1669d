package shared

import (
	"slotswap/internal/domain/schedule"

	"github.com/google/uuid"
)

// ScheduleSnapshot is a consistent read of everything the matcher
// needs. It is rebuilt for every matching attempt, never cached
// across transactions.
type ScheduleSnapshot struct {
	Slots        []*schedule.Slot
	Bookings     []*schedule.Booking
	Preferences  []*schedule.Preference
	Waitlist     []*schedule.WaitlistEntry
	RequesterIDs []uuid.UUID
}

// SlotByID returns the snapshot's slot with the given id, or nil.
func (s *ScheduleSnapshot) SlotByID(id uuid.UUID) *schedule.Slot {
	for _, slot := range s.Slots {
		if slot.ID() == id {
			return slot
		}
	}
	return nil
}
