package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval   = errors.New("slot end must be after start")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
	ErrSlotNotBooked     = errors.New("slot is not booked")
)

// Slot is a provider's offered time interval [start, end), bookable by
// at most one requester at a time.
type Slot struct {
	id         uuid.UUID
	providerID uuid.UUID
	startTime  time.Time
	endTime    time.Time
	booked     bool
}

func NewSlot(providerID uuid.UUID, start, end time.Time) (*Slot, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	return &Slot{
		id:         uuid.New(),
		providerID: providerID,
		startTime:  start,
		endTime:    end,
	}, nil
}

func ReconstructSlot(id, providerID uuid.UUID, start, end time.Time, booked bool) *Slot {
	return &Slot{
		id:         id,
		providerID: providerID,
		startTime:  start,
		endTime:    end,
		booked:     booked,
	}
}

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) ProviderID() uuid.UUID { return s.providerID }
func (s *Slot) StartTime() time.Time  { return s.startTime }
func (s *Slot) EndTime() time.Time    { return s.endTime }
func (s *Slot) IsBooked() bool        { return s.booked }

func (s *Slot) Book() error {
	if s.booked {
		return ErrSlotAlreadyBooked
	}
	s.booked = true
	return nil
}

func (s *Slot) Free() error {
	if !s.booked {
		return ErrSlotNotBooked
	}
	s.booked = false
	return nil
}
