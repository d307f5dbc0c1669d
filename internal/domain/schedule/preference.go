package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Preference states that a user wants any slot whose start time equals
// the desired instant. One user may hold many preferences and one slot
// may match many users.
type Preference struct {
	userID    uuid.UUID
	desiredAt time.Time
}

func NewPreference(userID uuid.UUID, desiredAt time.Time) *Preference {
	return &Preference{userID: userID, desiredAt: desiredAt}
}

func (p *Preference) UserID() uuid.UUID    { return p.userID }
func (p *Preference) DesiredAt() time.Time { return p.desiredAt }

// Matches reports whether the preference selects the given slot start.
func (p *Preference) Matches(slotStart time.Time) bool {
	return p.desiredAt.Equal(slotStart)
}
