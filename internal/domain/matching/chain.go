package matching

import (
	"github.com/google/uuid"
)

// Move displaces one user from a slot to their newly assigned slot.
type Move struct {
	UserID     uuid.UUID
	FromSlot   uuid.UUID
	ToSlot     uuid.UUID
	ProviderID uuid.UUID
}

// MoveChain is the ordered sequence of displacements that grants the
// seed user their slot. Moves are ordered seed-first: the first move
// vacates the seed's slot, the last move lands on a slot that was free
// before the matching ran. Applying the moves back-to-front therefore
// never books an occupied slot.
type MoveChain struct {
	Moves []Move
}

// AffectedUsers lists the displaced users, in chain order. The seed is
// never included: the requester holds no booking until the chain
// completes and every displaced party has consented.
func (c MoveChain) AffectedUsers() []uuid.UUID {
	users := make([]uuid.UUID, 0, len(c.Moves))
	for _, m := range c.Moves {
		users = append(users, m.UserID)
	}
	return users
}

// IsDirect reports a zero-displacement chain: the seed reached a free
// slot and nobody has to move or consent.
func (c MoveChain) IsDirect() bool {
	return len(c.Moves) == 0
}

// ExtractChain reconstructs the displacement chain implied by a
// before/after occupancy pair for the given seed user. Starting at the
// seed's new slot it follows each displaced occupant to their new
// assignment until a previously-free slot terminates the walk. Each
// user is visited at most once; the guard turns inconsistent matcher
// output into a truncated chain instead of an infinite loop.
func (g *Graph) ExtractChain(before, after Occupancy, seed uuid.UUID) MoveChain {
	var chain MoveChain

	visited := map[uuid.UUID]bool{seed: true}
	slotID := after.SlotOf(seed)
	if slotID == uuid.Nil {
		return chain
	}

	for {
		displaced := before[slotID]
		if displaced == uuid.Nil || visited[displaced] {
			return chain
		}
		visited[displaced] = true

		next := after.SlotOf(displaced)
		if next == uuid.Nil {
			return chain
		}
		chain.Moves = append(chain.Moves, Move{
			UserID:     displaced,
			FromSlot:   slotID,
			ToSlot:     next,
			ProviderID: g.ProviderOf(next),
		})
		slotID = next
	}
}
