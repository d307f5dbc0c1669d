package matching

import (
	"github.com/google/uuid"
)

// Rebuild runs a full augmenting pass: every requester is offered a
// chance to (re)enter the matching, mutating the graph's occupancy in
// place. Users are visited in descending id order; the tie-break keeps
// repeated rebuilds of the same snapshot deterministic. Returns the
// number of successful augmentations.
func (g *Graph) Rebuild() int {
	seated := 0
	for _, userID := range sortedUsersDesc(g.candidates) {
		visited := make(map[uuid.UUID]bool)
		if g.tryAugment(userID, visited) {
			seated++
		}
	}
	return seated
}

// SeatOne attempts to seat exactly one user without touching the
// receiver: the search runs on a disposable copy. When targets are
// given they replace the user's candidate set for this attempt (a
// requester asking for one specific occupied slot). Returns the full
// resulting occupancy; a false second return means no augmenting path
// exists, which is an ordinary outcome rather than an error.
func (g *Graph) SeatOne(userID uuid.UUID, targets ...uuid.UUID) (Occupancy, bool) {
	cp := g.clone()
	if len(targets) > 0 {
		set := make(map[uuid.UUID]struct{}, len(targets))
		for _, t := range targets {
			if _, known := cp.occupants[t]; known {
				set[t] = struct{}{}
			}
		}
		cp.candidates[userID] = set
	} else if _, ok := cp.candidates[userID]; !ok {
		cp.candidates[userID] = make(map[uuid.UUID]struct{})
	}

	visited := make(map[uuid.UUID]bool)
	if !cp.tryAugment(userID, visited) {
		return nil, false
	}
	return cp.occupants, true
}

// tryAugment is the classic Kuhn DFS: try each unvisited candidate
// slot; a free slot seats the user directly, an occupied one seats the
// user if its occupant can be augmented elsewhere. The visited set is
// per top-level call and keyed by slot, bounding the recursion by the
// number of slots.
func (g *Graph) tryAugment(userID uuid.UUID, visited map[uuid.UUID]bool) bool {
	for _, slotID := range sortedIDs(g.candidates[userID]) {
		if visited[slotID] {
			continue
		}
		visited[slotID] = true

		occupant := g.occupants[slotID]
		if occupant == uuid.Nil {
			g.assign(userID, slotID)
			return true
		}
		if occupant != userID && g.tryAugment(occupant, visited) {
			g.assign(userID, slotID)
			return true
		}
	}
	return false
}

// assign seats the user on a slot, explicitly vacating any slot the
// user held before. Without the vacate step a re-augmented user would
// hold two slots at once.
func (g *Graph) assign(userID, slotID uuid.UUID) {
	if prev, ok := g.userSlots[userID]; ok && prev != slotID && g.occupants[prev] == userID {
		g.occupants[prev] = uuid.Nil
	}
	g.occupants[slotID] = userID
	g.userSlots[userID] = slotID
}
