package matching

import (
	"bytes"
	"sort"
	"time"

	"slotswap/internal/domain/schedule"

	"github.com/google/uuid"
)

// Occupancy maps slot id to the occupying user id, uuid.Nil when the
// slot is free.
type Occupancy map[uuid.UUID]uuid.UUID

// SlotOf returns the slot occupied by the given user, or uuid.Nil.
func (o Occupancy) SlotOf(userID uuid.UUID) uuid.UUID {
	for slotID, occ := range o {
		if occ == userID {
			return slotID
		}
	}
	return uuid.Nil
}

func (o Occupancy) clone() Occupancy {
	out := make(Occupancy, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Graph is the bipartite preference graph for one matching attempt.
// It is built from a consistent snapshot and thrown away afterwards;
// stale graphs must never be reused across state changes.
type Graph struct {
	candidates map[uuid.UUID]map[uuid.UUID]struct{}
	occupants  Occupancy
	userSlots  map[uuid.UUID]uuid.UUID
	providers  map[uuid.UUID]uuid.UUID
	starts     map[uuid.UUID]time.Time
}

// BuildGraph projects current slots, bookings and preferences into a
// fresh graph. Every listed requester appears in the candidate map even
// when no slot matches their preferences.
func BuildGraph(
	slots []*schedule.Slot,
	bookings []*schedule.Booking,
	preferences []*schedule.Preference,
	requesterIDs []uuid.UUID,
) *Graph {
	g := &Graph{
		candidates: make(map[uuid.UUID]map[uuid.UUID]struct{}, len(requesterIDs)),
		occupants:  make(Occupancy, len(slots)),
		userSlots:  make(map[uuid.UUID]uuid.UUID, len(bookings)),
		providers:  make(map[uuid.UUID]uuid.UUID, len(slots)),
		starts:     make(map[uuid.UUID]time.Time, len(slots)),
	}

	for _, id := range requesterIDs {
		g.candidates[id] = make(map[uuid.UUID]struct{})
	}

	for _, s := range slots {
		g.occupants[s.ID()] = uuid.Nil
		g.providers[s.ID()] = s.ProviderID()
		g.starts[s.ID()] = s.StartTime()
	}

	for _, b := range bookings {
		g.occupants[b.SlotID()] = b.RequesterID()
		g.userSlots[b.RequesterID()] = b.SlotID()
	}

	for _, p := range preferences {
		set, ok := g.candidates[p.UserID()]
		if !ok {
			continue
		}
		for _, s := range slots {
			if p.Matches(s.StartTime()) {
				set[s.ID()] = struct{}{}
			}
		}
	}

	return g
}

// Occupants returns a copy of the current slot occupancy.
func (g *Graph) Occupants() Occupancy {
	return g.occupants.clone()
}

// ProviderOf returns the owning provider of a slot.
func (g *Graph) ProviderOf(slotID uuid.UUID) uuid.UUID {
	return g.providers[slotID]
}

// CandidateSlots returns the user's candidate slot ids in ascending
// id order.
func (g *Graph) CandidateSlots(userID uuid.UUID) []uuid.UUID {
	return sortedIDs(g.candidates[userID])
}

func (g *Graph) clone() *Graph {
	out := &Graph{
		candidates: make(map[uuid.UUID]map[uuid.UUID]struct{}, len(g.candidates)),
		occupants:  g.occupants.clone(),
		userSlots:  make(map[uuid.UUID]uuid.UUID, len(g.userSlots)),
		providers:  g.providers,
		starts:     g.starts,
	}
	for u, set := range g.candidates {
		cp := make(map[uuid.UUID]struct{}, len(set))
		for s := range set {
			cp[s] = struct{}{}
		}
		out.candidates[u] = cp
	}
	for u, s := range g.userSlots {
		out.userSlots[u] = s
	}
	return out
}

func sortedIDs(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

func sortedUsersDesc(set map[uuid.UUID]map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) > 0
	})
	return ids
}
