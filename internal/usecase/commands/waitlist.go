package commands

import (
	"context"
	"fmt"
	"time"

	"slotswap/internal/domain/matching"
	"slotswap/internal/domain/notification"
	"slotswap/internal/domain/reassignment"
	"slotswap/internal/domain/schedule"
	"slotswap/internal/pkg/clock"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

const slotTimeFormat = "2006-01-02 15:04"

// waitlistCascade reseats waiters whenever a slot frees up: the freed
// slot's own FIFO queue first (cheap path), then an oldest-first scan
// across the whole waitlist driving the single-user matcher.
type waitlistCascade struct {
	clockSvc clock.Clock
}

func newWaitlistCascade(clockSvc clock.Clock) *waitlistCascade {
	return &waitlistCascade{clockSvc: clockSvc}
}

func (c *waitlistCascade) onSlotFreed(ctx context.Context, tx shared.Tx, slotID uuid.UUID) error {
	entry, err := tx.Reads().EarliestWaitlistEntry(ctx, slotID)
	if err != nil {
		return err
	}
	if entry != nil {
		return c.seatWaiter(ctx, tx, entry, slotID)
	}
	return c.scanWaitlist(ctx, tx)
}

// scanWaitlist walks every waitlist entry oldest-first and tries to
// seat each waiter via an augmenting path over their preference
// candidates. A zero-displacement path seats the waiter immediately; a
// displacement chain files a reschedule request and stops. The scan
// ends after the first success or when all waiters are exhausted.
func (c *waitlistCascade) scanWaitlist(ctx context.Context, tx shared.Tx) error {
	snap, err := tx.Reads().ScheduleSnapshot(ctx)
	if err != nil {
		return err
	}

	graph := matching.BuildGraph(snap.Slots, snap.Bookings, snap.Preferences, snap.RequesterIDs)
	before := graph.Occupants()

	for _, entry := range snap.Waitlist {
		// One chain in flight per waiter; a second would only spam
		// the same approvers while the first is pending.
		pending, err := tx.Reads().HasPendingRequest(ctx, entry.UserID())
		if err != nil {
			return err
		}
		if pending {
			continue
		}

		after, ok := graph.SeatOne(entry.UserID())
		if !ok {
			continue
		}

		chain := graph.ExtractChain(before, after, entry.UserID())
		if chain.IsDirect() {
			grantedSlot := after.SlotOf(entry.UserID())
			return c.seatWaiter(ctx, tx, entry, grantedSlot)
		}

		_, err = fileRescheduleRequest(ctx, tx, c.clockSvc.Now(), entry.UserID(), chain, snap)
		return err
	}
	return nil
}

// seatWaiter seats a waitlist entry's user on the given free slot. A
// waiter who already holds a booking is moved in place (same booking
// id); their vacated slot cascades in turn. Waiters without a booking
// get a fresh one carrying the purpose they queued with.
func (c *waitlistCascade) seatWaiter(ctx context.Context, tx shared.Tx, entry *schedule.WaitlistEntry, slotID uuid.UUID) error {
	slot, err := tx.Reads().SlotByID(ctx, slotID)
	if err != nil {
		return err
	}

	snap, err := tx.Reads().ScheduleSnapshot(ctx)
	if err != nil {
		return err
	}

	var moved *schedule.Booking
	for _, b := range snap.Bookings {
		if b.RequesterID() == entry.UserID() {
			moved = b
			break
		}
	}

	vacated := uuid.Nil
	if moved != nil {
		vacated = moved.SlotID()
		if err := moved.MoveTo(slot.ID(), slot.ProviderID()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateSlot(ctx, tx.DB(), moved.ID(), moved.SlotID(), moved.ProviderID()); err != nil {
			return err
		}
		if err := tx.Slots().SetBooked(ctx, tx.DB(), vacated, false); err != nil {
			return err
		}
	} else {
		booking := schedule.NewBooking(slot.ID(), entry.UserID(), slot.ProviderID(), entry.Purpose())
		if err := tx.Bookings().Create(ctx, tx.DB(), booking); err != nil {
			return err
		}
	}

	if err := tx.Slots().SetBooked(ctx, tx.DB(), slot.ID(), true); err != nil {
		return err
	}
	if err := tx.Waitlist().Delete(ctx, tx.DB(), entry.ID()); err != nil {
		return err
	}

	if vacated != uuid.Nil {
		return c.onSlotFreed(ctx, tx, vacated)
	}
	return nil
}

// fileRescheduleRequest persists a pending request for the chain and
// notifies every displaced user, each notification carrying a back
// reference to the request. The requester is neither notified nor part
// of the approval set; they stay waitlisted until the chain completes.
func fileRescheduleRequest(
	ctx context.Context,
	tx shared.Tx,
	now time.Time,
	requesterID uuid.UUID,
	chain matching.MoveChain,
	snap *shared.ScheduleSnapshot,
) (uuid.UUID, error) {
	requestedSlot := chain.Moves[0].FromSlot

	req, err := reassignment.NewRequest(requesterID, requestedSlot, chain, now)
	if err != nil {
		return uuid.Nil, err
	}
	if err := tx.Requests().Create(ctx, tx.DB(), req); err != nil {
		return uuid.Nil, err
	}

	requester, err := tx.Reads().UserByID(ctx, requesterID)
	if err != nil {
		return uuid.Nil, err
	}

	requestID := req.ID()
	for _, m := range chain.Moves {
		n := notification.New(m.UserID, describeMove(snap, m, requester.Name()), &requestID, now)
		if err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
			return uuid.Nil, err
		}
	}
	return requestID, nil
}

func describeMove(snap *shared.ScheduleSnapshot, m matching.Move, requesterName string) string {
	from := snap.SlotByID(m.FromSlot)
	to := snap.SlotByID(m.ToSlot)
	return fmt.Sprintf(
		"%s asked for your slot at %s. Approving moves your meeting to %s.",
		requesterName,
		from.StartTime().Format(slotTimeFormat),
		to.StartTime().Format(slotTimeFormat),
	)
}
