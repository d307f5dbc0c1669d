package commands

import (
	"context"
	"log/slog"

	"slotswap/internal/domain/matching"
	"slotswap/internal/domain/reassignment"
	"slotswap/internal/domain/schedule"
	"slotswap/internal/pkg/clock"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestSlotResult struct {
	Waitlisted    bool
	RequestID     *uuid.UUID
	AffectedUsers []uuid.UUID
}

type ApprovalResult struct {
	Finalized bool
	Approved  int
	Required  int
}

type ReassignmentCommands interface {
	RequestSlot(ctx context.Context, userID, slotID uuid.UUID, purpose string) (*RequestSlotResult, error)
	Approve(ctx context.Context, requestID, userID uuid.UUID) (*ApprovalResult, error)
	Reject(ctx context.Context, requestID, userID uuid.UUID) error
}

type reassignmentUseCase struct {
	uow      shared.UnitOfWork
	cascade  *waitlistCascade
	clockSvc clock.Clock
}

func NewReassignmentUseCase(uow shared.UnitOfWork, clockSvc clock.Clock) ReassignmentCommands {
	return &reassignmentUseCase{
		uow:      uow,
		cascade:  newWaitlistCascade(clockSvc),
		clockSvc: clockSvc,
	}
}

// RequestSlot handles a requester wanting a currently booked slot. The
// requester is always waitlisted first; when an augmenting path frees
// the slot by displacing its occupants, a pending reschedule request is
// filed and every displaced user is asked for consent. No slot state
// changes until the request finalizes. No augmenting path is not an
// error: the requester simply stays on the waitlist.
func (u *reassignmentUseCase) RequestSlot(ctx context.Context, userID, slotID uuid.UUID, purpose string) (*RequestSlotResult, error) {
	var result *RequestSlotResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		actor, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return readErr(err, errs.ErrUserNotFound)
		}
		if !actor.IsRequester() {
			return errs.ErrRoleNotAllowed
		}

		slot, err := tx.Reads().SlotByID(ctx, slotID)
		if err != nil {
			return readErr(err, errs.ErrSlotNotFound)
		}
		if !slot.IsBooked() {
			return errs.ErrSlotNotBooked
		}

		occupant, err := tx.Reads().ActiveBookingBySlot(ctx, slotID)
		if err != nil {
			return err
		}
		if occupant != nil && occupant.RequesterID() == userID {
			return errs.ErrRequesterHoldsSlot
		}

		waitlisted, err := tx.Reads().IsWaitlisted(ctx, slotID, userID)
		if err != nil {
			return err
		}
		if waitlisted {
			return errs.ErrAlreadyWaitlisted
		}

		entry := schedule.NewWaitlistEntry(slotID, userID, purpose, u.clockSvc.Now())
		if err := tx.Waitlist().Insert(ctx, tx.DB(), entry); err != nil {
			return err
		}

		snap, err := tx.Reads().ScheduleSnapshot(ctx)
		if err != nil {
			return err
		}

		graph := matching.BuildGraph(snap.Slots, snap.Bookings, snap.Preferences, snap.RequesterIDs)
		before := graph.Occupants()

		// The requester wants this one slot; their other candidate
		// slots play no role in the search.
		after, ok := graph.SeatOne(userID, slotID)
		if !ok {
			result = &RequestSlotResult{Waitlisted: true}
			return nil
		}

		chain := graph.ExtractChain(before, after, userID)
		if chain.IsDirect() {
			result = &RequestSlotResult{Waitlisted: true}
			return nil
		}

		requestID, err := fileRescheduleRequest(ctx, tx, u.clockSvc.Now(), userID, chain, snap)
		if err != nil {
			return err
		}

		result = &RequestSlotResult{
			Waitlisted:    true,
			RequestID:     &requestID,
			AffectedUsers: chain.AffectedUsers(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Approve records one affected user's consent. Re-approving is a
// no-op. The request finalizes only when the approved set equals the
// affected set; until then the result reports the partial count.
func (u *reassignmentUseCase) Approve(ctx context.Context, requestID, userID uuid.UUID) (*ApprovalResult, error) {
	var result *ApprovalResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return readErr(err, errs.ErrRequestNotFound)
		}

		complete, err := req.Approve(userID)
		if err != nil {
			return mapRequestError(err)
		}
		if err := tx.Requests().SetApproved(ctx, tx.DB(), req.ID(), userID); err != nil {
			return err
		}

		if !complete {
			result = &ApprovalResult{
				Approved: req.ApprovedCount(),
				Required: req.AffectedCount(),
			}
			return nil
		}

		if err := u.finalize(ctx, tx, req); err != nil {
			return err
		}
		result = &ApprovalResult{
			Finalized: true,
			Approved:  req.AffectedCount(),
			Required:  req.AffectedCount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reject aborts the request: any affected user's veto voids the whole
// chain. The request and its notifications are deleted and no slot or
// booking changes; the requester stays waitlisted.
func (u *reassignmentUseCase) Reject(ctx context.Context, requestID, userID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Reads().RequestByID(ctx, requestID)
		if err != nil {
			return readErr(err, errs.ErrRequestNotFound)
		}
		if err := req.Reject(userID); err != nil {
			return mapRequestError(err)
		}
		return u.deleteRequest(ctx, tx, req.ID())
	})
}

// finalize applies the consented chain and cleans up. The stored chain
// is ordered seed-first, so moves apply back-to-front: the terminal
// move lands on the slot that was free all along, and every earlier
// move lands on the slot its successor just vacated. At no statement
// does a slot carry two active bookings. The requested slot is the one
// left free at the end; its waitlist backfills it, which is how the
// requester finally gets seated.
func (u *reassignmentUseCase) finalize(ctx context.Context, tx shared.Tx, req *reassignment.Request) error {
	if err := req.Finalize(); err != nil {
		return mapRequestError(err)
	}

	moves := req.Moves()
	for i := len(moves) - 1; i >= 0; i-- {
		m := moves[i]

		booking, err := tx.Reads().ActiveBookingBySlot(ctx, m.FromSlot)
		if err != nil {
			return err
		}
		if booking == nil || booking.RequesterID() != m.UserID {
			// A mid-chain booking changed since the request was filed.
			return errs.ErrStaleChain
		}

		if err := booking.MoveTo(m.ToSlot, m.ProviderID); err != nil {
			return errs.ErrStaleChain
		}
		if err := tx.Bookings().UpdateSlot(ctx, tx.DB(), booking.ID(), booking.SlotID(), booking.ProviderID()); err != nil {
			return err
		}
		if err := tx.Slots().SetBooked(ctx, tx.DB(), m.ToSlot, true); err != nil {
			return err
		}
		if err := tx.Slots().SetBooked(ctx, tx.DB(), m.FromSlot, false); err != nil {
			return err
		}
	}

	if err := u.deleteRequest(ctx, tx, req.ID()); err != nil {
		return err
	}

	slog.Info("reschedule request finalized",
		"request_id", req.ID(),
		"requester_id", req.RequesterID(),
		"moves", len(moves))

	return u.cascade.onSlotFreed(ctx, tx, req.RequestedSlot())
}

func (u *reassignmentUseCase) deleteRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID) error {
	if err := tx.Notifications().DeleteByRequest(ctx, tx.DB(), requestID); err != nil {
		return err
	}
	return tx.Requests().Delete(ctx, tx.DB(), requestID)
}

func mapRequestError(err error) error {
	switch err {
	case reassignment.ErrNotPending:
		return errs.ErrRequestNotPending
	case reassignment.ErrNotAffected:
		return errs.ErrNotAffectedUser
	default:
		return err
	}
}
