package readstore

import (
	"context"
	"errors"
	"time"

	"slotswap/internal/domain/matching"
	"slotswap/internal/domain/notification"
	"slotswap/internal/domain/reassignment"
	"slotswap/internal/domain/schedule"
	"slotswap/internal/domain/user"
	"slotswap/internal/infra"
	"slotswap/internal/infra/db"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ScheduleReadStore is the write side's snapshot accessor. Inside a
// transaction it reads the transaction's own view, so matching always
// computes over state consistent with the pending writes.
type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

func (r *ScheduleReadStore) ScheduleSnapshot(ctx context.Context) (*shared.ScheduleSnapshot, error) {
	snap := &shared.ScheduleSnapshot{}

	rows, err := r.db.Query(ctx, `
		SELECT id, provider_id, start_time, end_time, is_booked
		FROM slots ORDER BY start_time, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slots", err)
	}
	for rows.Next() {
		var id, providerID uuid.UUID
		var start, end time.Time
		var booked bool
		if err := rows.Scan(&id, &providerID, &start, &end, &booked); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		snap.Slots = append(snap.Slots, schedule.ReconstructSlot(id, providerID, start, end, booked))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}

	rows, err = r.db.Query(ctx, `
		SELECT id, slot_id, requester_id, provider_id, purpose FROM bookings`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}
	for rows.Next() {
		var id, slotID, requesterID, providerID uuid.UUID
		var purpose string
		if err := rows.Scan(&id, &slotID, &requesterID, &providerID, &purpose); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		snap.Bookings = append(snap.Bookings, schedule.ReconstructBooking(id, slotID, requesterID, providerID, purpose))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	rows, err = r.db.Query(ctx, `SELECT user_id, desired_at FROM preferences`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load preferences", err)
	}
	for rows.Next() {
		var userID uuid.UUID
		var desiredAt time.Time
		if err := rows.Scan(&userID, &desiredAt); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan preference", err)
		}
		snap.Preferences = append(snap.Preferences, schedule.NewPreference(userID, desiredAt))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate preferences", err)
	}

	// FIFO: oldest waiting entry first, id as tie-break.
	rows, err = r.db.Query(ctx, `
		SELECT id, slot_id, user_id, purpose, created_at
		FROM waitlist_entries ORDER BY created_at, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load waitlist", err)
	}
	for rows.Next() {
		var id, slotID, userID uuid.UUID
		var purpose string
		var createdAt time.Time
		if err := rows.Scan(&id, &slotID, &userID, &purpose, &createdAt); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan waitlist entry", err)
		}
		snap.Waitlist = append(snap.Waitlist, schedule.ReconstructWaitlistEntry(id, slotID, userID, purpose, createdAt))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist", err)
	}

	rows, err = r.db.Query(ctx, `SELECT id FROM users WHERE role = $1`, user.RoleRequester.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load requesters", err)
	}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan requester id", err)
		}
		snap.RequesterIDs = append(snap.RequesterIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate requesters", err)
	}

	return snap, nil
}

func (r *ScheduleReadStore) SlotByID(ctx context.Context, id uuid.UUID) (*schedule.Slot, error) {
	var providerID uuid.UUID
	var start, end time.Time
	var booked bool

	err := r.db.QueryRow(ctx, `
		SELECT provider_id, start_time, end_time, is_booked FROM slots WHERE id = $1`, id).
		Scan(&providerID, &start, &end, &booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot", err)
	}
	return schedule.ReconstructSlot(id, providerID, start, end, booked), nil
}

func (r *ScheduleReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*schedule.Booking, error) {
	var slotID, requesterID, providerID uuid.UUID
	var purpose string

	err := r.db.QueryRow(ctx, `
		SELECT slot_id, requester_id, provider_id, purpose FROM bookings WHERE id = $1`, id).
		Scan(&slotID, &requesterID, &providerID, &purpose)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return schedule.ReconstructBooking(id, slotID, requesterID, providerID, purpose), nil
}

// ActiveBookingBySlot returns nil without error when the slot has no
// active booking.
func (r *ScheduleReadStore) ActiveBookingBySlot(ctx context.Context, slotID uuid.UUID) (*schedule.Booking, error) {
	var id, requesterID, providerID uuid.UUID
	var purpose string

	err := r.db.QueryRow(ctx, `
		SELECT id, requester_id, provider_id, purpose FROM bookings WHERE slot_id = $1`, slotID).
		Scan(&id, &requesterID, &providerID, &purpose)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking by slot", err)
	}
	return schedule.ReconstructBooking(id, slotID, requesterID, providerID, purpose), nil
}

func (r *ScheduleReadStore) RequestByID(ctx context.Context, id uuid.UUID) (*reassignment.Request, error) {
	var requesterID, requestedSlot uuid.UUID
	var statusStr string
	var createdAt time.Time

	err := r.db.QueryRow(ctx, `
		SELECT requester_id, requested_slot_id, status, created_at
		FROM reschedule_requests WHERE id = $1`, id).
		Scan(&requesterID, &requestedSlot, &statusStr, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reschedule request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reschedule request", err)
	}

	status, err := reassignment.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reschedule request status", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT user_id, from_slot_id, to_slot_id, provider_id, approved
		FROM reschedule_moves WHERE request_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reschedule moves", err)
	}
	defer rows.Close()

	var moves []matching.Move
	var approved []uuid.UUID
	for rows.Next() {
		var m matching.Move
		var isApproved bool
		if err := rows.Scan(&m.UserID, &m.FromSlot, &m.ToSlot, &m.ProviderID, &isApproved); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reschedule move", err)
		}
		moves = append(moves, m)
		if isApproved {
			approved = append(approved, m.UserID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reschedule moves", err)
	}

	return reassignment.Reconstruct(id, requesterID, requestedSlot, moves, approved, status, createdAt), nil
}

func (r *ScheduleReadStore) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.scanUser(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = $1`, id)
}

func (r *ScheduleReadStore) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.scanUser(ctx, `
		SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1`, email)
}

func (r *ScheduleReadStore) scanUser(ctx context.Context, q string, arg any) (*user.User, error) {
	var id uuid.UUID
	var name, email, passwordHash, roleStr string
	var createdAt time.Time

	err := r.db.QueryRow(ctx, q, arg).Scan(&id, &name, &email, &passwordHash, &roleStr, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user role", err)
	}
	return user.Reconstruct(id, name, email, passwordHash, role, createdAt), nil
}

func (r *ScheduleReadStore) NotificationByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var userID uuid.UUID
	var message string
	var read bool
	var requestID *uuid.UUID
	var createdAt time.Time

	err := r.db.QueryRow(ctx, `
		SELECT user_id, message, is_read, request_id, created_at
		FROM notifications WHERE id = $1`, id).
		Scan(&userID, &message, &read, &requestID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find notification", err)
	}
	return notification.Reconstruct(id, userID, message, read, requestID, createdAt), nil
}

func (r *ScheduleReadStore) EarliestWaitlistEntry(ctx context.Context, slotID uuid.UUID) (*schedule.WaitlistEntry, error) {
	var id, userID uuid.UUID
	var purpose string
	var createdAt time.Time

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, purpose, created_at
		FROM waitlist_entries WHERE slot_id = $1
		ORDER BY created_at, id LIMIT 1`, slotID).
		Scan(&id, &userID, &purpose, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find earliest waitlist entry", err)
	}
	return schedule.ReconstructWaitlistEntry(id, slotID, userID, purpose, createdAt), nil
}

func (r *ScheduleReadStore) IsWaitlisted(ctx context.Context, slotID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM waitlist_entries WHERE slot_id = $1 AND user_id = $2)`,
		slotID, userID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check waitlist membership", err)
	}
	return exists, nil
}

func (r *ScheduleReadStore) HasPendingRequest(ctx context.Context, requesterID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM reschedule_requests WHERE requester_id = $1 AND status = $2)`,
		requesterID, reassignment.StatusPending.String()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending request", err)
	}
	return exists, nil
}
