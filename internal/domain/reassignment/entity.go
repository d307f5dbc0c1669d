package reassignment

import (
	"errors"
	"time"

	"slotswap/internal/domain/matching"

	"github.com/google/uuid"
)

var (
	ErrEmptyChain     = errors.New("reschedule request needs at least one move")
	ErrNotPending     = errors.New("reschedule request is not pending")
	ErrNotAffected    = errors.New("user is not an affected party of this request")
	ErrNotApproved    = errors.New("reschedule request is not fully approved")
	ErrInvalidStatus  = errors.New("invalid reschedule request status")
	ErrRequesterInSet = errors.New("requester must not appear in the move chain")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusFinalized Status = "finalized"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string { return string(s) }

func NewStatus(v string) (Status, error) {
	switch Status(v) {
	case StatusPending, StatusFinalized, StatusRejected:
		return Status(v), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Request is a pending multi-party reassignment proposal: the ordered
// move chain that frees the requested slot, plus the consent collected
// so far. Terminal requests are deleted rather than archived, so a
// loaded request is pending unless a transition just happened in the
// same transaction.
type Request struct {
	id            uuid.UUID
	requesterID   uuid.UUID
	requestedSlot uuid.UUID
	moves         []matching.Move
	approved      map[uuid.UUID]bool
	status        Status
	createdAt     time.Time
}

func NewRequest(requesterID, requestedSlot uuid.UUID, chain matching.MoveChain, now time.Time) (*Request, error) {
	if len(chain.Moves) == 0 {
		return nil, ErrEmptyChain
	}
	for _, m := range chain.Moves {
		if m.UserID == requesterID {
			return nil, ErrRequesterInSet
		}
	}
	return &Request{
		id:            uuid.New(),
		requesterID:   requesterID,
		requestedSlot: requestedSlot,
		moves:         append([]matching.Move(nil), chain.Moves...),
		approved:      make(map[uuid.UUID]bool, len(chain.Moves)),
		status:        StatusPending,
		createdAt:     now,
	}, nil
}

func Reconstruct(
	id, requesterID, requestedSlot uuid.UUID,
	moves []matching.Move,
	approvedUsers []uuid.UUID,
	status Status,
	createdAt time.Time,
) *Request {
	approved := make(map[uuid.UUID]bool, len(approvedUsers))
	for _, u := range approvedUsers {
		approved[u] = true
	}
	return &Request{
		id:            id,
		requesterID:   requesterID,
		requestedSlot: requestedSlot,
		moves:         moves,
		approved:      approved,
		status:        status,
		createdAt:     createdAt,
	}
}

func (r *Request) ID() uuid.UUID            { return r.id }
func (r *Request) RequesterID() uuid.UUID   { return r.requesterID }
func (r *Request) RequestedSlot() uuid.UUID { return r.requestedSlot }
func (r *Request) Status() Status           { return r.status }
func (r *Request) CreatedAt() time.Time     { return r.createdAt }

func (r *Request) Moves() []matching.Move {
	return append([]matching.Move(nil), r.moves...)
}

// AffectedUsers lists the displaced users in chain order.
func (r *Request) AffectedUsers() []uuid.UUID {
	users := make([]uuid.UUID, 0, len(r.moves))
	for _, m := range r.moves {
		users = append(users, m.UserID)
	}
	return users
}

func (r *Request) IsAffected(userID uuid.UUID) bool {
	for _, m := range r.moves {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func (r *Request) ApprovedUsers() []uuid.UUID {
	users := make([]uuid.UUID, 0, len(r.approved))
	for _, m := range r.moves {
		if r.approved[m.UserID] {
			users = append(users, m.UserID)
		}
	}
	return users
}

func (r *Request) ApprovedCount() int { return len(r.approved) }
func (r *Request) AffectedCount() int { return len(r.moves) }

// Approve records a user's consent. Re-approving is a no-op; the
// approval set never double-counts and never triggers finalize twice.
// Returns true once every affected user has approved.
func (r *Request) Approve(userID uuid.UUID) (bool, error) {
	if r.status != StatusPending {
		return false, ErrNotPending
	}
	if !r.IsAffected(userID) {
		return false, ErrNotAffected
	}
	r.approved[userID] = true
	return r.AllApproved(), nil
}

// AllApproved holds exactly when the approved set equals the affected
// set; finalization is only legal at that point.
func (r *Request) AllApproved() bool {
	for _, m := range r.moves {
		if !r.approved[m.UserID] {
			return false
		}
	}
	return true
}

// Reject aborts the whole chain. Any affected user may veto: a partial
// application would leave a mid-chain user moved with nobody
// backfilling their old slot.
func (r *Request) Reject(userID uuid.UUID) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	if !r.IsAffected(userID) {
		return ErrNotAffected
	}
	r.status = StatusRejected
	return nil
}

// Finalize marks the request accepted. Callers must apply the chain
// and delete the request in the same transaction.
func (r *Request) Finalize() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	if !r.AllApproved() {
		return ErrNotApproved
	}
	r.status = StatusFinalized
	return nil
}
