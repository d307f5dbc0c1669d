package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Lookup errors
	ErrSlotNotFound         = errors.New("slot not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrRequestNotFound      = errors.New("reschedule request not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// State errors
	ErrSlotAlreadyBooked  = errors.New("slot already booked")
	ErrSlotNotBooked      = errors.New("slot is not booked")
	ErrRequestNotPending  = errors.New("reschedule request is not pending")
	ErrAlreadyWaitlisted  = errors.New("already on the waitlist for this slot")
	ErrRequesterHoldsSlot = errors.New("requester already holds this slot")
	ErrStaleChain         = errors.New("reschedule chain no longer matches current bookings")

	// Authorization errors
	ErrNotAffectedUser  = errors.New("user is not an affected party of this request")
	ErrNotBookingOwner  = errors.New("user does not own this booking")
	ErrRoleNotAllowed   = errors.New("role is not allowed to perform this action")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidLogin     = errors.New("invalid email or password")
	ErrAlreadyAProvider = errors.New("user is already a provider")
)
