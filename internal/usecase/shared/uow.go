package shared

import (
	"context"
	"time"

	"slotswap/internal/domain/notification"
	"slotswap/internal/domain/reassignment"
	"slotswap/internal/domain/schedule"
	"slotswap/internal/domain/user"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serializable transaction for the read-compute-write cycle
	// of scheduling commands, with retry on serialization conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct read access for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Waitlist() WaitlistRepository
	Requests() RescheduleRepository
	Notifications() NotificationRepository
	Preferences() PreferenceRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads is the snapshot accessor of the write side. The
// ScheduleSnapshot read inside Within sees the transaction's view, so
// matching always computes over consistent state.
type CommandReads interface {
	ScheduleSnapshot(ctx context.Context) (*ScheduleSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*schedule.Slot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*schedule.Booking, error)
	ActiveBookingBySlot(ctx context.Context, slotID uuid.UUID) (*schedule.Booking, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*reassignment.Request, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	NotificationByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	EarliestWaitlistEntry(ctx context.Context, slotID uuid.UUID) (*schedule.WaitlistEntry, error)
	IsWaitlisted(ctx context.Context, slotID, userID uuid.UUID) (bool, error)
	HasPendingRequest(ctx context.Context, requesterID uuid.UUID) (bool, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx db.DBTX, slot *schedule.Slot) error
	SetBooked(ctx context.Context, tx db.DBTX, slotID uuid.UUID, booked bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, booking *schedule.Booking) error
	UpdateSlot(ctx context.Context, tx db.DBTX, bookingID, newSlotID, providerID uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error
}

type WaitlistRepository interface {
	Insert(ctx context.Context, tx db.DBTX, entry *schedule.WaitlistEntry) error
	Delete(ctx context.Context, tx db.DBTX, entryID uuid.UUID) error
}

type RescheduleRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *reassignment.Request) error
	SetApproved(ctx context.Context, tx db.DBTX, requestID, userID uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, requestID uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	DeleteByRequest(ctx context.Context, tx db.DBTX, requestID uuid.UUID) error
	Update(ctx context.Context, tx db.DBTX, n *notification.Notification) error
}

type PreferenceRepository interface {
	ReplaceForUser(ctx context.Context, tx db.DBTX, userID uuid.UUID, desiredAt []time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role user.Role) error
}
