//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"sort"
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
)

// fakeStore is an in-memory stand-in for the persistence layer. It
// stores raw row-like records and reconstructs domain entities on
// every read, so tests observe only what the commands actually wrote
// back through the repositories.

type storedSlot struct {
	providerID uuid.UUID
	start, end time.Time
	booked     bool
}

type storedBooking struct {
	slotID, requesterID, providerID uuid.UUID
	purpose                         string
}

type storedEntry struct {
	slotID, userID uuid.UUID
	purpose        string
	createdAt      time.Time
}

type storedRequest struct {
	requesterID, requestedSlot uuid.UUID
	moves                      []matching.Move
	approved                   map[uuid.UUID]bool
	createdAt                  time.Time
}

type storedNotification struct {
	userID    uuid.UUID
	message   string
	read      bool
	requestID *uuid.UUID
	createdAt time.Time
}

type fakeStore struct {
	slots         map[uuid.UUID]*storedSlot
	bookings      map[uuid.UUID]*storedBooking
	waitlist      map[uuid.UUID]*storedEntry
	requests      map[uuid.UUID]*storedRequest
	notifications map[uuid.UUID]*storedNotification
	preferences   map[uuid.UUID][]time.Time
	users         map[uuid.UUID]*user.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:         make(map[uuid.UUID]*storedSlot),
		bookings:      make(map[uuid.UUID]*storedBooking),
		waitlist:      make(map[uuid.UUID]*storedEntry),
		requests:      make(map[uuid.UUID]*storedRequest),
		notifications: make(map[uuid.UUID]*storedNotification),
		preferences:   make(map[uuid.UUID][]time.Time),
		users:         make(map[uuid.UUID]*user.User),
	}
}

func (s *fakeStore) addUser(name string, role user.Role, now time.Time) uuid.UUID {
	u := user.Reconstruct(uuid.New(), name, name+"@example.com", "x", role, now)
	s.users[u.ID()] = u
	return u.ID()
}

func (s *fakeStore) addSlot(providerID uuid.UUID, start time.Time, booked bool) uuid.UUID {
	id := uuid.New()
	s.slots[id] = &storedSlot{providerID: providerID, start: start, end: start.Add(time.Hour), booked: booked}
	return id
}

func (s *fakeStore) addBooking(slotID, requesterID uuid.UUID, purpose string) uuid.UUID {
	id := uuid.New()
	s.bookings[id] = &storedBooking{
		slotID:      slotID,
		requesterID: requesterID,
		providerID:  s.slots[slotID].providerID,
		purpose:     purpose,
	}
	s.slots[slotID].booked = true
	return id
}

func (s *fakeStore) addEntry(slotID, userID uuid.UUID, purpose string, createdAt time.Time) uuid.UUID {
	id := uuid.New()
	s.waitlist[id] = &storedEntry{slotID: slotID, userID: userID, purpose: purpose, createdAt: createdAt}
	return id
}

func (s *fakeStore) bookingOf(userID uuid.UUID) *storedBooking {
	for _, b := range s.bookings {
		if b.requesterID == userID {
			return b
		}
	}
	return nil
}

func (s *fakeStore) waitlistedOn(slotID, userID uuid.UUID) bool {
	for _, e := range s.waitlist {
		if e.slotID == slotID && e.userID == userID {
			return true
		}
	}
	return false
}

// fakeUoW runs the transaction body straight against the store;
// rollback fidelity is not what these tests exercise.
type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Slots() shared.SlotRepository                 { return &fakeSlotRepo{t.store} }
func (t *fakeTx) Bookings() shared.BookingRepository           { return &fakeBookingRepo{t.store} }
func (t *fakeTx) Waitlist() shared.WaitlistRepository          { return &fakeWaitlistRepo{t.store} }
func (t *fakeTx) Requests() shared.RescheduleRepository        { return &fakeRescheduleRepo{t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{t.store} }
func (t *fakeTx) Preferences() shared.PreferenceRepository     { return &fakePreferenceRepo{t.store} }
func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUserRepo{t.store} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeSlotRepo struct{ store *fakeStore }

func (r *fakeSlotRepo) Create(_ context.Context, _ db.DBTX, slot *schedule.Slot) error {
	r.store.slots[slot.ID()] = &storedSlot{
		providerID: slot.ProviderID(),
		start:      slot.StartTime(),
		end:        slot.EndTime(),
		booked:     slot.IsBooked(),
	}
	return nil
}

func (r *fakeSlotRepo) SetBooked(_ context.Context, _ db.DBTX, slotID uuid.UUID, booked bool) error {
	s, ok := r.store.slots[slotID]
	if !ok {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	s.booked = booked
	return nil
}

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *schedule.Booking) error {
	r.store.bookings[b.ID()] = &storedBooking{
		slotID:      b.SlotID(),
		requesterID: b.RequesterID(),
		providerID:  b.ProviderID(),
		purpose:     b.Purpose(),
	}
	return nil
}

func (r *fakeBookingRepo) UpdateSlot(_ context.Context, _ db.DBTX, bookingID, newSlotID, providerID uuid.UUID) error {
	b, ok := r.store.bookings[bookingID]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	b.slotID = newSlotID
	b.providerID = providerID
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, _ db.DBTX, bookingID uuid.UUID) error {
	if _, ok := r.store.bookings[bookingID]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.store.bookings, bookingID)
	return nil
}

type fakeWaitlistRepo struct{ store *fakeStore }

func (r *fakeWaitlistRepo) Insert(_ context.Context, _ db.DBTX, e *schedule.WaitlistEntry) error {
	r.store.waitlist[e.ID()] = &storedEntry{
		slotID:    e.SlotID(),
		userID:    e.UserID(),
		purpose:   e.Purpose(),
		createdAt: e.CreatedAt(),
	}
	return nil
}

func (r *fakeWaitlistRepo) Delete(_ context.Context, _ db.DBTX, entryID uuid.UUID) error {
	if _, ok := r.store.waitlist[entryID]; !ok {
		return infra.WrapRepoErr("waitlist entry not found", nil, infra.KindNotFound)
	}
	delete(r.store.waitlist, entryID)
	return nil
}

type fakeRescheduleRepo struct{ store *fakeStore }

func (r *fakeRescheduleRepo) Create(_ context.Context, _ db.DBTX, req *reassignment.Request) error {
	r.store.requests[req.ID()] = &storedRequest{
		requesterID:   req.RequesterID(),
		requestedSlot: req.RequestedSlot(),
		moves:         req.Moves(),
		approved:      make(map[uuid.UUID]bool),
		createdAt:     req.CreatedAt(),
	}
	return nil
}

func (r *fakeRescheduleRepo) SetApproved(_ context.Context, _ db.DBTX, requestID, userID uuid.UUID) error {
	req, ok := r.store.requests[requestID]
	if !ok {
		return infra.WrapRepoErr("reschedule request not found", nil, infra.KindNotFound)
	}
	req.approved[userID] = true
	return nil
}

func (r *fakeRescheduleRepo) Delete(_ context.Context, _ db.DBTX, requestID uuid.UUID) error {
	if _, ok := r.store.requests[requestID]; !ok {
		return infra.WrapRepoErr("reschedule request not found", nil, infra.KindNotFound)
	}
	delete(r.store.requests, requestID)
	return nil
}

type fakeNotificationRepo struct{ store *fakeStore }

func (r *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, n *notification.Notification) error {
	r.store.notifications[n.ID()] = &storedNotification{
		userID:    n.UserID(),
		message:   n.Message(),
		read:      n.IsRead(),
		requestID: n.RequestID(),
		createdAt: n.CreatedAt(),
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteByRequest(_ context.Context, _ db.DBTX, requestID uuid.UUID) error {
	for id, n := range r.store.notifications {
		if n.requestID != nil && *n.requestID == requestID {
			delete(r.store.notifications, id)
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, _ db.DBTX, n *notification.Notification) error {
	stored, ok := r.store.notifications[n.ID()]
	if !ok {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	stored.read = n.IsRead()
	return nil
}

type fakePreferenceRepo struct{ store *fakeStore }

func (r *fakePreferenceRepo) ReplaceForUser(_ context.Context, _ db.DBTX, userID uuid.UUID, desiredAt []time.Time) error {
	r.store.preferences[userID] = append([]time.Time(nil), desiredAt...)
	return nil
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) error {
	for _, existing := range r.store.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
		}
	}
	r.store.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, _ db.DBTX, userID uuid.UUID, role user.Role) error {
	u, ok := r.store.users[userID]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	r.store.users[userID] = user.Reconstruct(u.ID(), u.Name(), u.Email(), u.PasswordHash(), role, u.CreatedAt())
	return nil
}

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) ScheduleSnapshot(context.Context) (*shared.ScheduleSnapshot, error) {
	snap := &shared.ScheduleSnapshot{}

	for _, id := range sortedKeys(r.store.slots) {
		s := r.store.slots[id]
		snap.Slots = append(snap.Slots, schedule.ReconstructSlot(id, s.providerID, s.start, s.end, s.booked))
	}
	sort.SliceStable(snap.Slots, func(i, j int) bool {
		return snap.Slots[i].StartTime().Before(snap.Slots[j].StartTime())
	})

	for _, id := range sortedKeys(r.store.bookings) {
		b := r.store.bookings[id]
		snap.Bookings = append(snap.Bookings, schedule.ReconstructBooking(id, b.slotID, b.requesterID, b.providerID, b.purpose))
	}

	for _, userID := range sortedKeys(r.store.preferences) {
		for _, at := range r.store.preferences[userID] {
			snap.Preferences = append(snap.Preferences, schedule.NewPreference(userID, at))
		}
	}

	for _, id := range sortedKeys(r.store.waitlist) {
		e := r.store.waitlist[id]
		snap.Waitlist = append(snap.Waitlist, schedule.ReconstructWaitlistEntry(id, e.slotID, e.userID, e.purpose, e.createdAt))
	}
	sort.SliceStable(snap.Waitlist, func(i, j int) bool {
		return snap.Waitlist[i].CreatedAt().Before(snap.Waitlist[j].CreatedAt())
	})

	for _, id := range sortedKeys(r.store.users) {
		if r.store.users[id].IsRequester() {
			snap.RequesterIDs = append(snap.RequesterIDs, id)
		}
	}

	return snap, nil
}

func (r *fakeReads) SlotByID(_ context.Context, id uuid.UUID) (*schedule.Slot, error) {
	s, ok := r.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return schedule.ReconstructSlot(id, s.providerID, s.start, s.end, s.booked), nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*schedule.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return schedule.ReconstructBooking(id, b.slotID, b.requesterID, b.providerID, b.purpose), nil
}

func (r *fakeReads) ActiveBookingBySlot(_ context.Context, slotID uuid.UUID) (*schedule.Booking, error) {
	for _, id := range sortedKeys(r.store.bookings) {
		b := r.store.bookings[id]
		if b.slotID == slotID {
			return schedule.ReconstructBooking(id, b.slotID, b.requesterID, b.providerID, b.purpose), nil
		}
	}
	return nil, nil
}

func (r *fakeReads) RequestByID(_ context.Context, id uuid.UUID) (*reassignment.Request, error) {
	req, ok := r.store.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("reschedule request not found", nil, infra.KindNotFound)
	}
	var approved []uuid.UUID
	for u := range req.approved {
		approved = append(approved, u)
	}
	return reassignment.Reconstruct(
		id, req.requesterID, req.requestedSlot,
		append([]matching.Move(nil), req.moves...), approved,
		reassignment.StatusPending, req.createdAt,
	), nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.store.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *fakeReads) EarliestWaitlistEntry(_ context.Context, slotID uuid.UUID) (*schedule.WaitlistEntry, error) {
	var best *schedule.WaitlistEntry
	for _, id := range sortedKeys(r.store.waitlist) {
		e := r.store.waitlist[id]
		if e.slotID != slotID {
			continue
		}
		if best == nil || e.createdAt.Before(best.CreatedAt()) {
			best = schedule.ReconstructWaitlistEntry(id, e.slotID, e.userID, e.purpose, e.createdAt)
		}
	}
	return best, nil
}

func (r *fakeReads) IsWaitlisted(_ context.Context, slotID, userID uuid.UUID) (bool, error) {
	return r.store.waitlistedOn(slotID, userID), nil
}

func (r *fakeReads) NotificationByID(_ context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, ok := r.store.notifications[id]
	if !ok {
		return nil, infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return notification.Reconstruct(id, n.userID, n.message, n.read, n.requestID, n.createdAt), nil
}

// Stored requests are pending by construction: finalize and reject
// both delete the row.
func (r *fakeReads) HasPendingRequest(_ context.Context, requesterID uuid.UUID) (bool, error) {
	for _, req := range r.store.requests {
		if req.requesterID == requesterID {
			return true, nil
		}
	}
	return false, nil
}

// sortedKeys keeps map iteration deterministic across test runs.
func sortedKeys[V any](m map[uuid.UUID]V) []uuid.UUID {
	keys := make([]uuid.UUID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	return keys
}
