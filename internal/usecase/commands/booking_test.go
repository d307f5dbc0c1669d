//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotswap/internal/domain/user"
	"slotswap/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookSlot(t *testing.T) {
	t.Run("books a free slot", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		s1 := f.store.addSlot(provider, f.hour(0), false)

		bookingID, err := f.bookingCmds().BookSlot(context.Background(), alice, s1, "standup")
		require.NoError(t, err)

		b := f.store.bookings[bookingID]
		require.NotNil(t, b)
		assert.Equal(t, s1, b.slotID)
		assert.Equal(t, alice, b.requesterID)
		assert.Equal(t, provider, b.providerID)
		assert.Equal(t, "standup", b.purpose)
		assert.True(t, f.store.slots[s1].booked)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		bob := f.store.addUser("bob", user.RoleRequester, testTime)
		s1 := f.store.addSlot(provider, f.hour(0), false)
		f.store.addBooking(s1, alice, "standup")

		cmds := f.bookingCmds()

		_, err := cmds.BookSlot(context.Background(), bob, s1, "x")
		assert.ErrorIs(t, err, errs.ErrSlotAlreadyBooked)

		_, err = cmds.BookSlot(context.Background(), bob, uuid.New(), "x")
		assert.ErrorIs(t, err, errs.ErrSlotNotFound)

		_, err = cmds.BookSlot(context.Background(), provider, s1, "x")
		assert.ErrorIs(t, err, errs.ErrRoleNotAllowed)

		_, err = cmds.BookSlot(context.Background(), uuid.New(), s1, "x")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("only the owner can cancel", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		bob := f.store.addUser("bob", user.RoleRequester, testTime)
		s1 := f.store.addSlot(provider, f.hour(0), false)
		booking := f.store.addBooking(s1, alice, "standup")

		cmds := f.bookingCmds()

		err := cmds.CancelBooking(context.Background(), bob, booking)
		assert.ErrorIs(t, err, errs.ErrNotBookingOwner)

		err = cmds.CancelBooking(context.Background(), alice, uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)

		require.NoError(t, cmds.CancelBooking(context.Background(), alice, booking))
		assert.Empty(t, f.store.bookings)
		assert.False(t, f.store.slots[s1].booked)
	})

	t.Run("freed slot backfills from its queue oldest first", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		bob := f.store.addUser("bob", user.RoleRequester, testTime)
		carol := f.store.addUser("carol", user.RoleRequester, testTime)

		s1 := f.store.addSlot(provider, f.hour(0), false)
		booking := f.store.addBooking(s1, alice, "standup")

		f.store.addEntry(s1, bob, "interview", testTime.Add(time.Minute))
		carolEntry := f.store.addEntry(s1, carol, "retro", testTime.Add(2*time.Minute))

		require.NoError(t, f.bookingCmds().CancelBooking(context.Background(), alice, booking))

		// bob queued first, so bob wins the slot; carol stays queued.
		require.NotNil(t, f.store.bookingOf(bob))
		assert.Equal(t, s1, f.store.bookingOf(bob).slotID)
		assert.Equal(t, "interview", f.store.bookingOf(bob).purpose)
		assert.True(t, f.store.slots[s1].booked)
		require.Len(t, f.store.waitlist, 1)
		assert.NotNil(t, f.store.waitlist[carolEntry])
	})

	t.Run("waiter holding a booking is moved in place and cascades", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		dave := f.store.addUser("dave", user.RoleRequester, testTime)

		s1 := f.store.addSlot(provider, f.hour(0), false)
		s3 := f.store.addSlot(provider, f.hour(2), false)
		aliceBooking := f.store.addBooking(s1, alice, "standup")
		daveBooking := f.store.addBooking(s3, dave, "review")
		f.store.addEntry(s1, dave, "review", testTime.Add(time.Minute))

		require.NoError(t, f.bookingCmds().CancelBooking(context.Background(), alice, aliceBooking))

		// dave keeps his booking id, now on the freed slot, and his old
		// slot opens up.
		assert.Equal(t, s1, f.store.bookings[daveBooking].slotID)
		assert.True(t, f.store.slots[s1].booked)
		assert.False(t, f.store.slots[s3].booked)
		assert.Empty(t, f.store.waitlist)
	})

	t.Run("empty queue falls back to a preference scan", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		bob := f.store.addUser("bob", user.RoleRequester, testTime)

		s1 := f.store.addSlot(provider, f.hour(0), false)
		s2 := f.store.addSlot(provider, f.hour(1), false)
		aliceBooking := f.store.addBooking(s1, alice, "standup")
		f.store.addBooking(s2, f.store.addUser("erin", user.RoleRequester, testTime), "sync")

		// bob queued on the occupied second slot but also likes hour 0.
		f.store.addEntry(s2, bob, "interview", testTime.Add(time.Minute))
		f.store.preferences[bob] = []time.Time{f.hour(0)}

		require.NoError(t, f.bookingCmds().CancelBooking(context.Background(), alice, aliceBooking))

		require.NotNil(t, f.store.bookingOf(bob))
		assert.Equal(t, s1, f.store.bookingOf(bob).slotID)
		assert.True(t, f.store.slots[s1].booked)
		assert.Empty(t, f.store.waitlist)
	})

	t.Run("waiter with a pending chain is not asked twice", func(t *testing.T) {
		f := newFixture()
		provider := f.store.addUser("pat", user.RoleProvider, testTime)
		alice := f.store.addUser("alice", user.RoleRequester, testTime)
		bob := f.store.addUser("bob", user.RoleRequester, testTime)
		carol := f.store.addUser("carol", user.RoleRequester, testTime)

		s1 := f.store.addSlot(provider, f.hour(0), false)
		f.store.addSlot(provider, f.hour(1), false)
		s3 := f.store.addSlot(provider, f.hour(2), false)
		f.store.addBooking(s1, alice, "standup")
		carolBooking := f.store.addBooking(s3, carol, "review")

		f.store.preferences[alice] = []time.Time{f.hour(0), f.hour(1)}
		f.store.preferences[bob] = []time.Time{f.hour(0)}

		res, err := f.reassignments().RequestSlot(context.Background(), bob, s1, "interview")
		require.NoError(t, err)
		require.NotNil(t, res.RequestID)
		require.Len(t, f.store.requests, 1)
		require.Len(t, f.store.notifications, 1)

		// A later cancellation frees an unrelated slot. The scan sees
		// bob's pending chain and must not file a second one even
		// though an augmenting path for him still exists.
		f.clk.Advance(time.Minute)
		require.NoError(t, f.bookingCmds().CancelBooking(context.Background(), carol, carolBooking))

		assert.Len(t, f.store.requests, 1)
		assert.Len(t, f.store.notifications, 1)
		assert.True(t, f.store.waitlistedOn(s1, bob))
		assert.Equal(t, s1, f.store.bookingOf(alice).slotID)
		assert.False(t, f.store.slots[s3].booked)
	})
}
