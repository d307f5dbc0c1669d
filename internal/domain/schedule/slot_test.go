//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotswap/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewSlot(t *testing.T) {
	provider := uuid.New()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid interval", start: slotStart, end: slotStart.Add(time.Hour)},
		{name: "end before start", start: slotStart.Add(time.Hour), end: slotStart, errIs: schedule.ErrInvalidInterval},
		{name: "zero length", start: slotStart, end: slotStart, errIs: schedule.ErrInvalidInterval},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot, err := schedule.NewSlot(provider, c.start, c.end)

			if c.errIs != nil {
				require.Nil(t, slot)
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, slot.ID())
			assert.Equal(t, provider, slot.ProviderID())
			assert.False(t, slot.IsBooked())
		})
	}
}

func TestSlotBookAndFree(t *testing.T) {
	slot, err := schedule.NewSlot(uuid.New(), slotStart, slotStart.Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, slot.Book())
	assert.True(t, slot.IsBooked())
	assert.ErrorIs(t, slot.Book(), schedule.ErrSlotAlreadyBooked)

	require.NoError(t, slot.Free())
	assert.False(t, slot.IsBooked())
	assert.ErrorIs(t, slot.Free(), schedule.ErrSlotNotBooked)
}
