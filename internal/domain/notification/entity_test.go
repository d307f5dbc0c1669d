//go:build unit

package notification_test

import (
	"testing"
	"time"

	"slotswap/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMarkRead(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	requestID := uuid.New()

	n := notification.New(uuid.New(), "your slot is wanted", &requestID, now)
	assert.False(t, n.IsRead())

	n.MarkRead()
	assert.True(t, n.IsRead())
}

func TestReconstruct(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	id := uuid.New()
	userID := uuid.New()

	n := notification.Reconstruct(id, userID, "hello", true, nil, now)
	assert.Equal(t, id, n.ID())
	assert.Equal(t, userID, n.UserID())
	assert.True(t, n.IsRead())
	assert.Nil(t, n.RequestID())
	assert.Equal(t, now, n.CreatedAt())
}
