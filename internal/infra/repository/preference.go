package repository

import (
	"context"
	"time"

	"slotswap/internal/infra"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type PreferenceRepository struct{}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

// ReplaceForUser swaps the user's full preference set in one shot; the
// UI always submits the complete list.
func (r *PreferenceRepository) ReplaceForUser(ctx context.Context, tx db.DBTX, userID uuid.UUID, desiredAt []time.Time) error {
	if _, err := tx.Exec(ctx, `DELETE FROM preferences WHERE user_id = $1`, userID); err != nil {
		return infra.WrapRepoErr("failed to clear preferences", err)
	}

	const q = `INSERT INTO preferences (user_id, desired_at) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, t := range desiredAt {
		if _, err := tx.Exec(ctx, q, userID, t); err != nil {
			return infra.WrapRepoErr("failed to insert preference", err)
		}
	}
	return nil
}
