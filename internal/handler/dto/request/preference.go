package request

import "time"

// PutPreferencesRequest replaces the caller's full preference list.
type PutPreferencesRequest struct {
	DesiredAt []time.Time `json:"desired_at" binding:"required"`
}
