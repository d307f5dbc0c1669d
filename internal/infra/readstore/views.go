package readstore

import (
	"context"

	"slotswap/internal/infra"
	"slotswap/internal/infra/db"
	"slotswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotViewStore struct {
	db db.DBTX
}

func NewSlotViewStore(dbtx db.DBTX) *SlotViewStore {
	return &SlotViewStore{db: dbtx}
}

func (s *SlotViewStore) ListOpen(ctx context.Context) ([]*queries.SlotView, error) {
	return s.listSlots(ctx, `
		SELECT s.id, s.provider_id, u.name, s.start_time, s.end_time, s.is_booked
		FROM slots s JOIN users u ON u.id = s.provider_id
		WHERE NOT s.is_booked
		ORDER BY s.start_time, s.id`)
}

func (s *SlotViewStore) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*queries.SlotView, error) {
	return s.listSlots(ctx, `
		SELECT s.id, s.provider_id, u.name, s.start_time, s.end_time, s.is_booked
		FROM slots s JOIN users u ON u.id = s.provider_id
		WHERE s.provider_id = $1
		ORDER BY s.start_time, s.id`, providerID)
}

func (s *SlotViewStore) listSlots(ctx context.Context, q string, args ...any) ([]*queries.SlotView, error) {
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var views []*queries.SlotView
	for rows.Next() {
		v := &queries.SlotView{}
		if err := rows.Scan(&v.ID, &v.ProviderID, &v.ProviderName, &v.StartTime, &v.EndTime, &v.IsBooked); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot views", err)
	}
	return views, nil
}

type MeetingViewStore struct {
	db db.DBTX
}

func NewMeetingViewStore(dbtx db.DBTX) *MeetingViewStore {
	return &MeetingViewStore{db: dbtx}
}

func (s *MeetingViewStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.MeetingView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.slot_id, sl.start_time, sl.end_time, b.provider_id, u.name, b.purpose
		FROM bookings b
		JOIN slots sl ON sl.id = b.slot_id
		JOIN users u ON u.id = b.provider_id
		WHERE b.requester_id = $1
		ORDER BY sl.start_time, b.id`, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meetings", err)
	}
	defer rows.Close()

	var views []*queries.MeetingView
	for rows.Next() {
		v := &queries.MeetingView{}
		if err := rows.Scan(&v.ID, &v.SlotID, &v.StartTime, &v.EndTime, &v.ProviderID, &v.ProviderName, &v.Purpose); err != nil {
			return nil, infra.WrapRepoErr("failed to scan meeting view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate meeting views", err)
	}
	return views, nil
}

type NotificationViewStore struct {
	db db.DBTX
}

func NewNotificationViewStore(dbtx db.DBTX) *NotificationViewStore {
	return &NotificationViewStore{db: dbtx}
}

func (s *NotificationViewStore) ListUnread(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, message, is_read, request_id, created_at
		FROM notifications
		WHERE user_id = $1 AND NOT is_read
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		v := &queries.NotificationView{}
		if err := rows.Scan(&v.ID, &v.Message, &v.IsRead, &v.RequestID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification views", err)
	}
	return views, nil
}

type PreferenceViewStore struct {
	db db.DBTX
}

func NewPreferenceViewStore(dbtx db.DBTX) *PreferenceViewStore {
	return &PreferenceViewStore{db: dbtx}
}

func (s *PreferenceViewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.PreferenceView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT desired_at FROM preferences WHERE user_id = $1 ORDER BY desired_at`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list preferences", err)
	}
	defer rows.Close()

	var views []*queries.PreferenceView
	for rows.Next() {
		v := &queries.PreferenceView{}
		if err := rows.Scan(&v.DesiredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan preference view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate preference views", err)
	}
	return views, nil
}

type WaitlistViewStore struct {
	db db.DBTX
}

func NewWaitlistViewStore(dbtx db.DBTX) *WaitlistViewStore {
	return &WaitlistViewStore{db: dbtx}
}

func (s *WaitlistViewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.WaitlistView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT w.slot_id, sl.start_time, w.created_at
		FROM waitlist_entries w
		JOIN slots sl ON sl.id = w.slot_id
		WHERE w.user_id = $1
		ORDER BY w.created_at, w.id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist entries", err)
	}
	defer rows.Close()

	var views []*queries.WaitlistView
	for rows.Next() {
		v := &queries.WaitlistView{}
		if err := rows.Scan(&v.SlotID, &v.StartTime, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan waitlist view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate waitlist views", err)
	}
	return views, nil
}
