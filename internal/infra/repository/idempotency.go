package repository

import (
	"context"
	"time"

	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

// All idempotency keys currently guard the booking create endpoint.
const bookingCreateEndpoint = "POST /api/client/bookings"

type IdempotencyRepository struct{}

func NewIdempotencyRepository() commands.IdempotencyRepository {
	return &IdempotencyRepository{}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error) {
	// An expired row is reclaimed as if the key had never been used; only a
	// live row makes the caller fall back to replay.
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO UPDATE
		SET endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    result_booking_id = NULL,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = now()
		WHERE idempotency_keys.expires_at <= now()`

	tag, err := tx.Exec(ctx, query, key, userID, bookingCreateEndpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx db.DBTX, key, userID uuid.UUID) (*commands.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, request_hash, status, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2`

	var record commands.IdempotencyRecord
	var status string
	err := tx.QueryRow(ctx, query, key, userID).Scan(
		&record.Key, &record.UserID, &record.RequestHash, &status,
		&record.ResultBookingID, &record.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}
	record.Status = commands.IdempotencyStatus(status)

	return &record, nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_booking_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, query, key, userID, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "idempotency key not found for completion")
	}
	return nil
}
