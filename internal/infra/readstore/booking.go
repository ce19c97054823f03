package readstore

import (
	"context"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.machine_id, m.name, m.owner_id,
		       b.machine_instance_id, mi.instance_code,
		       b.client_id, u.name, u.email,
		       b.starts_at, b.ends_at, b.requested_count, b.status,
		       b.price_per_hour_cents, b.created_at, b.updated_at
		FROM bookings b
		JOIN machines m ON m.id = b.machine_id
		JOIN users u ON u.id = b.client_id
		LEFT JOIN machine_instances mi ON mi.id = b.machine_instance_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.MachineID, &view.MachineName, &view.OwnerID,
		&view.MachineInstanceID, &view.InstanceCode,
		&view.ClientID, &view.ClientName, &view.ClientEmail,
		&view.StartsAt, &view.EndsAt, &view.RequestedCount, &view.Status,
		&view.PricePerHourCents, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	view.TotalCostCents = totalCost(&view)

	return &view, nil
}

func (s *BookingReadStore) FindMessages(ctx context.Context, bookingID uuid.UUID) ([]queries.MessageView, error) {
	const query = `
		SELECT id, sender_id, body, created_at
		FROM booking_messages
		WHERE booking_id = $1
		ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking messages", err)
	}
	defer rows.Close()

	var messages []queries.MessageView
	for rows.Next() {
		var m queries.MessageView
		if err := rows.Scan(&m.ID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking message", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking messages", err)
	}
	return messages, nil
}

func (s *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, status *booking.Status, page queries.ListPage) ([]queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.machine_id, m.name, u.name,
		       b.starts_at, b.ends_at, b.requested_count, b.status,
		       b.price_per_hour_cents, b.created_at
		FROM bookings b
		JOIN machines m ON m.id = b.machine_id
		JOIN users u ON u.id = b.client_id
		WHERE m.owner_id = $1
		  AND ($2::text IS NULL OR b.status = $2)
		ORDER BY b.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.Query(ctx, query, ownerID, statusArg(status), page.Limit, page.Offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner bookings", err)
	}
	return scanBookingList(rows)
}

func (s *BookingReadStore) ListByClient(ctx context.Context, clientID uuid.UUID, status *booking.Status, page queries.ListPage) ([]queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.machine_id, m.name, u.name,
		       b.starts_at, b.ends_at, b.requested_count, b.status,
		       b.price_per_hour_cents, b.created_at
		FROM bookings b
		JOIN machines m ON m.id = b.machine_id
		JOIN users u ON u.id = b.client_id
		WHERE b.client_id = $1
		  AND ($2::text IS NULL OR b.status = $2)
		ORDER BY b.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.Query(ctx, query, clientID, statusArg(status), page.Limit, page.Offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list client bookings", err)
	}
	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]queries.BookingListItem, error) {
	defer rows.Close()

	items := []queries.BookingListItem{}
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.MachineID, &item.MachineName, &item.ClientName,
			&item.StartsAt, &item.EndsAt, &item.RequestedCount, &item.Status,
			&item.PricePerHourCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}
	return items, nil
}

func statusArg(status *booking.Status) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}

func totalCost(view *queries.BookingView) int64 {
	if view.PricePerHourCents == nil {
		return 0
	}
	hours := booking.BillableHours(view.StartsAt, view.EndsAt)
	return int64(view.RequestedCount) * hours * *view.PricePerHourCents
}
