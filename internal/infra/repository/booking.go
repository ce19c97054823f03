package repository

import (
	"context"
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() commands.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, machine_id, machine_instance_id, client_id,
			starts_at, ends_at, requested_count, status, price_per_hour_cents
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		b.ID(), b.MachineID(), b.MachineInstanceID(), b.ClientID(),
		b.TimeSlot().Start(), b.TimeSlot().End(), b.RequestedCount(),
		b.Status().String(), priceCents(b),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, machine_id, machine_instance_id, client_id,
		       starts_at, ends_at, requested_count, status, price_per_hour_cents,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID         uuid.UUID
		machineID         uuid.UUID
		machineInstanceID *uuid.UUID
		clientID          uuid.UUID
		startsAt          time.Time
		endsAt            time.Time
		requestedCount    int
		status            string
		cents             *int64
		createdAt         time.Time
		updatedAt         time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&bookingID, &machineID, &machineInstanceID, &clientID,
		&startsAt, &endsAt, &requestedCount, &status, &cents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	slot, err := booking.NewTimeSlot(startsAt, endsAt)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an invalid period", err)
	}
	var price *booking.Money
	if cents != nil {
		m, err := booking.NewMoney(*cents)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has an invalid price", err)
		}
		price = &m
	}

	return booking.ReconstructBooking(
		bookingID, machineID, machineInstanceID, clientID,
		slot, requestedCount, booking.Status(status), price,
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET machine_instance_id = $2, status = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, b.ID(), b.MachineInstanceID(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found for update")
	}
	return nil
}

func (r *BookingRepository) CreateMessage(ctx context.Context, tx db.DBTX, m *booking.Message) error {
	const query = `
		INSERT INTO booking_messages (id, booking_id, sender_id, body)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, m.ID(), m.BookingID(), m.SenderID(), m.Body())
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking message", err)
	}
	return nil
}

func (r *BookingRepository) CountCapacityConsumed(ctx context.Context, tx db.DBTX, machineID uuid.UUID, startsAt, endsAt time.Time, excludeID *uuid.UUID) (int, error) {
	// Half-open periods: a booking ending exactly at startsAt does not count.
	const query = `
		SELECT COALESCE(SUM(requested_count), 0)
		FROM bookings
		WHERE machine_id = $1
		  AND status IN ('pending_renter_approval', 'approved_by_renter')
		  AND starts_at < $3
		  AND ends_at > $2
		  AND ($4::uuid IS NULL OR id <> $4)`

	var consumed int
	if err := tx.QueryRow(ctx, query, machineID, startsAt, endsAt, excludeID).Scan(&consumed); err != nil {
		return 0, infra.WrapRepoErr("failed to count consumed capacity", err)
	}
	return consumed, nil
}

func (r *BookingRepository) LockMachine(ctx context.Context, tx db.DBTX, machineID uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtext($1::text))`

	if _, err := tx.Exec(ctx, query, machineID); err != nil {
		return infra.WrapRepoErr("failed to lock machine for booking", err)
	}
	return nil
}

func priceCents(b *booking.Booking) *int64 {
	if b.PricePerHour() == nil {
		return nil
	}
	cents := b.PricePerHour().Cents()
	return &cents
}
