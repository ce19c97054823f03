package readstore

import (
	"context"

	"machine-rental/internal/domain/analytics"
	"machine-rental/internal/domain/booking"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) queries.DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

func (s *DashboardReadStore) Totals(ctx context.Context, ownerID uuid.UUID) (*queries.DashboardTotals, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM machines m WHERE m.owner_id = $1),
			(SELECT COUNT(*) FROM bookings b
				JOIN machines m ON m.id = b.machine_id
				WHERE m.owner_id = $1 AND b.status = 'approved_by_renter'),
			(SELECT COUNT(*) FROM bookings b
				JOIN machines m ON m.id = b.machine_id
				WHERE m.owner_id = $1 AND b.status = 'pending_renter_approval')`

	var totals queries.DashboardTotals
	err := s.db.QueryRow(ctx, query, ownerID).Scan(
		&totals.TotalMachines, &totals.ActiveBookings, &totals.PendingBookings,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard totals", err)
	}
	return &totals, nil
}

func (s *DashboardReadStore) BookingRecords(ctx context.Context, ownerID uuid.UUID) ([]analytics.BookingRecord, error) {
	const query = `
		SELECT b.status, b.starts_at, b.ends_at, b.price_per_hour_cents
		FROM bookings b
		JOIN machines m ON m.id = b.machine_id
		WHERE m.owner_id = $1`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking records", err)
	}
	defer rows.Close()

	var records []analytics.BookingRecord
	for rows.Next() {
		var (
			record analytics.BookingRecord
			status string
		)
		if err := rows.Scan(&status, &record.StartsAt, &record.EndsAt, &record.PricePerHourCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking record", err)
		}
		record.Status = booking.Status(status)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking records", err)
	}
	return records, nil
}

func (s *DashboardReadStore) MachineRecords(ctx context.Context, ownerID uuid.UUID) ([]analytics.MachineRecord, error) {
	// Utilization is the instance-status ratio: units in maintenance or
	// retired drag it down regardless of the booking calendar.
	const query = `
		SELECT m.id, m.name,
		       (SELECT COUNT(*) FROM machine_instances mi
		        WHERE mi.machine_id = m.id AND mi.status = 'active'),
		       (SELECT COUNT(*) FROM machine_instances mi WHERE mi.machine_id = m.id)
		FROM machines m
		WHERE m.owner_id = $1
		ORDER BY m.created_at`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load machine records", err)
	}
	defer rows.Close()

	var records []analytics.MachineRecord
	for rows.Next() {
		var record analytics.MachineRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.ActiveInstances, &record.TotalInstances); err != nil {
			return nil, infra.WrapRepoErr("failed to scan machine record", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate machine records", err)
	}
	return records, nil
}
