package readstore

import (
	"context"
	"encoding/json"
	"time"

	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type MachineReadStore struct {
	db db.DBTX
}

func NewMachineReadStore(dbtx db.DBTX) queries.MachineReadStore {
	return &MachineReadStore{db: dbtx}
}

func (s *MachineReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MachineView, error) {
	const query = `
		SELECT m.id, m.owner_id, u.name, m.name, m.code, m.description, m.category,
		       m.price_per_hour_cents, m.specs, m.average_rating, m.is_active,
		       (SELECT COUNT(*) FROM machine_instances mi WHERE mi.machine_id = m.id),
		       (SELECT COUNT(*) FROM machine_instances mi WHERE mi.machine_id = m.id AND mi.status = 'active'),
		       (SELECT COUNT(*) FROM bookings b WHERE b.machine_id = m.id),
		       m.created_at, m.updated_at
		FROM machines m
		JOIN users u ON u.id = m.owner_id
		WHERE m.id = $1`

	var (
		view     queries.MachineView
		rawSpecs []byte
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.OwnerID, &view.OwnerName, &view.Name, &view.Code,
		&view.Description, &view.Category, &view.PricePerHourCents, &rawSpecs,
		&view.AverageRating, &view.IsActive,
		&view.Stats.InstanceCount, &view.Stats.ActiveInstanceCount, &view.Stats.BookingCount,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find machine view", err)
	}
	if len(rawSpecs) > 0 {
		if err := json.Unmarshal(rawSpecs, &view.Specs); err != nil {
			return nil, infra.WrapRepoErr("failed to decode machine specs", err)
		}
	}

	return &view, nil
}

func (s *MachineReadStore) List(ctx context.Context, filter queries.CatalogFilter, page queries.ListPage) ([]queries.MachineListItem, error) {
	const query = `
		SELECT m.id, m.owner_id, m.name, m.code, m.category,
		       m.price_per_hour_cents, m.average_rating,
		       (SELECT COUNT(*) FROM machine_instances mi WHERE mi.machine_id = m.id AND mi.status = 'active'),
		       (SELECT COUNT(*) FROM machine_instances mi WHERE mi.machine_id = m.id)
		FROM machines m
		WHERE ($1::uuid IS NULL OR m.owner_id = $1)
		  AND ($1::uuid IS NOT NULL OR m.is_active)
		  AND ($2::text IS NULL OR m.category = $2)
		  AND ($3::text IS NULL OR m.name ILIKE '%' || $3 || '%' OR m.description ILIKE '%' || $3 || '%')
		ORDER BY m.created_at DESC
		LIMIT $4 OFFSET $5`

	rows, err := s.db.Query(ctx, query, filter.OwnerID, filter.Category, filter.Keyword, page.Limit, page.Offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list machines", err)
	}
	defer rows.Close()

	items := []queries.MachineListItem{}
	for rows.Next() {
		var item queries.MachineListItem
		if err := rows.Scan(
			&item.ID, &item.OwnerID, &item.Name, &item.Code, &item.Category,
			&item.PricePerHourCents, &item.AverageRating,
			&item.ActiveInstances, &item.TotalInstances,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan machine list item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate machine list", err)
	}
	return items, nil
}

func (s *MachineReadStore) CountActiveInstances(ctx context.Context, machineID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM machine_instances
		WHERE machine_id = $1 AND status = 'active'`

	var count int
	if err := s.db.QueryRow(ctx, query, machineID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active instances", err)
	}
	return count, nil
}

func (s *MachineReadStore) CountOverlapping(ctx context.Context, machineID uuid.UUID, startsAt, endsAt time.Time) (int, error) {
	// Half-open periods: a booking ending exactly at startsAt does not count.
	const query = `
		SELECT COALESCE(SUM(requested_count), 0)
		FROM bookings
		WHERE machine_id = $1
		  AND status IN ('pending_renter_approval', 'approved_by_renter')
		  AND starts_at < $3
		  AND ends_at > $2`

	var consumed int
	if err := s.db.QueryRow(ctx, query, machineID, startsAt, endsAt).Scan(&consumed); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return consumed, nil
}
