package queries

import (
	"context"
	"strconv"
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/pkg/errs"
	"machine-rental/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrMachineNotFound = errs.New("machine not found")
	ErrInvalidPeriod   = errs.New("rental period is invalid")
	ErrInvalidCount    = errs.New("requested count must be positive")
)

type CatalogFilter struct {
	Category *string
	Keyword  *string
	OwnerID  *uuid.UUID
}

type MachineReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MachineView, error)
	List(ctx context.Context, filter CatalogFilter, page ListPage) ([]MachineListItem, error)
	CountActiveInstances(ctx context.Context, machineID uuid.UUID) (int, error)
	// CountOverlapping counts instances consumed by pending or approved
	// bookings whose period overlaps [startsAt, endsAt).
	CountOverlapping(ctx context.Context, machineID uuid.UUID, startsAt, endsAt time.Time) (int, error)
}

// CatalogCache is a best-effort cache over the catalog read models.
// Implementations must degrade to a miss when the backend is unreachable.
type CatalogCache interface {
	GetList(ctx context.Context, key string) ([]MachineListItem, bool)
	SetList(ctx context.Context, key string, items []MachineListItem)
	InvalidateCatalog(ctx context.Context)
}

type CatalogQueries interface {
	ListMachines(ctx context.Context, filter CatalogFilter, page ListPage) ([]MachineListItem, error)
	GetMachine(ctx context.Context, id uuid.UUID) (*MachineView, error)
	CheckAvailability(ctx context.Context, machineID uuid.UUID, startsAt, endsAt time.Time, count int) (*AvailabilityResult, error)
}

type catalogQueries struct {
	store MachineReadStore
	cache CatalogCache
}

func NewCatalogQueries(store MachineReadStore, cache CatalogCache) CatalogQueries {
	return &catalogQueries{store: store, cache: cache}
}

func (q *catalogQueries) ListMachines(ctx context.Context, filter CatalogFilter, page ListPage) ([]MachineListItem, error) {
	key := listCacheKey(filter, page)
	if items, ok := q.cache.GetList(ctx, key); ok {
		return items, nil
	}
	items, err := q.store.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	q.cache.SetList(ctx, key, items)
	return items, nil
}

func (q *catalogQueries) GetMachine(ctx context.Context, id uuid.UUID) (*MachineView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *catalogQueries) CheckAvailability(ctx context.Context, machineID uuid.UUID, startsAt, endsAt time.Time, count int) (*AvailabilityResult, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	slot, err := booking.NewTimeSlot(startsAt, endsAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	view, err := q.store.FindByID(ctx, machineID)
	if err != nil {
		return nil, err
	}

	active, err := q.store.CountActiveInstances(ctx, machineID)
	if err != nil {
		return nil, err
	}
	consumed, err := q.store.CountOverlapping(ctx, machineID, slot.Start(), slot.End())
	if err != nil {
		return nil, err
	}

	free := active - consumed
	if free < 0 {
		free = 0
	}
	result := &AvailabilityResult{
		Available:      free >= count,
		AvailableCount: free,
	}
	if !result.Available {
		result.Reason = ptr.To("not enough instances available for the requested period")
		return result, nil
	}
	result.TotalCostCents = int64(count) * slot.BillableHours() * view.PricePerHourCents
	return result, nil
}

func listCacheKey(filter CatalogFilter, page ListPage) string {
	key := "list"
	if filter.Category != nil {
		key += ":cat=" + *filter.Category
	}
	if filter.Keyword != nil {
		key += ":q=" + *filter.Keyword
	}
	if filter.OwnerID != nil {
		key += ":owner=" + filter.OwnerID.String()
	}
	key += ":" + pageKey(page)
	return key
}

func pageKey(page ListPage) string {
	return "l=" + strconv.Itoa(int(page.Limit)) + ":o=" + strconv.Itoa(int(page.Offset))
}
