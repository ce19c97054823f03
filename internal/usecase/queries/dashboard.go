package queries

import (
	"context"

	"machine-rental/internal/domain/analytics"
	"machine-rental/internal/domain/booking"
	"machine-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

type DashboardReadStore interface {
	Totals(ctx context.Context, ownerID uuid.UUID) (*DashboardTotals, error)
	BookingRecords(ctx context.Context, ownerID uuid.UUID) ([]analytics.BookingRecord, error)
	MachineRecords(ctx context.Context, ownerID uuid.UUID) ([]analytics.MachineRecord, error)
}

type DashboardQueries interface {
	GetOwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*DashboardView, error)
}

type dashboardQueries struct {
	store DashboardReadStore
	clock clock.Clock
}

func NewDashboardQueries(store DashboardReadStore, clk clock.Clock) DashboardQueries {
	return &dashboardQueries{store: store, clock: clk}
}

func (q *dashboardQueries) GetOwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*DashboardView, error) {
	totals, err := q.store.Totals(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	bookings, err := q.store.BookingRecords(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	machines, err := q.store.MachineRecords(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Only approved bookings earn money; the total spans all time while the
	// chart keeps its six-month window.
	var approved []analytics.BookingRecord
	for _, b := range bookings {
		if b.Status == booking.StatusApprovedByRenter {
			approved = append(approved, b)
			totals.TotalRevenueCents += b.RevenueCents()
		}
	}

	return &DashboardView{
		Totals:      *totals,
		Revenue:     analytics.RevenueSeries(approved, q.clock.Now()),
		StatusMix:   analytics.StatusMix(bookings),
		Utilization: analytics.UtilizationRanking(machines),
	}, nil
}
