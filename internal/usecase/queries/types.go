package queries

import (
	"time"

	"machine-rental/internal/domain/analytics"
	"machine-rental/internal/domain/machine"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                uuid.UUID
	MachineID         uuid.UUID
	MachineName       string
	OwnerID           uuid.UUID
	MachineInstanceID *uuid.UUID
	InstanceCode      *string
	ClientID          uuid.UUID
	ClientName        string
	ClientEmail       string
	StartsAt          time.Time
	EndsAt            time.Time
	RequestedCount    int
	Status            string
	PricePerHourCents *int64
	TotalCostCents    int64
	Messages          []MessageView
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BookingListItem struct {
	ID                uuid.UUID
	MachineID         uuid.UUID
	MachineName       string
	ClientName        string
	StartsAt          time.Time
	EndsAt            time.Time
	RequestedCount    int
	Status            string
	PricePerHourCents *int64
	CreatedAt         time.Time
}

type MessageView struct {
	ID        uuid.UUID
	SenderID  uuid.UUID
	Body      string
	CreatedAt time.Time
}

type MachineStats struct {
	InstanceCount       int
	ActiveInstanceCount int
	BookingCount        int
}

type MachineView struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	OwnerName         string
	Name              string
	Code              string
	Description       string
	Category          string
	PricePerHourCents int64
	Specs             machine.Specs
	AverageRating     *float64
	Stats             MachineStats
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type MachineListItem struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	Code              string
	Category          string
	PricePerHourCents int64
	AverageRating     *float64
	ActiveInstances   int
	TotalInstances    int
}

type AvailabilityResult struct {
	Available      bool
	AvailableCount int
	TotalCostCents int64
	Reason         *string
}

type DashboardTotals struct {
	TotalMachines     int
	ActiveBookings    int
	PendingBookings   int
	TotalRevenueCents int64
}

type DashboardView struct {
	Totals      DashboardTotals
	Revenue     []analytics.RevenueBucket
	StatusMix   []analytics.StatusCount
	Utilization []analytics.UtilizationEntry
}

type AuthorizedUserView struct {
	ID       uuid.UUID
	Email    string
	Role     string
	Name     string
	IsActive bool
}

type ProfileView struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
	Image   *string
}

// ListPage bounds offset pagination for the list endpoints.
type ListPage struct {
	Limit  int32
	Offset int32
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func NewListPage(page, limit int) ListPage {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if page < 1 {
		page = 1
	}
	return ListPage{
		Limit:  int32(limit),
		Offset: int32((page - 1) * limit),
	}
}
