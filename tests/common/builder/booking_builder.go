//go:build unit || e2e

package builder

import (
	"time"

	"machine-rental/internal/domain/booking"
	reqdto "machine-rental/internal/handler/dto/request"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ID                uuid.UUID
	MachineID         uuid.UUID
	MachineName       string
	OwnerID           uuid.UUID
	ClientID          uuid.UUID
	ClientName        string
	ClientEmail       string
	StartsAt          time.Time
	EndsAt            time.Time
	RequestedCount    int
	Status            string
	PricePerHourCents int64
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:                uuid.New(),
		MachineID:         uuid.New(),
		MachineName:       "Mini Excavator",
		OwnerID:           uuid.New(),
		ClientID:          uuid.New(),
		ClientName:        "Test Client",
		ClientEmail:       "client@example.com",
		StartsAt:          start,
		EndsAt:            start.Add(8 * time.Hour),
		RequestedCount:    1,
		Status:            string(booking.StatusPendingRenterApproval),
		PricePerHourCents: 12500,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = string(status)
	return b
}

func (b *BookingBuilder) WithClient(clientID uuid.UUID) *BookingBuilder {
	b.ClientID = clientID
	return b
}

func (b *BookingBuilder) WithOwner(ownerID uuid.UUID) *BookingBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.StartsAt = start
	b.EndsAt = end
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(b.PricePerHourCents)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.MachineID, b.ClientID, slot, b.RequestedCount, &price)
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		MachineID:      b.MachineID,
		StartsAt:       b.StartsAt,
		EndsAt:         b.EndsAt,
		RequestedCount: b.RequestedCount,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	price := b.PricePerHourCents
	hours := int64(b.EndsAt.Sub(b.StartsAt).Hours())
	if hours < 1 {
		hours = 1
	}
	return &queries.BookingView{
		ID:                b.ID,
		MachineID:         b.MachineID,
		MachineName:       b.MachineName,
		OwnerID:           b.OwnerID,
		ClientID:          b.ClientID,
		ClientName:        b.ClientName,
		ClientEmail:       b.ClientEmail,
		StartsAt:          b.StartsAt,
		EndsAt:            b.EndsAt,
		RequestedCount:    b.RequestedCount,
		Status:            b.Status,
		PricePerHourCents: &price,
		TotalCostCents:    int64(b.RequestedCount) * hours * price,
		Messages:          []queries.MessageView{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// BuildListItem derives the list row from the full view; overlapping fields are copied by name.
func (b *BookingBuilder) BuildListItem() queries.BookingListItem {
	var item queries.BookingListItem
	_ = copier.Copy(&item, b.BuildView())
	return item
}
