package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequestedCount = errors.New("requested count must be positive")
	ErrEmptyMessage          = errors.New("message content cannot be empty")
	ErrInstanceRequired      = errors.New("a machine instance must be assigned on approval")
)

type Booking struct {
	id                uuid.UUID
	machineID         uuid.UUID
	machineInstanceID *uuid.UUID
	clientID          uuid.UUID
	timeSlot          TimeSlot
	requestedCount    int
	status            Status
	pricePerHour      *Money
	createdAt         time.Time
	updatedAt         time.Time
}

func NewBooking(
	machineID uuid.UUID,
	clientID uuid.UUID,
	slot TimeSlot,
	requestedCount int,
	pricePerHour *Money,
) (*Booking, error) {
	if requestedCount <= 0 {
		return nil, ErrInvalidRequestedCount
	}

	return &Booking{
		id:             uuid.New(),
		machineID:      machineID,
		clientID:       clientID,
		timeSlot:       slot,
		requestedCount: requestedCount,
		status:         StatusPendingRenterApproval,
		pricePerHour:   pricePerHour,
	}, nil
}

func ReconstructBooking(
	id, machineID uuid.UUID,
	machineInstanceID *uuid.UUID,
	clientID uuid.UUID,
	slot TimeSlot,
	requestedCount int,
	status Status,
	pricePerHour *Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		machineID:         machineID,
		machineInstanceID: machineInstanceID,
		clientID:          clientID,
		timeSlot:          slot,
		requestedCount:    requestedCount,
		status:            status,
		pricePerHour:      pricePerHour,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Apply moves the booking through the transition table. Reject and send-back
// demand a reason; approve demands an assigned instance.
func (b *Booking) Apply(action Action, actor Actor, reason *Reason) error {
	if action.RequiresReason() && (reason == nil || reason.IsEmpty()) {
		return ErrReasonRequired
	}

	next, err := Transition(b.status, action, actor)
	if err != nil {
		return err
	}

	if action == ActionApprove && b.machineInstanceID == nil {
		return ErrInstanceRequired
	}

	b.status = next
	return nil
}

// AssignInstance allocates a concrete unit ahead of approval.
func (b *Booking) AssignInstance(instanceID uuid.UUID) error {
	if b.status != StatusPendingRenterApproval {
		return ErrInvalidTransition
	}
	b.machineInstanceID = &instanceID
	return nil
}

func (b *Booking) AllowedActions(actor Actor) []Action {
	return AllowedActions(b.status, actor)
}

// TotalCostCents is requestedCount units for the billable hours of the slot.
// Bookings without an agreed rate cost nothing until one is set.
func (b *Booking) TotalCostCents() int64 {
	if b.pricePerHour == nil {
		return 0
	}
	return int64(b.requestedCount) * b.timeSlot.BillableHours() * b.pricePerHour.Cents()
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) MachineID() uuid.UUID          { return b.machineID }
func (b *Booking) MachineInstanceID() *uuid.UUID { return b.machineInstanceID }
func (b *Booking) ClientID() uuid.UUID           { return b.clientID }
func (b *Booking) TimeSlot() TimeSlot            { return b.timeSlot }
func (b *Booking) RequestedCount() int           { return b.requestedCount }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) PricePerHour() *Money          { return b.pricePerHour }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }

// Message is one entry of the free-text thread on a booking. Sending is
// allowed in any status; ordering is ascending by creation time.
type Message struct {
	id        uuid.UUID
	bookingID uuid.UUID
	senderID  uuid.UUID
	body      string
	createdAt time.Time
}

func NewMessage(bookingID, senderID uuid.UUID, body string) (*Message, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	return &Message{
		id:        uuid.New(),
		bookingID: bookingID,
		senderID:  senderID,
		body:      trimmed,
	}, nil
}

func ReconstructMessage(id, bookingID, senderID uuid.UUID, body string, createdAt time.Time) *Message {
	return &Message{
		id:        id,
		bookingID: bookingID,
		senderID:  senderID,
		body:      body,
		createdAt: createdAt,
	}
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) BookingID() uuid.UUID { return m.bookingID }
func (m *Message) SenderID() uuid.UUID  { return m.senderID }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
