package commands

import (
	"context"
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/domain/machine"
	"machine-rental/internal/domain/user"
	"machine-rental/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside a transaction. Serialization conflicts are
// retried by the implementation; fn must be side-effect free until commit.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	CreateMessage(ctx context.Context, tx db.DBTX, m *booking.Message) error
	// CountCapacityConsumed counts instances held by pending or approved
	// bookings overlapping [startsAt, endsAt), excluding excludeID when set.
	CountCapacityConsumed(ctx context.Context, tx db.DBTX, machineID uuid.UUID, startsAt, endsAt time.Time, excludeID *uuid.UUID) (int, error)
	// LockMachine serializes concurrent booking attempts on one machine for
	// the rest of the transaction.
	LockMachine(ctx context.Context, tx db.DBTX, machineID uuid.UUID) error
}

type MachineRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *machine.Machine) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*machine.Machine, error)
	Update(ctx context.Context, tx db.DBTX, m *machine.Machine) error
	CreateInstance(ctx context.Context, tx db.DBTX, inst *machine.Instance) error
	FindInstanceByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*machine.Instance, error)
	UpdateInstance(ctx context.Context, tx db.DBTX, inst *machine.Instance) error
	CountActiveInstances(ctx context.Context, tx db.DBTX, machineID uuid.UUID) (int, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	RequestHash     string
	Status          IdempotencyStatus
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

type IdempotencyRepository interface {
	// TryInsert returns false when the key already exists.
	TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, tx db.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error
}

// BookingEvent is published to the message broker after a state change
// commits. Delivery is best effort.
type BookingEvent struct {
	Name       string     `json:"name"`
	BookingID  uuid.UUID  `json:"booking_id"`
	MachineID  uuid.UUID  `json:"machine_id"`
	ClientID   uuid.UUID  `json:"client_id"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	Status     string     `json:"status"`
	InstanceID *uuid.UUID `json:"instance_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event BookingEvent)
}

// CatalogInvalidator drops cached catalog entries after machine mutations.
type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context)
}
