package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/domain/machine"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/pkg/clock"
	"machine-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound        = errs.New("booking not found")
	ErrMachineNotFound        = errs.New("machine not found")
	ErrMachineNotRentable     = errs.New("machine is not accepting bookings")
	ErrBookingConflict        = errs.New("not enough instances available for the requested period")
	ErrInvalidPeriod          = errs.New("rental period is invalid")
	ErrNotMachineOwner        = errs.New("machine belongs to a different owner")
	ErrNotBookingClient       = errs.New("booking belongs to a different client")
	ErrNotBookingParticipant  = errs.New("requester is not a participant of the booking")
	ErrInstanceNotAvailable   = errs.New("instance cannot serve this booking")
	ErrIdempotencyKeyReused   = errs.New("idempotency key was used with a different request")
	ErrIdempotencyInProgress  = errs.New("request with this idempotency key is still processing")
)

const idempotencyKeyTTL = 24 * time.Hour

type CreateBookingParams struct {
	MachineID      uuid.UUID
	StartsAt       time.Time
	EndsAt         time.Time
	RequestedCount int
	Message        *string
}

type CreateBookingResult struct {
	BookingID        uuid.UUID
	AlreadyProcessed bool
}

type ApproveBookingParams struct {
	OwnerID    uuid.UUID
	BookingID  uuid.UUID
	InstanceID uuid.UUID
	Message    *string
}

type DeclineBookingParams struct {
	OwnerID   uuid.UUID
	BookingID uuid.UUID
	Reason    string
}

type CancelBookingParams struct {
	ClientID  uuid.UUID
	BookingID uuid.UUID
}

type SendMessageParams struct {
	ActorID   uuid.UUID
	BookingID uuid.UUID
	Body      string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, clientID, idempotencyKey uuid.UUID, params CreateBookingParams) (*CreateBookingResult, error)
	Approve(ctx context.Context, params ApproveBookingParams) error
	Reject(ctx context.Context, params DeclineBookingParams) error
	SendBack(ctx context.Context, params DeclineBookingParams) error
	Cancel(ctx context.Context, params CancelBookingParams) error
	SendMessage(ctx context.Context, params SendMessageParams) (*booking.Message, error)
}

type bookingCommands struct {
	uow         UnitOfWork
	bookings    BookingRepository
	machines    MachineRepository
	idempotency IdempotencyRepository
	events      EventPublisher
	clock       clock.Clock
}

func NewBookingCommands(
	uow UnitOfWork,
	bookings BookingRepository,
	machines MachineRepository,
	idempotency IdempotencyRepository,
	events EventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommands{
		uow:         uow,
		bookings:    bookings,
		machines:    machines,
		idempotency: idempotency,
		events:      events,
		clock:       clk,
	}
}

func (c *bookingCommands) CreateBooking(ctx context.Context, clientID, idempotencyKey uuid.UUID, params CreateBookingParams) (*CreateBookingResult, error) {
	slot, err := booking.NewTimeSlot(params.StartsAt, params.EndsAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	requestHash, err := hashCreateRequest(clientID, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash booking request")
	}

	var (
		result CreateBookingResult
		event  BookingEvent
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inserted, err := c.idempotency.TryInsert(ctx, tx, idempotencyKey, clientID, requestHash, c.clock.Now().Add(idempotencyKeyTTL))
		if err != nil {
			return err
		}
		if !inserted {
			replay, err := c.replayIdempotent(ctx, tx, idempotencyKey, clientID, requestHash)
			if err != nil {
				return err
			}
			result = *replay
			return nil
		}

		m, err := c.machines.FindByID(ctx, tx, params.MachineID)
		if err != nil {
			return markNotFound(err, ErrMachineNotFound)
		}
		if !m.IsActive() {
			return ErrMachineNotRentable
		}

		if err := c.bookings.LockMachine(ctx, tx, m.ID()); err != nil {
			return err
		}

		active, err := c.machines.CountActiveInstances(ctx, tx, m.ID())
		if err != nil {
			return err
		}
		consumed, err := c.bookings.CountCapacityConsumed(ctx, tx, m.ID(), slot.Start(), slot.End(), nil)
		if err != nil {
			return err
		}
		if active-consumed < params.RequestedCount {
			return ErrBookingConflict
		}

		price, err := booking.NewMoney(m.PricePerHourCents())
		if err != nil {
			return err
		}
		b, err := booking.NewBooking(m.ID(), clientID, slot, params.RequestedCount, &price)
		if err != nil {
			return err
		}
		if err := c.bookings.Create(ctx, tx, b); err != nil {
			return err
		}
		if params.Message != nil {
			msg, err := booking.NewMessage(b.ID(), clientID, *params.Message)
			if err != nil {
				return err
			}
			if err := c.bookings.CreateMessage(ctx, tx, msg); err != nil {
				return err
			}
		}
		if err := c.idempotency.MarkCompleted(ctx, tx, idempotencyKey, clientID, b.ID()); err != nil {
			return err
		}

		result = CreateBookingResult{BookingID: b.ID()}
		event = c.newEvent("booking.requested", b, m.OwnerID())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyProcessed {
		c.events.Publish(ctx, event)
	}
	return &result, nil
}

// replayIdempotent resolves a duplicate submit: same payload returns the
// original booking, a different payload or an in-flight request is rejected.
func (c *bookingCommands) replayIdempotent(ctx context.Context, tx db.DBTX, key, clientID uuid.UUID, requestHash string) (*CreateBookingResult, error) {
	record, err := c.idempotency.Get(ctx, tx, key, clientID)
	if err != nil {
		return nil, err
	}
	if record.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if record.Status != IdempotencyCompleted || record.ResultBookingID == nil {
		return nil, ErrIdempotencyInProgress
	}
	return &CreateBookingResult{
		BookingID:        *record.ResultBookingID,
		AlreadyProcessed: true,
	}, nil
}

func (c *bookingCommands) Approve(ctx context.Context, params ApproveBookingParams) error {
	var event BookingEvent
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		b, m, err := c.loadForOwner(ctx, tx, params.BookingID, params.OwnerID)
		if err != nil {
			return err
		}

		inst, err := c.machines.FindInstanceByID(ctx, tx, params.InstanceID)
		if err != nil {
			return markNotFound(err, ErrInstanceNotAvailable)
		}
		if inst.MachineID() != b.MachineID() || !inst.IsSchedulable() {
			return ErrInstanceNotAvailable
		}
		if err := b.AssignInstance(inst.ID()); err != nil {
			return err
		}
		if err := b.Apply(booking.ActionApprove, booking.ActorOwner, nil); err != nil {
			return err
		}
		if err := c.bookings.Update(ctx, tx, b); err != nil {
			return err
		}
		if params.Message != nil {
			msg, err := booking.NewMessage(b.ID(), params.OwnerID, *params.Message)
			if err != nil {
				return err
			}
			if err := c.bookings.CreateMessage(ctx, tx, msg); err != nil {
				return err
			}
		}

		event = c.newEvent("booking.approved", b, m.OwnerID())
		return nil
	})
	if err != nil {
		return err
	}
	c.events.Publish(ctx, event)
	return nil
}

func (c *bookingCommands) Reject(ctx context.Context, params DeclineBookingParams) error {
	return c.decline(ctx, params, booking.ActionReject, "booking.rejected")
}

func (c *bookingCommands) SendBack(ctx context.Context, params DeclineBookingParams) error {
	return c.decline(ctx, params, booking.ActionSendBack, "booking.sent_back")
}

// decline covers reject and send-back: both require a reason, which is also
// recorded as an owner message on the booking thread.
func (c *bookingCommands) decline(ctx context.Context, params DeclineBookingParams, action booking.Action, eventName string) error {
	reason, err := booking.NewReason(params.Reason)
	if err != nil {
		return err
	}

	var event BookingEvent
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		b, m, err := c.loadForOwner(ctx, tx, params.BookingID, params.OwnerID)
		if err != nil {
			return err
		}
		if err := b.Apply(action, booking.ActorOwner, &reason); err != nil {
			return err
		}
		if err := c.bookings.Update(ctx, tx, b); err != nil {
			return err
		}
		msg, err := booking.NewMessage(b.ID(), params.OwnerID, reason.String())
		if err != nil {
			return err
		}
		if err := c.bookings.CreateMessage(ctx, tx, msg); err != nil {
			return err
		}

		event = c.newEvent(eventName, b, m.OwnerID())
		return nil
	})
	if err != nil {
		return err
	}
	c.events.Publish(ctx, event)
	return nil
}

func (c *bookingCommands) Cancel(ctx context.Context, params CancelBookingParams) error {
	var event BookingEvent
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		b, err := c.bookings.FindByID(ctx, tx, params.BookingID)
		if err != nil {
			return markNotFound(err, ErrBookingNotFound)
		}
		if b.ClientID() != params.ClientID {
			return ErrNotBookingClient
		}
		if err := b.Apply(booking.ActionCancel, booking.ActorClient, nil); err != nil {
			return err
		}
		if err := c.bookings.Update(ctx, tx, b); err != nil {
			return err
		}

		m, err := c.machines.FindByID(ctx, tx, b.MachineID())
		if err != nil {
			return markNotFound(err, ErrMachineNotFound)
		}
		event = c.newEvent("booking.canceled", b, m.OwnerID())
		return nil
	})
	if err != nil {
		return err
	}
	c.events.Publish(ctx, event)
	return nil
}

func (c *bookingCommands) SendMessage(ctx context.Context, params SendMessageParams) (*booking.Message, error) {
	var msg *booking.Message
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		b, err := c.bookings.FindByID(ctx, tx, params.BookingID)
		if err != nil {
			return markNotFound(err, ErrBookingNotFound)
		}
		m, err := c.machines.FindByID(ctx, tx, b.MachineID())
		if err != nil {
			return markNotFound(err, ErrMachineNotFound)
		}
		if params.ActorID != b.ClientID() && params.ActorID != m.OwnerID() {
			return ErrNotBookingParticipant
		}

		msg, err = booking.NewMessage(b.ID(), params.ActorID, params.Body)
		if err != nil {
			return err
		}
		return c.bookings.CreateMessage(ctx, tx, msg)
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// loadForOwner fetches the booking with its machine and verifies ownership.
func (c *bookingCommands) loadForOwner(ctx context.Context, tx db.DBTX, bookingID, ownerID uuid.UUID) (*booking.Booking, *machine.Machine, error) {
	b, err := c.bookings.FindByID(ctx, tx, bookingID)
	if err != nil {
		return nil, nil, markNotFound(err, ErrBookingNotFound)
	}
	m, err := c.machines.FindByID(ctx, tx, b.MachineID())
	if err != nil {
		return nil, nil, markNotFound(err, ErrMachineNotFound)
	}
	if !m.IsOwnedBy(ownerID) {
		return nil, nil, ErrNotMachineOwner
	}
	return b, m, nil
}

func (c *bookingCommands) newEvent(name string, b *booking.Booking, ownerID uuid.UUID) BookingEvent {
	return BookingEvent{
		Name:       name,
		BookingID:  b.ID(),
		MachineID:  b.MachineID(),
		ClientID:   b.ClientID(),
		OwnerID:    ownerID,
		Status:     b.Status().String(),
		InstanceID: b.MachineInstanceID(),
		OccurredAt: c.clock.Now(),
	}
}

func hashCreateRequest(clientID uuid.UUID, params CreateBookingParams) (string, error) {
	payload, err := json.Marshal(struct {
		ClientID       uuid.UUID `json:"client_id"`
		MachineID      uuid.UUID `json:"machine_id"`
		StartsAt       int64     `json:"starts_at"`
		EndsAt         int64     `json:"ends_at"`
		RequestedCount int       `json:"requested_count"`
	}{
		ClientID:       clientID,
		MachineID:      params.MachineID,
		StartsAt:       params.StartsAt.Unix(),
		EndsAt:         params.EndsAt.Unix(),
		RequestedCount: params.RequestedCount,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
