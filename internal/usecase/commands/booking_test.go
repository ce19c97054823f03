//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/domain/machine"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/pkg/clock"
	"machine-rental/internal/pkg/ptr"
	"machine-rental/internal/usecase/commands"
	commandsmock "machine-rental/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUoW         *commandsmock.MockUnitOfWork
	mockBookings    *commandsmock.MockBookingRepository
	mockMachines    *commandsmock.MockMachineRepository
	mockIdempotency *commandsmock.MockIdempotencyRepository
	mockEvents      *commandsmock.MockEventPublisher
	clock           *clock.MockClock
	commands        commands.BookingCommands

	clientID uuid.UUID
	ownerID  uuid.UUID
	startsAt time.Time
	endsAt   time.Time
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = commandsmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockMachines = commandsmock.NewMockMachineRepository(s.mockCtrl)
	s.mockIdempotency = commandsmock.NewMockIdempotencyRepository(s.mockCtrl)
	s.mockEvents = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	s.commands = commands.NewBookingCommands(
		s.mockUoW, s.mockBookings, s.mockMachines, s.mockIdempotency, s.mockEvents, s.clock,
	)

	s.clientID = uuid.New()
	s.ownerID = uuid.New()
	s.startsAt = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	s.endsAt = s.startsAt.Add(8 * time.Hour)

	// Every command runs inside a transaction; the mock just invokes the
	// closure so the repository expectations do the real checking.
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) buildMachine() *machine.Machine {
	m, err := machine.NewMachine(s.ownerID, "Mini Excavator", "EXC-001", "3.5t mini excavator", "excavator", 12500, machine.Specs{})
	s.Require().NoError(err)
	return m
}

func (s *BookingCommandsTestSuite) buildPendingBooking(machineID uuid.UUID) *booking.Booking {
	slot, err := booking.NewTimeSlot(s.startsAt, s.endsAt)
	s.Require().NoError(err)
	price, err := booking.NewMoney(12500)
	s.Require().NoError(err)
	b, err := booking.NewBooking(machineID, s.clientID, slot, 1, &price)
	s.Require().NoError(err)
	return b
}

func (s *BookingCommandsTestSuite) createParams(machineID uuid.UUID) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		MachineID:      machineID,
		StartsAt:       s.startsAt,
		EndsAt:         s.endsAt,
		RequestedCount: 2,
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success: locks, checks capacity, persists, publishes", func() {
		m := s.buildMachine()
		key := uuid.New()
		params := s.createParams(m.ID())

		s.mockIdempotency.EXPECT().
			TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), s.clock.Now().Add(24*time.Hour)).
			Return(true, nil).Times(1)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockBookings.EXPECT().LockMachine(gomock.Any(), gomock.Any(), m.ID()).Return(nil).Times(1)
		s.mockMachines.EXPECT().CountActiveInstances(gomock.Any(), gomock.Any(), m.ID()).Return(3, nil).Times(1)
		s.mockBookings.EXPECT().
			CountCapacityConsumed(gomock.Any(), gomock.Any(), m.ID(), s.startsAt, s.endsAt, nil).
			Return(1, nil).Times(1)

		var createdID uuid.UUID
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
				createdID = b.ID()
				s.Equal(booking.StatusPendingRenterApproval, b.Status())
				s.Equal(2, b.RequestedCount())
				return nil
			}).Times(1)
		s.mockIdempotency.EXPECT().
			MarkCompleted(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any()).
			Return(nil).Times(1)
		s.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event commands.BookingEvent) {
				s.Equal("booking.requested", event.Name)
				s.Equal(s.ownerID, event.OwnerID)
				s.Equal(s.clientID, event.ClientID)
			}).Times(1)

		result, err := s.commands.CreateBooking(ctx, s.clientID, key, params)
		s.Require().NoError(err)
		s.Equal(createdID, result.BookingID)
		s.False(result.AlreadyProcessed)
	})

	s.Run("an initial message lands on the booking thread", func() {
		m := s.buildMachine()
		key := uuid.New()
		params := s.createParams(m.ID())
		params.Message = ptr.To("Need it for a weekend job")

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockBookings.EXPECT().LockMachine(gomock.Any(), gomock.Any(), m.ID()).Return(nil)
		s.mockMachines.EXPECT().CountActiveInstances(gomock.Any(), gomock.Any(), m.ID()).Return(3, nil)
		s.mockBookings.EXPECT().CountCapacityConsumed(gomock.Any(), gomock.Any(), m.ID(), s.startsAt, s.endsAt, nil).Return(0, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.mockBookings.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, msg *booking.Message) error {
				s.Equal(s.clientID, msg.SenderID())
				s.Equal("Need it for a weekend job", msg.Body())
				return nil
			}).Times(1)
		s.mockIdempotency.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any()).Return(nil)
		s.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := s.commands.CreateBooking(ctx, s.clientID, key, params)
		s.NoError(err)
	})

	s.Run("conflict: demand exceeds free capacity", func() {
		m := s.buildMachine()
		key := uuid.New()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockBookings.EXPECT().LockMachine(gomock.Any(), gomock.Any(), m.ID()).Return(nil)
		s.mockMachines.EXPECT().CountActiveInstances(gomock.Any(), gomock.Any(), m.ID()).Return(2, nil)
		s.mockBookings.EXPECT().CountCapacityConsumed(gomock.Any(), gomock.Any(), m.ID(), s.startsAt, s.endsAt, nil).Return(1, nil)

		_, err := s.commands.CreateBooking(ctx, s.clientID, key, s.createParams(m.ID()))
		s.ErrorIs(err, commands.ErrBookingConflict)
	})

	s.Run("inactive machines take no bookings", func() {
		m := s.buildMachine()
		s.Require().NoError(m.Patch(nil, nil, nil, nil, nil, ptr.To(false)))
		key := uuid.New()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.commands.CreateBooking(ctx, s.clientID, key, s.createParams(m.ID()))
		s.ErrorIs(err, commands.ErrMachineNotRentable)
	})

	s.Run("unknown machine", func() {
		machineID := uuid.New()
		key := uuid.New()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), machineID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "machine not found"))

		_, err := s.commands.CreateBooking(ctx, s.clientID, key, s.createParams(machineID))
		s.ErrorIs(err, commands.ErrMachineNotFound)
	})

	s.Run("reversed period fails before touching the store", func() {
		params := s.createParams(uuid.New())
		params.StartsAt, params.EndsAt = params.EndsAt, params.StartsAt

		_, err := s.commands.CreateBooking(ctx, s.clientID, uuid.New(), params)
		s.ErrorIs(err, commands.ErrInvalidPeriod)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingIdempotency() {
	ctx := context.Background()

	s.Run("retry of a completed request replays the original booking", func() {
		machineID := uuid.New()
		key := uuid.New()
		params := s.createParams(machineID)
		originalID := uuid.New()

		var storedHash string
		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _, _ uuid.UUID, hash string, _ time.Time) (bool, error) {
				storedHash = hash
				return false, nil
			})
		s.mockIdempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.clientID).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
				return &commands.IdempotencyRecord{
					Key:             key,
					UserID:          s.clientID,
					RequestHash:     storedHash,
					Status:          commands.IdempotencyCompleted,
					ResultBookingID: &originalID,
				}, nil
			})

		result, err := s.commands.CreateBooking(ctx, s.clientID, key, params)
		s.Require().NoError(err)
		s.Equal(originalID, result.BookingID)
		s.True(result.AlreadyProcessed)
	})

	s.Run("same key with a different payload is rejected", func() {
		key := uuid.New()

		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockIdempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.clientID).
			Return(&commands.IdempotencyRecord{
				Key:         key,
				UserID:      s.clientID,
				RequestHash: "some-other-request",
				Status:      commands.IdempotencyCompleted,
			}, nil)

		_, err := s.commands.CreateBooking(ctx, s.clientID, key, s.createParams(uuid.New()))
		s.ErrorIs(err, commands.ErrIdempotencyKeyReused)
	})

	s.Run("retry while the first attempt is still in flight", func() {
		key := uuid.New()
		params := s.createParams(uuid.New())

		var storedHash string
		s.mockIdempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, s.clientID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _, _ uuid.UUID, hash string, _ time.Time) (bool, error) {
				storedHash = hash
				return false, nil
			})
		s.mockIdempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.clientID).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
				return &commands.IdempotencyRecord{
					Key:         key,
					UserID:      s.clientID,
					RequestHash: storedHash,
					Status:      commands.IdempotencyProcessing,
				}, nil
			})

		_, err := s.commands.CreateBooking(ctx, s.clientID, key, params)
		s.ErrorIs(err, commands.ErrIdempotencyInProgress)
	})
}

func (s *BookingCommandsTestSuite) TestApprove() {
	ctx := context.Background()

	s.Run("success assigns the instance and publishes", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())
		inst, err := machine.NewInstance(m.ID(), "EXC-001-A")
		s.Require().NoError(err)

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockMachines.EXPECT().FindInstanceByID(gomock.Any(), gomock.Any(), inst.ID()).Return(inst, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *booking.Booking) error {
				s.Equal(booking.StatusApprovedByRenter, updated.Status())
				s.Require().NotNil(updated.MachineInstanceID())
				s.Equal(inst.ID(), *updated.MachineInstanceID())
				return nil
			}).Times(1)
		s.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event commands.BookingEvent) {
				s.Equal("booking.approved", event.Name)
			}).Times(1)

		err = s.commands.Approve(ctx, commands.ApproveBookingParams{
			OwnerID:    s.ownerID,
			BookingID:  b.ID(),
			InstanceID: inst.ID(),
		})
		s.NoError(err)
	})

	s.Run("instance from a different machine is refused", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())
		foreign, err := machine.NewInstance(uuid.New(), "OTHER-1")
		s.Require().NoError(err)

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockMachines.EXPECT().FindInstanceByID(gomock.Any(), gomock.Any(), foreign.ID()).Return(foreign, nil)

		err = s.commands.Approve(ctx, commands.ApproveBookingParams{
			OwnerID:    s.ownerID,
			BookingID:  b.ID(),
			InstanceID: foreign.ID(),
		})
		s.ErrorIs(err, commands.ErrInstanceNotAvailable)
	})

	s.Run("instance under maintenance is refused", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())
		inst, err := machine.NewInstance(m.ID(), "EXC-001-B")
		s.Require().NoError(err)
		s.Require().NoError(inst.SetStatus(machine.InstanceMaintenance))

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockMachines.EXPECT().FindInstanceByID(gomock.Any(), gomock.Any(), inst.ID()).Return(inst, nil)

		err = s.commands.Approve(ctx, commands.ApproveBookingParams{
			OwnerID:    s.ownerID,
			BookingID:  b.ID(),
			InstanceID: inst.ID(),
		})
		s.ErrorIs(err, commands.ErrInstanceNotAvailable)
	})

	s.Run("someone else's machine looks like a missing booking", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)

		err := s.commands.Approve(ctx, commands.ApproveBookingParams{
			OwnerID:    uuid.New(),
			BookingID:  b.ID(),
			InstanceID: uuid.New(),
		})
		s.ErrorIs(err, commands.ErrNotMachineOwner)
	})
}

func (s *BookingCommandsTestSuite) TestReject() {
	ctx := context.Background()

	s.Run("reject stores the reason as an owner message", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *booking.Booking) error {
				s.Equal(booking.StatusRejectedByRenter, updated.Status())
				return nil
			})
		s.mockBookings.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, msg *booking.Message) error {
				s.Equal(s.ownerID, msg.SenderID())
				s.Equal("machine is booked solid that week", msg.Body())
				return nil
			})
		s.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event commands.BookingEvent) {
				s.Equal("booking.rejected", event.Name)
			})

		err := s.commands.Reject(ctx, commands.DeclineBookingParams{
			OwnerID:   s.ownerID,
			BookingID: b.ID(),
			Reason:    "machine is booked solid that week",
		})
		s.NoError(err)
	})

	s.Run("a blank reason never reaches the store", func() {
		err := s.commands.Reject(ctx, commands.DeclineBookingParams{
			OwnerID:   s.ownerID,
			BookingID: uuid.New(),
			Reason:    "   ",
		})
		s.Error(err)
	})

	s.Run("an approved booking cannot be rejected", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())
		s.Require().NoError(b.AssignInstance(uuid.New()))
		s.Require().NoError(b.Apply(booking.ActionApprove, booking.ActorOwner, nil))

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)

		err := s.commands.Reject(ctx, commands.DeclineBookingParams{
			OwnerID:   s.ownerID,
			BookingID: b.ID(),
			Reason:    "too late",
		})
		s.ErrorIs(err, booking.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestSendBack() {
	ctx := context.Background()

	m := s.buildMachine()
	b := s.buildPendingBooking(m.ID())

	s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
	s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
	s.mockBookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, updated *booking.Booking) error {
			s.Equal(booking.StatusSentBackToClient, updated.Status())
			return nil
		})
	s.mockBookings.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event commands.BookingEvent) {
			s.Equal("booking.sent_back", event.Name)
		})

	err := s.commands.SendBack(ctx, commands.DeclineBookingParams{
		OwnerID:   s.ownerID,
		BookingID: b.ID(),
		Reason:    "please shorten the rental window",
	})
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()

	s.Run("client cancels a pending booking", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockBookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *booking.Booking) error {
				s.Equal(booking.StatusCanceledByClient, updated.Status())
				return nil
			})
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event commands.BookingEvent) {
				s.Equal("booking.canceled", event.Name)
			})

		err := s.commands.Cancel(ctx, commands.CancelBookingParams{
			ClientID:  s.clientID,
			BookingID: b.ID(),
		})
		s.NoError(err)
	})

	s.Run("only the requesting client may cancel", func() {
		b := s.buildPendingBooking(uuid.New())

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Cancel(ctx, commands.CancelBookingParams{
			ClientID:  uuid.New(),
			BookingID: b.ID(),
		})
		s.ErrorIs(err, commands.ErrNotBookingClient)
	})

	s.Run("approved bookings are no longer cancelable", func() {
		b := s.buildPendingBooking(uuid.New())
		s.Require().NoError(b.AssignInstance(uuid.New()))
		s.Require().NoError(b.Apply(booking.ActionApprove, booking.ActorOwner, nil))

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)

		err := s.commands.Cancel(ctx, commands.CancelBookingParams{
			ClientID:  s.clientID,
			BookingID: b.ID(),
		})
		s.ErrorIs(err, booking.ErrInvalidTransition)
	})
}

func (s *BookingCommandsTestSuite) TestSendMessage() {
	ctx := context.Background()

	s.Run("either participant may write", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)
		s.mockBookings.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		msg, err := s.commands.SendMessage(ctx, commands.SendMessageParams{
			ActorID:   s.ownerID,
			BookingID: b.ID(),
			Body:      "delivery gate code is 4412",
		})
		s.Require().NoError(err)
		s.Equal(s.ownerID, msg.SenderID())
		s.Equal("delivery gate code is 4412", msg.Body())
	})

	s.Run("outsiders are shut out", func() {
		m := s.buildMachine()
		b := s.buildPendingBooking(m.ID())

		s.mockBookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID()).Return(b, nil)
		s.mockMachines.EXPECT().FindByID(gomock.Any(), gomock.Any(), m.ID()).Return(m, nil)

		_, err := s.commands.SendMessage(ctx, commands.SendMessageParams{
			ActorID:   uuid.New(),
			BookingID: b.ID(),
			Body:      "hello",
		})
		s.ErrorIs(err, commands.ErrNotBookingParticipant)
	})
}
