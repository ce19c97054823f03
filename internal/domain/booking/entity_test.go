//go:build unit

package booking_test

import (
	"testing"
	"time"

	"machine-rental/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func mustMoney(t *testing.T, cents int64) *booking.Money {
	t.Helper()
	m, err := booking.NewMoney(cents)
	require.NoError(t, err)
	return &m
}

func TestNewBooking(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	slot := mustSlot(t, start, start.Add(2*time.Hour))

	t.Run("starts pending with no instance", func(t *testing.T) {
		b, err := booking.NewBooking(uuid.New(), uuid.New(), slot, 1, mustMoney(t, 500))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPendingRenterApproval, b.Status())
		assert.Nil(t, b.MachineInstanceID())
	})

	t.Run("requested count must be positive", func(t *testing.T) {
		for _, count := range []int{0, -1} {
			_, err := booking.NewBooking(uuid.New(), uuid.New(), slot, count, nil)
			assert.ErrorIs(t, err, booking.ErrInvalidRequestedCount)
		}
	})
}

func TestBookingApply(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	slot := mustSlot(t, start, start.Add(2*time.Hour))

	newPending := func(t *testing.T) *booking.Booking {
		b, err := booking.NewBooking(uuid.New(), uuid.New(), slot, 1, mustMoney(t, 500))
		require.NoError(t, err)
		return b
	}

	t.Run("approve requires an assigned instance", func(t *testing.T) {
		b := newPending(t)
		err := b.Apply(booking.ActionApprove, booking.ActorOwner, nil)
		require.ErrorIs(t, err, booking.ErrInstanceRequired)

		require.NoError(t, b.AssignInstance(uuid.New()))
		require.NoError(t, b.Apply(booking.ActionApprove, booking.ActorOwner, nil))
		assert.Equal(t, booking.StatusApprovedByRenter, b.Status())
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		b := newPending(t)
		err := b.Apply(booking.ActionReject, booking.ActorOwner, nil)
		require.ErrorIs(t, err, booking.ErrReasonRequired)

		reason, err := booking.NewReason("machine already committed")
		require.NoError(t, err)
		require.NoError(t, b.Apply(booking.ActionReject, booking.ActorOwner, &reason))
		assert.Equal(t, booking.StatusRejectedByRenter, b.Status())
	})

	t.Run("send back requires a reason", func(t *testing.T) {
		b := newPending(t)
		err := b.Apply(booking.ActionSendBack, booking.ActorOwner, nil)
		require.ErrorIs(t, err, booking.ErrReasonRequired)
	})

	t.Run("cancel after send back", func(t *testing.T) {
		b := newPending(t)
		reason, err := booking.NewReason("please shorten the range")
		require.NoError(t, err)
		require.NoError(t, b.Apply(booking.ActionSendBack, booking.ActorOwner, &reason))
		require.NoError(t, b.Apply(booking.ActionCancel, booking.ActorClient, nil))
		assert.Equal(t, booking.StatusCanceledByClient, b.Status())
	})

	t.Run("no second transition once decided", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.AssignInstance(uuid.New()))
		require.NoError(t, b.Apply(booking.ActionApprove, booking.ActorOwner, nil))

		err := b.Apply(booking.ActionApprove, booking.ActorOwner, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		err = b.Apply(booking.ActionCancel, booking.ActorClient, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("instance cannot be reassigned after approval", func(t *testing.T) {
		b := newPending(t)
		require.NoError(t, b.AssignInstance(uuid.New()))
		require.NoError(t, b.Apply(booking.ActionApprove, booking.ActorOwner, nil))
		assert.ErrorIs(t, b.AssignInstance(uuid.New()), booking.ErrInvalidTransition)
	})
}

func TestBookingTotalCost(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		end   time.Time
		count int
		price *int64
		want  int64
	}{
		{name: "two hours at 500", end: start.Add(2 * time.Hour), count: 1, price: ptrInt64(500), want: 1000},
		{name: "sub-hour clamps to one hour", end: start.Add(20 * time.Minute), count: 1, price: ptrInt64(500), want: 500},
		{name: "partial hour rounds up", end: start.Add(90 * time.Minute), count: 1, price: ptrInt64(500), want: 1000},
		{name: "count multiplies", end: start.Add(2 * time.Hour), count: 3, price: ptrInt64(500), want: 3000},
		{name: "no rate means zero", end: start.Add(2 * time.Hour), count: 2, price: nil, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var price *booking.Money
			if tc.price != nil {
				price = mustMoney(t, *tc.price)
			}
			b, err := booking.NewBooking(uuid.New(), uuid.New(), mustSlot(t, start, tc.end), tc.count, price)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.TotalCostCents())
		})
	}
}

func TestTimeSlot(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("start must precede end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(start, start)
		assert.Error(t, err)
		_, err = booking.NewTimeSlot(start, start.Add(-time.Hour))
		assert.Error(t, err)
	})

	t.Run("half-open overlap", func(t *testing.T) {
		a := mustSlot(t, start, start.Add(2*time.Hour))
		adjacent := mustSlot(t, start.Add(2*time.Hour), start.Add(4*time.Hour))
		overlapping := mustSlot(t, start.Add(time.Hour), start.Add(3*time.Hour))
		contained := mustSlot(t, start.Add(30*time.Minute), start.Add(time.Hour))

		assert.False(t, a.Overlaps(adjacent), "touching endpoints do not overlap")
		assert.False(t, adjacent.Overlaps(a))
		assert.True(t, a.Overlaps(overlapping))
		assert.True(t, overlapping.Overlaps(a))
		assert.True(t, a.Overlaps(contained))
	})
}

func TestNewMessage(t *testing.T) {
	t.Run("trims and keeps body", func(t *testing.T) {
		m, err := booking.NewMessage(uuid.New(), uuid.New(), "  on our way  ")
		require.NoError(t, err)
		assert.Equal(t, "on our way", m.Body())
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := booking.NewMessage(uuid.New(), uuid.New(), "   ")
		assert.ErrorIs(t, err, booking.ErrEmptyMessage)
	})
}

func ptrInt64(v int64) *int64 {
	return &v
}
