//go:build unit

package booking_test

import (
	"testing"

	"machine-rental/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name    string
		current booking.Status
		action  booking.Action
		actor   booking.Actor
		want    booking.Status
		errIs   error
	}{
		{
			name:    "approve from pending",
			current: booking.StatusPendingRenterApproval,
			action:  booking.ActionApprove,
			actor:   booking.ActorOwner,
			want:    booking.StatusApprovedByRenter,
		},
		{
			name:    "reject from pending",
			current: booking.StatusPendingRenterApproval,
			action:  booking.ActionReject,
			actor:   booking.ActorOwner,
			want:    booking.StatusRejectedByRenter,
		},
		{
			name:    "send back from pending",
			current: booking.StatusPendingRenterApproval,
			action:  booking.ActionSendBack,
			actor:   booking.ActorOwner,
			want:    booking.StatusSentBackToClient,
		},
		{
			name:    "cancel from pending",
			current: booking.StatusPendingRenterApproval,
			action:  booking.ActionCancel,
			actor:   booking.ActorClient,
			want:    booking.StatusCanceledByClient,
		},
		{
			name:    "cancel from sent back",
			current: booking.StatusSentBackToClient,
			action:  booking.ActionCancel,
			actor:   booking.ActorClient,
			want:    booking.StatusCanceledByClient,
		},
		{
			name:    "approve after approval",
			current: booking.StatusApprovedByRenter,
			action:  booking.ActionApprove,
			actor:   booking.ActorOwner,
			errIs:   booking.ErrInvalidTransition,
		},
		{
			name:    "reject after rejection",
			current: booking.StatusRejectedByRenter,
			action:  booking.ActionReject,
			actor:   booking.ActorOwner,
			errIs:   booking.ErrInvalidTransition,
		},
		{
			name:    "send back after cancel",
			current: booking.StatusCanceledByClient,
			action:  booking.ActionSendBack,
			actor:   booking.ActorOwner,
			errIs:   booking.ErrInvalidTransition,
		},
		{
			name:    "client cannot approve",
			current: booking.StatusPendingRenterApproval,
			action:  booking.ActionApprove,
			actor:   booking.ActorClient,
			errIs:   booking.ErrActorNotAllowed,
		},
		{
			name:    "owner cannot cancel",
			current: booking.StatusPendingRenterApproval,
			action:  booking.ActionCancel,
			actor:   booking.ActorOwner,
			errIs:   booking.ErrActorNotAllowed,
		},
		{
			name:    "unknown status",
			current: booking.Status("shipped"),
			action:  booking.ActionApprove,
			actor:   booking.ActorOwner,
			errIs:   booking.ErrInvalidStatus,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.Transition(tc.current, tc.action, tc.actor)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAllowedActions(t *testing.T) {
	t.Run("owner actions only from pending", func(t *testing.T) {
		got := booking.AllowedActions(booking.StatusPendingRenterApproval, booking.ActorOwner)
		assert.Equal(t, []booking.Action{
			booking.ActionApprove,
			booking.ActionReject,
			booking.ActionSendBack,
		}, got)

		// Once the status changes, every owner action is disabled.
		for _, s := range []booking.Status{
			booking.StatusApprovedByRenter,
			booking.StatusRejectedByRenter,
			booking.StatusSentBackToClient,
			booking.StatusCanceledByClient,
		} {
			assert.Empty(t, booking.AllowedActions(s, booking.ActorOwner), "status %s", s)
		}
	})

	t.Run("client can cancel from pending and sent back", func(t *testing.T) {
		assert.Equal(t, []booking.Action{booking.ActionCancel},
			booking.AllowedActions(booking.StatusPendingRenterApproval, booking.ActorClient))
		assert.Equal(t, []booking.Action{booking.ActionCancel},
			booking.AllowedActions(booking.StatusSentBackToClient, booking.ActorClient))
		assert.Empty(t, booking.AllowedActions(booking.StatusApprovedByRenter, booking.ActorClient))
	})
}

func TestStatusConsumesCapacity(t *testing.T) {
	assert.True(t, booking.StatusPendingRenterApproval.ConsumesCapacity())
	assert.True(t, booking.StatusApprovedByRenter.ConsumesCapacity())
	assert.False(t, booking.StatusRejectedByRenter.ConsumesCapacity())
	assert.False(t, booking.StatusSentBackToClient.ConsumesCapacity())
	assert.False(t, booking.StatusCanceledByClient.ConsumesCapacity())
}

func TestActionRequiresReason(t *testing.T) {
	assert.False(t, booking.ActionApprove.RequiresReason())
	assert.True(t, booking.ActionReject.RequiresReason())
	assert.True(t, booking.ActionSendBack.RequiresReason())
	assert.False(t, booking.ActionCancel.RequiresReason())
}
