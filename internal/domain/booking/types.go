package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrActorNotAllowed   = errors.New("actor may not perform this action")
	ErrReasonRequired    = errors.New("a non-empty reason is required")
)

type Status string

const (
	StatusPendingRenterApproval Status = "pending_renter_approval"
	StatusApprovedByRenter      Status = "approved_by_renter"
	StatusRejectedByRenter      Status = "rejected_by_renter"
	StatusSentBackToClient      Status = "sent_back_to_client"
	StatusCanceledByClient      Status = "canceled_by_client"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingRenterApproval, StatusApprovedByRenter, StatusRejectedByRenter,
		StatusSentBackToClient, StatusCanceledByClient:
		return true
	default:
		return false
	}
}

// ConsumesCapacity reports whether a booking in this status holds instances
// against availability checks.
func (s Status) ConsumesCapacity() bool {
	return s == StatusPendingRenterApproval || s == StatusApprovedByRenter
}

type Actor string

const (
	ActorOwner  Actor = "owner"
	ActorClient Actor = "client"
)

type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionSendBack Action = "send_back"
	ActionCancel   Action = "cancel"
)

type transition struct {
	from           []Status
	to             Status
	actor          Actor
	requiresReason bool
}

// The whole lifecycle in one table. Every (status, action) pair missing here
// is rejected with ErrInvalidTransition.
var transitions = map[Action]transition{
	ActionApprove: {
		from:  []Status{StatusPendingRenterApproval},
		to:    StatusApprovedByRenter,
		actor: ActorOwner,
	},
	ActionReject: {
		from:           []Status{StatusPendingRenterApproval},
		to:             StatusRejectedByRenter,
		actor:          ActorOwner,
		requiresReason: true,
	},
	ActionSendBack: {
		from:           []Status{StatusPendingRenterApproval},
		to:             StatusSentBackToClient,
		actor:          ActorOwner,
		requiresReason: true,
	},
	ActionCancel: {
		from:  []Status{StatusPendingRenterApproval, StatusSentBackToClient},
		to:    StatusCanceledByClient,
		actor: ActorClient,
	},
}

func (a Action) RequiresReason() bool {
	return transitions[a].requiresReason
}

// Transition returns the resulting status for applying a to current, or an
// error when the table forbids it.
func Transition(current Status, a Action, actor Actor) (Status, error) {
	if !current.IsValid() {
		return "", ErrInvalidStatus
	}

	t, ok := transitions[a]
	if !ok {
		return "", ErrInvalidTransition
	}
	if t.actor != actor {
		return "", ErrActorNotAllowed
	}
	for _, from := range t.from {
		if from == current {
			return t.to, nil
		}
	}
	return "", ErrInvalidTransition
}

// AllowedActions lists the actions actor may take on a booking in the given
// status. The order is stable (approve, reject, send_back, cancel).
func AllowedActions(current Status, actor Actor) []Action {
	ordered := []Action{ActionApprove, ActionReject, ActionSendBack, ActionCancel}

	var allowed []Action
	for _, a := range ordered {
		if _, err := Transition(current, a, actor); err == nil {
			allowed = append(allowed, a)
		}
	}
	return allowed
}
