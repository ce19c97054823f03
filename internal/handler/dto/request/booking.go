package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	MachineID      uuid.UUID `json:"machine_id" binding:"required"`
	StartsAt       time.Time `json:"starts_at" binding:"required"`
	EndsAt         time.Time `json:"ends_at" binding:"required"`
	RequestedCount int       `json:"requested_count" binding:"required,min=1"`
	Message        *string   `json:"message,omitempty"`
}

type ApproveBookingRequest struct {
	InstanceID uuid.UUID `json:"instance_id" binding:"required"`
	Message    *string   `json:"message,omitempty"`
}

// DeclineBookingRequest covers reject and send-back; both demand a reason.
type DeclineBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type AvailabilityRequest struct {
	StartsAt       time.Time `form:"starts_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndsAt         time.Time `form:"ends_at" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	RequestedCount int       `form:"requested_count,default=1" binding:"min=1"`
}
