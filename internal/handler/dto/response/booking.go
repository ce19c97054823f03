package response

import (
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID         `json:"id"`
	MachineID         uuid.UUID         `json:"machineId"`
	MachineName       string            `json:"machineName"`
	MachineInstanceID *uuid.UUID        `json:"machineInstanceId,omitempty"`
	InstanceCode      *string           `json:"instanceCode,omitempty"`
	ClientID          uuid.UUID         `json:"clientId"`
	ClientName        string            `json:"clientName"`
	ClientEmail       string            `json:"clientEmail"`
	StartsAt          time.Time         `json:"startsAt"`
	EndsAt            time.Time         `json:"endsAt"`
	RequestedCount    int               `json:"requestedCount"`
	Status            string            `json:"status"`
	PricePerHourCents *int64            `json:"pricePerHourCents,omitempty"`
	TotalCostCents    int64             `json:"totalCostCents"`
	AllowedActions    []string          `json:"allowedActions"`
	Messages          []MessageResponse `json:"messages,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type BookingListResponse struct {
	ID                uuid.UUID `json:"id"`
	MachineID         uuid.UUID `json:"machineId"`
	MachineName       string    `json:"machineName"`
	ClientName        string    `json:"clientName"`
	StartsAt          time.Time `json:"startsAt"`
	EndsAt            time.Time `json:"endsAt"`
	RequestedCount    int       `json:"requestedCount"`
	Status            string    `json:"status"`
	PricePerHourCents *int64    `json:"pricePerHourCents,omitempty"`
	AllowedActions    []string  `json:"allowedActions"`
	CreatedAt         time.Time `json:"createdAt"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"senderId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

// FromBookingView renders the view for one side of the exchange: the
// allowed actions depend on who is looking.
func FromBookingView(view *queries.BookingView, actor booking.Actor) *BookingResponse {
	messages := make([]MessageResponse, 0, len(view.Messages))
	for _, m := range view.Messages {
		messages = append(messages, MessageResponse{
			ID:        m.ID,
			SenderID:  m.SenderID,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}

	return &BookingResponse{
		ID:                view.ID,
		MachineID:         view.MachineID,
		MachineName:       view.MachineName,
		MachineInstanceID: view.MachineInstanceID,
		InstanceCode:      view.InstanceCode,
		ClientID:          view.ClientID,
		ClientName:        view.ClientName,
		ClientEmail:       view.ClientEmail,
		StartsAt:          view.StartsAt,
		EndsAt:            view.EndsAt,
		RequestedCount:    view.RequestedCount,
		Status:            view.Status,
		PricePerHourCents: view.PricePerHourCents,
		TotalCostCents:    view.TotalCostCents,
		AllowedActions:    allowedActions(view.Status, actor),
		Messages:          messages,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem, actor booking.Actor) *BookingListResponse {
	return &BookingListResponse{
		ID:                item.ID,
		MachineID:         item.MachineID,
		MachineName:       item.MachineName,
		ClientName:        item.ClientName,
		StartsAt:          item.StartsAt,
		EndsAt:            item.EndsAt,
		RequestedCount:    item.RequestedCount,
		Status:            item.Status,
		PricePerHourCents: item.PricePerHourCents,
		AllowedActions:    allowedActions(item.Status, actor),
		CreatedAt:         item.CreatedAt,
	}
}

func FromMessage(m *booking.Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID(),
		SenderID:  m.SenderID(),
		Body:      m.Body(),
		CreatedAt: m.CreatedAt(),
	}
}

// allowedActions is always a JSON array, never null, so clients can range
// over it without a nil check.
func allowedActions(status string, actor booking.Actor) []string {
	actions := booking.AllowedActions(booking.Status(status), actor)
	result := make([]string, 0, len(actions))
	for _, a := range actions {
		result = append(result, string(a))
	}
	return result
}
