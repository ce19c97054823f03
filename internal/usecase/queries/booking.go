package queries

import (
	"context"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/infra"
	"machine-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("booking does not belong to the requester")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindMessages(ctx context.Context, bookingID uuid.UUID) ([]MessageView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status *booking.Status, page ListPage) ([]BookingListItem, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, status *booking.Status, page ListPage) ([]BookingListItem, error)
}

type BookingQueries interface {
	GetForOwner(ctx context.Context, ownerID, bookingID uuid.UUID) (*BookingView, error)
	GetForClient(ctx context.Context, clientID, bookingID uuid.UUID) (*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, status *booking.Status, page ListPage) ([]BookingListItem, error)
	ListForClient(ctx context.Context, clientID uuid.UUID, status *booking.Status, page ListPage) ([]BookingListItem, error)
}

type bookingQueries struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueries{store: store}
}

func (q *bookingQueries) GetForOwner(ctx context.Context, ownerID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if view.OwnerID != ownerID {
		return nil, ErrBookingForbidden
	}
	return view, nil
}

func (q *bookingQueries) GetForClient(ctx context.Context, clientID, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if view.ClientID != clientID {
		return nil, ErrBookingForbidden
	}
	return view, nil
}

func (q *bookingQueries) get(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	messages, err := q.store.FindMessages(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	view.Messages = messages
	return view, nil
}

func (q *bookingQueries) ListForOwner(ctx context.Context, ownerID uuid.UUID, status *booking.Status, page ListPage) ([]BookingListItem, error) {
	return q.store.ListByOwner(ctx, ownerID, status, page)
}

func (q *bookingQueries) ListForClient(ctx context.Context, clientID uuid.UUID, status *booking.Status, page ListPage) ([]BookingListItem, error) {
	return q.store.ListByClient(ctx, clientID, status, page)
}
