package queries

import (
	"context"

	"machine-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type userQueries struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueries{store: store}
}

func (q *userQueries) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *userQueries) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	return q.store.FindProfileByID(ctx, id)
}
