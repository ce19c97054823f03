package commands

import (
	"context"

	"machine-rental/internal/domain/user"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UpdateProfileParams struct {
	Name    string
	Phone   *string
	Address *string
	City    *string
	State   *string
	ZipCode *string
	Image   *string
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error
}

type profileCommands struct {
	uow   UnitOfWork
	users UserRepository
}

func NewProfileCommands(uow UnitOfWork, users UserRepository) ProfileCommands {
	return &profileCommands{uow: uow, users: users}
}

func (c *profileCommands) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		u, err := c.users.FindByID(ctx, tx, userID)
		if err != nil {
			return markNotFound(err, ErrUserNotFound)
		}
		if err := u.UpdateProfile(user.Profile{
			Name:    params.Name,
			Phone:   params.Phone,
			Address: params.Address,
			City:    params.City,
			State:   params.State,
			ZipCode: params.ZipCode,
			Image:   params.Image,
		}); err != nil {
			return err
		}
		return c.users.Update(ctx, tx, u)
	})
}
