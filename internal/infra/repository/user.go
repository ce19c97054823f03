package repository

import (
	"context"
	"time"

	"machine-rental/internal/domain/user"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() commands.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	const query = `
		INSERT INTO users (
			id, email, password_hash, role, name,
			phone, address, city, state, zip_code, image_url, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	p := u.Profile()
	_, err := tx.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), p.Name,
		p.Phone, p.Address, p.City, p.State, p.ZipCode, p.Image, u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, role, name,
		       phone, address, city, state, zip_code, image_url,
		       is_active, last_login, created_at, updated_at
		FROM users
		WHERE id = $1`

	var (
		userID       uuid.UUID
		email        string
		passwordHash string
		role         string
		profile      user.Profile
		isActive     bool
		lastLogin    *time.Time
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&userID, &email, &passwordHash, &role, &profile.Name,
		&profile.Phone, &profile.Address, &profile.City, &profile.State,
		&profile.ZipCode, &profile.Image,
		&isActive, &lastLogin, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	parsedEmail, err := user.NewEmail(email)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid email", err)
	}
	parsedRole, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid role", err)
	}

	return user.ReconstructUser(
		userID, parsedEmail, passwordHash, parsedRole, profile,
		isActive, lastLogin, createdAt, updatedAt,
	), nil
}

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	const query = `
		UPDATE users
		SET name = $2, phone = $3, address = $4, city = $5,
		    state = $6, zip_code = $7, image_url = $8, updated_at = now()
		WHERE id = $1`

	p := u.Profile()
	tag, err := tx.Exec(ctx, query,
		u.ID(), p.Name, p.Phone, p.Address, p.City, p.State, p.ZipCode, p.Image,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found for update")
	}
	return nil
}
