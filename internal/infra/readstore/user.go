package readstore

import (
	"context"
	"time"

	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserReadStore serves both the profile queries and the credential lookup
// for login.
type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var (
	_ queries.UserReadStore = (*UserReadStore)(nil)
	_ usecase.AuthReadStore = (*UserReadStore)(nil)
)

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, name, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Email, &view.Role, &view.Name, &view.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user view", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	const query = `
		SELECT name, email, phone, address, city, state, zip_code, image_url
		FROM users
		WHERE id = $1`

	var view queries.ProfileView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.Name, &view.Email, &view.Phone, &view.Address,
		&view.City, &view.State, &view.ZipCode, &view.Image,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user profile", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*usecase.CredentialView, error) {
	const query = `
		SELECT id, email, role, name, is_active, password_hash
		FROM users
		WHERE email = $1`

	var cred usecase.CredentialView
	err := s.db.QueryRow(ctx, query, email).Scan(
		&cred.User.ID, &cred.User.Email, &cred.User.Role, &cred.User.Name,
		&cred.User.IsActive, &cred.PasswordHash,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &cred, nil
}

func (s *UserReadStore) RecordLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const query = `UPDATE users SET last_login = $2 WHERE id = $1`

	if _, err := s.db.Exec(ctx, query, userID, at); err != nil {
		return infra.WrapRepoErr("failed to record login time", err)
	}
	return nil
}
