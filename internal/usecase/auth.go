package usecase

import (
	"context"
	"time"

	"machine-rental/internal/domain/user"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/pkg/errs"
	jwtpkg "machine-rental/internal/pkg/jwt"
	"machine-rental/internal/pkg/password"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("email or password is incorrect")
	ErrUserInactive         = errs.New("user account is deactivated")
	ErrEmailAlreadyTaken    = errs.New("email is already registered")
	ErrInvalidToken         = errs.New("token is invalid or expired")
)

// CredentialView carries the password hash alongside the public user view.
// It never leaves the auth flow.
type CredentialView struct {
	User         queries.AuthorizedUserView
	PasswordHash string
}

type AuthReadStore interface {
	FindByEmail(ctx context.Context, email string) (*CredentialView, error)
	RecordLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type RegisterParams struct {
	Email    string
	Password string
	Role     string
	Name     string
}

type AuthUseCase struct {
	store AuthReadStore
	uow   commands.UnitOfWork
	users commands.UserRepository
	jwt   *jwtpkg.Service
}

func NewAuthUseCase(store AuthReadStore, uow commands.UnitOfWork, users commands.UserRepository, jwt *jwtpkg.Service) *AuthUseCase {
	return &AuthUseCase{store: store, uow: uow, users: users, jwt: jwt}
}

func (u *AuthUseCase) Register(ctx context.Context, params RegisterParams) (*queries.AuthorizedUserView, error) {
	creds, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(creds.Password().Value())
	if err != nil {
		return nil, err
	}
	account, err := user.NewUser(creds.Email(), hash, role, params.Name)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := u.users.Create(ctx, tx, account); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.AuthorizedUserView{
		ID:       account.ID(),
		Email:    account.Email().Value(),
		Role:     account.Role().String(),
		Name:     account.Profile().Name,
		IsActive: account.IsActive(),
	}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error) {
	cred, err := u.store.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		return "", nil, err
	}
	if !cred.User.IsActive {
		return "", nil, ErrUserInactive
	}
	if err := password.Compare(cred.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	role, err := user.NewRole(cred.User.Role)
	if err != nil {
		return "", nil, err
	}
	token, err := u.jwt.GenerateToken(cred.User.ID, role)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to issue token")
	}

	// Login bookkeeping must not block the login itself.
	_ = u.store.RecordLogin(ctx, cred.User.ID, time.Now())

	return token, &cred.User, nil
}

func (u *AuthUseCase) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	return claims.UserID, user.Role(claims.Role), nil
}

func (u *AuthUseCase) TokenDuration() time.Duration {
	return u.jwt.TokenDuration()
}
