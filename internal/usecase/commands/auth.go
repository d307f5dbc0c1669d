package commands

import (
	"context"

	"slotswap/internal/domain/user"
	"slotswap/internal/infra"
	"slotswap/internal/pkg/clock"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/pkg/jwt"
	"slotswap/internal/pkg/password"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	AccessToken string
	UserID      uuid.UUID
	Role        user.Role
}

type AuthCommands interface {
	Signup(ctx context.Context, name, email, plainPassword, role string) (uuid.UUID, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Promote(ctx context.Context, email string) error
}

// TokenValidator is what the auth middleware needs from this usecase.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type authUseCase struct {
	uow      shared.UnitOfWork
	jwtSvc   *jwt.Service
	clockSvc clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtSvc *jwt.Service, clockSvc clock.Clock) AuthCommands {
	return &authUseCase{uow: uow, jwtSvc: jwtSvc, clockSvc: clockSvc}
}

func NewTokenValidator(uow shared.UnitOfWork, jwtSvc *jwt.Service, clockSvc clock.Clock) TokenValidator {
	return &authUseCase{uow: uow, jwtSvc: jwtSvc, clockSvc: clockSvc}
}

func (u *authUseCase) Signup(ctx context.Context, name, email, plainPassword, role string) (uuid.UUID, error) {
	parsedRole, err := user.NewRole(role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return uuid.Nil, err
	}

	newUser, err := user.NewUser(name, email, hash, parsedRole, u.clockSvc.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), newUser)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.ErrEmailTaken
		}
		return uuid.Nil, err
	}
	return newUser.ID(), nil
}

func (u *authUseCase) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, err := u.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidLogin)
	}

	if err := password.Verify(account.PasswordHash(), plainPassword); err != nil {
		return nil, errs.ErrInvalidLogin
	}

	token, err := u.jwtSvc.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	return &LoginResult{
		AccessToken: token,
		UserID:      account.ID(),
		Role:        account.Role(),
	}, nil
}

func (u *authUseCase) Promote(ctx context.Context, email string) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Reads().UserByEmail(ctx, email)
		if err != nil {
			return readErr(err, errs.ErrUserNotFound)
		}
		if err := account.Promote(); err != nil {
			return errs.ErrAlreadyAProvider
		}
		return tx.Users().UpdateRole(ctx, tx.DB(), account.ID(), account.Role())
	})
}

func (u *authUseCase) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := u.jwtSvc.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, claims.Role, nil
}
