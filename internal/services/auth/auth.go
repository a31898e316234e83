package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/domain/errs"
	"github.com/stuartcarroll/chatextract/internal/pkg/jwt"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type UserStorage interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	GetUserByUuid(ctx context.Context, userUuid uuid.UUID) (*domain.User, error)
	UpsertRefreshToken(ctx context.Context, userUuid uuid.UUID, refreshToken string) error
	GetRefreshToken(ctx context.Context, userUuid uuid.UUID) (string, error)
}

type AuthService struct {
	log *slog.Logger

	userStorage UserStorage
	jwtParams   JwtParams
}

type JwtParams struct {
	AccessTtl  time.Duration
	RefreshTtl time.Duration
	Secret     []byte
}

func New(log *slog.Logger, userStorage UserStorage, jwtParams JwtParams) *AuthService {
	return &AuthService{log: log, userStorage: userStorage, jwtParams: jwtParams}
}

// Register creates an account with the chat_user role. Privileged roles
// are assigned out of band.
func (a *AuthService) Register(ctx context.Context, login, password string) (*domain.User, error) {
	const op = "auth.Register"
	log := a.log.With(slog.String("op", op))

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := domain.User{
		Uuid:         uuid.New(),
		Login:        login,
		PasswordHash: passHash,
		Role:         domain.RoleChatUser,
	}

	created, err := a.userStorage.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, errs.ErrUserAlreadyExists
		}
		log.Error("failed to save user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (a *AuthService) Login(ctx context.Context, login, password string) (domain.Tokens, error) {
	const op = "auth.Login"
	log := a.log.With(slog.String("op", op))

	user, err := a.userStorage.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return domain.Tokens{}, errs.ErrInvalidCreds
		}
		return domain.Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("invalid credentials", slog.String("login", login))
		return domain.Tokens{}, errs.ErrInvalidCreds
	}

	tokens, err := jwt.NewTokens(*user, a.jwtParams.AccessTtl, a.jwtParams.RefreshTtl, a.jwtParams.Secret)
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	err = a.userStorage.UpsertRefreshToken(ctx, user.Uuid, tokens.RefreshToken)
	if err != nil {
		log.Error("failed to store refresh token", sl.Err(err))
		return domain.Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.Tokens, error) {
	const op = "auth.Refresh"
	log := a.log.With(slog.String("op", op))

	valid, err := jwt.ValidateToken(refreshToken, a.jwtParams.Secret)
	if err != nil || !valid {
		return domain.Tokens{}, errs.ErrInvalidCreds
	}

	userUuid, err := jwt.GetUserUuidFromToken(refreshToken, a.jwtParams.Secret)
	if err != nil {
		return domain.Tokens{}, errs.ErrInvalidCreds
	}

	stored, err := a.userStorage.GetRefreshToken(ctx, userUuid)
	if err != nil || stored != refreshToken {
		return domain.Tokens{}, errs.ErrInvalidCreds
	}

	user, err := a.userStorage.GetUserByUuid(ctx, userUuid)
	if err != nil {
		return domain.Tokens{}, errs.ErrInvalidCreds
	}

	tokens, err := jwt.NewTokens(*user, a.jwtParams.AccessTtl, a.jwtParams.RefreshTtl, a.jwtParams.Secret)
	if err != nil {
		return domain.Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	err = a.userStorage.UpsertRefreshToken(ctx, user.Uuid, tokens.RefreshToken)
	if err != nil {
		log.Error("failed to store refresh token", sl.Err(err))
		return domain.Tokens{}, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

// Authenticate resolves the principal for a bearer token. The user is
// re-read from storage so role changes take effect on the next request.
func (a *AuthService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	valid, err := jwt.ValidateToken(accessToken, a.jwtParams.Secret)
	if err != nil || !valid {
		return nil, errs.ErrInvalidCreds
	}

	userUuid, err := jwt.GetUserUuidFromToken(accessToken, a.jwtParams.Secret)
	if err != nil {
		return nil, errs.ErrInvalidCreds
	}

	user, err := a.userStorage.GetUserByUuid(ctx, userUuid)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
