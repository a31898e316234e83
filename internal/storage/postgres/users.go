package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type User struct {
	Uuid         uuid.UUID `pg:"uuid"`
	Login        string    `pg:"login"`
	PasswordHash []byte    `pg:"password"`
	Role         string    `pg:"role"`
}

const uniqueViolation = "23505"

func (p *Postgres) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	const op = "postgres.CreateUser"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("INSERT INTO %s (uuid, login, password, role) VALUES ($1,$2,$3,$4)", usersTable)
	_, err := tx.Exec(query, user.Uuid, user.Login, user.PasswordHash, string(user.Role))
	closeTx(err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, storage.ErrUserAlreadyExists
	}
	if err != nil {
		log.Error("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &user, nil
}

func (p *Postgres) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	const op = "postgres.GetUserByLogin"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	pgUser := User{}

	query := fmt.Sprintf("SELECT uuid, login, password, role FROM %s WHERE login = $1", usersTable)
	row := tx.QueryRow(query, login)
	err := row.Scan(&pgUser.Uuid, &pgUser.Login, &pgUser.PasswordHash, &pgUser.Role)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &domain.User{Uuid: pgUser.Uuid, Login: pgUser.Login, PasswordHash: pgUser.PasswordHash, Role: domain.Role(pgUser.Role)}, nil
}

func (p *Postgres) GetUserByUuid(ctx context.Context, userUuid uuid.UUID) (*domain.User, error) {
	const op = "postgres.GetUserByUuid"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	pgUser := User{}

	query := fmt.Sprintf("SELECT uuid, login, password, role FROM %s WHERE uuid = $1", usersTable)
	row := tx.QueryRow(query, userUuid)
	err := row.Scan(&pgUser.Uuid, &pgUser.Login, &pgUser.PasswordHash, &pgUser.Role)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &domain.User{Uuid: pgUser.Uuid, Login: pgUser.Login, PasswordHash: pgUser.PasswordHash, Role: domain.Role(pgUser.Role)}, nil
}

func (p *Postgres) UpsertRefreshToken(ctx context.Context, userUuid uuid.UUID, refreshToken string) error {
	const op = "postgres.UpsertRefreshToken"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("INSERT INTO %s (user_uuid, token) VALUES($1, $2) ON CONFLICT (user_uuid) DO UPDATE SET token = ($2)", refreshTokensTable)
	_, err := tx.Exec(query, userUuid, refreshToken)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) GetRefreshToken(ctx context.Context, userUuid uuid.UUID) (string, error) {
	const op = "postgres.GetRefreshToken"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	var token string

	query := fmt.Sprintf("SELECT token FROM %s WHERE user_uuid = $1", refreshTokensTable)
	row := tx.QueryRow(query, userUuid)
	err := row.Scan(&token)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrTokenNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return "", storage.ErrInternal
	}

	return token, nil
}
