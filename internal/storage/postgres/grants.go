package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

func (p *Postgres) GrantExists(ctx context.Context, chatUuid uuid.UUID, principal domain.Principal) (bool, error) {
	const op = "postgres.GrantExists"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE chat_uuid = $1 AND accessable_type = $2 AND accessable_uuid = $3)", chatAccessTable)
	row := tx.QueryRow(query, chatUuid, string(principal.Kind), principal.Uuid)
	err := row.Scan(&exists)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return false, storage.ErrInternal
	}

	return exists, nil
}

// LegacyMemberExists reads the historical chat_user pivot. Rows only ever
// arrive through data migrations, there is no write path.
func (p *Postgres) LegacyMemberExists(ctx context.Context, chatUuid uuid.UUID, userUuid uuid.UUID) (bool, error) {
	const op = "postgres.LegacyMemberExists"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE chat_uuid = $1 AND user_uuid = $2)", chatUserTable)
	row := tx.QueryRow(query, chatUuid, userUuid)
	err := row.Scan(&exists)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return false, storage.ErrInternal
	}

	return exists, nil
}
