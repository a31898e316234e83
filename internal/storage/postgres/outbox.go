package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type Outbox struct {
	Id      int        `pg:"id"`
	Topic   string     `pg:"topic"`
	Key     uuid.UUID  `pg:"key"`
	Message []byte     `pg:"message"`
	SentAt  *time.Time `pg:"sent_at"`
}

func (p *Postgres) CreateImportOutbox(ctx context.Context, event domain.ImportEvent) error {
	const op = "postgres.CreateImportOutbox"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	message, err := json.Marshal(event)
	if err == nil {
		query := fmt.Sprintf("INSERT INTO %s (topic, key, message) VALUES ($1,$2,$3)", outboxTable)
		_, err = tx.Exec(query, domain.ImportTopic, event.JobUuid, message)
	}
	closeTx(err)

	if err != nil {
		log.Error("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) GetNextOutbox(ctx context.Context) (*domain.Outbox, error) {
	const op = "postgres.GetNextOutbox"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	pgOutbox := Outbox{}

	query := fmt.Sprintf("SELECT id, topic, key, message, sent_at FROM %s WHERE sent_at IS NULL ORDER BY id LIMIT 1", outboxTable)
	row := tx.QueryRow(query)
	err := row.Scan(&pgOutbox.Id, &pgOutbox.Topic, &pgOutbox.Key, &pgOutbox.Message, &pgOutbox.SentAt)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoOutbox
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &domain.Outbox{
		Id:      pgOutbox.Id,
		Topic:   pgOutbox.Topic,
		Key:     pgOutbox.Key,
		Message: pgOutbox.Message,
		SentAt:  pgOutbox.SentAt,
	}, nil
}

func (p *Postgres) ConfirmOutboxSent(ctx context.Context, id int) error {
	const op = "postgres.ConfirmOutboxSent"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("UPDATE %s SET sent_at = $1 WHERE id = $2", outboxTable)
	_, err := tx.Exec(query, time.Now(), id)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}
