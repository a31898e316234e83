package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type Tag struct {
	Id    int    `pg:"id"`
	Name  string `pg:"name"`
	Color string `pg:"color"`
}

func (p *Postgres) ListTags(ctx context.Context) ([]domain.Tag, error) {
	const op = "postgres.ListTags"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("SELECT id, name, color FROM %s ORDER BY name", tagsTable)
	rows, err := tx.Query(query)
	if err != nil {
		closeTx(err)
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	defer rows.Close()

	tags, err := scanTags(rows)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return tags, nil
}

func (p *Postgres) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	const op = "postgres.CreateTag"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("INSERT INTO %s (name, color) VALUES ($1,$2) RETURNING id", tagsTable)
	row := tx.QueryRow(query, tag.Name, tag.Color)
	err := row.Scan(&tag.Id)
	closeTx(err)

	if err != nil {
		log.Error("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &tag, nil
}

func (p *Postgres) UpdateTag(ctx context.Context, tag domain.Tag) error {
	const op = "postgres.UpdateTag"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("UPDATE %s SET name = $1, color = $2 WHERE id = $3", tagsTable)
	res, err := tx.Exec(query, tag.Name, tag.Color, tag.Id)

	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}
	if affected == 0 {
		return storage.ErrTagNotFound
	}

	return nil
}

func (p *Postgres) DeleteTag(ctx context.Context, tagId int) error {
	const op = "postgres.DeleteTag"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", tagsTable)
	res, err := tx.Exec(query, tagId)

	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}
	if affected == 0 {
		return storage.ErrTagNotFound
	}

	return nil
}

func getChatTags(tx *sql.Tx, chatUuid uuid.UUID) ([]domain.Tag, error) {
	query := fmt.Sprintf("SELECT t.id, t.name, t.color FROM %s t JOIN %s ct ON ct.tag_id = t.id WHERE ct.chat_uuid = $1 ORDER BY t.name",
		tagsTable, chatTagTable)
	rows, err := tx.Query(query, chatUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTags(rows)
}

func scanTags(rows *sql.Rows) ([]domain.Tag, error) {
	var tags []domain.Tag
	for rows.Next() {
		pgTag := Tag{}
		if err := rows.Scan(&pgTag.Id, &pgTag.Name, &pgTag.Color); err != nil {
			return nil, err
		}
		tags = append(tags, domain.Tag{Id: pgTag.Id, Name: pgTag.Name, Color: pgTag.Color})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
