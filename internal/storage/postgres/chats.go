package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type Chat struct {
	Uuid      uuid.UUID  `pg:"uuid"`
	OwnerUuid uuid.UUID  `pg:"owner_uuid"`
	Name      string     `pg:"name"`
	Source    string     `pg:"source"`
	CreatedAt time.Time  `pg:"created_at"`
	DeletedAt *time.Time `pg:"deleted_at"`

	Tags []domain.Tag
}

const foreignKeyViolation = "23503"

func (p *Postgres) CreateChat(ctx context.Context, chat domain.Chat) error {
	const op = "postgres.CreateChat"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("INSERT INTO %s (uuid, owner_uuid, name, source, created_at) VALUES ($1,$2,$3,$4,$5)", chatsTable)
	_, err := tx.Exec(query, chat.Uuid, chat.OwnerUuid, chat.Name, chat.Source, chat.CreatedAt)
	closeTx(err)

	if err != nil {
		log.Error("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) GetChat(ctx context.Context, chatUuid uuid.UUID) (*domain.Chat, error) {
	const op = "postgres.GetChat"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	pgChat := Chat{}

	query := fmt.Sprintf("SELECT uuid, owner_uuid, name, source, created_at, deleted_at FROM %s WHERE uuid = $1", chatsTable)
	row := tx.QueryRow(query, chatUuid)
	err := row.Scan(&pgChat.Uuid, &pgChat.OwnerUuid, &pgChat.Name, &pgChat.Source, &pgChat.CreatedAt, &pgChat.DeletedAt)
	if err == nil {
		pgChat.Tags, err = getChatTags(tx, chatUuid)
	}
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrChatNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &domain.Chat{
		Uuid:      pgChat.Uuid,
		OwnerUuid: pgChat.OwnerUuid,
		Name:      pgChat.Name,
		Source:    pgChat.Source,
		CreatedAt: pgChat.CreatedAt,
		DeletedAt: pgChat.DeletedAt,
		Tags:      pgChat.Tags,
	}, nil
}

// ListVisibleChats returns non-deleted chats the user owns, is granted, or
// is a legacy member of, newest first. The optional filter narrows by tag
// name and by a free-text match on chat name or message author.
func (p *Postgres) ListVisibleChats(ctx context.Context, userUuid uuid.UUID, filter domain.ChatFilter) ([]domain.Chat, error) {
	const op = "postgres.ListVisibleChats"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT DISTINCT c.uuid, c.owner_uuid, c.name, c.source, c.created_at, c.deleted_at
		FROM %s c
		LEFT JOIN %s a ON a.chat_uuid = c.uuid AND a.accessable_type = 'User' AND a.accessable_uuid = $1
		LEFT JOIN %s m ON m.chat_uuid = c.uuid AND m.user_uuid = $1
		WHERE c.deleted_at IS NULL
		AND (c.owner_uuid = $1 OR a.chat_uuid IS NOT NULL OR m.chat_uuid IS NOT NULL)`,
		chatsTable, chatAccessTable, chatUserTable)

	args := []any{userUuid}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		fmt.Fprintf(&sb, ` AND EXISTS (SELECT 1 FROM %s ct JOIN %s t ON t.id = ct.tag_id WHERE ct.chat_uuid = c.uuid AND t.name = $%d)`,
			chatTagTable, tagsTable, len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		fmt.Fprintf(&sb, ` AND (c.name ILIKE $%d OR EXISTS (SELECT 1 FROM %s msg WHERE msg.chat_uuid = c.uuid AND msg.author ILIKE $%d))`,
			len(args), messagesTable, len(args))
	}
	sb.WriteString(" ORDER BY c.created_at DESC")

	rows, err := tx.Query(sb.String(), args...)
	if err != nil {
		closeTx(err)
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	defer rows.Close()

	var chats []domain.Chat
	for rows.Next() {
		pgChat := Chat{}
		err = rows.Scan(&pgChat.Uuid, &pgChat.OwnerUuid, &pgChat.Name, &pgChat.Source, &pgChat.CreatedAt, &pgChat.DeletedAt)
		if err != nil {
			break
		}
		chats = append(chats, domain.Chat{
			Uuid:      pgChat.Uuid,
			OwnerUuid: pgChat.OwnerUuid,
			Name:      pgChat.Name,
			Source:    pgChat.Source,
			CreatedAt: pgChat.CreatedAt,
			DeletedAt: pgChat.DeletedAt,
		})
	}
	if err == nil {
		err = rows.Err()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return chats, nil
}

func (p *Postgres) GetChatMessages(ctx context.Context, chatUuid uuid.UUID) ([]domain.Message, error) {
	const op = "postgres.GetChatMessages"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("SELECT uuid, chat_uuid, author, body, sent_at, attachments FROM %s WHERE chat_uuid = $1 ORDER BY sent_at", messagesTable)
	rows, err := tx.Query(query, chatUuid)
	if err != nil {
		closeTx(err)
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var attachments []byte
		err = rows.Scan(&msg.Uuid, &msg.ChatUuid, &msg.Author, &msg.Body, &msg.SentAt, &attachments)
		if err != nil {
			break
		}
		if len(attachments) > 0 {
			err = json.Unmarshal(attachments, &msg.Attachments)
			if err != nil {
				break
			}
		}
		messages = append(messages, msg)
	}
	if err == nil {
		err = rows.Err()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return messages, nil
}

func (p *Postgres) CreateMessages(ctx context.Context, chatUuid uuid.UUID, messages []domain.Message) error {
	const op = "postgres.CreateMessages"
	log := p.log.With(slog.String("op", op))

	if len(messages) == 0 {
		return nil
	}

	tx, closeTx := p.extractTx(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (uuid, chat_uuid, author, body, sent_at, attachments) VALUES ", messagesTable)

	args := make([]any, 0, len(messages)*6)
	var err error
	for i, msg := range messages {
		var attachments []byte
		if len(msg.Attachments) > 0 {
			attachments, err = json.Marshal(msg.Attachments)
			if err != nil {
				break
			}
		}
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d)", i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)
		args = append(args, msg.Uuid, chatUuid, msg.Author, msg.Body, msg.SentAt, attachments)
	}

	if err == nil {
		_, err = tx.Exec(sb.String(), args...)
	}
	closeTx(err)

	if err != nil {
		log.Error("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) RenameChat(ctx context.Context, chatUuid uuid.UUID, name string) error {
	const op = "postgres.RenameChat"
	return p.updateChat(ctx, op, fmt.Sprintf("UPDATE %s SET name = $1 WHERE uuid = $2", chatsTable), name, chatUuid)
}

func (p *Postgres) SoftDeleteChat(ctx context.Context, chatUuid uuid.UUID) error {
	const op = "postgres.SoftDeleteChat"
	return p.updateChat(ctx, op, fmt.Sprintf("UPDATE %s SET deleted_at = $1 WHERE uuid = $2 AND deleted_at IS NULL", chatsTable), time.Now(), chatUuid)
}

func (p *Postgres) RestoreChat(ctx context.Context, chatUuid uuid.UUID) error {
	const op = "postgres.RestoreChat"

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("UPDATE %s SET deleted_at = NULL WHERE uuid = $1", chatsTable)
	_, err := tx.Exec(query, chatUuid)
	closeTx(err)

	if err != nil {
		p.log.With(slog.String("op", op)).Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}
	return nil
}

// ForceDeleteChat removes the chat row; messages, grants, pivot rows and
// tag links go with it via ON DELETE CASCADE.
func (p *Postgres) ForceDeleteChat(ctx context.Context, chatUuid uuid.UUID) error {
	const op = "postgres.ForceDeleteChat"

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("DELETE FROM %s WHERE uuid = $1", chatsTable)
	_, err := tx.Exec(query, chatUuid)
	closeTx(err)

	if err != nil {
		p.log.With(slog.String("op", op)).Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}
	return nil
}

func (p *Postgres) SetChatTags(ctx context.Context, chatUuid uuid.UUID, tagIds []int) error {
	const op = "postgres.SetChatTags"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("DELETE FROM %s WHERE chat_uuid = $1", chatTagTable)
	_, err := tx.Exec(query, chatUuid)

	if err == nil && len(tagIds) > 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "INSERT INTO %s (chat_uuid, tag_id) VALUES ", chatTagTable)
		args := []any{chatUuid}
		for i, tagId := range tagIds {
			if i > 0 {
				sb.WriteString(",")
			}
			args = append(args, tagId)
			fmt.Fprintf(&sb, "($1,$%d)", len(args))
		}
		_, err = tx.Exec(sb.String(), args...)
	}
	closeTx(err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return storage.ErrTagNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (p *Postgres) updateChat(ctx context.Context, op string, query string, args ...any) error {
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	_, err := tx.Exec(query, args...)
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}
	return nil
}
