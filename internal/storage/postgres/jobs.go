package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type ImportJob struct {
	Uuid       uuid.UUID  `pg:"uuid"`
	OwnerUuid  uuid.UUID  `pg:"owner_uuid"`
	Filename   string     `pg:"filename"`
	Status     string     `pg:"status"`
	Attempts   int        `pg:"attempts"`
	Error      *string    `pg:"error"`
	ChatUuid   *uuid.UUID `pg:"chat_uuid"`
	Messages   int        `pg:"messages"`
	CreatedAt  time.Time  `pg:"created_at"`
	FinishedAt *time.Time `pg:"finished_at"`
}

const jobColumns = "uuid, owner_uuid, filename, status, attempts, error, chat_uuid, messages, created_at, finished_at"

func (p *Postgres) CreateJob(ctx context.Context, job domain.ImportJob, payload []byte) (*domain.ImportJob, error) {
	const op = "postgres.CreateJob"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("INSERT INTO %s (uuid, owner_uuid, filename, status, attempts, payload, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)", importJobsTable)
	_, err := tx.Exec(query, job.Uuid, job.OwnerUuid, job.Filename, string(job.Status), job.Attempts, payload, job.CreatedAt)
	closeTx(err)

	if err != nil {
		log.Error("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &job, nil
}

func (p *Postgres) GetJob(ctx context.Context, jobUuid uuid.UUID) (*domain.ImportJob, error) {
	const op = "postgres.GetJob"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE uuid = $1", jobColumns, importJobsTable)
	job, err := scanJob(tx.QueryRow(query, jobUuid))
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrJobNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return job, nil
}

func (p *Postgres) GetJobPayload(ctx context.Context, jobUuid uuid.UUID) ([]byte, error) {
	const op = "postgres.GetJobPayload"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	var payload []byte
	query := fmt.Sprintf("SELECT payload FROM %s WHERE uuid = $1", importJobsTable)
	err := tx.QueryRow(query, jobUuid).Scan(&payload)
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrJobNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return payload, nil
}

func (p *Postgres) ListJobs(ctx context.Context, ownerUuid uuid.UUID) ([]domain.ImportJob, error) {
	const op = "postgres.ListJobs"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE owner_uuid = $1 ORDER BY created_at DESC", jobColumns, importJobsTable)
	rows, err := tx.Query(query, ownerUuid)
	if err != nil {
		closeTx(err)
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	defer rows.Close()

	var jobs []domain.ImportJob
	for rows.Next() {
		var job *domain.ImportJob
		job, err = scanJob(rows)
		if err != nil {
			break
		}
		jobs = append(jobs, *job)
	}
	if err == nil {
		err = rows.Err()
	}
	closeTx(err)

	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return jobs, nil
}

// ClaimNextJob atomically flips the oldest queued job to running. SKIP
// LOCKED keeps concurrent workers from claiming the same row.
func (p *Postgres) ClaimNextJob(ctx context.Context) (*domain.ImportJob, error) {
	const op = "postgres.ClaimNextJob"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf(`UPDATE %s SET status = 'running' WHERE uuid = (
		SELECT uuid FROM %s WHERE status = 'queued' ORDER BY created_at LIMIT 1 FOR UPDATE SKIP LOCKED
	) RETURNING %s`, importJobsTable, importJobsTable, jobColumns)
	job, err := scanJob(tx.QueryRow(query))
	closeTx(err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrJobNotFound
	}
	if err != nil {
		log.Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return job, nil
}

func (p *Postgres) MarkJobDone(ctx context.Context, jobUuid uuid.UUID, chatUuid uuid.UUID, messages int) error {
	const op = "postgres.MarkJobDone"
	query := fmt.Sprintf("UPDATE %s SET status = 'done', chat_uuid = $1, messages = $2, error = NULL, finished_at = $3 WHERE uuid = $4", importJobsTable)
	return p.updateJob(ctx, op, query, chatUuid, messages, time.Now(), jobUuid)
}

func (p *Postgres) MarkJobFailed(ctx context.Context, jobUuid uuid.UUID, jobErr string) error {
	const op = "postgres.MarkJobFailed"
	query := fmt.Sprintf("UPDATE %s SET status = 'failed', error = $1, finished_at = $2 WHERE uuid = $3", importJobsTable)
	return p.updateJob(ctx, op, query, jobErr, time.Now(), jobUuid)
}

func (p *Postgres) RequeueJob(ctx context.Context, jobUuid uuid.UUID) error {
	const op = "postgres.RequeueJob"
	log := p.log.With(slog.String("op", op))

	tx, closeTx := p.extractTx(ctx)

	query := fmt.Sprintf("UPDATE %s SET status = 'queued', attempts = attempts + 1, error = NULL, finished_at = NULL WHERE uuid = $1 AND status = 'failed'", importJobsTable)
	res, err := tx.Exec(query, jobUuid)

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
		return storage.ErrJobNotFound
	}

	return nil
}

func (p *Postgres) updateJob(ctx context.Context, op string, query string, args ...any) error {
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.ImportJob, error) {
	pgJob := ImportJob{}
	err := row.Scan(&pgJob.Uuid, &pgJob.OwnerUuid, &pgJob.Filename, &pgJob.Status, &pgJob.Attempts,
		&pgJob.Error, &pgJob.ChatUuid, &pgJob.Messages, &pgJob.CreatedAt, &pgJob.FinishedAt)
	if err != nil {
		return nil, err
	}

	job := domain.ImportJob{
		Uuid:       pgJob.Uuid,
		OwnerUuid:  pgJob.OwnerUuid,
		Filename:   pgJob.Filename,
		Status:     domain.ImportStatus(pgJob.Status),
		Attempts:   pgJob.Attempts,
		ChatUuid:   pgJob.ChatUuid,
		Messages:   pgJob.Messages,
		CreatedAt:  pgJob.CreatedAt,
		FinishedAt: pgJob.FinishedAt,
	}
	if pgJob.Error != nil {
		job.Error = *pgJob.Error
	}
	return &job, nil
}
