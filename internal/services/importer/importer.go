package importer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/domain/errs"
	"github.com/stuartcarroll/chatextract/internal/metrics"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type JobStorage interface {
	CreateJob(ctx context.Context, job domain.ImportJob, payload []byte) (*domain.ImportJob, error)
	GetJob(ctx context.Context, jobUuid uuid.UUID) (*domain.ImportJob, error)
	GetJobPayload(ctx context.Context, jobUuid uuid.UUID) ([]byte, error)
	ListJobs(ctx context.Context, ownerUuid uuid.UUID) ([]domain.ImportJob, error)
	ClaimNextJob(ctx context.Context) (*domain.ImportJob, error)
	MarkJobDone(ctx context.Context, jobUuid uuid.UUID, chatUuid uuid.UUID, messages int) error
	MarkJobFailed(ctx context.Context, jobUuid uuid.UUID, jobErr string) error
	RequeueJob(ctx context.Context, jobUuid uuid.UUID) error
}

type ProgressStore interface {
	SetProgress(ctx context.Context, jobUuid uuid.UUID, progress domain.ImportProgress) error
	GetProgress(ctx context.Context, jobUuid uuid.UUID) (*domain.ImportProgress, error)
}

var (
	ErrInternal         = errors.New("internal error")
	ErrPermissionDenied = errors.New("have no permission for this operation")
	ErrJobNotFound      = errors.New("import job not found")
	ErrEmptyUpload      = errors.New("uploaded file is empty")
)

// ImportService tracks upload jobs through the queued → running → done /
// failed pipeline. Parsing and chat creation happen in the Worker; this
// service owns the request-facing operations.
type ImportService struct {
	log *slog.Logger

	jobs     JobStorage
	progress ProgressStore
}

func New(log *slog.Logger, jobs JobStorage, progress ProgressStore) *ImportService {
	return &ImportService{log: log, jobs: jobs, progress: progress}
}

// Enqueue stores the raw payload and a queued job. The upload always
// succeeds if it is non-empty: payload problems surface on the job, where
// the client polls for them.
func (s *ImportService) Enqueue(ctx context.Context, user *domain.User, filename string, payload []byte) (*domain.ImportJob, error) {
	const op = "importer.Enqueue"
	log := s.log.With(slog.String("op", op))

	if len(payload) == 0 {
		return nil, ErrEmptyUpload
	}

	job := domain.ImportJob{
		Uuid:      uuid.New(),
		OwnerUuid: user.Uuid,
		Filename:  filename,
		Status:    domain.ImportQueued,
		CreatedAt: time.Now(),
	}

	created, err := s.jobs.CreateJob(ctx, job, payload)
	if err != nil {
		log.Error("failed to create import job", sl.Err(err))
		return nil, ErrInternal
	}

	metrics.ImportsQueued.Inc()
	log.Info("import queued",
		slog.String("job", created.Uuid.String()),
		slog.String("owner", user.Uuid.String()),
		slog.String("filename", filename),
	)
	return created, nil
}

// ownedJob loads a job and checks the caller owns it. Jobs are private to
// their owner, so a foreign uuid reads as missing.
func (s *ImportService) ownedJob(ctx context.Context, user *domain.User, jobUuid uuid.UUID) (*domain.ImportJob, error) {
	job, err := s.jobs.GetJob(ctx, jobUuid)
	if err != nil {
		if errors.Is(err, storage.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if job.OwnerUuid != user.Uuid {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Job returns the job with its live progress, if any.
func (s *ImportService) Job(ctx context.Context, user *domain.User, jobUuid uuid.UUID) (*domain.ImportJob, *domain.ImportProgress, error) {
	job, err := s.ownedJob(ctx, user, jobUuid)
	if err != nil {
		return nil, nil, err
	}

	progress, err := s.progress.GetProgress(ctx, jobUuid)
	if err != nil {
		// Progress is best-effort display state; the job itself is
		// authoritative.
		s.log.Warn("failed to read import progress", sl.Err(err))
		progress = nil
	}

	return job, progress, nil
}

func (s *ImportService) Jobs(ctx context.Context, user *domain.User) ([]domain.ImportJob, error) {
	jobs, err := s.jobs.ListJobs(ctx, user.Uuid)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

// Retry requeues a failed job. Only the owner may retry, and only failed
// jobs are retryable: done jobs would duplicate chats, queued and running
// jobs are already in flight.
func (s *ImportService) Retry(ctx context.Context, user *domain.User, jobUuid uuid.UUID) (*domain.ImportJob, error) {
	const op = "importer.Retry"
	log := s.log.With(slog.String("op", op))

	job, err := s.ownedJob(ctx, user, jobUuid)
	if err != nil {
		return nil, err
	}

	if job.Status != domain.ImportFailed {
		return nil, errs.ErrImportNotFailed
	}

	if err := s.jobs.RequeueJob(ctx, jobUuid); err != nil {
		log.Error("failed to requeue import job", sl.Err(err))
		return nil, ErrInternal
	}

	log.Info("import requeued", slog.String("job", jobUuid.String()), slog.Int("attempts", job.Attempts+1))

	job.Status = domain.ImportQueued
	job.Attempts++
	job.Error = ""
	return job, nil
}
