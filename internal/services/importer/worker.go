package importer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/metrics"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type ChatWriter interface {
	CreateChat(ctx context.Context, chat domain.Chat) error
	CreateMessages(ctx context.Context, chatUuid uuid.UUID, messages []domain.Message) error
}

type ImportNotifier interface {
	CreateImportOutbox(ctx context.Context, event domain.ImportEvent) error
}

type TxRunner interface {
	WithTx(ctx context.Context, tFunc func(ctx context.Context) error) error
}

const messageBatchSize = 200

// Worker drains queued import jobs one at a time. It never retries on its
// own: a failed job stays failed until the owner requeues it.
type Worker struct {
	log *slog.Logger

	jobs       JobStorage
	chats      ChatWriter
	progress   ProgressStore
	notifier   ImportNotifier
	tx         TxRunner
	pollPeriod time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewWorker(
	log *slog.Logger,
	jobs JobStorage,
	chats ChatWriter,
	progress ProgressStore,
	notifier ImportNotifier,
	tx TxRunner,
	pollPeriod time.Duration,
) *Worker {
	return &Worker{
		log:        log,
		jobs:       jobs,
		chats:      chats,
		progress:   progress,
		notifier:   notifier,
		tx:         tx,
		pollPeriod: pollPeriod,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (w *Worker) Start() {
	const op = "importer.Start"
	log := w.log.With(slog.String("op", op))

	log.Info("import worker is running", slog.Duration("poll_period", w.pollPeriod))

	go func() {
		defer close(w.done)
		ticker := time.NewTicker(w.pollPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.drainQueue(context.Background())
			}
		}
	}()
}

func (w *Worker) Stop() {
	const op = "importer.Stop"
	log := w.log.With(slog.String("op", op))

	log.Info("import worker is stopping")
	close(w.stop)
	<-w.done
}

func (w *Worker) drainQueue(ctx context.Context) {
	for {
		job, err := w.jobs.ClaimNextJob(ctx)
		if errors.Is(err, storage.ErrJobNotFound) {
			return
		}
		if err != nil {
			w.log.Error("failed to claim import job", sl.Err(err))
			return
		}
		w.ProcessJob(ctx, job)
	}
}

// ProcessJob runs one claimed job to completion: parse the stored payload,
// create the chat and its messages transactionally, record the outbox
// event, and mark the job done or failed.
func (w *Worker) ProcessJob(ctx context.Context, job *domain.ImportJob) {
	const op = "importer.ProcessJob"
	log := w.log.With(slog.String("op", op), slog.String("job", job.Uuid.String()))

	payload, err := w.jobs.GetJobPayload(ctx, job.Uuid)
	if err != nil {
		log.Error("failed to load job payload", sl.Err(err))
		w.fail(ctx, job, err)
		return
	}

	export, err := ParseExport(payload)
	if err != nil {
		log.Warn("rejected import payload", sl.Err(err))
		w.fail(ctx, job, err)
		return
	}

	chat := domain.Chat{
		Uuid:      uuid.New(),
		OwnerUuid: job.OwnerUuid,
		Name:      export.Name,
		Source:    export.Source,
		CreatedAt: time.Now(),
	}

	total := len(export.Messages)
	w.report(ctx, job.Uuid, domain.ImportProgress{Processed: 0, Total: total})

	err = w.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := w.chats.CreateChat(ctx, chat); err != nil {
			return err
		}

		for start := 0; start < total; start += messageBatchSize {
			end := start + messageBatchSize
			if end > total {
				end = total
			}
			batch := make([]domain.Message, 0, end-start)
			for _, m := range export.Messages[start:end] {
				batch = append(batch, toMessage(chat.Uuid, m))
			}
			if err := w.chats.CreateMessages(ctx, chat.Uuid, batch); err != nil {
				return err
			}
			w.report(ctx, job.Uuid, domain.ImportProgress{Processed: end, Total: total})
		}

		if err := w.jobs.MarkJobDone(ctx, job.Uuid, chat.Uuid, total); err != nil {
			return err
		}

		return w.notifier.CreateImportOutbox(ctx, domain.ImportEvent{
			JobUuid:   job.Uuid,
			ChatUuid:  chat.Uuid,
			OwnerUuid: job.OwnerUuid,
			Messages:  total,
		})
	})
	if err != nil {
		log.Error("import failed", sl.Err(err))
		w.fail(ctx, job, err)
		return
	}

	metrics.ImportsFinished.WithLabelValues(string(domain.ImportDone)).Inc()
	log.Info("import finished",
		slog.String("chat", chat.Uuid.String()),
		slog.Int("messages", total),
	)
}

func (w *Worker) fail(ctx context.Context, job *domain.ImportJob, cause error) {
	metrics.ImportsFinished.WithLabelValues(string(domain.ImportFailed)).Inc()
	if err := w.jobs.MarkJobFailed(ctx, job.Uuid, cause.Error()); err != nil {
		w.log.Error("failed to mark import job failed", sl.Err(err))
	}
}

func (w *Worker) report(ctx context.Context, jobUuid uuid.UUID, progress domain.ImportProgress) {
	if err := w.progress.SetProgress(ctx, jobUuid, progress); err != nil {
		w.log.Warn("failed to write import progress", sl.Err(err))
	}
}

func toMessage(chatUuid uuid.UUID, m ExportMessage) domain.Message {
	msg := domain.Message{
		Uuid:     uuid.New(),
		ChatUuid: chatUuid,
		Author:   m.Author,
		Body:     m.Body,
		SentAt:   m.SentAt,
	}
	for _, a := range m.Attachments {
		msg.Attachments = append(msg.Attachments, domain.Attachment{Name: a.Name, Mime: a.Mime, Size: a.Size})
	}
	return msg
}
