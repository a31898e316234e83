package outbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type OutboxProvider interface {
	GetNextOutbox(ctx context.Context) (*domain.Outbox, error)
	ConfirmOutboxSent(ctx context.Context, id int) error
}

var (
	ErrNoConnection = errors.New("can't establish connection to kafka")
)

// Publisher relays unsent outbox rows to Kafka. Rows are confirmed only
// after the broker acks, so a crash between produce and confirm means
// at-least-once delivery, never loss.
type Publisher struct {
	log      *slog.Logger
	producer sarama.SyncProducer
	outbox   OutboxProvider
	period   time.Duration

	stop chan struct{}
	done chan struct{}
}

func New(log *slog.Logger, outbox OutboxProvider, brokers []string, period time.Duration) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("can't connect to Kafka: %w", ErrNoConnection)
	}

	return &Publisher{
		log:      log,
		producer: producer,
		outbox:   outbox,
		period:   period,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

func (p *Publisher) Start() {
	const op = "outbox.Start"
	log := p.log.With(slog.String("op", op))

	log.Info("outbox publisher is running", slog.Duration("period", p.period))

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.period)
		defer ticker.Stop()

		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.publishPending(context.Background())
			}
		}
	}()
}

func (p *Publisher) Stop() {
	const op = "outbox.Stop"
	log := p.log.With(slog.String("op", op))

	log.Info("outbox publisher is stopping")
	close(p.stop)
	<-p.done

	if err := p.producer.Close(); err != nil {
		log.Error("can't close kafka producer", sl.Err(err))
	}
}

func (p *Publisher) publishPending(ctx context.Context) {
	const op = "outbox.publishPending"
	log := p.log.With(slog.String("op", op))

	for {
		outbox, err := p.outbox.GetNextOutbox(ctx)
		if errors.Is(err, storage.ErrNoOutbox) {
			return
		}
		if err != nil {
			log.Error("failed to read outbox", sl.Err(err))
			return
		}

		partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: outbox.Topic,
			Key:   sarama.StringEncoder(outbox.Key.String()),
			Value: sarama.ByteEncoder(outbox.Message),
		})
		if err != nil {
			log.Error("failed to produce event", sl.Err(err))
			return
		}

		if err := p.outbox.ConfirmOutboxSent(ctx, outbox.Id); err != nil {
			log.Error("failed to confirm outbox", sl.Err(err))
			return
		}

		log.Info("produced event",
			slog.String("topic", outbox.Topic),
			slog.Int("partition", int(partition)),
			slog.Int64("offset", offset),
		)
	}
}
