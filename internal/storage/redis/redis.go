package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type Redis struct {
	log *slog.Logger
	db  *redis.Client
	ttl time.Duration
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// ProgressTTL bounds how long a finished job's counters linger.
	ProgressTTL time.Duration
}

var (
	ErrNoConnection = errors.New("can't establish connection to db")
)

func NewRedis(log *slog.Logger, opt RedisOptions) (*Redis, error) {
	db := redis.NewClient(&redis.Options{Addr: opt.Addr, Password: opt.Password, DB: opt.DB})

	_, err := db.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("can't ping Redis DB: %w", ErrNoConnection)
	}
	return &Redis{log: log, db: db, ttl: opt.ProgressTTL}, nil
}

func (r *Redis) Close() error {
	return r.db.Close()
}

type Progress struct {
	Processed int `redis:"processed"`
	Total     int `redis:"total"`
}

func progressKey(jobUuid uuid.UUID) string {
	return "import:progress:" + jobUuid.String()
}

func (r *Redis) SetProgress(ctx context.Context, jobUuid uuid.UUID, progress domain.ImportProgress) error {
	const op = "redis.SetProgress"

	key := progressKey(jobUuid)
	err := r.db.HSet(ctx, key, Progress{Processed: progress.Processed, Total: progress.Total}).Err()
	if err == nil {
		err = r.db.Expire(ctx, key, r.ttl).Err()
	}
	if err != nil {
		r.log.With(slog.String("op", op)).Info("error: ", sl.Err(err))
		return storage.ErrInternal
	}

	return nil
}

func (r *Redis) GetProgress(ctx context.Context, jobUuid uuid.UUID) (*domain.ImportProgress, error) {
	const op = "redis.GetProgress"

	res := r.db.HGetAll(ctx, progressKey(jobUuid))
	if err := res.Err(); err != nil {
		r.log.With(slog.String("op", op)).Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}
	if len(res.Val()) == 0 {
		return nil, storage.ErrProgressNotFound
	}

	var progress Progress
	if err := res.Scan(&progress); err != nil {
		r.log.With(slog.String("op", op)).Info("error: ", sl.Err(err))
		return nil, storage.ErrInternal
	}

	return &domain.ImportProgress{Processed: progress.Processed, Total: progress.Total}, nil
}
