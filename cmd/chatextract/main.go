package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stuartcarroll/chatextract/internal/config"
	httpserver "github.com/stuartcarroll/chatextract/internal/http"
	"github.com/stuartcarroll/chatextract/internal/http/handlers"
	"github.com/stuartcarroll/chatextract/internal/outbox"
	"github.com/stuartcarroll/chatextract/internal/services/archive"
	"github.com/stuartcarroll/chatextract/internal/services/auth"
	"github.com/stuartcarroll/chatextract/internal/services/gate"
	"github.com/stuartcarroll/chatextract/internal/services/importer"
	"github.com/stuartcarroll/chatextract/internal/services/policy"
	"github.com/stuartcarroll/chatextract/internal/storage/postgres"
	"github.com/stuartcarroll/chatextract/internal/storage/redis"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting application", slog.String("env", cfg.Env))

	log.Info("server params",
		slog.Int("port", cfg.Http.Port),
		slog.Duration("jwt ttl", cfg.User.JwtTTL),
		slog.Duration("import poll period", cfg.Importer.PollPeriod),
	)

	pg, err := postgres.NewWithOptions(log, postgres.ConnectOptions{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DBname:   cfg.Postgres.DBname,
	})
	if err != nil {
		panic("can't initialize postgres storage: " + err.Error())
	}
	defer pg.Close()

	rds, err := redis.NewRedis(log, redis.RedisOptions{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		ProgressTTL: cfg.Importer.ProgressTTL,
	})
	if err != nil {
		panic("can't initialize redis storage: " + err.Error())
	}
	defer rds.Close()

	authService := auth.New(log, pg, auth.JwtParams{
		AccessTtl:  cfg.User.JwtTTL,
		RefreshTtl: cfg.User.RefreshTTL,
		Secret:     []byte(cfg.User.JwtSecret),
	})
	chatPolicy := policy.New(pg, pg)
	archiveService := archive.New(log, chatPolicy, pg, pg)
	importService := importer.New(log, pg, rds)
	chatGate := gate.New()

	worker := importer.NewWorker(log, pg, pg, rds, pg, pg, cfg.Importer.PollPeriod)
	worker.Start()

	publisher, err := outbox.New(log, pg, cfg.Kafka.Brokers, cfg.Kafka.PublishPeriod)
	if err != nil {
		panic("can't initialize outbox publisher: " + err.Error())
	}
	publisher.Start()

	handler := handlers.NewHandler(authService, archiveService, importService, cfg.Importer.MaxUpload)
	router := httpserver.NewRouter(log, handler, authService, chatGate)

	server := httpserver.NewServer(log)
	server.Start(httpserver.ServerOptions{
		Address:        cfg.Http.Address,
		Port:           cfg.Http.Port,
		RequestTimeout: cfg.Http.RequestTimeout,
	}, router)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop

	log.Info("stopping application")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.Stop(ctx)
	publisher.Stop()
	worker.Stop()

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		panic("unknown environment")
	}

	return log
}
