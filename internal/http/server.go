package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
)

var (
	ErrServerIsAlreadyRunning = errors.New("server is already running")
)

type Server struct {
	log       *slog.Logger
	server    *http.Server
	isRunning bool
}

func NewServer(log *slog.Logger) *Server {
	return &Server{log: log}
}

type ServerOptions struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
}

func (s *Server) Start(opt ServerOptions, handler http.Handler) {
	const op = "http.Start"
	log := s.log.With(slog.String("op", op))

	if s.isRunning {
		log.Error("can't start server", sl.Err(ErrServerIsAlreadyRunning))
		return
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", opt.Address, opt.Port),
		Handler:      http.TimeoutHandler(handler, opt.RequestTimeout, "request timed out"),
		ReadTimeout:  opt.RequestTimeout,
		WriteTimeout: opt.RequestTimeout * 2,
	}

	log.Info("http server is running", slog.String("addr", s.server.Addr))

	s.isRunning = true

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("error with http serve listener", sl.Err(err))
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	const op = "http.Stop"
	log := s.log.With(slog.String("op", op))

	log.Info("http server is stopping")

	if err := s.server.Shutdown(ctx); err != nil {
		log.Error("error with http server shutdown", sl.Err(err))
	}
	s.isRunning = false
}
