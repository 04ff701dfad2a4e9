package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ibeloyar/fueldispatch/internal/config"
	"github.com/ibeloyar/fueldispatch/internal/repository/events"
	"github.com/ibeloyar/fueldispatch/internal/repository/mirror"
	"github.com/ibeloyar/fueldispatch/internal/repository/pg"
	"github.com/ibeloyar/fueldispatch/internal/service"
	"github.com/ibeloyar/fueldispatch/pgk/logger"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/fueldispatch/internal/controller/http"
)

const producerName = "fueldispatch"

type documentMirror interface {
	service.DocumentMirror
	Shutdown() error
}

type eventPublisher interface {
	service.EventPublisher
	Shutdown() error
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	storage, err := pg.New(cfg.DatabaseURI)
	if err != nil {
		return err
	}

	orderMirror, err := newMirror(cfg, lg)
	if err != nil {
		_ = storage.Shutdown()
		return err
	}

	orderEvents := newEvents(cfg, lg)

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	s := service.New(storage, orderMirror, orderEvents, loc, lg)

	handlers := httpController.New(s, lg)
	router = httpController.InitRoutes(router, handlers)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	if err := orderEvents.Shutdown(); err != nil {
		lg.Errorf("shutdown (events) error: %v", err)
	}

	if err := orderMirror.Shutdown(); err != nil {
		lg.Errorf("shutdown (mirror) error: %v", err)
	}

	if err := storage.Shutdown(); err != nil {
		return fmt.Errorf("shutdown (repo) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}

// newMirror - без адреса Redis зеркало отключено
func newMirror(cfg config.Config, lg *zap.SugaredLogger) (documentMirror, error) {
	if cfg.RedisAddress == "" {
		lg.Info("order mirror disabled")
		return mirror.Nop{}, nil
	}

	m, err := mirror.New(cfg.RedisAddress)
	if err != nil {
		return nil, err
	}

	lg.Infof("order mirror on %s", cfg.RedisAddress)
	return m, nil
}

func newEvents(cfg config.Config, lg *zap.SugaredLogger) eventPublisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		lg.Info("order events disabled")
		return events.Nop{}
	}

	lg.Infof("order events to topic %s on %v", cfg.KafkaTopic, brokers)
	return events.New(brokers, cfg.KafkaTopic, producerName)
}
