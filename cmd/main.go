package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samandr77/guardbook/internal/api"
	"github.com/samandr77/guardbook/internal/api/events"
	"github.com/samandr77/guardbook/internal/clients/gomail"
	"github.com/samandr77/guardbook/internal/clients/s3"
	"github.com/samandr77/guardbook/internal/clients/sms"
	"github.com/samandr77/guardbook/internal/notification"
	"github.com/samandr77/guardbook/internal/repository"
	"github.com/samandr77/guardbook/internal/service"
	"github.com/samandr77/guardbook/pkg/broker"
	"github.com/samandr77/guardbook/pkg/config"
	"github.com/samandr77/guardbook/pkg/job"
	"github.com/samandr77/guardbook/pkg/logger"
	"github.com/samandr77/guardbook/pkg/postgres"
)

const (
	ReadTimeout     = 30 * time.Second
	WriteTimeout    = 15 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.WagePostedTopic)
	defer producer.Close()

	storage, err := s3.New(ctx, cfg.S3)
	panicOnErr("create s3 client", err)

	s := service.New(cfg, repo, producer, storage)

	// Wage notifications
	{
		var dedup notification.Deduplicator

		if cfg.Redis.Addr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()

			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.WarnContext(ctx, "redis unavailable, notifications may repeat", "error", err)
			}

			dedup = notification.NewRedisDeduplicator(rdb, cfg.Notifier.DedupTTL)
		}

		notifier := notification.New(cfg, sms.NewClient(cfg.SMS), gomail.New(cfg.Mailer), dedup)

		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.WagePostedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(notifier)

		consumer.Handle(cfg.Kafka.WagePostedTopic, eventHandler.OnWagePosted)
		consumer.Consume(ctx)
	}

	jobs := job.NewService().
		TryRegisterJob(cfg.Payroll.PeriodicEnabled, "post periodic wages", cfg.Payroll.PeriodicInterval, s.PostPeriodicWages)
	jobs.Start(ctx)

	handler, err := api.NewHandler(s, cfg.HTTP.MaxUploadSize)
	panicOnErr("create handler", err)

	mw := api.NewMiddleware(s, cfg.HTTP.CORSAllowedOrigins)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, stop := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer stop()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
	}()

	wg.Wait()
	jobs.Stop()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
