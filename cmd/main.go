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

	"github.com/samandr77/microservices/cheques/internal/api"
	"github.com/samandr77/microservices/cheques/internal/clients/auth"
	"github.com/samandr77/microservices/cheques/internal/events"
	"github.com/samandr77/microservices/cheques/internal/repository"
	"github.com/samandr77/microservices/cheques/internal/service"
	"github.com/samandr77/microservices/cheques/pkg/broker"
	"github.com/samandr77/microservices/cheques/pkg/config"
	"github.com/samandr77/microservices/cheques/pkg/job"
	"github.com/samandr77/microservices/cheques/pkg/logger"
	"github.com/samandr77/microservices/cheques/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	repo := repository.New(pool)

	recorders := service.Recorders{repository.NewActivityLog(pool)}

	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ActivityTopic)
		defer producer.Close()

		recorders = append(recorders, events.NewActivityPublisher(producer))
	}

	s := service.New(repo, recorders)

	jobs := job.NewRunner().
		TryRegister(cfg.Jobs.AuditEnabled, "audit invoice balances", cfg.Jobs.AuditInterval, s.AuditInvoiceBalances)
	jobs.Start(ctx)

	authService := auth.NewClient(cfg.AuthServiceURL)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authService, cfg.HTTP.CorsOrigins)

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

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
