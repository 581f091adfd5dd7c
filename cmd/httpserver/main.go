package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecatalog/grpcserver"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/catalog"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"
	"moviecatalog/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := catalog.Open(ctx, cfg)
	if err != nil {
		log.Fatalw("cannot open catalog store", "driver", cfg.DB.Driver, "error", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Errorw("cannot close catalog store", "error", err)
		}
	}()

	movieService := movie.NewUsecase(store)

	server := httpserver.Default(cfg)
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.Logger = log
	server.MovieService = movieService

	var rpc *grpcserver.Server
	if cfg.GRPCPort != 0 {
		rpc = grpcserver.New(fmt.Sprintf(":%d", cfg.GRPCPort), movieService)
		rpc.Logger = log
		go func() {
			log.Infow("grpc server started", "addr", rpc.Addr)
			if err := rpc.Start(); err != nil {
				log.Errorw("grpc server stopped with error", "error", err)
				stop()
			}
		}()
	}

	go func() {
		log.Infow("server started", "addr", server.Addr, "driver", cfg.DB.Driver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("cannot shutdown server", "error", err)
	}
	if rpc != nil {
		rpc.Stop()
	}
	log.Info("server stopped")
}
