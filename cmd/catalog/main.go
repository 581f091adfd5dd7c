package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/catalog"
	"moviecatalog/pkg/config"
)

const (
	exitFailure     = 1
	exitInvalid     = 2
	exitUnavailable = 3
)

func main() {
	app := &App{
		Out:    os.Stdout,
		Open:   openService,
		Secret: authSecret,
	}

	if err := app.Command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", describe(err))
		os.Exit(exitCode(err))
	}
}

func openService(ctx context.Context) (movie.Service, func() error, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := catalog.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return movie.NewUsecase(store), closeStore, nil
}

func authSecret() (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Auth.JWTSecret, nil
}

func exitCode(err error) int {
	switch {
	case movie.IsStoreUnavailable(err):
		return exitUnavailable
	case errs.ErrorCode(err) == errs.EINVALID:
		return exitInvalid
	case errors.Is(err, context.DeadlineExceeded):
		return exitUnavailable
	}
	return exitFailure
}

func describe(err error) string {
	if errs.ErrorCode(err) == errs.EINTERNAL {
		return err.Error()
	}
	return errs.ErrorMessage(err)
}
