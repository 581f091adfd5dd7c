package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"moviecatalog/pkg/catalog"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/logger"

	"github.com/alecthomas/kong"
)

type seedCLI struct {
	File    string        `arg:"" type:"existingfile" help:"CSV fixture with header title,year,genre,rating,cast,classification,synopsis."`
	Limit   int           `help:"Import at most this many rows (0 = all)." default:"0"`
	DryRun  bool          `help:"Parse the fixture without writing to the store."`
	Timeout time.Duration `help:"Deadline for the whole import." default:"1m"`
}

func main() {
	var args seedCLI
	kctx := kong.Parse(&args,
		kong.Name("movieseed"),
		kong.Description("Load a movie fixture into the catalog store selected by DB_DRIVER."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(args.Run())
}

func (a *seedCLI) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(a.File)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := readFixture(f, a.Limit)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", a.File, err)
	}
	if a.DryRun {
		log.Infow("fixture parsed", "rows", len(records))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	store, closeStore, err := catalog.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Errorw("cannot close catalog store", "error", err)
		}
	}()

	count, err := store.ImportMovies(ctx, records)
	if err != nil {
		return fmt.Errorf("import movies: %w", err)
	}

	log.Infow("import completed", "rows", count, "driver", cfg.DB.Driver)
	return nil
}
