package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/pkg/jwt"

	"github.com/urfave/cli/v3"
)

// App holds the dependencies of the catalog command line.
type App struct {
	Out    io.Writer
	Open   func(ctx context.Context) (movie.Service, func() error, error)
	Secret func() (string, error)
}

func (a *App) Command() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Search the movie catalog",
		Flags: []cli.Flag{
			&cli.DurationFlag{Name: "timeout", Value: 10 * time.Second, Usage: "deadline for each query"},
		},
		Commands: []*cli.Command{
			{
				Name:      "title",
				Usage:     "list movies whose title contains the text, ignoring case",
				ArgsUsage: "<text>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					title, err := requireArg(cmd, 0, "title")
					if err != nil {
						return err
					}
					return a.run(ctx, cmd, func(ctx context.Context, svc movie.Service) ([]movie.Movie, error) {
						return svc.FindByTitle(ctx, title)
					})
				},
			},
			{
				Name:      "common",
				Usage:     "list movies in which both actors appear",
				ArgsUsage: "<actor1> <actor2>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					actor1, err := requireArg(cmd, 0, "actor1")
					if err != nil {
						return err
					}
					actor2, err := requireArg(cmd, 1, "actor2")
					if err != nil {
						return err
					}
					return a.run(ctx, cmd, func(ctx context.Context, svc movie.Service) ([]movie.Movie, error) {
						return svc.FindCommon(ctx, actor1, actor2)
					})
				},
			},
			{
				Name:  "token",
				Usage: "issue a bearer token for the catalog API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Value: "catalog-cli", Usage: "token subject"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					secret, err := a.Secret()
					if err != nil {
						return err
					}
					token, err := jwt.NewProvider(secret, cmd.Duration("ttl")).Issue(cmd.String("subject"))
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(a.Out, token)
					return err
				},
			},
		},
	}
}

func (a *App) run(ctx context.Context, cmd *cli.Command, query func(context.Context, movie.Service) ([]movie.Movie, error)) error {
	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	svc, closeService, err := a.Open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = closeService() }()

	movies, err := query(ctx, svc)
	if err != nil {
		return err
	}
	return printMovies(a.Out, movies)
}

func requireArg(cmd *cli.Command, i int, name string) (string, error) {
	v := strings.TrimSpace(cmd.Args().Get(i))
	if v == "" {
		return "", errs.Wrap(movie.ErrInvalidQuery, errs.EINVALID, name+" must not be blank")
	}
	return v, nil
}

func printMovies(w io.Writer, movies []movie.Movie) error {
	if len(movies) == 0 {
		_, err := fmt.Fprintln(w, "no movies found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(movie.Columns, "\t"))
	for _, m := range movies {
		fmt.Fprintln(tw, strings.Join(m.Row(), "\t"))
	}
	return tw.Flush()
}
