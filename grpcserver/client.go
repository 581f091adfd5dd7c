package grpcserver

import (
	"context"

	"moviecatalog/movie"

	"google.golang.org/grpc"
)

// Client calls a catalog gRPC server. It satisfies movie.Service.
type Client struct {
	conn *grpc.ClientConn
}

func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

func (c *Client) FindByTitle(ctx context.Context, title string) ([]movie.Movie, error) {
	out := new(MoviesResponse)
	err := c.conn.Invoke(ctx, "/"+serviceName+"/FindByTitle", &FindByTitleRequest{Title: title}, out, grpc.ForceCodec(codec{}))
	if err != nil {
		return nil, err
	}
	return out.Movies, nil
}

func (c *Client) FindCommon(ctx context.Context, actor1, actor2 string) ([]movie.Movie, error) {
	out := new(MoviesResponse)
	req := &FindCommonRequest{Actor1: actor1, Actor2: actor2}
	err := c.conn.Invoke(ctx, "/"+serviceName+"/FindCommon", req, out, grpc.ForceCodec(codec{}))
	if err != nil {
		return nil, err
	}
	return out.Movies, nil
}
