package grpcserver

import (
	"context"
	"strings"

	"moviecatalog/errs"
	"moviecatalog/movie"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "catalog.Catalog"

type FindByTitleRequest struct {
	Title string `json:"title"`
}

type FindCommonRequest struct {
	Actor1 string `json:"actor1"`
	Actor2 string `json:"actor2"`
}

type MoviesResponse struct {
	Movies []movie.Movie `json:"movies"`
}

type catalogServer interface {
	FindByTitle(ctx context.Context, req *FindByTitleRequest) (*MoviesResponse, error)
	FindCommon(ctx context.Context, req *FindCommonRequest) (*MoviesResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*catalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FindByTitle", Handler: findByTitleHandler},
		{MethodName: "FindCommon", Handler: findCommonHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog",
}

type catalogService struct {
	svc movie.Service
}

func (s catalogService) FindByTitle(ctx context.Context, req *FindByTitleRequest) (*MoviesResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, toStatus(movie.ErrInvalidQuery)
	}

	movies, err := s.svc.FindByTitle(ctx, title)
	if err != nil {
		return nil, toStatus(err)
	}
	return &MoviesResponse{Movies: movies}, nil
}

func (s catalogService) FindCommon(ctx context.Context, req *FindCommonRequest) (*MoviesResponse, error) {
	actor1, actor2 := strings.TrimSpace(req.Actor1), strings.TrimSpace(req.Actor2)
	if actor1 == "" || actor2 == "" {
		return nil, toStatus(movie.ErrInvalidQuery)
	}

	movies, err := s.svc.FindCommon(ctx, actor1, actor2)
	if err != nil {
		return nil, toStatus(err)
	}
	return &MoviesResponse{Movies: movies}, nil
}

func toStatus(err error) error {
	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return status.Error(codes.InvalidArgument, errs.ErrorMessage(err))
	case errs.EUNAVAILABLE:
		return status.Error(codes.Unavailable, errs.ErrorMessage(err))
	case errs.ENOTFOUND:
		return status.Error(codes.NotFound, errs.ErrorMessage(err))
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func findByTitleHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindByTitleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(catalogServer).FindByTitle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/FindByTitle",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(catalogServer).FindByTitle(ctx, req.(*FindByTitleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func findCommonHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindCommonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(catalogServer).FindCommon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/FindCommon",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(catalogServer).FindCommon(ctx, req.(*FindCommonRequest))
	}
	return interceptor(ctx, in, info, handler)
}
