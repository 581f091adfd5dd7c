package grpcserver

import (
	"context"
	"net"
	"time"

	"moviecatalog/movie"
	"moviecatalog/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type Server struct {
	Addr       string
	Logger     *zap.SugaredLogger
	grpcServer *grpc.Server
	listener   net.Listener
}

func New(addr string, svc movie.Service) *Server {
	s := &Server{
		Addr:   addr,
		Logger: logger.NOOPLogger,
	}
	s.grpcServer = grpc.NewServer(
		grpc.ForceServerCodec(codec{}),
		grpc.ChainUnaryInterceptor(s.logUnary),
	)
	s.grpcServer.RegisterService(&serviceDesc, catalogService{svc: svc})
	return s
}

func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.listener = lis
	return s.grpcServer.Serve(lis)
}

func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

func (s *Server) logUnary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		s.Logger.Errorw("grpc call failed",
			zap.String("method", info.FullMethod),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return resp, err
	}
	s.Logger.Infow("grpc call",
		zap.String("method", info.FullMethod),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp, nil
}
