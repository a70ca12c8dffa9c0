package v1

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Totarae/FaleProxy/internal/handlers"
	"github.com/Totarae/FaleProxy/internal/service"
)

type GRPCServer struct {
	Service handlers.ContentService
	Logger  *zap.Logger
}

func NewGRPCServer(service handlers.ContentService, logger *zap.Logger) *GRPCServer {
	return &GRPCServer{Service: service, Logger: logger}
}

// Fetch — gRPC-вариант POST /fetch: URL на входе, изменённый HTML на выходе.
func (s *GRPCServer) Fetch(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "URL is required")
	}

	content, err := s.Service.FetchAndTransform(ctx, req.GetValue())
	if err != nil {
		var te *service.TransformError
		if errors.As(err, &te) {
			return nil, status.Errorf(codes.Internal, "Failed to process content: %v", te.Err)
		}
		return nil, status.Errorf(codes.Unavailable, "Failed to fetch content: %v", err)
	}

	return wrapperspb.String(content), nil
}

// NewServer создаёт grpc.Server с зарегистрированным FetchService
// и логированием вызовов.
func NewServer(srv FetchServiceServer, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))
	RegisterFetchServiceServer(s, srv)
	return s
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		logger.Info("gRPC Request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
		)
		return resp, err
	}
}
