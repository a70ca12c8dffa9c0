package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Totarae/FaleProxy/internal/config"
	"github.com/Totarae/FaleProxy/internal/fetcher"
	grpcv1 "github.com/Totarae/FaleProxy/internal/grpc/v1"
	"github.com/Totarae/FaleProxy/internal/handlers"
	"github.com/Totarae/FaleProxy/internal/router"
	"github.com/Totarae/FaleProxy/internal/service"
	"github.com/Totarae/FaleProxy/internal/transform"
	"github.com/Totarae/FaleProxy/internal/validation"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	replacer, err := transform.NewTextReplacer(cfg.Rules, cfg.SkipTags)
	if err != nil {
		return err
	}
	contract, err := validation.NewFetchRequestContract()
	if err != nil {
		return err
	}

	f := fetcher.New(fetcher.Options{
		Timeout:      cfg.FetchTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
		UserAgent:    cfg.UserAgent,
	})
	svc := service.NewProxyService(f, replacer, logger)
	handler := handlers.NewHandler(svc, contract, logger)

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router.NewRouter(handler, logger),
	}

	errCh := make(chan error, 2)

	var grpcServer *grpc.Server
	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return err
		}
		grpcServer = grpcv1.NewServer(grpcv1.NewGRPCServer(svc, logger), logger)
		go func() {
			logger.Info("gRPC server started", zap.String("address", cfg.GRPCAddress))
			errCh <- grpcServer.Serve(lis)
		}()
	}

	go func() {
		logger.Info("Server started",
			zap.String("address", cfg.ServerAddress),
			zap.Bool("https", cfg.EnableHTTPS),
			zap.Int("rules", len(cfg.Rules)),
		)
		var err error
		if cfg.EnableHTTPS {
			err = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	return srv.Shutdown(shutdownCtx)
}
