package main

import (
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	apiv1 "github.com/mundrapranay/padbreaker/api/v1"
	"github.com/mundrapranay/padbreaker/internal/server"
)

var (
	grpcAddr    = flag.String("grpc-addr", "127.0.0.1:9191", "Address to listen for gRPC API")
	maxSessions = flag.Int("max-sessions", server.DefaultMaxSessions, "Maximum number of open sessions")
	logLevel    = flag.String("log-level", "info", "Log level: trace, debug, info, warn or error")
)

func main() {
	flag.Parse()

	level := hclog.LevelFromString(*logLevel)
	if level == hclog.NoLevel {
		log.Fatalf("Invalid log level: %s", *logLevel)
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "padbreak-server",
		Level:  level,
		Output: os.Stderr,
	})

	breaker := server.NewServer(server.Config{MaxSessions: *maxSessions}, logger)

	lis, err := net.Listen("tcp", *grpcAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(server.LoggingInterceptor(logger.Named("rpc"))))
	apiv1.RegisterBreakerServiceServer(grpcSrv, breaker)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus(apiv1.ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Info("starting gRPC server", "addr", *grpcAddr, "max_sessions", *maxSessions)
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			log.Fatalf("failed to serve gRPC: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down", "open_sessions", breaker.SessionCount())
	healthSrv.Shutdown()
	grpcSrv.GracefulStop()
}
