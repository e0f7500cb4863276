package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"skkuri-backend/internal/api/grpc/interceptor"
	"skkuri-backend/internal/logger"
)

// ServiceName is the health-checked service name; "" reports overall status.
const ServiceName = "skkuri.Backend"

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server exposes grpc.health.v1.Health and server reflection.
type Server struct {
	srv    *grpc.Server
	health *health.Server
	db     Pinger
}

func NewServer(db Pinger) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptor.Recovery(), interceptor.Logging()),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)

	// Register reflection service for grpcurl
	reflection.Register(s)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{srv: s, health: hs, db: db}
}

// Probe pings the database and publishes the result as the serving status.
func (s *Server) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	err := s.db.PingContext(ctx)
	if err != nil {
		logger.Warn("Health probe failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return err
}

func (s *Server) Serve(lis net.Listener) error {
	logger.Info("gRPC server listening", "address", lis.Addr().String())
	return s.srv.Serve(lis)
}

// Stop marks every service NOT_SERVING and drains in-flight RPCs.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
