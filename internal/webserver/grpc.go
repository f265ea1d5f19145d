package webserver

import (
	"context"
	"log/slog"
	"net"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// HealthService is the service name reported alongside the overall "" status.
const HealthService = "kiu.Streets"

// GRPC serves the standard gRPC health protocol so the web server can be probed by
// orchestrators that speak gRPC.
type GRPC struct {
	logger *slog.Logger
	server *grpc.Server
	health *health.Server
}

func NewGRPC(logger *slog.Logger) *GRPC {
	g := &GRPC{logger: logger, health: health.NewServer()}

	g.server = grpc.NewServer(grpc.UnaryInterceptor(g.logCalls))
	healthpb.RegisterHealthServer(g.server, g.health)
	reflection.Register(g.server)

	g.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	g.health.SetServingStatus(HealthService, healthpb.HealthCheckResponse_SERVING)

	return g
}

func (g *GRPC) logCalls(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		g.logger.Warn("gRPC call failed", "method", info.FullMethod, "error", err)
	} else {
		g.logger.Debug("gRPC call", "method", info.FullMethod)
	}
	return resp, err
}

// Serve blocks serving on lis until Stop is called.
func (g *GRPC) Serve(lis net.Listener) error {
	g.logger.Info("Starting gRPC health server", "address", lis.Addr().String())
	if err := g.server.Serve(lis); err != nil {
		return errors.Wrap(err, "grpc serve")
	}
	return nil
}

// Stop marks every service as not serving and stops the server gracefully.
func (g *GRPC) Stop() {
	g.health.Shutdown()
	g.server.GracefulStop()
}
