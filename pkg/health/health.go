package health

import (
	"fmt"
	"log"
	"net"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported to the gRPC health checks.
const ServiceName = "winalyze.AnalysisService"

// Server exposes the standard gRPC health service for orchestrators.
type Server struct {
	grpcServer   *grpc.Server
	healthServer *health.Server
	listener     net.Listener
	serving      atomic.Bool
}

// Start listens on addr and serves the health service in the background.
func Start(addr string) (*Server, error) {
	// Start a TPC listener.
	list, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the tcp server: %w", err)
	}

	// Create the server and register the health check.
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	s := &Server{
		grpcServer:   grpcServer,
		healthServer: healthServer,
		listener:     list,
	}
	s.SetServing(true)

	// Run a go routine for the grpc server.
	go func() {
		log.Printf("Running gRPC health server on %s.", list.Addr())
		if err := grpcServer.Serve(list); err != nil {
			log.Printf("gRPC health server stopped: %v", err)
		}
	}()

	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// SetServing updates the status of the service and of the server as a whole.
func (s *Server) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}

	s.serving.Store(serving)
	s.healthServer.SetServingStatus("", status)
	s.healthServer.SetServingStatus(ServiceName, status)
}

// Serving reports the current status.
func (s *Server) Serving() bool {
	return s.serving.Load()
}

// Stop marks the service as not serving and stops the server gracefully.
func (s *Server) Stop() {
	s.SetServing(false)
	s.healthServer.Shutdown()
	s.grpcServer.GracefulStop()
}
