// Package grpc exposes ingestion and query as remote procedure calls.
// It is a pure translation layer: proto messages in, core types out,
// core errors mapped to status codes. No storage or query logic lives
// here.
package grpc

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/metrondb/metrond/internal/ingest"
	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/query"
	pb "github.com/metrondb/metrond/proto/metrics/v1"
)

// Server represents the metric gRPC server
type Server struct {
	address    string
	grpcServer *grpc.Server
	logger     *logging.Logger

	// Service handlers
	metricHandler *MetricHandler
}

// NewServer creates a new gRPC server instance
func NewServer(address string, writer *ingest.Writer, queries *query.Engine, logger *logging.Logger) *Server {
	return &Server{
		address:       address,
		logger:        logger,
		metricHandler: NewMetricHandler(writer, queries, logger),
	}
}

// Start starts the gRPC server and blocks until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	opts := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(1024 * 1024 * 10), // 10MB
		grpc.MaxSendMsgSize(1024 * 1024 * 10), // 10MB
	}

	s.grpcServer = grpc.NewServer(opts...)

	pb.RegisterMetricServiceServer(s.grpcServer, s.metricHandler)

	// Register reflection service (for debugging with grpcurl)
	reflection.Register(s.grpcServer)

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}

	s.logger.Info("gRPC server starting", "address", s.address)

	// Start serving in a goroutine
	go func() {
		if err := s.grpcServer.Serve(listener); err != nil {
			s.logger.Error("gRPC server error", "error", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()
	s.logger.Info("Shutting down gRPC server")
	s.Stop()

	return nil
}

// Stop stops the gRPC server gracefully
func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}
