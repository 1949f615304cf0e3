package grpc

import (
	"context"

	"github.com/metrondb/metrond/internal/errors"
	"github.com/metrondb/metrond/internal/ingest"
	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/point"
	"github.com/metrondb/metrond/internal/query"
	pb "github.com/metrondb/metrond/proto/metrics/v1"
)

// MetricHandler implements the MetricService RPCs against the shared
// ingestion writer and query engine.
type MetricHandler struct {
	pb.UnimplementedMetricServiceServer

	writer  *ingest.Writer
	queries *query.Engine
	logger  *logging.Logger
}

// NewMetricHandler creates a new metric service handler
func NewMetricHandler(writer *ingest.Writer, queries *query.Engine, logger *logging.Logger) *MetricHandler {
	return &MetricHandler{
		writer:  writer,
		queries: queries,
		logger:  logger,
	}
}

// Record writes a batch of points through the ingestion path. The batch
// is atomic: any invalid point rejects the whole request.
func (h *MetricHandler) Record(ctx context.Context, req *pb.RecordRequest) (*pb.RecordResponse, error) {
	points := make([]point.Point, len(req.Points))
	for i, p := range req.Points {
		points[i] = point.Point{
			Name:      p.GetName(),
			Timestamp: p.GetTimestampMs(),
			Value:     p.GetValue(),
		}
	}

	if err := h.writer.WriteBatch(ctx, points); err != nil {
		h.logger.Warn("Record rejected", "points", len(points), "error", err)
		return nil, errors.ToStatus(err)
	}

	h.logger.Debug("Record accepted", "points", len(points))

	return &pb.RecordResponse{Accepted: uint32(len(points))}, nil
}

// Query streams matching points to the client in store order (name
// lexicographic, then timestamp ascending). Points are produced lazily
// from the storage iterator; a client that goes away cancels the stream
// context and the scan is released without draining.
func (h *MetricHandler) Query(req *pb.QueryRequest, stream pb.MetricService_QueryServer) error {
	q := query.Query{
		Prefix: req.GetPrefix(),
		Start:  req.GetStartMs(),
		End:    req.GetEndMs(),
	}

	it, err := h.queries.Run(stream.Context(), q)
	if err != nil {
		h.logger.Warn("Query rejected", "prefix", q.Prefix, "error", err)
		return errors.ToStatus(err)
	}
	defer it.Close()

	sent := 0
	for it.Next() {
		p := it.Point()
		if err := stream.Send(&pb.MetricPoint{
			Name:        p.Name,
			TimestampMs: p.Timestamp,
			Value:       p.Value,
		}); err != nil {
			return err
		}
		sent++
	}
	if err := it.Err(); err != nil {
		h.logger.Error("Query scan failed", "prefix", q.Prefix, "sent", sent, "error", err)
		return errors.ToStatus(err)
	}

	h.logger.Debug("Query completed", "prefix", q.Prefix, "sent", sent)
	return nil
}
