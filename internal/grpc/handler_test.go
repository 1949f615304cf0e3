package grpc

import (
	"context"
	"math"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/metrondb/metrond/internal/ingest"
	"github.com/metrondb/metrond/internal/logging"
	"github.com/metrondb/metrond/internal/query"
	"github.com/metrondb/metrond/internal/storage"
	pb "github.com/metrondb/metrond/proto/metrics/v1"
)

func newTestHandler(t *testing.T) *MetricHandler {
	t.Helper()

	store, err := storage.Open(storage.MemoryLocation)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := logging.NewDevelopment()
	return NewMetricHandler(
		ingest.NewWriter(store, logger),
		query.NewEngine(store, logger),
		logger,
	)
}

// fakeQueryStream captures streamed points in place of a network stream.
// Only Context and Send are exercised by the handler.
type fakeQueryStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*pb.MetricPoint
}

func (s *fakeQueryStream) Context() context.Context { return s.ctx }

func (s *fakeQueryStream) Send(p *pb.MetricPoint) error {
	s.sent = append(s.sent, p)
	return nil
}

func TestRecord(t *testing.T) {
	tests := []struct {
		name         string
		req          *pb.RecordRequest
		wantAccepted uint32
		wantCode     codes.Code
	}{
		{
			name: "valid batch",
			req: &pb.RecordRequest{
				Points: []*pb.MetricPoint{
					{Name: "hosts.aura.cpu_load", TimestampMs: 100, Value: 0.5},
					{Name: "hosts.beta.cpu_load", TimestampMs: 150, Value: 0.9},
				},
			},
			wantAccepted: 2,
			wantCode:     codes.OK,
		},
		{
			name:         "empty batch",
			req:          &pb.RecordRequest{},
			wantAccepted: 0,
			wantCode:     codes.OK,
		},
		{
			name: "invalid point rejects whole batch",
			req: &pb.RecordRequest{
				Points: []*pb.MetricPoint{
					{Name: "hosts.aura.cpu_load", TimestampMs: 100, Value: 0.5},
					{Name: "", TimestampMs: 150, Value: 0.9},
				},
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "non-finite value",
			req: &pb.RecordRequest{
				Points: []*pb.MetricPoint{
					{Name: "hosts.aura.cpu_load", TimestampMs: 100, Value: math.NaN()},
				},
			},
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			resp, err := h.Record(context.Background(), tt.req)
			if got := status.Code(err); got != tt.wantCode {
				t.Fatalf("status code = %v, want %v (err: %v)", got, tt.wantCode, err)
			}
			if tt.wantCode != codes.OK {
				return
			}
			if resp.GetAccepted() != tt.wantAccepted {
				t.Errorf("accepted = %d, want %d", resp.GetAccepted(), tt.wantAccepted)
			}
		})
	}
}

func TestRecord_RejectedBatchLeavesStoreUntouched(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	_, err := h.Record(ctx, &pb.RecordRequest{
		Points: []*pb.MetricPoint{
			{Name: "hosts.aura.cpu_load", TimestampMs: 100, Value: 0.5},
			{Name: "", TimestampMs: 150, Value: 0.9},
		},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want InvalidArgument", status.Code(err))
	}

	stream := &fakeQueryStream{ctx: ctx}
	if err := h.Query(&pb.QueryRequest{Prefix: "", StartMs: 0, EndMs: 1000}, stream); err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stream.sent) != 0 {
		t.Errorf("store contains %d points after rejected batch, want 0", len(stream.sent))
	}
}

func TestQuery(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	_, err := h.Record(ctx, &pb.RecordRequest{
		Points: []*pb.MetricPoint{
			{Name: "hosts.beta.cpu_load", TimestampMs: 150, Value: 0.9},
			{Name: "hosts.aura.cpu_load", TimestampMs: 200, Value: 0.7},
			{Name: "hosts.aura.cpu_load", TimestampMs: 100, Value: 0.5},
		},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	tests := []struct {
		name      string
		req       *pb.QueryRequest
		wantNames []string
		wantCode  codes.Code
	}{
		{
			name:      "prefix filter",
			req:       &pb.QueryRequest{Prefix: "hosts.aura", StartMs: 0, EndMs: 1000},
			wantNames: []string{"hosts.aura.cpu_load", "hosts.aura.cpu_load"},
			wantCode:  codes.OK,
		},
		{
			name:      "time filter",
			req:       &pb.QueryRequest{Prefix: "hosts", StartMs: 150, EndMs: 1000},
			wantNames: []string{"hosts.aura.cpu_load", "hosts.beta.cpu_load"},
			wantCode:  codes.OK,
		},
		{
			name:      "no matches",
			req:       &pb.QueryRequest{Prefix: "sensors", StartMs: 0, EndMs: 1000},
			wantNames: nil,
			wantCode:  codes.OK,
		},
		{
			name:     "start after end",
			req:      &pb.QueryRequest{Prefix: "hosts", StartMs: 1000, EndMs: 0},
			wantCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &fakeQueryStream{ctx: ctx}

			err := h.Query(tt.req, stream)
			if got := status.Code(err); got != tt.wantCode {
				t.Fatalf("status code = %v, want %v (err: %v)", got, tt.wantCode, err)
			}
			if tt.wantCode != codes.OK {
				return
			}

			if len(stream.sent) != len(tt.wantNames) {
				t.Fatalf("streamed %d points, want %d", len(stream.sent), len(tt.wantNames))
			}
			for i, p := range stream.sent {
				if p.GetName() != tt.wantNames[i] {
					t.Errorf("point %d name = %q, want %q", i, p.GetName(), tt.wantNames[i])
				}
			}
		})
	}
}

func TestQuery_StreamOrder(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	_, err := h.Record(ctx, &pb.RecordRequest{
		Points: []*pb.MetricPoint{
			{Name: "c.metric", TimestampMs: 10, Value: 1},
			{Name: "a.metric", TimestampMs: 30, Value: 2},
			{Name: "a.metric", TimestampMs: 10, Value: 3},
			{Name: "b.metric", TimestampMs: 20, Value: 4},
		},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	stream := &fakeQueryStream{ctx: ctx}
	if err := h.Query(&pb.QueryRequest{StartMs: 0, EndMs: 100}, stream); err != nil {
		t.Fatalf("query: %v", err)
	}

	for i := 1; i < len(stream.sent); i++ {
		prev, cur := stream.sent[i-1], stream.sent[i]
		ordered := prev.GetName() < cur.GetName() ||
			(prev.GetName() == cur.GetName() && prev.GetTimestampMs() < cur.GetTimestampMs())
		if !ordered {
			t.Errorf("points %d and %d out of order: %v, %v", i-1, i, prev, cur)
		}
	}
}
