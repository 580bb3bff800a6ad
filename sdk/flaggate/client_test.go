package flaggate

import (
	"context"
	"net"
	"sync/atomic"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	pb "gitlab.com/devpro_studio/FlagGate/src/controller/FlagGateGRPC"
)

type fakeServer struct {
	pb.UnimplementedFlagGateServer
	failures atomic.Int32
	calls    atomic.Int32
	code     codes.Code
}

func (f *fakeServer) Evaluate(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f.calls.Add(1)
	if f.failures.Add(-1) >= 0 {
		return nil, status.Error(f.code, "try later")
	}
	flagID := in.GetFields()["flag_id"].GetStringValue()
	return structpb.NewStruct(map[string]any{
		"flag_id": flagID,
		"enabled": true,
		"variant": "B",
		"reason":  "included",
	})
}

func (f *fakeServer) EvaluateAll(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return structpb.NewList([]any{
		map[string]any{"flag_id": "a", "enabled": true, "variant": "A", "reason": "included"},
		map[string]any{"flag_id": "b", "enabled": false, "variant": nil, "reason": "disabled"},
	})
}

func startServer(t *testing.T, srv *fakeServer) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	s.RegisterService(&pb.FlagGate_ServiceDesc, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, err := newClient("passthrough:///bufnet", Options{
		DialOptions: []grpc.DialOption{
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		},
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("localhost", Options{}); err == nil {
		t.Fatalf("expected error for bad address format")
	}
}

func TestEvaluate_RetriesUnavailable(t *testing.T) {
	srv := &fakeServer{code: codes.Unavailable}
	srv.failures.Store(2)
	c := startServer(t, srv)

	res, err := c.Evaluate(context.Background(), "beta-x", Subject{ID: "u1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Enabled || res.Variant != "B" || res.FlagID != "beta-x" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if srv.calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", srv.calls.Load())
	}
}

func TestEvaluate_FailsClosed(t *testing.T) {
	srv := &fakeServer{code: codes.InvalidArgument}
	srv.failures.Store(100)
	c := startServer(t, srv)

	if c.IsEnabled(context.Background(), "beta-x", Subject{ID: "u1"}) {
		t.Fatalf("expected disabled on error")
	}
	if v := c.GetVariant(context.Background(), "beta-x", Subject{ID: "u1"}); v != "" {
		t.Fatalf("expected no variant on error, got %q", v)
	}
	// non-transient errors are not retried
	if srv.calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", srv.calls.Load())
	}
}

func TestEvaluateAll(t *testing.T) {
	c := startServer(t, &fakeServer{})

	res, err := c.EvaluateAll(context.Background(), Subject{ID: "u1", Role: "student"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res) != 2 || !res[0].Enabled || res[1].Enabled || res[1].Variant != "" {
		t.Fatalf("unexpected results: %+v", res)
	}
}
