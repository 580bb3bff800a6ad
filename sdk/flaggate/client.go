// Package flaggate is a thin client for the FlagGate gRPC surface.
//
// Every call fails closed: when the service cannot be reached the flag is
// reported as disabled with no variant.
package flaggate

import (
	"context"
	"errors"
	"net"
	"time"

	backoff "github.com/cenkalti/backoff/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	pb "gitlab.com/devpro_studio/FlagGate/src/controller/FlagGateGRPC"
)

// Subject identifies who a flag is evaluated for.
type Subject struct {
	ID   string
	Role string
}

// Result mirrors one server-side assignment. Variant is empty unless Enabled.
type Result struct {
	FlagID  string
	Enabled bool
	Variant string
	Reason  string
}

// Options configures the Client
type Options struct {
	// Per-call deadline; defaults to 2s
	CallTimeout time.Duration
	// Attempts for calls failing with Unavailable; defaults to 3
	MaxTries uint
	// Extra dial options, e.g. a custom dialer in tests
	DialOptions []grpc.DialOption
}

type Client struct {
	conn        *grpc.ClientConn
	client      pb.FlagGateClient
	callTimeout time.Duration
	maxTries    uint
}

// New creates a Client. Address must be host:port of the gRPC server.
func New(address string, opts Options) (*Client, error) {
	if _, _, err := net.SplitHostPort(address); err != nil {
		return nil, errors.New("address must be in host:port format")
	}
	return newClient(address, opts)
}

func newClient(target string, opts Options) (*Client, error) {
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 2 * time.Second
	}
	if opts.MaxTries == 0 {
		opts.MaxTries = 3
	}

	dial := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts.DialOptions...)
	conn, err := grpc.NewClient(target, dial...)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:        conn,
		client:      pb.NewFlagGateClient(conn),
		callTimeout: opts.CallTimeout,
		maxTries:    opts.MaxTries,
	}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// IsEnabled reports false on any error.
func (c *Client) IsEnabled(ctx context.Context, flagID string, subject Subject) bool {
	res, err := c.Evaluate(ctx, flagID, subject)
	return err == nil && res.Enabled
}

// GetVariant returns "" when the flag is off for the subject or on any error.
func (c *Client) GetVariant(ctx context.Context, flagID string, subject Subject) string {
	res, err := c.Evaluate(ctx, flagID, subject)
	if err != nil {
		return ""
	}
	return res.Variant
}

func (c *Client) Evaluate(ctx context.Context, flagID string, subject Subject) (Result, error) {
	req := pb.FlagRequest(flagID, subject.ID, subject.Role)

	out, err := call(ctx, c, func(cctx context.Context) (*structpb.Struct, error) {
		return c.client.Evaluate(cctx, req)
	})
	if err != nil {
		return Result{}, err
	}
	return resultFromStruct(out), nil
}

// EvaluateAll returns every flag the server knows, evaluated for subject.
func (c *Client) EvaluateAll(ctx context.Context, subject Subject) ([]Result, error) {
	req := pb.SubjectRequest(subject.ID, subject.Role)

	out, err := call(ctx, c, func(cctx context.Context) (*structpb.ListValue, error) {
		return c.client.EvaluateAll(cctx, req)
	})
	if err != nil {
		return nil, err
	}

	res := make([]Result, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		res = append(res, resultFromStruct(v.GetStructValue()))
	}
	return res, nil
}

// call retries only transient transport failures.
func call[T any](ctx context.Context, c *Client, op func(context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond

	return backoff.Retry(ctx, func() (T, error) {
		cctx, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		res, err := op(cctx)
		if err != nil && status.Code(err) != codes.Unavailable {
			return res, backoff.Permanent(err)
		}
		return res, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.maxTries),
	)
}

func resultFromStruct(s *structpb.Struct) Result {
	return Result(pb.AssignmentFromStruct(s))
}
