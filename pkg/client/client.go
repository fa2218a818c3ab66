package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	apiv1 "github.com/mundrapranay/padbreaker/api/v1"
	"github.com/mundrapranay/padbreaker/internal/pad"
)

// Client provides a Go client library for breaking a reused pad through a
// padbreak-server.
type Client struct {
	conn    *grpc.ClientConn
	service apiv1.BreakerServiceClient
}

// NewClient creates a new client connection to a padbreak-server.
func NewClient(serverAddr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(serverAddr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return &Client{
		conn:    conn,
		service: apiv1.NewBreakerServiceClient(conn),
	}, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Session is a breaking session held by the server.
type Session struct {
	id      string
	service apiv1.BreakerServiceClient
}

// NewSession opens a session with an empty engine on the server.
func (c *Client) NewSession(ctx context.Context) (*Session, error) {
	resp, err := c.service.CreateSession(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &Session{
		id:      resp.GetValue(),
		service: c.service,
	}, nil
}

// Attach returns a handle to an existing session, typically one opened by
// another client.
func (c *Client) Attach(sessionID string) *Session {
	return &Session{
		id:      sessionID,
		service: c.service,
	}
}

// ID returns the server-assigned session id.
func (s *Session) ID() string {
	return s.id
}

// Submit adds a ciphertext to the session.
func (s *Session) Submit(ctx context.Context, ciphertext []byte) error {
	if _, err := s.service.Submit(s.context(ctx), wrapperspb.Bytes(ciphertext)); err != nil {
		return fmt.Errorf("failed to submit ciphertext: %w", err)
	}
	return nil
}

// Decode applies the session's inferred pad to target.
func (s *Session) Decode(ctx context.Context, target []byte) ([]byte, error) {
	resp, err := s.service.Decode(s.context(ctx), wrapperspb.Bytes(target))
	if err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}
	return resp.GetValue(), nil
}

// Pad returns the session's inferred pad.
func (s *Session) Pad(ctx context.Context) ([]byte, error) {
	resp, err := s.service.GetPad(s.context(ctx), &emptypb.Empty{})
	if err != nil {
		return nil, fmt.Errorf("failed to get pad: %w", err)
	}
	return resp.GetValue(), nil
}

// Stats returns the session's vote table summary.
func (s *Session) Stats(ctx context.Context) (pad.Stats, error) {
	resp, err := s.service.GetStats(s.context(ctx), &emptypb.Empty{})
	if err != nil {
		return pad.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	fields := resp.GetFields()
	number := func(name string) float64 {
		return fields[name].GetNumberValue()
	}
	return pad.Stats{
		Ciphertexts: int(number("ciphertexts")),
		Positions:   int(number("positions")),
		Covered:     int(number("covered")),
		Tied:        int(number("tied")),
		TotalMass:   uint64(number("total_mass")),
	}, nil
}

// Close discards the session on the server.
func (s *Session) Close(ctx context.Context) error {
	if _, err := s.service.CloseSession(s.context(ctx), &emptypb.Empty{}); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func (s *Session) context(ctx context.Context) context.Context {
	return apiv1.WithSession(ctx, s.id)
}
