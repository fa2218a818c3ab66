package client

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	apiv1 "github.com/mundrapranay/padbreaker/api/v1"
	"github.com/mundrapranay/padbreaker/internal/keystream"
	"github.com/mundrapranay/padbreaker/internal/pad"
	"github.com/mundrapranay/padbreaker/internal/server"
)

func setupTestClient(t *testing.T) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	grpcSrv := grpc.NewServer()
	apiv1.RegisterBreakerServiceServer(grpcSrv, server.NewServer(server.Config{}, hclog.NewNullLogger()))
	go func() {
		_ = grpcSrv.Serve(lis)
	}()
	t.Cleanup(grpcSrv.Stop)

	c, err := NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSession_MatchesLocalEngine(t *testing.T) {
	c := setupTestClient(t)
	ctx := context.Background()

	s, err := keystream.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	plaintexts := []string{
		"the quick brown fox jumps over",
		"a lazy dog sleeps in the sun",
		"many time pads are never safe",
		"Keep It Simple and Secure now",
	}

	session, err := c.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if session.ID() == "" {
		t.Fatal("Expected a session id")
	}

	local := pad.NewEngine()
	var ciphertexts [][]byte
	for _, p := range plaintexts {
		ct := s.Encrypt([]byte(p))
		ciphertexts = append(ciphertexts, ct)
		local.Submit(ct)
		if err := session.Submit(ctx, ct); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	for i, ct := range ciphertexts {
		got, err := session.Decode(ctx, ct)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(got, local.Decode(ct)) {
			t.Errorf("Message %d: remote decode %q differs from local %q", i, got, local.Decode(ct))
		}
	}

	remotePad, err := session.Pad(ctx)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if !bytes.Equal(remotePad, local.Pad()) {
		t.Errorf("Remote pad %x differs from local %x", remotePad, local.Pad())
	}

	st, err := session.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st != local.Stats() {
		t.Errorf("Remote stats %+v differ from local %+v", st, local.Stats())
	}
}

func TestSession_Close(t *testing.T) {
	c := setupTestClient(t)
	ctx := context.Background()

	session, err := c.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if err := session.Close(ctx); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	err = session.Submit(ctx, []byte{1, 2, 3})
	if status.Code(err) != codes.NotFound {
		t.Errorf("Expected NotFound after close, got %v", err)
	}
}

func TestClient_Attach(t *testing.T) {
	c := setupTestClient(t)
	ctx := context.Background()

	owner, err := c.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	attached := c.Attach(owner.ID())

	if err := attached.Submit(ctx, make([]byte, 8)); err != nil {
		t.Fatalf("Submit through attached session failed: %v", err)
	}
	st, err := owner.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Ciphertexts != 1 || st.Positions != 8 {
		t.Errorf("Expected 1 ciphertext over 8 positions, got %+v", st)
	}

	_, err = c.Attach("no-such-session").Pad(ctx)
	if status.Code(err) != codes.NotFound {
		t.Errorf("Expected NotFound for an unknown session, got %v", err)
	}
}
