package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	apiv1 "github.com/mundrapranay/padbreaker/api/v1"
)

// setupBenchServer starts a server on a loopback TCP port.
func setupBenchServer(b *testing.B) (*Server, apiv1.BreakerServiceClient) {
	b.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		b.Fatalf("Failed to listen: %v", err)
	}

	srv := NewServer(Config{}, nil)
	grpcSrv := grpc.NewServer()
	apiv1.RegisterBreakerServiceServer(grpcSrv, srv)
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			b.Logf("gRPC server error: %v", err)
		}
	}()
	b.Cleanup(grpcSrv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		b.Fatalf("Failed to create client: %v", err)
	}
	b.Cleanup(func() { conn.Close() })

	return srv, apiv1.NewBreakerServiceClient(conn)
}

func benchSession(b *testing.B, client apiv1.BreakerServiceClient) context.Context {
	b.Helper()
	resp, err := client.CreateSession(context.Background(), &emptypb.Empty{})
	if err != nil {
		b.Fatalf("CreateSession failed: %v", err)
	}
	return apiv1.WithSession(context.Background(), resp.GetValue())
}

func outgoingSession(ctx context.Context) (string, bool) {
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok || len(md.Get(apiv1.SessionMetadataKey)) == 0 {
		return "", false
	}
	return md.Get(apiv1.SessionMetadataKey)[0], true
}

func randomCiphertext(b *testing.B, n int) []byte {
	c := make([]byte, n)
	if _, err := rand.Read(c); err != nil {
		b.Fatalf("Failed to generate ciphertext: %v", err)
	}
	return c
}

// BenchmarkServer_Submit measures Submit latency into a session that already
// holds the given number of ciphertexts. The session is replaced every
// submitBatch iterations so it stays near that size.
func BenchmarkServer_Submit(b *testing.B) {
	const submitBatch = 64

	for _, held := range []int{0, 50, 200} {
		b.Run(fmt.Sprintf("Held%d", held), func(b *testing.B) {
			srv, client := setupBenchServer(b)
			ct := randomCiphertext(b, 128)
			prefill := make([][]byte, held)
			for i := range prefill {
				prefill[i] = randomCiphertext(b, 128)
			}

			var ctx context.Context
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%submitBatch == 0 {
					b.StopTimer()
					if ctx != nil {
						if _, err := client.CloseSession(ctx, &emptypb.Empty{}); err != nil {
							b.Fatalf("CloseSession failed: %v", err)
						}
					}
					ctx = benchSession(b, client)
					id, _ := outgoingSession(ctx)
					for _, p := range prefill {
						if _, err := srv.Submit(incomingSession(id), wrapperspb.Bytes(p)); err != nil {
							b.Fatalf("Prefill failed: %v", err)
						}
					}
					b.StartTimer()
				}
				if _, err := client.Submit(ctx, wrapperspb.Bytes(ct)); err != nil {
					b.Fatalf("Submit failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkServer_Decode measures Decode latency over the network.
func BenchmarkServer_Decode(b *testing.B) {
	_, client := setupBenchServer(b)
	ctx := benchSession(b, client)
	for i := 0; i < 20; i++ {
		if _, err := client.Submit(ctx, wrapperspb.Bytes(randomCiphertext(b, 256))); err != nil {
			b.Fatalf("Submit failed: %v", err)
		}
	}
	target := wrapperspb.Bytes(randomCiphertext(b, 256))

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := client.Decode(ctx, target); err != nil {
				b.Errorf("Decode failed: %v", err)
				return
			}
		}
	})
}
